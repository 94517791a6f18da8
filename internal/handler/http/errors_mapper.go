package http

import (
	"errors"
	"net/http"

	"github.com/pmezhin/vesselwatch/internal/service"
)

var errorStatusMap = map[error]int{
	service.ErrVesselIDRequired: http.StatusBadRequest,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
