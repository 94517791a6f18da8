package http

import (
	"net/http"

	"github.com/pmezhin/vesselwatch/internal/logger"
	"github.com/pmezhin/vesselwatch/internal/utils"
)

func (h *Handler) healthz(w http.ResponseWriter, r *http.Request) {
	if _, err := utils.WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.healthz").Msg("error writing response")
	}
}
