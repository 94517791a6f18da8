package http

import (
	"github.com/pmezhin/vesselwatch/internal/logger"
	"github.com/pmezhin/vesselwatch/internal/service"
)

type Handler struct {
	services *service.Services

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}
