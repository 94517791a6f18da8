package service

import (
	"github.com/pmezhin/vesselwatch/internal/adapter"
	"github.com/pmezhin/vesselwatch/internal/config"
	"github.com/pmezhin/vesselwatch/internal/logger"
)

type Services struct {
	VesselService  VesselService
	AppInfoService AppInfoService
}

func NewServices(tracker adapter.TrackerAdapter, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		VesselService:  NewVesselService(tracker, logger),
		AppInfoService: appInfoService,
	}, nil
}
