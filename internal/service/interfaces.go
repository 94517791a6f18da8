package service

import (
	"context"

	"github.com/pmezhin/vesselwatch/models"
)

type VesselService interface {
	// Aggregate fetches every resource of a vessel concurrently and merges the
	// outcomes into a single report. A failed resource is recorded inside its
	// slot of the report instead of failing the whole call.
	Aggregate(ctx context.Context, vesselID string) (models.AggregatedVessel, error)

	GetGeneral(ctx context.Context, vesselID string) (models.VesselGeneral, error)
	GetPosition(ctx context.Context, vesselID string) (models.VesselPosition, error)
	GetVoyage(ctx context.Context, vesselID string) (models.VesselVoyage, error)
	GetSummary(ctx context.Context, vesselID string) (models.VesselSummary, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
