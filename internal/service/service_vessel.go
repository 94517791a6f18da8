// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/pmezhin/vesselwatch/internal/adapter"
	"github.com/pmezhin/vesselwatch/internal/logger"
	"github.com/pmezhin/vesselwatch/models"
)

type vesselService struct {
	tracker adapter.TrackerAdapter

	logger *logger.Logger
}

func NewVesselService(tracker adapter.TrackerAdapter, logger *logger.Logger) VesselService {
	return &vesselService{
		tracker: tracker,
		logger:  logger,
	}
}

// Aggregate fans out one fetch per vessel resource and waits for all of them
// to settle. Every outcome lands in its own slot of the report: a failed fetch
// becomes the slot's error message, never an error of the whole call.
func (s *vesselService) Aggregate(ctx context.Context, vesselID string) (models.AggregatedVessel, error) {
	if strings.TrimSpace(vesselID) == "" {
		return models.AggregatedVessel{}, ErrVesselIDRequired
	}

	var data models.AggregatedData

	// Each goroutine writes only its own field of data; wg.Wait publishes all
	// four writes before data is read again.
	var wg sync.WaitGroup
	wg.Add(4)
	go func() {
		defer wg.Done()
		data.General = settle(s.tracker.GetGeneral(ctx, vesselID))
	}()
	go func() {
		defer wg.Done()
		data.Position = settle(s.tracker.GetPosition(ctx, vesselID))
	}()
	go func() {
		defer wg.Done()
		data.Voyage = settle(s.tracker.GetVoyage(ctx, vesselID))
	}()
	go func() {
		defer wg.Done()
		data.Summary = settle(s.tracker.GetSummary(ctx, vesselID))
	}()
	wg.Wait()

	s.logFailedSlots(vesselID, data)

	return models.AggregatedVessel{
		VesselID:    vesselID,
		GeneratedAt: time.Now().UTC(),
		Data:        data,
	}, nil
}

func (s *vesselService) GetGeneral(ctx context.Context, vesselID string) (models.VesselGeneral, error) {
	return s.tracker.GetGeneral(ctx, vesselID)
}

func (s *vesselService) GetPosition(ctx context.Context, vesselID string) (models.VesselPosition, error) {
	return s.tracker.GetPosition(ctx, vesselID)
}

func (s *vesselService) GetVoyage(ctx context.Context, vesselID string) (models.VesselVoyage, error) {
	return s.tracker.GetVoyage(ctx, vesselID)
}

func (s *vesselService) GetSummary(ctx context.Context, vesselID string) (models.VesselSummary, error) {
	return s.tracker.GetSummary(ctx, vesselID)
}

// settle converts a fetch outcome into the slot stored in the merged report.
func settle[T any](value T, err error) models.ResourceResult[T] {
	if err != nil {
		return models.NewErrorResult[T](err)
	}

	return models.NewResult(value)
}

func (s *vesselService) logFailedSlots(vesselID string, data models.AggregatedData) {
	failures := map[models.VesselResource]string{
		models.ResourceGeneral:  data.General.Err,
		models.ResourcePosition: data.Position.Err,
		models.ResourceVoyage:   data.Voyage.Err,
		models.ResourceSummary:  data.Summary.Err,
	}

	for resource, message := range failures {
		if message == "" {
			continue
		}

		s.logger.Warn().
			Str("vesselId", vesselID).
			Str("resource", resource.String()).
			Msg(message)
	}
}
