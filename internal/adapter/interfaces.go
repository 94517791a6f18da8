// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the vessel-tracking site.
//
// The primary abstraction is [TrackerAdapter], which decouples the service
// layer from the scraping transport. The package ships an HTTP implementation
// ([NewHTTPTrackerAdapter]) that talks to the site's undocumented JSON
// endpoints using a browser-like client: session cookies loaded from a local
// export, a desktop User-Agent, and fixed per-request timeouts.
//
// Failures are mapped by mapHTTPError into [*UpstreamError] values wrapping
// the sentinels defined in errors.go, so callers can use [errors.Is] for
// status-class checks (e.g. [ErrVesselNotFound] for 404, [ErrSessionExpired]
// for 401/403) while the error message keeps the exact text embedded into the
// aggregated payload.
package adapter

import (
	"context"

	"github.com/pmezhin/vesselwatch/models"
)

// TrackerAdapter defines transport-agnostic access to the per-vessel data
// sections of the tracking site. Implementations are responsible for
// authentication headers, decoding, and mapping transport-level failures to
// the error values defined in this package.
//
// Every method fetches exactly one resource for one vessel and is safe for
// concurrent use; the aggregation service calls all four in parallel.
type TrackerAdapter interface {
	// GetGeneral fetches the static particulars section (name, IMO, MMSI,
	// dimensions). Returns a zero record and an error when the fetch or
	// decode fails.
	GetGeneral(ctx context.Context, vesselID string) (models.VesselGeneral, error)

	// GetPosition fetches the latest AIS position report.
	GetPosition(ctx context.Context, vesselID string) (models.VesselPosition, error)

	// GetVoyage fetches the current voyage section (origin, destination,
	// ETA, progress).
	GetVoyage(ctx context.Context, vesselID string) (models.VesselVoyage, error)

	// GetSummary fetches the condensed header card of the vessel page.
	GetSummary(ctx context.Context, vesselID string) (models.VesselSummary, error)
}
