package models

import "time"

// AggregatedVessel is the response body of the vessel endpoint: the
// requested identifier plus one slot per upstream resource. The payload
// is always complete; resources that could not be fetched carry an
// error object in their slot instead of a record.
type AggregatedVessel struct {
	// VesselID is the identifier the aggregation was requested for,
	// echoed back exactly as received.
	VesselID string `json:"vesselId"`

	// GeneratedAt is the server-side time the aggregation finished.
	GeneratedAt time.Time `json:"generatedAt"`

	// Data holds the four resource slots.
	Data AggregatedData `json:"data"`
}

// AggregatedData groups the per-resource slots of an aggregation.
// Each slot settles independently of the others.
type AggregatedData struct {
	// General is the static-particulars slot.
	General ResourceResult[VesselGeneral] `json:"general"`

	// Position is the latest-position slot.
	Position ResourceResult[VesselPosition] `json:"position"`

	// Voyage is the current-voyage slot.
	Voyage ResourceResult[VesselVoyage] `json:"voyage"`

	// Summary is the header-card slot.
	Summary ResourceResult[VesselSummary] `json:"summary"`
}

// ErrorResponse is the JSON error envelope returned for client and
// server errors, and embedded in failed resource slots.
type ErrorResponse struct {
	// Error is the human-readable failure message.
	Error string `json:"error"`
}
