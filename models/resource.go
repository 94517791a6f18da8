// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// VesselResource names one of the per-vessel data sections the tracking
// site exposes as a separate endpoint. The value appears in URLs, log
// fields, metrics labels and upstream error messages.
type VesselResource string

const (
	// ResourceGeneral is the static particulars section.
	ResourceGeneral VesselResource = "general"

	// ResourcePosition is the latest AIS position section.
	ResourcePosition VesselResource = "position"

	// ResourceVoyage is the current voyage section.
	ResourceVoyage VesselResource = "voyage"

	// ResourceSummary is the condensed header-card section.
	ResourceSummary VesselResource = "summary"
)

// String returns the resource name as used in endpoint paths.
func (r VesselResource) String() string {
	return string(r)
}
