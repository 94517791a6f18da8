package models

// VesselGeneral holds the static particulars of a vessel as published
// on its general-information page. Fields mirror the upstream JSON and
// are passed through without interpretation.
type VesselGeneral struct {
	// Name is the vessel name as registered with the tracking site.
	Name string `json:"name,omitempty"`

	// IMO is the IMO number, the permanent seven-digit hull identifier.
	IMO string `json:"imo,omitempty"`

	// MMSI is the Maritime Mobile Service Identity used for AIS broadcasts.
	// Unlike the IMO number it can change when the vessel is reflagged.
	MMSI string `json:"mmsi,omitempty"`

	// CallSign is the radio call sign assigned by the flag state.
	CallSign string `json:"callSign,omitempty"`

	// Flag is the flag state, usually a country name or ISO code.
	Flag string `json:"flag,omitempty"`

	// Type is the upstream vessel-type label (e.g. "Container Ship").
	Type string `json:"type,omitempty"`

	// YearBuilt is the build year when the site publishes one.
	YearBuilt int `json:"yearBuilt,omitempty"`

	// Length is the overall length in metres.
	Length float64 `json:"length,omitempty"`

	// Beam is the width in metres.
	Beam float64 `json:"beam,omitempty"`

	// GrossTonnage is the volumetric tonnage figure.
	GrossTonnage float64 `json:"grossTonnage,omitempty"`

	// Deadweight is the carrying capacity in tonnes.
	Deadweight float64 `json:"deadweight,omitempty"`
}

// VesselPosition holds the latest AIS-derived position report.
type VesselPosition struct {
	// Latitude is the reported latitude in decimal degrees.
	Latitude float64 `json:"latitude"`

	// Longitude is the reported longitude in decimal degrees.
	Longitude float64 `json:"longitude"`

	// Course is the course over ground in degrees.
	Course float64 `json:"course,omitempty"`

	// Speed is the speed over ground in knots.
	Speed float64 `json:"speed,omitempty"`

	// Heading is the true heading in degrees. The site reports 511
	// when the value is unavailable, which is forwarded as-is.
	Heading float64 `json:"heading,omitempty"`

	// NavigationStatus is the AIS status label
	// (e.g. "Under way using engine", "At anchor").
	NavigationStatus string `json:"navigationStatus,omitempty"`

	// Timestamp is the Unix time of the position report in seconds.
	Timestamp int64 `json:"timestamp,omitempty"`

	// Source identifies the receiver network (terrestrial or satellite).
	Source string `json:"source,omitempty"`
}

// VesselVoyage holds the current voyage leg: where the vessel came
// from, where it is bound, and how far along it is.
type VesselVoyage struct {
	// Origin is the human-readable departure port name.
	Origin string `json:"origin,omitempty"`

	// OriginUNLocode is the UN/LOCODE of the departure port.
	OriginUNLocode string `json:"originUnlocode,omitempty"`

	// Destination is the reported destination port name. AIS destinations
	// are free text typed by the crew and arrive in whatever form was sent.
	Destination string `json:"destination,omitempty"`

	// DestinationUNLocode is the UN/LOCODE of the destination port
	// when the site managed to resolve one.
	DestinationUNLocode string `json:"destinationUnlocode,omitempty"`

	// ATD is the actual time of departure as published upstream.
	ATD string `json:"atd,omitempty"`

	// ETA is the estimated time of arrival as published upstream.
	ETA string `json:"eta,omitempty"`

	// Draught is the current reported draught in metres.
	Draught float64 `json:"draught,omitempty"`

	// DistanceTravelled is the distance covered so far in nautical miles.
	DistanceTravelled float64 `json:"distanceTravelled,omitempty"`

	// DistanceToGo is the remaining distance in nautical miles.
	DistanceToGo float64 `json:"distanceToGo,omitempty"`
}

// VesselSummary holds the condensed header card the site renders at the
// top of a vessel page. It overlaps the other resources on purpose; the
// payload forwards each resource exactly as the site serves it.
type VesselSummary struct {
	// Name is the vessel name.
	Name string `json:"name,omitempty"`

	// Type is the upstream vessel-type label.
	Type string `json:"type,omitempty"`

	// NavigationStatus is the AIS status label.
	NavigationStatus string `json:"navigationStatus,omitempty"`

	// Destination is the reported destination.
	Destination string `json:"destination,omitempty"`

	// ETA is the estimated time of arrival.
	ETA string `json:"eta,omitempty"`

	// LastReport is the age or timestamp of the latest report,
	// in whatever textual form the site uses.
	LastReport string `json:"lastReport,omitempty"`

	// Area is the sea area the vessel is currently in.
	Area string `json:"area,omitempty"`

	// Photo is the URL of the lead photo, when present.
	Photo string `json:"photo,omitempty"`
}
