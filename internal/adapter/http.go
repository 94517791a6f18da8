package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/pmezhin/vesselwatch/internal/config"
	"github.com/pmezhin/vesselwatch/internal/logger"
	"github.com/pmezhin/vesselwatch/internal/session"
	"github.com/pmezhin/vesselwatch/internal/telemetry"
	"github.com/pmezhin/vesselwatch/models"
)

type httpTrackerAdapter struct {
	client *resty.Client
	logger *logger.Logger
}

// NewHTTPTrackerAdapter constructs the HTTP implementation of
// [TrackerAdapter]. It normalises and validates the base URL from
// upstreamCfg.BaseURL, configures the underlying client with the resolved
// base URL and per-request timeout, and attaches the browser-like headers
// every request carries: the session cookies from sess and the configured
// User-Agent.
//
// Returns an error if upstreamCfg.BaseURL is empty or cannot be parsed as a
// valid URL.
func NewHTTPTrackerAdapter(upstreamCfg config.Upstream, sess *session.Session, logger *logger.Logger) (TrackerAdapter, error) {
	baseURL, err := normalizeBaseURL(upstreamCfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid upstream base url: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(upstreamCfg.RequestTimeout).
		SetHeader("Accept", "application/json, text/plain, */*").
		SetHeader("User-Agent", upstreamCfg.UserAgent)

	if sess.Authenticated() {
		client.SetHeader("Cookie", sess.Header())
	}

	return &httpTrackerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// GetGeneral implements [TrackerAdapter]. It GETs the static particulars
// section from GET /vessels/{vesselId}/general.
func (h *httpTrackerAdapter) GetGeneral(ctx context.Context, vesselID string) (models.VesselGeneral, error) {
	return fetchResource[models.VesselGeneral](ctx, h, models.ResourceGeneral, vesselID)
}

// GetPosition implements [TrackerAdapter]. It GETs the latest AIS position
// from GET /vessels/{vesselId}/position.
func (h *httpTrackerAdapter) GetPosition(ctx context.Context, vesselID string) (models.VesselPosition, error) {
	return fetchResource[models.VesselPosition](ctx, h, models.ResourcePosition, vesselID)
}

// GetVoyage implements [TrackerAdapter]. It GETs the current voyage section
// from GET /vessels/{vesselId}/voyage.
func (h *httpTrackerAdapter) GetVoyage(ctx context.Context, vesselID string) (models.VesselVoyage, error) {
	return fetchResource[models.VesselVoyage](ctx, h, models.ResourceVoyage, vesselID)
}

// GetSummary implements [TrackerAdapter]. It GETs the header card from
// GET /vessels/{vesselId}/summary.
func (h *httpTrackerAdapter) GetSummary(ctx context.Context, vesselID string) (models.VesselSummary, error) {
	return fetchResource[models.VesselSummary](ctx, h, models.ResourceSummary, vesselID)
}

// fetchResource runs one upstream GET and decodes the body itself rather
// than through resty's result binding: the site answers interactive traffic
// with HTML (login pages, error pages) under a 200 from time to time, and
// those must surface as decode failures instead of silent zero records.
func fetchResource[T any](ctx context.Context, h *httpTrackerAdapter, resource models.VesselResource, vesselID string) (T, error) {
	var out T
	start := time.Now()
	outcome := telemetry.OutcomeError
	defer func() {
		telemetry.ObserveUpstreamRequest(resource.String(), outcome, time.Since(start))
	}()

	h.logger.Debug().
		Str("resource", resource.String()).
		Str("vesselId", vesselID).
		Msg("fetching vessel resource")

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("vesselId", vesselID).
		Get("/vessels/{vesselId}/" + resource.String())
	if err != nil {
		return out, newTransportError(resource, err)
	}
	if err = mapHTTPError(resource, resp); err != nil {
		return out, err
	}

	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return out, newDecodeError(resource, err)
	}

	outcome = telemetry.OutcomeSuccess
	return out, nil
}
