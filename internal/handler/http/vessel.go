package http

import (
	"net/http"
	"strings"

	"github.com/pmezhin/vesselwatch/internal/logger"
	"github.com/pmezhin/vesselwatch/internal/utils"
	"github.com/pmezhin/vesselwatch/models"
)

func (h *Handler) getVessel(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	vesselID := strings.TrimSpace(r.URL.Query().Get("vesselId"))
	if vesselID == "" {
		log.Warn().Str("func", "*Handler.getVessel").Msg("missing vesselId query parameter")
		if _, err := utils.WriteJSON(w, models.ErrorResponse{Error: "vesselId query parameter is required"}, http.StatusBadRequest); err != nil {
			log.Err(err).Str("func", "*Handler.getVessel").Msg("error writing response")
		}
		return
	}

	report, err := h.services.VesselService.Aggregate(r.Context(), vesselID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getVessel").Str("vesselId", vesselID).Msg("vessel aggregation failed")
		if _, err := utils.WriteJSON(w, models.ErrorResponse{Error: err.Error()}, statusFromError(err)); err != nil {
			log.Err(err).Str("func", "*Handler.getVessel").Msg("error writing response")
		}
		return
	}

	if _, err := utils.WriteJSON(w, report, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.getVessel").Msg("error writing response")
	}
}
