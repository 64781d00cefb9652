package handlers

import (
	"context"
	"net/http"

	"github.com/zatekoja/shiftboard/internal/domain/entities"
	"github.com/zatekoja/shiftboard/internal/infrastructure/observability"
	apperrors "github.com/zatekoja/shiftboard/pkg/errors"
)

// EligibilityResolver lists the shifts a worker may claim
type EligibilityResolver interface {
	ListEligibleShifts(ctx context.Context, workerID entities.WorkerID, facilityID entities.FacilityID, window entities.TimeWindow) ([]entities.EligibleShift, error)
}

// EligibleShiftsResponse is the body of a successful eligibility lookup
type EligibleShiftsResponse struct {
	Shifts []entities.EligibleShift `json:"shifts"`
	Count  int                      `json:"count"`
}

// EligibilityHandler handles shift eligibility HTTP requests
type EligibilityHandler struct {
	resolver EligibilityResolver
}

// NewEligibilityHandler creates a new eligibility handler
func NewEligibilityHandler(resolver EligibilityResolver) *EligibilityHandler {
	return &EligibilityHandler{
		resolver: resolver,
	}
}

// ListEligibleShifts handles GET /api/workers/{id}/eligible-shifts?facility_id=&start=&end=
func (h *EligibilityHandler) ListEligibleShifts(w http.ResponseWriter, r *http.Request) {
	workerID, err := entities.ParseWorkerID(r.PathValue("id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, errorMessage(err))
		return
	}

	query := r.URL.Query()
	if query.Get("facility_id") == "" || query.Get("start") == "" || query.Get("end") == "" {
		respondWithError(w, http.StatusBadRequest, "facility_id, start and end are required")
		return
	}

	facilityID, err := entities.ParseFacilityID(query.Get("facility_id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, errorMessage(err))
		return
	}

	window, err := entities.ParseTimeWindow(query.Get("start"), query.Get("end"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, errorMessage(err))
		return
	}

	shifts, err := h.resolver.ListEligibleShifts(r.Context(), workerID, facilityID, window)
	if err != nil {
		h.respondWithResolverError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, EligibleShiftsResponse{
		Shifts: shifts,
		Count:  len(shifts),
	})
}

func (h *EligibilityHandler) respondWithResolverError(w http.ResponseWriter, r *http.Request, err error) {
	appErr, ok := apperrors.As(err)
	if !ok {
		observability.LoggerFromContext(r.Context()).Error().Err(err).Msg("Unexpected eligibility failure")
		respondWithError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	switch appErr.Type {
	case apperrors.ErrorTypeIneligible:
		respondWithJSON(w, http.StatusUnprocessableEntity, ErrorResponse{
			Error:  appErr.Message,
			Type:   string(appErr.Type),
			Reason: appErr.Reason,
		})
	case apperrors.ErrorTypeValidation:
		respondWithJSON(w, http.StatusBadRequest, ErrorResponse{
			Error: appErr.Message,
			Type:  string(appErr.Type),
		})
	default:
		// Store details stay in the logs
		observability.LoggerFromContext(r.Context()).Error().Err(err).Msg("Eligibility lookup failed")
		respondWithJSON(w, http.StatusInternalServerError, ErrorResponse{
			Error: "failed to resolve eligible shifts",
			Type:  string(apperrors.ErrorTypeDatabase),
		})
	}
}
