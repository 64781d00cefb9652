package services

import (
	"context"
	"fmt"
	"time"

	"github.com/zatekoja/shiftboard/internal/domain/entities"
	"github.com/zatekoja/shiftboard/internal/domain/repositories"
	"github.com/zatekoja/shiftboard/internal/infrastructure/observability"
	apperrors "github.com/zatekoja/shiftboard/pkg/errors"
	"go.opentelemetry.io/otel/attribute"
)

// Outcome labels for eligibility metrics
const (
	OutcomeEligible      = "eligible"
	OutcomeIneligible    = "ineligible"
	OutcomeDatabaseError = "database_error"
)

// EligibilityService resolves which open shifts a worker may claim at a facility.
// It holds no state between calls and is safe for concurrent use.
type EligibilityService struct {
	gateway repositories.ShiftLookupRepository
	metrics *observability.Metrics
}

// NewEligibilityService creates a new eligibility service. metrics may be nil.
func NewEligibilityService(gateway repositories.ShiftLookupRepository, metrics *observability.Metrics) *EligibilityService {
	return &EligibilityService{
		gateway: gateway,
		metrics: metrics,
	}
}

// ListEligibleShifts runs the gates in a fixed order: facility standing, worker
// standing, then shift selection. The first failing gate decides the error, so
// an inactive facility is always reported even if the worker is inactive too.
//
// Errors are *apperrors.AppError of type DATABASE (any lookup failure,
// including unknown ids) or INELIGIBLE (with an IneligibilityReason). A
// successful call with no matching shifts returns an empty slice.
func (s *EligibilityService) ListEligibleShifts(
	ctx context.Context,
	workerID entities.WorkerID,
	facilityID entities.FacilityID,
	window entities.TimeWindow,
) ([]entities.EligibleShift, error) {
	ctx, span := observability.StartSpan(ctx, "eligibility.ListEligibleShifts")
	defer span.End()
	observability.SetSpanAttributes(span,
		attribute.Int64("worker.id", int64(workerID)),
		attribute.Int64("facility.id", int64(facilityID)),
	)

	start := time.Now()
	shifts, err := s.resolve(ctx, workerID, facilityID, window)
	outcome := outcomeOf(err)
	observability.RecordEligibilityMetric(ctx, s.metrics, outcome, time.Since(start))
	observability.SetSpanAttributes(span, attribute.String("eligibility.outcome", outcome))

	logger := observability.LoggerFromContext(ctx)
	if err != nil {
		observability.RecordError(span, err)
		logger.Debug().
			Err(err).
			Stringer("worker_id", workerID).
			Stringer("facility_id", facilityID).
			Str("outcome", outcome).
			Msg("eligibility resolution refused")
		return nil, err
	}

	logger.Debug().
		Stringer("worker_id", workerID).
		Stringer("facility_id", facilityID).
		Int("shifts", len(shifts)).
		Msg("eligibility resolved")
	return shifts, nil
}

func (s *EligibilityService) resolve(
	ctx context.Context,
	workerID entities.WorkerID,
	facilityID entities.FacilityID,
	window entities.TimeWindow,
) ([]entities.EligibleShift, error) {
	active, err := s.gateway.GetFacilityActive(ctx, facilityID)
	if err != nil {
		return nil, apperrors.NewDatabaseError(fmt.Sprintf("failed to look up facility %s", facilityID), err)
	}
	if !active {
		return nil, apperrors.NewIneligibleError(
			string(entities.IneligibilityReasonInactiveFacility),
			fmt.Sprintf("facility %s is not active", facilityID),
		)
	}

	worker, err := s.gateway.GetWorker(ctx, workerID)
	if err != nil {
		return nil, apperrors.NewDatabaseError(fmt.Sprintf("failed to look up worker %s", workerID), err)
	}
	if worker == nil {
		return nil, apperrors.NewDatabaseError(fmt.Sprintf("worker %s not found", workerID), nil)
	}
	if !worker.IsActive {
		return nil, apperrors.NewIneligibleError(
			string(entities.IneligibilityReasonInactiveWorker),
			fmt.Sprintf("worker %s is not active", workerID),
		)
	}

	shifts, err := s.gateway.QueryEligibleShifts(ctx, repositories.ShiftQuery{
		FacilityID: facilityID,
		Window:     window,
		Profession: worker.Profession,
		WorkerID:   workerID,
	})
	if err != nil {
		return nil, apperrors.NewDatabaseError("failed to query eligible shifts", err)
	}

	eligible := make([]entities.EligibleShift, 0, len(shifts))
	for _, shift := range shifts {
		eligible = append(eligible, shift.Eligible())
	}
	entities.SortEligibleShifts(eligible)
	return eligible, nil
}

// IneligibilityReasonOf extracts the refusal reason from an error returned by ListEligibleShifts
func IneligibilityReasonOf(err error) (entities.IneligibilityReason, bool) {
	appErr, ok := apperrors.As(err)
	if !ok || appErr.Type != apperrors.ErrorTypeIneligible {
		return "", false
	}
	return entities.IneligibilityReason(appErr.Reason), true
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return OutcomeEligible
	case apperrors.IsType(err, apperrors.ErrorTypeIneligible):
		return OutcomeIneligible
	default:
		return OutcomeDatabaseError
	}
}
