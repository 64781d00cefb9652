package repositories

import (
	"context"

	"github.com/zatekoja/shiftboard/internal/domain/entities"
)

// ShiftLookupRepository is the read-only gateway the eligibility service depends on
type ShiftLookupRepository interface {
	// GetFacilityActive returns the facility's standing. Unknown ids are an error.
	GetFacilityActive(ctx context.Context, id entities.FacilityID) (bool, error)

	// GetWorker returns the worker's standing and profession. Unknown ids are an error.
	GetWorker(ctx context.Context, id entities.WorkerID) (*entities.Worker, error)

	// QueryEligibleShifts returns the shifts at facility that lie inside window,
	// require profession, are neither deleted nor claimed, and do not overlap a
	// shift already claimed by worker. Results are ordered by start, then id.
	// An empty result is not an error.
	QueryEligibleShifts(ctx context.Context, query ShiftQuery) ([]entities.Shift, error)
}

// ShiftQuery holds the inputs of a shift-selection lookup
type ShiftQuery struct {
	FacilityID entities.FacilityID
	Window     entities.TimeWindow
	Profession entities.Profession
	WorkerID   entities.WorkerID
}
