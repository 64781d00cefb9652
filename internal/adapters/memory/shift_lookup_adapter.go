package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/zatekoja/shiftboard/internal/domain/entities"
	"github.com/zatekoja/shiftboard/internal/domain/repositories"
	apperrors "github.com/zatekoja/shiftboard/pkg/errors"
)

// ShiftLookupAdapter implements ShiftLookupRepository over an in-memory data set.
// It applies the selection predicate directly and is safe for concurrent use.
type ShiftLookupAdapter struct {
	mu         sync.RWMutex
	facilities map[entities.FacilityID]entities.Facility
	workers    map[entities.WorkerID]entities.Worker
	shifts     []entities.Shift
}

var _ repositories.ShiftLookupRepository = (*ShiftLookupAdapter)(nil)

// NewShiftLookupAdapter creates a store holding a copy of fixtures
func NewShiftLookupAdapter(fixtures *Fixtures) *ShiftLookupAdapter {
	a := &ShiftLookupAdapter{
		facilities: make(map[entities.FacilityID]entities.Facility),
		workers:    make(map[entities.WorkerID]entities.Worker),
	}
	if fixtures == nil {
		return a
	}
	for _, f := range fixtures.Facilities {
		a.facilities[f.ID] = f
	}
	for _, w := range fixtures.Workers {
		a.workers[w.ID] = w
	}
	a.shifts = append(a.shifts, fixtures.Shifts...)
	return a
}

// NewShiftLookupAdapterFromFile loads a YAML fixture file into a new store
func NewShiftLookupAdapterFromFile(path string) (*ShiftLookupAdapter, error) {
	fixtures, err := LoadFixtures(path)
	if err != nil {
		return nil, err
	}
	return NewShiftLookupAdapter(fixtures), nil
}

// GetFacilityActive returns whether the facility is active
func (a *ShiftLookupAdapter) GetFacilityActive(ctx context.Context, id entities.FacilityID) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, apperrors.NewInternalError("facility lookup cancelled", err)
	}

	a.mu.RLock()
	defer a.mu.RUnlock()

	facility, ok := a.facilities[id]
	if !ok {
		return false, apperrors.NewNotFoundError(fmt.Sprintf("facility with id %s not found", id))
	}
	return facility.IsActive, nil
}

// GetWorker returns the worker's standing and profession
func (a *ShiftLookupAdapter) GetWorker(ctx context.Context, id entities.WorkerID) (*entities.Worker, error) {
	if err := ctx.Err(); err != nil {
		return nil, apperrors.NewInternalError("worker lookup cancelled", err)
	}

	a.mu.RLock()
	defer a.mu.RUnlock()

	worker, ok := a.workers[id]
	if !ok {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("worker with id %s not found", id))
	}
	return &worker, nil
}

// QueryEligibleShifts returns admissible shifts ordered by start, then id
func (a *ShiftLookupAdapter) QueryEligibleShifts(ctx context.Context, q repositories.ShiftQuery) ([]entities.Shift, error) {
	if err := ctx.Err(); err != nil {
		return nil, apperrors.NewInternalError("shift query cancelled", err)
	}

	a.mu.RLock()
	defer a.mu.RUnlock()

	criteria := entities.SelectionCriteria{
		FacilityID: q.FacilityID,
		Window:     q.Window,
		Profession: q.Profession,
		WorkerID:   q.WorkerID,
		Claimed:    entities.ClaimedRanges(q.WorkerID, a.shifts),
	}
	return entities.SelectShifts(criteria, a.shifts), nil
}

// SetFacilityActive changes a facility's standing, creating it if absent
func (a *ShiftLookupAdapter) SetFacilityActive(id entities.FacilityID, active bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.facilities[id] = entities.Facility{ID: id, IsActive: active}
}

// SetWorkerActive changes a known worker's standing
func (a *ShiftLookupAdapter) SetWorkerActive(id entities.WorkerID, active bool) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	worker, ok := a.workers[id]
	if !ok {
		return apperrors.NewNotFoundError(fmt.Sprintf("worker with id %s not found", id))
	}
	worker.IsActive = active
	a.workers[id] = worker
	return nil
}
