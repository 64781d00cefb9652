package entities

import (
	"time"

	"github.com/google/uuid"
)

// StandingKind is the entity whose standing changed
type StandingKind string

const (
	StandingKindFacility StandingKind = "facility"
	StandingKindWorker   StandingKind = "worker"
)

// StandingEvent is published by the write path when a facility or worker
// is activated or deactivated.
type StandingEvent struct {
	ID        string       `json:"id"`
	Kind      StandingKind `json:"kind"`
	EntityID  int64        `json:"entity_id"`
	IsActive  bool         `json:"is_active"`
	Timestamp time.Time    `json:"timestamp"`
}

// NewFacilityStandingEvent creates an event for a facility standing change
func NewFacilityStandingEvent(id FacilityID, isActive bool) *StandingEvent {
	return newStandingEvent(StandingKindFacility, int64(id), isActive)
}

// NewWorkerStandingEvent creates an event for a worker standing change
func NewWorkerStandingEvent(id WorkerID, isActive bool) *StandingEvent {
	return newStandingEvent(StandingKindWorker, int64(id), isActive)
}

func newStandingEvent(kind StandingKind, entityID int64, isActive bool) *StandingEvent {
	return &StandingEvent{
		ID:        uuid.New().String(),
		Kind:      kind,
		EntityID:  entityID,
		IsActive:  isActive,
		Timestamp: time.Now().UTC(),
	}
}
