package entities

import (
	"fmt"
	"strconv"
)

// FacilityID identifies a facility. It is opaque and never used arithmetically.
type FacilityID int64

// WorkerID identifies a worker.
type WorkerID int64

// ShiftID identifies a shift.
type ShiftID int64

func (id FacilityID) String() string { return strconv.FormatInt(int64(id), 10) }
func (id WorkerID) String() string   { return strconv.FormatInt(int64(id), 10) }
func (id ShiftID) String() string    { return strconv.FormatInt(int64(id), 10) }

// ParseFacilityID parses a non-negative facility identifier
func ParseFacilityID(s string) (FacilityID, error) {
	v, err := parseID("facility", s)
	return FacilityID(v), err
}

// ParseWorkerID parses a non-negative worker identifier
func ParseWorkerID(s string) (WorkerID, error) {
	v, err := parseID("worker", s)
	return WorkerID(v), err
}

func parseID(kind, s string) (int64, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s id %q", kind, s)
	}
	if v < 0 {
		return 0, fmt.Errorf("invalid %s id %q: must be non-negative", kind, s)
	}
	return v, nil
}
