package entities

import (
	"sort"
	"time"
)

// TimeRange is a half-open interval [Start, End)
type TimeRange struct {
	Start time.Time
	End   time.Time
}

// Overlaps reports whether two half-open ranges intersect. Touching endpoints do not.
func (r TimeRange) Overlaps(other TimeRange) bool {
	return r.Start.Before(other.End) && other.Start.Before(r.End)
}

// Shift is an open or claimed unit of work at a facility. It is read-only here.
type Shift struct {
	ID         ShiftID    `json:"id"`
	FacilityID FacilityID `json:"facility_id"`
	Start      time.Time  `json:"start"`
	End        time.Time  `json:"end"`
	Profession Profession `json:"profession"`
	IsDeleted  bool       `json:"is_deleted"`
	ClaimedBy  *WorkerID  `json:"claimed_by,omitempty"`
}

// TimeRange returns the shift's span
func (s Shift) TimeRange() TimeRange {
	return TimeRange{Start: s.Start, End: s.End}
}

// Eligible projects the shift to the fields exposed to callers
func (s Shift) Eligible() EligibleShift {
	return EligibleShift{ID: s.ID, Start: s.Start, End: s.End}
}

// EligibleShift is a shift a worker may claim
type EligibleShift struct {
	ID    ShiftID   `json:"id"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// SortEligibleShifts orders shifts by start, then id
func SortEligibleShifts(shifts []EligibleShift) {
	sort.SliceStable(shifts, func(i, j int) bool {
		if !shifts[i].Start.Equal(shifts[j].Start) {
			return shifts[i].Start.Before(shifts[j].Start)
		}
		return shifts[i].ID < shifts[j].ID
	})
}

// SortShifts orders shifts by start, then id
func SortShifts(shifts []Shift) {
	sort.SliceStable(shifts, func(i, j int) bool {
		if !shifts[i].Start.Equal(shifts[j].Start) {
			return shifts[i].Start.Before(shifts[j].Start)
		}
		return shifts[i].ID < shifts[j].ID
	})
}
