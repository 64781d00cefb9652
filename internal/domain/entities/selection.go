package entities

// SelectionCriteria holds everything the shift-selection predicate needs.
// Claimed is the set of ranges the requesting worker already holds.
type SelectionCriteria struct {
	FacilityID FacilityID
	Window     TimeWindow
	Profession Profession
	WorkerID   WorkerID
	Claimed    []TimeRange
}

// Admits reports whether shift is eligible under the criteria:
//   - it belongs to the facility
//   - it lies fully inside the window
//   - its profession matches the worker's
//   - it is neither deleted nor claimed
//   - it does not overlap any range the worker already holds
func (c SelectionCriteria) Admits(shift Shift) bool {
	if shift.FacilityID != c.FacilityID {
		return false
	}
	if !c.Window.Contains(shift.TimeRange()) {
		return false
	}
	if shift.Profession != c.Profession {
		return false
	}
	if shift.IsDeleted || shift.ClaimedBy != nil {
		return false
	}
	candidate := shift.TimeRange()
	for _, held := range c.Claimed {
		if candidate.Overlaps(held) {
			return false
		}
	}
	return true
}

// ClaimedRanges returns the spans of non-deleted shifts held by worker
func ClaimedRanges(worker WorkerID, shifts []Shift) []TimeRange {
	var ranges []TimeRange
	for _, s := range shifts {
		if s.IsDeleted || s.ClaimedBy == nil || *s.ClaimedBy != worker {
			continue
		}
		ranges = append(ranges, s.TimeRange())
	}
	return ranges
}

// SelectShifts applies the criteria to a shift set and returns matches ordered by start, then id
func SelectShifts(c SelectionCriteria, shifts []Shift) []Shift {
	selected := make([]Shift, 0)
	for _, s := range shifts {
		if c.Admits(s) {
			selected = append(selected, s)
		}
	}
	SortShifts(selected)
	return selected
}
