package entities

import (
	"fmt"
	"strings"
	"time"

	apperrors "github.com/zatekoja/shiftboard/pkg/errors"
)

// TimestampLayout is the canonical minute-precision timestamp format
const TimestampLayout = "2006-01-02 15:04"

const dateLayout = "2006-01-02"

// TimeWindow is a closed request window. Construct it with NewTimeWindow.
type TimeWindow struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// NewTimeWindow builds a window truncated to the minute. start must not be after end.
func NewTimeWindow(start, end time.Time) (TimeWindow, error) {
	start = start.Truncate(time.Minute)
	end = end.Truncate(time.Minute)
	if start.After(end) {
		return TimeWindow{}, apperrors.NewValidationError(
			fmt.Sprintf("window start %s is after end %s", start.Format(TimestampLayout), end.Format(TimestampLayout)),
		)
	}
	return TimeWindow{Start: start, End: end}, nil
}

// Contains reports whether r lies fully inside the window
func (w TimeWindow) Contains(r TimeRange) bool {
	return !r.Start.Before(w.Start) && !r.End.After(w.End)
}

// ParseTimestamp accepts "2006-01-02 15:04", "2006-01-02" or RFC3339.
// Layouts without a zone are read as UTC.
func ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{TimestampLayout, time.RFC3339, dateLayout} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Truncate(time.Minute), nil
		}
	}
	return time.Time{}, apperrors.NewValidationError(fmt.Sprintf("invalid timestamp %q (use %q)", s, TimestampLayout))
}

// ParseTimeWindow parses both endpoints and validates the window
func ParseTimeWindow(start, end string) (TimeWindow, error) {
	s, err := ParseTimestamp(start)
	if err != nil {
		return TimeWindow{}, err
	}
	e, err := ParseTimestamp(end)
	if err != nil {
		return TimeWindow{}, err
	}
	return NewTimeWindow(s, e)
}
