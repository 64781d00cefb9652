package entities

// IneligibilityReason explains why a well-formed request yields no shifts.
// The set is closed: standing only. Qualification, claim and conflict
// mismatches are expressed as an empty result instead.
type IneligibilityReason string

const (
	IneligibilityReasonInactiveFacility IneligibilityReason = "INACTIVE_FACILITY"
	IneligibilityReasonInactiveWorker   IneligibilityReason = "INACTIVE_WORKER"
)
