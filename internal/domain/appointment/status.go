package appointment

import "github.com/BruksfildServices01/appointment-system/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusDenied    Status = "denied"
	StatusCancelled Status = "cancelled"
	StatusDeleted   Status = "deleted"
)

func InitialStatus() Status {
	return StatusPending
}

// ParseStatus rejects anything outside the closed status set. Transitions
// between valid statuses are deliberately unconstrained.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusApproved, StatusDenied, StatusCancelled, StatusDeleted:
		return Status(s), nil
	default:
		return "", httperr.Validation("invalid_status", "invalid appointment status")
	}
}
