package booking

import "github.com/BruksfildServices01/sling-library/internal/httperr"

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func IsStatus(v string) bool {
	switch Status(v) {
	case StatusPending, StatusApproved, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// InitialStatus is forced on every new request regardless of the payload.
func InitialStatus() Status {
	return StatusPending
}

// ===============================
// Validations
// ===============================

func CanApprove(current Status) error {
	if current != StatusPending {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func CanReject(current Status) error {
	if current != StatusPending {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func CanComplete(current Status) error {
	if current != StatusApproved {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}
