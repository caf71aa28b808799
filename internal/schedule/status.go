package schedule

import "github.com/clinicdesk/clinic-manager/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusBooked    Status = "booked"
	StatusCheckedIn Status = "checked_in"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func IsValidStatus(s string) bool {
	switch Status(s) {
	case StatusBooked, StatusCheckedIn, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Active appointments hold their slot; cancelled ones release it.
func IsActive(s Status) bool {
	return s != StatusCancelled
}

// ===============================
// Transitions
// ===============================

var ErrInvalidTransition = httperr.ErrBusiness(httperr.CodeInvalidState)

func CanCheckIn(current Status) error {
	if current != StatusBooked {
		return ErrInvalidTransition
	}
	return nil
}

func CanComplete(current Status) error {
	if current != StatusBooked && current != StatusCheckedIn {
		return ErrInvalidTransition
	}
	return nil
}

func CanCancel(current Status) error {
	if current == StatusCancelled || current == StatusCompleted {
		return ErrInvalidTransition
	}
	return nil
}

func InitialStatus() Status {
	return StatusBooked
}
