package schedule

import (
	"time"

	"github.com/clinicdesk/clinic-manager/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func CheckIn(ap *models.Appointment) error {
	if err := CanCheckIn(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCheckedIn)
	return nil
}

func Complete(ap *models.Appointment, now time.Time) error {
	if err := CanComplete(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCompleted)
	ap.CompletedAt = &now
	return nil
}

func Cancel(ap *models.Appointment, now time.Time) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
	return nil
}

// Transition routes a requested status change through the matching
// domain action.
func Transition(ap *models.Appointment, to Status, now time.Time) error {
	switch to {
	case StatusCheckedIn:
		return CheckIn(ap)
	case StatusCompleted:
		return Complete(ap, now)
	case StatusCancelled:
		return Cancel(ap, now)
	case StatusBooked:
		return ErrInvalidTransition
	default:
		return ErrInvalidTransition
	}
}
