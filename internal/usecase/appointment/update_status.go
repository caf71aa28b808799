package appointment

import (
	"context"
	"time"

	"github.com/clinicdesk/clinic-manager/internal/audit"
	"github.com/clinicdesk/clinic-manager/internal/httperr"
	"github.com/clinicdesk/clinic-manager/internal/models"
	"github.com/clinicdesk/clinic-manager/internal/schedule"
)

// ======================================================
// INPUT
// ======================================================

type UpdateAppointmentInput struct {
	ID uint

	Status *string
	Notes  *string

	// Actor correlation for the audit trail.
	RequestID string
	UserID    *uint
}

// ======================================================
// USE CASE
// ======================================================

type UpdateAppointment struct {
	repo  schedule.Repository
	audit *audit.Dispatcher
}

func NewUpdateAppointment(
	repo schedule.Repository,
	audit *audit.Dispatcher,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	in UpdateAppointmentInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, in.ID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	action := "appointment_updated"

	if in.Status != nil && *in.Status != ap.Status {
		if !schedule.IsValidStatus(*in.Status) {
			return nil, httperr.ErrBusiness("invalid_status")
		}

		now := time.Now()
		if err := schedule.Transition(ap, schedule.Status(*in.Status), now); err != nil {
			return nil, err
		}
		action = "appointment_" + *in.Status
	}

	if in.Notes != nil {
		ap.Notes = *in.Notes
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		RequestID: in.RequestID,
		UserID:    in.UserID,
		Action:    action,
		Entity:    "appointment",
		EntityID:  &ap.ID,
	})

	return ap, nil
}
