package appointment

import (
	"context"

	"github.com/clinicdesk/clinic-manager/internal/audit"
	"github.com/clinicdesk/clinic-manager/internal/httperr"
	"github.com/clinicdesk/clinic-manager/internal/schedule"
)

type DeleteAppointment struct {
	repo  schedule.Repository
	audit *audit.Dispatcher
}

func NewDeleteAppointment(
	repo schedule.Repository,
	audit *audit.Dispatcher,
) *DeleteAppointment {
	return &DeleteAppointment{
		repo:  repo,
		audit: audit,
	}
}

type DeleteAppointmentInput struct {
	ID uint

	// Actor correlation for the audit trail.
	RequestID string
	UserID    *uint
}

func (uc *DeleteAppointment) Execute(ctx context.Context, in DeleteAppointmentInput) error {
	if _, err := uc.repo.GetAppointment(ctx, in.ID); err != nil {
		return httperr.ErrBusiness("appointment_not_found")
	}

	if err := uc.repo.DeleteAppointment(ctx, in.ID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		RequestID: in.RequestID,
		UserID:    in.UserID,
		Action:    "appointment_deleted",
		Entity:    "appointment",
		EntityID:  &in.ID,
	})

	return nil
}
