package appointment

import (
	"context"

	"github.com/clinicdesk/clinic-manager/internal/models"
	"github.com/clinicdesk/clinic-manager/internal/schedule"
)

type ListAppointments struct {
	repo schedule.Repository
}

func NewListAppointments(repo schedule.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

func (uc *ListAppointments) Execute(
	ctx context.Context,
	filter schedule.ListFilter,
) ([]models.Appointment, error) {
	return uc.repo.ListAppointments(ctx, filter)
}
