package schedule

import (
	"context"

	"github.com/clinicdesk/clinic-manager/internal/models"
)

// ListFilter narrows an appointment listing; zero values mean "any".
type ListFilter struct {
	Date     string
	DoctorID uint
	Status   string
}

type Repository interface {
	// -------- Appointment (create / slot uniqueness) --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// AssertSlotFree fails with a slot_taken business error when a
	// non-cancelled appointment already holds (date, doctor, time).
	AssertSlotFree(
		ctx context.Context,
		doctorID uint,
		date string,
		time string,
	) error

	// -------- Appointment (read / state change) --------
	GetAppointment(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	DeleteAppointment(
		ctx context.Context,
		id uint,
	) error

	ListAppointments(
		ctx context.Context,
		filter ListFilter,
	) ([]models.Appointment, error)

	// -------- Reference data --------
	GetPatient(
		ctx context.Context,
		id uint,
	) (*models.Patient, error)

	GetDoctor(
		ctx context.Context,
		id uint,
	) (*models.Doctor, error)
}
