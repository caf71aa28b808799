package appointment

import (
	"context"
	"time"

	"github.com/clinicdesk/clinic-manager/internal/audit"
	"github.com/clinicdesk/clinic-manager/internal/httperr"
	"github.com/clinicdesk/clinic-manager/internal/models"
	"github.com/clinicdesk/clinic-manager/internal/schedule"
	"github.com/clinicdesk/clinic-manager/internal/timeutil"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	PatientID uint
	DoctorID  uint

	Type  string
	Date  string
	Time  string
	Notes string

	// Actor correlation for the audit trail.
	RequestID string
	UserID    *uint
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  schedule.Repository
	audit *audit.Dispatcher
}

func NewCreateAppointment(
	repo schedule.Repository,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	if _, err := uc.repo.GetPatient(ctx, in.PatientID); err != nil {
		return nil, httperr.ErrBusiness("patient_not_found")
	}

	if _, err := uc.repo.GetDoctor(ctx, in.DoctorID); err != nil {
		return nil, httperr.ErrBusiness("doctor_not_found")
	}

	if _, err := timeutil.ParseDate(in.Date); err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	if _, err := time.Parse(timeutil.TimeLayout, in.Time); err != nil {
		return nil, httperr.ErrBusiness("invalid_time")
	}

	apType := in.Type
	if apType == "" {
		apType = "General"
	}

	ap := &models.Appointment{
		PatientID: in.PatientID,
		DoctorID:  in.DoctorID,
		Type:      apType,
		Date:      in.Date,
		Time:      in.Time,
		Status:    string(schedule.InitialStatus()),
		Notes:     in.Notes,
	}

	// CreateAppointment re-checks the slot inside its transaction;
	// this is the fast path that avoids opening one for a busy slot.
	if err := uc.repo.AssertSlotFree(ctx, in.DoctorID, in.Date, in.Time); err != nil {
		return nil, err
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		RequestID: in.RequestID,
		UserID:    in.UserID,
		Action:    "appointment_created",
		Entity:    "appointment",
		EntityID:  &ap.ID,
		Metadata: map[string]any{
			"doctor": in.DoctorID,
			"date":   in.Date,
			"time":   in.Time,
		},
	})

	return ap, nil
}
