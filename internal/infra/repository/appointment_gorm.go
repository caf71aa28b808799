package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/clinicdesk/clinic-manager/internal/httperr"
	"github.com/clinicdesk/clinic-manager/internal/models"
	"github.com/clinicdesk/clinic-manager/internal/schedule"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Appointment (create / slot uniqueness)
// --------------------------------------------------

func (r *AppointmentGormRepository) AssertSlotFree(
	ctx context.Context,
	doctorID uint,
	date string,
	timeStr string,
) error {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"doctor_id = ? AND date = ? AND time = ? AND status <> ?",
			doctorID,
			date,
			timeStr,
			string(schedule.StatusCancelled),
		).
		Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		return httperr.ErrBusiness(httperr.CodeSlotTaken)
	}

	return nil
}

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	// The slot check and the insert share one transaction so two
	// receptionists racing for the same slot cannot both win.
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var conflicts int64
		if err := tx.
			Model(&models.Appointment{}).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(
				"doctor_id = ? AND date = ? AND time = ? AND status <> ?",
				ap.DoctorID,
				ap.Date,
				ap.Time,
				string(schedule.StatusCancelled),
			).
			Count(&conflicts).Error; err != nil {
			return err
		}

		if conflicts > 0 {
			return httperr.ErrBusiness(httperr.CodeSlotTaken)
		}

		return tx.Create(ap).Error
	})
}

// --------------------------------------------------
// Appointment (read / state change)
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Patient").
		Preload("Doctor").
		First(&ap, id).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

func (r *AppointmentGormRepository) DeleteAppointment(
	ctx context.Context,
	id uint,
) error {
	return r.db.WithContext(ctx).Delete(&models.Appointment{}, id).Error
}

func (r *AppointmentGormRepository) ListAppointments(
	ctx context.Context,
	filter schedule.ListFilter,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Preload("Patient").
		Preload("Doctor")

	if filter.Date != "" {
		q = q.Where("date = ?", filter.Date)
	}
	if filter.DoctorID != 0 {
		q = q.Where("doctor_id = ?", filter.DoctorID)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}

	var aps []models.Appointment
	if err := q.
		Order("date ASC, time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

// --------------------------------------------------
// Reference data
// --------------------------------------------------

func (r *AppointmentGormRepository) GetPatient(
	ctx context.Context,
	id uint,
) (*models.Patient, error) {

	var p models.Patient
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *AppointmentGormRepository) GetDoctor(
	ctx context.Context,
	id uint,
) (*models.Doctor, error) {

	var d models.Doctor
	if err := r.db.WithContext(ctx).First(&d, id).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

// Compile-time check
var _ schedule.Repository = (*AppointmentGormRepository)(nil)
