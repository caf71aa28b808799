package dto

import "github.com/clinicdesk/clinic-manager/internal/models"

type AppointmentListDTO struct {
	ID          uint   `json:"id"`
	Patient     uint   `json:"patient"`
	PatientName string `json:"patient_name"`
	Doctor      uint   `json:"doctor"`
	DoctorName  string `json:"doctor_name"`
	Type        string `json:"type"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Status      string `json:"status"`
	Notes       string `json:"notes"`
}

func FromAppointment(ap models.Appointment) AppointmentListDTO {
	return AppointmentListDTO{
		ID:          ap.ID,
		Patient:     ap.PatientID,
		PatientName: ap.Patient.Name,
		Doctor:      ap.DoctorID,
		DoctorName:  ap.Doctor.Name,
		Type:        ap.Type,
		Date:        ap.Date,
		Time:        ap.Time,
		Status:      ap.Status,
		Notes:       ap.Notes,
	}
}

func FromAppointments(aps []models.Appointment) []AppointmentListDTO {
	out := make([]AppointmentListDTO, 0, len(aps))
	for _, ap := range aps {
		out = append(out, FromAppointment(ap))
	}
	return out
}
