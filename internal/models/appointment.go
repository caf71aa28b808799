package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	PatientID uint    `json:"patient"`
	Patient   Patient `gorm:"foreignKey:PatientID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"patient_detail"`

	DoctorID uint   `json:"doctor"`
	Doctor   Doctor `gorm:"foreignKey:DoctorID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"doctor_detail"`

	// Service/type label; "General" when no service was picked.
	Type string `gorm:"size:100" json:"type"`

	// Date and time are stored exactly as they travel on the wire:
	// "2006-01-02" and "15:04:05".
	Date string `gorm:"size:10;index" json:"date"`
	Time string `gorm:"size:8" json:"time"`

	Status string `gorm:"size:20;default:'booked'" json:"status"`
	Notes  string `gorm:"size:255" json:"notes"`

	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
