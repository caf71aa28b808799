package models

import "time"

// Visit is one historical encounter in a patient's record.
type Visit struct {
	ID uint `gorm:"primaryKey" json:"id"`

	PatientID uint `gorm:"index" json:"patient"`

	Complaint     string `gorm:"size:255" json:"complaint"`
	Findings      string `gorm:"type:text" json:"findings"`
	Diagnosis     string `gorm:"size:255" json:"diagnosis"`
	Prescriptions string `gorm:"type:text" json:"prescriptions"`
	Vitals        string `gorm:"size:255" json:"vitals"`
	Labs          string `gorm:"type:text" json:"labs"`
	Procedures    string `gorm:"type:text" json:"procedures"`

	FollowUpDate  string `gorm:"size:10" json:"follow_up_date"`
	PaymentStatus string `gorm:"size:20;default:'pending'" json:"payment_status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
