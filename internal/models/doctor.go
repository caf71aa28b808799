package models

import "time"

// Doctors are reference data from this application's point of view:
// listed and read, never created or edited through the API.
type Doctor struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name      string `gorm:"size:100;not null" json:"name"`
	Specialty string `gorm:"size:100" json:"specialty"`
	Phone     string `gorm:"size:20" json:"phone"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
