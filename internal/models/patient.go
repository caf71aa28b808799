package models

import "time"

type Patient struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name   string `gorm:"size:100;not null" json:"name"`
	Age    int    `json:"age"`
	Gender string `gorm:"size:10" json:"gender"`
	Phone  string `gorm:"size:20" json:"phone"`

	History   string `gorm:"type:text" json:"history"`
	Allergies string `gorm:"size:255" json:"allergies"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
