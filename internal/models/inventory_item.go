package models

import "time"

type InventoryItem struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name     string `gorm:"size:100;not null" json:"name"`
	Category string `gorm:"size:50" json:"category"`
	Unit     string `gorm:"size:20" json:"unit"`

	Quantity     int `json:"quantity"`
	ReorderLevel int `gorm:"default:10" json:"reorder_level"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
