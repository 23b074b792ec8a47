package models

import "time"

// Product represents a product in the catalog. The timestamps are
// maintained by GORM and never serialized in API responses.
type Product struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"type:varchar(100);not null" validate:"required"`
	Price        float64   `json:"price" gorm:"not null" validate:"required,gt=0"`
	Availability bool      `json:"availability" gorm:"not null"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
}
