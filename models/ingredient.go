package models

import "gorm.io/gorm"

// Reference data, seeded at startup. Read-only through the API.
type Ingredient struct {
	gorm.Model
	Name            string `gorm:"size:128;not null;index" json:"name"`
	MeasurementUnit string `gorm:"size:64;not null" json:"measurement_unit"`
}
