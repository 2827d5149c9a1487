package models

import "github.com/google/uuid"

// BodyMeasurement is at most one record per profile and date.
type BodyMeasurement struct {
	Base
	ProfileID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_measurement_profile_date" json:"-"`
	Date      string    `gorm:"size:10;not null;uniqueIndex:idx_measurement_profile_date" json:"date"`
	WeightKg  float64   `gorm:"not null" json:"weightKg"`
	WaistCm   *float64  `json:"waistCm"`
	ChestCm   *float64  `json:"chestCm"`
	HipsCm    *float64  `json:"hipsCm"`
	Notes     *string   `gorm:"type:text" json:"notes"`
}

func (BodyMeasurement) TableName() string {
	return "body_measurements"
}
