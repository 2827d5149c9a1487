package models

// PrimarySlot is the only value Profile.Slot ever takes. The unique index on
// Slot keeps the deployment to a single profile.
const PrimarySlot = "primary"

type Profile struct {
	Base
	Slot               string  `gorm:"size:16;not null;uniqueIndex" json:"-"`
	Age                int     `gorm:"not null" json:"age"`
	Gender             string  `gorm:"size:8;not null" json:"gender"`
	HeightCm           float64 `gorm:"not null" json:"heightCm"`
	WeightKg           float64 `gorm:"not null" json:"weightKg"`
	TargetWeightKg     float64 `gorm:"not null" json:"targetWeightKg"`
	ActivityLevel      string  `gorm:"size:8;not null" json:"activityLevel"`
	DailyCalorieTarget int     `gorm:"not null" json:"dailyCalorieTarget"`
}

func (Profile) TableName() string {
	return "profiles"
}
