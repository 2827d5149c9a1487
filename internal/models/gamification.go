package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// GamificationState tracks streaks, experience and unlocked achievements.
type GamificationState struct {
	Base
	ProfileID         uuid.UUID                   `gorm:"type:uuid;not null;uniqueIndex" json:"-"`
	CurrentStreakDays int                         `gorm:"not null;default:0" json:"currentStreakDays"`
	LongestStreakDays int                         `gorm:"not null;default:0" json:"longestStreakDays"`
	XP                int                         `gorm:"not null;default:0" json:"xp"`
	Level             int                         `gorm:"not null;default:1" json:"level"`
	LastActiveDate    *string                     `gorm:"size:10" json:"lastActiveDate"`
	Achievements      datatypes.JSONSlice[string] `json:"achievements"`
}

func (GamificationState) TableName() string {
	return "gamification_states"
}

// WeightProgress is the weight section of a progress summary.
type WeightProgress struct {
	StartWeight     float64 `json:"startWeight"`
	CurrentWeight   float64 `json:"currentWeight"`
	TargetWeight    float64 `json:"targetWeight"`
	ProgressPercent float64 `json:"progressPercent"`
}

// ProgressDetails are the statistics behind a summary.
type ProgressDetails struct {
	AverageDailyCalories float64        `json:"averageDailyCalories"`
	DaysWithinTarget     int            `json:"daysWithinTarget"`
	TotalDays            int            `json:"totalDays"`
	WeightProgress       WeightProgress `json:"weightProgress"`
	Strengths            []string       `json:"strengths"`
	AreasToImprove       []string       `json:"areasToImprove"`
}

// ProgressSummaryCache stores the most recent progress narrative.
type ProgressSummaryCache struct {
	Base
	ProfileID      uuid.UUID                           `gorm:"type:uuid;not null;uniqueIndex" json:"-"`
	SummaryText    string                              `gorm:"type:text" json:"summaryText"`
	OverallScore   string                              `gorm:"size:32" json:"overallScore"`
	LastComputedAt time.Time                           `json:"lastComputedAt"`
	Details        datatypes.JSONType[ProgressDetails] `json:"details"`
}

func (ProgressSummaryCache) TableName() string {
	return "progress_summary_caches"
}
