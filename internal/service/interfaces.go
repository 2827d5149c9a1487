package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/pageza/calorie-quest/backend/internal/middleware"
	"github.com/pageza/calorie-quest/backend/internal/models"
)

// IProfileService defines the interface for profile operations
type IProfileService interface {
	GetProfile(ctx context.Context) (*models.Profile, error)
	SaveProfile(ctx context.Context, in ProfileInput) (*models.Profile, bool, error)
}

// IMealService defines the interface for day and meal operations
type IMealService interface {
	ListDays(ctx context.Context) ([]DaySummary, error)
	GetDay(ctx context.Context, date string) (*models.Day, error)
	AddMeal(ctx context.Context, date string, in MealInput) (*MealResult, error)
	EditMeal(ctx context.Context, id uuid.UUID, in MealEdit) (*MealResult, error)
	DeleteMeal(ctx context.Context, id uuid.UUID) error
}

// IMeasurementService defines the interface for body measurement operations
type IMeasurementService interface {
	ListMeasurements(ctx context.Context) ([]models.BodyMeasurement, error)
	SaveMeasurement(ctx context.Context, in MeasurementInput) (*models.BodyMeasurement, bool, error)
	DeleteMeasurement(ctx context.Context, id uuid.UUID) error
}

// IGamificationService defines the interface for gamification reads and updates
type IGamificationService interface {
	GetState(ctx context.Context) (*models.GamificationState, error)
	UpdateAfterMeal(ctx context.Context, profileID uuid.UUID) []string
}

// IProgressService defines the interface for progress summaries
type IProgressService interface {
	GetSummary(ctx context.Context) (*models.ProgressSummaryCache, error)
	Recompute(ctx context.Context) (*models.ProgressSummaryCache, error)
}

// IQuestService defines the interface for daily quests
type IQuestService interface {
	GetDailyQuest(ctx context.Context) DailyQuest
}

// IImageService defines the interface for meal photo uploads
type IImageService interface {
	Enabled() bool
	UploadMealImage(ctx context.Context, data []byte) (*UploadedImage, error)
}

// IAuthService defines the interface for passphrase authentication
type IAuthService interface {
	middleware.TokenValidator
	Enabled() bool
	Login(passphrase string) (string, time.Time, error)
}
