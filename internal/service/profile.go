package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/pageza/calorie-quest/backend/internal/logger"
	"github.com/pageza/calorie-quest/backend/internal/models"
	"github.com/pageza/calorie-quest/backend/internal/nutrition"
)

const welcomeSummary = "Welcome! Start logging your meals to build your nutrition diary."

// ProfileInput is the onboarding and settings form.
type ProfileInput struct {
	Age            int     `json:"age"`
	Gender         string  `json:"gender"`
	HeightCm       float64 `json:"heightCm"`
	WeightKg       float64 `json:"weightKg"`
	TargetWeightKg float64 `json:"targetWeightKg"`
	ActivityLevel  string  `json:"activityLevel"`
}

func (in ProfileInput) validate() error {
	switch {
	case in.Age <= 0:
		return invalid("age is required")
	case in.HeightCm <= 0:
		return invalid("heightCm is required")
	case in.WeightKg <= 0:
		return invalid("weightKg is required")
	case in.TargetWeightKg <= 0:
		return invalid("targetWeightKg is required")
	case !nutrition.ValidGender(nutrition.Gender(in.Gender)):
		return invalid("gender must be male or female")
	case !nutrition.ValidActivity(nutrition.ActivityLevel(in.ActivityLevel)):
		return invalid("activityLevel must be low, medium or high")
	}
	return nil
}

// ProfileService handles the single user profile
type ProfileService struct {
	db  *gorm.DB
	now Clock
	log *zap.Logger
}

var _ IProfileService = (*ProfileService)(nil)

// NewProfileService creates a new ProfileService instance
func NewProfileService(db *gorm.DB, now Clock) *ProfileService {
	return &ProfileService{db: db, now: now, log: logger.Named("profile")}
}

// GetProfile returns the profile or ErrProfileNotFound.
func (s *ProfileService) GetProfile(ctx context.Context) (*models.Profile, error) {
	return loadProfile(ctx, s.db)
}

// SaveProfile creates the profile on first call and updates it afterwards.
// The calorie target is recomputed every time; existing days keep theirs.
func (s *ProfileService) SaveProfile(ctx context.Context, in ProfileInput) (*models.Profile, bool, error) {
	if err := in.validate(); err != nil {
		return nil, false, err
	}

	target := nutrition.DailyCalories(
		nutrition.Gender(in.Gender), in.Age, in.HeightCm, in.WeightKg, nutrition.ActivityLevel(in.ActivityLevel),
	)

	existing, err := loadProfile(ctx, s.db)
	switch {
	case err == nil:
		existing.Age = in.Age
		existing.Gender = in.Gender
		existing.HeightCm = in.HeightCm
		existing.WeightKg = in.WeightKg
		existing.TargetWeightKg = in.TargetWeightKg
		existing.ActivityLevel = in.ActivityLevel
		existing.DailyCalorieTarget = target
		if err := s.db.WithContext(ctx).Save(existing).Error; err != nil {
			return nil, false, err
		}
		s.log.Info("profile updated", zap.Int("dailyCalorieTarget", target))
		return existing, false, nil
	case !errors.Is(err, ErrProfileNotFound):
		return nil, false, err
	}

	profile := &models.Profile{
		Slot:               models.PrimarySlot,
		Age:                in.Age,
		Gender:             in.Gender,
		HeightCm:           in.HeightCm,
		WeightKg:           in.WeightKg,
		TargetWeightKg:     in.TargetWeightKg,
		ActivityLevel:      in.ActivityLevel,
		DailyCalorieTarget: target,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(profile).Error; err != nil {
			return err
		}
		if err := tx.Create(&models.GamificationState{
			ProfileID:    profile.ID,
			Level:        1,
			Achievements: []string{},
		}).Error; err != nil {
			return err
		}
		return tx.Create(&models.ProgressSummaryCache{
			ProfileID:      profile.ID,
			SummaryText:    welcomeSummary,
			OverallScore:   "starting",
			LastComputedAt: s.now(),
			Details: datatypes.NewJSONType(models.ProgressDetails{
				Strengths:      []string{},
				AreasToImprove: []string{},
			}),
		}).Error
	})
	if err != nil {
		return nil, false, err
	}

	s.log.Info("profile created", zap.Int("dailyCalorieTarget", target))
	return profile, true, nil
}

func loadProfile(ctx context.Context, db *gorm.DB) (*models.Profile, error) {
	var profile models.Profile
	err := db.WithContext(ctx).Where("slot = ?", models.PrimarySlot).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}
