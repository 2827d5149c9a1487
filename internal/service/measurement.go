package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pageza/calorie-quest/backend/internal/models"
)

// MeasurementInput is a body measurement for one date.
type MeasurementInput struct {
	Date     string   `json:"date"`
	WeightKg float64  `json:"weightKg"`
	WaistCm  *float64 `json:"waistCm"`
	ChestCm  *float64 `json:"chestCm"`
	HipsCm   *float64 `json:"hipsCm"`
	Notes    *string  `json:"notes"`
}

// MeasurementService stores body measurements, one per date.
type MeasurementService struct {
	db *gorm.DB
}

var _ IMeasurementService = (*MeasurementService)(nil)

func NewMeasurementService(db *gorm.DB) *MeasurementService {
	return &MeasurementService{db: db}
}

// ListMeasurements returns every measurement in date order.
func (s *MeasurementService) ListMeasurements(ctx context.Context) ([]models.BodyMeasurement, error) {
	profile, err := loadProfile(ctx, s.db)
	if err != nil {
		return nil, err
	}
	measurements := []models.BodyMeasurement{}
	err = s.db.WithContext(ctx).
		Where("profile_id = ?", profile.ID).
		Order("date asc").
		Find(&measurements).Error
	return measurements, err
}

// SaveMeasurement creates the measurement for its date, or overwrites the
// existing one. The boolean reports whether a new record was created.
func (s *MeasurementService) SaveMeasurement(ctx context.Context, in MeasurementInput) (*models.BodyMeasurement, bool, error) {
	in.Date = strings.TrimSpace(in.Date)
	if in.Date == "" || in.WeightKg <= 0 {
		return nil, false, invalid("date and weightKg are required")
	}
	if err := validDate(in.Date); err != nil {
		return nil, false, err
	}

	profile, err := loadProfile(ctx, s.db)
	if err != nil {
		return nil, false, err
	}

	db := s.db.WithContext(ctx)
	var m models.BodyMeasurement
	err = db.Where("profile_id = ? AND date = ?", profile.ID, in.Date).First(&m).Error
	created := errors.Is(err, gorm.ErrRecordNotFound)
	if err != nil && !created {
		return nil, false, err
	}

	m.ProfileID = profile.ID
	m.Date = in.Date
	m.WeightKg = in.WeightKg
	m.WaistCm = positiveOrNil(in.WaistCm)
	m.ChestCm = positiveOrNil(in.ChestCm)
	m.HipsCm = positiveOrNil(in.HipsCm)
	m.Notes = nil
	if in.Notes != nil && strings.TrimSpace(*in.Notes) != "" {
		notes := strings.TrimSpace(*in.Notes)
		m.Notes = &notes
	}

	if created {
		err = db.Create(&m).Error
	} else {
		err = db.Save(&m).Error
	}
	if err != nil {
		return nil, false, err
	}
	return &m, created, nil
}

// DeleteMeasurement removes a measurement by id.
func (s *MeasurementService) DeleteMeasurement(ctx context.Context, id uuid.UUID) error {
	res := s.db.WithContext(ctx).Delete(&models.BodyMeasurement{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrMeasurementNotFound
	}
	return nil
}

// positiveOrNil drops zero and negative circumferences.
func positiveOrNil(v *float64) *float64 {
	if v == nil || *v <= 0 {
		return nil
	}
	return v
}
