package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/pageza/calorie-quest/backend/internal/middleware"
	"github.com/pageza/calorie-quest/backend/internal/models"
	"github.com/pageza/calorie-quest/backend/internal/service"
)

// MockProfileService is a mock implementation of service.IProfileService
type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) GetProfile(ctx context.Context) (*models.Profile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *MockProfileService) SaveProfile(ctx context.Context, in service.ProfileInput) (*models.Profile, bool, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, false, args.Error(2)
	}
	return args.Get(0).(*models.Profile), args.Bool(1), args.Error(2)
}

// MockMealService is a mock implementation of service.IMealService
type MockMealService struct {
	mock.Mock
}

func (m *MockMealService) ListDays(ctx context.Context) ([]service.DaySummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.DaySummary), args.Error(1)
}

func (m *MockMealService) GetDay(ctx context.Context, date string) (*models.Day, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Day), args.Error(1)
}

func (m *MockMealService) AddMeal(ctx context.Context, date string, in service.MealInput) (*service.MealResult, error) {
	args := m.Called(ctx, date, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.MealResult), args.Error(1)
}

func (m *MockMealService) EditMeal(ctx context.Context, id uuid.UUID, in service.MealEdit) (*service.MealResult, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.MealResult), args.Error(1)
}

func (m *MockMealService) DeleteMeal(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockMeasurementService is a mock implementation of service.IMeasurementService
type MockMeasurementService struct {
	mock.Mock
}

func (m *MockMeasurementService) ListMeasurements(ctx context.Context) ([]models.BodyMeasurement, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.BodyMeasurement), args.Error(1)
}

func (m *MockMeasurementService) SaveMeasurement(ctx context.Context, in service.MeasurementInput) (*models.BodyMeasurement, bool, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, false, args.Error(2)
	}
	return args.Get(0).(*models.BodyMeasurement), args.Bool(1), args.Error(2)
}

func (m *MockMeasurementService) DeleteMeasurement(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockGamificationService is a mock implementation of service.IGamificationService
type MockGamificationService struct {
	mock.Mock
}

func (m *MockGamificationService) GetState(ctx context.Context) (*models.GamificationState, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.GamificationState), args.Error(1)
}

func (m *MockGamificationService) UpdateAfterMeal(ctx context.Context, profileID uuid.UUID) []string {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]string)
}

// MockProgressService is a mock implementation of service.IProgressService
type MockProgressService struct {
	mock.Mock
}

func (m *MockProgressService) GetSummary(ctx context.Context) (*models.ProgressSummaryCache, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ProgressSummaryCache), args.Error(1)
}

func (m *MockProgressService) Recompute(ctx context.Context) (*models.ProgressSummaryCache, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ProgressSummaryCache), args.Error(1)
}

// MockQuestService is a mock implementation of service.IQuestService
type MockQuestService struct {
	mock.Mock
}

func (m *MockQuestService) GetDailyQuest(ctx context.Context) service.DailyQuest {
	args := m.Called(ctx)
	return args.Get(0).(service.DailyQuest)
}

// MockImageService is a mock implementation of service.IImageService
type MockImageService struct {
	mock.Mock
}

func (m *MockImageService) Enabled() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockImageService) UploadMealImage(ctx context.Context, data []byte) (*service.UploadedImage, error) {
	args := m.Called(ctx, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.UploadedImage), args.Error(1)
}

// MockAuthService is a mock implementation of service.IAuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) ValidateToken(token string) (*middleware.TokenClaims, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*middleware.TokenClaims), args.Error(1)
}

func (m *MockAuthService) Enabled() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockAuthService) Login(passphrase string) (string, time.Time, error) {
	args := m.Called(passphrase)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

var (
	_ service.IProfileService      = (*MockProfileService)(nil)
	_ service.IMealService         = (*MockMealService)(nil)
	_ service.IMeasurementService  = (*MockMeasurementService)(nil)
	_ service.IGamificationService = (*MockGamificationService)(nil)
	_ service.IProgressService     = (*MockProgressService)(nil)
	_ service.IQuestService        = (*MockQuestService)(nil)
	_ service.IImageService        = (*MockImageService)(nil)
	_ service.IAuthService         = (*MockAuthService)(nil)
)
