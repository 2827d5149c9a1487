package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/calorie-quest/backend/internal/testhelpers"
)

func floatPtr(f float64) *float64 { return &f }

func TestMeasurementService(t *testing.T) {
	ctx := context.Background()
	db, profile := setupProfile(t)
	svc := NewMeasurementService(db)

	t.Run("should create a measurement", func(t *testing.T) {
		m, created, err := svc.SaveMeasurement(ctx, MeasurementInput{
			Date:     "2025-03-01",
			WeightKg: 65,
			WaistCm:  floatPtr(70),
			ChestCm:  floatPtr(0),
			Notes:    strPtr("  after run  "),
		})
		require.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, profile.ID, m.ProfileID)
		require.NotNil(t, m.WaistCm)
		assert.Equal(t, 70.0, *m.WaistCm)
		assert.Nil(t, m.ChestCm, "zero circumference is dropped")
		require.NotNil(t, m.Notes)
		assert.Equal(t, "after run", *m.Notes)
	})

	t.Run("should overwrite the measurement for the same date", func(t *testing.T) {
		first, _, err := svc.SaveMeasurement(ctx, MeasurementInput{Date: "2025-03-05", WeightKg: 64.5, Notes: strPtr("x")})
		require.NoError(t, err)

		second, created, err := svc.SaveMeasurement(ctx, MeasurementInput{Date: "2025-03-05", WeightKg: 64.2})
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, 64.2, second.WeightKg)
		assert.Nil(t, second.Notes)
	})

	t.Run("should list in date order", func(t *testing.T) {
		_, _, err := svc.SaveMeasurement(ctx, MeasurementInput{Date: "2025-02-20", WeightKg: 66})
		require.NoError(t, err)

		list, err := svc.ListMeasurements(ctx)
		require.NoError(t, err)
		require.Len(t, list, 3)
		assert.Equal(t, "2025-02-20", list[0].Date)
		assert.Equal(t, "2025-03-01", list[1].Date)
		assert.Equal(t, "2025-03-05", list[2].Date)
	})

	t.Run("should validate input", func(t *testing.T) {
		_, _, err := svc.SaveMeasurement(ctx, MeasurementInput{Date: "2025-03-05"})
		assert.ErrorIs(t, err, ErrInvalidInput)
		_, _, err = svc.SaveMeasurement(ctx, MeasurementInput{WeightKg: 60})
		assert.ErrorIs(t, err, ErrInvalidInput)
		_, _, err = svc.SaveMeasurement(ctx, MeasurementInput{Date: "2025-13-01", WeightKg: 60})
		assert.ErrorIs(t, err, ErrInvalidDate)
	})

	t.Run("should delete by id", func(t *testing.T) {
		list, err := svc.ListMeasurements(ctx)
		require.NoError(t, err)

		require.NoError(t, svc.DeleteMeasurement(ctx, list[0].ID))
		assert.ErrorIs(t, svc.DeleteMeasurement(ctx, list[0].ID), ErrMeasurementNotFound)
		assert.ErrorIs(t, svc.DeleteMeasurement(ctx, uuid.New()), ErrMeasurementNotFound)

		list, err = svc.ListMeasurements(ctx)
		require.NoError(t, err)
		assert.Len(t, list, 2)
	})
}

func TestMeasurementService_NoProfile(t *testing.T) {
	svc := NewMeasurementService(testhelpers.SetupSQLite(t))
	_, err := svc.ListMeasurements(context.Background())
	assert.ErrorIs(t, err, ErrProfileNotFound)
	_, _, err = svc.SaveMeasurement(context.Background(), MeasurementInput{Date: "2025-03-01", WeightKg: 60})
	assert.ErrorIs(t, err, ErrProfileNotFound)
}
