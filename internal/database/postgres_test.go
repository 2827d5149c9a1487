package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/calorie-quest/backend/internal/models"
	"github.com/pageza/calorie-quest/backend/internal/testhelpers"
)

func TestPostgresMigrations(t *testing.T) {
	db := testhelpers.SetupPostgres(t)

	require.NoError(t, Migrate(db))
	for _, m := range models.All() {
		assert.True(t, db.Migrator().HasTable(m), "%T table missing", m)
	}

	day := models.Day{Date: "2024-03-01", CalorieTarget: 2000}
	require.NoError(t, db.Create(&day).Error)
	assert.Error(t, db.Create(&models.Day{Date: "2024-03-01"}).Error)
}
