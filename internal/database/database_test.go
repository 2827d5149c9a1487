package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/calorie-quest/backend/config"
	"github.com/pageza/calorie-quest/backend/internal/models"
)

func TestOpenSQLite(t *testing.T) {
	cfg := &config.Config{
		DBDriver:   "sqlite",
		SQLitePath: filepath.Join(t.TempDir(), "quest.db"),
	}

	db, err := Open(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })

	assert.NoError(t, HealthCheck(context.Background(), db))
	for _, m := range models.All() {
		assert.True(t, db.Migrator().HasTable(m), "%T table missing", m)
	}

	// The slot index allows a single profile.
	require.NoError(t, db.Create(&models.Profile{Slot: models.PrimarySlot, Age: 30}).Error)
	assert.Error(t, db.Create(&models.Profile{Slot: models.PrimarySlot, Age: 31}).Error)
}

func TestOpenUnknownDriver(t *testing.T) {
	_, err := Open(&config.Config{DBDriver: "oracle"})
	assert.Error(t, err)
}

func TestPostgresDSN(t *testing.T) {
	dsn := PostgresDSN(&config.Config{
		DBHost: "db", DBPort: "5432", DBUser: "u", DBPassword: "p", DBName: "n", DBSSLMode: "disable",
	})
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=n sslmode=disable", dsn)
}

func TestNewRedisClient(t *testing.T) {
	client, err := NewRedisClient(&config.Config{})
	assert.NoError(t, err)
	assert.Nil(t, client)

	mr := miniredis.RunT(t)
	client, err = NewRedisClient(&config.Config{RedisURL: "redis://" + mr.Addr()})
	require.NoError(t, err)
	defer client.Close()
	assert.NoError(t, client.Ping(context.Background()).Err())

	_, err = NewRedisClient(&config.Config{RedisURL: "://bad"})
	assert.Error(t, err)
}

func TestReset(t *testing.T) {
	cfg := &config.Config{
		DBDriver:   "sqlite",
		SQLitePath: filepath.Join(t.TempDir(), "reset.db"),
	}
	db, err := Open(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })

	require.NoError(t, db.Create(&models.Day{Date: "2025-03-10", CalorieTarget: 2400}).Error)
	require.NoError(t, Reset(db))

	var count int64
	require.NoError(t, db.Model(&models.Day{}).Count(&count).Error)
	assert.Zero(t, count)
	assert.True(t, db.Migrator().HasTable(&models.Day{}))
}
