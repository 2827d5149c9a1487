package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"ENV", "CI", "DB_DRIVER", "SQLITE_PATH", "DB_HOST", "DB_USER", "DB_PASSWORD", "DB_NAME",
		"AI_PROVIDER", "DEEPSEEK_API_KEY", "GEMINI_API_KEY", "AUTH_PASSPHRASE_HASH", "JWT_SECRET",
		"REDIS_URL", "SERVER_PORT", "AI_TIMEOUT", "RECOMPUTE_RATE_LIMIT",
		"GAMIFICATION_BONUS_PER_ACHIEVEMENT", "CORS_ORIGINS", "TZ",
	} {
		t.Setenv(k, "")
	}
	t.Setenv("SECRETS_DIR", t.TempDir())
}

func TestLoadConfigWithDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, Development, cfg.Env)
	assert.Equal(t, "5000", cfg.ServerPort)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "calorie_quest.db", cfg.SQLitePath)
	assert.Equal(t, "auto", cfg.AIProvider)
	assert.Equal(t, 30*time.Second, cfg.AITimeout)
	assert.Equal(t, 10, cfg.RecomputeRateLimit)
	assert.False(t, cfg.BonusPerAchievement)
	assert.False(t, cfg.AuthEnabled())
	assert.Empty(t, cfg.RedisURL)
	assert.Equal(t, []string{"http://localhost:5173", "http://localhost:3000"}, cfg.CORSOrigins)
}

func TestLoadConfig(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_USER", "quest")
	t.Setenv("DB_PASSWORD", "pw")
	t.Setenv("DB_NAME", "quest")
	t.Setenv("REDIS_URL", "redis://localhost:6379")
	t.Setenv("AI_PROVIDER", "DeepSeek")
	t.Setenv("DEEPSEEK_API_KEY", "sk-test")
	t.Setenv("AI_TIMEOUT", "5s")
	t.Setenv("GAMIFICATION_BONUS_PER_ACHIEVEMENT", "true")
	t.Setenv("CORS_ORIGINS", " https://a.example , ,https://b.example")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, "db", cfg.DBHost)
	assert.Equal(t, "pw", cfg.DBPassword)
	assert.Equal(t, "deepseek", cfg.AIProvider)
	assert.Equal(t, "sk-test", cfg.DeepSeekAPIKey)
	assert.Equal(t, 5*time.Second, cfg.AITimeout)
	assert.True(t, cfg.BonusPerAchievement)
	assert.Equal(t, "redis://localhost:6379", cfg.RedisURL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
}

func TestGetSecretFromSecretsDir(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	t.Setenv("SECRETS_DIR", dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "jwt_secret"), []byte("from-docker\n"), 0o600))

	assert.Equal(t, "from-docker", getSecret("JWT_SECRET"))

	t.Setenv("JWT_SECRET", "from-env")
	assert.Equal(t, "from-env", getSecret("JWT_SECRET"))
}

func TestGetSecretFromFileVariable(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "key")
	require.NoError(t, os.WriteFile(path, []byte("sk-file"), 0o600))
	t.Setenv("DEEPSEEK_API_KEY_FILE", path)

	assert.Equal(t, "sk-file", getSecret("DEEPSEEK_API_KEY"))
}

func TestGetEnvironment(t *testing.T) {
	clearEnv(t)
	assert.Equal(t, Development, GetEnvironment())

	t.Setenv("ENV", "Production")
	assert.Equal(t, Production, GetEnvironment())
	assert.True(t, IsProduction())

	t.Setenv("CI", "true")
	assert.Equal(t, CI, GetEnvironment())
}

func TestValidateConfig(t *testing.T) {
	valid := func() *Config {
		return &Config{
			ServerPort: "5000",
			DBDriver:   "sqlite",
			SQLitePath: "x.db",
			AIProvider: "stub",
			AITimeout:  time.Second,
		}
	}

	tests := []struct {
		name   string
		mutate func(*Config)
		fields []string
	}{
		{"valid", func(*Config) {}, nil},
		{"unknown driver", func(c *Config) { c.DBDriver = "mysql" }, []string{"DB_DRIVER"}},
		{"postgres missing fields", func(c *Config) { c.DBDriver = "postgres" }, []string{"DB_HOST", "DB_USER", "DB_NAME"}},
		{"auth without secret", func(c *Config) { c.AuthPassphraseHash = "$2a$hash" }, []string{"JWT_SECRET"}},
		{"gemini without key", func(c *Config) { c.AIProvider = "gemini" }, []string{"GEMINI_API_KEY"}},
		{"unknown provider", func(c *Config) { c.AIProvider = "openai" }, []string{"AI_PROVIDER"}},
		{"zero timeout", func(c *Config) { c.AITimeout = 0 }, []string{"AI_TIMEOUT"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := ValidateConfig(cfg)
			if tt.fields == nil {
				assert.NoError(t, err)
				return
			}
			var verrs ValidationErrors
			require.ErrorAs(t, err, &verrs)
			var got []string
			for _, e := range verrs {
				got = append(got, e.Field)
			}
			assert.Equal(t, tt.fields, got)
		})
	}
}
