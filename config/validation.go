package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors collects every problem found in a single pass.
type ValidationErrors []ValidationError

func (errs ValidationErrors) Error() string {
	msgs := make([]string, len(errs))
	for i, e := range errs {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "; ")
}

var knownProviders = map[string]bool{
	"auto":     true,
	"stub":     true,
	"deepseek": true,
	"gemini":   true,
}

// ValidateConfig checks the configuration for the current environment.
func ValidateConfig(cfg *Config) error {
	var errs ValidationErrors

	if cfg.ServerPort == "" {
		errs = append(errs, ValidationError{"SERVER_PORT", "must not be empty"})
	}

	switch cfg.DBDriver {
	case "sqlite":
		if cfg.SQLitePath == "" {
			errs = append(errs, ValidationError{"SQLITE_PATH", "required for the sqlite driver"})
		}
	case "postgres":
		if cfg.DBHost == "" {
			errs = append(errs, ValidationError{"DB_HOST", "required for the postgres driver"})
		}
		if cfg.DBUser == "" {
			errs = append(errs, ValidationError{"DB_USER", "required for the postgres driver"})
		}
		if cfg.DBName == "" {
			errs = append(errs, ValidationError{"DB_NAME", "required for the postgres driver"})
		}
		if cfg.Env == Production && cfg.DBPassword == "" {
			errs = append(errs, ValidationError{"DB_PASSWORD", "required in production"})
		}
	default:
		errs = append(errs, ValidationError{"DB_DRIVER", fmt.Sprintf("unknown driver %q", cfg.DBDriver)})
	}

	if !knownProviders[cfg.AIProvider] {
		errs = append(errs, ValidationError{"AI_PROVIDER", fmt.Sprintf("unknown provider %q", cfg.AIProvider)})
	}
	if cfg.AIProvider == "deepseek" && cfg.DeepSeekAPIKey == "" {
		errs = append(errs, ValidationError{"DEEPSEEK_API_KEY", "required when AI_PROVIDER=deepseek"})
	}
	if cfg.AIProvider == "gemini" && cfg.GeminiAPIKey == "" {
		errs = append(errs, ValidationError{"GEMINI_API_KEY", "required when AI_PROVIDER=gemini"})
	}
	if cfg.AITimeout <= 0 {
		errs = append(errs, ValidationError{"AI_TIMEOUT", "must be positive"})
	}

	if cfg.AuthEnabled() && cfg.JWTSecret == "" {
		errs = append(errs, ValidationError{"JWT_SECRET", "required when AUTH_PASSPHRASE_HASH is set"})
	}
	if cfg.RecomputeRateLimit < 0 {
		errs = append(errs, ValidationError{"RECOMPUTE_RATE_LIMIT", "must not be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
