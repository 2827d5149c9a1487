package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/pageza/calorie-quest/backend/config"
	"github.com/pageza/calorie-quest/backend/internal/database"
	"github.com/pageza/calorie-quest/backend/internal/logger"
)

func main() {
	reset := flag.Bool("reset", false, "drop every table before migrating")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Init(cfg.Env == config.Production); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// Open applies pending migrations.
	db, err := database.Open(cfg)
	if err != nil {
		logger.Error("migration failed", zap.Error(err))
		os.Exit(1)
	}
	defer database.Close(db)

	if *reset {
		if cfg.Env == config.Production {
			logger.Error("refusing to reset a production database")
			os.Exit(1)
		}
		if err := database.Reset(db); err != nil {
			logger.Error("reset failed", zap.Error(err))
			os.Exit(1)
		}
		logger.Info("database reset", zap.String("driver", cfg.DBDriver))
		return
	}

	logger.Info("schema is up to date", zap.String("driver", cfg.DBDriver))
}
