package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pageza/calorie-quest/backend/config"
	"github.com/pageza/calorie-quest/backend/internal/api"
	"github.com/pageza/calorie-quest/backend/internal/database"
	"github.com/pageza/calorie-quest/backend/internal/logger"
	"github.com/pageza/calorie-quest/backend/internal/middleware"
	"github.com/pageza/calorie-quest/backend/internal/service"
)

const (
	recomputeWindow = time.Hour
	// storeSlack covers database work and response writing.
	storeSlack = 10 * time.Second
)

// Server represents the HTTP server
type Server struct {
	cfg    *config.Config
	router *gin.Engine
	http   *http.Server
	db     *gorm.DB
	redis  *redis.Client
	log    *zap.Logger
}

// New connects the backing stores, builds the services and registers the routes.
func New(cfg *config.Config) (*Server, error) {
	log := logger.Named("server")

	if cfg.Env == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Open(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	rdb, err := database.NewRedisClient(cfg)
	if err != nil {
		// Redis only backs caching and rate limiting.
		log.Warn("redis unavailable, continuing without it", zap.Error(err))
		rdb = nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	s3Config, err := config.NewS3Config(ctx, cfg)
	switch {
	case errors.Is(err, config.ErrStorageDisabled):
		log.Info("meal image uploads disabled, S3_BUCKET_NAME is not set")
	case err != nil:
		log.Warn("failed to configure S3, meal image uploads disabled", zap.Error(err))
		s3Config = nil
	}

	clock := service.LocalClock(cfg.Location)
	ai := service.NewAIGateway(cfg)
	gamification := service.NewGamificationService(db, clock, cfg.BonusPerAchievement)

	limiter := middleware.NewRateLimiter(rdb, middleware.RateLimitConfig{
		Window:    recomputeWindow,
		Limit:     cfg.RecomputeRateLimit,
		KeyPrefix: "ratelimit:recompute",
	}, logger.Named("ratelimit"))

	svc := api.Services{
		Profile:      service.NewProfileService(db, clock),
		Meals:        service.NewMealService(db, ai, gamification),
		Measurements: service.NewMeasurementService(db),
		Gamification: gamification,
		Progress:     service.NewProgressService(db, ai, clock),
		Quest:        service.NewQuestService(ai, rdb, clock),
		Images:       service.NewImageService(s3Config, clock),
		Auth:         service.NewAuthService(cfg.AuthPassphraseHash, cfg.JWTSecret, cfg.TokenTTL, clock),
		DBPing: func(ctx context.Context) error {
			return database.HealthCheck(ctx, db)
		},
	}
	if limiter.Enabled() {
		svc.RecomputeLimit = limiter.Middleware()
	}

	router := gin.New()
	router.Use(
		middleware.Recovery(log),
		middleware.RequestLogger(logger.Named("http")),
		middleware.CORS(cfg.CORSOrigins),
	)
	api.RegisterRoutes(router, svc)

	log.Info("server configured",
		zap.String("addr", cfg.Addr()),
		zap.Bool("auth", cfg.AuthEnabled()),
		zap.Bool("redis", rdb != nil),
		zap.Bool("uploads", s3Config != nil),
	)

	return &Server{
		cfg:    cfg,
		router: router,
		db:     db,
		redis:  rdb,
		log:    log,
	}, nil
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start listens on the configured address until Shutdown is called.
func (s *Server) Start() error {
	s.http = &http.Server{
		Addr:              s.cfg.Addr(),
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      writeTimeout(s.cfg),
	}

	s.log.Info("listening", zap.String("addr", s.http.Addr))
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// writeTimeout leaves room for the AI calls of the slowest request. Each
// gateway call, retries included, is bounded by AITimeout.
func writeTimeout(cfg *config.Config) time.Duration {
	return cfg.AITimeout*service.AICallsPerRequest + storeSlack
}

// Shutdown stops the HTTP server and releases the backing stores.
func (s *Server) Shutdown(ctx context.Context) error {
	var errs []error
	if s.http != nil {
		if err := s.http.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("http shutdown: %w", err))
		}
	}
	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			errs = append(errs, fmt.Errorf("redis close: %w", err))
		}
	}
	if err := database.Close(s.db); err != nil {
		errs = append(errs, fmt.Errorf("database close: %w", err))
	}
	return errors.Join(errs...)
}
