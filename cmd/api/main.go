package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/pageza/calorie-quest/backend/config"
	"github.com/pageza/calorie-quest/backend/internal/logger"
	"github.com/pageza/calorie-quest/backend/internal/server"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Env == config.Production); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.Named("main")

	srv, err := server.New(cfg)
	if err != nil {
		log.Fatal("failed to build server", zap.Error(err))
	}

	// Channel to listen for errors coming from the server
	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			log.Error("server error", zap.Error(err))
		}
	case sig := <-quit:
		log.Info("received signal", zap.String("signal", sig.String()))
	}

	log.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server shutdown error", zap.Error(err))
		return
	}
	log.Info("server stopped")
}
