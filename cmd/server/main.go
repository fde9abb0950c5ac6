package main // Entry point package

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4" // Echo web framework
	"go.uber.org/zap"             // structured logging

	"github.com/iliyamo/credential-verifier/internal/auth"       // token verification
	"github.com/iliyamo/credential-verifier/internal/config"     // Internal config loader
	"github.com/iliyamo/credential-verifier/internal/logging"    // logger construction
	"github.com/iliyamo/credential-verifier/internal/middleware" // diagnostic sink
	"github.com/iliyamo/credential-verifier/internal/router"     // Internal router setup
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load() // Load environment config

	logger, err := logging.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	e := echo.New() // Create Echo instance
	e.HideBanner = true
	e.HidePort = true
	router.RegisterRoutes(e, router.Deps{
		Verifier:   auth.NewVerifier(cfg.JWTSecret),
		Sink:       middleware.NewZapSink(logger),
		CookieName: cfg.CookieName,
		CORSOrigin: cfg.CORSOrigin,
	})

	addr := ":" + cfg.Port
	go func() {
		logger.Info("listening", zap.String("addr", addr))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("shutdown failed", zap.Error(err))
	}
}
