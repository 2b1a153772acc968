package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/okazmarkt/core/internal/app"
	"github.com/okazmarkt/core/internal/config"
	"github.com/okazmarkt/core/internal/pkg/prettylog"
	"github.com/okazmarkt/core/internal/pkg/proctitle"
)

func newLogger() (*zap.Logger, error) {
	if os.Getenv("OKAZ_ENV") == "production" {
		return zap.NewProduction()
	}
	core := zapcore.NewCore(
		prettylog.NewEncoder(prettylog.ShouldColor()),
		zapcore.Lock(os.Stdout),
		zap.DebugLevel,
	)
	return zap.New(core), nil
}

func main() {
	configPath := flag.String("config", config.DefaultConfigPath, "Path to YAML config file")
	flag.Parse()

	prettylog.MarkProcessStart()
	_ = proctitle.Set("okazmarkt-core")

	logger, err := newLogger()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	application, err := app.New(logger, *configPath)
	if err != nil {
		logger.Fatal("failed to initialize app", zap.Error(err))
	}

	srv := &http.Server{
		Addr:    application.Addr(),
		Handler: application.Router(),
	}

	go func() {
		logger.Info("server starting", zap.String("addr", srv.Addr), prettylog.ReadyField())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")
	application.Shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("forced shutdown", zap.Error(err))
	}
	logger.Info("server exited")
}
