package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/goodways/goodways/backend/internal/router"
	"github.com/goodways/goodways/backend/internal/setup"
	"github.com/goodways/goodways/shared/config"
	"github.com/goodways/goodways/shared/logger"
)

// nolint:lll,gochecknoglobals
var opts = struct {
	ConfigFolder    string        `long:"config_folder" env:"CONFIG_FOLDER" default:"backend/config" description:"path to folder with public.yaml and private.yaml"`
	ShutdownTimeout time.Duration `long:"shutdown_timeout" env:"SHUTDOWN_TIMEOUT" default:"10s" description:"how long in-flight requests may take on shutdown"`
}{}

var errTerminated = errors.New("terminated")

func main() {
	// .env is optional, real environment wins
	_ = godotenv.Load()

	parser := flags.NewParser(&opts, flags.Default)
	parser.ShortDescription = "Goodways API"
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	cfg := config.MustLoad(opts.ConfigFolder)
	logger.Initialize(cfg.Public.LogLevel, cfg.Public.LogJSON)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	deps, err := setup.SetupDependencies(ctx, cfg)
	if err != nil {
		logger.Log.Error("failed to setup dependencies", "error", err)
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Public.HttpPort),
		Handler:           router.New(deps),
		ReadHeaderTimeout: 5 * time.Second,
	}

	gr, grCtx := errgroup.WithContext(ctx)
	gr.Go(func() error {
		logger.Log.Info("server started", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	gr.Go(func() error {
		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

		select {
		case s := <-sigs:
			logger.Log.Info("terminating", "signal", s.String())
		case <-grCtx.Done():
		}

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), opts.ShutdownTimeout)
		defer shutdownCancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Log.Error("graceful shutdown failed", "error", err)
		}
		return errTerminated
	})

	err = gr.Wait()
	deps.Cleanup()
	if err != nil && !errors.Is(err, errTerminated) {
		logger.Log.Error("server unexpectedly closed", "error", err)
		os.Exit(1)
	}
	logger.Log.Info("server stopped")
}
