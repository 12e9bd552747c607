package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Yulio1919k/IoT-Biometric-Attendance/internal/kiosk/clock"
	httpapi "github.com/Yulio1919k/IoT-Biometric-Attendance/internal/kiosk/http"
	"github.com/Yulio1919k/IoT-Biometric-Attendance/internal/kiosk/sensor"
	"github.com/Yulio1919k/IoT-Biometric-Attendance/internal/kiosk/service"
	"github.com/Yulio1919k/IoT-Biometric-Attendance/internal/kiosk/store"
	"github.com/Yulio1919k/IoT-Biometric-Attendance/internal/kiosk/store/drivers/flatfile"
	"github.com/Yulio1919k/IoT-Biometric-Attendance/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// Application encapsulates the kiosk with all its dependencies wired.
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db     store.Store
	sensor sensor.Sensor
	clk    clock.Clock

	// Services
	enrollService     *service.EnrollService
	userService       *service.UserService
	attendanceService *service.AttendanceService
	statusService     *service.StatusService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		clk: clock.System{},
		logger: slogx.New(slogx.Config{
			Service: "kiosk",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if err := app.initStore(); err != nil {
		return nil, err
	}
	if err := app.initSensor(); err != nil {
		return nil, err
	}

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.logger.Info("kiosk starting",
		"port", app.cfg.Port,
		"version", BuildVersion,
		"data_dir", app.cfg.DataDir,
		"sensor_driver", app.cfg.SensorDriver,
	)

	// Start server in a goroutine
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	// Setup signal handling for graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a shutdown signal or server error
	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down kiosk...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	// Shutdown the HTTP server
	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing store", "error", err)
		return err
	}

	app.logger.Info("kiosk stopped")
	return nil
}

// initStore mounts the flat-file record store.
func (app *Application) initStore() error {
	if err := os.MkdirAll(app.cfg.DataDir, 0o755); err != nil {
		return fmt.Errorf("failed to create data dir: %w", err)
	}

	db := flatfile.New(app.cfg.DataDir, app.logger)
	if err := db.Ping(context.Background()); err != nil {
		return fmt.Errorf("storage medium not writable: %w", err)
	}
	app.db = db

	app.logger.Info("record store mounted", "dir", app.cfg.DataDir)
	return nil
}

// initSensor selects the fingerprint sensor driver.
func (app *Application) initSensor() error {
	switch app.cfg.SensorDriver {
	case "sim":
		app.sensor = sensor.NewSim(app.cfg.SensorCapacity)
		app.logger.Info("fingerprint sensor ready",
			"driver", app.cfg.SensorDriver,
			"capacity", app.cfg.SensorCapacity,
		)
		return nil
	default:
		return fmt.Errorf("unknown sensor driver %q", app.cfg.SensorDriver)
	}
}

// initServices initializes all business logic services
func (app *Application) initServices() {
	app.enrollService = service.NewEnrollService(app.db, app.sensor, app.cfg.SessionTTL, app.logger)
	app.userService = service.NewUserService(app.db, app.sensor, app.logger)
	app.attendanceService = service.NewAttendanceService(
		app.db,
		app.sensor,
		app.clk,
		app.cfg.MinConfidence,
		app.cfg.DailyDedup,
		app.logger,
	)
	app.statusService = service.NewStatusService(app.db, app.sensor, app.clk)
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		BuildVersion,
		app.cfg.StaticDir,
		app.cfg.HistoryLimit,
		app.enrollService,
		app.userService,
		app.attendanceService,
		app.statusService,
		app.logger,
	)
	router.ApplyRoutes()

	app.router = router

	// Initialize HTTP server
	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
