package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/coursework-hub/instructor-dashboard/config"
	"github.com/coursework-hub/instructor-dashboard/internal/bootstrap"
	"github.com/coursework-hub/instructor-dashboard/internal/course/client"
	dashhttp "github.com/coursework-hub/instructor-dashboard/internal/dashboard/http"
	"github.com/coursework-hub/instructor-dashboard/internal/logging"
)

const serviceName = "instructor-dashboard"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logging.Setup(cfg.App.Environment, cfg.App.LogLevel)
	bootstrap.SetGinMode(cfg.App.Environment)

	slog.Info("config loaded",
		"env", cfg.App.Environment,
		"port", cfg.Server.Port,
		"course_api", cfg.CourseAPI.BaseURL,
		"default_unit", cfg.Dashboard.DefaultUnit,
	)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	sessions, err := bootstrap.OpenSessions(ctx, bootstrap.SessionOptions{
		RedisAddr:     cfg.Session.RedisAddr,
		RedisPassword: cfg.Session.RedisPassword,
		RedisDB:       cfg.Session.RedisDB,
		TTL:           cfg.Session.TTL,
		SweepSchedule: cfg.Session.SweepSchedule,
	})
	if err != nil {
		slog.Error("session store", "err", err)
		os.Exit(1)
	}

	course := client.New(cfg.CourseAPI.BaseURL,
		client.WithTimeouts(cfg.CourseAPI.Timeout, cfg.CourseAPI.UploadTimeout),
		client.WithRateLimit(cfg.CourseAPI.RateLimit, cfg.CourseAPI.Burst),
	)

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: serviceName,
		Version:     cfg.App.Version,
		CORSOrigins: cfg.Server.CORSOrigins,
		Course:      course,
		Sessions:    sessions.Store,
		Dashboard: dashhttp.Options{
			DefaultUnit:    cfg.Dashboard.DefaultUnit,
			DefaultProject: cfg.Dashboard.DefaultProject,
			CookieName:     cfg.Session.CookieName,
			SessionTTL:     cfg.Session.TTL,
			MaxUploadBytes: int64(cfg.Server.MaxUploadMB) << 20,
			SecureCookie:   cfg.App.Environment == logging.EnvProd,
		},
	})
	r.MaxMultipartMemory = 32 << 20

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("starting dashboard http server", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("dashboard server error", "err", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down dashboard server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("dashboard shutdown error", "err", err)
	}
	if err := sessions.Close(shutdownCtx); err != nil {
		slog.Error("session store close error", "err", err)
	}
}
