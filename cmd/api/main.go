package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/estetica-scheduler/internal/config"
	dbpkg "github.com/BruksfildServices01/estetica-scheduler/internal/db"
	domain "github.com/BruksfildServices01/estetica-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/estetica-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/estetica-scheduler/internal/history"
	"github.com/BruksfildServices01/estetica-scheduler/internal/infra/cache"
	infraRepo "github.com/BruksfildServices01/estetica-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/estetica-scheduler/internal/infra/storage"
	"github.com/BruksfildServices01/estetica-scheduler/internal/logger"
	"github.com/BruksfildServices01/estetica-scheduler/internal/routes"
	"github.com/BruksfildServices01/estetica-scheduler/internal/timezone"
)

func main() {
	cfg := config.Load()

	log := logger.New(cfg)
	defer func() { _ = log.Sync() }()
	zap.ReplaceGlobals(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db := dbpkg.NewDB(cfg, log)
	repo := infraRepo.NewAppointmentGormRepository(db)

	// ======================================================
	// Horarios del salón
	// ======================================================
	rows, err := repo.ListWorkingHours(ctx)
	if err != nil {
		log.Fatal("failed to load working hours", zap.Error(err))
	}
	calendar, err := domain.CalendarFromWorkingHours(rows)
	if err != nil {
		log.Fatal("invalid working hours", zap.Error(err))
	}

	// ======================================================
	// Borradores de reserva
	// ======================================================
	var drafts booking.Store = booking.NewMemoryStore(time.Duration(cfg.DraftTTLMin)*time.Minute)
	if cfg.RedisEnabled() {
		client, err := cache.NewRedisClient(ctx, cfg)
		if err != nil {
			log.Fatal("failed to connect redis", zap.Error(err))
		}
		defer client.Close()
		drafts = cache.NewDraftStore(client, time.Duration(cfg.DraftTTLMin)*time.Minute)
		log.Info("booking drafts in redis", zap.String("addr", cfg.RedisAddr))
	} else {
		log.Warn("REDIS_ADDR not set, booking drafts kept in memory")
	}

	var uploader storage.Uploader
	if cfg.S3Enabled() {
		uploader = storage.NewS3Uploader(cfg)
	}

	historyDispatcher := history.NewDispatcher(history.New(db), log)
	defer historyDispatcher.Close()

	// ======================================================
	// HTTP
	// ======================================================
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	routes.RegisterRoutes(r, routes.Deps{
		DB:       db,
		Config:   cfg,
		Log:      log,
		Repo:     repo,
		Drafts:   drafts,
		History:  historyDispatcher,
		Uploader: uploader,
		Calendar: calendar,
		Clock:    timezone.ClockIn(cfg.Timezone),
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("server running", zap.String("addr", cfg.Addr()), zap.String("timezone", cfg.Timezone))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("failed to start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}
}
