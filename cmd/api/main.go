package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/psicoagenda/psico-scheduler/internal/audit"
	"github.com/psicoagenda/psico-scheduler/internal/clock"
	"github.com/psicoagenda/psico-scheduler/internal/config"
	dbpkg "github.com/psicoagenda/psico-scheduler/internal/db"
	infraRepo "github.com/psicoagenda/psico-scheduler/internal/infra/repository"
	"github.com/psicoagenda/psico-scheduler/internal/notify"
	"github.com/psicoagenda/psico-scheduler/internal/routes"
	"github.com/psicoagenda/psico-scheduler/internal/timezone"
	"github.com/psicoagenda/psico-scheduler/internal/worker/reminder"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT, syscall.SIGTERM,
	)
	defer stop()

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg)

	// ------------------------------
	// Reminder worker
	// ------------------------------
	repo := infraRepo.NewAppointmentGormRepository(db)
	auditDispatcher := audit.NewDispatcher(audit.New(db))

	var lock *reminder.DispatchLock
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatalf("invalid REDIS_URL: %v", err)
		}
		lock = reminder.NewDispatchLock(redis.NewClient(opts))
	}

	worker := reminder.NewScheduler(
		repo,
		notify.LogSender{},
		clock.System(),
		lock,
		auditDispatcher,
		reminder.Options{
			Hour:        cfg.ReminderHour,
			Minute:      cfg.ReminderMinute,
			Location:    timezone.Location(cfg.Timezone),
			Backoff:     cfg.ReminderBackoff,
			Lookahead:   cfg.ReminderLookahead,
			SendTimeout: cfg.SendTimeout,
		},
	)

	workerDone := make(chan struct{})
	go func() {
		defer close(workerDone)
		worker.Run(ctx)
	}()

	// ------------------------------
	// HTTP server
	// ------------------------------
	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: r,
	}

	go func() {
		log.Printf("Server running on %s", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown: %v", err)
	}

	<-workerDone
}
