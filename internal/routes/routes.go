package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/psicoagenda/psico-scheduler/internal/audit"
	"github.com/psicoagenda/psico-scheduler/internal/clock"
	"github.com/psicoagenda/psico-scheduler/internal/config"
	"github.com/psicoagenda/psico-scheduler/internal/domain/ledger"
	"github.com/psicoagenda/psico-scheduler/internal/handlers"
	infraRepo "github.com/psicoagenda/psico-scheduler/internal/infra/repository"
	"github.com/psicoagenda/psico-scheduler/internal/middleware"
	ucAppointment "github.com/psicoagenda/psico-scheduler/internal/usecase/appointment"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	repo := infraRepo.NewAppointmentGormRepository(db)
	clk := clock.System()

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	ledgerService := ledger.NewService(repo, cfg.RewardThresholdPoints)

	rules := ucAppointment.RulesFromConfig(cfg)

	// ======================================================
	// USE CASES — APPOINTMENTS
	// ======================================================
	scheduleUC := ucAppointment.NewSchedule(repo, repo, clk, auditDispatcher, rules)
	confirmUC := ucAppointment.NewConfirm(repo, auditDispatcher)
	rescheduleUC := ucAppointment.NewReschedule(repo, repo, clk, auditDispatcher, rules)
	cancelUC := ucAppointment.NewCancel(repo, repo, clk, auditDispatcher, rules)
	completeUC := ucAppointment.NewComplete(repo, repo, clk, auditDispatcher, rules)
	noShowUC := ucAppointment.NewMarkNoShow(repo, repo, clk, auditDispatcher)
	listByDateUC := ucAppointment.NewListByDate(repo)
	availabilityUC := ucAppointment.NewGetAvailability(repo, rules)

	// ======================================================
	// HANDLERS
	// ======================================================
	providerHandler := handlers.NewProviderHandler(db, availabilityUC)
	clientHandler := handlers.NewClientHandler(db, ledgerService)
	ledgerHandler := handlers.NewLedgerHandler(db, ledgerService, auditDispatcher)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	appointmentHandler := handlers.NewAppointmentHandler(
		scheduleUC,
		confirmUC,
		rescheduleUC,
		cancelUC,
		completeUC,
		noShowUC,
		listByDateUC,
	)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PROVIDERS
		// ------------------------------
		api.POST("/providers", providerHandler.Create)
		api.GET("/providers/:id", providerHandler.Get)
		api.PATCH("/providers/:id/availability", providerHandler.UpdateAvailability)
		api.GET("/providers/:id/availability", providerHandler.Availability)

		// ------------------------------
		// CLIENTS + LEDGER
		// ------------------------------
		api.POST("/clients", clientHandler.Create)
		api.GET("/clients", clientHandler.List)
		api.GET("/clients/:id/points", clientHandler.Points)
		api.GET("/clients/:id/ledger", ledgerHandler.Statement)
		api.POST("/clients/:id/ledger", ledgerHandler.Adjust)

		// ------------------------------
		// APPOINTMENTS
		// ------------------------------
		api.POST("/appointments", appointmentHandler.Create)
		api.GET("/appointments", appointmentHandler.ListByDate)
		api.PATCH("/appointments/:id/confirm", appointmentHandler.Confirm)
		api.PATCH("/appointments/:id/reschedule", appointmentHandler.Reschedule)
		api.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)
		api.PATCH("/appointments/:id/complete", appointmentHandler.Complete)
		api.PATCH("/appointments/:id/no-show", appointmentHandler.NoShow)

		// ------------------------------
		// AUDIT
		// ------------------------------
		api.GET("/audit-logs", auditLogsHandler.List)
	}
}
