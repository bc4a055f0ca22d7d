package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/estetica-scheduler/internal/config"
	domain "github.com/BruksfildServices01/estetica-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/estetica-scheduler/internal/domain/availability"
	"github.com/BruksfildServices01/estetica-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/estetica-scheduler/internal/handlers"
	"github.com/BruksfildServices01/estetica-scheduler/internal/history"
	"github.com/BruksfildServices01/estetica-scheduler/internal/infra/storage"
	"github.com/BruksfildServices01/estetica-scheduler/internal/middleware"
	"github.com/BruksfildServices01/estetica-scheduler/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/estetica-scheduler/internal/usecase/appointment"
)

// Deps are the singletons built by main. Uploader is nil without a bucket.
type Deps struct {
	DB       *gorm.DB
	Config   *config.Config
	Log      *zap.Logger
	Repo     domain.Repository
	Drafts   booking.Store
	History  history.Recorder
	Uploader storage.Uploader
	Calendar *availability.Calendar
	Clock    timezone.Clock
}

func RegisterRoutes(r *gin.Engine, d Deps) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.RequestLogger(d.Log))
	r.Use(middleware.CORSMiddleware(d.Config.CORSOrigins))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ======================================================
	// 🧠 USE CASES (APPOINTMENTS)
	// ======================================================
	getAvailabilityUC := ucAppointment.NewGetAvailability(
		d.Repo,
		availability.NewGenerator(d.Calendar),
		ucAppointment.SlotSettings{
			StepMinutes:   d.Config.SlotStepMin,
			BufferMinutes: d.Config.BufferMin,
		},
		d.Clock,
	)

	quoteUC := ucAppointment.NewQuote(d.Repo)

	createBookingUC := ucAppointment.NewCreateBooking(
		d.Repo,
		quoteUC,
		getAvailabilityUC,
		d.History,
	)

	listAgendaUC := ucAppointment.NewListAgenda(d.Repo)
	updateAppointmentUC := ucAppointment.NewUpdateAppointment(d.Repo, d.History)
	cancelAppointmentUC := ucAppointment.NewCancelAppointment(d.Repo, d.History)
	completeAppointmentUC := ucAppointment.NewCompleteAppointment(d.Repo, d.History)
	archiveAppointmentUC := ucAppointment.NewArchiveAppointment(d.Repo, d.History)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	publicHandler := handlers.NewPublicHandler(d.Repo, quoteUC, getAvailabilityUC, createBookingUC)
	bookingHandler := handlers.NewBookingHandler(d.Drafts, quoteUC, getAvailabilityUC, createBookingUC)

	appointmentHandler := handlers.NewAppointmentHandler(
		listAgendaUC,
		updateAppointmentUC,
		cancelAppointmentUC,
		completeAppointmentUC,
		archiveAppointmentUC,
		d.Clock,
	)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")

	// ------------------------------
	// 🌐 API PÚBLICA
	// ------------------------------
	publicAPI := api.Group("/public")
	publicAPI.Use(middleware.NewRateLimiter(d.Config.PublicRatePerMin, d.Config.PublicRateBurst).Middleware())
	{
		publicAPI.GET("/services", publicHandler.ListServices)
		publicAPI.GET("/quote", publicHandler.Quote)
		publicAPI.GET("/availability", publicHandler.Availability)
		publicAPI.POST("/appointments", publicHandler.CreateAppointment)

		publicAPI.POST("/booking", bookingHandler.Create)
		publicAPI.GET("/booking/:id", bookingHandler.Get)
		publicAPI.POST("/booking/:id/service", bookingHandler.ChooseService)
		publicAPI.POST("/booking/:id/date", bookingHandler.ChooseDate)
		publicAPI.GET("/booking/:id/slots", bookingHandler.Slots)
		publicAPI.POST("/booking/:id/time", bookingHandler.ChooseTime)
		publicAPI.POST("/booking/:id/client", bookingHandler.ClientDetails)
		publicAPI.POST("/booking/:id/back", bookingHandler.Back)
	}

	authHandler := handlers.NewAuthHandler(d.DB, d.Config)
	meHandler := handlers.NewMeHandler(d.DB)
	serviceHandler := handlers.NewServiceHandler(d.DB)
	clientHandler := handlers.NewClientHandler(d.DB, d.Repo)
	historyHandler := handlers.NewHistoryHandler(d.DB, d.Uploader)
	workingHoursHandler := handlers.NewWorkingHoursHandler(d.DB, getAvailabilityUC)

	// ------------------------------
	// 🔐 AUTH
	// ------------------------------
	api.POST("/auth/login", authHandler.Login)

	// ------------------------------
	// 🔐 API PRIVADA (ADMIN)
	// ------------------------------
	admin := api.Group("/admin")
	admin.Use(middleware.AuthMiddleware(d.Config), middleware.RequireRole(middleware.RoleAdmin))
	{
		admin.GET("/me", meHandler.GetMe)

		admin.GET("/appointments", appointmentHandler.List)
		admin.PATCH("/appointments/:id", appointmentHandler.Update)
		admin.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)
		admin.PATCH("/appointments/:id/complete", appointmentHandler.Complete)
		admin.POST("/appointments/:id/archive", appointmentHandler.Archive)

		admin.GET("/services", serviceHandler.List)
		admin.PUT("/services", serviceHandler.Upsert)

		admin.GET("/clients", clientHandler.List)
		admin.PUT("/clients", clientHandler.Upsert)

		admin.GET("/history", historyHandler.List)
		admin.GET("/clients/:id/history", historyHandler.ListByClient)
		admin.GET("/clients/:id/history/export", historyHandler.ExportClientCSV)

		admin.GET("/working-hours", workingHoursHandler.Get)
		admin.PUT("/working-hours", workingHoursHandler.Update)
	}
}
