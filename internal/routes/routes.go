package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/clinicdesk/clinic-manager/internal/audit"
	"github.com/clinicdesk/clinic-manager/internal/config"
	"github.com/clinicdesk/clinic-manager/internal/handlers"
	infraRepo "github.com/clinicdesk/clinic-manager/internal/infra/repository"
	"github.com/clinicdesk/clinic-manager/internal/middleware"
	ucAppointment "github.com/clinicdesk/clinic-manager/internal/usecase/appointment"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config) {

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestID())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES (APPOINTMENTS)
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	updateAppointmentUC := ucAppointment.NewUpdateAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	listAppointmentsUC := ucAppointment.NewListAppointments(
		appointmentRepo,
	)

	deleteAppointmentUC := ucAppointment.NewDeleteAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	patientHandler := handlers.NewPatientHandler(db)
	doctorHandler := handlers.NewDoctorHandler(db)
	serviceHandler := handlers.NewServiceHandler(db)
	visitHandler := handlers.NewVisitHandler(db)
	inventoryHandler := handlers.NewInventoryHandler(db)
	reportHandler := handlers.NewReportHandler(db)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		updateAppointmentUC,
		listAppointmentsUC,
		deleteAppointmentUC,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		loginLimiter := middleware.RateLimiter(rdb, middleware.RateLimitConfig{})
		api.POST("/login/", loginLimiter, authHandler.Login)
		api.POST("/register/", loginLimiter, authHandler.Register)

		// ------------------------------
		// PROTECTED API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/patients/", patientHandler.List)
			secured.POST("/patients/", patientHandler.Create)
			secured.GET("/patients/:id/", patientHandler.Get)
			secured.PUT("/patients/:id/", patientHandler.Update)
			secured.PATCH("/patients/:id/", patientHandler.Update)
			secured.DELETE("/patients/:id/", patientHandler.Delete)

			secured.GET("/patients/:id/visits/", visitHandler.List)
			secured.POST("/patients/:id/visits/", visitHandler.Create)
			secured.PUT("/patients/:id/visits/:visitId/", visitHandler.Replace)

			secured.GET("/doctors/", doctorHandler.List)
			secured.GET("/doctors/:id/", doctorHandler.Get)

			secured.GET("/services/", serviceHandler.List)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.GET("/appointments/", appointmentHandler.List)
			secured.POST("/appointments/", appointmentHandler.Create)
			secured.PATCH("/appointments/:id/", appointmentHandler.Update)
			secured.DELETE("/appointments/:id/", appointmentHandler.Delete)

			secured.GET("/inventory/", inventoryHandler.List)
			secured.POST("/inventory/", inventoryHandler.Create)
			secured.PATCH("/inventory/:id/", inventoryHandler.Update)

			secured.GET("/reports/analytics/", reportHandler.Analytics)
			secured.GET("/reports/appointments/", reportHandler.Appointments)
			secured.GET("/reports/inventory/", reportHandler.Inventory)
			secured.GET("/reports/patients/", reportHandler.Patients)

			secured.GET("/audit-logs/", auditLogsHandler.List)
		}
	}
}
