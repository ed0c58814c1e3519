package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/appointment-system/internal/audit"
	"github.com/BruksfildServices01/appointment-system/internal/auth"
	"github.com/BruksfildServices01/appointment-system/internal/config"
	"github.com/BruksfildServices01/appointment-system/internal/handlers"
	infraRepo "github.com/BruksfildServices01/appointment-system/internal/infra/repository"
	"github.com/BruksfildServices01/appointment-system/internal/middleware"
	"github.com/BruksfildServices01/appointment-system/internal/models"
	ucAppointment "github.com/BruksfildServices01/appointment-system/internal/usecase/appointment"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA
	// ======================================================
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)

	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
	}

	// ======================================================
	// USE CASES — APPOINTMENTS
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	updateAppointmentUC := ucAppointment.NewUpdateAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	getAppointmentUC := ucAppointment.NewGetAppointment(appointmentRepo)
	listAppointmentsUC := ucAppointment.NewListAppointments(appointmentRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, tokens, cfg)
	meHandler := handlers.NewMeHandler(db)
	offeringHandler := handlers.NewOfferingHandler(db, auditDispatcher)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		updateAppointmentUC,
		getAppointmentUC,
		listAppointmentsUC,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.POST("/auth/login",
			middleware.LoginRateLimit(rdb, cfg.LoginRateLimit, cfg.LoginRateWindow),
			authHandler.Login,
		)

		api.GET("/companies/:company_id/offerings", offeringHandler.ListOpenByCompany)
		api.POST("/appointments", appointmentHandler.Create)

		// ------------------------------
		// AUTHENTICATED
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(tokens))
		{
			secured.GET("/auth/me", meHandler.GetMe)

			secured.POST("/auth/register",
				middleware.RequireRoles(models.RoleAdmin),
				authHandler.Register,
			)

			adminOrCompany := middleware.RequireRoles(models.RoleAdmin, models.RoleCompany)

			secured.POST("/offerings", adminOrCompany, offeringHandler.Create)
			secured.GET("/offerings", adminOrCompany, offeringHandler.ListMine)
			secured.GET("/offerings/:id", adminOrCompany, offeringHandler.Get)
			secured.PUT("/offerings/:id", adminOrCompany, offeringHandler.Update)

			secured.GET("/appointments", adminOrCompany, appointmentHandler.List)
			secured.GET("/appointments/:id", adminOrCompany, appointmentHandler.Get)
			secured.PUT("/appointments/:id", adminOrCompany, appointmentHandler.Update)

			secured.GET("/audit-logs", adminOrCompany, auditLogsHandler.List)
		}
	}
}
