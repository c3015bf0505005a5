package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/yusaku0324/kakeru-sub008/internal/audit"
	"github.com/yusaku0324/kakeru-sub008/internal/backend"
	"github.com/yusaku0324/kakeru-sub008/internal/cache"
	"github.com/yusaku0324/kakeru-sub008/internal/config"
	"github.com/yusaku0324/kakeru-sub008/internal/handlers"
	infraRepo "github.com/yusaku0324/kakeru-sub008/internal/infra/repository"
	"github.com/yusaku0324/kakeru-sub008/internal/middleware"
	"github.com/yusaku0324/kakeru-sub008/internal/timezone"
	ucPortal "github.com/yusaku0324/kakeru-sub008/internal/usecase/portal"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	store *cache.Store,
	reserveAPI *backend.Client,
	logger *zap.Logger,
) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	directoryRepo := infraRepo.NewDirectoryGormRepository(db)

	clock := timezone.NewClock(cfg.BusinessTimeZone)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, logger)

	// ======================================================
	// USE CASES
	// ======================================================
	shopSummary := ucPortal.NewShopSummary(reserveAPI, store, clock, logger)

	searchShopsUC := ucPortal.NewSearchShops(directoryRepo, shopSummary, logger)
	getShopUC := ucPortal.NewGetShop(directoryRepo, shopSummary, logger)
	daySummaryUC := ucPortal.NewGetDaySummary(directoryRepo, reserveAPI, clock, logger)
	therapistSlotsUC := ucPortal.NewTherapistAvailability(directoryRepo, reserveAPI, clock)

	submitReservationUC := ucPortal.NewSubmitReservation(
		directoryRepo,
		reserveAPI,
		store,
		auditDispatcher,
		clock,
	)

	dashboardReservationsUC := ucPortal.NewDashboardReservations(
		directoryRepo,
		reserveAPI,
		auditDispatcher,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	publicHandler := handlers.NewPublicHandler(
		searchShopsUC,
		getShopUC,
		daySummaryUC,
		therapistSlotsUC,
	)

	reservationHandler := handlers.NewReservationHandler(submitReservationUC, store)

	dashboardHandler := handlers.NewDashboardHandler(dashboardReservationsUC, db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/shops", publicHandler.SearchShops)
			publicAPI.GET("/shops/:slug", publicHandler.GetShop)
			publicAPI.GET("/shops/:slug/availability", publicHandler.DaySummary)
			publicAPI.GET("/shops/:slug/therapists/:id/availability", publicHandler.TherapistAvailability)

			publicAPI.POST("/shops/:slug/reservations", reservationHandler.Submit)
			publicAPI.GET("/reservations/last", reservationHandler.Last)
		}

		// ------------------------------
		// DASHBOARD (staff, JWT)
		// ------------------------------
		dashboard := api.Group("/dashboard")
		dashboard.Use(middleware.AuthMiddleware(cfg))
		{
			dashboard.GET("/shops/:id/reservations", dashboardHandler.Reservations)
			dashboard.GET("/shops/:id/audit-logs", dashboardHandler.AuditLogs)
		}
	}
}
