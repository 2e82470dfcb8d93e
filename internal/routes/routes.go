package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/sling-library/internal/audit"
	"github.com/BruksfildServices01/sling-library/internal/cache"
	"github.com/BruksfildServices01/sling-library/internal/config"
	"github.com/BruksfildServices01/sling-library/internal/domain/auth"
	"github.com/BruksfildServices01/sling-library/internal/domain/booking"
	"github.com/BruksfildServices01/sling-library/internal/domain/carrier"
	"github.com/BruksfildServices01/sling-library/internal/domain/settings"
	"github.com/BruksfildServices01/sling-library/internal/handlers"
	"github.com/BruksfildServices01/sling-library/internal/metrics"
	"github.com/BruksfildServices01/sling-library/internal/middleware"
	"github.com/BruksfildServices01/sling-library/internal/storage"
	ucAuth "github.com/BruksfildServices01/sling-library/internal/usecase/auth"
	ucBooking "github.com/BruksfildServices01/sling-library/internal/usecase/booking"
	ucCarrier "github.com/BruksfildServices01/sling-library/internal/usecase/carrier"
	ucSettings "github.com/BruksfildServices01/sling-library/internal/usecase/settings"
)

// Infra is the set of long-lived dependencies built by the caller: the
// repositories for the selected storage driver, the cache, the image store
// and the audit dispatcher (closed by the caller on shutdown).
type Infra struct {
	Carriers carrier.Repository
	Bookings booking.Repository
	Settings settings.Repository
	Users    auth.Repository
	Audit    audit.Store

	Cache      cache.Cache
	Images     storage.ImageStore
	Dispatcher *audit.Dispatcher
}

func RegisterRoutes(r *gin.Engine, infra Infra, cfg *config.Config) {

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(metrics.Middleware())
	r.Use(middleware.CORSMiddleware(cfg.CORSOrigins))

	// ======================================================
	// USE CASES: CATALOG
	// ======================================================
	carrierReader := ucCarrier.NewReader(infra.Carriers, infra.Cache, cfg.CarrierCacheTTL)

	browseUC := ucCarrier.NewBrowseCarriers(carrierReader)
	featuredUC := ucCarrier.NewFeaturedCarriers(carrierReader)

	listCarriersUC := ucCarrier.NewListCarriers(infra.Carriers)
	createCarrierUC := ucCarrier.NewCreateCarrier(infra.Carriers, infra.Cache, infra.Dispatcher)
	updateCarrierUC := ucCarrier.NewUpdateCarrier(infra.Carriers, infra.Cache, infra.Dispatcher)
	deleteCarrierUC := ucCarrier.NewDeleteCarrier(infra.Carriers, infra.Cache, infra.Dispatcher)
	addImageUC := ucCarrier.NewAddCarrierImage(
		infra.Carriers,
		infra.Images,
		storage.NewTranscoder(cfg.ImageMaxWidth, cfg.ImageQuality),
		infra.Cache,
		infra.Dispatcher,
	)

	// ======================================================
	// USE CASES: BOOKINGS
	// ======================================================
	createBookingUC := ucBooking.NewCreateBookingRequest(
		infra.Bookings,
		infra.Carriers,
		infra.Cache,
		infra.Dispatcher,
		cfg.ShopTimezone,
	)
	listBookingsUC := ucBooking.NewListBookingRequests(infra.Bookings, infra.Cache, cfg.CarrierCacheTTL)
	approveUC := ucBooking.NewApproveBookingRequest(infra.Bookings, infra.Cache, infra.Dispatcher)
	rejectUC := ucBooking.NewRejectBookingRequest(infra.Bookings, infra.Cache, infra.Dispatcher)
	completeUC := ucBooking.NewCompleteBookingRequest(infra.Bookings, infra.Cache, infra.Dispatcher)
	contactUC := ucBooking.NewContactCustomer(infra.Bookings)

	// ======================================================
	// USE CASES: SETTINGS & AUTH
	// ======================================================
	getSettingsUC := ucSettings.NewGetSettings(infra.Settings, infra.Cache, cfg.SettingsCacheTTL)
	updateSettingsUC := ucSettings.NewUpdateSettings(infra.Settings, infra.Cache, infra.Dispatcher, cfg.SettingsCacheTTL)

	authService := ucAuth.NewService(infra.Users, infra.Cache, cfg)

	// ======================================================
	// HANDLERS
	// ======================================================
	catalogHandler := handlers.NewCatalogHandler(browseUC, featuredUC, carrierReader, getSettingsUC)
	carrierAdminHandler := handlers.NewCarrierAdminHandler(
		listCarriersUC,
		createCarrierUC,
		updateCarrierUC,
		deleteCarrierUC,
		addImageUC,
	)
	bookingHandler := handlers.NewBookingHandler(
		createBookingUC,
		listBookingsUC,
		approveUC,
		rejectUC,
		completeUC,
		contactUC,
	)
	settingsHandler := handlers.NewSettingsHandler(getSettingsUC, updateSettingsUC)
	authHandler := handlers.NewAuthHandler(authService)
	auditLogsHandler := handlers.NewAuditLogsHandler(audit.New(infra.Audit))

	// ======================================================
	// OPS
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", metrics.Handler())

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		public := api.Group("/public")
		{
			public.GET("/carriers", catalogHandler.Browse)
			public.GET("/carriers/featured", catalogHandler.Featured)
			public.GET("/carriers/:id", catalogHandler.Get)
			public.GET("/carriers/:id/whatsapp", catalogHandler.WhatsApp)
			public.GET("/categories", catalogHandler.Categories)
			public.GET("/categories/:slug/carriers", catalogHandler.CategoryCarriers)

			public.POST("/booking-requests", bookingHandler.Create)

			public.GET("/settings", settingsHandler.Get)
			public.GET("/theme.css", settingsHandler.Theme)
			public.GET("/pages/:slug", settingsHandler.Page)
			public.GET("/contact/whatsapp", settingsHandler.ContactWhatsApp)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		requireAuth := middleware.AuthMiddleware(cfg, authService)

		authAPI := api.Group("/auth")
		{
			authAPI.POST("/sign-up", authHandler.SignUp)
			authAPI.POST("/sign-in", authHandler.SignIn)
			authAPI.POST("/sign-out", requireAuth, authHandler.SignOut)
			authAPI.GET("/session", requireAuth, authHandler.Session)
		}

		// ------------------------------
		// ADMIN
		// ------------------------------
		admin := api.Group("/admin")
		admin.Use(requireAuth, middleware.RequireRole(auth.RoleAdmin))
		{
			admin.GET("/carriers", carrierAdminHandler.List)
			admin.POST("/carriers", carrierAdminHandler.Create)
			admin.PUT("/carriers/:id", carrierAdminHandler.Update)
			admin.DELETE("/carriers/:id", carrierAdminHandler.Delete)
			admin.POST("/carriers/:id/images", carrierAdminHandler.UploadImage)

			admin.GET("/booking-requests", bookingHandler.List)
			admin.PATCH("/booking-requests/:id/approve", bookingHandler.Approve)
			admin.PATCH("/booking-requests/:id/reject", bookingHandler.Reject)
			admin.PATCH("/booking-requests/:id/complete", bookingHandler.Complete)
			admin.GET("/booking-requests/:id/contact", bookingHandler.Contact)

			admin.GET("/settings", settingsHandler.GetStored)
			admin.PUT("/settings", settingsHandler.Update)

			admin.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
