package router

import (
	"net/http"
	"time"

	"github.com/blanklearn/marketplace-backend/internal/config"
	"github.com/blanklearn/marketplace-backend/internal/handler"
	"github.com/blanklearn/marketplace-backend/internal/middleware"
	"github.com/blanklearn/marketplace-backend/internal/response"
	"github.com/blanklearn/marketplace-backend/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// facetsMaxAge is how long browsers may cache facet lists.
const facetsMaxAge = 300

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth           *handler.AuthHandler
	Catalog        *handler.CatalogHandler
	Recommendation *handler.RecommendationHandler
	Booking        *handler.BookingHandler
	Payment        *handler.PaymentHandler
	DemoBooking    *handler.DemoBookingHandler
	Publish        *handler.PublishHandler
	System         *handler.SystemHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(
	authService *service.AuthService,
	handlers *Handlers,
	bookingLimiter *middleware.RateLimiter,
	cfg *config.Config,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	router.Use(response.RequestIDMiddleware())
	router.Use(middleware.Metrics())
	router.Use(middleware.Brotli())

	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api/v1")

	// ─── 1. Catalog (Public) ───────────────────────────────────────────
	courses := api.Group("/courses")
	{
		courses.GET("", handlers.Catalog.ListCourses)
		courses.GET("/facets", middleware.CacheControl(facetsMaxAge), handlers.Catalog.CourseFacets)
		courses.GET("/:id", handlers.Catalog.GetCourse)
	}

	teachers := api.Group("/teachers")
	{
		teachers.GET("", handlers.Catalog.ListTeachers)
		teachers.GET("/facets", middleware.CacheControl(facetsMaxAge), handlers.Catalog.TeacherFacets)
		teachers.GET("/:id", handlers.Catalog.GetTeacher)
		teachers.GET("/:id/verification", handlers.Catalog.VerifyTeacher)
	}

	// ─── 2. Recommendations (Public) ───────────────────────────────────
	recommendations := api.Group("/recommendations")
	{
		recommendations.POST("/courses", handlers.Recommendation.RecommendCourses)
		recommendations.POST("/teachers", handlers.Recommendation.RecommendTeachers)
	}

	// ─── 3. Forms (Public, Rate Limited) ───────────────────────────────
	api.POST("/demo-bookings", bookingLimiter.Middleware(), handlers.Booking.CreateDemoBooking)
	api.POST("/payments", handlers.Payment.ProcessPayment)

	// ─── 4. Auth ───────────────────────────────────────────────────────
	auth := api.Group("/auth")
	{
		auth.POST("/admin/login", handlers.Auth.AdminLogin)
		auth.GET("/admin/me", middleware.RequireAdminJWT(authService), handlers.Auth.GetAdminProfile)
	}

	// ─── 5. Admin Group (JWT) ──────────────────────────────────────────
	adminAPI := api.Group("/admin")
	adminAPI.Use(middleware.RequireAdminJWT(authService), middleware.NoStore())
	{
		adminAPI.GET("/demo-bookings", handlers.DemoBooking.ListDemoBookings)
		adminAPI.GET("/demo-bookings/stream", handlers.DemoBooking.StreamDemoBookings)

		adminAPI.POST("/catalog/publish-teachers", handlers.Publish.PublishTeachers)

		adminAPI.GET("/system/status", handlers.System.Status)
	}

	return router
}
