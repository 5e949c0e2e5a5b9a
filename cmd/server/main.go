package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/blanklearn/marketplace-backend/internal/catalog"
	"github.com/blanklearn/marketplace-backend/internal/config"
	"github.com/blanklearn/marketplace-backend/internal/database"
	"github.com/blanklearn/marketplace-backend/internal/docstore"
	"github.com/blanklearn/marketplace-backend/internal/handler"
	"github.com/blanklearn/marketplace-backend/internal/llm"
	"github.com/blanklearn/marketplace-backend/internal/logger"
	"github.com/blanklearn/marketplace-backend/internal/middleware"
	"github.com/blanklearn/marketplace-backend/internal/recommend"
	"github.com/blanklearn/marketplace-backend/internal/repository"
	"github.com/blanklearn/marketplace-backend/internal/router"
	"github.com/blanklearn/marketplace-backend/internal/service"
	"github.com/blanklearn/marketplace-backend/internal/validator"
	"github.com/blanklearn/marketplace-backend/internal/worker"
	"github.com/rs/zerolog"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("log_level", cfg.LogLevel).
		Str("course_source", cfg.CourseSource).
		Str("teacher_source", cfg.TeacherSource).
		Msg("Starting Blanklearn Marketplace Backend")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// ─── Connect to Redis ──────────────────────────────────────────────
	rdb, err := database.NewRedisClient(ctx, "redis", cfg.RedisURL, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	// ─── Open Document Store (optional) ────────────────────────────────
	store, err := docstore.Open(ctx, docstore.Config{URL: cfg.DocStoreURL}, log)
	if err != nil {
		log.Warn().Err(err).Msg("Document store unavailable, docstore teachers and publishing disabled")
		store = nil
	} else {
		defer store.Close()
	}

	// ─── Catalog Sources ───────────────────────────────────────────────
	sample := catalog.NewSampleCatalog()

	var courses catalog.CourseSource = sample
	if cfg.CourseSource == config.SourcePostgres {
		courses = repository.NewCourseRepository(pool)
	}

	var teachers catalog.TeacherSource = sample
	var teacherRepo *repository.TeacherRepository
	if store != nil {
		teacherRepo = repository.NewTeacherRepository(store, log)
	}
	if cfg.TeacherSource == config.SourceDocStore {
		if teacherRepo != nil {
			teachers = teacherRepo
		} else {
			log.Warn().Msg("TEACHER_SOURCE=docstore but the document store is unavailable, serving no teachers")
			teachers = catalog.EmptyTeachers{}
		}
	}

	// ─── Initialize Repositories ───────────────────────────────────────
	adminRepo := repository.NewAdminRepository(pool)
	bookingRepo := repository.NewDemoBookingRepository(pool)

	// ─── Recommendation Pipeline ───────────────────────────────────────
	llmClient := llm.NewClient(cfg, log)
	var generator recommend.Generator
	var breaker *llm.Breaker
	if llmClient.Available() {
		breaker = llm.NewBreaker(llmClient, llm.BreakerSettings{
			ConsecutiveFailures: uint32(cfg.LLMBreakerFailures),
			OpenTimeout:         cfg.LLMBreakerCooldown,
		}, log)
		generator = breaker
	} else {
		log.Warn().Msg("LLM_API_KEY not set, recommendations will return the default result")
	}
	pipeline := recommend.NewPipeline(generator, recommend.Options{
		StrictCatalog: cfg.RecommendStrictCatalog,
		Timeout:       cfg.LLMTimeout,
	}, log)

	// ─── Initialize Services ──────────────────────────────────────────
	authService := service.NewAuthService(cfg)
	adminService := service.NewAdminService(adminRepo, authService)
	catalogService := service.NewCatalogService(courses, teachers, log)
	recommendationService := service.NewRecommendationService(pipeline, catalogService)
	bookingService := service.NewBookingService(rdb, log)
	demoBookingService := service.NewDemoBookingService(bookingRepo)
	paymentService := service.NewPaymentService(log)
	verificationService := service.NewVerificationService()

	// A nil *TeacherRepository must not reach the interface parameter.
	publishService := service.NewPublishService(nil, log)
	if teacherRepo != nil {
		publishService = service.NewPublishService(teacherRepo, log)
	}

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		Auth:           handler.NewAuthHandler(adminService),
		Catalog:        handler.NewCatalogHandler(catalogService, verificationService),
		Recommendation: handler.NewRecommendationHandler(recommendationService),
		Booking:        handler.NewBookingHandler(bookingService),
		Payment:        handler.NewPaymentHandler(paymentService),
		DemoBooking:    handler.NewDemoBookingHandler(rdb, demoBookingService, log),
		Publish:        handler.NewPublishHandler(publishService, log),
		System: handler.NewSystemHandler(rdb, pool, handler.Features{
			CourseSource:  cfg.CourseSource,
			TeacherSource: cfg.TeacherSource,
			DocStore:      store != nil,
			Generator:     generator != nil,
		}, log),
	}

	if breaker != nil {
		handlers.System.WatchBreaker(breaker)
	}

	// ─── Start Background Workers ─────────────────────────────────────
	workerCtx, workerCancel := context.WithCancel(context.Background())
	workerDone := make(chan struct{})

	bookingWorker := worker.NewBookingWorker(rdb, bookingRepo, log)
	go func() {
		bookingWorker.Start(workerCtx)
		close(workerDone)
	}()

	// ─── Setup Router ──────────────────────────────────────────────────
	bookingLimiter := middleware.NewRateLimiter(cfg.BookingRateLimit, time.Minute)
	defer bookingLimiter.Stop()

	r := router.SetupRouter(authService, handlers, bookingLimiter, cfg)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	// 1. Stop accepting new HTTP requests (5s timeout).
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	// 2. Stop the booking worker and wait for its queue to drain.
	workerCancel()
	select {
	case <-workerDone:
	case <-time.After(10 * time.Second):
		log.Warn().Msg("Booking worker did not drain in time")
	}

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
