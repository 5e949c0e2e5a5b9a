package handler

import (
	"context"
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/blanklearn/marketplace-backend/internal/config"
	"github.com/blanklearn/marketplace-backend/internal/response"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

const statusTimeout = 2 * time.Second

// queueInspector is the part of the Redis client the status probe reads.
type queueInspector interface {
	LLen(ctx context.Context, key string) *redis.IntCmd
	Ping(ctx context.Context) *redis.StatusCmd
}

// pinger is satisfied by *pgxpool.Pool.
type pinger interface {
	Ping(ctx context.Context) error
}

// stateReporter is satisfied by *llm.Breaker.
type stateReporter interface {
	State() string
}

// SystemHandler reports process health and the booking backlog to admins.
type SystemHandler struct {
	rdb       queueInspector
	db        pinger
	features  Features
	breaker   stateReporter
	startTime time.Time
	log       zerolog.Logger
}

// Features describes which optional integrations are configured.
type Features struct {
	CourseSource  string `json:"course_source"`
	TeacherSource string `json:"teacher_source"`
	DocStore      bool   `json:"docstore"`
	Generator     bool   `json:"generator"`
}

// WatchBreaker adds the generator circuit state to the status report.
func (h *SystemHandler) WatchBreaker(b stateReporter) {
	h.breaker = b
}

func NewSystemHandler(rdb queueInspector, db pinger, features Features, log zerolog.Logger) *SystemHandler {
	return &SystemHandler{
		rdb:       rdb,
		db:        db,
		features:  features,
		startTime: time.Now(),
		log:       log.With().Str("component", "system_handler").Logger(),
	}
}

type systemStatus struct {
	Timestamp int64  `json:"timestamp"`
	Uptime    string `json:"uptime"`

	Postgres string `json:"postgres"`
	Redis    string `json:"redis"`

	// Bookings accepted but not yet persisted.
	QueueDemoBookings int64 `json:"queue_demo_bookings"`

	Goroutines int    `json:"goroutines"`
	HeapAlloc  uint64 `json:"heap_alloc"`
	NumGC      uint32 `json:"num_gc"`
	GoVersion  string `json:"go_version"`
	NumCPU     int    `json:"num_cpu"`

	Features Features `json:"features"`
	// closed, half-open or open. Empty without a generator.
	GeneratorCircuit string `json:"generator_circuit,omitempty"`
}

// Status godoc
// GET /api/v1/admin/system/status
func (h *SystemHandler) Status(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), statusTimeout)
	defer cancel()

	response.Success(c, http.StatusOK, h.collect(ctx))
}

func (h *SystemHandler) collect(ctx context.Context) systemStatus {
	s := systemStatus{
		Timestamp:         time.Now().Unix(),
		Uptime:            formatDuration(time.Since(h.startTime)),
		Postgres:          "ok",
		Redis:             "ok",
		QueueDemoBookings: -1,
		GoVersion:         runtime.Version(),
		NumCPU:            runtime.NumCPU(),
		Features:          h.features,
	}

	// Probes only write their own fields, so the group never fails.
	var g errgroup.Group
	g.Go(func() error {
		if err := h.db.Ping(ctx); err != nil {
			h.log.Warn().Err(err).Msg("Postgres ping failed")
			s.Postgres = "down"
		}
		return nil
	})
	g.Go(func() error {
		if err := h.rdb.Ping(ctx).Err(); err != nil {
			h.log.Warn().Err(err).Msg("Redis ping failed")
			s.Redis = "down"
			return nil
		}
		if n, err := h.rdb.LLen(ctx, config.WorkerKey.PersistDemoBookingsQueue).Result(); err == nil {
			s.QueueDemoBookings = n
		}
		return nil
	})
	_ = g.Wait()

	if h.breaker != nil {
		s.GeneratorCircuit = h.breaker.State()
	}

	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	s.Goroutines = runtime.NumGoroutine()
	s.HeapAlloc = ms.HeapAlloc
	s.NumGC = ms.NumGC

	return s
}

func formatDuration(d time.Duration) string {
	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60

	if days > 0 {
		return fmt.Sprintf("%dd %dh %dm %ds", days, hours, minutes, seconds)
	}
	if hours > 0 {
		return fmt.Sprintf("%dh %dm %ds", hours, minutes, seconds)
	}
	return fmt.Sprintf("%dm %ds", minutes, seconds)
}
