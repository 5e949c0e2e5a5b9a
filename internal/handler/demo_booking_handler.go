package handler

import (
	"net/http"
	"time"

	"github.com/blanklearn/marketplace-backend/internal/config"
	"github.com/blanklearn/marketplace-backend/internal/model"
	"github.com/blanklearn/marketplace-backend/internal/response"
	"github.com/blanklearn/marketplace-backend/internal/service"
	"github.com/blanklearn/marketplace-backend/internal/validator"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const (
	defaultBookingsPerPage = 20
	keepAliveInterval      = 30 * time.Second
)

var pingEvent = []byte(`data: {"type":"ping"}` + "\n\n")

// DemoBookingHandler lets admins review demo bookings, as a page or as a live feed.
type DemoBookingHandler struct {
	rdb      *redis.Client
	bookings *service.DemoBookingService
	log      zerolog.Logger
}

func NewDemoBookingHandler(rdb *redis.Client, bookings *service.DemoBookingService, log zerolog.Logger) *DemoBookingHandler {
	return &DemoBookingHandler{
		rdb:      rdb,
		bookings: bookings,
		log:      log.With().Str("component", "demo_booking_handler").Logger(),
	}
}

// ListDemoBookings godoc
// GET /api/v1/admin/demo-bookings?page=1&per_page=20&date=2026-05-02
func (h *DemoBookingHandler) ListDemoBookings(c *gin.Context) {
	var q model.DemoBookingQuery
	if fields := validator.BindQuery(c, &q); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrInvalidQuery, fields)
		return
	}
	if q.Page == 0 {
		q.Page = 1
	}
	if q.PerPage == 0 {
		q.PerPage = defaultBookingsPerPage
	}

	var date *time.Time
	if q.Date != "" {
		d, err := time.ParseInLocation(model.DemoDateLayout, q.Date, time.Local)
		if err != nil {
			response.FailWithFields(c, http.StatusBadRequest, response.ErrInvalidQuery, map[string]string{"date": err.Error()})
			return
		}
		date = &d
	}

	bookings, total, err := h.bookings.List(c.Request.Context(), date, q.Page, q.PerPage)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list demo bookings")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.SuccessWithPagination(c, http.StatusOK, bookings, response.NewPagination(q.Page, q.PerPage, total))
}

// StreamDemoBookings godoc
// GET /api/v1/admin/demo-bookings/stream
// Server-sent events: one event per booking persisted after the client connects.
func (h *DemoBookingHandler) StreamDemoBookings(c *gin.Context) {
	if _, ok := c.Writer.(http.Flusher); !ok {
		response.Fail(c, http.StatusInternalServerError, response.ErrStreamNotSupported)
		return
	}

	reqCtx := c.Request.Context()

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.WriteHeader(http.StatusOK)

	pubsub := h.rdb.Subscribe(reqCtx, config.CacheKey.BookingFeedChannel())
	defer pubsub.Close()

	ch := pubsub.Channel()

	keepAlive := time.NewTicker(keepAliveInterval)
	defer keepAlive.Stop()

	_, _ = c.Writer.Write(pingEvent)
	c.Writer.Flush()

	h.log.Info().Msg("Admin attached to demo booking feed")

	for {
		select {
		case <-reqCtx.Done():
			h.log.Info().Msg("Admin detached from demo booking feed")
			return

		case msg, ok := <-ch:
			if !ok {
				return
			}
			// Payload is already JSON.
			_, _ = c.Writer.Write([]byte("data: "))
			_, _ = c.Writer.Write([]byte(msg.Payload))
			_, _ = c.Writer.Write([]byte("\n\n"))
			c.Writer.Flush()

		case <-keepAlive.C:
			_, _ = c.Writer.Write(pingEvent)
			c.Writer.Flush()
		}
	}
}
