package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/blanklearn/marketplace-backend/internal/config"
	"github.com/blanklearn/marketplace-backend/internal/metrics"
	"github.com/blanklearn/marketplace-backend/internal/model"
	"github.com/blanklearn/marketplace-backend/internal/response"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// BookingConfirmationTitle heads every accepted demo booking.
const BookingConfirmationTitle = "Demo Request Submitted!"

// bookingQueue is the slice of the Redis client the booking service needs.
type bookingQueue interface {
	RPush(ctx context.Context, key string, values ...any) *redis.IntCmd
}

// BookingService accepts demo booking requests and queues them for persistence.
type BookingService struct {
	queue bookingQueue
	now   func() time.Time
	log   zerolog.Logger
}

// NewBookingService creates a new BookingService.
func NewBookingService(queue bookingQueue, log zerolog.Logger) *BookingService {
	return &BookingService{
		queue: queue,
		now:   time.Now,
		log:   log.With().Str("component", "booking_service").Logger(),
	}
}

// Book turns a validated request into a booking, queues it and returns the
// confirmation shown to the parent. A queue failure is logged only: the
// confirmation is still returned.
func (s *BookingService) Book(ctx context.Context, req model.CreateDemoBookingRequest) (*model.DemoBookingConfirmation, error) {
	date, err := time.ParseInLocation(model.DemoDateLayout, req.PreferredDate, time.Local)
	if err != nil {
		return nil, fmt.Errorf("parse preferred date: %w", err)
	}

	booking := model.DemoBooking{
		ID:               uuid.New(),
		StudentName:      req.StudentName,
		ParentEmail:      req.ParentEmail,
		StudentGrade:     req.StudentGrade,
		PreferredSubject: req.PreferredSubject,
		PreferredDate:    date,
		PreferredTime:    req.PreferredTime,
		CreatedAt:        s.now().UTC(),
	}

	s.enqueue(ctx, &booking)
	metrics.RecordBooking(metrics.BookingAccepted)

	return &model.DemoBookingConfirmation{
		ID:      booking.ID,
		Title:   BookingConfirmationTitle,
		Message: confirmationMessage(&booking),
	}, nil
}

func (s *BookingService) enqueue(ctx context.Context, b *model.DemoBooking) {
	log := s.log.With().
		Str("booking_id", b.ID.String()).
		Str("request_id", response.RequestIDFromContext(ctx)).
		Logger()

	payload, err := json.Marshal(b)
	if err != nil {
		log.Error().Err(err).Msg("Failed to encode demo booking")
		metrics.RecordBooking(metrics.BookingQueueFailed)
		return
	}
	if err := s.queue.RPush(ctx, config.WorkerKey.PersistDemoBookingsQueue, payload).Err(); err != nil {
		log.Error().Err(err).Msg("Failed to queue demo booking")
		metrics.RecordBooking(metrics.BookingQueueFailed)
		return
	}
	log.Info().
		Str("subject", b.PreferredSubject).
		Msg("Demo booking queued")
}

func confirmationMessage(b *model.DemoBooking) string {
	return fmt.Sprintf(
		"Thank you, %s. We've received your request for a demo in %s on %s at %s. We'll contact you at %s shortly.",
		b.StudentName, b.PreferredSubject, longDate(b.PreferredDate), b.PreferredTime, b.ParentEmail,
	)
}

// longDate formats t as "March 10th, 2026".
func longDate(t time.Time) string {
	return t.Format("January") + " " + ordinal(t.Day()) + ", " + strconv.Itoa(t.Year())
}

func ordinal(n int) string {
	suffix := "th"
	switch n % 100 {
	case 11, 12, 13:
	default:
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return strconv.Itoa(n) + suffix
}
