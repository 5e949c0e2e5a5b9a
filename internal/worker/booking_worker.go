package worker

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/blanklearn/marketplace-backend/internal/config"
	"github.com/blanklearn/marketplace-backend/internal/metrics"
	"github.com/blanklearn/marketplace-backend/internal/model"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const (
	pollTimeout       = time.Second
	defaultRetryDelay = 5 * time.Second
	requeueTimeout    = 3 * time.Second
)

// queueClient is the part of *redis.Client the worker uses.
type queueClient interface {
	BLPop(ctx context.Context, timeout time.Duration, keys ...string) *redis.StringSliceCmd
	LPop(ctx context.Context, key string) *redis.StringCmd
	RPush(ctx context.Context, key string, values ...any) *redis.IntCmd
	Publish(ctx context.Context, channel string, message any) *redis.IntCmd
}

// bookingStore is implemented by repository.DemoBookingRepository.
type bookingStore interface {
	Create(ctx context.Context, b *model.DemoBooking) error
}

// BookingWorker consumes persist_demo_bookings_queue, inserts each booking
// into PostgreSQL and announces it on the booking feed channel.
type BookingWorker struct {
	rdb        queueClient
	store      bookingStore
	retryDelay time.Duration
	log        zerolog.Logger
}

// NewBookingWorker creates a new BookingWorker.
func NewBookingWorker(rdb queueClient, store bookingStore, log zerolog.Logger) *BookingWorker {
	return &BookingWorker{
		rdb:        rdb,
		store:      store,
		retryDelay: defaultRetryDelay,
		log:        log.With().Str("component", "booking_worker").Logger(),
	}
}

// Start begins the worker loop and returns after ctx is cancelled and the
// queue has been drained. Call in a goroutine.
func (w *BookingWorker) Start(ctx context.Context) {
	w.log.Info().Msg("Worker started")

	for {
		select {
		case <-ctx.Done():
			w.log.Info().Msg("Worker stopping...")
			w.drain(context.Background())
			w.log.Info().Msg("Worker stopped")
			return
		default:
			w.processNext(ctx)
		}
	}
}

func (w *BookingWorker) processNext(ctx context.Context) {
	queue := config.WorkerKey.PersistDemoBookingsQueue

	result, err := w.rdb.BLPop(ctx, pollTimeout, queue).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) && ctx.Err() == nil {
			w.log.Error().Err(err).Msg("BLPop error")
		}
		return
	}
	if len(result) < 2 {
		return
	}

	if err := w.handle(ctx, result[1]); err != nil {
		w.log.Error().Err(err).Msg("Persist error, retrying later")
		w.requeue(ctx, result[1])
		w.sleep(ctx)
	}
}

// requeue pushes raw back onto the queue. The booking is already off the
// list, so the push must outlive a cancelled worker context.
func (w *BookingWorker) requeue(ctx context.Context, raw string) bool {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), requeueTimeout)
	defer cancel()

	if err := w.rdb.RPush(ctx, config.WorkerKey.PersistDemoBookingsQueue, raw).Err(); err != nil {
		w.log.Error().Err(err).Str("payload", raw).Msg("Requeue failed, booking lost")
		metrics.RecordBooking(metrics.BookingLost)
		return false
	}
	return true
}

// handle persists one raw payload. A payload that cannot be decoded is
// dropped with a log line, since retrying cannot fix it.
func (w *BookingWorker) handle(ctx context.Context, raw string) error {
	var booking model.DemoBooking
	if err := json.Unmarshal([]byte(raw), &booking); err != nil {
		w.log.Error().Err(err).Msg("Unmarshal error, dropping payload")
		metrics.RecordBooking(metrics.BookingDropped)
		return nil
	}

	if err := w.store.Create(ctx, &booking); err != nil {
		metrics.RecordBooking(metrics.BookingPersistFailed)
		return err
	}
	metrics.RecordBooking(metrics.BookingPersisted)

	if err := w.rdb.Publish(ctx, config.CacheKey.BookingFeedChannel(), raw).Err(); err != nil {
		w.log.Warn().Err(err).Str("booking_id", booking.ID.String()).Msg("Failed to publish booking to feed")
	}

	w.log.Debug().Str("booking_id", booking.ID.String()).Msg("Demo booking persisted")
	return nil
}

func (w *BookingWorker) sleep(ctx context.Context) {
	t := time.NewTimer(w.retryDelay)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
	}
}

// drain processes all remaining items in the queue before shutdown.
func (w *BookingWorker) drain(ctx context.Context) {
	queue := config.WorkerKey.PersistDemoBookingsQueue
	drained := 0
	for {
		raw, err := w.rdb.LPop(ctx, queue).Result()
		if err != nil {
			break
		}

		if err := w.handle(ctx, raw); err != nil {
			w.log.Error().Err(err).Msg("Drain persist error")
			w.requeue(ctx, raw)
			break
		}
		drained++
	}

	if drained > 0 {
		w.log.Info().Int("count", drained).Msg("Drained remaining items")
	}
}
