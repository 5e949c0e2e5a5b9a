package service

import (
	"context"
	"time"

	"github.com/blanklearn/marketplace-backend/internal/model"
)

type bookingLister interface {
	ListPaginated(ctx context.Context, date *time.Time, limit, offset int) ([]model.DemoBooking, int, error)
}

// DemoBookingService exposes persisted bookings to administrators.
type DemoBookingService struct {
	repo bookingLister
}

// NewDemoBookingService creates a new DemoBookingService.
func NewDemoBookingService(repo bookingLister) *DemoBookingService {
	return &DemoBookingService{repo: repo}
}

// List returns one page of bookings, newest first, and the total count.
func (s *DemoBookingService) List(ctx context.Context, date *time.Time, page, perPage int) ([]model.DemoBooking, int, error) {
	if page < 1 {
		page = 1
	}
	return s.repo.ListPaginated(ctx, date, perPage, (page-1)*perPage)
}
