package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/blanklearn/marketplace-backend/internal/model"
	"github.com/rs/zerolog"
)

// ErrDocStoreUnavailable is returned when publishing without a document store.
var ErrDocStoreUnavailable = errors.New("document store unavailable")

type teacherWriter interface {
	Save(ctx context.Context, t *model.Teacher) error
}

// PublishService copies teacher records into the document store.
type PublishService struct {
	store teacherWriter
	log   zerolog.Logger
}

// NewPublishService creates a new PublishService. store may be nil when the
// document store is not configured.
func NewPublishService(store teacherWriter, log zerolog.Logger) *PublishService {
	return &PublishService{
		store: store,
		log:   log.With().Str("component", "publish_service").Logger(),
	}
}

// PublishTeachers writes every teacher and returns how many were written.
// It stops at the first failure.
func (s *PublishService) PublishTeachers(ctx context.Context, teachers []model.Teacher) (int, error) {
	if s.store == nil {
		return 0, ErrDocStoreUnavailable
	}
	for i := range teachers {
		if err := s.store.Save(ctx, &teachers[i]); err != nil {
			return i, fmt.Errorf("publish teacher %s: %w", teachers[i].ID, err)
		}
	}
	s.log.Info().Int("count", len(teachers)).Msg("Teachers published to document store")
	return len(teachers), nil
}
