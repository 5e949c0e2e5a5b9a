package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/blanklearn/marketplace-backend/internal/catalog"
	"github.com/blanklearn/marketplace-backend/internal/docstore"
	"github.com/blanklearn/marketplace-backend/internal/model"
	"github.com/rs/zerolog"
)

// TeacherCollection is the document store collection holding teacher records.
const TeacherCollection = "teachers"

// TeacherRepository reads teacher documents from the document store.
type TeacherRepository struct {
	store *docstore.Store
	log   zerolog.Logger
}

// NewTeacherRepository creates a new TeacherRepository.
func NewTeacherRepository(store *docstore.Store, log zerolog.Logger) *TeacherRepository {
	return &TeacherRepository{
		store: store,
		log:   log.With().Str("component", "teacher_repository").Logger(),
	}
}

// ListTeachers returns every teacher ordered by id. Documents that do not
// decode are skipped and logged. The record key is the teacher id, whatever
// the document body says.
func (r *TeacherRepository) ListTeachers(ctx context.Context) ([]model.Teacher, error) {
	docs, err := r.store.All(ctx, TeacherCollection)
	if err != nil {
		return nil, err
	}

	teachers := make([]model.Teacher, 0, len(docs))
	for _, doc := range docs {
		var t model.Teacher
		if err := json.Unmarshal(doc.Data, &t); err != nil {
			r.log.Warn().Err(err).Str("teacher_id", doc.ID).Msg("Skipping malformed teacher document")
			continue
		}
		t.ID = doc.ID
		teachers = append(teachers, t)
	}
	return teachers, nil
}

// GetTeacher returns one teacher by id.
func (r *TeacherRepository) GetTeacher(ctx context.Context, id string) (*model.Teacher, error) {
	doc, err := r.store.Get(ctx, TeacherCollection, id)
	if errors.Is(err, docstore.ErrNotFound) {
		return nil, catalog.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var t model.Teacher
	if err := json.Unmarshal(doc, &t); err != nil {
		return nil, fmt.Errorf("decode teacher %s: %w", id, err)
	}
	t.ID = id
	return &t, nil
}

// Save writes a teacher document keyed by its id.
func (r *TeacherRepository) Save(ctx context.Context, t *model.Teacher) error {
	return r.store.Put(ctx, TeacherCollection, t.ID, t)
}
