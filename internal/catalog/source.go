package catalog

import (
	"context"
	"errors"
	"slices"

	"github.com/blanklearn/marketplace-backend/internal/model"
)

// ErrNotFound is returned when a catalog record does not exist.
var ErrNotFound = errors.New("catalog record not found")

// CourseSource provides the full, read-only course collection.
type CourseSource interface {
	ListCourses(ctx context.Context) ([]model.Course, error)
}

// TeacherSource provides the full, read-only teacher collection.
type TeacherSource interface {
	ListTeachers(ctx context.Context) ([]model.Teacher, error)
	GetTeacher(ctx context.Context, id string) (*model.Teacher, error)
}

// StaticCatalog serves a fixed in-memory collection.
type StaticCatalog struct {
	courses  []model.Course
	teachers []model.Teacher
}

// NewStaticCatalog wraps the given records. The slices are copied.
func NewStaticCatalog(courses []model.Course, teachers []model.Teacher) *StaticCatalog {
	return &StaticCatalog{
		courses:  slices.Clone(courses),
		teachers: slices.Clone(teachers),
	}
}

// NewSampleCatalog returns the built-in sample courses and teachers.
func NewSampleCatalog() *StaticCatalog {
	return NewStaticCatalog(SampleCourses(), SampleTeachers())
}

func (s *StaticCatalog) ListCourses(_ context.Context) ([]model.Course, error) {
	return slices.Clone(s.courses), nil
}

func (s *StaticCatalog) ListTeachers(_ context.Context) ([]model.Teacher, error) {
	return slices.Clone(s.teachers), nil
}

func (s *StaticCatalog) GetTeacher(_ context.Context, id string) (*model.Teacher, error) {
	for i := range s.teachers {
		if s.teachers[i].ID == id {
			t := s.teachers[i]
			return &t, nil
		}
	}
	return nil, ErrNotFound
}

// EmptyTeachers is the teacher source used when the configured store is unavailable.
type EmptyTeachers struct{}

func (EmptyTeachers) ListTeachers(_ context.Context) ([]model.Teacher, error) {
	return []model.Teacher{}, nil
}

func (EmptyTeachers) GetTeacher(_ context.Context, _ string) (*model.Teacher, error) {
	return nil, ErrNotFound
}
