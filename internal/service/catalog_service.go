package service

import (
	"context"
	"errors"

	"github.com/blanklearn/marketplace-backend/internal/catalog"
	"github.com/blanklearn/marketplace-backend/internal/model"
	"github.com/rs/zerolog"
)

// Catalog errors.
var (
	ErrCourseNotFound  = errors.New("course not found")
	ErrTeacherNotFound = errors.New("teacher not found")
)

// CatalogService lists, filters and describes courses and teachers.
// Source failures are logged and degrade to an empty catalog.
type CatalogService struct {
	courses  catalog.CourseSource
	teachers catalog.TeacherSource
	log      zerolog.Logger
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(courses catalog.CourseSource, teachers catalog.TeacherSource, log zerolog.Logger) *CatalogService {
	return &CatalogService{
		courses:  courses,
		teachers: teachers,
		log:      log.With().Str("component", "catalog_service").Logger(),
	}
}

func (s *CatalogService) allCourses(ctx context.Context) []model.Course {
	courses, err := s.courses.ListCourses(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("Course source unavailable, serving empty catalog")
		return []model.Course{}
	}
	return courses
}

func (s *CatalogService) allTeachers(ctx context.Context) []model.Teacher {
	teachers, err := s.teachers.ListTeachers(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("Teacher source unavailable, serving empty catalog")
		return []model.Teacher{}
	}
	return teachers
}

// ListCourses returns the courses matching criteria, in catalog order.
func (s *CatalogService) ListCourses(ctx context.Context, c model.CourseCriteria) []model.Course {
	return catalog.FilterCourses(s.allCourses(ctx), c)
}

// CourseFacets returns the values the course listing can be filtered by.
func (s *CatalogService) CourseFacets(ctx context.Context) model.CourseFacets {
	return catalog.CourseFacets(s.allCourses(ctx))
}

// GetCourse returns one course by id.
func (s *CatalogService) GetCourse(ctx context.Context, id string) (*model.Course, error) {
	for _, c := range s.allCourses(ctx) {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, ErrCourseNotFound
}

// ListTeachers returns the teachers matching criteria, in catalog order.
func (s *CatalogService) ListTeachers(ctx context.Context, c model.TeacherCriteria) []model.Teacher {
	return catalog.FilterTeachers(s.allTeachers(ctx), c)
}

// TeacherFacets returns the values the teacher listing can be filtered by.
func (s *CatalogService) TeacherFacets(ctx context.Context) model.TeacherFacets {
	return catalog.TeacherFacets(s.allTeachers(ctx))
}

// GetTeacher returns a teacher with per-slot availability.
func (s *CatalogService) GetTeacher(ctx context.Context, id string) (*model.TeacherDetail, error) {
	t, err := s.teachers.GetTeacher(ctx, id)
	if errors.Is(err, catalog.ErrNotFound) {
		return nil, ErrTeacherNotFound
	}
	if err != nil {
		s.log.Error().Err(err).Str("teacher_id", id).Msg("Teacher lookup failed")
		return nil, ErrTeacherNotFound
	}
	return &model.TeacherDetail{Teacher: *t, Availability: t.SlotSummary()}, nil
}

// Snapshot returns the catalog entries that ground a recommendation of kind.
func (s *CatalogService) Snapshot(ctx context.Context, kind model.RecommendationKind) []model.CatalogEntry {
	if kind == model.RecommendTeachers {
		return catalog.TeacherEntries(s.allTeachers(ctx))
	}
	return catalog.CourseEntries(s.allCourses(ctx))
}

// Teachers returns the unfiltered teacher collection.
func (s *CatalogService) Teachers(ctx context.Context) []model.Teacher {
	return s.allTeachers(ctx)
}
