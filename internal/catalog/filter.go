// Package catalog holds the course and teacher catalog: where it is loaded
// from and how a listing is narrowed down by user criteria.
package catalog

import (
	"slices"
	"strings"

	"github.com/blanklearn/marketplace-backend/internal/model"
)

// predicate reports whether an item satisfies one criterion.
type predicate[T any] func(T) bool

// apply keeps the items that satisfy every predicate, in input order.
// The input slice is never modified and the result is never nil.
func apply[T any](items []T, preds []predicate[T]) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if matchesAll(item, preds) {
			out = append(out, item)
		}
	}
	return out
}

func matchesAll[T any](item T, preds []predicate[T]) bool {
	for _, p := range preds {
		if !p(item) {
			return false
		}
	}
	return true
}

// FilterCourses returns the courses matching every present criterion.
func FilterCourses(all []model.Course, c model.CourseCriteria) []model.Course {
	return apply(all, coursePredicates(c))
}

// FilterTeachers returns the teachers matching every present criterion.
func FilterTeachers(all []model.Teacher, c model.TeacherCriteria) []model.Teacher {
	return apply(all, teacherPredicates(c))
}

func coursePredicates(c model.CourseCriteria) []predicate[model.Course] {
	var preds []predicate[model.Course]

	if term, ok := searchTerm(c.Search); ok {
		preds = append(preds, func(course model.Course) bool {
			return containsFold(term, course.Title, course.Description, course.Subject, course.Teacher.Name)
		})
	}
	if v, ok := nonEmpty(c.Subject); ok {
		preds = append(preds, func(course model.Course) bool { return course.Subject == v })
	}
	if v, ok := nonEmpty(c.Teacher); ok {
		preds = append(preds, func(course model.Course) bool { return course.Teacher.Name == v })
	}
	if c.MinRating != nil {
		floor := *c.MinRating
		preds = append(preds, func(course model.Course) bool { return course.Rating >= floor })
	}
	if v, ok := nonEmpty(c.AgeGroup); ok {
		preds = append(preds, func(course model.Course) bool { return course.AgeGroup == v })
	}
	if c.MaxPrice != nil {
		ceiling := *c.MaxPrice
		preds = append(preds, func(course model.Course) bool { return course.Price <= ceiling })
	}
	if c.Type != nil && *c.Type != "" {
		t := *c.Type
		preds = append(preds, func(course model.Course) bool { return course.Type == t })
	}

	return preds
}

func teacherPredicates(c model.TeacherCriteria) []predicate[model.Teacher] {
	var preds []predicate[model.Teacher]

	if term, ok := searchTerm(c.Search); ok {
		preds = append(preds, func(t model.Teacher) bool { return containsFold(term, t.Name) })
	}
	if c.Grade != nil {
		grade := *c.Grade
		preds = append(preds, func(t model.Teacher) bool { return slices.Contains(t.PreferredGrades, grade) })
	}
	if c.MinRating != nil {
		floor := *c.MinRating
		preds = append(preds, func(t model.Teacher) bool { return t.Rating >= floor })
	}
	if c.MinExperience != nil {
		floor := *c.MinExperience
		preds = append(preds, func(t model.Teacher) bool { return t.Experience >= floor })
	}

	return preds
}

// searchTerm lower-cases and trims s. A blank term counts as absent.
func searchTerm(s *string) (string, bool) {
	if s == nil {
		return "", false
	}
	term := strings.ToLower(strings.TrimSpace(*s))
	return term, term != ""
}

func nonEmpty(s *string) (string, bool) {
	if s == nil || *s == "" {
		return "", false
	}
	return *s, true
}

// containsFold reports whether any field contains the lower-cased term.
func containsFold(term string, fields ...string) bool {
	for _, f := range fields {
		if f != "" && strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}
