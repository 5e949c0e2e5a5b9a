package catalog

import (
	"slices"
	"strconv"
	"strings"

	"github.com/blanklearn/marketplace-backend/internal/model"
)

// CourseFacets collects the distinct, sorted filter values of a course list.
func CourseFacets(courses []model.Course) model.CourseFacets {
	subjects := make([]string, 0, len(courses))
	teachers := make([]string, 0, len(courses))
	ageGroups := make([]string, 0, len(courses))
	for _, c := range courses {
		subjects = append(subjects, c.Subject)
		teachers = append(teachers, c.Teacher.Name)
		ageGroups = append(ageGroups, c.AgeGroup)
	}
	return model.CourseFacets{
		Subjects:  distinct(subjects),
		Teachers:  distinct(teachers),
		AgeGroups: distinct(ageGroups),
	}
}

// TeacherFacets collects the distinct, sorted grades taught across teachers.
func TeacherFacets(teachers []model.Teacher) model.TeacherFacets {
	var grades []int
	for _, t := range teachers {
		grades = append(grades, t.PreferredGrades...)
	}
	slices.Sort(grades)
	grades = slices.Compact(grades)
	if grades == nil {
		grades = []int{}
	}
	return model.TeacherFacets{Grades: grades}
}

func distinct(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}

// CourseEntries builds the catalog snapshot used to ground course recommendations.
func CourseEntries(courses []model.Course) []model.CatalogEntry {
	entries := make([]model.CatalogEntry, 0, len(courses))
	for _, c := range courses {
		summary := c.ShortDescription
		if summary == "" {
			summary = c.Description
		}
		entries = append(entries, model.CatalogEntry{
			ID:         c.ID,
			Name:       c.Title,
			Categories: []string{c.Subject, "Ages " + c.AgeGroup, string(c.Type)},
			Summary:    summary,
		})
	}
	return entries
}

// TeacherEntries builds the catalog snapshot used to ground teacher recommendations.
func TeacherEntries(teachers []model.Teacher) []model.CatalogEntry {
	entries := make([]model.CatalogEntry, 0, len(teachers))
	for _, t := range teachers {
		categories := make([]string, 0, len(t.PreferredGrades))
		for _, g := range t.PreferredGrades {
			categories = append(categories, "Grade "+strconv.Itoa(g))
		}
		summary := strconv.Itoa(t.Experience) + " years experience, rated " +
			strconv.FormatFloat(t.Rating, 'f', 1, 64)
		if len(t.AvailableSlots) > 0 {
			summary += ", available " + strings.Join(t.AvailableSlots, "; ")
		}
		entries = append(entries, model.CatalogEntry{
			ID:         t.ID,
			Name:       t.Name,
			Categories: categories,
			Summary:    summary,
		})
	}
	return entries
}
