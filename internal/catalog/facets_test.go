package catalog

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

func TestCourseFacets(t *testing.T) {
	facets := CourseFacets(SampleCourses())

	wantSubjects := []string{"Art", "Coding", "History", "Language", "Science", "Writing"}
	if !reflect.DeepEqual(facets.Subjects, wantSubjects) {
		t.Errorf("subjects: got %v, want %v", facets.Subjects, wantSubjects)
	}
	wantTeachers := []string{"Alice Wonderland", "Bob The Builder", "Charlie Chaplin", "Diana Prince"}
	if !reflect.DeepEqual(facets.Teachers, wantTeachers) {
		t.Errorf("teachers: got %v, want %v", facets.Teachers, wantTeachers)
	}
	if len(facets.AgeGroups) != 6 {
		t.Errorf("expected 6 age groups, got %v", facets.AgeGroups)
	}
}

func TestFacetsOfEmptyCatalogAreEmptyNotNil(t *testing.T) {
	cf := CourseFacets(nil)
	if cf.Subjects == nil || cf.Teachers == nil || cf.AgeGroups == nil {
		t.Errorf("course facets must be non-nil: %+v", cf)
	}
	tf := TeacherFacets(nil)
	if tf.Grades == nil || len(tf.Grades) != 0 {
		t.Errorf("teacher facets must be empty and non-nil: %+v", tf)
	}
}

func TestTeacherFacets(t *testing.T) {
	got := TeacherFacets(SampleTeachers()).Grades
	want := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestCatalogEntries(t *testing.T) {
	courses := CourseEntries(SampleCourses())
	if len(courses) != 8 {
		t.Fatalf("expected 8 course entries, got %d", len(courses))
	}
	first := courses[0]
	if first.Name != "Introduction to Python Programming" {
		t.Errorf("unexpected name %q", first.Name)
	}
	if !reflect.DeepEqual(first.Categories, []string{"Coding", "Ages 13-15", "live"}) {
		t.Errorf("unexpected categories %v", first.Categories)
	}
	if first.Summary != "Master Python basics and build your first game." {
		t.Errorf("unexpected summary %q", first.Summary)
	}

	teachers := TeacherEntries(SampleTeachers())
	bob := teachers[1]
	if !reflect.DeepEqual(bob.Categories, []string{"Grade 1", "Grade 2", "Grade 3", "Grade 4", "Grade 5"}) {
		t.Errorf("unexpected categories %v", bob.Categories)
	}
	if bob.Summary != "5 years experience, rated 4.7, available Tue 11 AM-12 PM; Thu 2-3 PM" {
		t.Errorf("unexpected summary %q", bob.Summary)
	}
}

func TestStaticCatalog(t *testing.T) {
	ctx := context.Background()
	cat := NewSampleCatalog()

	courses, err := cat.ListCourses(ctx)
	if err != nil || len(courses) != 8 {
		t.Fatalf("ListCourses: %d, %v", len(courses), err)
	}
	courses[0].Title = "changed"
	again, _ := cat.ListCourses(ctx)
	if again[0].Title == "changed" {
		t.Error("ListCourses must return a copy")
	}

	teacher, err := cat.GetTeacher(ctx, "teacher-carla-003")
	if err != nil {
		t.Fatalf("GetTeacher: %v", err)
	}
	if teacher.Name != "Ms. Carla Nguyen" {
		t.Errorf("unexpected teacher %q", teacher.Name)
	}

	if _, err := cat.GetTeacher(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestEmptyTeachers(t *testing.T) {
	var src TeacherSource = EmptyTeachers{}

	list, err := src.ListTeachers(context.Background())
	if err != nil || list == nil || len(list) != 0 {
		t.Errorf("expected empty non-nil list, got %v, %v", list, err)
	}
	if _, err := src.GetTeacher(context.Background(), "any"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
