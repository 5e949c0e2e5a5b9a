package recommend

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/blanklearn/marketplace-backend/internal/model"
)

const coursePrompt = `You are an expert educational consultant for Blanklearn, a platform connecting students (grades 1-10) with teachers and courses.
Recommend courses that align with the student's interests, age, and grade level.
Only recommend courses from the "candidates" list and copy their titles exactly.
Set is_relevant to whether the recommended courses are indeed relevant to the student.
If no course is a good fit, return an empty list, explain why, and set is_relevant to false.`

const teacherPrompt = `You are an expert educational consultant for Blanklearn, a platform connecting students (grades 1-10) with teachers.
Recommend up to 3 suitable teachers based on the student's profile.
Only recommend teachers from the "candidates" list and copy their names exactly.
Provide a brief reasoning for your selections and set is_relevant to whether they fit the student.
If no teacher is a good fit, return an empty list, explain why, and set is_relevant to false.`

// generationInput is the JSON document described by InputSchema.
type generationInput struct {
	Interests  []string             `json:"interests"`
	Age        int                  `json:"age"`
	Grade      string               `json:"grade"`
	Candidates []model.CatalogEntry `json:"candidates"`
}

func systemPrompt(kind model.RecommendationKind) string {
	if kind == model.RecommendTeachers {
		return teacherPrompt
	}
	return coursePrompt
}

// userPrompt renders the profile and the catalog snapshot.
func userPrompt(profile model.RecommendationProfile, entries []model.CatalogEntry) (string, error) {
	if entries == nil {
		entries = []model.CatalogEntry{}
	}
	payload, err := json.MarshalIndent(generationInput{
		Interests:  profile.Interests,
		Age:        profile.Age,
		Grade:      profile.Grade,
		Candidates: entries,
	}, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode generation input: %w", err)
	}

	schema, err := json.Marshal(InputSchema)
	if err != nil {
		return "", fmt.Errorf("encode input schema: %w", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Student interests: %s\n", strings.Join(profile.Interests, ", "))
	fmt.Fprintf(&b, "Student age: %d\n", profile.Age)
	fmt.Fprintf(&b, "Student grade: %s\n\n", profile.Grade)
	b.WriteString("Input schema:\n")
	b.Write(schema)
	b.WriteString("\n\nInput:\n")
	b.Write(payload)
	return b.String(), nil
}
