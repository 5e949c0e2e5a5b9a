package recommend

import (
	"github.com/blanklearn/marketplace-backend/internal/llm"
	"github.com/blanklearn/marketplace-backend/internal/model"
)

// Field names of the generator's structured answer.
const (
	fieldRecommendations = "recommendations"
	fieldIsRelevant      = "is_relevant"
	fieldReasoning       = "reasoning"
)

// InputSchema documents the payload embedded in every generation request.
var InputSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"interests": map[string]any{
			"type":        "array",
			"items":       map[string]any{"type": "string"},
			"description": "List of student interests.",
		},
		"age": map[string]any{
			"type":        "number",
			"description": "Student age.",
		},
		"grade": map[string]any{
			"type":        "string",
			"description": "Student grade level (e.g. \"5th Grade\").",
		},
		"candidates": map[string]any{
			"type":        "array",
			"description": "Catalog entries the answer must be drawn from.",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"name":       map[string]any{"type": "string"},
					"categories": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
					"summary":    map[string]any{"type": "string"},
				},
				"required": []any{"name", "categories"},
			},
		},
	},
	"required": []any{"interests", "age", "grade", "candidates"},
}

// outputSchema builds the strict answer schema for kind.
func outputSchema(kind model.RecommendationKind) *llm.Schema {
	noun := "course titles"
	if kind == model.RecommendTeachers {
		noun = "teacher names"
	}
	return &llm.Schema{
		Name:        "blanklearn-" + string(kind) + "-recommendations",
		Description: "Recommended " + noun + " for a learner profile",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				fieldRecommendations: map[string]any{
					"type":        "array",
					"items":       map[string]any{"type": "string"},
					"description": "List of recommended " + noun + ", copied exactly from the candidates.",
				},
				fieldIsRelevant: map[string]any{
					"type":        "boolean",
					"description": "Whether the recommendations are likely relevant to the student.",
				},
				fieldReasoning: map[string]any{
					"type":        "string",
					"description": "A brief explanation of the selection.",
				},
			},
			"required":             []any{fieldRecommendations, fieldIsRelevant, fieldReasoning},
			"additionalProperties": false,
		},
	}
}
