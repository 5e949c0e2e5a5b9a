package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/blanklearn/marketplace-backend/internal/llm"
	"github.com/blanklearn/marketplace-backend/internal/metrics"
	"github.com/blanklearn/marketplace-backend/internal/model"
	"github.com/blanklearn/marketplace-backend/internal/recommend"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
)

type stubGenerator struct {
	calls int
	user  string
	obj   map[string]any
	err   error
}

func (g *stubGenerator) GenerateJSON(_ context.Context, _, user string, _ *llm.Schema) (map[string]any, error) {
	g.calls++
	g.user = user
	return g.obj, g.err
}

func newRecommendationService(gen recommend.Generator) *RecommendationService {
	pipeline := recommend.NewPipeline(gen, recommend.Options{StrictCatalog: true}, zerolog.Nop())
	return NewRecommendationService(pipeline, newSampleCatalogService())
}

func TestRecommendationServiceBlankInterests(t *testing.T) {
	gen := &stubGenerator{}
	svc := newRecommendationService(gen)
	rejected := metrics.RecommendationsTotal.WithLabelValues("courses", metrics.OutcomeRejected)
	before := testutil.ToFloat64(rejected)

	_, err := svc.Recommend(context.Background(), model.RecommendCourses,
		model.RecommendationRequest{Interests: " , ,, ", Age: 10, Grade: "Grade 5"})
	if !errors.Is(err, recommend.ErrNoInterests) {
		t.Fatalf("expected ErrNoInterests, got %v", err)
	}
	if gen.calls != 0 {
		t.Errorf("generator called %d times", gen.calls)
	}
	if got := testutil.ToFloat64(rejected) - before; got != 1 {
		t.Errorf("rejected counter moved by %v, want 1", got)
	}
}

func TestRecommendationServiceGroundsOnCatalog(t *testing.T) {
	gen := &stubGenerator{obj: map[string]any{
		"recommendations": []any{"Physics Fun: Simple Machines & Forces", "Underwater Basket Weaving"},
		"is_relevant":     true,
		"reasoning":       "Hands-on science for a young learner.",
	}}
	svc := newRecommendationService(gen)

	got, err := svc.Recommend(context.Background(), model.RecommendCourses,
		model.RecommendationRequest{Interests: "science, experiments", Age: 7, Grade: "Grade 2"})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if len(got.Recommendations) != 1 || got.Recommendations[0] != "Physics Fun: Simple Machines & Forces" {
		t.Errorf("unexpected recommendations %v", got.Recommendations)
	}
	if len(got.Matches) != 1 || got.Matches[0].ID != "course-8" {
		t.Errorf("unexpected matches %v", got.Matches)
	}
	if !strings.Contains(gen.user, "Introduction to Python Programming") {
		t.Error("course snapshot not sent to generator")
	}
}

func TestRecommendationServiceTeachersUseTeacherSnapshot(t *testing.T) {
	gen := &stubGenerator{err: errors.New("upstream down")}
	svc := newRecommendationService(gen)

	got, err := svc.Recommend(context.Background(), model.RecommendTeachers,
		model.RecommendationRequest{Interests: "math", Age: 12, Grade: "Grade 7"})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if got.Reasoning != recommend.FallbackReasoning || len(got.Recommendations) != 0 || got.IsRelevant {
		t.Errorf("expected default result, got %+v", got)
	}
	if !strings.Contains(gen.user, "Mr. David Okafor") {
		t.Error("teacher snapshot not sent to generator")
	}
}
