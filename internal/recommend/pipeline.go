// Package recommend turns a learner profile and a catalog snapshot into a
// recommendation through one schema-bound call to a text generator.
//
// Every outcome other than a rejected profile is a RecommendationResult of
// the same shape: generator failures and malformed answers collapse into
// DefaultResult, so callers render a single code path.
package recommend

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/blanklearn/marketplace-backend/internal/llm"
	"github.com/blanklearn/marketplace-backend/internal/metrics"
	"github.com/blanklearn/marketplace-backend/internal/model"
	"github.com/rs/zerolog"
)

// ErrNoInterests rejects a profile whose interest list is empty after trimming.
var ErrNoInterests = errors.New("at least one interest is required")

const (
	// FallbackReasoning accompanies the default result.
	FallbackReasoning = "The AI could not determine suitable recommendations at this time."
	// MissingReasoning replaces an absent or empty reasoning field.
	MissingReasoning = "No specific reasoning provided."
)

// Generator produces a JSON object bound by schema. llm.Client implements it.
type Generator interface {
	GenerateJSON(ctx context.Context, system, user string, schema *llm.Schema) (map[string]any, error)
}

// Options tune a Pipeline.
type Options struct {
	// StrictCatalog drops names that are not in the snapshot.
	StrictCatalog bool
	// Timeout bounds the generator call. Zero means no extra bound.
	Timeout time.Duration
}

// Pipeline runs recommendation requests. It holds no per-request state and
// is safe for concurrent use.
type Pipeline struct {
	gen  Generator
	opts Options
	log  zerolog.Logger
}

// NewPipeline creates a Pipeline. A nil generator makes every request
// return DefaultResult.
func NewPipeline(gen Generator, opts Options, log zerolog.Logger) *Pipeline {
	return &Pipeline{
		gen:  gen,
		opts: opts,
		log:  log.With().Str("component", "recommend").Logger(),
	}
}

// ParseInterests splits a comma-separated input into trimmed, non-blank interests.
func ParseInterests(raw string) []string {
	return trimInterests(strings.Split(raw, ","))
}

func trimInterests(parts []string) []string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// DefaultResult is the answer used whenever the generator fails.
func DefaultResult() model.RecommendationResult {
	return model.RecommendationResult{
		Recommendations: []string{},
		IsRelevant:      false,
		Reasoning:       FallbackReasoning,
		Matches:         []model.RecommendedItem{},
	}
}

// Recommend issues exactly one generator call for profile, grounded on
// entries. Only ErrNoInterests is returned as an error.
//
// Cancelling ctx does not abort the call. Options.Timeout still bounds it.
func (p *Pipeline) Recommend(ctx context.Context, kind model.RecommendationKind, profile model.RecommendationProfile, entries []model.CatalogEntry) (model.RecommendationResult, error) {
	profile.Interests = trimInterests(profile.Interests)
	if len(profile.Interests) == 0 {
		metrics.RecordRecommendation(string(kind), metrics.OutcomeRejected)
		return model.RecommendationResult{}, ErrNoInterests
	}

	if p.gen == nil {
		p.log.Warn().Str("kind", string(kind)).Msg("No generator configured, returning default recommendation")
		return p.fallback(kind), nil
	}

	user, err := userPrompt(profile, entries)
	if err != nil {
		p.log.Error().Err(err).Str("kind", string(kind)).Msg("Failed to build recommendation prompt")
		return p.fallback(kind), nil
	}

	callCtx := context.WithoutCancel(ctx)
	if p.opts.Timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(callCtx, p.opts.Timeout)
		defer cancel()
	}

	start := time.Now()
	obj, err := p.gen.GenerateJSON(callCtx, systemPrompt(kind), user, outputSchema(kind))
	metrics.RecordGeneratorCall(time.Since(start))
	if err != nil {
		ev := p.log.Warn()
		if errors.Is(err, llm.ErrUnavailable) {
			ev = p.log.Info()
		}
		ev.Err(err).
			Str("kind", string(kind)).
			Dur("elapsed", time.Since(start)).
			Msg("Recommendation call failed, returning default")
		return p.fallback(kind), nil
	}

	result, ok := decodeResult(obj)
	if !ok {
		p.log.Warn().Str("kind", string(kind)).Msg("Recommendation response does not match schema, returning default")
		return p.fallback(kind), nil
	}

	result.Recommendations, result.Matches = resolve(result.Recommendations, entries, p.opts.StrictCatalog)
	metrics.RecordRecommendation(string(kind), metrics.OutcomeAnswered)

	p.log.Debug().
		Str("kind", string(kind)).
		Int("count", len(result.Recommendations)).
		Bool("is_relevant", result.IsRelevant).
		Dur("elapsed", time.Since(start)).
		Msg("Recommendation completed")
	return result, nil
}

func (p *Pipeline) fallback(kind model.RecommendationKind) model.RecommendationResult {
	metrics.RecordRecommendation(string(kind), metrics.OutcomeDefault)
	return DefaultResult()
}

// decodeResult validates obj against the output schema and substitutes
// defaults for missing fields. A field of the wrong type fails the whole object.
func decodeResult(obj map[string]any) (model.RecommendationResult, bool) {
	if obj == nil {
		return model.RecommendationResult{}, false
	}

	result := model.RecommendationResult{
		Recommendations: []string{},
		Reasoning:       MissingReasoning,
	}

	if raw, present := obj[fieldRecommendations]; present && raw != nil {
		list, ok := raw.([]any)
		if !ok {
			return model.RecommendationResult{}, false
		}
		for _, item := range list {
			name, ok := item.(string)
			if !ok {
				return model.RecommendationResult{}, false
			}
			if name = strings.TrimSpace(name); name != "" {
				result.Recommendations = append(result.Recommendations, name)
			}
		}
	}

	if raw, present := obj[fieldIsRelevant]; present && raw != nil {
		relevant, ok := raw.(bool)
		if !ok {
			return model.RecommendationResult{}, false
		}
		result.IsRelevant = relevant
	}

	if raw, present := obj[fieldReasoning]; present && raw != nil {
		reasoning, ok := raw.(string)
		if !ok {
			return model.RecommendationResult{}, false
		}
		if reasoning = strings.TrimSpace(reasoning); reasoning != "" {
			result.Reasoning = reasoning
		}
	}

	return result, true
}

// resolve links names to snapshot entries by case-insensitive match. Known
// names take the catalog spelling. Unknown names are dropped in strict mode.
func resolve(names []string, entries []model.CatalogEntry, strict bool) ([]string, []model.RecommendedItem) {
	index := make(map[string]model.CatalogEntry, len(entries))
	for _, e := range entries {
		key := strings.ToLower(strings.TrimSpace(e.Name))
		if _, dup := index[key]; !dup {
			index[key] = e
		}
	}

	kept := make([]string, 0, len(names))
	matches := make([]model.RecommendedItem, 0, len(names))
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		entry, known := index[strings.ToLower(name)]
		if strict && !known {
			continue
		}
		if known {
			name = entry.Name
		}
		if seen[name] {
			continue
		}
		seen[name] = true
		kept = append(kept, name)
		if known {
			matches = append(matches, model.RecommendedItem{ID: entry.ID, Name: entry.Name})
		}
	}
	return kept, matches
}
