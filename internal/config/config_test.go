package config

import (
	"testing"
	"time"
)

func TestParseOrigins(t *testing.T) {
	testCases := []struct {
		input    string
		expected []string
	}{
		{"", nil},
		{"https://a.example", []string{"https://a.example"}},
		{" https://a.example , ,https://b.example ", []string{"https://a.example", "https://b.example"}},
	}

	for _, tc := range testCases {
		got := parseOrigins(tc.input)
		if len(got) != len(tc.expected) {
			t.Fatalf("parseOrigins(%q) = %v, want %v", tc.input, got, tc.expected)
		}
		for i := range got {
			if got[i] != tc.expected[i] {
				t.Errorf("parseOrigins(%q)[%d] = %q, want %q", tc.input, i, got[i], tc.expected[i])
			}
		}
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("COURSE_SOURCE", "")
	t.Setenv("TEACHER_SOURCE", "")
	t.Setenv("LLM_TIMEOUT_SECONDS", "")
	t.Setenv("RECOMMEND_STRICT_CATALOG", "")
	t.Setenv("DOCSTORE_URL", "")
	t.Setenv("LLM_BREAKER_FAILURES", "")
	t.Setenv("LLM_BREAKER_COOLDOWN_SECONDS", "")

	cfg := Load()

	if cfg.LLMBreakerFailures != 5 || cfg.LLMBreakerCooldown != time.Minute {
		t.Errorf("breaker defaults = %d, %v", cfg.LLMBreakerFailures, cfg.LLMBreakerCooldown)
	}

	if cfg.CourseSource != SourceSample {
		t.Errorf("CourseSource = %q, want %q", cfg.CourseSource, SourceSample)
	}
	if cfg.TeacherSource != SourceSample {
		t.Errorf("TeacherSource = %q, want %q", cfg.TeacherSource, SourceSample)
	}
	if cfg.LLMTimeout != 30*time.Second {
		t.Errorf("LLMTimeout = %v, want 30s", cfg.LLMTimeout)
	}
	if !cfg.RecommendStrictCatalog {
		t.Error("RecommendStrictCatalog should default to true")
	}
	if cfg.DocStoreURL != "" {
		t.Errorf("DocStoreURL = %q, want empty", cfg.DocStoreURL)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("COURSE_SOURCE", "Postgres")
	t.Setenv("TEACHER_SOURCE", "docstore")
	t.Setenv("RECOMMEND_STRICT_CATALOG", "false")
	t.Setenv("BOOKING_RATE_LIMIT", "not-a-number")

	cfg := Load()

	if cfg.CourseSource != SourcePostgres {
		t.Errorf("CourseSource = %q, want %q", cfg.CourseSource, SourcePostgres)
	}
	if cfg.TeacherSource != SourceDocStore {
		t.Errorf("TeacherSource = %q, want %q", cfg.TeacherSource, SourceDocStore)
	}
	if cfg.RecommendStrictCatalog {
		t.Error("RecommendStrictCatalog should be false")
	}
	if cfg.BookingRateLimit != 10 {
		t.Errorf("BookingRateLimit = %d, want fallback 10", cfg.BookingRateLimit)
	}
}
