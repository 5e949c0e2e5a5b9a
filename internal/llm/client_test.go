package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/blanklearn/marketplace-backend/internal/config"
	"github.com/rs/zerolog"
)

var testSchema = &Schema{
	Name: "probe",
	Definition: map[string]any{
		"type":       "object",
		"properties": map[string]any{"ok": map[string]any{"type": "boolean"}},
	},
}

func newTestClient(baseURL, key string) *Client {
	return NewClient(&config.Config{
		LLMBaseURL: baseURL + "/",
		LLMAPIKey:  key,
		LLMModel:   "test-model",
		LLMTimeout: 2 * time.Second,
	}, zerolog.Nop())
}

func assistantReply(text string) map[string]any {
	return map[string]any{
		"output": []any{
			map[string]any{
				"type": "message",
				"role": "assistant",
				"content": []any{
					map[string]any{"type": "output_text", "text": text},
				},
			},
		},
	}
}

func TestGenerateJSON(t *testing.T) {
	var captured responsesRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/responses" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer secret" {
			t.Errorf("unexpected auth header %q", got)
		}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("decode request: %v", err)
		}
		_ = json.NewEncoder(w).Encode(assistantReply(`{"ok":true}`))
	}))
	defer srv.Close()

	obj, err := newTestClient(srv.URL, "secret").GenerateJSON(context.Background(), "sys", "usr", testSchema)
	if err != nil {
		t.Fatalf("GenerateJSON: %v", err)
	}
	if obj["ok"] != true {
		t.Errorf("unexpected object %v", obj)
	}
	if captured.Model != "test-model" || len(captured.Input) != 2 || captured.Input[1].Content != "usr" {
		t.Errorf("unexpected request %+v", captured)
	}
	if captured.Text.Format["type"] != "json_schema" || captured.Text.Format["strict"] != true {
		t.Errorf("unexpected format %v", captured.Text.Format)
	}
}

func TestGenerateJSONFailures(t *testing.T) {
	testCases := []struct {
		name    string
		status  int
		payload any
	}{
		{"server error", http.StatusInternalServerError, map[string]any{"error": "boom"}},
		{"refusal", http.StatusOK, map[string]any{"refusal": "no"}},
		{"empty output", http.StatusOK, map[string]any{"output": []any{}}},
		{"non-json text", http.StatusOK, assistantReply("sure, here you go")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var calls atomic.Int32
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls.Add(1)
				w.WriteHeader(tc.status)
				_ = json.NewEncoder(w).Encode(tc.payload)
			}))
			defer srv.Close()

			_, err := newTestClient(srv.URL, "secret").GenerateJSON(context.Background(), "s", "u", testSchema)
			if err == nil {
				t.Fatal("expected an error")
			}
			if n := calls.Load(); n != 1 {
				t.Errorf("expected exactly one request, got %d", n)
			}
		})
	}
}

func TestGenerateJSONHTTPErrorCarriesStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "slow down", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL, "secret").GenerateJSON(context.Background(), "s", "u", testSchema)
	var httpErr *HTTPError
	if !errors.As(err, &httpErr) || httpErr.StatusCode != http.StatusTooManyRequests {
		t.Fatalf("expected HTTPError 429, got %v", err)
	}
}

func TestGenerateJSONWithoutKey(t *testing.T) {
	c := newTestClient("http://127.0.0.1:1", "")
	if c.Available() {
		t.Fatal("client without key must not be available")
	}
	if _, err := c.GenerateJSON(context.Background(), "s", "u", testSchema); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}
