// Package llm talks to an OpenAI-compatible Responses API.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/blanklearn/marketplace-backend/internal/config"
	"github.com/rs/zerolog"
)

// ErrUnavailable is returned by every call when no API key is configured.
var ErrUnavailable = errors.New("text generation service not configured")

// Client issues schema-bound generation requests. Each call is a single
// HTTP round trip; failures are returned to the caller as-is.
type Client struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
	log        zerolog.Logger
}

// NewClient builds a client from configuration. A client without an API key
// is valid but reports ErrUnavailable.
func NewClient(cfg *config.Config, log zerolog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.LLMBaseURL, "/"),
		apiKey:     strings.TrimSpace(cfg.LLMAPIKey),
		model:      cfg.LLMModel,
		httpClient: &http.Client{Timeout: cfg.LLMTimeout},
		log:        log.With().Str("component", "llm").Logger(),
	}
}

// Available reports whether the client has credentials.
func (c *Client) Available() bool {
	return c.apiKey != ""
}

// Schema names a JSON schema for structured output.
type Schema struct {
	Name        string
	Description string
	Definition  map[string]any
}

// HTTPError is a non-2xx answer from the service.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("llm http %d: %s", e.StatusCode, e.Body)
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responsesRequest struct {
	Model string    `json:"model"`
	Input []message `json:"input"`
	Text  struct {
		Format map[string]any `json:"format,omitempty"`
	} `json:"text"`
	Temperature float64 `json:"temperature,omitempty"`
}

type responsesResponse struct {
	Output []struct {
		Type    string `json:"type"`
		Role    string `json:"role,omitempty"`
		Content []struct {
			Type    string `json:"type"`
			Text    string `json:"text,omitempty"`
			Refusal string `json:"refusal,omitempty"`
		} `json:"content,omitempty"`
	} `json:"output"`
	Refusal string `json:"refusal,omitempty"`
}

// outputText joins the assistant's output_text parts and returns any refusal.
func outputText(resp responsesResponse) (string, string) {
	var out strings.Builder
	refusal := resp.Refusal
	for _, item := range resp.Output {
		if item.Type != "message" || item.Role != "assistant" {
			continue
		}
		for _, part := range item.Content {
			switch part.Type {
			case "output_text":
				out.WriteString(part.Text)
			case "refusal":
				if refusal == "" {
					refusal = part.Refusal
				}
			}
		}
	}
	return out.String(), refusal
}

// GenerateJSON asks the model for a JSON object conforming to schema and
// returns it decoded. Schema conformance is not checked here.
func (c *Client) GenerateJSON(ctx context.Context, system, user string, schema *Schema) (map[string]any, error) {
	if !c.Available() {
		return nil, ErrUnavailable
	}
	if schema == nil || schema.Name == "" || schema.Definition == nil {
		return nil, errors.New("schema name and definition are required")
	}

	req := responsesRequest{
		Model: c.model,
		Input: []message{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Temperature: 0.2,
	}
	req.Text.Format = map[string]any{
		"type":   "json_schema",
		"name":   schema.Name,
		"schema": schema.Definition,
		"strict": true,
	}
	if schema.Description != "" {
		req.Text.Format["description"] = schema.Description
	}

	start := time.Now()
	var resp responsesResponse
	if err := c.post(ctx, "/v1/responses", req, &resp); err != nil {
		return nil, err
	}

	text, refusal := outputText(resp)
	if refusal != "" {
		return nil, fmt.Errorf("model refused: %s", refusal)
	}
	if strings.TrimSpace(text) == "" {
		return nil, errors.New("no output_text in response")
	}

	var obj map[string]any
	if err := json.Unmarshal([]byte(text), &obj); err != nil {
		return nil, fmt.Errorf("decode model JSON: %w", err)
	}

	c.log.Debug().
		Str("schema", schema.Name).
		Dur("elapsed", time.Since(start)).
		Msg("Generation completed")
	return obj, nil
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &HTTPError{StatusCode: resp.StatusCode, Body: string(raw)}
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
