// Package assistant calls the external briefing-assistant service, which
// suggests a project category and checklist items from a free-text
// description. Suggestion failures are never fatal: callers treat any error
// as "no suggestions available" and leave the form untouched.
package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// MinDescriptionLength is the shortest description worth analyzing. Callers
// enforce it before calling Suggest.
const MinDescriptionLength = 10

// Suggestions is the assistant's response.
type Suggestions struct {
	ProjectTypes     []string `json:"suggestedProjectTypes"`
	ChecklistOptions []string `json:"suggestedChecklistOptions"`
}

type suggestRequest struct {
	ProjectDescription string `json:"projectDescription"`
	ExtraNotes         string `json:"extraNotes"`
}

// Client talks to the assistant endpoint.
type Client struct {
	endpoint string
	apiKey   string
	httpc    *http.Client
}

// NewClient returns a Client for the given endpoint. apiKey may be empty for
// unauthenticated deployments.
func NewClient(endpoint, apiKey string) *Client {
	return &Client{
		endpoint: endpoint,
		apiKey:   apiKey,
		httpc:    &http.Client{Timeout: 30 * time.Second},
	}
}

// Suggest requests field suggestions for the given description and notes.
func (c *Client) Suggest(ctx context.Context, description, extraNotes string) (Suggestions, error) {
	body, err := json.Marshal(suggestRequest{
		ProjectDescription: description,
		ExtraNotes:         extraNotes,
	})
	if err != nil {
		return Suggestions{}, fmt.Errorf("assistant: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewBuffer(body))
	if err != nil {
		return Suggestions{}, fmt.Errorf("assistant: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return Suggestions{}, fmt.Errorf("assistant: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return Suggestions{}, fmt.Errorf("assistant: status %d", resp.StatusCode)
	}

	var out Suggestions
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return Suggestions{}, fmt.Errorf("assistant: decode response: %w", err)
	}
	return out, nil
}
