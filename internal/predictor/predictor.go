// Package predictor calls the external mastery-probability service. The
// service hosts a trained model that estimates how likely a user is to
// answer a node correctly; its output is one signal in candidate scoring.
package predictor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"
)

const (
	defaultTimeout = 3 * time.Second
	envURL         = "TUTORLOOP_PREDICTOR_URL"
)

// Client queries the mastery-probability service over HTTP.
type Client struct {
	baseURL string
	http    *http.Client
	log     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client. Used in tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithLogger sets the logger.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) { c.log = log }
}

// New creates a predictor client for the given base URL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.log == nil {
		c.log = slog.Default()
	}
	return c
}

// FromEnv creates a client from TUTORLOOP_PREDICTOR_URL. Returns nil when
// the variable is unset, meaning no predictor is configured.
func FromEnv(opts ...Option) *Client {
	url := os.Getenv(envURL)
	if url == "" {
		return nil
	}
	return New(url, opts...)
}

type probabilityRequest struct {
	UserID      string `json:"user_id"`
	KnowledgeID string `json:"knowledge_id"`
}

type probabilityResponse struct {
	Probability float64 `json:"probability"`
}

// Probability returns the predicted chance, in [0, 1], that the user
// answers the given node correctly. Any transport, status, or decoding
// failure returns 0 along with the error; callers treat 0 as a neutral
// signal rather than aborting.
func (c *Client) Probability(ctx context.Context, userID, nodeID string) (float64, error) {
	body, err := json.Marshal(probabilityRequest{
		UserID:      userID,
		KnowledgeID: nodeID,
	})
	if err != nil {
		return 0, fmt.Errorf("marshal predictor request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/predict", bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("build predictor request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("predictor request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return 0, fmt.Errorf("predictor returned status %d", resp.StatusCode)
	}

	var out probabilityResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return 0, fmt.Errorf("decode predictor response: %w", err)
	}

	if out.Probability < 0 || out.Probability > 1 {
		return 0, fmt.Errorf("predictor probability %f out of range", out.Probability)
	}

	return out.Probability, nil
}
