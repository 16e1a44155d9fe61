// Package ml_client is the HTTP client for the KoBERT classifier sidecar.
// The sidecar owns the model, tokenizer and device; this client only carries
// text over and probability vectors (plus per-token attention weights) back.
package ml_client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	retry "github.com/sethvargo/go-retry"

	"analyzer/internal/models"
)

// Client is a client for the classifier service API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// ClassifyRequest represents a single text classification request.
type ClassifyRequest struct {
	Text string `json:"text"`
}

// ClassifyResponse represents the classifier's raw output for one text.
type ClassifyResponse struct {
	Probabilities []float64 `json:"probabilities"`
}

// ImportanceResponse carries the sidecar's tokenization of a text together
// with the mean last-layer attention weight per token. Tokens are returned
// verbatim, including special tokens and subword markers.
type ImportanceResponse struct {
	Tokens  []string  `json:"tokens"`
	Weights []float64 `json:"weights"`
}

// TokenWeight pairs one token surface form with its importance score.
type TokenWeight struct {
	Token  string
	Weight float64
}

// HealthResponse represents the sidecar's health check response.
type HealthResponse struct {
	Status      string `json:"status"`
	ModelLoaded bool   `json:"model_loaded"`
	Device      string `json:"device"`
}

// NewClient creates a new classifier service client.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Classify returns the nine-label probability vector for the given text.
func (c *Client) Classify(ctx context.Context, text string) ([]float64, error) {
	var result ClassifyResponse
	if err := c.post(ctx, "/api/v1/classify", ClassifyRequest{Text: text}, &result); err != nil {
		return nil, err
	}
	if len(result.Probabilities) != models.NumRiskTypes {
		return nil, fmt.Errorf("ML service returned %d probabilities, want %d", len(result.Probabilities), models.NumRiskTypes)
	}
	return result.Probabilities, nil
}

// TokenImportance returns the sidecar's token sequence for the text, each
// token paired with its attention-derived importance score.
func (c *Client) TokenImportance(ctx context.Context, text string) ([]TokenWeight, error) {
	var result ImportanceResponse
	if err := c.post(ctx, "/api/v1/importance", ClassifyRequest{Text: text}, &result); err != nil {
		return nil, err
	}
	if len(result.Tokens) != len(result.Weights) {
		return nil, fmt.Errorf("ML service returned %d tokens but %d weights", len(result.Tokens), len(result.Weights))
	}
	tokenWeights := make([]TokenWeight, len(result.Tokens))
	for i, token := range result.Tokens {
		tokenWeights[i] = TokenWeight{Token: token, Weight: result.Weights[i]}
	}
	return tokenWeights, nil
}

// HealthCheck checks if the classifier service is healthy.
func (c *Client) HealthCheck(ctx context.Context) (*HealthResponse, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+"/api/v1/health", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("ML service returned status %d: %s", resp.StatusCode, string(body))
	}

	var result HealthResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &result, nil
}

// post sends a JSON request and decodes the JSON response. Transport-level
// failures are retried with Fibonacci backoff inside the caller's context
// budget; HTTP error statuses are not retried.
func (c *Client) post(ctx context.Context, path string, reqBody interface{}, out interface{}) error {
	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	backoff := retry.NewFibonacci(200 * time.Millisecond)
	return retry.Do(ctx, retry.WithMaxRetries(2, backoff), func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+path, bytes.NewBuffer(jsonData))
		if err != nil {
			return fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return retry.RetryableError(fmt.Errorf("failed to send request: %w", err))
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			body, _ := io.ReadAll(resp.Body)
			return fmt.Errorf("ML service returned status %d: %s", resp.StatusCode, string(body))
		}

		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
		return nil
	})
}
