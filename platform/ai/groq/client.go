// Package groq provides a minimal client for the Groq OpenAI-compatible
// chat completions API. This is part of the platform layer and contains
// no business logic.
package groq

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Config for the Groq API.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
}

// Client talks to Groq's OpenAI-compatible chat completions endpoint.
type Client struct {
	config Config
	client *http.Client
}

// NewClient creates a Groq client. BaseURL and Model fall back to defaults.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.groq.com/openai/v1"
	}
	if cfg.Model == "" {
		cfg.Model = "llama-3.3-70b-versatile"
	}
	return &Client{
		config: cfg,
		client: &http.Client{},
	}
}

// Name returns the configured model name.
func (c *Client) Name() string {
	return c.config.Model
}

type openAIMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openAIRequest struct {
	Model       string          `json:"model"`
	Messages    []openAIMessage `json:"messages"`
	Temperature float64         `json:"temperature"`
	MaxTokens   int             `json:"max_tokens,omitempty"`
}

type openAIResponse struct {
	Choices []struct {
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error interface{} `json:"error"`
}

// ChatCompletion sends a single system+user exchange and returns the
// assistant's reply text. The caller controls timeout through ctx.
func (c *Client) ChatCompletion(ctx context.Context, system, user string) (string, error) {
	if c.config.APIKey == "" {
		return "", fmt.Errorf("groq api key is not configured")
	}

	payload := openAIRequest{
		Model: c.config.Model,
		Messages: []openAIMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Temperature: 0.7,
		MaxTokens:   8192,
	}

	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to encode groq request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.BaseURL+"/chat/completions", bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.config.APIKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("groq api error: status %d: %s", resp.StatusCode, string(body))
	}

	var result openAIResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode groq response: %v", err)
	}
	if result.Error != nil {
		return "", fmt.Errorf("groq api error: %v", result.Error)
	}
	if len(result.Choices) == 0 {
		return "", fmt.Errorf("groq api error: empty choices")
	}

	return result.Choices[0].Message.Content, nil
}
