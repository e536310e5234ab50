package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client calls an OpenAI-compatible chat completion endpoint. It is
// deliberately provider-agnostic: the response is decoded against a
// small closed set of known shapes in a fixed priority order, so Groq,
// OpenAI, Anthropic and Ollama style payloads all work. There is no
// retry policy; a failure surfaces immediately to the caller.
type Client struct {
	url         string
	apiKey      string
	model       string
	temperature float64
	maxTokens   int
	client      *http.Client
}

// Config configures the completion client.
type Config struct {
	URL         string
	APIKey      string
	Model       string
	Timeout     time.Duration
	Temperature float64
	MaxTokens   int
}

// NewClient creates a completion client. An empty APIKey is allowed for
// local endpoints; the Authorization header is then omitted.
func NewClient(cfg Config) *Client {
	t := cfg.Timeout
	if t == 0 {
		t = 30 * time.Second
	}
	temp := cfg.Temperature
	if temp == 0 {
		temp = 0.3
	}
	maxTok := cfg.MaxTokens
	if maxTok == 0 {
		maxTok = 500
	}
	return &Client{
		url:         cfg.URL,
		apiKey:      cfg.APIKey,
		model:       cfg.Model,
		temperature: temp,
		maxTokens:   maxTok,
		client:      &http.Client{Timeout: t},
	}
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionRequest struct {
	Model       string    `json:"model"`
	Messages    []message `json:"messages"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens"`
}

// Complete sends the prompt and returns the answer text.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	body := completionRequest{
		Model:       c.model,
		Messages:    []message{{Role: "user", Content: prompt}},
		Temperature: c.temperature,
		MaxTokens:   c.maxTokens,
	}
	data, err := json.Marshal(body)
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return extractAnswer(payload)
}

// extractAnswer tries the known response shapes in priority order:
// choices[0].message.content, then content (string or list of parts),
// then response, then message.content. Valid JSON matching none of them
// falls through to the raw payload as text.
func extractAnswer(payload []byte) (string, error) {
	var shape struct {
		Choices  json.RawMessage `json:"choices"`
		Content  json.RawMessage `json:"content"`
		Response json.RawMessage `json:"response"`
		Message  json.RawMessage `json:"message"`
	}
	if err := json.Unmarshal(payload, &shape); err != nil {
		return "", fmt.Errorf("non-JSON response: %w", err)
	}

	if shape.Choices != nil {
		var choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		}
		if err := json.Unmarshal(shape.Choices, &choices); err == nil && len(choices) > 0 {
			return choices[0].Message.Content, nil
		}
	}
	if shape.Content != nil {
		var s string
		if err := json.Unmarshal(shape.Content, &s); err == nil {
			return s, nil
		}
		var parts []struct {
			Text string `json:"text"`
		}
		if err := json.Unmarshal(shape.Content, &parts); err == nil && len(parts) > 0 && parts[0].Text != "" {
			return parts[0].Text, nil
		}
		return string(payload), nil
	}
	if shape.Response != nil {
		var s string
		if err := json.Unmarshal(shape.Response, &s); err == nil {
			return s, nil
		}
	}
	if shape.Message != nil {
		var msg struct {
			Content string `json:"content"`
		}
		if err := json.Unmarshal(shape.Message, &msg); err == nil && msg.Content != "" {
			return msg.Content, nil
		}
		return string(payload), nil
	}
	return string(payload), nil
}
