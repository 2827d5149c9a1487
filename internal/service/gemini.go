package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	defaultGeminiModel    = "gemini-2.0-flash"
	defaultGeminiEndpoint = "https://generativelanguage.googleapis.com/v1beta"
	defaultAITimeout      = 30 * time.Second
	defaultMaxRetries     = 3
	defaultBackoff        = time.Second
)

// GeminiClient calls the Gemini generateContent REST API, retrying
// transport errors, 429 and 5xx answers with exponential backoff.
type GeminiClient struct {
	httpClient *http.Client
	apiKey     string
	endpoint   string
	model      string
	maxRetries int
	backoff    time.Duration
}

// geminiStatusError is a non-2xx answer from the API.
type geminiStatusError struct {
	StatusCode int
}

func (e *geminiStatusError) Error() string {
	return fmt.Sprintf("gemini returned status %d", e.StatusCode)
}

// retryable reports whether another attempt could succeed. Any other 4xx
// answer fails the same way on every attempt.
func retryable(err error) bool {
	var statusErr *geminiStatusError
	if !errors.As(err, &statusErr) {
		return true
	}
	return statusErr.StatusCode == http.StatusTooManyRequests || statusErr.StatusCode >= 500
}

type GeminiOption func(*GeminiClient)

func WithGeminiModel(model string) GeminiOption {
	return func(c *GeminiClient) {
		if model != "" {
			c.model = model
		}
	}
}

func WithGeminiHTTPClient(client *http.Client) GeminiOption {
	return func(c *GeminiClient) {
		if client != nil {
			c.httpClient = client
		}
	}
}

func WithGeminiEndpoint(endpoint string) GeminiOption {
	return func(c *GeminiClient) {
		if endpoint != "" {
			c.endpoint = strings.TrimRight(endpoint, "/")
		}
	}
}

func WithGeminiRetry(maxRetries int, backoff time.Duration) GeminiOption {
	return func(c *GeminiClient) {
		if maxRetries > 0 {
			c.maxRetries = maxRetries
		}
		if backoff > 0 {
			c.backoff = backoff
		}
	}
}

func NewGeminiClient(apiKey string, opts ...GeminiOption) *GeminiClient {
	c := &GeminiClient{
		httpClient: &http.Client{Timeout: defaultAITimeout},
		apiKey:     apiKey,
		endpoint:   defaultGeminiEndpoint,
		model:      defaultGeminiModel,
		maxRetries: defaultMaxRetries,
		backoff:    defaultBackoff,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type geminiPart struct {
	Text string `json:"text,omitempty"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiGenerationConfig struct {
	ResponseMimeType string `json:"responseMimeType,omitempty"`
}

type geminiRequest struct {
	SystemInstruction *geminiContent         `json:"systemInstruction,omitempty"`
	Contents          []geminiContent        `json:"contents"`
	GenerationConfig  geminiGenerationConfig `json:"generationConfig"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// Complete implements completer.
func (c *GeminiClient) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	payload := geminiRequest{
		Contents: []geminiContent{{Role: "user", Parts: []geminiPart{{Text: req.Prompt}}}},
	}
	if req.System != "" {
		payload.SystemInstruction = &geminiContent{Parts: []geminiPart{{Text: req.System}}}
	}
	if req.JSON {
		payload.GenerationConfig.ResponseMimeType = "application/json"
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("error marshaling gemini payload: %w", err)
	}
	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.endpoint, c.model, url.QueryEscape(c.apiKey))

	var lastErr error
	backoff := c.backoff
	for attempt := 0; attempt < c.maxRetries; attempt++ {
		text, err := c.do(ctx, endpoint, body)
		if err == nil {
			return text, nil
		}
		lastErr = err

		if attempt == c.maxRetries-1 || !retryable(err) {
			break
		}
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(backoff):
			backoff *= 2
		}
	}

	if lastErr == nil {
		lastErr = errors.New("unknown gemini failure")
	}
	return "", lastErr
}

func (c *GeminiClient) do(ctx context.Context, endpoint string, body []byte) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("error creating gemini request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &geminiStatusError{StatusCode: resp.StatusCode}
	}

	var apiResp geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return "", fmt.Errorf("error decoding gemini response: %w", err)
	}
	for _, candidate := range apiResp.Candidates {
		for _, part := range candidate.Content.Parts {
			if strings.TrimSpace(part.Text) != "" {
				return strings.TrimSpace(part.Text), nil
			}
		}
	}
	return "", errors.New("gemini response has no usable text")
}
