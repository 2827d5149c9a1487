package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const (
	defaultDeepSeekURL   = "https://api.deepseek.com/v1/chat/completions"
	defaultDeepSeekModel = "deepseek-chat"
)

// Message represents a message in the chat
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatRequest represents a request to an OpenAI-compatible chat endpoint
type chatRequest struct {
	Model          string            `json:"model"`
	Messages       []Message         `json:"messages"`
	ResponseFormat map[string]string `json:"response_format,omitempty"`
	Temperature    float64           `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// DeepSeekClient talks to the DeepSeek chat completions API.
type DeepSeekClient struct {
	apiKey     string
	apiURL     string
	model      string
	httpClient *http.Client
}

func NewDeepSeekClient(apiKey, apiURL, model string, httpClient *http.Client) *DeepSeekClient {
	if apiURL == "" {
		apiURL = defaultDeepSeekURL
	}
	if model == "" {
		model = defaultDeepSeekModel
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultAITimeout}
	}
	return &DeepSeekClient{apiKey: apiKey, apiURL: apiURL, model: model, httpClient: httpClient}
}

// Complete sends one system and one user message and returns the reply text.
func (c *DeepSeekClient) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	body := chatRequest{
		Model: c.model,
		Messages: []Message{
			{Role: "system", Content: req.System},
			{Role: "user", Content: req.Prompt},
		},
		Temperature: 0.7,
	}
	if req.JSON {
		body.ResponseFormat = map[string]string{"type": "json_object"}
	}

	jsonData, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("error marshaling request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("error creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("error sending request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	var result chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("error decoding response: %w", err)
	}
	if len(result.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}
	return result.Choices[0].Message.Content, nil
}
