package groq

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"

	"github.com/tour-planning-service/internal/config"
	"github.com/tour-planning-service/internal/domain/repository"
	"github.com/tour-planning-service/internal/pkg/errors"
	"go.uber.org/zap"
)

type client struct {
	httpClient  *http.Client
	baseURL     string
	apiKey      string
	model       string
	temperature float64
	maxTokens   int
	logger      *zap.Logger
}

// NewCompletionClient builds a chat-completion client for the Groq
// OpenAI-compatible endpoint.
func NewCompletionClient(cfg *config.AIConfig, logger *zap.Logger) repository.CompletionClient {
	return &client{
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: cfg.ConnectTimeout,
				}).DialContext,
			},
		},
		baseURL:     cfg.BaseURL,
		apiKey:      cfg.APIKey,
		model:       cfg.Model,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
		logger:      logger,
	}
}

func (c *client) IsConfigured() bool {
	return c.apiKey != ""
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
	Messages    []chatMessage `json:"messages"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// ChatCompletion sends one blocking completion request and returns the
// assistant's text. Callers must treat the text as untrusted.
func (c *client) ChatCompletion(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if !c.IsConfigured() {
		return "", errors.ErrAiNotConfigured
	}

	body, err := json.Marshal(chatCompletionRequest{
		Model:       c.model,
		Temperature: c.temperature,
		MaxTokens:   c.maxTokens,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode completion request: %w", err)
	}

	url := c.baseURL + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Completion request failed", zap.Error(err))
		return "", errors.ErrAiServiceError
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Error("Failed to read completion response", zap.Error(err))
		return "", errors.ErrAiServiceError
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("Completion service returned non-OK status",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", raw))
		return "", errors.ErrAiServiceError
	}

	var parsed chatCompletionResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		c.logger.Error("Failed to decode completion response", zap.Error(err))
		return "", errors.ErrAiServiceError
	}

	if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Content == "" {
		c.logger.Error("Completion response has no choices", zap.ByteString("body", raw))
		return "", errors.ErrAiServiceError
	}

	return parsed.Choices[0].Message.Content, nil
}
