// Package ai генерирует маркетинговые описания объявлений через
// OpenAI-совместимый chat-completions API.
package ai

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
)

// ErrEmptyCompletion — провайдер вернул ответ без вариантов.
var ErrEmptyCompletion = errors.New("empty completion")

const systemPrompt = "You are a professional realtor crafting high-quality property descriptions."

// ListingFacts — исходные данные объявления для генерации описания.
// Поля приходят от клиента до сохранения объявления, поэтому все
// опциональны: пропуски подставляются как "N/A".
type ListingFacts struct {
	Title        string  `json:"title"`
	PropertyType string  `json:"propertyType"`
	ListingType  string  `json:"listingType"`
	Price        float64 `json:"price"`
	Address      string  `json:"address"`
	City         string  `json:"city"`
	State        string  `json:"state"`
	Area         float64 `json:"area"`
	Bedrooms     int     `json:"bedrooms"`
	Bathrooms    int     `json:"bathrooms"`

	Features FeatureFlags `json:"features"`
}

// FeatureFlags — флаги удобств, попадающие в список Key Features.
type FeatureFlags struct {
	Parking         bool `json:"parking"`
	Garden          bool `json:"garden"`
	AirConditioning bool `json:"airConditioning"`
	Furnished       bool `json:"furnished"`
	Pool            bool `json:"pool"`
}

// Describer — контракт генерации описаний для сервисного слоя.
type Describer interface {
	Describe(ctx context.Context, facts ListingFacts) (string, error)
}

// Client — клиент OpenAI-совместимого провайдера.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
}

// NewClient создаёт клиент провайдера. baseURL указывает на корень
// API (до "/chat/completions").
func NewClient(baseURL, apiKey, model string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		model:      model,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Describe строит промпт по фактам объявления и возвращает текст
// описания из первого варианта ответа.
func (c *Client) Describe(ctx context.Context, facts ListingFacts) (string, error) {
	const op = "ai/Describe"

	body, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: buildPrompt(facts)},
		},
	})
	if err != nil {
		return "", fmt.Errorf("%s: marshal: %w", op, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%s: build request: %w", op, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("%s: unexpected status %d: %s", op, resp.StatusCode, snippet)
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("%s: decode: %w", op, err)
	}

	if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("%s: %w", op, ErrEmptyCompletion)
	}

	return parsed.Choices[0].Message.Content, nil
}

var _ Describer = (*Client)(nil)
