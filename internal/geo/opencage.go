package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Candidate — один результат внешнего геокодера.
type Candidate struct {
	Lat        float64
	Lng        float64
	Confidence int
	Formatted  string
}

// Provider — внешний геокодер. Реализация обязана вернуть либо список
// кандидатов (возможно пустой), либо ошибку транспорта/провайдера.
type Provider interface {
	Geocode(ctx context.Context, query string) ([]Candidate, error)
}

// OpenCageClient — клиент OpenCage Geocoding API.
type OpenCageClient struct {
	httpClient *http.Client
	endpoint   string
	apiKey     string
}

// NewOpenCageClient создаёт клиент с заданным таймаутом запроса.
func NewOpenCageClient(endpoint, apiKey string, timeout time.Duration) *OpenCageClient {
	return &OpenCageClient{
		httpClient: &http.Client{Timeout: timeout},
		endpoint:   endpoint,
		apiKey:     apiKey,
	}
}

// opencageResponse — релевантная часть ответа провайдера.
type opencageResponse struct {
	Results []struct {
		Geometry struct {
			Lat float64 `json:"lat"`
			Lng float64 `json:"lng"`
		} `json:"geometry"`
		Confidence int    `json:"confidence"`
		Formatted  string `json:"formatted"`
	} `json:"results"`
}

// Geocode выполняет прямое геокодирование с фильтром по стране.
func (c *OpenCageClient) Geocode(ctx context.Context, query string) ([]Candidate, error) {
	const op = "geo/opencage/Geocode"

	params := url.Values{}
	params.Set("q", query)
	params.Set("key", c.apiKey)
	params.Set("countrycode", "bd")
	params.Set("limit", "1")
	params.Set("no_annotations", "0")
	params.Set("abbrv", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("%s: build request: %w", op, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s: unexpected status %d", op, resp.StatusCode)
	}

	var body opencageResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%s: decode response: %w", op, err)
	}

	out := make([]Candidate, 0, len(body.Results))
	for _, r := range body.Results {
		out = append(out, Candidate{
			Lat:        r.Geometry.Lat,
			Lng:        r.Geometry.Lng,
			Confidence: r.Confidence,
			Formatted:  r.Formatted,
		})
	}

	return out, nil
}
