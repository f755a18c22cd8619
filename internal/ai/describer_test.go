package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDescribe_SendsPromptAndParsesAnswer(t *testing.T) {
	t.Parallel()

	var gotBody chatRequest
	var gotAuth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1/chat/completions", r.URL.Path)

		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": "A wonderful flat in Gulshan."}},
			},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL+"/v1", "secret-key", "mistralai/Mistral-7B-Instruct-v0.2", 5*time.Second)

	text, err := client.Describe(context.Background(), ListingFacts{
		Title:        "Sunny flat",
		PropertyType: "apartment",
		ListingType:  "rent",
		Price:        45000,
		City:         "Dhaka",
		Bedrooms:     3,
		Features:     FeatureFlags{Parking: true, Furnished: true},
	})
	require.NoError(t, err)
	require.Equal(t, "A wonderful flat in Gulshan.", text)

	require.Equal(t, "Bearer secret-key", gotAuth)
	require.Equal(t, "mistralai/Mistral-7B-Instruct-v0.2", gotBody.Model)
	require.Len(t, gotBody.Messages, 2)
	require.Equal(t, "system", gotBody.Messages[0].Role)

	prompt := gotBody.Messages[1].Content
	require.Contains(t, prompt, "Property Title: Sunny flat")
	require.Contains(t, prompt, "Listing Type: For rent")
	require.Contains(t, prompt, "Price: 45000 BDT")
	require.Contains(t, prompt, "- Ample parking space")
	require.Contains(t, prompt, "- Fully furnished")
	require.NotContains(t, prompt, "- Swimming pool")
}

func TestDescribe_MissingFieldsBecomeNA(t *testing.T) {
	t.Parallel()

	prompt := buildPrompt(ListingFacts{})

	require.Contains(t, prompt, "Property Title: N/A")
	require.Contains(t, prompt, "Price: N/A BDT")
	require.Contains(t, prompt, "Location: N/A, N/A, N/A")
	require.Contains(t, prompt, "Bedrooms: N/A")
	require.NotContains(t, prompt, "- Beautiful garden area")
}

func TestDescribe_EmptyChoices(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "k", "m", 5*time.Second)

	_, err := client.Describe(context.Background(), ListingFacts{})
	require.ErrorIs(t, err, ErrEmptyCompletion)
}

func TestDescribe_ProviderError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error":"rate limited"}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "k", "m", 5*time.Second)

	_, err := client.Describe(context.Background(), ListingFacts{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "429")
}
