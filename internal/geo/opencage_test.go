package geo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// Тесты клиента OpenCage через httptest.
//
// Покрытие:
//  - полный набор параметров запроса;
//  - разбор результатов;
//  - не-200 статус и битый JSON как ошибки.

func TestOpenCageClient_Geocode_SendsExpectedParams(t *testing.T) {
	t.Parallel()

	var gotQuery map[string]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		gotQuery = map[string]string{
			"q":              q.Get("q"),
			"key":            q.Get("key"),
			"countrycode":    q.Get("countrycode"),
			"limit":          q.Get("limit"),
			"no_annotations": q.Get("no_annotations"),
			"abbrv":          q.Get("abbrv"),
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"results":[{"geometry":{"lat":23.75,"lng":90.39},"confidence":9,"formatted":"Dhanmondi, Dhaka, Bangladesh"}]}`))
	}))
	defer srv.Close()

	client := NewOpenCageClient(srv.URL, "test-key", 2*time.Second)

	candidates, err := client.Geocode(context.Background(), "House 5, Dhaka, Bangladesh")
	require.NoError(t, err)

	require.Equal(t, map[string]string{
		"q":              "House 5, Dhaka, Bangladesh",
		"key":            "test-key",
		"countrycode":    "bd",
		"limit":          "1",
		"no_annotations": "0",
		"abbrv":          "1",
	}, gotQuery)

	require.Len(t, candidates, 1)
	require.Equal(t, Candidate{
		Lat:        23.75,
		Lng:        90.39,
		Confidence: 9,
		Formatted:  "Dhanmondi, Dhaka, Bangladesh",
	}, candidates[0])
}

func TestOpenCageClient_Geocode_EmptyResults(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"results":[]}`))
	}))
	defer srv.Close()

	client := NewOpenCageClient(srv.URL, "k", time.Second)

	candidates, err := client.Geocode(context.Background(), "nowhere")
	require.NoError(t, err)
	require.Empty(t, candidates)
}

func TestOpenCageClient_Geocode_Non200_ReturnsError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
	}))
	defer srv.Close()

	client := NewOpenCageClient(srv.URL, "k", time.Second)

	_, err := client.Geocode(context.Background(), "q")
	require.Error(t, err)
}

func TestOpenCageClient_Geocode_BrokenJSON_ReturnsError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"results": [`))
	}))
	defer srv.Close()

	client := NewOpenCageClient(srv.URL, "k", time.Second)

	_, err := client.Geocode(context.Background(), "q")
	require.Error(t, err)
}

func TestOpenCageClient_Geocode_ContextCancelled(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	client := NewOpenCageClient(srv.URL, "k", 5*time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := client.Geocode(ctx, "q")
	require.Error(t, err)
}
