package geo

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// Тесты резолвера с фейковым провайдером.
//
// Покрытие:
//  - отображение confidence -> accuracy (тотальная чистая функция);
//  - успешное геокодирование точки внутри рамки;
//  - подмена точки вне рамки центроидом района + принудительный district-level;
//  - пустой ответ: фолбэк на центроид района либо nil без района;
//  - ошибка провайдера: nil без повторов;
//  - formatted: строка провайдера либо нормализованный запрос.

type fakeProvider struct {
	candidates []Candidate
	err        error
	calls      int
	lastQuery  string
}

func (f *fakeProvider) Geocode(_ context.Context, query string) ([]Candidate, error) {
	f.calls++
	f.lastQuery = query

	return f.candidates, f.err
}

func newTestResolver(p Provider) *Resolver {
	return NewResolver(p, NewMetricsForTesting())
}

func TestAccuracyFromConfidence(t *testing.T) {
	t.Parallel()

	tests := []struct {
		confidence int
		want       Accuracy
	}{
		{10, AccuracyPrecise},
		{9, AccuracyPrecise},
		{8, AccuracyPrecise},
		{7, AccuracyApproximate},
		{6, AccuracyApproximate},
		{5, AccuracyApproximate},
		{4, AccuracyDistrict},
		{1, AccuracyDistrict},
		{0, AccuracyDistrict},
	}

	for _, tc := range tests {
		require.Equal(t, tc.want, accuracyFromConfidence(tc.confidence),
			"confidence=%d", tc.confidence)
	}
}

func TestResolve_HighConfidenceInsideBounds_Precise(t *testing.T) {
	t.Parallel()

	provider := &fakeProvider{candidates: []Candidate{
		{Lat: 23.7465, Lng: 90.3760, Confidence: 9, Formatted: "Dhanmondi, Dhaka, Bangladesh"},
	}}

	res := newTestResolver(provider).Resolve(context.Background(), Address{
		AddressLine1: "House 5",
		CityTown:     "Dhanmondi",
		District:     "Dhaka",
		PostalCode:   "1205",
	})

	require.NotNil(t, res)
	require.Equal(t, AccuracyPrecise, res.Accuracy)
	require.Equal(t, 23.7465, res.Lat)
	require.Equal(t, 90.3760, res.Lng)
	require.Equal(t, "House 5, Dhanmondi, Dhaka, 1205, Bangladesh", res.Query)
	require.Equal(t, "Dhanmondi, Dhaka, Bangladesh", res.Formatted)
	require.Equal(t, 1, provider.calls)
	require.Equal(t, res.Query, provider.lastQuery)
}

func TestResolve_MidConfidence_Approximate(t *testing.T) {
	t.Parallel()

	provider := &fakeProvider{candidates: []Candidate{
		{Lat: 24.89, Lng: 91.87, Confidence: 6, Formatted: "Sylhet, Bangladesh"},
	}}

	res := newTestResolver(provider).Resolve(context.Background(), Address{District: "Sylhet"})

	require.NotNil(t, res)
	require.Equal(t, AccuracyApproximate, res.Accuracy)
}

func TestResolve_LowConfidence_DistrictLevelKeepsProviderPoint(t *testing.T) {
	t.Parallel()

	provider := &fakeProvider{candidates: []Candidate{
		{Lat: 23.5, Lng: 90.5, Confidence: 3},
	}}

	res := newTestResolver(provider).Resolve(context.Background(), Address{District: "Dhaka"})

	require.NotNil(t, res)
	require.Equal(t, AccuracyDistrict, res.Accuracy)
	// Точка провайдера внутри рамки — остаётся, понижается только точность.
	require.Equal(t, 23.5, res.Lat)
	require.Equal(t, 90.5, res.Lng)
}

func TestResolve_OutOfBounds_SubstitutesDistrictCentroid(t *testing.T) {
	t.Parallel()

	provider := &fakeProvider{candidates: []Candidate{
		{Lat: 0, Lng: 0, Confidence: 9, Formatted: "Null Island"},
	}}

	res := newTestResolver(provider).Resolve(context.Background(), Address{
		AddressLine1: "House 5",
		CityTown:     "Dhanmondi",
		District:     "Dhaka",
		PostalCode:   "1205",
	})

	require.NotNil(t, res)
	require.Equal(t, AccuracyDistrict, res.Accuracy)
	require.Equal(t, dhakaCentroid.Lat, res.Lat)
	require.Equal(t, dhakaCentroid.Lng, res.Lng)
}

func TestResolve_NoResults_DistrictFallback(t *testing.T) {
	t.Parallel()

	provider := &fakeProvider{}

	res := newTestResolver(provider).Resolve(context.Background(), Address{
		AddressLine1: "Unknown place",
		District:     "Khulna",
	})

	require.NotNil(t, res)
	require.Equal(t, AccuracyDistrict, res.Accuracy)
	require.Equal(t, Point{22.8456, 89.5403}, Point{res.Lat, res.Lng})
	// Провайдер ничего не вернул — formatted равен нормализованному запросу.
	require.Equal(t, res.Query, res.Formatted)
}

func TestResolve_NoResultsAndNoDistrict_ReturnsNil(t *testing.T) {
	t.Parallel()

	provider := &fakeProvider{}

	res := newTestResolver(provider).Resolve(context.Background(), Address{AddressLine1: "Somewhere"})
	require.Nil(t, res)
}

func TestResolve_ProviderError_ReturnsNilWithoutRetry(t *testing.T) {
	t.Parallel()

	provider := &fakeProvider{err: errors.New("connection refused")}

	res := newTestResolver(provider).Resolve(context.Background(), Address{District: "Dhaka"})

	require.Nil(t, res)
	require.Equal(t, 1, provider.calls)
}

func TestResolve_EmptyFormatted_FallsBackToQuery(t *testing.T) {
	t.Parallel()

	provider := &fakeProvider{candidates: []Candidate{
		{Lat: 23.8, Lng: 90.4, Confidence: 8},
	}}

	res := newTestResolver(provider).Resolve(context.Background(), Address{District: "Dhaka"})

	require.NotNil(t, res)
	require.Equal(t, "Dhaka, Bangladesh", res.Formatted)
}

// TestResolve_BoundsProperty — свойство: любая координата из резолвера
// лежит внутри рамки либо совпадает с центроидом района при district-level.
func TestResolve_BoundsProperty(t *testing.T) {
	t.Parallel()

	providers := []*fakeProvider{
		{candidates: []Candidate{{Lat: 23.7, Lng: 90.4, Confidence: 10}}},
		{candidates: []Candidate{{Lat: 51.5, Lng: -0.12, Confidence: 10}}},
		{candidates: []Candidate{{Lat: 22.3, Lng: 91.8, Confidence: 2}}},
		{},
	}

	for _, p := range providers {
		res := newTestResolver(p).Resolve(context.Background(), Address{District: "Chattogram"})
		require.NotNil(t, res)

		if !InBangladesh(res.Lat, res.Lng) {
			t.Fatalf("point outside bounds: %v", res)
		}
		if res.Accuracy == AccuracyDistrict && len(p.candidates) == 0 {
			require.Equal(t, DistrictCentroid("Chattogram"), Point{res.Lat, res.Lng})
		}
	}
}
