package geo

import (
	"context"
	"log/slog"

	"github.com/ruff27/banglaghar/pkg/log"
)

// Resolver превращает адрес в координату с многослойным фолбэком.
// Контракт: Resolve никогда не возвращает ошибку — худший исход nil,
// означающий «автоматическое геокодирование недоступно». Решение о
// координате по умолчанию принимает вызывающая сторона.
type Resolver struct {
	provider Provider
	metrics  *Metrics
}

// NewResolver создаёт резолвер поверх провайдера.
func NewResolver(provider Provider, metrics *Metrics) *Resolver {
	return &Resolver{provider: provider, metrics: metrics}
}

// accuracyFromConfidence — отображение confidence (0..10) в уровень
// точности: >=8 precise, 5..7 approximate, <5 district-level.
func accuracyFromConfidence(confidence int) Accuracy {
	switch {
	case confidence >= 8:
		return AccuracyPrecise
	case confidence >= 5:
		return AccuracyApproximate
	default:
		return AccuracyDistrict
	}
}

// Resolve выполняет геокодирование адреса.
//
// Слои фолбэка:
//  1. ошибка провайдера (сеть, авторизация, битый ответ) — лог и nil,
//     без повторов: создание объявления не должно блокироваться
//     недоступностью картографического сервиса;
//  2. пустой список результатов — центроид района с точностью
//     district-level; без района — nil;
//  3. точка вне национальной рамки — подмена центроидом района и
//     принудительный district-level вне зависимости от confidence.
func (r *Resolver) Resolve(ctx context.Context, addr Address) *Result {
	const op = "geo/resolver/Resolve"

	lg := log.From(ctx)
	query := BuildQuery(addr)

	candidates, err := r.provider.Geocode(ctx, query)
	if err != nil {
		lg.Warn("geocode_failed",
			slog.String("op", op),
			slog.String("query", query),
			slog.String("err", err.Error()),
		)
		r.metrics.Resolutions.WithLabelValues(OutcomeFailed).Inc()

		return nil
	}

	if len(candidates) == 0 {
		if addr.District == "" {
			lg.Warn("geocode_no_results",
				slog.String("op", op),
				slog.String("query", query),
			)
			r.metrics.Resolutions.WithLabelValues(OutcomeFailed).Inc()

			return nil
		}

		centroid := DistrictCentroid(addr.District)
		r.metrics.Resolutions.WithLabelValues(OutcomeDistrictFallback).Inc()

		return &Result{
			Lat:       centroid.Lat,
			Lng:       centroid.Lng,
			Accuracy:  AccuracyDistrict,
			Query:     query,
			Formatted: query,
		}
	}

	best := candidates[0]
	accuracy := accuracyFromConfidence(best.Confidence)
	lat, lng := best.Lat, best.Lng

	if !InBangladesh(lat, lng) {
		// Известный режим отказа провайдера на неоднозначных запросах:
		// точка за пределами страны. Пин ставим в центроид района.
		lg.Warn("geocode_out_of_bounds",
			slog.String("op", op),
			slog.String("query", query),
			slog.Float64("lat", lat),
			slog.Float64("lng", lng),
		)

		centroid := DistrictCentroid(addr.District)
		lat, lng = centroid.Lat, centroid.Lng
		accuracy = AccuracyDistrict

		r.metrics.OutOfBounds.Inc()
		r.metrics.Resolutions.WithLabelValues(OutcomeDistrictFallback).Inc()
	} else {
		switch accuracy {
		case AccuracyPrecise:
			r.metrics.Resolutions.WithLabelValues(OutcomePrecise).Inc()
		case AccuracyApproximate:
			r.metrics.Resolutions.WithLabelValues(OutcomeApproximate).Inc()
		default:
			r.metrics.Resolutions.WithLabelValues(OutcomeDistrictFallback).Inc()
		}
	}

	formatted := best.Formatted
	if formatted == "" {
		formatted = query
	}

	return &Result{
		Lat:       lat,
		Lng:       lng,
		Accuracy:  accuracy,
		Query:     query,
		Formatted: formatted,
	}
}
