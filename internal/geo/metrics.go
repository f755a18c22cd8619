package geo

import "github.com/prometheus/client_golang/prometheus"

// Метки исхода геокодирования.
const (
	OutcomePrecise          = "precise"
	OutcomeApproximate      = "approximate"
	OutcomeDistrictFallback = "district_fallback"
	OutcomeFailed           = "failed"
)

// Metrics — счётчики работы резолвера.
type Metrics struct {
	// Resolutions — исходы геокодирования по меткам outcome.
	Resolutions *prometheus.CounterVec
	// OutOfBounds — подмены точки провайдера центроидом из-за выхода
	// за национальную рамку.
	OutOfBounds prometheus.Counter
}

func newMetrics() *Metrics {
	return &Metrics{
		Resolutions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "banglaghar",
			Name:      "geocode_resolutions_total",
			Help:      "Geocode resolutions by outcome.",
		}, []string{"outcome"}),
		OutOfBounds: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "banglaghar",
			Name:      "geocode_out_of_bounds_total",
			Help:      "Provider points discarded for falling outside the national bounding box.",
		}),
	}
}

// NewMetrics создаёт и регистрирует счётчики в реестре Prometheus
// по умолчанию.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(m.Resolutions, m.OutOfBounds)

	return m
}

// NewMetricsForTesting создаёт счётчики без регистрации — для тестов,
// где реестр по умолчанию общий между пакетами.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}
