package telemetry

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/KirkDiggler/s3-model/internal/repositories/objectmeta"
)

// Metrics holds the prometheus counters
type Metrics struct {
	UnrecognizedEnumValuesTotal *prometheus.CounterVec
	ServiceErrorsTotal          *prometheus.CounterVec
	ObjectMetaCacheTotal        *prometheus.CounterVec
}

var _ objectmeta.Recorder = (*Metrics)(nil)

// NewMetrics creates the counters and registers them on registry
func NewMetrics(registry prometheus.Registerer) *Metrics {
	m := &Metrics{
		UnrecognizedEnumValuesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "s3model_unrecognized_enum_values_total",
				Help: "Wire strings decoded to UnknownToSDKVersion",
			},
			[]string{"vocabulary"},
		),
		ServiceErrorsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "s3model_service_errors_total",
				Help: "Service error codes classified",
			},
			[]string{"code", "known"},
		),
		ObjectMetaCacheTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "s3model_objectmeta_cache_total",
				Help: "Object metadata snapshot lookups",
			},
			[]string{"backend", "result"},
		),
	}

	registry.MustRegister(
		m.UnrecognizedEnumValuesTotal,
		m.ServiceErrorsTotal,
		m.ObjectMetaCacheTotal,
	)

	return m
}

// UnrecognizedEnumValue counts a wire string the vocabulary did not know.
// The value itself is left out of the labels so cardinality stays bounded.
func (m *Metrics) UnrecognizedEnumValue(vocabulary string) {
	m.UnrecognizedEnumValuesTotal.WithLabelValues(vocabulary).Inc()
}

// ServiceError counts a classified code. Unknown codes share one label
// value.
func (m *Metrics) ServiceError(code string, known bool) {
	if !known {
		code = "other"
	}
	m.ServiceErrorsTotal.WithLabelValues(code, strconv.FormatBool(known)).Inc()
}

// CacheLookup implements objectmeta.Recorder
func (m *Metrics) CacheLookup(backend, result string) {
	m.ObjectMetaCacheTotal.WithLabelValues(backend, result).Inc()
}
