package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the domain-level collectors. HTTP-level collectors live
// in the prometheus handler next to its registry.
type Metrics struct {
	ChecksTotal        *prometheus.CounterVec
	CommonPasswordHits prometheus.Counter
	GeneratedTotal     prometheus.Counter
	GenerationRetries  prometheus.Counter
	PasswordEntropy    prometheus.Histogram
}

// New creates and registers all domain metrics with the given
// registerer. A nil registerer yields working but unregistered
// collectors, which keeps the collectors usable outside the API server.
func New(namespace string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		ChecksTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "checks_total",
			Help:      "Total number of password checks by resulting strength tier",
		}, []string{"tier"}),
		CommonPasswordHits: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "common_password_hits_total",
			Help:      "Total number of checked passwords found in the common-password list",
		}),
		GeneratedTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "generated_total",
			Help:      "Total number of generated passwords",
		}),
		GenerationRetries: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "generation_retries_total",
			Help:      "Total number of generation rebuilds after a failed strength screen",
		}),
		PasswordEntropy: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "password_entropy_bits",
			Help:      "Entropy estimate distribution of checked passwords",
			Buckets:   []float64{10, 20, 30, 40, 50, 65, 80, 100, 130, 160, 200},
		}),
	}
}
