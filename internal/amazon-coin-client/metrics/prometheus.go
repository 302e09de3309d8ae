package metrics

import (
	"time"

	"github.com/cockroachdb/errors"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "amazoncoin"

type PrometheusRecorder struct {
	purchases     *prometheus.CounterVec
	verifications *prometheus.CounterVec
	histogram     *prometheus.HistogramVec
}

// NewPrometheusRecorder registers the collectors on reg. A nil reg uses the
// default registerer.
func NewPrometheusRecorder(reg prometheus.Registerer) (*PrometheusRecorder, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	purchases := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "purchases_total",
			Help:      "Purchase attempts by final state",
		},
		[]string{LabelState, LabelNetwork},
	)

	verifications := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "verifications_total",
			Help:      "Deployment verifications by result",
		},
		[]string{LabelResult, LabelNetwork},
	)

	histogram := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "latency_seconds",
			Help:      "Operation latency",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"operation", LabelNetwork},
	)

	for _, c := range []prometheus.Collector{purchases, verifications, histogram} {
		if err := reg.Register(c); err != nil {
			return nil, errors.Wrap(err, "register metrics")
		}
	}

	return &PrometheusRecorder{
		purchases:     purchases,
		verifications: verifications,
		histogram:     histogram,
	}, nil
}

// IncCounter increments the named family. Unknown names are ignored.
func (p *PrometheusRecorder) IncCounter(name string, labels map[string]string) {
	switch name {
	case Purchases:
		p.purchases.With(prometheus.Labels{
			LabelState:   labels[LabelState],
			LabelNetwork: labels[LabelNetwork],
		}).Inc()
	case Verifications:
		p.verifications.With(prometheus.Labels{
			LabelResult:  labels[LabelResult],
			LabelNetwork: labels[LabelNetwork],
		}).Inc()
	}
}

func (p *PrometheusRecorder) ObserveLatency(name string, d time.Duration, labels map[string]string) {
	p.histogram.With(prometheus.Labels{
		"operation":  name,
		LabelNetwork: labels[LabelNetwork],
	}).Observe(d.Seconds())
}
