// Package metrics exposes Lin–Kernighan progress as Prometheus metrics.
//
// A Collector owns one set of metric vectors labelled by instance name; For
// binds it to one instance and returns an lk.Recorder. The CLI uses the
// package-level Default collector registered on Registry and dumps it to a
// textfile when a run ends.
package metrics

import (
	"errors"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/katalvlaran/linkern/lk"
	"github.com/katalvlaran/linkern/tour"
)

const namespace = "linkern"

// Rejection reasons used as the "reason" label.
const (
	ReasonGainMismatch = "gain_mismatch"
	ReasonInfeasible   = "infeasible"
	ReasonInvalidTour  = "invalid_tour"
	ReasonOther        = "other"
)

var (
	// Registry is the dedicated Prometheus registry for the linkern command.
	Registry = prometheus.NewRegistry()
	// Default is the collector registered on Registry by RegisterDefault.
	Default = NewCollector()

	regOnce sync.Once
)

// RegisterDefault registers Default and the Go/process collectors on Registry.
func RegisterDefault() {
	regOnce.Do(func() {
		Registry.MustRegister(Default.collectors()...)
		Registry.MustRegister(collectors.NewGoCollector())
		Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	})
}

// Collector holds the metric vectors shared by every instance of a run.
type Collector struct {
	scans     *prometheus.CounterVec
	passes    *prometheus.CounterVec
	exchanges *prometheus.CounterVec
	rejected  *prometheus.CounterVec
	gain      *prometheus.HistogramVec
	depth     *prometheus.HistogramVec
	length    *prometheus.GaugeVec
}

// NewCollector builds an unregistered Collector.
func NewCollector() *Collector {
	return &Collector{
		scans: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Name: "scans_total", Help: "Full scans over all start positions."},
			[]string{"instance"},
		),
		passes: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Name: "improving_scans_total", Help: "Scans that shortened the tour."},
			[]string{"instance"},
		),
		exchanges: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Name: "exchanges_total", Help: "Committed edge exchanges."},
			[]string{"instance"},
		),
		rejected: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Name: "exchanges_rejected_total", Help: "Proposed exchanges that failed validation, by reason."},
			[]string{"instance", "reason"},
		),
		gain: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{Namespace: namespace, Name: "exchange_gain", Help: "Length decrease of committed exchanges.", Buckets: prometheus.ExponentialBuckets(1, 4, 10)},
			[]string{"instance"},
		),
		depth: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{Namespace: namespace, Name: "exchange_depth", Help: "Edges replaced by committed exchanges.", Buckets: []float64{2, 3, 4, 6, 8, 12, 16, 32, 64}},
			[]string{"instance"},
		),
		length: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{Namespace: namespace, Name: "tour_length", Help: "Tour length after the latest scan."},
			[]string{"instance"},
		),
	}
}

func (c *Collector) collectors() []prometheus.Collector {
	return []prometheus.Collector{c.scans, c.passes, c.exchanges, c.rejected, c.gain, c.depth, c.length}
}

// Register adds every vector of c to reg.
func (c *Collector) Register(reg prometheus.Registerer) error {
	var errs []error
	for _, col := range c.collectors() {
		if err := reg.Register(col); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// For returns a recorder that reports under the given instance label.
func (c *Collector) For(instance string) lk.Recorder {
	return &recorder{
		scans:     c.scans.WithLabelValues(instance),
		passes:    c.passes.WithLabelValues(instance),
		exchanges: c.exchanges.WithLabelValues(instance),
		rejected:  c.rejected.MustCurryWith(prometheus.Labels{"instance": instance}),
		gain:      c.gain.WithLabelValues(instance),
		depth:     c.depth.WithLabelValues(instance),
		length:    c.length.WithLabelValues(instance),
	}
}

type recorder struct {
	scans     prometheus.Counter
	passes    prometheus.Counter
	exchanges prometheus.Counter
	rejected  *prometheus.CounterVec
	gain      prometheus.Observer
	depth     prometheus.Observer
	length    prometheus.Gauge

	improved bool // an exchange was committed during the current scan
}

func (r *recorder) PassCompleted(_ int, length int64) {
	r.scans.Inc()
	if r.improved {
		r.passes.Inc()
	}
	r.improved = false
	r.length.Set(float64(length))
}

func (r *recorder) ExchangeCommitted(gain int64, depth int) {
	r.improved = true
	r.exchanges.Inc()
	r.gain.Observe(float64(gain))
	r.depth.Observe(float64(depth))
}

func (r *recorder) ExchangeRejected(err error) {
	r.rejected.WithLabelValues(Reason(err)).Inc()
}

// Reason maps a rejection error to its label value.
func Reason(err error) string {
	switch {
	case errors.Is(err, lk.ErrGainMismatch):
		return ReasonGainMismatch
	case errors.Is(err, tour.ErrInfeasibleExchange):
		return ReasonInfeasible
	case errors.Is(err, tour.ErrInvalidTour):
		return ReasonInvalidTour
	default:
		return ReasonOther
	}
}
