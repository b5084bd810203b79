// Package metrics exposes search runs as Prometheus gauges.
//
// A solver run is a short-lived batch job, so nothing is served over HTTP:
// gauges are collected in a private registry and written once, in the text
// format read by the node exporter's textfile collector.
package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/geofduf/burrow/internal/search"
)

const namespace = "burrow"
const subsystem = "search"

// A Recorder collects the outcome of search runs, labelled by puzzle part.
type Recorder struct {
	reg        *prometheus.Registry
	cost       *prometheus.GaugeVec
	reachable  *prometheus.GaugeVec
	expanded   *prometheus.GaugeVec
	discovered *prometheus.GaugeVec
	stale      *prometheus.GaugeVec
	duration   *prometheus.GaugeVec
}

func newGauge(name, help string) *prometheus.GaugeVec {
	return prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      name,
			Help:      help,
		},
		[]string{"part"},
	)
}

// NewRecorder returns a Recorder with its own registry.
func NewRecorder() *Recorder {
	r := &Recorder{
		reg:        prometheus.NewRegistry(),
		cost:       newGauge("cost", "Minimum energy found for the part."),
		reachable:  newGauge("reachable", "1 if the goal configuration was reached, 0 otherwise."),
		expanded:   newGauge("expanded", "Configurations whose moves were enumerated."),
		discovered: newGauge("discovered", "Distinct configurations seen."),
		stale:      newGauge("stale", "Frontier entries dropped because a cheaper path was known."),
		duration:   newGauge("duration_seconds", "Wall time spent in the search."),
	}
	r.reg.MustRegister(r.cost, r.reachable, r.expanded, r.discovered, r.stale, r.duration)
	return r
}

// Observe records one run. err is the error returned by search.Run; only
// search.ErrNotReachable is recorded, other errors are ignored.
func (r *Recorder) Observe(part string, res search.Result, err error, elapsed time.Duration) {
	switch {
	case err == nil:
		r.cost.WithLabelValues(part).Set(float64(res.Cost))
		r.reachable.WithLabelValues(part).Set(1)
	case errors.Is(err, search.ErrNotReachable):
		r.reachable.WithLabelValues(part).Set(0)
	default:
		return
	}
	r.expanded.WithLabelValues(part).Set(float64(res.Stats.Expanded))
	r.discovered.WithLabelValues(part).Set(float64(res.Stats.Discovered))
	r.stale.WithLabelValues(part).Set(float64(res.Stats.Stale))
	r.duration.WithLabelValues(part).Set(elapsed.Seconds())
}

// WriteTextfile atomically writes all gauges to path.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.reg)
}
