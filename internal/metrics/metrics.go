// Package metrics records multi-path search counters in Prometheus form.
package metrics

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/camelot/multipath"
)

// Recorder owns a private registry with the search metrics.
type Recorder struct {
	registry *prometheus.Registry
	searches *prometheus.CounterVec
	paths    prometheus.Counter
	pops     prometheus.Counter
	pushes   prometheus.Counter
	peak     prometheus.Gauge
	duration prometheus.Histogram
}

// New creates a Recorder with all metrics registered.
func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		searches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "camelot_searches_total",
			Help: "Total number of path searches by outcome",
		}, []string{"outcome"}),
		paths: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "camelot_paths_emitted_total",
			Help: "Total number of paths returned",
		}),
		pops: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "camelot_frontier_pops_total",
			Help: "Total number of candidates removed from the frontier",
		}),
		pushes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "camelot_frontier_pushes_total",
			Help: "Total number of candidates added to the frontier",
		}),
		peak: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "camelot_frontier_peak",
			Help: "Largest frontier observed by the last search",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "camelot_search_duration_seconds",
			Help:    "Wall time of path searches",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
		}),
	}
	r.registry.MustRegister(r.searches, r.paths, r.pops, r.pushes, r.peak, r.duration)

	return r
}

// Registry exposes the registry, e.g. for promhttp.
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

// Observe records one finished search.
func (r *Recorder) Observe(stats multipath.Stats, elapsed time.Duration, err error) {
	outcome := "ok"
	switch {
	case err != nil:
		outcome = "error"
	case stats.Emitted == 0:
		outcome = "empty"
	}
	r.searches.WithLabelValues(outcome).Inc()
	r.paths.Add(float64(stats.Emitted))
	r.pops.Add(float64(stats.Pops))
	r.pushes.Add(float64(stats.Pushes))
	r.peak.Set(float64(stats.PeakFrontier))
	r.duration.Observe(elapsed.Seconds())
}

// WriteText writes one "name{labels} value" line per sample, sorted by name.
// Histograms report their count and sum.
func (r *Recorder) WriteText(w io.Writer) error {
	families, err := r.registry.Gather()
	if err != nil {
		return fmt.Errorf("metrics: gather: %w", err)
	}

	var lines []string
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			labels := ""
			for _, lp := range m.GetLabel() {
				labels += fmt.Sprintf("%s=%q", lp.GetName(), lp.GetValue())
			}
			if labels != "" {
				labels = "{" + labels + "}"
			}
			name := mf.GetName() + labels
			switch {
			case m.Counter != nil:
				lines = append(lines, fmt.Sprintf("%s %g", name, m.GetCounter().GetValue()))
			case m.Gauge != nil:
				lines = append(lines, fmt.Sprintf("%s %g", name, m.GetGauge().GetValue()))
			case m.Histogram != nil:
				lines = append(lines,
					fmt.Sprintf("%s_count %d", name, m.GetHistogram().GetSampleCount()),
					fmt.Sprintf("%s_sum %g", name, m.GetHistogram().GetSampleSum()))
			}
		}
	}
	sort.Strings(lines)
	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}

	return nil
}
