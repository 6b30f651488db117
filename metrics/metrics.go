/*------------------------------------------------------------------------------
* metrics.go : Prometheus instrumentation for the synthesis pipeline
*
*          Copyright (C) 2022-2025 by feng xuebin, All rights reserved.
*
 */

// Package metrics exposes Prometheus collectors for the synthesis
// pipeline (samples produced per Composite.Request call, per-source
// ring buffer depth, and the wall-clock duration of each
// Composite.Request call, which includes the anti-alias FIR step), the same
// client_golang library the teacher's app/plot package reports solution
// metrics with, registered here against a caller-supplied Registerer so
// tests can use a private registry instead of the global default.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Collectors groups the gauges/counters/histograms instrumenting one
// Composite pipeline.
type Collectors struct {
	SamplesProduced prometheus.Counter
	SourceBufDepth  *prometheus.GaugeVec
	FIRFillSeconds  prometheus.Histogram
}

// NewCollectors constructs and registers the collectors against reg.
func NewCollectors(reg prometheus.Registerer) *Collectors {
	c := &Collectors{
		SamplesProduced: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "gnssgo_synth_samples_produced_total",
			Help: "total output samples produced by Composite.Request",
		}),
		SourceBufDepth: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "gnssgo_synth_source_buffer_depth",
			Help: "ring buffer depth, in samples, of each composite source",
		}, []string{"signal"}),
		FIRFillSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "gnssgo_synth_fir_fill_seconds",
			Help:    "wall-clock duration of one Composite.Request call (source fill, resampling, anti-alias FIR and downsample)",
			Buckets: prometheus.DefBuckets,
		}),
	}
	reg.MustRegister(c.SamplesProduced, c.SourceBufDepth, c.FIRFillSeconds)
	return c
}

// ObserveSourceBufDepth records the current ring buffer depth for a
// named signal source.
func (c *Collectors) ObserveSourceBufDepth(signal string, depth int) {
	c.SourceBufDepth.WithLabelValues(signal).Set(float64(depth))
}
