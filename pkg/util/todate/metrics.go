// Copyright 2024 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package todate

import "github.com/prometheus/client_golang/prometheus"

const kindLabel = "kind"

// Metrics counts template compilations, parses and cache activity.
type Metrics struct {
	Compiles        prometheus.Counter
	CompileFailures *prometheus.CounterVec
	Parses          prometheus.Counter
	ParseFailures   *prometheus.CounterVec
	CacheHits       prometheus.Counter
	CacheMisses     prometheus.Counter
	CacheEvictions  prometheus.Counter
}

// NewMetrics creates an unregistered set of metrics.
func NewMetrics() *Metrics {
	return &Metrics{
		Compiles: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "todate_template_compiles_total",
			Help: "Count of date format templates compiled",
		}),
		CompileFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "todate_template_compile_failures_total",
			Help: "Count of date format templates rejected, by error kind",
		}, []string{kindLabel}),
		Parses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "todate_parses_total",
			Help: "Count of date strings parsed",
		}),
		ParseFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "todate_parse_failures_total",
			Help: "Count of date strings that failed to parse, by error kind",
		}, []string{kindLabel}),
		CacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "todate_format_cache_hits_total",
			Help: "Count of compiled templates served from the format cache",
		}),
		CacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "todate_format_cache_misses_total",
			Help: "Count of format cache lookups that compiled the template",
		}),
		CacheEvictions: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "todate_format_cache_evictions_total",
			Help: "Count of compiled templates evicted from the format cache",
		}),
	}
}

// Register registers every metric with r.
func (m *Metrics) Register(r prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{
		m.Compiles, m.CompileFailures, m.Parses, m.ParseFailures,
		m.CacheHits, m.CacheMisses, m.CacheEvictions,
	} {
		if err := r.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// DefaultMetrics are updated by the package level functions.
var DefaultMetrics = NewMetrics()

func (m *Metrics) recordCompile(err error) {
	if m == nil {
		return
	}
	if err != nil {
		m.CompileFailures.WithLabelValues(errorKind(err)).Inc()
		return
	}
	m.Compiles.Inc()
}

func (m *Metrics) recordParse(err error) {
	if m == nil {
		return
	}
	m.Parses.Inc()
	if err != nil {
		m.ParseFailures.WithLabelValues(errorKind(err)).Inc()
	}
}
