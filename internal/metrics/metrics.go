// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package metrics defines the Prometheus counters exported by the server.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "accesspaper"

// Outcome labels.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
	OutcomeInvalid = "invalid"
)

// Metrics holds the counters. Each instance owns a private registry so
// tests can build as many as they need.
type Metrics struct {
	registry *prometheus.Registry

	Searches    *prometheus.CounterVec
	LogRequests *prometheus.CounterVec
	LogEntries  prometheus.Histogram
}

// New registers the counters on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		Searches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "searches_total",
			Help:      "DOI searches submitted, by outcome.",
		}, []string{"outcome"}),
		LogRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "log_requests_total",
			Help:      "Log endpoint requests, by outcome.",
		}, []string{"outcome"}),
		LogEntries: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "log_entries_returned",
			Help:      "Number of log entries returned per request.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
		}),
	}
	reg.MustRegister(m.Searches, m.LogRequests, m.LogEntries)
	reg.MustRegister(collectors.NewGoCollector())
	return m
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
