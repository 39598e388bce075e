// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics exposes the Prometheus counters of go-wallet-issuer.
//
// Every [Metrics] owns its registry, so tests and multiple servers in one
// process never collide on metric names.
package metrics

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-wallet-issuer/internal/push"
	"github.com/MKhiriev/go-wallet-issuer/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "wallet_issuer"

// Bundle generation results.
const (
	ResultSuccess = "success"
	ResultError   = "error"
)

// Metrics holds the application collectors.
type Metrics struct {
	registry *prometheus.Registry

	bundlesGenerated     *prometheus.CounterVec
	generationDuration   *prometheus.HistogramVec
	pushOutcomes         *prometheus.CounterVec
	registrationsPruned  *prometheus.CounterVec
	registrationsCreated *prometheus.CounterVec
}

// New builds and registers all collectors, including the Go runtime and
// process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		bundlesGenerated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bundles_generated_total",
			Help:      "Signed bundles generated, by kind and result.",
		}, []string{"kind", "result"}),
		generationDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "bundle_generation_duration_seconds",
			Help:      "Time spent generating one signed bundle.",
			Buckets:   []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		}, []string{"kind"}),
		pushOutcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "push_notifications_total",
			Help:      "Push deliveries, by kind and outcome.",
		}, []string{"kind", "outcome"}),
		registrationsPruned: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "registrations_pruned_total",
			Help:      "Registrations removed because the push token was reported invalid.",
		}, []string{"kind"}),
		registrationsCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "registrations_total",
			Help:      "Device registration requests, by kind and status.",
		}, []string{"kind", "status"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.bundlesGenerated,
		m.generationDuration,
		m.pushOutcomes,
		m.registrationsPruned,
		m.registrationsCreated,
	)

	return m
}

// ObserveBundle records one generation attempt.
func (m *Metrics) ObserveBundle(kind models.Kind, started time.Time, err error) {
	result := ResultSuccess
	if err != nil {
		result = ResultError
	}
	m.bundlesGenerated.WithLabelValues(kind.String(), result).Inc()
	m.generationDuration.WithLabelValues(kind.String()).Observe(time.Since(started).Seconds())
}

// ObservePush records one push delivery result.
func (m *Metrics) ObservePush(kind models.Kind, outcome push.Outcome) {
	m.pushOutcomes.WithLabelValues(kind.String(), outcome.String()).Inc()
}

// RegistrationPruned records one self-healing unsubscribe.
func (m *Metrics) RegistrationPruned(kind models.Kind) {
	m.registrationsPruned.WithLabelValues(kind.String()).Inc()
}

// ObserveRegistration records one registration request.
func (m *Metrics) ObserveRegistration(kind models.Kind, status models.RegistrationStatus) {
	m.registrationsCreated.WithLabelValues(kind.String(), status.String()).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
