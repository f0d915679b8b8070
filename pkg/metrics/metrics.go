// Package metrics holds the prometheus collectors for payments and HTTP traffic.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "culturepay"

const (
	resultSuccess = "success"
	resultFailure = "failure"
)

type Metrics struct {
	registry *prometheus.Registry

	orders        *prometheus.CounterVec
	verifications *prometheus.CounterVec
	ledgerWrites  *prometheus.CounterVec
	httpDuration  *prometheus.HistogramVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		orders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orders_total",
			Help:      "Gateway orders by result",
		}, []string{"result"}),
		verifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "verifications_total",
			Help:      "Payment verifications by outcome",
		}, []string{"outcome"}),
		ledgerWrites: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ledger_writes_total",
			Help:      "Ledger appends by driver and result",
		}, []string{"driver", "result"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.orders,
		m.verifications,
		m.ledgerWrites,
		m.httpDuration,
	)

	return m
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) ObserveOrder(err error) {
	m.orders.WithLabelValues(result(err)).Inc()
}

func (m *Metrics) ObserveVerification(outcome string) {
	m.verifications.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ObserveLedgerWrite(driver string, err error) {
	m.ledgerWrites.WithLabelValues(driver, result(err)).Inc()
}

func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	m.httpDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(elapsed.Seconds())
}

func result(err error) string {
	if err != nil {
		return resultFailure
	}

	return resultSuccess
}
