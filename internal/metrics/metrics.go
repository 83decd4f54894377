// Package metrics exposes Prometheus counters for parse and audit runs.
package metrics

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/audiper-dev/audiper/internal/model"
	"github.com/audiper-dev/audiper/internal/sped"
)

const namespace = "audiper"

// Collector owns a private registry so tests and commands never share state.
type Collector struct {
	reg *prometheus.Registry

	LedgersParsed   *prometheus.CounterVec
	RecordsAccepted *prometheus.CounterVec
	RecordsDropped  prometheus.Counter
	Findings        *prometheus.CounterVec
	AuditDuration   prometheus.Histogram
	HTTPRequests    *prometheus.CounterVec
	HTTPDuration    *prometheus.HistogramVec
}

// New registers all metrics on a fresh registry.
func New() *Collector {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Collector{
		reg: reg,
		LedgersParsed: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ledgers_parsed_total",
			Help:      "Ledgers parsed, by parse status.",
		}, []string{"status"}),
		RecordsAccepted: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "records_accepted_total",
			Help:      "Well-formed records read, by record tag.",
		}, []string{"tag"}),
		RecordsDropped: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "records_dropped_total",
			Help:      "Malformed records skipped.",
		}),
		Findings: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "findings_total",
			Help:      "Audit findings, by severity.",
		}, []string{"severity"}),
		AuditDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "audit_duration_seconds",
			Help:      "Time spent parsing and auditing one ledger.",
			Buckets:   prometheus.DefBuckets,
		}),
		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP API requests, by route and status code.",
		}, []string{"route", "code"}),
		HTTPDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP API request duration.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
	}
}

// Registry returns the underlying registry.
func (c *Collector) Registry() *prometheus.Registry {
	return c.reg
}

func statusLabel(s sped.Status) string {
	switch s {
	case sped.StatusNoChart:
		return "no_chart"
	case sped.StatusNoBalances:
		return "no_balances"
	default:
		return "ok"
	}
}

// ObserveParse records one parse result.
func (c *Collector) ObserveParse(res sped.Result) {
	c.LedgersParsed.WithLabelValues(statusLabel(res.Status)).Inc()
	for tag, n := range res.Counts {
		c.RecordsAccepted.WithLabelValues(tag).Add(float64(n))
	}
	c.RecordsDropped.Add(float64(res.Dropped))
}

// ObserveAudit records the findings of one run and how long it took.
func (c *Collector) ObserveAudit(stats model.AuditStats, took time.Duration) {
	c.Findings.WithLabelValues(model.SeverityCritical.String()).Add(float64(stats.Critical))
	c.Findings.WithLabelValues(model.SeverityAttention.String()).Add(float64(stats.Attention))
	c.Findings.WithLabelValues(model.SeverityInfo.String()).Add(float64(stats.Info))
	c.AuditDuration.Observe(took.Seconds())
}

// ObserveRequest records one HTTP request.
func (c *Collector) ObserveRequest(route string, code int, took time.Duration) {
	c.HTTPRequests.WithLabelValues(route, strconv.Itoa(code)).Inc()
	c.HTTPDuration.WithLabelValues(route).Observe(took.Seconds())
}

// WriteTextfile writes the registry in the node_exporter textfile format.
func (c *Collector) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, c.reg); err != nil {
		return fmt.Errorf("writing metrics textfile: %w", err)
	}
	return nil
}

// Handler serves the registry for scraping.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.reg, promhttp.HandlerOpts{})
}
