// Package runner ties one audit run together: parse, evaluate, record
// metrics and append to the audit log.
package runner

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/audiper-dev/audiper/internal/audit"
	"github.com/audiper-dev/audiper/internal/auditlog"
	"github.com/audiper-dev/audiper/internal/logging"
	"github.com/audiper-dev/audiper/internal/metrics"
	"github.com/audiper-dev/audiper/internal/model"
	"github.com/audiper-dev/audiper/internal/report"
	"github.com/audiper-dev/audiper/internal/sped"
)

// Runner audits ledgers. Metrics and AuditLog are optional.
type Runner struct {
	Rules    audit.Rules
	Metrics  *metrics.Collector
	AuditLog string
	Logger   *slog.Logger
}

// Outcome is the result of auditing one ledger. Report is nil unless
// Parse.Status is sped.StatusOK.
type Outcome struct {
	Parse  sped.Result
	Report *report.Report
}

// OK reports whether the ledger was complete enough to audit.
func (o *Outcome) OK() bool {
	return o.Report != nil
}

func (r *Runner) logger() *slog.Logger {
	if r.Logger == nil {
		return logging.Discard()
	}
	return r.Logger
}

// Run parses an ISO-8859-1 ledger from in and audits it.
func (r *Runner) Run(source string, in io.Reader) (*Outcome, error) {
	start := time.Now()
	log := r.logger().With(slog.String("source", source))

	res, err := sped.ParseReader(in)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", source, err)
	}
	if r.Metrics != nil {
		r.Metrics.ObserveParse(res)
	}

	log.Info("parsed ledger",
		slog.Int("chart", len(res.Chart)),
		slog.Int("balances", len(res.Balances)),
		slog.Int("dropped", res.Dropped),
	)
	if res.Dropped > 0 {
		log.Warn("skipped malformed records", slog.Int("dropped", res.Dropped))
	}

	out := &Outcome{Parse: res}
	if res.Status != sped.StatusOK {
		log.Warn("ledger incomplete", slog.String("status", res.Status.String()))
		r.record(log, auditlog.Entry{
			Timestamp: start,
			Source:    source,
			Status:    res.Status.String(),
			Chart:     len(res.Chart),
			Balances:  len(res.Balances),
			Dropped:   res.Dropped,
		})
		return out, nil
	}

	out.Report = r.audit(log, source, res.Header, res.Enriched, start)
	r.record(log, entryFor(out.Report, res))
	return out, nil
}

// RunBalances audits balances that are already enriched, such as the demo
// ledger.
func (r *Runner) RunBalances(source string, header *model.CompanyHeader, balances []model.EnrichedBalance) *report.Report {
	start := time.Now()
	log := r.logger().With(slog.String("source", source))

	rep := r.audit(log, source, header, balances, start)
	e := entryFor(rep, sped.Result{Status: sped.StatusOK})
	e.Balances = len(balances)
	r.record(log, e)
	return rep
}

func (r *Runner) audit(log *slog.Logger, source string, header *model.CompanyHeader, balances []model.EnrichedBalance, start time.Time) *report.Report {
	rep := report.New(source, header, balances, r.Rules)
	if r.Metrics != nil {
		r.Metrics.ObserveAudit(rep.Stats, time.Since(start))
	}
	log.Info("audit complete",
		slog.String("run_id", rep.RunID),
		slog.Int("findings", rep.Stats.Total),
		slog.Int("critical", rep.Stats.Critical),
		slog.Int("attention", rep.Stats.Attention),
		slog.Int("info", rep.Stats.Info),
	)
	return rep
}

func entryFor(rep *report.Report, res sped.Result) auditlog.Entry {
	return auditlog.Entry{
		Timestamp: rep.Generated,
		RunID:     rep.RunID,
		Source:    rep.Source,
		Status:    res.Status.String(),
		Chart:     len(res.Chart),
		Balances:  len(res.Balances),
		Dropped:   res.Dropped,
		Findings:  rep.Stats.Total,
		Critical:  rep.Stats.Critical,
		Attention: rep.Stats.Attention,
		Info:      rep.Stats.Info,
	}
}

func (r *Runner) record(log *slog.Logger, e auditlog.Entry) {
	if r.AuditLog == "" {
		return
	}
	if err := auditlog.Append(r.AuditLog, []auditlog.Entry{e}); err != nil {
		log.Warn("failed to write audit log", slog.String("error", err.Error()))
	}
}
