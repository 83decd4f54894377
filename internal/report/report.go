// Package report renders audit results: an XLSX workbook, CSV sheets,
// Markdown for the terminal and JSON for the HTTP API.
package report

import (
	"time"

	"github.com/google/uuid"

	"github.com/audiper-dev/audiper/internal/audit"
	"github.com/audiper-dev/audiper/internal/model"
)

// TestName is the display name of the reversed-balance check.
const TestName = "Saldos Invertidos"

const (
	timestampLayout = "02/01/2006 15:04"
	notAvailable    = "N/A"
)

// Report is one audit run over one ledger.
type Report struct {
	RunID     string
	Generated time.Time
	Source    string
	Header    *model.CompanyHeader
	Findings  []model.Finding
	Stats     model.AuditStats
	Summary   audit.Summary
	Balances  []model.EnrichedBalance
}

// New evaluates the balances and assembles a report with a fresh run ID.
// header may be nil when the ledger carried no 0000 record.
func New(source string, header *model.CompanyHeader, balances []model.EnrichedBalance, rules audit.Rules) *Report {
	findings, stats := audit.EvaluateReversedBalances(balances, rules)
	return &Report{
		RunID:     uuid.NewString(),
		Generated: time.Now(),
		Source:    source,
		Header:    header,
		Findings:  findings,
		Stats:     stats,
		Summary:   audit.Summarize(balances),
		Balances:  balances,
	}
}

// CompanyName returns the audited company's name or "N/A".
func (r *Report) CompanyName() string {
	if r.Header == nil || r.Header.Name == "" {
		return notAvailable
	}
	return r.Header.Name
}

// TaxID returns the formatted CNPJ or "N/A".
func (r *Report) TaxID() string {
	if r.Header == nil || r.Header.TaxID == "" {
		return notAvailable
	}
	return r.Header.TaxID
}

// Period returns "start a end" or "N/A".
func (r *Report) Period() string {
	if r.Header == nil {
		return notAvailable
	}
	return r.Header.Period()
}

// GeneratedAt formats the generation time for display.
func (r *Report) GeneratedAt() string {
	return r.Generated.Format(timestampLayout)
}
