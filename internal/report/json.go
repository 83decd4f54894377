package report

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/audiper-dev/audiper/internal/audit"
	"github.com/audiper-dev/audiper/internal/fields"
	"github.com/audiper-dev/audiper/internal/model"
)

// Document is the JSON shape of a report.
type Document struct {
	RunID     string                  `json:"run_id"`
	Generated time.Time               `json:"gerado_em"`
	Source    string                  `json:"arquivo,omitempty"`
	Test      string                  `json:"teste"`
	Company   *model.CompanyHeader    `json:"empresa"`
	Stats     model.AuditStats        `json:"estatisticas"`
	Findings  []FindingDocument       `json:"achados"`
	Summary   audit.Summary           `json:"resumo"`
	Balances  []model.EnrichedBalance `json:"balancete,omitempty"`
}

// FindingDocument adds display fields to a finding.
type FindingDocument struct {
	model.Finding
	Expected        string `json:"saldo_esperado"`
	Actual          string `json:"saldo_encontrado"`
	AmountFormatted string `json:"valor_formatado"`
	Glyph           string `json:"emoji"`
	Color           string `json:"cor"`
}

// NewDocument builds the JSON shape. Balances are only included withBalances.
func NewDocument(r *Report, withBalances bool) Document {
	doc := Document{
		RunID:     r.RunID,
		Generated: r.Generated,
		Source:    r.Source,
		Test:      TestName,
		Company:   r.Header,
		Stats:     r.Stats,
		Findings:  make([]FindingDocument, 0, len(r.Findings)),
		Summary:   r.Summary,
	}
	for _, f := range r.Findings {
		doc.Findings = append(doc.Findings, FindingDocument{
			Finding:         f,
			Expected:        f.Expected.Label(),
			Actual:          f.Actual.Label(),
			AmountFormatted: fields.FormatCurrency(f.Amount),
			Glyph:           f.Severity.Glyph(),
			Color:           f.Severity.Color(),
		})
	}
	if withBalances {
		doc.Balances = r.Balances
	}
	return doc
}

// WriteJSON writes the indented report document.
func WriteJSON(w io.Writer, r *Report, withBalances bool) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(NewDocument(r, withBalances)); err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	return nil
}
