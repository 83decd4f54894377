// Package demo provides a fictitious company ledger with deliberate
// anomalies, used when no real SPED file is at hand.
package demo

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"

	"github.com/audiper-dev/audiper/internal/accounts"
	"github.com/audiper-dev/audiper/internal/fields"
	"github.com/audiper-dev/audiper/internal/model"
)

// Header is the demo company.
var Header = model.CompanyHeader{
	Name:        "MEGA TELEINFORMÁTICA LTDA",
	TaxID:       "12.345.678/0001-90",
	State:       "PI",
	PeriodStart: "01/01/2024",
	PeriodEnd:   "31/12/2024",
}

// Chart returns the demo chart of accounts.
func Chart() []model.ChartEntry {
	chart := make([]model.ChartEntry, 0, len(chartRows))
	for _, r := range chartRows {
		chart = append(chart, model.ChartEntry{
			Code:        r[0],
			Description: r[1],
			NatureCode:  r[2],
			Nature:      model.NatureFromCode(r[2]),
			Kind:        model.KindFromFlag(r[3]),
			KindFlag:    r[3],
			Level:       r[4],
			ParentCode:  r[5],
		})
	}
	return chart
}

// Balances returns the demo I155 balances.
func Balances() []model.BalanceEntry {
	zero := decimal.RequireFromString("0.00")
	balances := make([]model.BalanceEntry, 0, len(balanceRows))
	for _, r := range balanceRows {
		balances = append(balances, model.BalanceEntry{
			AccountCode:     r.code,
			Opening:         zero,
			OpeningPolarity: model.Polarity(r.openingInd),
			Debit:           decimal.RequireFromString(r.debit),
			Credit:          decimal.RequireFromString(r.credit),
			Closing:         decimal.RequireFromString(r.closing),
			ClosingPolarity: model.Polarity(r.closingInd),
		})
	}
	return balances
}

// Generate returns the demo header, chart and enriched balances.
func Generate() (model.CompanyHeader, []model.ChartEntry, []model.EnrichedBalance) {
	chart := Chart()
	return Header, chart, accounts.NewService(chart).Enrich(Balances())
}

// WriteSPED renders the demo ledger as ISO-8859-1 SPED ECD text.
func WriteSPED(w io.Writer) error {
	bw := bufio.NewWriter(charmap.ISO8859_1.NewEncoder().Writer(w))

	start := strings.ReplaceAll(Header.PeriodStart, "/", "")
	end := strings.ReplaceAll(Header.PeriodEnd, "/", "")
	taxID := strings.NewReplacer(".", "", "/", "", "-", "").Replace(Header.TaxID)

	lines := []string{
		record("0000", "LECD", start, end, "17", Header.Name, taxID, Header.State),
		record("0001", "0"),
		record("I001", "0"),
	}
	for _, e := range Chart() {
		lines = append(lines, record("I050", start, e.NatureCode, e.KindFlag, e.Level, e.Code, e.ParentCode, e.Description))
	}
	lines = append(lines, record("I150", start, end))
	for _, b := range Balances() {
		lines = append(lines, record("I155", b.AccountCode, b.CostCenter,
			fields.FormatDecimalBR(b.Opening), string(b.OpeningPolarity),
			fields.FormatDecimalBR(b.Debit), fields.FormatDecimalBR(b.Credit),
			fields.FormatDecimalBR(b.Closing), string(b.ClosingPolarity)))
	}
	lines = append(lines, record("9999", fmt.Sprint(len(lines)+1)))

	for _, l := range lines {
		if _, err := bw.WriteString(l + "\r\n"); err != nil {
			return fmt.Errorf("writing demo ledger: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing demo ledger: %w", err)
	}
	return nil
}

func record(tag string, values ...string) string {
	return "|" + tag + "|" + strings.Join(values, "|") + "|"
}
