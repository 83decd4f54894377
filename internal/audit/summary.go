package audit

import (
	"github.com/shopspring/decimal"

	"github.com/audiper-dev/audiper/internal/fields"
	"github.com/audiper-dev/audiper/internal/model"
)

// SummaryNatures are the natures reported by Summarize, in display order.
var SummaryNatures = []model.Nature{
	model.NatureAsset,
	model.NatureLiability,
	model.NatureEquity,
	model.NatureResult,
}

// NatureSummary aggregates the analytic rows of one nature. TotalFormatted
// is the absolute total as currency.
type NatureSummary struct {
	Count          int             `json:"quantidade"`
	Total          decimal.Decimal `json:"total"`
	TotalFormatted string          `json:"total_formatado"`
}

// Summary is the trial balance overview shown next to the findings.
type Summary struct {
	TotalAccounts    int                            `json:"total_contas"`
	AnalyticAccounts int                            `json:"contas_analiticas"`
	ByNature         map[model.Nature]NatureSummary `json:"por_natureza"`
}

// Summarize totals analytic rows per nature. Totals are the plain sum of
// closing amounts regardless of their D/C indicator. Natures with no
// analytic rows are left out of ByNature.
func Summarize(balances []model.EnrichedBalance) Summary {
	s := Summary{
		TotalAccounts: len(balances),
		ByNature:      make(map[model.Nature]NatureSummary),
	}

	for _, row := range balances {
		if !row.IsAnalytic() {
			continue
		}
		s.AnalyticAccounts++

		ns, tracked := s.ByNature[row.Nature]
		if !tracked && !isSummaryNature(row.Nature) {
			continue
		}
		ns.Count++
		ns.Total = ns.Total.Add(row.Closing)
		s.ByNature[row.Nature] = ns
	}

	for n, ns := range s.ByNature {
		ns.TotalFormatted = fields.FormatCurrency(ns.Total.Abs())
		s.ByNature[n] = ns
	}
	return s
}

func isSummaryNature(n model.Nature) bool {
	for _, sn := range SummaryNatures {
		if sn == n {
			return true
		}
	}
	return false
}
