// Package audit runs rule-based checks over an enriched trial balance.
package audit

import (
	"github.com/audiper-dev/audiper/internal/model"
)

const (
	msgAssetCredit    = "Conta do ATIVO com saldo CREDOR"
	msgLiabilityDebit = "Conta do PASSIVO com saldo DEVEDOR"
	msgEquityDebit    = "Conta do PL com saldo DEVEDOR"
	msgUnusual        = "Saldo em natureza não usual"
	recAssetCredit    = "Verificar se há erro de classificação ou lançamento incorreto. Pode indicar pagamento a maior ou estorno indevido."
	recLiabilityDebit = "Possível pagamento a maior, adiantamento não classificado ou erro de lançamento."
	recEquityDebit    = "Verificar se é Prejuízo Acumulado (normal) ou erro de classificação."
	recUnusual        = "Analisar razão contábil para verificar origem."
)

// EvaluateReversedBalances flags analytic accounts whose closing balance
// polarity contradicts their nature. Rows are considered in input order;
// a finding's ID is the 1-based position of its row among the analytic,
// non-zero rows, so IDs are ordered but not necessarily contiguous.
func EvaluateReversedBalances(balances []model.EnrichedBalance, rules Rules) ([]model.Finding, model.AuditStats) {
	var findings []model.Finding

	idx := 0
	for _, row := range balances {
		if !row.IsAnalytic() || row.Closing.IsZero() {
			continue
		}
		idx++

		expected, ok := rules.Expected[row.Nature]
		if !ok || expected == model.PolarityNone {
			continue
		}

		actual := row.ClosingPolarity
		if actual == model.PolarityNone || actual == expected {
			continue
		}

		if rules.IsContra(row.Description) {
			continue
		}

		sev, msg, rec := classify(row.Nature, actual)
		findings = append(findings, model.Finding{
			ID:             idx,
			AccountCode:    row.AccountCode,
			Description:    row.Description,
			Nature:         row.Nature,
			Expected:       expected,
			Actual:         actual,
			Amount:         row.Closing.Abs(),
			Severity:       sev,
			Message:        msg,
			Recommendation: rec,
		})
	}

	return findings, Tally(findings)
}

func classify(n model.Nature, actual model.Polarity) (model.Severity, string, string) {
	switch {
	case n == model.NatureAsset && actual == model.PolarityCredit:
		return model.SeverityCritical, msgAssetCredit, recAssetCredit
	case n == model.NatureLiability && actual == model.PolarityDebit:
		return model.SeverityCritical, msgLiabilityDebit, recLiabilityDebit
	case n == model.NatureEquity && actual == model.PolarityDebit:
		return model.SeverityAttention, msgEquityDebit, recEquityDebit
	default:
		return model.SeverityInfo, msgUnusual, recUnusual
	}
}

// Tally counts findings per severity.
func Tally(findings []model.Finding) model.AuditStats {
	stats := model.AuditStats{Total: len(findings)}
	for _, f := range findings {
		switch f.Severity {
		case model.SeverityCritical:
			stats.Critical++
		case model.SeverityAttention:
			stats.Attention++
		case model.SeverityInfo:
			stats.Info++
		}
	}
	return stats
}
