package model

import "github.com/shopspring/decimal"

// Polarity is a balance indicator (IND_DC). Values other than D and C are
// kept as found so the rule engine can still classify them.
type Polarity string

const (
	PolarityNone   Polarity = ""
	PolarityDebit  Polarity = "D"
	PolarityCredit Polarity = "C"
)

// Label returns the human label. Anything that is not a debit reads as "Credor".
func (p Polarity) Label() string {
	if p == PolarityDebit {
		return "Devedor"
	}
	return "Credor"
}

// BalanceEntry is one I155 period balance record.
type BalanceEntry struct {
	AccountCode     string          `json:"cod_conta"`
	CostCenter      string          `json:"centro_custo"`
	Opening         decimal.Decimal `json:"saldo_inicial"`
	OpeningPolarity Polarity        `json:"ind_saldo_ini"`
	Debit           decimal.Decimal `json:"valor_debito"`
	Credit          decimal.Decimal `json:"valor_credito"`
	Closing         decimal.Decimal `json:"saldo_final"`
	ClosingPolarity Polarity        `json:"ind_saldo_fin"`
}

// EnrichedBalance is a BalanceEntry joined with its chart entry.
// Matched is false when no chart entry carried the account code; the
// enrichment fields are then zero.
type EnrichedBalance struct {
	BalanceEntry
	Description string      `json:"descricao"`
	Nature      Nature      `json:"natureza"`
	Kind        AccountKind `json:"tipo_conta"`
	Matched     bool        `json:"-"`
}

// IsAnalytic reports whether the row is a postable leaf account.
func (b EnrichedBalance) IsAnalytic() bool {
	return b.Kind == KindAnalytic
}
