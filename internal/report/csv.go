package report

import (
	"encoding/csv"
	"io"

	"github.com/gocarina/gocsv"

	"github.com/audiper-dev/audiper/internal/fields"
	"github.com/audiper-dev/audiper/internal/model"
)

type findingCSV struct {
	ID             int    `csv:"id"`
	AccountCode    string `csv:"conta"`
	Description    string `csv:"descricao"`
	Nature         string `csv:"natureza"`
	Expected       string `csv:"saldo_esperado"`
	Actual         string `csv:"saldo_encontrado"`
	Amount         string `csv:"valor"`
	Severity       string `csv:"severidade"`
	Message        string `csv:"achado"`
	Recommendation string `csv:"recomendacao"`
}

type balanceCSV struct {
	AccountCode     string `csv:"conta"`
	CostCenter      string `csv:"centro_custo"`
	Description     string `csv:"descricao"`
	Nature          string `csv:"natureza"`
	Kind            string `csv:"tipo_conta"`
	Opening         string `csv:"saldo_inicial"`
	OpeningPolarity string `csv:"ind_saldo_ini"`
	Debit           string `csv:"debitos"`
	Credit          string `csv:"creditos"`
	Closing         string `csv:"saldo_final"`
	ClosingPolarity string `csv:"ind_saldo_fin"`
}

// newCSVWriter writes ";"-separated CRLF rows, the pt-BR spreadsheet convention.
func newCSVWriter(w io.Writer) *csv.Writer {
	cw := csv.NewWriter(w)
	cw.Comma = ';'
	cw.UseCRLF = true
	return cw
}

// WriteFindingsCSV writes one row per finding. Amounts use the SPED decimal
// layout ("1234,56").
func WriteFindingsCSV(w io.Writer, findings []model.Finding) error {
	rows := make([]*findingCSV, 0, len(findings))
	for _, f := range findings {
		rows = append(rows, &findingCSV{
			ID:             f.ID,
			AccountCode:    f.AccountCode,
			Description:    f.Description,
			Nature:         f.Nature.String(),
			Expected:       f.Expected.Label(),
			Actual:         f.Actual.Label(),
			Amount:         fields.FormatDecimalBR(f.Amount),
			Severity:       f.Severity.String(),
			Message:        f.Message,
			Recommendation: f.Recommendation,
		})
	}
	return gocsv.MarshalCSV(rows, newCSVWriter(w))
}

// WriteBalancesCSV writes the enriched trial balance.
func WriteBalancesCSV(w io.Writer, balances []model.EnrichedBalance) error {
	rows := make([]*balanceCSV, 0, len(balances))
	for _, b := range balances {
		rows = append(rows, &balanceCSV{
			AccountCode:     b.AccountCode,
			CostCenter:      b.CostCenter,
			Description:     b.Description,
			Nature:          b.Nature.String(),
			Kind:            b.Kind.Flag(),
			Opening:         fields.FormatDecimalBR(b.Opening),
			OpeningPolarity: string(b.OpeningPolarity),
			Debit:           fields.FormatDecimalBR(b.Debit),
			Credit:          fields.FormatDecimalBR(b.Credit),
			Closing:         fields.FormatDecimalBR(b.Closing),
			ClosingPolarity: string(b.ClosingPolarity),
		})
	}
	return gocsv.MarshalCSV(rows, newCSVWriter(w))
}
