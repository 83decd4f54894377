package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"
)

// Sheet names of the exported workbook.
const (
	SheetSummary  = "Resumo"
	SheetFindings = "Achados"
	SheetBalances = "Balancete"
)

var (
	findingsHeader = []string{"Conta", "Descrição", "Natureza", "Esperado", "Encontrado", "Valor", "Severidade", "Achado", "Recomendação"}
	balancesHeader = []string{"Conta", "Descrição", "Natureza", "Saldo Inicial", "Débitos", "Créditos", "Saldo Final", "D/C"}
)

// WriteXLSX writes the workbook with the Resumo, Achados and Balancete
// sheets. Balancete is omitted when the report has no balances.
func WriteXLSX(w io.Writer, r *Report) error {
	f := excelize.NewFile()
	defer f.Close()

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("creating header style: %w", err)
	}

	if err := f.SetSheetName("Sheet1", SheetSummary); err != nil {
		return fmt.Errorf("renaming default sheet: %w", err)
	}
	if err := writeRows(f, SheetSummary, bold, summaryRows(r)); err != nil {
		return err
	}

	if _, err := f.NewSheet(SheetFindings); err != nil {
		return fmt.Errorf("creating sheet %s: %w", SheetFindings, err)
	}
	if err := writeRows(f, SheetFindings, bold, findingRows(r)); err != nil {
		return err
	}

	if len(r.Balances) > 0 {
		if _, err := f.NewSheet(SheetBalances); err != nil {
			return fmt.Errorf("creating sheet %s: %w", SheetBalances, err)
		}
		if err := writeRows(f, SheetBalances, bold, balanceRows(r)); err != nil {
			return err
		}
	}

	f.SetActiveSheet(0)
	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

func summaryRows(r *Report) [][]any {
	return [][]any{
		{"Campo", "Valor"},
		{"Empresa", r.CompanyName()},
		{"CNPJ", r.TaxID()},
		{"Período", r.Period()},
		{"Data da Auditoria", r.GeneratedAt()},
		{"Teste Realizado", TestName},
		{"Total de Achados", strconv.Itoa(r.Stats.Total)},
		{"Críticos", strconv.Itoa(r.Stats.Critical)},
		{"Atenção", strconv.Itoa(r.Stats.Attention)},
		{"Informativos", strconv.Itoa(r.Stats.Info)},
		{"Execução", r.RunID},
	}
}

func findingRows(r *Report) [][]any {
	if len(r.Findings) == 0 {
		return [][]any{{"Resultado"}, {"Nenhum achado encontrado"}}
	}
	rows := [][]any{toAny(findingsHeader)}
	for _, f := range r.Findings {
		rows = append(rows, []any{
			f.AccountCode,
			f.Description,
			f.Nature.String(),
			f.Expected.Label(),
			f.Actual.Label(),
			f.Amount.InexactFloat64(),
			f.Severity.String(),
			f.Message,
			f.Recommendation,
		})
	}
	return rows
}

func balanceRows(r *Report) [][]any {
	rows := [][]any{toAny(balancesHeader)}
	for _, b := range r.Balances {
		rows = append(rows, []any{
			b.AccountCode,
			b.Description,
			b.Nature.String(),
			b.Opening.InexactFloat64(),
			b.Debit.InexactFloat64(),
			b.Credit.InexactFloat64(),
			b.Closing.InexactFloat64(),
			string(b.ClosingPolarity),
		})
	}
	return rows
}

// writeRows writes rows from A1 down and bolds the first one.
func writeRows(f *excelize.File, sheet string, headerStyle int, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("writing %s row %d: %w", sheet, i+1, err)
		}
	}
	if len(rows) == 0 {
		return nil
	}

	last, err := excelize.CoordinatesToCellName(len(rows[0]), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", last, headerStyle); err != nil {
		return fmt.Errorf("styling %s header: %w", sheet, err)
	}

	lastCol, err := excelize.ColumnNumberToName(len(rows[0]))
	if err != nil {
		return err
	}
	return f.SetColWidth(sheet, "A", lastCol, 22)
}

func toAny(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}
