// Package sped parses SPED ECD ledger exports: the 0000 opening record, the
// I050 chart of accounts and the I155 period balances.
package sped

import (
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"

	"github.com/audiper-dev/audiper/internal/accounts"
	"github.com/audiper-dev/audiper/internal/fields"
	"github.com/audiper-dev/audiper/internal/model"
)

// Status is the terminal outcome of a parse.
type Status int

const (
	StatusOK Status = iota
	StatusNoChart
	StatusNoBalances
)

func (s Status) String() string {
	switch s {
	case StatusNoChart:
		return "⚠️ Nenhum Plano de Contas (I050) encontrado"
	case StatusNoBalances:
		return "⚠️ Nenhum Saldo (I155) encontrado"
	default:
		return "✅ Arquivo processado com sucesso"
	}
}

// MarshalText renders the status message.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Result holds everything extracted from one ledger.
type Result struct {
	Header   *model.CompanyHeader
	Chart    []model.ChartEntry
	Balances []model.BalanceEntry
	Status   Status

	// Enriched is only populated when Status is StatusOK.
	Enriched []model.EnrichedBalance

	// Counts holds accepted records per tag.
	Counts map[string]int

	// Dropped counts record lines that carried a known tag but were malformed.
	Dropped int
}

// Parse extracts records from raw ledger text. Malformed lines are skipped;
// missing chart or balance records are reported through Status.
func Parse(text string) Result {
	res := Result{Counts: make(map[string]int)}

	for _, line := range strings.Split(text, "\n") {
		if !strings.HasPrefix(line, "|") {
			continue
		}

		cols := strings.Split(strings.TrimSpace(line), "|")
		if len(cols) < 3 {
			continue
		}

		tag := cols[colTag]
		ok := true
		switch tag {
		case TagHeader:
			var h model.CompanyHeader
			if h, ok = parseHeader(cols); ok {
				res.Header = &h
			}
		case TagChart:
			var e model.ChartEntry
			if e, ok = parseChartEntry(cols); ok {
				res.Chart = append(res.Chart, e)
			}
		case TagBalance:
			var b model.BalanceEntry
			if b, ok = parseBalance(cols); ok {
				res.Balances = append(res.Balances, b)
			}
		default:
			continue
		}

		if ok {
			res.Counts[tag]++
		} else {
			res.Dropped++
		}
	}

	switch {
	case len(res.Chart) == 0:
		res.Status = StatusNoChart
	case len(res.Balances) == 0:
		res.Status = StatusNoBalances
	default:
		res.Enriched = accounts.NewService(res.Chart).Enrich(res.Balances)
		res.Status = StatusOK
	}
	return res
}

// NewReader decodes an ISO-8859-1 ledger stream into UTF-8.
func NewReader(r io.Reader) io.Reader {
	return charmap.ISO8859_1.NewDecoder().Reader(r)
}

// ParseReader reads a whole ISO-8859-1 ledger and parses it.
func ParseReader(r io.Reader) (Result, error) {
	data, err := io.ReadAll(NewReader(r))
	if err != nil {
		return Result{}, fmt.Errorf("reading ledger: %w", err)
	}
	return Parse(string(data)), nil
}

func parseHeader(cols []string) (model.CompanyHeader, bool) {
	if len(cols) < headerMinFields {
		return model.CompanyHeader{}, false
	}
	return model.CompanyHeader{
		Name:        fields.Clean(cols[headerColName]),
		TaxID:       fields.FormatTaxID(fields.Clean(cols[headerColTaxID])),
		State:       fields.Clean(cols[headerColState]),
		PeriodStart: fields.FormatDate(fields.Clean(cols[headerColStart])),
		PeriodEnd:   fields.FormatDate(fields.Clean(cols[headerColEnd])),
	}, true
}

func parseChartEntry(cols []string) (model.ChartEntry, bool) {
	if len(cols) < chartMinFields {
		return model.ChartEntry{}, false
	}
	natureCode := fields.Clean(cols[chartColNature])
	kindFlag := fields.Clean(cols[chartColKind])
	return model.ChartEntry{
		Code:        fields.Clean(cols[chartColCode]),
		Description: fields.Clean(cols[chartColDesc]),
		NatureCode:  natureCode,
		Nature:      model.NatureFromCode(natureCode),
		Kind:        model.KindFromFlag(kindFlag),
		KindFlag:    kindFlag,
		Level:       fields.Clean(cols[chartColLevel]),
		ParentCode:  fields.Clean(cols[chartColParent]),
	}, true
}

func parseBalance(cols []string) (model.BalanceEntry, bool) {
	if len(cols) < balanceMinFields {
		return model.BalanceEntry{}, false
	}

	var amounts [4]decimal.Decimal
	for i, col := range []int{balanceColOpening, balanceColDebit, balanceColCredit, balanceColClosing} {
		d, err := fields.ParseDecimalStrict(cols[col])
		if err != nil {
			return model.BalanceEntry{}, false
		}
		amounts[i] = d
	}

	return model.BalanceEntry{
		AccountCode:     fields.Clean(cols[balanceColCode]),
		CostCenter:      fields.Clean(cols[balanceColCostCenter]),
		Opening:         amounts[0],
		OpeningPolarity: model.Polarity(fields.Clean(cols[balanceColOpeningInd])),
		Debit:           amounts[1],
		Credit:          amounts[2],
		Closing:         amounts[3],
		ClosingPolarity: model.Polarity(fields.Clean(cols[balanceColClosingInd])),
	}, true
}
