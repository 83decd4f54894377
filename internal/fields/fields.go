// Package fields normalizes raw SPED text tokens into typed values.
//
// Monetary fields follow the Brazilian convention: "." groups thousands and
// "," separates decimals ("1.234,56").
package fields

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// currencyFormatter lays out BRL amounts without the grapheme so the sign
// lands after "R$ ".
var currencyFormatter = money.NewFormatter(2, ",", ".", "", "1")

// Clean trims surrounding whitespace.
func Clean(raw string) string {
	return strings.TrimSpace(raw)
}

// FormatTaxID formats a CNPJ: 12345678000190 -> 12.345.678/0001-90.
// Input that is not 14 characters after stripping punctuation is returned stripped.
func FormatTaxID(raw string) string {
	s := strings.NewReplacer(".", "", "/", "", "-", "").Replace(raw)
	r := []rune(s)
	if len(r) != 14 {
		return s
	}
	return fmt.Sprintf("%s.%s.%s/%s-%s",
		string(r[:2]), string(r[2:5]), string(r[5:8]), string(r[8:12]), string(r[12:]))
}

// FormatDate formats DDMMYYYY as DD/MM/YYYY. Other lengths pass through.
func FormatDate(raw string) string {
	r := []rune(raw)
	if len(r) != 8 {
		return raw
	}
	return string(r[:2]) + "/" + string(r[2:4]) + "/" + string(r[4:])
}

// ParseDecimalStrict parses a BR-locale amount. Blank input is zero; anything
// that does not parse after normalization is an error.
func ParseDecimalStrict(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero, nil
	}
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parsing amount %q: %w", raw, err)
	}
	return d, nil
}

// ParseDecimal is ParseDecimalStrict with unparseable input read as zero.
func ParseDecimal(raw string) decimal.Decimal {
	d, err := ParseDecimalStrict(raw)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// FormatCurrency renders "R$ 1.234,56". Negative input renders as "R$ -1.234,56".
func FormatCurrency(amount decimal.Decimal) string {
	cents := amount.Round(2).Shift(2).IntPart()
	return "R$ " + currencyFormatter.Format(cents)
}

// FormatDecimalBR renders an amount the way SPED fields carry it: "1234,56".
func FormatDecimalBR(amount decimal.Decimal) string {
	return strings.Replace(amount.StringFixed(2), ".", ",", 1)
}
