package accounts

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/audiper-dev/audiper/internal/model"
)

func testChart() []model.ChartEntry {
	return []model.ChartEntry{
		{Code: "1", Description: "ATIVO", NatureCode: "01", Nature: model.NatureAsset, Kind: model.KindSynthetic, KindFlag: "S", Level: "1"},
		{Code: "1.1", Description: "Caixa Geral", NatureCode: "01", Nature: model.NatureAsset, Kind: model.KindAnalytic, KindFlag: "A", Level: "2", ParentCode: "1"},
		{Code: "2", Description: "PASSIVO", NatureCode: "02", Nature: model.NatureLiability, Kind: model.KindSynthetic, KindFlag: "S", Level: "1"},
		{Code: "2.1", Description: "Fornecedores", NatureCode: "02", Nature: model.NatureLiability, Kind: model.KindAnalytic, KindFlag: "A", Level: "2", ParentCode: "2"},
	}
}

func TestNewService(t *testing.T) {
	chart := testChart()
	svc := NewService(chart)

	assert.Len(t, svc.All(), len(chart))
}

func TestGetExists(t *testing.T) {
	svc := NewService(testChart())

	acct, ok := svc.Get("1.1")
	assert.True(t, ok)
	assert.Equal(t, "Caixa Geral", acct.Description)

	_, ok = svc.Get("9.9")
	assert.False(t, ok)

	assert.True(t, svc.Exists("2.1"))
	assert.False(t, svc.Exists("9.9"))
}

func TestByNature(t *testing.T) {
	svc := NewService(testChart())

	assets := svc.ByNature(model.NatureAsset)
	assert.Len(t, assets, 2)
	for _, a := range assets {
		assert.Equal(t, model.NatureAsset, a.Nature)
	}

	assert.Empty(t, svc.ByNature(model.NatureEquity))
}

func TestDuplicateCode_FirstMatchWins(t *testing.T) {
	chart := append(testChart(), model.ChartEntry{
		Code: "1.1", Description: "Caixa Duplicada", Nature: model.NatureLiability, Kind: model.KindSynthetic,
	})
	svc := NewService(chart)

	acct, ok := svc.Get("1.1")
	require.True(t, ok)
	assert.Equal(t, "Caixa Geral", acct.Description)
	assert.Len(t, svc.All(), 5, "duplicates are kept in All")

	rows := svc.Enrich([]model.BalanceEntry{{AccountCode: "1.1"}})
	require.Len(t, rows, 1)
	assert.Equal(t, model.NatureAsset, rows[0].Nature)
	assert.Equal(t, model.KindAnalytic, rows[0].Kind)
}

func TestEnrich(t *testing.T) {
	svc := NewService(testChart())
	balances := []model.BalanceEntry{
		{AccountCode: "2.1", Closing: decimal.NewFromInt(45000), ClosingPolarity: model.PolarityCredit},
		{AccountCode: "9.9", Closing: decimal.NewFromInt(10), ClosingPolarity: model.PolarityDebit},
		{AccountCode: "1.1", Closing: decimal.NewFromInt(15000), ClosingPolarity: model.PolarityDebit},
	}

	rows := svc.Enrich(balances)
	require.Len(t, rows, 3)

	// Order follows the balance sequence.
	assert.Equal(t, "2.1", rows[0].AccountCode)
	assert.Equal(t, "9.9", rows[1].AccountCode)
	assert.Equal(t, "1.1", rows[2].AccountCode)

	assert.True(t, rows[0].Matched)
	assert.Equal(t, "Fornecedores", rows[0].Description)
	assert.Equal(t, model.NatureLiability, rows[0].Nature)
	assert.True(t, rows[0].IsAnalytic())
	assert.True(t, decimal.NewFromInt(45000).Equal(rows[0].Closing))

	assert.False(t, rows[1].Matched)
	assert.Empty(t, rows[1].Description)
	assert.Equal(t, model.NatureUnknown, rows[1].Nature)
	assert.Equal(t, model.KindUnknown, rows[1].Kind)
}

func TestEnrich_Empty(t *testing.T) {
	svc := NewService(testChart())
	assert.Empty(t, svc.Enrich(nil))
}
