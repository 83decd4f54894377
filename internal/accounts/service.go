package accounts

import (
	"github.com/audiper-dev/audiper/internal/model"
)

// Service provides in-memory lookup over the chart of accounts.
//
// When the chart carries the same account code more than once, the first
// entry in file order wins; later duplicates are kept in All but never
// returned by Get and never used for enrichment.
type Service struct {
	accounts []model.ChartEntry
	byCode   map[string]model.ChartEntry
}

// NewService creates a Service from a chart sequence.
func NewService(chart []model.ChartEntry) *Service {
	byCode := make(map[string]model.ChartEntry, len(chart))
	for _, a := range chart {
		if _, dup := byCode[a.Code]; dup {
			continue
		}
		byCode[a.Code] = a
	}
	return &Service{accounts: chart, byCode: byCode}
}

// All returns every chart entry, duplicates included, in file order.
func (s *Service) All() []model.ChartEntry {
	return s.accounts
}

// Get returns the chart entry for an account code.
func (s *Service) Get(code string) (model.ChartEntry, bool) {
	a, ok := s.byCode[code]
	return a, ok
}

// Exists reports whether an account code is in the chart.
func (s *Service) Exists(code string) bool {
	_, ok := s.byCode[code]
	return ok
}

// ByNature returns all entries of the given nature.
func (s *Service) ByNature(n model.Nature) []model.ChartEntry {
	var result []model.ChartEntry
	for _, a := range s.accounts {
		if a.Nature == n {
			result = append(result, a)
		}
	}
	return result
}

// Enrich left-joins balances onto the chart by account code, preserving
// balance order. Balances without a chart entry come back with Matched false
// and zero description, nature and kind.
func (s *Service) Enrich(balances []model.BalanceEntry) []model.EnrichedBalance {
	out := make([]model.EnrichedBalance, 0, len(balances))
	for _, b := range balances {
		row := model.EnrichedBalance{BalanceEntry: b}
		if a, ok := s.byCode[b.AccountCode]; ok {
			row.Description = a.Description
			row.Nature = a.Nature
			row.Kind = a.Kind
			row.Matched = true
		}
		out = append(out, row)
	}
	return out
}
