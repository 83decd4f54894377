package accounts

import (
	"fmt"

	"github.com/audiper-dev/audiper/internal/model"
)

// IssueKind identifies a ledger integrity problem.
type IssueKind string

const (
	IssueDuplicateCode    IssueKind = "duplicate-code"
	IssueUnknownParent    IssueKind = "unknown-parent"
	IssueUnmappedNature   IssueKind = "unmapped-nature"
	IssueUnknownKind      IssueKind = "unknown-kind"
	IssueUnmatchedBalance IssueKind = "unmatched-balance"
)

// Issue describes one integrity problem. Issues are warnings: none of them
// stop an audit.
type Issue struct {
	Kind        IssueKind
	AccountCode string
	Description string
}

func (i Issue) String() string {
	return fmt.Sprintf("%s [%s]: %s", i.Kind, i.AccountCode, i.Description)
}

// Check inspects a parsed chart and its balances for problems that affect
// how the audit reads them.
func Check(chart []model.ChartEntry, balances []model.BalanceEntry) []Issue {
	var issues []Issue

	codes := make(map[string]int, len(chart))
	for _, a := range chart {
		codes[a.Code]++
	}

	reported := make(map[string]bool)
	for _, a := range chart {
		// Duplicates: report once per code.
		if codes[a.Code] > 1 && !reported[a.Code] {
			reported[a.Code] = true
			issues = append(issues, Issue{
				Kind:        IssueDuplicateCode,
				AccountCode: a.Code,
				Description: fmt.Sprintf("code appears %d times, first entry used", codes[a.Code]),
			})
		}

		if a.ParentCode != "" && codes[a.ParentCode] == 0 {
			issues = append(issues, Issue{
				Kind:        IssueUnknownParent,
				AccountCode: a.Code,
				Description: fmt.Sprintf("parent %q not in chart", a.ParentCode),
			})
		}

		if a.Nature == model.NatureUnknown {
			issues = append(issues, Issue{
				Kind:        IssueUnmappedNature,
				AccountCode: a.Code,
				Description: fmt.Sprintf("nature code %q has no mapping", a.NatureCode),
			})
		}

		if a.Kind == model.KindUnknown {
			issues = append(issues, Issue{
				Kind:        IssueUnknownKind,
				AccountCode: a.Code,
				Description: fmt.Sprintf("account kind %q is neither S nor A", a.KindFlag),
			})
		}
	}

	for _, b := range balances {
		if codes[b.AccountCode] == 0 {
			issues = append(issues, Issue{
				Kind:        IssueUnmatchedBalance,
				AccountCode: b.AccountCode,
				Description: "balance has no chart entry, excluded from rules",
			})
		}
	}

	return issues
}
