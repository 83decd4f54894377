package model

import "github.com/shopspring/decimal"

// Severity grades a finding. SeverityOK exists for display but is never
// attached to a finding.
type Severity int

const (
	SeverityOK Severity = iota
	SeverityInfo
	SeverityAttention
	SeverityCritical
)

func (s Severity) String() string {
	switch s {
	case SeverityCritical:
		return "CRÍTICO"
	case SeverityAttention:
		return "ATENÇÃO"
	case SeverityInfo:
		return "INFO"
	default:
		return "OK"
	}
}

// MarshalText renders the label.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Glyph returns the emoji shown next to the severity.
func (s Severity) Glyph() string {
	switch s {
	case SeverityCritical:
		return "🔴"
	case SeverityAttention:
		return "🟡"
	case SeverityInfo:
		return "🔵"
	default:
		return "🟢"
	}
}

// Color returns the hex display color.
func (s Severity) Color() string {
	switch s {
	case SeverityCritical:
		return "#DC2626"
	case SeverityAttention:
		return "#F59E0B"
	case SeverityInfo:
		return "#3B82F6"
	default:
		return "#10B981"
	}
}

// Finding is one reversed-balance violation.
type Finding struct {
	ID             int             `json:"id"`
	AccountCode    string          `json:"cod_conta"`
	Description    string          `json:"descricao"`
	Nature         Nature          `json:"natureza"`
	Expected       Polarity        `json:"-"`
	Actual         Polarity        `json:"-"`
	Amount         decimal.Decimal `json:"valor"`
	Severity       Severity        `json:"severidade"`
	Message        string          `json:"achado"`
	Recommendation string          `json:"recomendacao"`
}

// AuditStats tallies findings by severity.
type AuditStats struct {
	Total     int `json:"total"`
	Critical  int `json:"criticos"`
	Attention int `json:"atencao"`
	Info      int `json:"info"`
}
