package model

// Nature is the top-level accounting classification of an account (COD_NAT).
type Nature int

const (
	NatureUnknown Nature = iota // unmapped or missing nature code
	NatureAsset
	NatureLiability
	NatureEquity
	NatureResult
	NatureOffset
	NatureOther
)

var natureLabels = map[Nature]string{
	NatureAsset:     "ATIVO",
	NatureLiability: "PASSIVO",
	NatureEquity:    "PATRIMÔNIO LÍQUIDO",
	NatureResult:    "RESULTADO",
	NatureOffset:    "COMPENSAÇÃO",
	NatureOther:     "OUTRAS",
}

var natureCodes = map[string]Nature{
	"01": NatureAsset,
	"02": NatureLiability,
	"03": NatureEquity,
	"04": NatureResult,
	"05": NatureOffset,
	"09": NatureOther,
}

// NatureFromCode maps a two-digit COD_NAT to a Nature. Unmapped codes yield NatureUnknown.
func NatureFromCode(code string) Nature {
	return natureCodes[code]
}

// String returns the display label, "N/A" for NatureUnknown.
func (n Nature) String() string {
	if l, ok := natureLabels[n]; ok {
		return l
	}
	return "N/A"
}

// MarshalText renders the label so JSON keys and values carry the display form.
func (n Nature) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

// AccountKind distinguishes aggregating (synthetic) from postable (analytic) accounts.
type AccountKind int

const (
	KindUnknown AccountKind = iota
	KindSynthetic
	KindAnalytic
)

// KindFromFlag maps the IND_CTA flag ("S" or "A").
func KindFromFlag(flag string) AccountKind {
	switch flag {
	case "S":
		return KindSynthetic
	case "A":
		return KindAnalytic
	default:
		return KindUnknown
	}
}

// Flag returns the single-letter IND_CTA code, or "" for KindUnknown.
func (k AccountKind) Flag() string {
	switch k {
	case KindSynthetic:
		return "S"
	case KindAnalytic:
		return "A"
	default:
		return ""
	}
}

func (k AccountKind) String() string {
	switch k {
	case KindSynthetic:
		return "Sintética"
	case KindAnalytic:
		return "Analítica"
	default:
		return "N/A"
	}
}

// MarshalText renders the IND_CTA flag.
func (k AccountKind) MarshalText() ([]byte, error) {
	return []byte(k.Flag()), nil
}

// ChartEntry is one I050 record of the chart of accounts.
type ChartEntry struct {
	Code        string      `json:"cod_conta"`
	Description string      `json:"descricao"`
	NatureCode  string      `json:"cod_natureza"`
	Nature      Nature      `json:"natureza"`
	Kind        AccountKind `json:"tipo_conta"`
	KindFlag    string      `json:"-"` // raw IND_CTA as found in the file
	Level       string      `json:"nivel"`
	ParentCode  string      `json:"conta_superior"`
}

// CompanyHeader is the 0000 opening record.
type CompanyHeader struct {
	Name        string `json:"nome"`
	TaxID       string `json:"cnpj"`
	State       string `json:"uf"`
	PeriodStart string `json:"data_inicio"` // DD/MM/YYYY
	PeriodEnd   string `json:"data_fim"`    // DD/MM/YYYY
}

// Period returns "start a end" for display.
func (h CompanyHeader) Period() string {
	return h.PeriodStart + " a " + h.PeriodEnd
}
