package report

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/charmbracelet/glamour"

	"github.com/audiper-dev/audiper/internal/audit"
	"github.com/audiper-dev/audiper/internal/fields"
	"github.com/audiper-dev/audiper/internal/model"
)

const markdownTemplate = `# Auditoria de {{ .TestName }}

**Empresa:** {{ .Company }}  
**CNPJ:** {{ .TaxID }}  
**Período:** {{ .Period }}  
**Gerado em:** {{ .Generated }}{{ if .Source }}  
**Arquivo:** {{ .Source }}{{ end }}

## Resumo

| Severidade | Quantidade |
|:---|---:|
| 🔴 CRÍTICO | {{ .Stats.Critical }} |
| 🟡 ATENÇÃO | {{ .Stats.Attention }} |
| 🔵 INFO | {{ .Stats.Info }} |
| **Total** | **{{ .Stats.Total }}** |

Contas no balancete: {{ .TotalAccounts }} ({{ .AnalyticAccounts }} analíticas)
{{- if .Natures }}

| Natureza | Contas | Total |
|:---|---:|---:|
{{- range .Natures }}
| {{ .Label }} | {{ .Count }} | {{ .Total }} |
{{- end }}
{{- end }}

## Achados
{{ if .Findings }}
| # | Conta | Descrição | Esperado | Encontrado | Valor | Severidade |
|---:|:---|:---|:---|:---|---:|:---|
{{- range .Findings }}
| {{ .ID }} | {{ .Code }} | {{ .Description }} | {{ .Expected }} | {{ .Actual }} | {{ .Amount }} | {{ .Glyph }} {{ .Severity }} |
{{- end }}
{{ range .Findings }}
### {{ .Glyph }} {{ .Code }} {{ .Description }}

{{ .Message }}

> {{ .Recommendation }}
{{ end }}
{{- else }}
🟢 Nenhum achado encontrado.
{{ end -}}
`

var mdTemplate = template.Must(template.New("report").Parse(markdownTemplate))

type markdownView struct {
	TestName         string
	Company          string
	TaxID            string
	Period           string
	Generated        string
	Source           string
	Stats            model.AuditStats
	TotalAccounts    int
	AnalyticAccounts int
	Natures          []natureView
	Findings         []findingView
}

type natureView struct {
	Label string
	Count int
	Total string
}

type findingView struct {
	ID             int
	Code           string
	Description    string
	Expected       string
	Actual         string
	Amount         string
	Severity       string
	Glyph          string
	Message        string
	Recommendation string
}

var cellEscaper = strings.NewReplacer("|", `\|`, "\n", " ")

func newMarkdownView(r *Report) markdownView {
	v := markdownView{
		TestName:         TestName,
		Company:          r.CompanyName(),
		TaxID:            r.TaxID(),
		Period:           r.Period(),
		Generated:        r.GeneratedAt(),
		Source:           r.Source,
		Stats:            r.Stats,
		TotalAccounts:    r.Summary.TotalAccounts,
		AnalyticAccounts: r.Summary.AnalyticAccounts,
	}
	for _, n := range audit.SummaryNatures {
		ns, ok := r.Summary.ByNature[n]
		if !ok {
			continue
		}
		v.Natures = append(v.Natures, natureView{Label: n.String(), Count: ns.Count, Total: ns.TotalFormatted})
	}
	for _, f := range r.Findings {
		v.Findings = append(v.Findings, findingView{
			ID:             f.ID,
			Code:           cellEscaper.Replace(f.AccountCode),
			Description:    cellEscaper.Replace(f.Description),
			Expected:       f.Expected.Label(),
			Actual:         f.Actual.Label(),
			Amount:         fields.FormatCurrency(f.Amount),
			Severity:       f.Severity.String(),
			Glyph:          f.Severity.Glyph(),
			Message:        f.Message,
			Recommendation: f.Recommendation,
		})
	}
	return v
}

// Markdown renders the report as a Markdown document.
func Markdown(r *Report) (string, error) {
	var b strings.Builder
	if err := mdTemplate.Execute(&b, newMarkdownView(r)); err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return b.String(), nil
}

// Pretty renders the report for a terminal. style is a glamour standard
// style name ("dark", "light", "notty", ...) or "auto".
func Pretty(r *Report, style string, width int) (string, error) {
	md, err := Markdown(r)
	if err != nil {
		return "", err
	}

	styleOpt := glamour.WithStandardStyle(style)
	if style == "" || style == "auto" {
		styleOpt = glamour.WithAutoStyle()
	}
	tr, err := glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(width))
	if err != nil {
		return "", fmt.Errorf("creating terminal renderer: %w", err)
	}
	out, err := tr.Render(md)
	if err != nil {
		return "", fmt.Errorf("rendering terminal report: %w", err)
	}
	return out, nil
}
