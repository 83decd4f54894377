package commands

import (
	"fmt"
	"io"

	"github.com/audiper-dev/audiper/internal/report"
)

// render writes rep to w in the configured format.
func (a *app) render(w io.Writer, rep *report.Report, format string) error {
	if format == "" {
		format = a.cfg.Report.Format
	}

	switch format {
	case "json":
		return report.WriteJSON(w, rep, false)
	case "markdown":
		md, err := report.Markdown(rep)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, md)
		return err
	case "pretty":
		out, err := report.Pretty(rep, a.cfg.Report.Style, a.cfg.Report.Width)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, out)
		return err
	default:
		return fmt.Errorf("unknown format %q (want pretty, markdown or json)", format)
	}
}
