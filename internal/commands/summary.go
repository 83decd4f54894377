package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/audiper-dev/audiper/internal/audit"
	"github.com/audiper-dev/audiper/internal/sped"
)

func newSummaryCommand(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "summary <file>",
		Short: "Show trial balance totals per nature",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.finish(a.runSummary(cmd.OutOrStdout(), args[0], asJSON))
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")

	return cmd
}

func (a *app) runSummary(out io.Writer, path string, asJSON bool) error {
	o, err := auditFile(a.runner(), path)
	if err != nil {
		return err
	}
	if !o.OK() {
		return fmt.Errorf("%s: %s", path, o.Parse.Status)
	}

	s := o.Report.Summary
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(s)
	}

	printHeader(out, o.Parse)
	fmt.Fprintf(out, "Contas: %d (%d analíticas)\n\n", s.TotalAccounts, s.AnalyticAccounts)

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Natureza\tContas\tTotal\t")
	for _, n := range audit.SummaryNatures {
		ns, ok := s.ByNature[n]
		if !ok {
			continue
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\t\n", n, ns.Count, ns.TotalFormatted)
	}
	return tw.Flush()
}

func printHeader(out io.Writer, res sped.Result) {
	if res.Header == nil {
		return
	}
	fmt.Fprintf(out, "%s (%s) %s\n", res.Header.Name, res.Header.TaxID, res.Header.Period())
}
