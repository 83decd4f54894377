package commands

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/audiper-dev/audiper/internal/demo"
	"github.com/audiper-dev/audiper/internal/report"
)

func newExportCommand(a *app) *cobra.Command {
	var xlsxOut, findingsCSV, balancesCSV string
	var useDemo bool

	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Write audit results to XLSX and CSV files",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if xlsxOut == "" && findingsCSV == "" && balancesCSV == "" {
				return errors.New("nothing to export (set --out, --findings-csv or --balances-csv)")
			}

			var rep *report.Report
			switch {
			case useDemo:
				header, _, balances := demo.Generate()
				rep = a.runner().RunBalances("demo", &header, balances)
			case len(args) == 1:
				o, err := auditFile(a.runner(), args[0])
				if err != nil {
					return a.finish(err)
				}
				if !o.OK() {
					return a.finish(fmt.Errorf("%s: %s", args[0], o.Parse.Status))
				}
				rep = o.Report
			default:
				return errors.New("no ledger given (pass a file or --demo)")
			}

			return a.finish(exportReport(cmd.OutOrStdout(), rep, xlsxOut, findingsCSV, balancesCSV))
		},
	}

	cmd.Flags().StringVarP(&xlsxOut, "out", "o", "", "XLSX workbook path")
	cmd.Flags().StringVar(&findingsCSV, "findings-csv", "", "findings CSV path")
	cmd.Flags().StringVar(&balancesCSV, "balances-csv", "", "trial balance CSV path")
	cmd.Flags().BoolVar(&useDemo, "demo", false, "export the demo ledger")

	return cmd
}

func exportReport(out io.Writer, rep *report.Report, xlsxOut, findingsCSV, balancesCSV string) error {
	if xlsxOut != "" {
		if err := writeXLSXFile(xlsxOut, rep); err != nil {
			return err
		}
		fmt.Fprintf(out, "Wrote %s\n", xlsxOut)
	}
	if findingsCSV != "" {
		if err := writeFile(findingsCSV, func(w io.Writer) error {
			return report.WriteFindingsCSV(w, rep.Findings)
		}); err != nil {
			return err
		}
		fmt.Fprintf(out, "Wrote %s\n", findingsCSV)
	}
	if balancesCSV != "" {
		if err := writeFile(balancesCSV, func(w io.Writer) error {
			return report.WriteBalancesCSV(w, rep.Balances)
		}); err != nil {
			return err
		}
		fmt.Fprintf(out, "Wrote %s\n", balancesCSV)
	}
	return nil
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}
