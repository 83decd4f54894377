package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/audiper-dev/audiper/internal/inbox"
	"github.com/audiper-dev/audiper/internal/report"
	"github.com/audiper-dev/audiper/internal/runner"
)

func newAuditCommand(a *app) *cobra.Command {
	var format string
	var fromInbox bool

	cmd := &cobra.Command{
		Use:   "audit [file...]",
		Short: "Check SPED ECD ledgers for reversed balances",
		Long: "Parses each ledger, flags analytic accounts whose closing balance " +
			"contradicts their nature and prints a report. With --inbox, every ledger " +
			"in the configured inbox is audited, an XLSX report is written for each " +
			"and the ledger is moved to the processed directory.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if fromInbox {
				return a.finish(a.runInbox(cmd.OutOrStdout(), format))
			}
			if len(args) == 0 {
				return errors.New("no ledger given (pass files or --inbox)")
			}
			return a.finish(a.runAudit(cmd.OutOrStdout(), args, format))
		},
	}

	cmd.Flags().StringVar(&format, "format", "", "output format: pretty, markdown or json (default from config)")
	cmd.Flags().BoolVar(&fromInbox, "inbox", false, "audit every ledger in the inbox")

	return cmd
}

// auditFile opens path and runs it through r.
func auditFile(r *runner.Runner, path string) (*runner.Outcome, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening ledger: %w", err)
	}
	defer f.Close()
	return r.Run(path, f)
}

func (a *app) runAudit(out io.Writer, paths []string, format string) error {
	r := a.runner()

	var incomplete []string
	for _, p := range paths {
		o, err := auditFile(r, p)
		if err != nil {
			return err
		}
		if !o.OK() {
			fmt.Fprintf(out, "%s: %s\n", p, o.Parse.Status)
			incomplete = append(incomplete, p)
			continue
		}
		if err := a.render(out, o.Report, format); err != nil {
			return err
		}
	}

	if len(incomplete) > 0 {
		return fmt.Errorf("incomplete ledger(s): %s", strings.Join(incomplete, ", "))
	}
	return nil
}

func (a *app) runInbox(out io.Writer, format string) error {
	dir := a.path(a.cfg.Paths.Inbox)
	files, err := inbox.Scan(dir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Fprintf(out, "No ledgers in %s\n", dir)
		return nil
	}

	reportsDir := a.path(a.cfg.Paths.Reports)
	if err := os.MkdirAll(reportsDir, 0o755); err != nil {
		return fmt.Errorf("creating reports dir: %w", err)
	}

	r := a.runner()
	var incomplete []string
	for _, fi := range files {
		o, err := auditFile(r, fi.Path)
		if err != nil {
			return err
		}
		if !o.OK() {
			fmt.Fprintf(out, "%s: %s\n", fi.Name, o.Parse.Status)
			incomplete = append(incomplete, fi.Name)
			continue
		}

		xlsxPath := filepath.Join(reportsDir, strings.TrimSuffix(fi.Name, filepath.Ext(fi.Name))+".xlsx")
		if err := writeXLSXFile(xlsxPath, o.Report); err != nil {
			return err
		}
		if err := a.render(out, o.Report, format); err != nil {
			return err
		}
		if err := inbox.MarkProcessed(dir, a.path(a.cfg.Paths.Processed), fi.Name); err != nil {
			return err
		}
		fmt.Fprintf(out, "%s: %d achado(s), relatório em %s\n", fi.Name, o.Report.Stats.Total, xlsxPath)
	}

	if len(incomplete) > 0 {
		return fmt.Errorf("incomplete ledger(s) left in inbox: %s", strings.Join(incomplete, ", "))
	}
	return nil
}

func writeXLSXFile(path string, rep *report.Report) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := report.WriteXLSX(f, rep); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}
