package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/audiper-dev/audiper/internal/accounts"
	"github.com/audiper-dev/audiper/internal/sped"
)

func newCheckCommand(a *app) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "check <file>",
		Short: "Report ledger integrity problems",
		Long: "Lists duplicate account codes, unknown parents, unmapped natures or " +
			"kinds, balances with no chart entry and malformed records. " +
			"Problems are warnings unless --strict is set.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd.OutOrStdout(), args[0], strict)
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "exit with an error when problems are found")

	return cmd
}

func runCheck(out io.Writer, path string, strict bool) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening ledger: %w", err)
	}
	defer f.Close()

	res, err := sped.ParseReader(f)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, res.Status)
	fmt.Fprintf(out, "Registros: %d I050, %d I155, %d descartados\n",
		res.Counts[sped.TagChart], res.Counts[sped.TagBalance], res.Dropped)

	issues := accounts.Check(res.Chart, res.Balances)
	for _, i := range issues {
		fmt.Fprintln(out, i)
	}
	if len(issues) == 0 && res.Dropped == 0 {
		fmt.Fprintln(out, "No problems found")
		return nil
	}

	if strict {
		return fmt.Errorf("%d problem(s), %d malformed record(s)", len(issues), res.Dropped)
	}
	return nil
}
