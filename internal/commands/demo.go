package commands

import (
	"github.com/spf13/cobra"

	"github.com/audiper-dev/audiper/internal/demo"
)

func newDemoCommand(a *app) *cobra.Command {
	var format string
	var sped bool

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Audit the built-in demo ledger",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if sped {
				return demo.WriteSPED(cmd.OutOrStdout())
			}

			header, _, balances := demo.Generate()
			rep := a.runner().RunBalances("demo", &header, balances)
			return a.finish(a.render(cmd.OutOrStdout(), rep, format))
		},
	}

	cmd.Flags().StringVar(&format, "format", "", "output format: pretty, markdown or json (default from config)")
	cmd.Flags().BoolVar(&sped, "sped", false, "print the demo ledger as ISO-8859-1 SPED text instead of auditing it")

	return cmd
}
