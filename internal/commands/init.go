package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/audiper-dev/audiper/internal/config"
	"github.com/audiper-dev/audiper/internal/demo"
)

func newInitCommand() *cobra.Command {
	var withDemo bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new audiper project",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(cmd.OutOrStdout(), absDir, withDemo)
		},
	}

	cmd.Flags().BoolVar(&withDemo, "with-demo", false, "place the demo ledger in the inbox")

	return cmd
}

func runInit(out io.Writer, dir string, withDemo bool) error {
	cfgPath := filepath.Join(dir, config.FileName)
	if _, err := os.Stat(cfgPath); err == nil {
		return fmt.Errorf("%s already exists", cfgPath)
	}

	cfg := config.Default()

	// Create directory structure.
	dirs := []string{
		cfg.Paths.Inbox,
		cfg.Paths.Processed,
		cfg.Paths.Reports,
		filepath.Dir(cfg.Paths.AuditLog),
	}
	for _, d := range dirs {
		if err := os.MkdirAll(filepath.Join(dir, d), 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", d, err)
		}
	}

	if err := config.Save(cfgPath, cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	// Ledgers and reports carry client data.
	gitignore := cfg.Paths.Inbox + "/\n" + cfg.Paths.Reports + "/\n" + filepath.Dir(cfg.Paths.AuditLog) + "/\n.env\n"
	if err := os.WriteFile(filepath.Join(dir, ".gitignore"), []byte(gitignore), 0o644); err != nil {
		return fmt.Errorf("writing .gitignore: %w", err)
	}

	if withDemo {
		f, err := os.Create(filepath.Join(dir, cfg.Paths.Inbox, "demo.txt"))
		if err != nil {
			return fmt.Errorf("creating demo ledger: %w", err)
		}
		defer f.Close()
		if err := demo.WriteSPED(f); err != nil {
			return err
		}
	}

	fmt.Fprintf(out, "Initialized audiper project at %s\n", dir)
	return nil
}
