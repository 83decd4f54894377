package commands

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/audiper-dev/audiper/internal/buildinfo"
	"github.com/audiper-dev/audiper/internal/config"
	"github.com/audiper-dev/audiper/internal/logging"
	"github.com/audiper-dev/audiper/internal/metrics"
	"github.com/audiper-dev/audiper/internal/runner"
)

// app carries what every subcommand needs once flags are parsed.
type app struct {
	cfgPath     string
	logLevel    string
	logFormat   string
	metricsFile string

	cfg     *config.Config
	root    string
	logger  *slog.Logger
	metrics *metrics.Collector
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:     "audiper",
		Short:   "Audit SPED ECD ledgers for reversed balances",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.cfgPath, "config", config.FileName, "path to audiper.yaml")
	pf.StringVar(&a.logLevel, "log-level", "", "override log level (debug, info, warn, error)")
	pf.StringVar(&a.logFormat, "log-format", "", "override log format (text, json)")
	pf.StringVar(&a.metricsFile, "metrics-file", "", "write Prometheus textfile metrics here on exit")

	rootCmd.AddCommand(
		newInitCommand(),
		newAuditCommand(a),
		newDemoCommand(a),
		newSummaryCommand(a),
		newExportCommand(a),
		newCheckCommand(a),
		newServeCommand(a),
	)

	return rootCmd
}

func (a *app) load(cmd *cobra.Command) error {
	cfg, err := config.Resolve(a.cfgPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if a.logFormat != "" {
		cfg.Log.Format = a.logFormat
	}

	logger, err := logging.New(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.root = filepath.Dir(a.cfgPath)
	a.logger = logger
	a.metrics = metrics.New()
	return nil
}

// path resolves a configured path against the project root.
func (a *app) path(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(a.root, p)
}

func (a *app) runner() *runner.Runner {
	return &runner.Runner{
		Rules:    a.cfg.Rules(),
		Metrics:  a.metrics,
		AuditLog: a.path(a.cfg.Paths.AuditLog),
		Logger:   a.logger,
	}
}

// finish writes the metrics textfile, if requested, and returns err joined
// with any write failure.
func (a *app) finish(err error) error {
	if a.metricsFile == "" || a.metrics == nil {
		return err
	}
	return errors.Join(err, a.metrics.WriteTextfile(a.metricsFile))
}
