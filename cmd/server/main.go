package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/rpggio/timewizard/internal/config"
	"github.com/spf13/cobra"
)

// version is injected at build time via -ldflags.
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// cli carries state shared by every command.
type cli struct {
	configPath string
	cfg        config.Config
	logger     *slog.Logger
	logFile    io.Closer
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:   "timewizard",
		Short: "Time tracking server for biweekly pay periods",
		Long: `timewizard records hours worked per day per line code, groups days into
weeks ending on Saturday, and reports weekly and pay-period totals.

Without a subcommand it runs the server (same as "timewizard serve").`,
		Version:           version,
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
		PersistentPostRun: func(*cobra.Command, []string) { c.teardown() },
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.serve(cmd.Context())
		},
	}
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "path to a YAML config file (default $TIMEWIZARD_CONFIG_PATH)")

	root.AddCommand(
		c.serveCmd(),
		c.weekInfoCmd(),
		c.summaryCmd(),
		c.exportCmd(),
		c.importCmd(),
	)
	return root
}

func (c *cli) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	c.cfg = cfg

	// Only the HTTP server logs to stdout; everything else keeps stdout for output.
	logWriter := io.Writer(cmd.ErrOrStderr())
	if isServe(cmd) && cfg.Transport.Mode == "http" {
		logWriter = cmd.OutOrStdout()
	}
	if cfg.Log.Path != "" {
		fileWriter, file, err := newLogFileWriter(cfg.Log.Path)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "log file error: %v\n", err)
		} else {
			c.logFile = file
			logWriter = fileWriter
		}
	}
	c.logger = slog.New(slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Log.Level),
	}))
	return nil
}

func (c *cli) teardown() {
	if c.logFile != nil {
		_ = c.logFile.Close()
		c.logFile = nil
	}
}

func isServe(cmd *cobra.Command) bool {
	return cmd.Name() == "serve" || !cmd.HasParent()
}
