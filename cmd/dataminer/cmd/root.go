// Package cmd provides the CLI commands for dataminer.
package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/expki/go-dataminer/config"
	"github.com/expki/go-dataminer/logger"
	"github.com/spf13/cobra"
)

// globals are the persistent flags shared by every command.
type globals struct {
	configPath string
	logLevel   string

	cfg config.Config
}

// Execute runs the root command with a context cancelled on SIGINT/SIGTERM.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	defer logger.Sync()
	return NewRootCmd().ExecuteContext(ctx)
}

// NewRootCmd creates the root command for the dataminer CLI.
func NewRootCmd() *cobra.Command {
	g := &globals{}

	cmd := &cobra.Command{
		Use:   "dataminer",
		Short: "Row similarity kernels, array exercises and a catalog scraper",
		Long: `dataminer bundles small data-mining tools:

  similarity   pairwise cosine similarity of matrix rows after mean/std/top-N transforms
  multiply     dense matrix product
  exercise     array warm-ups (checkerboard, outliers, distances)
  scrape       fetch a product catalog and export it as CSV`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return g.load(cmd)
		},
	}

	cmd.PersistentFlags().StringVarP(&g.configPath, "config", "c", "", "Path to a JSON config file (see sample-config)")
	cmd.PersistentFlags().StringVar(&g.logLevel, "log-level", "", "Log level: debug, info, warn, error")

	cmd.AddCommand(
		newSimilarityCmd(g),
		newMultiplyCmd(g),
		newExerciseCmd(g),
		newScrapeCmd(g),
		newSampleConfigCmd(),
	)
	return cmd
}

func (g *globals) load(cmd *cobra.Command) error {
	g.cfg = config.Default()
	if g.configPath != "" {
		cfg, err := config.LoadConfig(g.configPath)
		if err != nil {
			return err
		}
		g.cfg = cfg
	}
	if g.logLevel != "" {
		g.cfg.LogLevel = config.LogLevel(g.logLevel)
	}
	if err := logger.Initialize(g.cfg.LogLevel.Zap()); err != nil {
		return err
	}
	logger.Sugar().Debugf("configuration loaded from %q", g.configPath)
	return nil
}
