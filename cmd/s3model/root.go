package main

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/s3-model/internal/config"
	"github.com/KirkDiggler/s3-model/internal/errors"
	"github.com/KirkDiggler/s3-model/internal/telemetry"
)

// app holds what every subcommand shares. It is filled in by the root
// command's PersistentPreRunE.
type app struct {
	configPath  string
	logLevel    string
	output      string
	dumpMetrics bool

	cfg       *config.Config
	logger    *logrus.Logger
	registry  *prometheus.Registry
	metrics   *telemetry.Metrics
	uninstall func()
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   "s3model",
		Short: "Inspect the S3 data model",
		Long: `s3model lists the enumerations the client understands, classifies
service error codes, and manages the object metadata cache used to make
GetObject requests conditional.`,
		SilenceUsage:       true,
		PersistentPreRunE:  a.setup,
		PersistentPostRunE: a.teardown,
	}

	cmd.PersistentFlags().StringVar(&a.configPath, "config", "", "Path to a YAML config file")
	cmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level, overrides log.level")
	cmd.PersistentFlags().StringVarP(&a.output, "output", "o", formatText, "Output format: text, json or yaml")
	cmd.PersistentFlags().BoolVar(&a.dumpMetrics, "dump-metrics", false, "Write collected metrics to stderr on exit")

	cmd.AddCommand(newVocabCmd(a))
	cmd.AddCommand(newErrorsCmd(a))
	cmd.AddCommand(newCacheCmd(a))

	return cmd
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if err := validateFormat(a.output); err != nil {
		return err
	}

	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}

	logger, err := telemetry.NewLogger(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return errors.Wrap(err, "failed to create logger")
	}

	a.cfg = cfg
	a.logger = logger
	a.registry = prometheus.NewRegistry()
	a.metrics = telemetry.NewMetrics(a.registry)
	a.uninstall = telemetry.Install(logger, a.metrics)
	return nil
}

func (a *app) teardown(cmd *cobra.Command, _ []string) error {
	if a.uninstall != nil {
		a.uninstall()
	}
	if a.dumpMetrics {
		return writeMetrics(cmd.ErrOrStderr(), a.registry)
	}
	return nil
}
