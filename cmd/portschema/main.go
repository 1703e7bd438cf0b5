// Package main implements portschema, a tool that exports the port schema of
// every registered node type and checks node attribute documents against it.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"sort"

	"github.com/c360/semports/component"
	"github.com/c360/semports/componentregistry"
	"github.com/c360/semports/config"
	"github.com/c360/semports/convert"
	"github.com/c360/semports/errors"
	"github.com/c360/semports/metric"
)

// Build information constants
const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "portschema"
)

// Commands
const (
	cmdExport = "export"
	cmdCheck  = "check"
	cmdTypes  = "types"
	cmdConfig = "config"
)

func main() {
	// Add panic recovery
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		slog.Error("Application failed", "error", err, "retryable", errors.IsTransient(err), "exit_code", 1)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	cliCfg, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}

	if cliCfg.ShowVersion {
		_, _ = fmt.Fprintf(stdout, "%s %s (%s)\n", appName, Version, BuildTime)
		return nil
	}

	cfg, err := loadConfig(cliCfg)
	if err != nil {
		return err
	}

	logger := setupLogger(stderr, cfg.Logging.Level, cfg.Logging.Format)
	logger.Debug("Effective configuration", "config", cfg.String())

	if cliCfg.Validate {
		logger.Info("Configuration is valid", "config", cliCfg.ConfigPath)
		return nil
	}

	if cliCfg.Command == cmdConfig {
		if err := cfg.SaveToFile(cliCfg.Files[0]); err != nil {
			return errors.Wrap(err, "main", "run", "configuration write")
		}
		logger.Info("Configuration written", "file", cliCfg.Files[0])
		return nil
	}

	a, err := newApp(cfg, logger)
	if err != nil {
		return err
	}
	defer a.close()

	switch cliCfg.Command {
	case cmdExport:
		err = a.export(cfg.Export.OutDir)
	case cmdCheck:
		err = a.check(cliCfg.Files, stdout)
	case cmdTypes:
		err = a.listTypes(stdout)
	}

	a.reportMetrics()
	return err
}

// loadConfig layers the configuration file, environment and flags.
func loadConfig(cliCfg *CLIConfig) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	loader := config.NewLoader()
	if cliCfg.ConfigPath != "" {
		cfg, err = loader.LoadFile(cliCfg.ConfigPath)
	} else {
		cfg, err = loader.Load()
	}
	if err != nil {
		return nil, errors.Wrap(err, "main", "loadConfig", "configuration loading")
	}

	if cliCfg.LogLevel != "" {
		cfg.Logging.Level = cliCfg.LogLevel
	}
	if cliCfg.LogFormat != "" {
		cfg.Logging.Format = cliCfg.LogFormat
	}
	if cliCfg.OutDir != "" {
		cfg.Export.OutDir = cliCfg.OutDir
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// app holds the registries shared by all commands.
type app struct {
	cfg         *config.Config
	logger      *slog.Logger
	metrics     *metric.MetricsRegistry
	cli         *cliMetrics
	conversions *convert.Registry
	nodes       *component.Registry
}

// newApp builds a private conversion registry so conversion metrics and
// registration logs belong to this run, then declares every node against it.
func newApp(cfg *config.Config, logger *slog.Logger) (*app, error) {
	a := &app{
		cfg:    cfg,
		logger: logger,
	}

	var core *metric.Metrics
	if cfg.Registry.Metrics {
		var opts []metric.Option
		if cfg.Registry.RuntimeMetrics {
			opts = append(opts, metric.WithRuntimeCollectors())
		}
		a.metrics = metric.NewMetricsRegistry(opts...)
		core = a.metrics.CoreMetrics()

		cli, err := newCLIMetrics(a.metrics)
		if err != nil {
			return nil, errors.Wrap(err, "main", "newApp", "metrics setup")
		}
		a.cli = cli
	}

	a.conversions = convert.NewDefaultRegistry(convert.WithMetrics(core), convert.WithLogger(logger))
	a.nodes = component.NewRegistry(
		component.WithConversions(a.conversions),
		component.WithMetrics(core),
		component.WithLogger(logger))
	if err := componentregistry.Register(a.nodes); err != nil {
		a.close()
		return nil, errors.Wrap(err, "main", "newApp", "node registration")
	}

	if cfg.Registry.Freeze {
		a.conversions.Freeze()
	}

	logger.Debug("Registries ready",
		"manifests", a.nodes.Len(),
		"converters", a.conversions.Len(),
		"frozen", a.conversions.Frozen())
	return a, nil
}

// close releases the metrics owned by the command.
func (a *app) close() {
	a.cli.unregister()
}

// listTypes prints every type with a registered string converter.
func (a *app) listTypes(w io.Writer) error {
	for _, name := range a.conversions.Types() {
		if _, err := fmt.Fprintln(w, name); err != nil {
			return errors.Wrap(err, "main", "listTypes", "write")
		}
	}
	return nil
}

// reportMetrics logs the collected counters and gauges.
func (a *app) reportMetrics() {
	if a.metrics == nil {
		return
	}
	prefixes := []string{"semports_", appName + "_"}
	if a.cfg.Registry.RuntimeMetrics {
		prefixes = append(prefixes, "go_", "process_")
	}

	var samples []metric.Sample
	for _, prefix := range prefixes {
		got, err := metric.Summarize(a.metrics.PrometheusRegistry(), prefix)
		if err != nil {
			a.logger.Warn("Failed to gather metrics", "prefix", prefix, "error", err)
			return
		}
		samples = append(samples, got...)
	}
	for _, s := range samples {
		attrs := []any{"metric", s.Name, "value", s.Value}
		keys := make([]string, 0, len(s.Labels))
		for k := range s.Labels {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			attrs = append(attrs, k, s.Labels[k])
		}
		a.logger.Debug("Metric", attrs...)
	}
}
