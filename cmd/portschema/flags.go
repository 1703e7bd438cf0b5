package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/c360/semports/errors"
)

// CLIConfig holds command-line configuration
type CLIConfig struct {
	ConfigPath  string
	LogLevel    string
	LogFormat   string
	OutDir      string
	Debug       bool
	ShowVersion bool
	Validate    bool
	Command     string
	Files       []string
}

func parseFlags(args []string, output io.Writer) (*CLIConfig, error) {
	cfg := &CLIConfig{}
	fs := flag.NewFlagSet(appName, flag.ContinueOnError)
	fs.SetOutput(output)

	// Define flags with environment variable fallback
	fs.StringVar(&cfg.ConfigPath, "config",
		getEnv("PORTSCHEMA_CONFIG", ""),
		"Path to configuration file (env: PORTSCHEMA_CONFIG)")

	fs.StringVar(&cfg.ConfigPath, "c",
		getEnv("PORTSCHEMA_CONFIG", ""),
		"Path to configuration file (env: PORTSCHEMA_CONFIG)")

	fs.StringVar(&cfg.LogLevel, "log-level", "",
		"Log level: debug, info, warn, error (overrides config)")

	fs.StringVar(&cfg.LogFormat, "log-format", "",
		"Log format: json, text (overrides config)")

	fs.StringVar(&cfg.OutDir, "out", "",
		"Output directory for exported schemas (overrides config)")

	fs.BoolVar(&cfg.Debug, "debug",
		getEnvBool("PORTSCHEMA_DEBUG", false),
		"Enable debug logging (env: PORTSCHEMA_DEBUG)")

	fs.BoolVar(&cfg.ShowVersion, "version", false, "Show version information")
	fs.BoolVar(&cfg.ShowVersion, "v", false, "Show version information")
	fs.BoolVar(&cfg.Validate, "validate", false, "Validate configuration and exit")

	fs.Usage = func() {
		printDetailedHelp(fs, output)
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	// Override log level if debug is set
	if cfg.Debug {
		cfg.LogLevel = "debug"
	}

	rest := fs.Args()
	if len(rest) > 0 {
		cfg.Command = rest[0]
		cfg.Files = rest[1:]
	}

	if err := validateFlags(cfg); err != nil {
		return nil, errors.WrapInvalid(err, "main", "parseFlags", "flag validation")
	}
	return cfg, nil
}

func validateFlags(cfg *CLIConfig) error {
	// Skip validation for special flags
	if cfg.ShowVersion || cfg.Validate {
		return nil
	}

	if cfg.ConfigPath != "" {
		if _, err := os.Stat(cfg.ConfigPath); err != nil {
			return fmt.Errorf("config file not found: %s", cfg.ConfigPath)
		}
	}

	switch cfg.Command {
	case cmdExport, cmdTypes:
		if len(cfg.Files) > 0 {
			return fmt.Errorf("%s takes no arguments, got %v", cfg.Command, cfg.Files)
		}
	case cmdCheck:
		if len(cfg.Files) == 0 {
			return fmt.Errorf("check needs at least one document")
		}
	case cmdConfig:
		if len(cfg.Files) != 1 {
			return fmt.Errorf("config needs exactly one output file, got %v", cfg.Files)
		}
	case "":
		return fmt.Errorf("missing command, want one of %s, %s, %s, %s", cmdExport, cmdCheck, cmdTypes, cmdConfig)
	default:
		return fmt.Errorf("unknown command %q", cfg.Command)
	}

	return nil
}

func printDetailedHelp(fs *flag.FlagSet, w io.Writer) {
	_, _ = fmt.Fprintf(w, `%s - Node port schema tool

Usage: %s [options] <command> [documents...]

Commands:
  export   Write a JSON Schema per node type and a manifest index
  check    Validate node attribute documents against the declared ports
  types    List types with a registered string converter
  config   Write the effective configuration to a YAML or JSON file

Options:
`, appName, appName)
	fs.PrintDefaults()
	_, _ = fmt.Fprintf(w, `
Examples:
  # Export schemas with a custom config
  %s --config=portschema.yaml export

  # Check attribute documents with debug logging
  %s --log-level=debug --log-format=text check tree.yaml

  # Capture the effective configuration, environment included
  %s config effective.yaml

  # Run with environment variables
  export PORTSCHEMA_CONFIG=/etc/portschema/config.yaml
  export PORTSCHEMA_OUT_DIR=build/schemas
  %s export

Version: %s
Build: %s
`, appName, appName, appName, appName, Version, BuildTime)
}

// Environment variable helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
