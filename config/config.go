package config

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/c360/semports/errors"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "PORTSCHEMA"

// CurrentVersion is the newest configuration version this build understands.
const CurrentVersion = "1.0.0"

// Export formats
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Config is the configuration of the portschema tool.
type Config struct {
	Version  string         `yaml:"version"  json:"version"`
	Logging  LoggingConfig  `yaml:"logging"  json:"logging"`
	Export   ExportConfig   `yaml:"export"   json:"export"`
	Registry RegistryConfig `yaml:"registry" json:"registry"`
}

// LoggingConfig selects the slog handler.
type LoggingConfig struct {
	Level  string `yaml:"level"  json:"level"`  // debug, info, warn, error
	Format string `yaml:"format" json:"format"` // json or text
}

// ExportConfig controls schema export.
type ExportConfig struct {
	OutDir     string   `yaml:"out_dir"               json:"out_dir"`
	Formats    []string `yaml:"formats"               json:"formats"`
	MetaSchema string   `yaml:"meta_schema,omitempty" json:"meta_schema,omitempty"` // JSON Schema every export must satisfy
}

// RegistryConfig controls the conversion and manifest registries.
type RegistryConfig struct {
	Freeze         bool `yaml:"freeze"          json:"freeze"`          // freeze the conversion registry after start-up
	Metrics        bool `yaml:"metrics"         json:"metrics"`         // collect and report prometheus metrics
	RuntimeMetrics bool `yaml:"runtime_metrics" json:"runtime_metrics"` // add Go runtime and process collectors
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Version: CurrentVersion,
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Export: ExportConfig{
			OutDir:  "schemas",
			Formats: []string{FormatJSON, FormatYAML},
		},
		Registry: RegistryConfig{
			Freeze:  true,
			Metrics: true,
		},
	}
}

// Validate checks the configuration for invalid values
func (c *Config) Validate() error {
	cmp, err := CompareVersions(c.Version, CurrentVersion)
	if err != nil {
		return invalid("version", err)
	}
	if cmp > 0 {
		return invalid("version", fmt.Errorf("%s is newer than the supported %s", c.Version, CurrentVersion))
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return invalid("logging.level", fmt.Errorf("unknown level %q", c.Logging.Level))
	}

	switch c.Logging.Format {
	case "json", "text":
	default:
		return invalid("logging.format", fmt.Errorf("unknown format %q", c.Logging.Format))
	}

	if c.Export.OutDir == "" {
		return invalid("export.out_dir", errors.ErrMissingConfig)
	}
	if len(c.Export.Formats) == 0 {
		return invalid("export.formats", fmt.Errorf("%w: at least one format is required", errors.ErrMissingConfig))
	}
	for _, f := range c.Export.Formats {
		if f != FormatJSON && f != FormatYAML {
			return invalid("export.formats", fmt.Errorf("unknown format %q", f))
		}
	}

	return nil
}

func invalid(field string, cause error) error {
	return errors.WrapInvalid(
		fmt.Errorf("%w: %s: %w", errors.ErrInvalidConfig, field, cause),
		"Config", "Validate", field+" validation")
}

// HasFormat reports whether exports should be written in format f.
func (c *Config) HasFormat(f string) bool {
	for _, have := range c.Export.Formats {
		if have == f {
			return true
		}
	}
	return false
}

// Loader handles configuration loading with layers and overrides
type Loader struct {
	layers    []string
	envPrefix string
}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{
		layers:    []string{},
		envPrefix: EnvPrefix,
	}
}

// AddLayer adds a configuration file layer
func (l *Loader) AddLayer(path string) {
	l.layers = append(l.layers, path)
}

// LoadFile loads configuration from a single file, replacing any layers.
func (l *Loader) LoadFile(path string) (*Config, error) {
	l.layers = []string{path}
	return l.Load()
}

// Load starts from Default, applies each layer in order, then environment
// overrides. A layer only overrides the keys it sets; lists are replaced.
// JSON layers are accepted since JSON is valid YAML. The result is not
// validated, so callers can apply their own overrides before Validate.
func (l *Loader) Load() (*Config, error) {
	cfg := Default()

	for _, path := range l.layers {
		if err := l.applyLayer(cfg, path); err != nil {
			return nil, errors.Wrap(err, "Loader", "Load", "layer "+path)
		}
	}

	if err := l.applyEnvOverrides(cfg); err != nil {
		return nil, errors.Wrap(err, "Loader", "Load", "environment overrides")
	}

	return cfg, nil
}

func (l *Loader) applyLayer(cfg *Config, path string) error {
	data, err := ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return errors.WrapInvalid(
			fmt.Errorf("%w: %s: %w", errors.ErrConfigNotFound, path, err),
			"Loader", "applyLayer", "file lookup")
	}
	if err != nil {
		return err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return errors.WrapInvalid(
			fmt.Errorf("%w: %v", errors.ErrParsingFailed, err),
			"Loader", "applyLayer", "YAML decoding")
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides
func (l *Loader) applyEnvOverrides(cfg *Config) error {
	overrides := []struct {
		key   string
		apply func(string) error
	}{
		{"_LOG_LEVEL", func(v string) error { cfg.Logging.Level = v; return nil }},
		{"_LOG_FORMAT", func(v string) error { cfg.Logging.Format = v; return nil }},
		{"_OUT_DIR", func(v string) error { cfg.Export.OutDir = v; return nil }},
		{"_FORMATS", func(v string) error { cfg.Export.Formats = strings.Split(v, ","); return nil }},
		{"_META_SCHEMA", func(v string) error { cfg.Export.MetaSchema = v; return nil }},
		{"_FREEZE", func(v string) error {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return err
			}
			cfg.Registry.Freeze = b
			return nil
		}},
	}

	for _, o := range overrides {
		key := l.envPrefix + o.key
		val := os.Getenv(key)
		if val == "" {
			continue
		}
		if err := validateEnvVar(key, val); err != nil {
			return errors.WrapInvalid(err, "Loader", "applyEnvOverrides", key)
		}
		if err := o.apply(val); err != nil {
			return errors.WrapInvalid(
				fmt.Errorf("%w: %s=%q: %v", errors.ErrInvalidConfig, key, val, err),
				"Loader", "applyEnvOverrides", key)
		}
	}
	return nil
}

// SaveToFile saves the configuration as YAML
func (c *Config) SaveToFile(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "Config", "SaveToFile", "YAML encoding")
	}
	return WriteFile(path, data)
}

// String returns a YAML representation of the config
func (c *Config) String() string {
	data, _ := yaml.Marshal(c)
	return string(data)
}

// CompareVersions compares two semver version strings
// Returns:
//
//	-1 if v1 < v2
//	 0 if v1 == v2
//	 1 if v1 > v2
//	error if either version is invalid
func CompareVersions(v1, v2 string) (int, error) {
	major1, minor1, patch1, err := parseSemVer(v1)
	if err != nil {
		return 0, fmt.Errorf("invalid version '%s': %w", v1, err)
	}

	major2, minor2, patch2, err := parseSemVer(v2)
	if err != nil {
		return 0, fmt.Errorf("invalid version '%s': %w", v2, err)
	}

	for _, pair := range [][2]int{{major1, major2}, {minor1, minor2}, {patch1, patch2}} {
		if pair[0] > pair[1] {
			return 1, nil
		}
		if pair[0] < pair[1] {
			return -1, nil
		}
	}
	return 0, nil
}

// parseSemVer parses a semantic version string (e.g., "1.2.3")
// Returns major, minor, patch, error
func parseSemVer(version string) (int, int, int, error) {
	if version == "" {
		return 0, 0, 0, fmt.Errorf("version cannot be empty")
	}

	version = strings.TrimPrefix(version, "v")

	parts := strings.Split(version, ".")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("version must be in format 'major.minor.patch', got '%s'", version)
	}

	nums := make([]int, 3)
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return 0, 0, 0, fmt.Errorf("invalid version component '%s'", part)
		}
		nums[i] = n
	}

	return nums[0], nums[1], nums[2], nil
}
