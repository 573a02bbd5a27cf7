// Package appconfig loads algotrace settings from defaults, an optional YAML file
// and ALGOTRACE_* environment variables.
package appconfig

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/comalice/algotrace/internal/core"
	"github.com/comalice/algotrace/internal/production"
	log "github.com/sirupsen/logrus"
)

// ErrInvalid marks settings that fail validation.
var ErrInvalid = errors.New("invalid configuration")

// EnvPrefix is prepended to every environment override, e.g. ALGOTRACE_CAPACITY.
const EnvPrefix = "ALGOTRACE"

// Config is the top-level application configuration.
type Config struct {
	Capacity      int    `mapstructure:"capacity" yaml:"capacity"`
	MaxArraySize  int    `mapstructure:"max_array_size" yaml:"max_array_size"`
	StackCapacity int    `mapstructure:"stack_capacity" yaml:"stack_capacity"`
	QueueCapacity int    `mapstructure:"queue_capacity" yaml:"queue_capacity"`
	OutputDir     string `mapstructure:"output_dir" yaml:"output_dir"`
	StepsFile     string `mapstructure:"steps_file" yaml:"steps_file"`
	ConfigFile    string `mapstructure:"config_file" yaml:"config_file"`
	ArchiveDir    string `mapstructure:"archive_dir" yaml:"archive_dir"`
	ArchiveFormat string `mapstructure:"archive_format" yaml:"archive_format"`
	LogLevel      string `mapstructure:"log_level" yaml:"log_level"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{
		Capacity:      core.DefaultCapacity,
		MaxArraySize:  core.DefaultMaxArraySize,
		StackCapacity: core.DefaultStackCapacity,
		QueueCapacity: core.DefaultQueueCapacity,
		OutputDir:     ".",
		StepsFile:     production.DefaultStepsFile,
		ConfigFile:    production.DefaultConfigFile,
		ArchiveDir:    "",
		ArchiveFormat: production.FormatJSON,
		LogLevel:      log.InfoLevel.String(),
	}
}

// DefaultConfigPath returns $XDG_CONFIG_HOME/algotrace/config.yaml, falling back to
// the platform's user config directory.
func DefaultConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Wrap(err, "locate user config dir")
	}
	return filepath.Join(dir, "algotrace", "config.yaml"), nil
}

// Validate checks limits, the archive format and the log level.
func (c Config) Validate() error {
	positive := []struct {
		key string
		val int
	}{
		{"capacity", c.Capacity},
		{"max_array_size", c.MaxArraySize},
		{"stack_capacity", c.StackCapacity},
		{"queue_capacity", c.QueueCapacity},
	}
	for _, p := range positive {
		if p.val <= 0 {
			return errors.Mark(errors.Newf("%s must be positive, got %d", p.key, p.val), ErrInvalid)
		}
	}
	switch c.ArchiveFormat {
	case production.FormatJSON, production.FormatYAML:
	default:
		return errors.Mark(errors.Newf("archive_format must be json or yaml, got %q", c.ArchiveFormat), ErrInvalid)
	}
	if c.StepsFile == "" || c.ConfigFile == "" {
		return errors.Mark(errors.New("steps_file and config_file are required"), ErrInvalid)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel.
func (c Config) Level() (log.Level, error) {
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel, errors.Mark(errors.Wrap(err, "log_level"), ErrInvalid)
	}
	return lvl, nil
}

// RunOptions translates the limits into run options.
func (c Config) RunOptions() []core.Option {
	return []core.Option{
		core.WithCapacity(c.Capacity),
		core.WithMaxArraySize(c.MaxArraySize),
		core.WithStackCapacity(c.StackCapacity),
		core.WithQueueCapacity(c.QueueCapacity),
	}
}

// Exporter returns the exporter described by the output settings.
func (c Config) Exporter() *production.Exporter {
	return &production.Exporter{Dir: c.OutputDir, StepsFile: c.StepsFile, ConfigFile: c.ConfigFile}
}
