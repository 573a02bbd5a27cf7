package appconfig

import (
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"
)

// Load reads configuration from the provided path. If path is empty, uses
// DefaultConfigPath. A missing file leaves the defaults in place; environment
// variables override both.
func Load(path string) (Config, error) {
	if path == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			return Config{}, err
		}
		path = defaultPath
	}

	cfg := DefaultConfig()

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetDefault("capacity", cfg.Capacity)
	v.SetDefault("max_array_size", cfg.MaxArraySize)
	v.SetDefault("stack_capacity", cfg.StackCapacity)
	v.SetDefault("queue_capacity", cfg.QueueCapacity)
	v.SetDefault("output_dir", cfg.OutputDir)
	v.SetDefault("steps_file", cfg.StepsFile)
	v.SetDefault("config_file", cfg.ConfigFile)
	v.SetDefault("archive_dir", cfg.ArchiveDir)
	v.SetDefault("archive_format", cfg.ArchiveFormat)
	v.SetDefault("log_level", cfg.LogLevel)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return Config{}, errors.Wrapf(err, "read config %s", path)
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "decode config")
	}
	cfg.OutputDir = os.ExpandEnv(cfg.OutputDir)
	cfg.ArchiveDir = os.ExpandEnv(cfg.ArchiveDir)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
