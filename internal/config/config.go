// Package config loads the CLI configuration from aide.yaml, AIDE_* environment
// variables (optionally seeded from a .env file) and command-line flags.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/aretw0/aide/internal/platform"
	"github.com/aretw0/aide/pkg/core"
	"github.com/aretw0/aide/pkg/typed"
)

const (
	EnvPrefix = "AIDE"
	FileName  = "aide"

	defaultDataDir    = "data"
	defaultLogLevel   = "info"
	defaultIDStrategy = string(typed.IDFromCount)
)

// Keys understood in aide.yaml and as AIDE_<KEY> environment variables.
const (
	KeyDataDir    = "data_dir"
	KeyLogLevel   = "log_level"
	KeyIDStrategy = "id_strategy"
	KeyReadOnly   = "read_only"
)

type Config struct {
	DataDir    string `mapstructure:"data_dir"`
	LogLevel   string `mapstructure:"log_level"`
	IDStrategy string `mapstructure:"id_strategy"`
	ReadOnly   bool   `mapstructure:"read_only"`

	// File is the config file that was read, empty when none was found.
	File string `mapstructure:"-"`
}

// New returns a viper instance with defaults and environment binding set up.
// Flags are bound by the caller with BindPFlag before Load.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyDataDir, defaultDataDir)
	v.SetDefault(KeyLogLevel, defaultLogLevel)
	v.SetDefault(KeyIDStrategy, defaultIDStrategy)
	v.SetDefault(KeyReadOnly, false)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// LoadEnvFile seeds the process environment from a .env file.
// A missing file is not an error; variables already set are kept.
func LoadEnvFile(path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// Load reads the config file and decodes the merged configuration.
// With an explicit file it must exist. Otherwise aide.yaml is looked up in the
// working directory and in the project root, and its absence is fine.
func Load(v *viper.Viper, file string) (*Config, error) {
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName(FileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if root, err := platform.FindRoot("."); err == nil {
			v.AddConfigPath(root)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.File = v.ConfigFileUsed()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the values that have a closed set of options.
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return core.Invalid(KeyDataDir, c.DataDir, errors.New("must not be empty"))
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	if _, err := typed.ParseIDStrategy(c.IDStrategy); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel (debug, info, warn, error).
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, core.Invalid(KeyLogLevel, c.LogLevel, err)
	}
	return level, nil
}

// Options translates the configuration into workspace options.
func (c *Config) Options() []platform.Option {
	strategy, _ := typed.ParseIDStrategy(c.IDStrategy)
	return []platform.Option{
		platform.WithIDStrategy(strategy),
		platform.WithReadOnly(c.ReadOnly),
	}
}
