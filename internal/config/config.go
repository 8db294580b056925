package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/bstardust/imagegps/pkg/common"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by Load
const EnvPrefix = "IMAGEGPS"

// Output formats
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config represents the application configuration
type Config struct {
	LogLevel    string   `mapstructure:"log-level"`
	Zoom        string   `mapstructure:"zoom"`
	Concurrency int      `mapstructure:"concurrency"`
	Format      string   `mapstructure:"format"`
	S3          S3Config `mapstructure:"s3"`
}

// S3Config represents S3 connection configuration
type S3Config struct {
	Endpoint  string `mapstructure:"endpoint"`
	Region    string `mapstructure:"region"`
	AccessKey string `mapstructure:"access-key"`
	SecretKey string `mapstructure:"secret-key"`
	UseSSL    bool   `mapstructure:"use-ssl"`
}

// New creates a new configuration with default values
func New() *Config {
	return &Config{
		LogLevel:    "info",
		Zoom:        "16",
		Concurrency: 4,
		Format:      FormatText,
		S3: S3Config{
			Region: "us-east-1",
			UseSSL: true,
		},
	}
}

// flagKeys maps command line flag names to configuration keys
var flagKeys = map[string]string{
	"log-level":   "log-level",
	"zoom":        "zoom",
	"concurrency": "concurrency",
	"format":      "format",
	"endpoint":    "s3.endpoint",
	"region":      "s3.region",
	"access-key":  "s3.access-key",
	"secret-key":  "s3.secret-key",
	"use-ssl":     "s3.use-ssl",
}

// Load builds the configuration from, in increasing precedence: defaults,
// the optional config file at path, a .env file, IMAGEGPS_* environment
// variables and flags that were set explicitly.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	// A missing .env file is not an error
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()
	setDefaults(v, New())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			flag := flags.Lookup(name)
			if flag == nil || !flag.Changed {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("log-level", cfg.LogLevel)
	v.SetDefault("zoom", cfg.Zoom)
	v.SetDefault("concurrency", cfg.Concurrency)
	v.SetDefault("format", cfg.Format)
	v.SetDefault("s3.endpoint", cfg.S3.Endpoint)
	v.SetDefault("s3.region", cfg.S3.Region)
	v.SetDefault("s3.access-key", cfg.S3.AccessKey)
	v.SetDefault("s3.secret-key", cfg.S3.SecretKey)
	v.SetDefault("s3.use-ssl", cfg.S3.UseSSL)
}

// Validate checks the settings that have no sensible fallback. Zoom is kept
// as text and not checked here: non-numeric or out of range values are
// ignored by the records.
func (c *Config) Validate() error {
	switch c.Format {
	case FormatText, FormatJSON:
	default:
		return common.NewConfigError(fmt.Sprintf("unknown output format %q", c.Format))
	}

	if c.Concurrency < 1 {
		return common.NewConfigError(fmt.Sprintf("concurrency must be at least 1, got %d", c.Concurrency))
	}

	return nil
}
