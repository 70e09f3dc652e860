// Package config loads bedrocktran settings from defaults, an optional
// config file, BEDROCKTRAN_* environment variables and command-line flags.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "BEDROCKTRAN"

type Config struct {
	Region        string        `mapstructure:"region"`
	CatalogRegion string        `mapstructure:"catalog_region"`
	Profile       string        `mapstructure:"profile"`
	Timeout       time.Duration `mapstructure:"timeout"`
	MaxTokens     int           `mapstructure:"max_tokens"`
	Model         string        `mapstructure:"model"`

	LanguageSource    string `mapstructure:"language_source"`
	GoogleCredentials string `mapstructure:"google_credentials"`

	DBPath  string `mapstructure:"db"`
	History bool   `mapstructure:"history"`
	Listen  string `mapstructure:"listen"`
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("region", "us-east-1")
	v.SetDefault("catalog_region", "")
	v.SetDefault("profile", "")
	v.SetDefault("timeout", 30000*time.Second)
	v.SetDefault("max_tokens", 10000)
	v.SetDefault("model", "anthropic.claude-3-sonnet-20240229-v1:0")
	v.SetDefault("language_source", "aws")
	v.SetDefault("google_credentials", "")
	v.SetDefault("db", "./data/bedrocktran.db")
	v.SetDefault("history", false)
	v.SetDefault("listen", ":8080")
}

// New returns a viper instance with defaults and environment binding set up.
// When cfgFile is empty, bedrocktran.yaml is searched for in the working
// directory and then in $HOME; a missing file is not an error.
func New(cfgFile string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("bedrocktran")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || cfgFile != "" {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}
	return v, nil
}

// Load decodes v into a Config and validates it.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Region == "" {
		return fmt.Errorf("region must be set")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", c.Timeout)
	}
	if c.MaxTokens <= 0 {
		return fmt.Errorf("max_tokens must be positive, got %d", c.MaxTokens)
	}
	switch c.LanguageSource {
	case "aws", "google":
	default:
		return fmt.Errorf("unknown language_source %q (want aws or google)", c.LanguageSource)
	}
	return nil
}
