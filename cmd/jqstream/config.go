package main

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config resolves jqstream's runtime defaults from environment variables
// and an optional .jqstreamrc file, the way conduit's internal/cli/config
// layers its own settings over viper. Command-line flags are not read here;
// the run command combines them with these values itself.
type Config struct {
	Pretty   bool   `mapstructure:"pretty"`
	Indent   string `mapstructure:"indent"`
	Suppress bool   `mapstructure:"suppress"`
	Verbose  bool   `mapstructure:"verbose"`
}

// LoadConfig reads .jqstreamrc (if present) and JQSTREAM_*-prefixed
// environment variables, falling back to built-in defaults.
func LoadConfig() (*Config, error) {
	v := viper.New()

	v.SetDefault("pretty", false)
	v.SetDefault("indent", "  ")
	v.SetDefault("suppress", false)
	v.SetDefault("verbose", false)

	v.SetConfigName(".jqstreamrc")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME")

	v.SetEnvPrefix("JQSTREAM")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read .jqstreamrc: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}
