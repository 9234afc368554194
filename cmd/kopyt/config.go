package main

import (
	"fmt"

	"github.com/spf13/viper"
)

// cliConfig is the optional batch/CI configuration for the kopyt CLI,
// read from .kopyt.yaml (or environment variables prefixed KOPYT_).
type cliConfig struct {
	Format         string `mapstructure:"format"`
	RetainComments bool   `mapstructure:"retain_comments"`
	Color          bool   `mapstructure:"color"`
}

func loadConfig() (*cliConfig, error) {
	v := viper.New()

	v.SetDefault("format", "pretty")
	v.SetDefault("retain_comments", false)
	v.SetDefault("color", true)

	v.SetConfigName(".kopyt")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("KOPYT")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg cliConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}
