package main

import (
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
	Model   string `mapstructure:"model"`
	Pack    string `mapstructure:"pack"`
	Locale  string `mapstructure:"locale"`
	History int    `mapstructure:"history"`
	Verbose bool   `mapstructure:"verbose"`
}

// loadConfig merges defaults, the optional config file and QUOTEAGENT_*
// environment variables. Flags are bound onto v by the caller.
func loadConfig(v *viper.Viper, path string) (*Config, error) {
	v.SetDefault("model", "gpt-4o-mini")
	v.SetDefault("locale", "fr")
	v.SetDefault("history", 50)

	v.SetEnvPrefix("QUOTEAGENT")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}
	var conf Config
	if err := v.Unmarshal(&conf); err != nil {
		return nil, err
	}
	return &conf, nil
}
