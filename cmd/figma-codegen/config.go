package main

import (
	"errors"
	"fmt"
	"strings"

	figmacodegen "github.com/hellenic-development/figma-codegen"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// ErrNoSource is returned when neither a saved file nor a URL and token are
// configured.
var ErrNoSource = errors.New("either --file or both --url and --token are required")

const (
	configName = ".figma-codegen"
	envPrefix  = "FIGMA_CODEGEN"
	defaultOut = "figma-codegen"
)

// config holds every setting of a run. Values come from flags, then
// FIGMA_CODEGEN_* environment variables, then .figma-codegen.yaml.
type config struct {
	URL        string `mapstructure:"url"`
	Token      string `mapstructure:"token"`
	APIBaseURL string `mapstructure:"api-base-url"`
	File       string `mapstructure:"file"`
	Variables  string `mapstructure:"variables"`
	NodeIDs    string `mapstructure:"node-ids"`
	Select     string `mapstructure:"select"`
	Component  string `mapstructure:"component"`
	Out        string `mapstructure:"out"`
}

// loadConfig merges the command flags with the environment and the config
// file. configPath overrides the config file lookup.
func loadConfig(cmd *cobra.Command, configPath string) (*config, error) {
	v := viper.New()
	v.SetDefault("out", defaultOut)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, fmt.Errorf("bind flags: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func (c *config) validate() error {
	if c.File != "" {
		return nil
	}
	if c.URL == "" || c.Token == "" {
		return ErrNoSource
	}
	return nil
}

// options converts the configuration into pipeline options.
func (c *config) options(log figmacodegen.Logger) figmacodegen.Options {
	opts := figmacodegen.Options{
		AccessToken:   c.Token,
		FileURL:       c.URL,
		APIBaseURL:    c.APIBaseURL,
		FilePath:      c.File,
		VariablesPath: c.Variables,
		Select:        c.Select,
		ComponentName: c.Component,
		Logger:        log,
	}
	if c.NodeIDs != "" {
		opts.NodeIDs = figmacodegen.ParseNodeIDs(c.NodeIDs)
	}
	return opts
}
