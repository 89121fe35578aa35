package config

import (
	"errors"
	"fmt"
	"slices"

	"dario.cat/mergo"
)

// configBuilder collects configuration sources in increasing priority and
// merges them with mergo, later non-zero fields overriding earlier ones.
type configBuilder struct {
	configs     []*StructuredConfig
	hasDefaults bool
	err         error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
	}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occurred during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return config, nil
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.configs = slices.Insert(b.configs, 0, defaultConfig())
	b.hasDefaults = true
	return b
}

// withEnv reads the process environment on top of the .env file named by
// ENV_FILE (or the default). The .env file never overrides a variable that
// is already set.
func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg, b.dotEnvPath()); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	flags, err := ParseFlags(args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, flags)
	return b
}

func (b *configBuilder) withOverrides(overrides *StructuredConfig) *configBuilder {
	if overrides != nil {
		b.configs = append(b.configs, overrides)
	}
	return b
}

// withJSON loads the JSON file named by the last source that set one. The
// file ranks just above the defaults: the environment and the command line
// still override it.
func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string
	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			jsonPath = cfg.JSONFilePath
		}
	}
	if jsonPath == "" {
		return b
	}

	jsonCfg, err := parseJSON(jsonPath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	at := 0
	if b.hasDefaults {
		at = 1
	}
	b.configs = slices.Insert(b.configs, at, jsonCfg)
	return b
}

func (b *configBuilder) dotEnvPath() string {
	path := ""
	for _, cfg := range b.configs {
		if cfg.DotEnvFilePath != "" {
			path = cfg.DotEnvFilePath
		}
	}
	return path
}
