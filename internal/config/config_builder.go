package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// configBuilder collects config layers and merges them in order; later layers
// override non-zero fields of earlier ones.
type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 5),
	}
}

// add appends a layer, or records err and skips it.
func (b *configBuilder) add(cfg *StructuredConfig, err error) *configBuilder {
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.configs = append(b.configs, cfg)
	return b
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("build config: %w", b.err)
	}

	merged := new(StructuredConfig)
	for i, layer := range b.configs {
		if err := mergo.Merge(merged, layer, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("merge config layer %d: %w", i, err)
		}
	}

	return merged, nil
}

func (b *configBuilder) withDefaults() *configBuilder {
	return b.add(defaults(), nil)
}

// withEnv loads .env into the process environment, then reads it.
func (b *configBuilder) withEnv() *configBuilder {
	if err := loadDotEnv(DotEnvFile); err != nil {
		return b.add(nil, err)
	}

	envCfg := &StructuredConfig{}
	return b.add(envCfg, parseEnv(envCfg))
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	return b.add(parseFlags(args))
}

// withConfigPath records an explicit JSON path, e.g. from a CLI flag.
func (b *configBuilder) withConfigPath(path string) *configBuilder {
	if path == "" {
		return b
	}
	return b.add(&StructuredConfig{JSONFilePath: path}, nil)
}

// withJSON loads the JSON file named by the last layer that set one.
func (b *configBuilder) withJSON() *configBuilder {
	var path string
	for _, layer := range b.configs {
		if layer.JSONFilePath != "" {
			path = layer.JSONFilePath
		}
	}
	if path == "" {
		return b
	}

	return b.add(parseJSON(path))
}
