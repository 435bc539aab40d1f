package config

import (
	"errors"
	"fmt"
	"os"

	"dario.cat/mergo"
	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Load reads every source and returns the validated configuration. flags may
// be nil; its non-zero fields win over everything else. The YAML file path is
// taken from flags, then from ONBOARDING_CONFIG.
func Load(flags *Config) (*Config, error) {
	b := newBuilder()
	if flags != nil {
		b.add(flags)
	}
	return b.withEnv().withFile().withDefaults().build()
}

// builder collects configs in priority order. mergo.Merge only fills zero
// fields, so earlier entries win.
type builder struct {
	configs []*Config
	err     error
}

func newBuilder() *builder {
	return &builder{configs: make([]*Config, 0, 4)}
}

func (b *builder) add(cfg *Config) *builder {
	b.configs = append(b.configs, cfg)
	return b
}

func (b *builder) withEnv() *builder {
	cfg := &Config{}
	if err := parseEnv(cfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	return b.add(cfg)
}

func (b *builder) withFile() *builder {
	var path string
	for _, cfg := range b.configs {
		if cfg.FilePath != "" {
			path = cfg.FilePath
			break
		}
	}
	if path == "" {
		return b
	}
	cfg, err := parseFile(path)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	return b.add(cfg)
}

func (b *builder) withDefaults() *builder {
	return b.add(Defaults())
}

func (b *builder) build() (*Config, error) {
	if b.err != nil {
		return nil, fmt.Errorf("config: load: %w", b.err)
	}
	out := &Config{}
	for _, cfg := range b.configs {
		if err := mergo.Merge(out, cfg); err != nil {
			return nil, fmt.Errorf("config: merge: %w", err)
		}
	}
	if err := out.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return out, nil
}

func parseEnv(cfg *Config) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("config: parse env: %w", err)
	}
	return nil
}

func parseFile(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg := &Config{}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}
	cfg.FilePath = path
	return cfg, nil
}
