package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/zecke/rostergen/core/metrics"
	"github.com/zecke/rostergen/core/model"
	"github.com/zecke/rostergen/core/schedule"
	"github.com/zecke/rostergen/infra/history"
	"github.com/zecke/rostergen/infra/notify"
)

// EngineConfig selects the solving engine backend.
type EngineConfig struct {
	Type string `json:"type"`
}

// SetDefaults applies the default engine.
func (c *EngineConfig) SetDefaults() {
	if c.Type == "" {
		c.Type = "glpk"
	}
}

// Validate checks the engine type.
func (c EngineConfig) Validate() error {
	if c.Type != "glpk" {
		return fmt.Errorf("unknown engine type %s", c.Type)
	}
	return nil
}

type Config struct {
	Schedule schedule.Config `json:"schedule"`
	Rotation model.Rotation  `json:"rotation"`
	// Seed fixes the roster shuffle; 0 draws a fresh seed per run.
	Seed    int64          `json:"seed"`
	History history.Config `json:"history"`
	Engine  EngineConfig   `json:"engine"`
	Metrics metrics.Config `json:"metrics"`
	// PromAddr exposes the Prometheus /metrics endpoint when non-empty.
	PromAddr string        `json:"prom_addr"`
	Notify   notify.Config `json:"notify"`
}

func Load(path string) (*Config, error) {
	k := koanf.New(".")
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	// Optional environment overrides
	if err := k.Load(env.Provider("RG_", "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "rg_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.Schedule.SetDefaults()
	cfg.History.SetDefaults()
	cfg.Engine.SetDefaults()
	cfg.Notify.SetDefaults()
	if err := cfg.Schedule.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.History.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Engine.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
