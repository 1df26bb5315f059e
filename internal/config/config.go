package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/rest"

	"timeline-api/pkg/confkit"
	marketpkg "timeline-api/pkg/market"
)

// CacheTTL holds per-endpoint cache lifetimes in seconds. Zero falls back to
// the built-in defaults; negative disables caching for that endpoint.
type CacheTTL struct {
	Batch   int `json:",default=120"` // seconds
	Prices  int `json:",default=120"`
	History int `json:",default=300"`
}

type Config struct {
	rest.RestConf
	// Env indicates the running environment: test | dev | prod.
	Env string `json:",default=test"`
	// ReferenceAsset is the asset id whose spot price appears on the
	// summary cards.
	ReferenceAsset string   `json:",default=bitcoin"`
	TTL            CacheTTL `json:",optional"`

	Market confkit.Section[marketpkg.Config] `json:",optional"`

	mainPath string
	baseDir  string
}

func (c *Config) IsTestEnv() bool {
	return c.Env == "test" || c.Env == ""
}

func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}
	return cfg
}

func Load(path string) (*Config, error) {
	confkit.LoadDotenvOnce()

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve config path %s: %w", path, err)
	}

	var cfg Config
	if err := conf.Load(absPath, &cfg, conf.UseEnv()); err != nil {
		return nil, fmt.Errorf("load config %s: %w", absPath, err)
	}

	cfg.mainPath = absPath
	cfg.baseDir = filepath.Dir(absPath)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Market.Hydrate(cfg.baseDir, marketpkg.LoadConfig); err != nil {
		return nil, fmt.Errorf("load market config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch strings.ToLower(strings.TrimSpace(c.Env)) {
	case "", "test", "dev", "prod":
		if strings.TrimSpace(c.Env) == "" {
			c.Env = "test"
		}
	default:
		return errors.New("config: env must be one of test|dev|prod")
	}
	if strings.TrimSpace(c.ReferenceAsset) == "" {
		return errors.New("config: referenceAsset is required")
	}
	c.ReferenceAsset = strings.ToLower(strings.TrimSpace(c.ReferenceAsset))
	return nil
}

func (c *Config) MainPath() string {
	return c.mainPath
}

func (c *Config) BaseDir() string {
	return c.baseDir
}
