package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"riskradar/internal/model"
)

// Config carries all process configuration, sourced from the environment.
type Config struct {
	MongoURI      string        `env:"MONGO_URI" envDefault:"mongodb://localhost:27017"`
	MongoDatabase string        `env:"MONGO_DATABASE" envDefault:"riskradar"`
	RedisAddr     string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	HTTPPort      string        `env:"HTTP_PORT" envDefault:"8080"`
	FetchTimeout  time.Duration `env:"SHEET_FETCH_TIMEOUT" envDefault:"10s"`
	CacheTTL      time.Duration `env:"TABLE_CACHE_TTL" envDefault:"5m"`

	SheetURLBefore  string `env:"SHEET_CSV_URL_BEFORE"`
	SheetURLMarried string `env:"SHEET_CSV_URL_MARRIED"`
	SheetURLCrisis  string `env:"SHEET_CSV_URL_CRISIS"`
	SheetURLDivorce string `env:"SHEET_CSV_URL_DIVORCE"`
}

// Load parses configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// SheetURLs maps each pathway to its CSV source URL. Pathways without a
// configured URL are omitted; those always serve the fallback table.
func (c *Config) SheetURLs() map[model.Pathway]string {
	urls := make(map[model.Pathway]string)
	set := func(p model.Pathway, url string) {
		if url != "" {
			urls[p] = url
		}
	}
	set(model.PathwayBefore, c.SheetURLBefore)
	set(model.PathwayMarried, c.SheetURLMarried)
	set(model.PathwayCrisis, c.SheetURLCrisis)
	set(model.PathwayDivorce, c.SheetURLDivorce)
	return urls
}
