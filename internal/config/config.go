package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"BaselExplorer/internal/logging"
	"BaselExplorer/internal/simulation"
)

// Config holds all application configuration.
type Config struct {
	Simulation struct {
		StartYear      int     `yaml:"start_year"`
		InitialCapital float64 `yaml:"initial_capital"`
		InitialAssets  float64 `yaml:"initial_assets"`
		RWAFraction    float64 `yaml:"rwa_fraction"`
		HorizonEndYear int     `yaml:"horizon_end_year"`
		GrowthMin      float64 `yaml:"growth_min"`
		GrowthMax      float64 `yaml:"growth_max"`
		ROAMin         float64 `yaml:"roa_min"`
		ROAMax         float64 `yaml:"roa_max"`
	} `yaml:"simulation"`
	Server struct {
		Addr string `yaml:"addr"`
		Mode string `yaml:"mode"` // gin mode: debug, release, test
	} `yaml:"server"`
	Sessions struct {
		IdleTTL   time.Duration `yaml:"idle_ttl"`
		EvictCron string        `yaml:"evict_cron"`
	} `yaml:"sessions"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Log logging.Config `yaml:"log"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides and defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if len(data) > 0 {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config: %w", err)
			}
		}
	}

	// Environment variable overrides
	if v := os.Getenv("BASEL_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("START_YEAR"); v != "" {
		if y, err := strconv.Atoi(v); err == nil {
			cfg.Simulation.StartYear = y
		}
	}
	if v := os.Getenv("RWA_FRACTION"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Simulation.RWAFraction = f
		}
	}

	applyDefaults(cfg)
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	sim := &cfg.Simulation
	if sim.StartYear == 0 {
		sim.StartYear = 2025
	}
	if sim.InitialCapital == 0 {
		sim.InitialCapital = 150
	}
	if sim.InitialAssets == 0 {
		sim.InitialAssets = 1000
	}
	if sim.RWAFraction == 0 {
		sim.RWAFraction = 0.70
	}
	if sim.HorizonEndYear == 0 {
		sim.HorizonEndYear = sim.StartYear + 2
	}
	if sim.GrowthMin == 0 && sim.GrowthMax == 0 {
		sim.GrowthMin, sim.GrowthMax = -20, 60
	}
	if sim.ROAMax == 0 {
		sim.ROAMax = 8
	}
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8080"
	}
	if cfg.Server.Mode == "" {
		cfg.Server.Mode = "release"
	}
	if cfg.Sessions.IdleTTL == 0 {
		cfg.Sessions.IdleTTL = 2 * time.Hour
	}
	if cfg.Sessions.EvictCron == "" {
		cfg.Sessions.EvictCron = "0 */10 * * * *"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "text"
	}
	if cfg.Log.Output == "" {
		cfg.Log.Output = "stdout"
	}
	if cfg.Log.FilePath == "" {
		cfg.Log.FilePath = "logs/basel.log"
	}
	if cfg.Log.MaxSize == 0 {
		cfg.Log.MaxSize = 50
	}
	if cfg.Log.MaxBackups == 0 {
		cfg.Log.MaxBackups = 5
	}
	if cfg.Log.MaxAge == 0 {
		cfg.Log.MaxAge = 14
	}
}

// Policy returns the year-advance bounds.
func (c *Config) Policy() simulation.Policy {
	return simulation.Policy{
		GrowthMin: c.Simulation.GrowthMin,
		GrowthMax: c.Simulation.GrowthMax,
		ROAMin:    c.Simulation.ROAMin,
		ROAMax:    c.Simulation.ROAMax,
	}
}

// Validate checks that all values are usable.
func (c *Config) Validate() error {
	sim := c.Simulation
	if sim.InitialAssets <= 0 {
		return fmt.Errorf("simulation.initial_assets must be positive")
	}
	if sim.RWAFraction <= 0 || sim.RWAFraction > 1 {
		return fmt.Errorf("simulation.rwa_fraction must be in (0, 1]")
	}
	if sim.HorizonEndYear < sim.StartYear {
		return fmt.Errorf("simulation.horizon_end_year must not precede start_year")
	}
	if err := c.Policy().Validate(); err != nil {
		return fmt.Errorf("simulation bounds: %w", err)
	}
	if c.Sessions.IdleTTL <= 0 {
		return fmt.Errorf("sessions.idle_ttl must be positive")
	}
	return nil
}
