package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration
type Config struct {
	Source struct {
		URL           string `yaml:"url"`
		TableSelector string `yaml:"table_selector"`
	} `yaml:"source"`
	Server struct {
		Addr string `yaml:"addr"`
	} `yaml:"server"`
	Slider struct {
		Step         int `yaml:"step"`
		TickInterval int `yaml:"tick_interval"`
	} `yaml:"slider"`
	Histogram struct {
		Bins int `yaml:"bins"`
	} `yaml:"histogram"`
}

// GetDefaultConfig returns a configuration with all defaults applied
func GetDefaultConfig() *Config {
	cfg := &Config{}
	cfg.Source.URL = "https://www.livechennai.com/Vegetable_price_chennai.asp"
	cfg.Source.TableSelector = "table.table.table-bordered.table-striped.gold-rates"
	cfg.Server.Addr = ":8080"
	cfg.Slider.Step = 5
	cfg.Slider.TickInterval = 20
	cfg.Histogram.Bins = 20
	return cfg
}

// LoadConfig loads configuration from a YAML file, then applies environment
// variable overrides. A missing file is not an error; the defaults apply.
func LoadConfig(path string) (*Config, error) {
	cfg := GetDefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("SOURCE_URL"); v != "" {
		cfg.Source.URL = v
	}
	if v := os.Getenv("DASHBOARD_ADDR"); v != "" {
		cfg.Server.Addr = v
	}

	// Re-apply defaults for fields zeroed by a partial file
	if cfg.Source.URL == "" {
		cfg.Source.URL = GetDefaultConfig().Source.URL
	}
	if cfg.Source.TableSelector == "" {
		cfg.Source.TableSelector = GetDefaultConfig().Source.TableSelector
	}
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = GetDefaultConfig().Server.Addr
	}
	if cfg.Slider.Step <= 0 {
		cfg.Slider.Step = GetDefaultConfig().Slider.Step
	}
	if cfg.Slider.TickInterval <= 0 {
		cfg.Slider.TickInterval = GetDefaultConfig().Slider.TickInterval
	}
	if cfg.Histogram.Bins <= 0 {
		cfg.Histogram.Bins = GetDefaultConfig().Histogram.Bins
	}

	return cfg, nil
}
