package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"flightsim/internal/xgps"
)

type Config struct {
	// Route is the waypoint CSV path.
	Route    string        `yaml:"route"`
	SpeedKt  float64       `yaml:"speed_kt"`
	Interval time.Duration `yaml:"interval"`
	UDP      UDPConfig     `yaml:"udp"`
	GPX      GPXConfig     `yaml:"gpx"`
}

// UDPConfig enables XGPS datagram output when Host is set.
type UDPConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// GPXConfig enables the GPX track log when Path is set.
type GPXConfig struct {
	Path string `yaml:"path"`
}

// Load reads and unmarshals a YAML config file. Defaults and
// validation are applied separately (DefaultAndValidate) so callers
// can layer flag overrides in between.
func Load(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// DefaultAndValidate fills defaults in place and rejects unusable
// values.
func DefaultAndValidate(cfg *Config) error {
	if cfg.SpeedKt == 0 {
		cfg.SpeedKt = 120
	}
	if cfg.SpeedKt < 0 {
		return fmt.Errorf("speed_kt must be > 0")
	}
	if cfg.Interval == 0 {
		cfg.Interval = 1 * time.Second
	}
	if cfg.Interval < 0 {
		return fmt.Errorf("interval must be > 0")
	}
	if cfg.UDP.Port == 0 {
		cfg.UDP.Port = xgps.Port
	}
	if cfg.UDP.Port < 0 || cfg.UDP.Port > 65535 {
		return fmt.Errorf("udp.port must be in 1..65535")
	}
	if cfg.Route == "" {
		return fmt.Errorf("route is required")
	}
	return nil
}
