// Package config loads the application configuration: navigation feel,
// live-link settings and UI defaults. Values come from a YAML file layered
// over built-in defaults.
package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Nav  NavConfig  `yaml:"nav"`
	Link LinkConfig `yaml:"link"`
	UI   UIConfig   `yaml:"ui"`
}

// NavConfig tunes viewport navigation.
type NavConfig struct {
	// OrbitStep is the rotation per orbit keypress, radians.
	OrbitStep float64 `yaml:"orbit_step"`
	// PanStep is the pivot move per pan keypress as a fraction of the
	// view distance.
	PanStep float64 `yaml:"pan_step"`
	// DollyFactor is the multiplicative distance change per dolly press.
	DollyFactor float64 `yaml:"dolly_factor"`
	// SpringFrequency and SpringDamping shape the motion smoothing.
	SpringFrequency float64 `yaml:"spring_frequency"`
	SpringDamping   float64 `yaml:"spring_damping"`
}

// LinkConfig configures the optional live-link websocket bridge.
type LinkConfig struct {
	Listen            string        `yaml:"listen"`
	SnapshotInterval  time.Duration `yaml:"snapshot_interval"`
	BroadcastThrottle time.Duration `yaml:"broadcast_throttle"`
}

// UIConfig holds interface defaults.
type UIConfig struct {
	// FPS is the animation tick rate.
	FPS int `yaml:"fps"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Nav: NavConfig{
			OrbitStep:       0.12,
			PanStep:         0.08,
			DollyFactor:     1.15,
			SpringFrequency: 6.0,
			SpringDamping:   0.8,
		},
		Link: LinkConfig{
			SnapshotInterval:  5 * time.Second,
			BroadcastThrottle: 100 * time.Millisecond,
		},
		UI: UIConfig{
			FPS: 30,
		},
	}
}

// Load reads the config file at path over the defaults. An empty path
// returns the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
