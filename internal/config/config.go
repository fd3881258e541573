package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultDataDir = ".neurovolt"
	DefaultStep    = 16
	DefaultFPS     = 12
)

// Config is the file-level configuration. CLI flags override file values.
type Config struct {
	// Engine is the external simulation engine command line.
	Engine string `yaml:"engine"`
	// DataDir is where recordings are stored.
	DataDir string `yaml:"data_dir"`

	Playback PlaybackConfig `yaml:"playback"`
}

// PlaybackConfig overrides a scenario's built-in replay settings.
type PlaybackConfig struct {
	Step      int       `yaml:"step"`
	Loop      *bool     `yaml:"loop"`
	FPS       int       `yaml:"fps"`
	Triggers  []float64 `yaml:"triggers"`
	Highlight []float64 `yaml:"highlight"` // [start, end]
}

func Default() *Config {
	return &Config{
		DataDir: DefaultDataDir,
		Playback: PlaybackConfig{
			Step: DefaultStep,
			FPS:  DefaultFPS,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
