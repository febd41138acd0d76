// Package config loads and saves rgb-slicer settings as YAML.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"rgb-slicer/internal/colorcube"

	"gopkg.in/yaml.v3"
)

const (
	AppDirName = "rgb-slicer"
	FileName   = "config.yaml"
)

type Config struct {
	UI struct {
		// LastDir is where the open dialog starts.
		LastDir      string  `yaml:"lastDir"`
		WindowWidth  float32 `yaml:"windowWidth"`
		WindowHeight float32 `yaml:"windowHeight"`
	} `yaml:"ui"`

	Render struct {
		Axis      colorcube.Axis `yaml:"axis"`
		Threshold int            `yaml:"threshold"`
		// Workers bounds slice generation parallelism; 0 means one per CPU.
		Workers int `yaml:"workers"`
	} `yaml:"render"`

	Log struct {
		Level string `yaml:"level"`
		JSON  bool   `yaml:"json"`
	} `yaml:"log"`
}

func DefaultConfig() *Config {
	cfg := &Config{}

	cfg.UI.WindowWidth = 1024
	cfg.UI.WindowHeight = 600

	cfg.Render.Axis = colorcube.FixedRed
	cfg.Render.Threshold = colorcube.DefaultThreshold
	cfg.Render.Workers = 0

	cfg.Log.Level = "info"
	cfg.Log.JSON = false

	return cfg
}

// DefaultPath returns the config file under the user config directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating user config dir: %w", err)
	}
	return filepath.Join(dir, AppDirName, FileName), nil
}

// Load reads the YAML file at path. A missing file yields the defaults.
// Environment overrides are applied last.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, fmt.Errorf("reading config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	cfg.normalize()
	return cfg, nil
}

// Save writes cfg to path, creating the directory if needed.
func Save(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	if level := os.Getenv("RGBSLICER_LOG_LEVEL"); level != "" {
		c.Log.Level = level
	} else if os.Getenv("DEBUG") == "1" {
		c.Log.Level = "debug"
	}

	if os.Getenv("RGBSLICER_JSON_LOGS") == "true" {
		c.Log.JSON = true
	}

	if workers := os.Getenv("RGBSLICER_WORKERS"); workers != "" {
		n, err := strconv.Atoi(workers)
		if err != nil {
			return fmt.Errorf("RGBSLICER_WORKERS: %w", err)
		}
		c.Render.Workers = n
	}
	return nil
}

func (c *Config) normalize() {
	c.Render.Threshold = colorcube.ClampThreshold(c.Render.Threshold)
	if c.Render.Workers < 0 {
		c.Render.Workers = 0
	}
	if !c.Render.Axis.Valid() {
		c.Render.Axis = colorcube.FixedRed
	}
}
