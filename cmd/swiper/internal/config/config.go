// Package config loads the optional swiper.yaml project file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/swiper/pkg/swiper"
)

// FileName is the project config file looked up in the project root.
const FileName = "swiper.yaml"

// DefaultWidth is the page width used by scenarios that do not set one.
const DefaultWidth = 375.0

// Config represents the optional swiper.yaml configuration.
type Config struct {
	Swiper    SwiperConfig    `yaml:"swiper"`
	Scenarios ScenariosConfig `yaml:"scenarios"`
}

// SwiperConfig contains default pager settings.
type SwiperConfig struct {
	Width      float64 `yaml:"width,omitempty"`
	DurationMS int     `yaml:"duration_ms,omitempty"`
}

// ScenariosConfig locates scenario files.
type ScenariosConfig struct {
	Dir string `yaml:"dir,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root        string        `yaml:"root"`
	ModulePath  string        `yaml:"module"`
	Name        string        `yaml:"name"`
	Width       float64       `yaml:"width"`
	Duration    time.Duration `yaml:"duration"`
	ScenarioDir string        `yaml:"scenario_dir"`
}

// LoadOptional reads swiper.yaml if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}

	return &cfg, nil
}

// Resolve loads swiper.yaml (if present) and resolves defaults.
func Resolve(dir string) (*Resolved, error) {
	modulePath, err := modulePath(dir)
	if err != nil {
		return nil, err
	}

	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	if cfg.Swiper.Width < 0 {
		return nil, fmt.Errorf("swiper.width must not be negative (got %v)", cfg.Swiper.Width)
	}
	if cfg.Swiper.DurationMS < 0 {
		return nil, fmt.Errorf("swiper.duration_ms must not be negative (got %d)", cfg.Swiper.DurationMS)
	}

	width := cfg.Swiper.Width
	if width == 0 {
		width = DefaultWidth
	}

	duration := time.Duration(cfg.Swiper.DurationMS) * time.Millisecond
	if duration == 0 {
		duration = swiper.DefaultDuration
	}

	scenarioDir := strings.TrimSpace(cfg.Scenarios.Dir)
	if scenarioDir == "" {
		scenarioDir = "scenarios"
	}
	if !filepath.IsAbs(scenarioDir) {
		scenarioDir = filepath.Join(dir, scenarioDir)
	}

	return &Resolved{
		Root:        dir,
		ModulePath:  modulePath,
		Name:        defaultName(modulePath, dir),
		Width:       width,
		Duration:    duration,
		ScenarioDir: scenarioDir,
	}, nil
}

// FindProjectRoot walks up from start to find go.mod.
func FindProjectRoot(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not in a Go module (no go.mod found)")
		}
		dir = parent
	}
}

func modulePath(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		return "", fmt.Errorf("failed to read go.mod: %w", err)
	}
	path := modfile.ModulePath(data)
	if path == "" {
		return "", fmt.Errorf("could not determine module path from go.mod")
	}
	return path, nil
}

// defaultName is the last module path element without a major version
// suffix, falling back to the directory name.
func defaultName(modulePath, dir string) string {
	base := filepath.Base(dir)
	prefix, _, ok := module.SplitPathVersion(modulePath)
	if ok {
		parts := strings.Split(prefix, "/")
		if len(parts) > 0 && parts[len(parts)-1] != "" {
			base = parts[len(parts)-1]
		}
	}
	return base
}
