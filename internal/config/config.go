// Package config handles configuration loading and management for taskplot.
// It supports XDG config paths, project-level overrides, and environment variables.
package config

import (
	"fmt"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/viper"

	"github.com/ShayCichocki/taskplot/internal/palette"
	"github.com/ShayCichocki/taskplot/internal/render"
)

// Config holds all configuration for taskplot.
type Config struct {
	Chart      ChartConfig      `mapstructure:"chart"`
	Palette    PaletteConfig    `mapstructure:"palette"`
	Validation ValidationConfig `mapstructure:"validation"`
}

// ChartConfig holds the saved image settings.
type ChartConfig struct {
	Width  int     `mapstructure:"width"`
	Height int     `mapstructure:"height"`
	DPI    float64 `mapstructure:"dpi"`
}

// PaletteConfig holds colour assignment settings.
type PaletteConfig struct {
	// Colors are "#rrggbb" strings handed out to the first distinct task names.
	Colors []string `mapstructure:"colors"`
	// Seed seeds the random colours used past the palette. Zero means time-seeded.
	Seed int64 `mapstructure:"seed"`
}

// ValidationConfig holds profile validation settings.
type ValidationConfig struct {
	// Strict turns validation warnings into errors.
	Strict bool `mapstructure:"strict"`
}

// RenderOptions returns the image options for the chart settings.
func (c *Config) RenderOptions() render.Options {
	return render.Options{
		Width:  c.Chart.Width,
		Height: c.Chart.Height,
		DPI:    c.Chart.DPI,
	}
}

// ColorConfig builds the colour assignment configuration.
// The base palette is used as-is when the configured colours spell it out, so
// its fractional channels survive the round trip through hex.
func (c *Config) ColorConfig() (palette.Config, error) {
	cfg := palette.DefaultConfig(c.Palette.Seed)
	if len(c.Palette.Colors) == 0 || isBasePalette(c.Palette.Colors) {
		return cfg, nil
	}
	colors, err := palette.ParseHex(c.Palette.Colors)
	if err != nil {
		return palette.Config{}, err
	}
	cfg.Palette = colors
	return cfg, nil
}

func isBasePalette(hexes []string) bool {
	return slices.EqualFunc(hexes, palette.Hexes(palette.Base), strings.EqualFold)
}

// Load loads configuration from XDG paths, project overrides, and environment variables.
// Precedence (highest to lowest):
// 1. Environment variables (TASKPLOT_CHART_WIDTH, TASKPLOT_VALIDATION_STRICT, ...)
// 2. Project config (.taskplot.yaml in current directory or parent)
// 3. User config (~/.config/taskplot/config.yaml)
// 4. Built-in defaults
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(getUserConfigDir())

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading user config: %w", err)
		}
	}

	// Project config takes precedence over the user config
	if projectConfig := findProjectConfig(); projectConfig != "" {
		projectViper := viper.New()
		projectViper.SetConfigFile(projectConfig)
		if err := projectViper.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading project config %s: %w", projectConfig, err)
		}
		if err := v.MergeConfigMap(projectViper.AllSettings()); err != nil {
			return nil, fmt.Errorf("merging project config: %w", err)
		}
	}

	bindEnv(v)

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return cfg, nil
}

// LoadFromPath loads configuration from a specific path (for testing).
func LoadFromPath(path string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config from %s: %w", path, err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return cfg, nil
}

// LoadUser loads only the user config file, without project or environment
// overrides. A missing file yields the defaults.
func LoadUser() (*Config, error) {
	path := GetUserConfigPath()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return LoadFromPath(path)
}

// Save writes the current configuration to the user config file.
func Save(cfg *Config) error {
	userConfigDir := getUserConfigDir()
	if err := os.MkdirAll(userConfigDir, 0700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	return SaveToPath(cfg, filepath.Join(userConfigDir, "config.yaml"))
}

// SaveToPath writes cfg to path as YAML.
func SaveToPath(cfg *Config, path string) error {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.Set("chart.width", cfg.Chart.Width)
	v.Set("chart.height", cfg.Chart.Height)
	v.Set("chart.dpi", cfg.Chart.DPI)
	v.Set("palette.colors", cfg.Palette.Colors)
	v.Set("palette.seed", cfg.Palette.Seed)
	v.Set("validation.strict", cfg.Validation.Strict)

	return v.WriteConfigAs(path)
}

// GetUserConfigPath returns the path to the user config file.
func GetUserConfigPath() string {
	return filepath.Join(getUserConfigDir(), "config.yaml")
}

// GetProjectConfigPath returns the path to the project config file if it exists.
func GetProjectConfigPath() string {
	return findProjectConfig()
}

// setDefaults configures default values.
func setDefaults(v *viper.Viper) {
	d := Default()

	v.SetDefault("chart.width", d.Chart.Width)
	v.SetDefault("chart.height", d.Chart.Height)
	v.SetDefault("chart.dpi", d.Chart.DPI)

	v.SetDefault("palette.colors", d.Palette.Colors)
	v.SetDefault("palette.seed", d.Palette.Seed)

	v.SetDefault("validation.strict", d.Validation.Strict)
}

// bindEnv maps TASKPLOT_* variables onto config keys.
func bindEnv(v *viper.Viper) {
	for _, key := range Keys() {
		v.BindEnv(key, envName(key))
	}
}

// getUserConfigDir returns the XDG config directory for taskplot.
func getUserConfigDir() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "taskplot")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".config", "taskplot")
	}
	return filepath.Join(home, ".config", "taskplot")
}

// findProjectConfig searches for .taskplot.yaml in the current directory and parents.
func findProjectConfig() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		configPath := filepath.Join(cwd, ".taskplot.yaml")
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}

		parent := filepath.Dir(cwd)
		if parent == cwd {
			break
		}
		cwd = parent
	}

	return ""
}

// Default returns a Config with default values.
func Default() *Config {
	opts := render.DefaultOptions()
	return &Config{
		Chart: ChartConfig{
			Width:  opts.Width,
			Height: opts.Height,
			DPI:    opts.DPI,
		},
		Palette: PaletteConfig{
			Colors: palette.Hexes(palette.Base),
			Seed:   0,
		},
		Validation: ValidationConfig{
			Strict: false,
		},
	}
}
