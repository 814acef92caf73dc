package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ShayCichocki/taskplot/internal/palette"
)

// ErrUnknownKey is returned for configuration keys taskplot does not know.
var ErrUnknownKey = errors.New("unknown configuration key")

// envPrefix prefixes every environment override.
const envPrefix = "TASKPLOT"

var keys = []string{
	"chart.width",
	"chart.height",
	"chart.dpi",
	"palette.colors",
	"palette.seed",
	"validation.strict",
}

// Keys returns the dot-notation configuration keys in display order.
func Keys() []string {
	return append([]string(nil), keys...)
}

// envName returns the environment variable overriding key,
// e.g. chart.width -> TASKPLOT_CHART_WIDTH.
func envName(key string) string {
	return envPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

// Get returns a configuration value by dot-notation key.
func Get(cfg *Config, key string) (string, error) {
	switch strings.ToLower(key) {
	case "chart.width":
		return strconv.Itoa(cfg.Chart.Width), nil
	case "chart.height":
		return strconv.Itoa(cfg.Chart.Height), nil
	case "chart.dpi":
		return strconv.FormatFloat(cfg.Chart.DPI, 'g', -1, 64), nil
	case "palette.colors":
		return strings.Join(cfg.Palette.Colors, ","), nil
	case "palette.seed":
		return strconv.FormatInt(cfg.Palette.Seed, 10), nil
	case "validation.strict":
		return strconv.FormatBool(cfg.Validation.Strict), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
}

// Set sets a configuration value by dot-notation key.
func Set(cfg *Config, key, value string) error {
	switch strings.ToLower(key) {
	case "chart.width":
		n, err := positiveInt(value)
		if err != nil {
			return fmt.Errorf("invalid value for chart.width: %w", err)
		}
		cfg.Chart.Width = n
	case "chart.height":
		n, err := positiveInt(value)
		if err != nil {
			return fmt.Errorf("invalid value for chart.height: %w", err)
		}
		cfg.Chart.Height = n
	case "chart.dpi":
		f, err := strconv.ParseFloat(value, 64)
		if err != nil || f <= 0 {
			return fmt.Errorf("invalid value for chart.dpi: %q", value)
		}
		cfg.Chart.DPI = f
	case "palette.colors":
		colors := splitList(value)
		if _, err := palette.ParseHex(colors); err != nil {
			return fmt.Errorf("invalid value for palette.colors: %w", err)
		}
		cfg.Palette.Colors = colors
	case "palette.seed":
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid value for palette.seed: %w", err)
		}
		cfg.Palette.Seed = n
	case "validation.strict":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for validation.strict: %w", err)
		}
		cfg.Validation.Strict = b
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return nil
}

func positiveInt(value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, fmt.Errorf("%d is not positive", n)
	}
	return n, nil
}

// splitList splits a comma separated list, dropping blanks.
func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
