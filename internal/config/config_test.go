package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/ShayCichocki/taskplot/internal/palette"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Chart.Width != 1024 {
		t.Errorf("expected default width 1024, got %d", cfg.Chart.Width)
	}

	if cfg.Chart.Height != 512 {
		t.Errorf("expected default height 512, got %d", cfg.Chart.Height)
	}

	if cfg.Chart.DPI != 96 {
		t.Errorf("expected default dpi 96, got %v", cfg.Chart.DPI)
	}

	if len(cfg.Palette.Colors) != 8 {
		t.Errorf("expected 8 palette colours, got %d", len(cfg.Palette.Colors))
	}

	if cfg.Palette.Seed != 0 {
		t.Errorf("expected seed 0, got %d", cfg.Palette.Seed)
	}

	if cfg.Validation.Strict {
		t.Error("expected validation.strict to be false")
	}
}

func TestLoadFromPath(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `
chart:
  width: 800
  height: 300
palette:
  colors:
    - "#112233"
    - "#445566"
  seed: 7
validation:
  strict: true
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := LoadFromPath(configPath)
	if err != nil {
		t.Fatalf("LoadFromPath failed: %v", err)
	}

	if cfg.Chart.Width != 800 {
		t.Errorf("expected width 800, got %d", cfg.Chart.Width)
	}

	if cfg.Chart.Height != 300 {
		t.Errorf("expected height 300, got %d", cfg.Chart.Height)
	}

	if cfg.Chart.DPI != 96 {
		t.Errorf("expected default dpi 96 to survive, got %v", cfg.Chart.DPI)
	}

	if !reflect.DeepEqual(cfg.Palette.Colors, []string{"#112233", "#445566"}) {
		t.Errorf("unexpected palette colours %v", cfg.Palette.Colors)
	}

	if cfg.Palette.Seed != 7 {
		t.Errorf("expected seed 7, got %d", cfg.Palette.Seed)
	}

	if !cfg.Validation.Strict {
		t.Error("expected validation.strict to be true")
	}
}

func TestLoadFromPath_Missing(t *testing.T) {
	if _, err := LoadFromPath(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestLoad_ProjectAndEnvOverrides(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("TASKPLOT_CHART_HEIGHT", "222")

	projectDir := t.TempDir()
	nested := filepath.Join(projectDir, "traces", "run1")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	project := "chart:\n  width: 640\n  height: 480\n"
	if err := os.WriteFile(filepath.Join(projectDir, ".taskplot.yaml"), []byte(project), 0644); err != nil {
		t.Fatalf("failed to write project config: %v", err)
	}
	t.Chdir(nested)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Chart.Width != 640 {
		t.Errorf("expected project width 640, got %d", cfg.Chart.Width)
	}
	if cfg.Chart.Height != 222 {
		t.Errorf("expected env height 222, got %d", cfg.Chart.Height)
	}
}

func TestSaveToPath_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := Default()
	cfg.Chart.Width = 2048
	cfg.Palette.Seed = 99
	cfg.Validation.Strict = true

	if err := SaveToPath(cfg, path); err != nil {
		t.Fatalf("SaveToPath failed: %v", err)
	}

	loaded, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, loaded) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", loaded, cfg)
	}
}

func TestGetUserConfigDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/custom/config")

	dir := getUserConfigDir()
	expected := "/custom/config/taskplot"
	if dir != expected {
		t.Errorf("expected %q, got %q", expected, dir)
	}
}

func TestColorConfig(t *testing.T) {
	cfg := Default()
	cfg.Palette.Seed = 3

	pc, err := cfg.ColorConfig()
	if err != nil {
		t.Fatalf("ColorConfig failed: %v", err)
	}
	if !reflect.DeepEqual(palette.Hexes(pc.Palette), cfg.Palette.Colors) {
		t.Errorf("expected palette %v, got %v", cfg.Palette.Colors, palette.Hexes(pc.Palette))
	}
	if pc.Random == nil {
		t.Error("expected a random generator")
	}

	if !reflect.DeepEqual(pc.Palette, palette.Base) {
		t.Errorf("expected the exact base palette, got %v", pc.Palette)
	}

	cfg.Palette.Colors = []string{"#112233", "#445566"}
	pc, err = cfg.ColorConfig()
	if err != nil {
		t.Fatalf("ColorConfig with custom colours failed: %v", err)
	}
	if got := palette.Hexes(pc.Palette); !reflect.DeepEqual(got, cfg.Palette.Colors) {
		t.Errorf("expected custom palette %v, got %v", cfg.Palette.Colors, got)
	}

	cfg.Palette.Colors = []string{"not-a-colour"}
	if _, err := cfg.ColorConfig(); err == nil {
		t.Error("expected error for invalid palette colour")
	}
}

func TestRenderOptions(t *testing.T) {
	cfg := Default()
	cfg.Chart.Width = 10
	opts := cfg.RenderOptions()
	if opts.Width != 10 || opts.Height != 512 || opts.DPI != 96 {
		t.Errorf("unexpected render options %+v", opts)
	}
}

func TestColorConfig_BasePaletteUppercase(t *testing.T) {
	cfg := Default()
	for i, h := range cfg.Palette.Colors {
		cfg.Palette.Colors[i] = strings.ToUpper(h)
	}

	pc, err := cfg.ColorConfig()
	if err != nil {
		t.Fatalf("ColorConfig failed: %v", err)
	}
	if pc.Palette[1] != palette.Base[1] {
		t.Errorf("expected exact green %v, got %v", palette.Base[1], pc.Palette[1])
	}
}

func TestLoadUser(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	t.Setenv("TASKPLOT_CHART_DPI", "200")

	projectDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(projectDir, ".taskplot.yaml"), []byte("chart:\n  height: 300\n"), 0644); err != nil {
		t.Fatalf("failed to write project config: %v", err)
	}
	t.Chdir(projectDir)

	cfg, err := LoadUser()
	if err != nil {
		t.Fatalf("LoadUser without a user file failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("expected defaults without a user file, got %+v", cfg)
	}

	user := Default()
	user.Chart.Width = 800
	if err := Save(user); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	cfg, err = LoadUser()
	if err != nil {
		t.Fatalf("LoadUser failed: %v", err)
	}
	if cfg.Chart.Width != 800 {
		t.Errorf("expected user width 800, got %d", cfg.Chart.Width)
	}
	if cfg.Chart.Height != 512 {
		t.Errorf("project height leaked into user config: %d", cfg.Chart.Height)
	}
	if cfg.Chart.DPI != 96 {
		t.Errorf("env dpi leaked into user config: %v", cfg.Chart.DPI)
	}
}
