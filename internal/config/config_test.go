package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/qwell/internal/wells"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Name != "double_well" {
		t.Errorf("expected name double_well, got %s", cfg.Name)
	}
	if cfg.Basis <= 0 {
		t.Error("basis should be positive")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("single_well")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Vext[0] != 10 {
		t.Errorf("expected wall 10, got %f", cfg.Vext[0])
	}
}

func TestGetPreset_Copy(t *testing.T) {
	cfg := GetPreset("double_well")
	cfg.Vint[0] = 99

	if Presets["double_well"].Vint[0] == 99 {
		t.Error("preset was modified through returned copy")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets()
	if len(presets) != len(Presets) {
		t.Errorf("expected %d presets, got %d", len(Presets), len(presets))
	}
	for i := 1; i < len(presets); i++ {
		if presets[i-1] > presets[i] {
			t.Errorf("presets not sorted: %v", presets)
		}
	}
}

func TestPresetsValid(t *testing.T) {
	for _, name := range ListPresets() {
		if err := GetPreset(name).Validate(); err != nil {
			t.Errorf("preset %s: %v", name, err)
		}
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "problem.yaml")
	cfg := GetPreset("asymmetric")

	if err := Save(path, cfg); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if got.Name != "asymmetric" || got.Vext != cfg.Vext || got.Basis != cfg.Basis {
		t.Errorf("round trip mismatch: %+v", got)
	}
}

func writeProblem(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	path := writeProblem(t, "wide.yaml", "vext: [8, 8]\nwells: [3]\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Name != "wide" {
		t.Errorf("expected name from file, got %s", cfg.Name)
	}
	if cfg.Basis != DefaultBasis {
		t.Errorf("expected default basis %d, got %d", DefaultBasis, cfg.Basis)
	}
	if cfg.Samples != DefaultSamples {
		t.Errorf("expected default samples %d, got %d", DefaultSamples, cfg.Samples)
	}
	if cfg.Placement != wells.Shifted {
		t.Errorf("expected shifted placement, got %v", cfg.Placement)
	}
}

func TestLoad_SingleWell(t *testing.T) {
	bodies := map[string]string{
		"bare":        "name: mine\nvext: [10, 10]\nwells: [1]\n",
		"empty lists": "name: mine\nvext: [10, 10]\nwells: [1]\nvint: []\nbarriers: []\n",
	}

	for name, body := range bodies {
		cfg, err := Load(writeProblem(t, "single.yaml", body))
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if len(cfg.Barriers) != 0 || len(cfg.Vint) != 0 {
			t.Errorf("%s: expected no barriers, got %v at %v", name, cfg.Barriers, cfg.Vint)
		}
		if err := cfg.Validate(); err != nil {
			t.Errorf("%s: single well should be valid: %v", name, err)
		}
	}
}

func TestLoad_Placement(t *testing.T) {
	body := "vext: [10, 10]\nvint: [5]\nwells: [1, 2]\nbarriers: [0.5]\nplacement: adjacent\n"
	cfg, err := Load(writeProblem(t, "adj.yaml", body))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Structure().Placement != wells.Adjacent {
		t.Errorf("expected adjacent placement, got %v", cfg.Placement)
	}

	_, err = Load(writeProblem(t, "bad.yaml", "wells: [1]\nplacement: sideways\n"))
	if !errors.Is(err, wells.ErrUnknownPlacement) {
		t.Errorf("expected ErrUnknownPlacement, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"shape", func(c *Config) { c.Vint = nil }, wells.ErrShapeMismatch},
		{"width", func(c *Config) { c.Wells[1] = 0 }, wells.ErrNonPositiveWidth},
		{"basis", func(c *Config) { c.Basis = 0 }, wells.ErrBasisSize},
	}

	for _, tt := range tests {
		cfg := DefaultConfig()
		tt.mutate(cfg)
		if err := cfg.Validate(); !errors.Is(err, tt.want) {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.want, err)
		}
	}
}
