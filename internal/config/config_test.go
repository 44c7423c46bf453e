package config

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"go-hex-defense/pkg/hexmap"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		wantErr     bool
		errContains string
		validate    func(*testing.T, *Config)
	}{
		{
			name: "overrides keep unspecified defaults",
			yamlContent: `
tower:
  range: 1
  damage: 10
attack:
  period: 0.5
board:
  radius: 2
  tiles:
    - {q: 0, r: 0, terrain: goal}
    - {q: 1, r: 0, terrain: Blocked}
`,
			validate: func(t *testing.T, cfg *Config) {
				if cfg.Tower.Range != 1 || cfg.Tower.Damage != 10 {
					t.Errorf("tower = %+v", cfg.Tower)
				}
				if cfg.Attack.Period != 0.5 {
					t.Errorf("attack period = %v", cfg.Attack.Period)
				}
				if cfg.Window.Width != ScreenWidth || cfg.Board.HexSize != HexSize {
					t.Errorf("defaults lost: window %+v hexSize %v", cfg.Window, cfg.Board.HexSize)
				}
				want := []TerrainOverride{
					{Hex: hexmap.Hex{Q: 0, R: 0}, Terrain: hexmap.Goal},
					{Hex: hexmap.Hex{Q: 1, R: 0}, Terrain: hexmap.Blocked},
				}
				if over := cfg.Board.Overrides(); !slices.Equal(over, want) {
					t.Errorf("overrides = %v, want %v", over, want)
				}
			},
		},
		{
			name:        "unknown terrain",
			yamlContent: "board:\n  tiles:\n    - {q: 0, r: 0, terrain: lava}\n",
			wantErr:     true,
			errContains: "unknown terrain",
		},
		{
			name:        "zero attack period",
			yamlContent: "attack:\n  period: 0\n",
			wantErr:     true,
			errContains: "attack period",
		},
		{
			name:        "negative tower range",
			yamlContent: "tower:\n  range: -1\n",
			wantErr:     true,
			errContains: "tower range",
		},
		{
			name:        "bad window",
			yamlContent: "window:\n  width: 0\n",
			wantErr:     true,
			errContains: "window size",
		},
		{
			name:        "malformed yaml",
			yamlContent: "tower: [",
			wantErr:     true,
			errContains: "failed to parse config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tt.yamlContent))
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if tt.errContains != "" && !strings.Contains(err.Error(), tt.errContains) {
					t.Fatalf("error %q does not contain %q", err, tt.errContains)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.validate != nil {
				tt.validate(t, cfg)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	cfg, err := Load("")
	if err != nil || cfg.Tower.Range != TowerRange {
		t.Fatalf("Load(\"\") = %+v, %v", cfg, err)
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "game.yaml")
	if err := os.WriteFile(path, []byte("tower:\n  damage: 25\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err = Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Tower.Damage != 25 {
		t.Errorf("damage = %d, want 25", cfg.Tower.Damage)
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil || !strings.Contains(err.Error(), "failed to read config") {
		t.Errorf("Load(missing) error = %v", err)
	}
}
