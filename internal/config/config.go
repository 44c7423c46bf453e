// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"

	"gopkg.in/yaml.v3"

	"go-hex-defense/pkg/hexmap"
)

const (
	ScreenWidth  = 1200
	ScreenHeight = 900
	HexSize      = 19.0
	MapRadius    = 13
	MaxDeltaTime = 0.06

	TowerRange    = 3
	TowerDamage   = 10
	AttackPeriod  = 1.0 // секунды между тиками урона
	EnemySpeed    = 80.0
	EnemyHealth   = 100
	SpawnInterval = 2.0

	RestartBackoff = 1.0 // секунды
	RestartBuffer  = 16
)

var (
	BackgroundColor  = color.RGBA{20, 20, 30, 255}
	PassableColor    = color.RGBA{70, 100, 120, 220}
	ImpassableColor  = color.RGBA{150, 70, 70, 220}
	PathColor        = color.RGBA{90, 130, 150, 230}
	EntryColor       = color.RGBA{0, 255, 0, 255}
	ExitColor        = color.RGBA{255, 0, 0, 255}
	TextLightColor   = color.RGBA{240, 240, 240, 255}
	TextDarkColor    = color.RGBA{20, 20, 30, 255}
	DamageTextColor  = color.RGBA{255, 215, 0, 255}
	EnemyColor       = color.RGBA{0, 0, 0, 255}
	TowerColor       = color.RGBA{255, 50, 50, 255}
	TowerStrokeColor = color.RGBA{255, 255, 255, 255}
	StrokeWidth      = 2.0
)

// Config holds every externally supplied value the simulation reads.
type Config struct {
	Window       WindowConfig  `yaml:"window"`
	Board        BoardConfig   `yaml:"board"`
	Tower        TowerConfig   `yaml:"tower"`
	Attack       AttackConfig  `yaml:"attack"`
	Enemy        EnemyConfig   `yaml:"enemy"`
	Restart      RestartConfig `yaml:"restart"`
	Log          LogConfig     `yaml:"log"`
	Metrics      MetricsConfig `yaml:"metrics"`
	MaxDeltaTime float64       `yaml:"maxDeltaTime"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// BoardConfig describes how the grid is generated.
type BoardConfig struct {
	Radius       int            `yaml:"radius"`
	HexSize      float64        `yaml:"hexSize"`
	Seed         int64          `yaml:"seed"` // 0 = случайный
	BlockedRatio float64        `yaml:"blockedRatio"`
	Tiles        []TileOverride `yaml:"tiles"`
}

// TileOverride sets the terrain of one cell after generation.
type TileOverride struct {
	Q       int    `yaml:"q"`
	R       int    `yaml:"r"`
	Terrain string `yaml:"terrain"`
}

type TowerConfig struct {
	Range  int    `yaml:"range"`
	Damage uint32 `yaml:"damage"`
}

type AttackConfig struct {
	Period float64 `yaml:"period"`
}

type EnemyConfig struct {
	Health        uint32  `yaml:"health"`
	Speed         float64 `yaml:"speed"`
	SpawnInterval float64 `yaml:"spawnInterval"` // 0 отключает спавн
}

type RestartConfig struct {
	Backoff float64 `yaml:"backoff"`
	Buffer  int     `yaml:"buffer"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // text или json
	File   string `yaml:"file"`   // пусто = stdout
}

type MetricsConfig struct {
	Addr string `yaml:"addr"` // пусто = не поднимать HTTP
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Window: WindowConfig{Width: ScreenWidth, Height: ScreenHeight, Title: "Hex Defense"},
		Board: BoardConfig{
			Radius:       MapRadius,
			HexSize:      HexSize,
			BlockedRatio: 0.15,
		},
		Tower:        TowerConfig{Range: TowerRange, Damage: TowerDamage},
		Attack:       AttackConfig{Period: AttackPeriod},
		Enemy:        EnemyConfig{Health: EnemyHealth, Speed: EnemySpeed, SpawnInterval: SpawnInterval},
		Restart:      RestartConfig{Backoff: RestartBackoff, Buffer: RestartBuffer},
		Log:          LogConfig{Level: "info", Format: "text"},
		Metrics:      MetricsConfig{Addr: "localhost:6060"},
		MaxDeltaTime: MaxDeltaTime,
	}
}

// Load reads a YAML file over the defaults. An empty path returns Default().
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	cfg, err = Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Validate reports the first field that cannot drive a simulation.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Board.Radius < 0 {
		return fmt.Errorf("board radius must not be negative, got %d", c.Board.Radius)
	}
	if c.Board.HexSize <= 0 {
		return fmt.Errorf("hex size must be positive, got %.2f", c.Board.HexSize)
	}
	if c.Board.BlockedRatio < 0 || c.Board.BlockedRatio > 1 {
		return fmt.Errorf("blocked ratio must be within [0, 1], got %.2f", c.Board.BlockedRatio)
	}
	for i, t := range c.Board.Tiles {
		if _, err := hexmap.ParseTerrain(t.Terrain); err != nil {
			return fmt.Errorf("board tile %d (%d,%d): %w", i, t.Q, t.R, err)
		}
	}
	if c.Tower.Range < 0 {
		return fmt.Errorf("tower range must not be negative, got %d", c.Tower.Range)
	}
	if c.Attack.Period <= 0 {
		return fmt.Errorf("attack period must be positive, got %.3f", c.Attack.Period)
	}
	if c.Enemy.Speed < 0 || c.Enemy.SpawnInterval < 0 {
		return errors.New("enemy speed and spawn interval must not be negative")
	}
	if c.Restart.Backoff <= 0 {
		return fmt.Errorf("restart backoff must be positive, got %.3f", c.Restart.Backoff)
	}
	if c.Restart.Buffer <= 0 {
		return fmt.Errorf("restart buffer must be positive, got %d", c.Restart.Buffer)
	}
	if c.MaxDeltaTime <= 0 {
		return fmt.Errorf("maxDeltaTime must be positive, got %.3f", c.MaxDeltaTime)
	}
	return nil
}

// TerrainOverride is one parsed board tile override.
type TerrainOverride struct {
	Hex     hexmap.Hex
	Terrain hexmap.Terrain
}

// Overrides returns the parsed tile overrides in file order. Call after
// Validate; entries that fail to parse are skipped.
func (b BoardConfig) Overrides() []TerrainOverride {
	out := make([]TerrainOverride, 0, len(b.Tiles))
	for _, t := range b.Tiles {
		terrain, err := hexmap.ParseTerrain(t.Terrain)
		if err != nil {
			continue
		}
		out = append(out, TerrainOverride{Hex: hexmap.Hex{Q: t.Q, R: t.R}, Terrain: terrain})
	}
	return out
}
