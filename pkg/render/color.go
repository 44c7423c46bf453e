// pkg/render/color.go
package render

import (
	"image/color"

	"go-hex-defense/internal/config"
)

// MapColors holds all the color definitions needed to render the board.
type MapColors struct {
	BackgroundColor  color.RGBA
	PassableColor    color.RGBA
	ImpassableColor  color.RGBA
	PathColor        color.RGBA
	EntryColor       color.RGBA
	ExitColor        color.RGBA
	TextDarkColor    color.RGBA
	TextLightColor   color.RGBA
	DamageTextColor  color.RGBA
	EnemyColor       color.RGBA
	TowerStrokeColor color.RGBA
	StrokeWidth      float32
}

// DefaultMapColors returns the palette from internal/config.
func DefaultMapColors() *MapColors {
	return &MapColors{
		BackgroundColor:  config.BackgroundColor,
		PassableColor:    config.PassableColor,
		ImpassableColor:  config.ImpassableColor,
		PathColor:        config.PathColor,
		EntryColor:       config.EntryColor,
		ExitColor:        config.ExitColor,
		TextDarkColor:    config.TextDarkColor,
		TextLightColor:   config.TextLightColor,
		DamageTextColor:  config.DamageTextColor,
		EnemyColor:       config.EnemyColor,
		TowerStrokeColor: config.TowerStrokeColor,
		StrokeWidth:      float32(config.StrokeWidth),
	}
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// LightenColor adds delta to each channel, clamped at 255.
func LightenColor(c color.RGBA, delta int) color.RGBA {
	return color.RGBA{
		R: uint8(min(255, int(c.R)+delta)),
		G: uint8(min(255, int(c.G)+delta)),
		B: uint8(min(255, int(c.B)+delta)),
		A: 255,
	}
}

func isLight(c color.RGBA) bool {
	return (int(c.R)+int(c.G)+int(c.B))/3 > 128
}
