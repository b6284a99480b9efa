// pkg/render/color.go
package render

import "image/color"

// WorldColors holds the color definitions needed to render the arena.
type WorldColors struct {
	BackgroundColor color.RGBA
	GridColor       color.RGBA
	BorderColor     color.RGBA
	PlayerHitColor  color.RGBA
	EnemyFlashColor color.RGBA
	StrokeWidth     float32
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
