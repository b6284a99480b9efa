// internal/ui/text.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// DefaultFace возвращает встроенный растровый шрифт.
func DefaultFace() font.Face {
	return basicfont.Face7x13
}

// DrawCentered рисует строку с центром в (cx, cy).
func DrawCentered(screen *ebiten.Image, s string, face font.Face, cx, cy float32, c color.Color) {
	bounds := text.BoundString(face, s)
	x := int(cx) - bounds.Dx()/2
	y := int(cy) + bounds.Dy()/2
	text.Draw(screen, s, face, x, y, c)
}

// DrawLeft рисует строку от левого края; y — верх строки.
func DrawLeft(screen *ebiten.Image, s string, face font.Face, x, y float32, c color.Color) {
	text.Draw(screen, s, face, int(x), int(y)+face.Metrics().Ascent.Ceil(), c)
}
