// internal/ui/button.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-wave-survivor/internal/config"
)

// Button представляет собой кликабельную кнопку в UI.
type Button struct {
	X, Y, Width, Height float32
	Text                string
	TextColor           color.Color
	BgColor             color.RGBA
	HoverColor          color.RGBA
	Disabled            bool
	fontFace            font.Face
}

// NewButton создает новую кнопку.
func NewButton(x, y, width, height float32, label string, fontFace font.Face) *Button {
	return &Button{
		X:          x,
		Y:          y,
		Width:      width,
		Height:     height,
		Text:       label,
		TextColor:  config.TextLightColor,
		BgColor:    config.ButtonColor,
		HoverColor: config.ButtonHoverColor,
		fontFace:   fontFace,
	}
}

// Contains проверяет, попадает ли точка в кнопку.
func (b *Button) Contains(x, y int) bool {
	fx, fy := float32(x), float32(y)
	return fx >= b.X && fx <= b.X+b.Width && fy >= b.Y && fy <= b.Y+b.Height
}

// IsClicked проверяет, был ли в этом кадре клик по кнопке.
func (b *Button) IsClicked() bool {
	if b.Disabled || !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	return b.Contains(ebiten.CursorPosition())
}

// Draw отрисовывает кнопку.
func (b *Button) Draw(screen *ebiten.Image) {
	bg := b.BgColor
	if b.Disabled {
		bg = darken(bg)
	} else if b.Contains(ebiten.CursorPosition()) {
		bg = b.HoverColor
	}
	vector.DrawFilledRect(screen, b.X, b.Y, b.Width, b.Height, bg, true)
	vector.StrokeRect(screen, b.X, b.Y, b.Width, b.Height, 2, config.GridColor, true)
	DrawCentered(screen, b.Text, b.fontFace, b.X+b.Width/2, b.Y+b.Height/2, b.TextColor)
}

func darken(c color.RGBA) color.RGBA {
	return color.RGBA{R: c.R / 2, G: c.G / 2, B: c.B / 2, A: c.A}
}
