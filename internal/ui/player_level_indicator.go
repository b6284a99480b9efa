// internal/ui/player_level_indicator.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-wave-survivor/internal/config"
)

const (
	xpBarWidth  = 220
	xpBarHeight = 10
	xpBarBorder = 1
)

var xpFillColor = color.RGBA{70, 100, 120, 220}

// PlayerLevelIndicator рисует полосу опыта под полосой здоровья, уровень справа.
type PlayerLevelIndicator struct {
	X, Y     float32
	fontFace font.Face
}

func NewPlayerLevelIndicator(x, y float32, fontFace font.Face) *PlayerLevelIndicator {
	return &PlayerLevelIndicator{X: x, Y: y, fontFace: fontFace}
}

// Draw принимает опыт, накопленный к текущему уровню, и порог следующего.
func (i *PlayerLevelIndicator) Draw(screen *ebiten.Image, level, xp, xpToNext int) {
	vector.DrawFilledRect(screen, i.X, i.Y, xpBarWidth, xpBarHeight, config.SlotColor, true)

	if xpToNext > 0 && xp > 0 {
		ratio := min(1, float32(xp)/float32(xpToNext))
		inner := float32(xpBarWidth - 2*xpBarBorder)
		vector.DrawFilledRect(screen, i.X+xpBarBorder, i.Y+xpBarBorder, inner*ratio, xpBarHeight-2*xpBarBorder, xpFillColor, true)
	}
	vector.StrokeRect(screen, i.X, i.Y, xpBarWidth, xpBarHeight, xpBarBorder, config.TextLightColor, true)

	label := fmt.Sprintf("LV %d  %d/%d", level, xp, xpToNext)
	DrawLeft(screen, label, i.fontFace, i.X+xpBarWidth+8, i.Y-2, config.TextLightColor)
}
