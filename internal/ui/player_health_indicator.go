// internal/ui/player_health_indicator.go
package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-wave-survivor/internal/config"
)

const (
	healthBarWidth  = 220
	healthBarHeight = 18
)

// PlayerHealthIndicator отображает здоровье игрока полосой.
type PlayerHealthIndicator struct {
	X, Y     float32
	fontFace font.Face
}

// NewPlayerHealthIndicator создает новый индикатор здоровья.
func NewPlayerHealthIndicator(x, y float32, fontFace font.Face) *PlayerHealthIndicator {
	return &PlayerHealthIndicator{X: x, Y: y, fontFace: fontFace}
}

// Draw рисует полосу здоровья и подпись "hp / max".
func (i *PlayerHealthIndicator) Draw(screen *ebiten.Image, health, maxHealth float64) {
	ratio := 0.0
	if maxHealth > 0 {
		ratio = health / maxHealth
	}
	ratio = max(0, min(1, ratio))

	vector.DrawFilledRect(screen, i.X, i.Y, healthBarWidth, healthBarHeight, config.SlotColor, true)
	if ratio > 0 {
		vector.DrawFilledRect(screen, i.X, i.Y, float32(healthBarWidth*ratio), healthBarHeight, config.HealthColor, true)
	}
	vector.StrokeRect(screen, i.X, i.Y, healthBarWidth, healthBarHeight, 1, config.TextLightColor, true)

	label := fmt.Sprintf("%.0f / %.0f", max(0, health), maxHealth)
	DrawCentered(screen, label, i.fontFace, i.X+healthBarWidth/2, i.Y+healthBarHeight/2, config.TextLightColor)
}
