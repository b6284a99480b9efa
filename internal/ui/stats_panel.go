// internal/ui/stats_panel.go
package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-wave-survivor/internal/config"
	"go-wave-survivor/internal/defs"
)

const (
	statsPanelWidth = 240
	statsLineHeight = 18
	statsPadding    = 10
)

// percentStats отображаются со знаком процента.
var percentStats = map[defs.StatType]bool{
	defs.StatDamage:      true,
	defs.StatAttackSpeed: true,
	defs.StatCritChance:  true,
	defs.StatDodgeChance: true,
	defs.StatSpeed:       true,
	defs.StatLifesteal:   true,
	defs.StatHarvest:     true,
}

// StatsPanel показывает итоговые характеристики персонажа.
type StatsPanel struct {
	X, Y     float32
	fontFace font.Face
}

func NewStatsPanel(x, y float32, fontFace font.Face) *StatsPanel {
	return &StatsPanel{X: x, Y: y, fontFace: fontFace}
}

// FormatStat возвращает подпись значения, например "+15%" или "-3".
func FormatStat(key defs.StatType, value float64) string {
	s := fmt.Sprintf("%+.0f", value)
	if value == 0 {
		s = "0"
	}
	if percentStats[key] {
		s += "%"
	}
	return s
}

func (p *StatsPanel) Draw(screen *ebiten.Image, stats defs.StatVector) {
	height := float32(statsPadding*2 + statsLineHeight*(len(defs.AllStats)+1))
	vector.DrawFilledRect(screen, p.X, p.Y, statsPanelWidth, height, config.SlotColor, true)
	vector.StrokeRect(screen, p.X, p.Y, statsPanelWidth, height, 1, config.GridColor, true)

	y := p.Y + statsPadding
	DrawLeft(screen, "STATS", p.fontFace, p.X+statsPadding, y, config.GoldColor)
	y += statsLineHeight
	for _, key := range defs.AllStats {
		value := stats[key]
		c := config.TextLightColor
		switch {
		case value > 0:
			c = config.HealthColor
		case value < 0:
			c = config.LockedColor
		}
		DrawLeft(screen, string(key), p.fontFace, p.X+statsPadding, y, config.TextMutedColor)
		DrawLeft(screen, FormatStat(key, value), p.fontFace, p.X+statsPanelWidth-70, y, c)
		y += statsLineHeight
	}
}
