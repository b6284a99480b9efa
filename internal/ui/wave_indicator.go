// internal/ui/wave_indicator.go
package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"

	"go-wave-survivor/internal/config"
)

// WaveIndicator отображает номер волны римскими цифрами и оставшееся время.
type WaveIndicator struct {
	X, Y     float32
	fontFace font.Face
}

// NewWaveIndicator создает новый индикатор волны.
func NewWaveIndicator(x, y float32, fontFace font.Face) *WaveIndicator {
	return &WaveIndicator{X: x, Y: y, fontFace: fontFace}
}

// toRoman конвертирует целое число в римское.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// Draw отрисовывает индикатор на экране.
func (i *WaveIndicator) Draw(screen *ebiten.Image, waveNumber int, remainingMs float64) {
	DrawCentered(screen, "WAVE "+toRoman(waveNumber), i.fontFace, i.X, i.Y, config.TextLightColor)
	seconds := int(math.Ceil(remainingMs / 1000))
	c := config.TextLightColor
	if seconds <= 5 {
		c = config.PlayerHitColor
	}
	DrawCentered(screen, fmt.Sprintf("%d", seconds), i.fontFace, i.X, i.Y+18, c)
}
