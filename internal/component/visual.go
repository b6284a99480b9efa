// internal/component/visual.go
package component

import "image/color"

// DamageFlash указывает, что сущность должна быть отрисована цветом урона.
// Снимается задачей планировщика.
type DamageFlash struct{}

// Text — всплывающая надпись (урон, уклонение, подбор).
type Text struct {
	Value string
	Color color.RGBA
}
