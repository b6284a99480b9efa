// internal/system/visual_effect.go
package system

import (
	"image/color"

	"go-wave-survivor/internal/component"
	"go-wave-survivor/internal/config"
	"go-wave-survivor/internal/entity"
	"go-wave-survivor/internal/types"
)

// floatingTextSpeed — скорость всплытия надписей, пикселей в секунду.
const floatingTextSpeed = 30.0

// VisualEffectSystem управляет визуальными эффектами: вспышками урона и всплывающим текстом.
// Время жизни эффектов отсчитывает планировщик.
type VisualEffectSystem struct {
	ecs       *entity.ECS
	scheduler *Scheduler
}

// NewVisualEffectSystem создает новую систему визуальных эффектов.
func NewVisualEffectSystem(ecs *entity.ECS, scheduler *Scheduler) *VisualEffectSystem {
	return &VisualEffectSystem{ecs: ecs, scheduler: scheduler}
}

// Flash подсвечивает сущность цветом урона на DamageFlashMs.
func (s *VisualEffectSystem) Flash(id types.EntityID, nowMs float64) {
	if !s.ecs.IsAlive(id) {
		return
	}
	s.ecs.DamageFlashes[id] = &component.DamageFlash{}
	s.scheduler.After(id, nowMs, config.DamageFlashMs, func() {
		delete(s.ecs.DamageFlashes, id)
	})
}

// FloatText создаёт надпись, которая всплывает и исчезает через FloatingTextMs.
func (s *VisualEffectSystem) FloatText(x, y float64, value string, c color.RGBA, nowMs float64) types.EntityID {
	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{X: x, Y: y}
	s.ecs.Texts[id] = &component.Text{Value: value, Color: c}
	s.scheduler.After(id, nowMs, config.FloatingTextMs, func() {
		s.ecs.Destroy(id)
	})
	return id
}

// Update сдвигает надписи вверх.
func (s *VisualEffectSystem) Update(deltaMs float64) {
	for id := range s.ecs.Texts {
		if pos, ok := s.ecs.Positions[id]; ok {
			pos.Y -= floatingTextSpeed * deltaMs / 1000
		}
	}
}
