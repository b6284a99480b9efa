// internal/system/player_system.go
package system

import (
	"log"

	"go-wave-survivor/internal/component"
	"go-wave-survivor/internal/config"
	"go-wave-survivor/internal/defs"
	"go-wave-survivor/internal/entity"
	"go-wave-survivor/internal/event"
	"go-wave-survivor/internal/interfaces"
	"go-wave-survivor/internal/types"
)

// PlayerSystem отвечает за сущность игрока и начисление уровней за собранный опыт.
type PlayerSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	ctx             interfaces.RunContext
}

func NewPlayerSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, ctx interfaces.RunContext) *PlayerSystem {
	ps := &PlayerSystem{ecs: ecs, eventDispatcher: eventDispatcher, ctx: ctx}
	eventDispatcher.Subscribe(event.PickupCollected, ps)
	return ps
}

// Spawn создаёт сущность игрока в точке (x, y).
func (s *PlayerSystem) Spawn(x, y float64) types.EntityID {
	id := s.ecs.NewEntity()
	s.ecs.PlayerID = id
	s.ecs.Positions[id] = &component.Position{X: x, Y: y}
	s.ecs.Hitboxes[id] = &component.Hitbox{Radius: config.PlayerRadius}
	s.ecs.Players[id] = &component.Player{}
	s.ecs.Renderables[id] = &component.Renderable{Color: config.PlayerColor, Radius: float32(config.PlayerRadius / 2), HasStroke: true}
	return id
}

// OnEvent обрабатывает события, на которые подписана система.
func (s *PlayerSystem) OnEvent(e event.Event) {
	if e.Type != event.PickupCollected {
		return
	}
	rs := s.ctx.Run()
	if rs == nil {
		return
	}

	// Проверяем, не пора ли повышать уровень; за один подбор можно взять несколько
	for rs.XP >= config.CalculateXPForNextLevel(rs.Level) {
		rs.XP -= config.CalculateXPForNextLevel(rs.Level)
		rs.Level++
		rs.Stats[defs.StatMaxHP]++
		rs.CurrentHP++
		log.Printf("Level up: %d", rs.Level)
		s.eventDispatcher.Dispatch(event.Event{Type: event.LevelUp, Data: rs.Level})
	}
}
