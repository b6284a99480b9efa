// internal/system/movement.go
package system

import (
	"math"

	"go-wave-survivor/internal/config"
	"go-wave-survivor/internal/entity"
	"go-wave-survivor/internal/interfaces"
	"go-wave-survivor/internal/physics"
	"go-wave-survivor/internal/stats"
	"go-wave-survivor/internal/utils"
)

// MovementSystem обновляет позиции игрока и врагов
type MovementSystem struct {
	ecs *entity.ECS
	ctx interfaces.RunContext
}

func NewMovementSystem(ecs *entity.ECS, ctx interfaces.RunContext) *MovementSystem {
	return &MovementSystem{ecs: ecs, ctx: ctx}
}

// MovePlayer сдвигает игрока по нормализованному вектору намерения со скоростью MoveSpeed.
func (s *MovementSystem) MovePlayer(move physics.Vec2, deltaMs float64) {
	pos, ok := s.ecs.Positions[s.ecs.PlayerID]
	if !ok {
		return
	}
	step := move.Normalize().Scale(stats.MoveSpeed(s.ctx.Stats()) * deltaMs / 1000)
	pos.X = utils.Clamp(pos.X+step.X, 0, config.WorldWidth)
	pos.Y = utils.Clamp(pos.Y+step.Y, 0, config.WorldHeight)
}

// MoveEnemies ведёт каждого врага прямо к игроку с его скоростью.
func (s *MovementSystem) MoveEnemies(deltaMs float64) {
	ppos, ok := s.ecs.Positions[s.ecs.PlayerID]
	if !ok {
		return
	}
	dt := deltaMs / 1000
	for id, enemy := range s.ecs.Enemies {
		pos, hasPos := s.ecs.Positions[id]
		vel, hasVel := s.ecs.Velocities[id]
		if !hasPos || !hasVel || enemy.Dead {
			continue
		}
		dist := utils.Distance(pos.X, pos.Y, ppos.X, ppos.Y)
		if dist == 0 {
			continue
		}
		vel.Angle = utils.AngleBetween(pos.X, pos.Y, ppos.X, ppos.Y)
		moveDistance := math.Min(vel.Speed*dt, dist)
		pos.X += math.Cos(vel.Angle) * moveDistance
		pos.Y += math.Sin(vel.Angle) * moveDistance
	}
}
