// internal/system/projectile.go
package system

import (
	"math"

	"go-wave-survivor/internal/component"
	"go-wave-survivor/internal/config"
	"go-wave-survivor/internal/defs"
	"go-wave-survivor/internal/entity"
	"go-wave-survivor/internal/physics"
	"go-wave-survivor/internal/types"
)

// ProjectileSystem управляет движением снарядов и нанесением урона
type ProjectileSystem struct {
	ecs          *entity.ECS
	scheduler    *Scheduler
	combatSystem *CombatSystem
	detector     physics.OverlapDetector
}

func NewProjectileSystem(ecs *entity.ECS, scheduler *Scheduler, combatSystem *CombatSystem, detector physics.OverlapDetector) *ProjectileSystem {
	return &ProjectileSystem{
		ecs:          ecs,
		scheduler:    scheduler,
		combatSystem: combatSystem,
		detector:     detector,
	}
}

// Spawn создаёт снаряд в точке (x, y). Неуказанные скорость и длительность берутся по умолчанию.
func (s *ProjectileSystem) Spawn(nowMs, x, y float64, spec defs.ProjectileSpec) types.EntityID {
	speed := spec.Speed
	if speed <= 0 {
		speed = config.DefaultProjectileSpeed
	}
	duration := spec.DurationMs
	if duration <= 0 {
		duration = config.DefaultProjectileDurationMs
	}

	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{X: x, Y: y}
	s.ecs.Hitboxes[id] = &component.Hitbox{Radius: config.ProjectileRadius}
	s.ecs.Projectiles[id] = &component.Projectile{
		Angle:     spec.Angle,
		Speed:     speed,
		Damage:    spec.Damage,
		Knockback: spec.Knockback,
		Pierce:    spec.Pierce,
		Hits:      make(map[types.EntityID]bool),
		Kind:      spec.Kind,
	}
	c := config.ProjectileColor
	if spec.Kind == "beam" {
		c = config.BeamColor
	}
	s.ecs.Renderables[id] = &component.Renderable{Color: c, Radius: float32(config.ProjectileRadius)}

	s.scheduler.After(id, nowMs, duration, func() {
		s.ecs.Destroy(id)
	})
	return id
}

// Update двигает снаряды по прямой и убирает вылетевшие за пределы мира.
func (s *ProjectileSystem) Update(deltaMs float64) {
	dt := deltaMs / 1000
	for id, proj := range s.ecs.Projectiles {
		pos, ok := s.ecs.Positions[id]
		if !ok {
			s.ecs.Destroy(id)
			continue
		}
		pos.X += math.Cos(proj.Angle) * proj.Speed * dt
		pos.Y += math.Sin(proj.Angle) * proj.Speed * dt
		if pos.X < 0 || pos.X > config.WorldWidth || pos.Y < 0 || pos.Y > config.WorldHeight {
			s.ecs.Destroy(id)
		}
	}
}

// ResolveHits применяет попадания. Снаряд бьёт каждого врага не больше одного раза;
// после каждого попадания pierce уменьшается, при pierce < 0 снаряд исчезает.
func (s *ProjectileSystem) ResolveHits(nowMs float64) {
	enemyIDs := entity.SortedIDs(s.ecs.Enemies)
	for _, id := range entity.SortedIDs(s.ecs.Projectiles) {
		proj, ok := s.ecs.Projectiles[id]
		if !ok {
			continue
		}
		pos := s.ecs.Positions[id]
		if pos == nil {
			continue
		}
		projCircle := physics.Circle{X: pos.X, Y: pos.Y, R: hitRadius(s.ecs, id, config.ProjectileRadius)}

		for _, enemyID := range enemyIDs {
			if proj.Hits[enemyID] {
				continue
			}
			enemy, alive := s.ecs.Enemies[enemyID]
			epos := s.ecs.Positions[enemyID]
			if !alive || enemy.Dead || epos == nil {
				continue
			}
			if !s.detector.Overlaps(projCircle, physics.Circle{X: epos.X, Y: epos.Y, R: hitRadius(s.ecs, enemyID, config.EnemyRadius)}) {
				continue
			}

			proj.Hits[enemyID] = true
			s.combatSystem.Knockback(enemyID, proj.Angle, proj.Knockback)
			s.combatSystem.DamageEnemy(nowMs, enemyID, proj.Damage)
			proj.Pierce--
			if proj.Pierce < 0 {
				s.ecs.Destroy(id)
				break
			}
		}
	}
}

// Clear уничтожает все снаряды.
func (s *ProjectileSystem) Clear() {
	for id := range s.ecs.Projectiles {
		s.ecs.Destroy(id)
	}
}
