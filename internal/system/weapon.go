// internal/system/weapon.go
package system

import (
	"log"

	"go-wave-survivor/internal/component"
	"go-wave-survivor/internal/config"
	"go-wave-survivor/internal/defs"
	"go-wave-survivor/internal/entity"
	"go-wave-survivor/internal/interfaces"
	"go-wave-survivor/internal/run"
	"go-wave-survivor/internal/stats"
	"go-wave-survivor/internal/types"
	"go-wave-survivor/internal/utils"
)

// WeaponSystem наводит и разряжает оружие игрока.
type WeaponSystem struct {
	ecs         *entity.ECS
	registry    TargetRegistry
	combat      *CombatSystem
	projectiles *ProjectileSystem
	lib         *defs.Library
	rng         *utils.PRNGService
	ctx         interfaces.RunContext
}

func NewWeaponSystem(ecs *entity.ECS, registry TargetRegistry, combat *CombatSystem,
	projectiles *ProjectileSystem, lib *defs.Library, rng *utils.PRNGService,
	ctx interfaces.RunContext) *WeaponSystem {
	return &WeaponSystem{
		ecs:         ecs,
		registry:    registry,
		combat:      combat,
		projectiles: projectiles,
		lib:         lib,
		rng:         rng,
		ctx:         ctx,
	}
}

// Equip заменяет экземпляры оружия на записи из забега. Таймер каждого
// экземпляра сдвигается на случайную долю перезарядки, чтобы залпы не совпадали.
func (s *WeaponSystem) Equip(records []run.WeaponRecord, nowMs float64) {
	for id := range s.ecs.Weapons {
		s.ecs.Destroy(id)
	}
	st := s.ctx.Stats()
	for _, rec := range records {
		def, ok := s.lib.Weapon(rec.WeaponID)
		if !ok {
			log.Printf("WeaponSystem: unknown weapon %q in run, skipped", rec.WeaponID)
			continue
		}
		id := s.ecs.NewEntity()
		s.ecs.Weapons[id] = &component.WeaponInstance{
			DefID:         rec.WeaponID,
			InstanceID:    rec.InstanceID,
			LastFiredAtMs: nowMs - s.rng.Float64()*stats.WeaponCooldown(def.Stats, st),
		}
	}
}

// Update проходит по экземплярам оружия: проверяет цель, ищет новую и стреляет по готовности.
func (s *WeaponSystem) Update(nowMs float64) {
	ppos, ok := s.ecs.Positions[s.ecs.PlayerID]
	if !ok {
		return
	}
	st := s.ctx.Stats()
	for _, id := range entity.SortedIDs(s.ecs.Weapons) {
		w := s.ecs.Weapons[id]
		def, ok := s.lib.Weapon(w.DefID)
		if !ok {
			continue
		}
		reach := stats.WeaponRange(def.Stats, st)

		target := s.validateTarget(w, ppos.X, ppos.Y, reach)
		if target == nil {
			target = s.acquireTarget(ppos.X, ppos.Y, reach)
			if target == nil {
				w.TargetID = 0
				continue
			}
			w.TargetID = target.ID()
		}

		tx, ty := target.Position()
		w.Angle = utils.AngleBetween(ppos.X, ppos.Y, tx, ty)

		if nowMs < w.LastFiredAtMs+stats.WeaponCooldown(def.Stats, st) {
			continue
		}
		w.LastFiredAtMs = nowMs
		s.fire(nowMs, def, target, w.Angle, ppos, st)
	}
}

func (s *WeaponSystem) validateTarget(w *component.WeaponInstance, px, py, reach float64) Targetable {
	if w.TargetID == 0 {
		return nil
	}
	t, ok := s.registry.Lookup(w.TargetID)
	if !ok || !t.IsActive() {
		w.TargetID = 0
		return nil
	}
	tx, ty := t.Position()
	if utils.Distance(px, py, tx, ty) > reach {
		w.TargetID = 0
		return nil
	}
	return t
}

// acquireTarget выбирает случайную цель в радиусе, отдавая предпочтение крепким врагам.
func (s *WeaponSystem) acquireTarget(px, py, reach float64) Targetable {
	var inRange, strong []Targetable
	for _, t := range s.registry.Targets() {
		if !t.IsActive() {
			continue
		}
		tx, ty := t.Position()
		if utils.Distance(px, py, tx, ty) > reach {
			continue
		}
		inRange = append(inRange, t)
		if t.CurrentHP() >= config.StrongEnemyHealth {
			strong = append(strong, t)
		}
	}
	pool := inRange
	if len(strong) > 0 {
		pool = strong
	}
	if len(pool) == 0 {
		return nil
	}
	return pool[s.rng.Pick(len(pool))]
}

func (s *WeaponSystem) fire(nowMs float64, def defs.Weapon, target Targetable, angle float64,
	ppos *component.Position, st defs.StatVector) {
	damage := stats.WeaponDamage(def.Stats, st)
	switch def.Type {
	case defs.WeaponRanged:
		s.projectiles.Spawn(nowMs, ppos.X, ppos.Y, defs.ProjectileSpec{
			Angle:      angle,
			Speed:      def.Stats.ProjectileSpeed,
			Damage:     damage,
			DurationMs: def.Stats.DurationMs,
			Knockback:  def.Stats.Knockback,
			Pierce:     def.Stats.PierceCount,
			Kind:       def.ProjectileKey,
		})
	default:
		s.combat.Knockback(target.ID(), angle, def.Stats.Knockback)
		s.combat.DamageEnemy(nowMs, target.ID(), damage)
	}
}

// Instances возвращает экземпляры оружия в порядке экипировки.
func (s *WeaponSystem) Instances() []component.WeaponInstance {
	ids := entity.SortedIDs(s.ecs.Weapons)
	out := make([]component.WeaponInstance, 0, len(ids))
	for _, id := range ids {
		out = append(out, *s.ecs.Weapons[id])
	}
	return out
}

// TargetOf возвращает текущую цель экземпляра, если она ещё жива.
func (s *WeaponSystem) TargetOf(instanceID string) (types.EntityID, bool) {
	for _, w := range s.ecs.Weapons {
		if w.InstanceID != instanceID || w.TargetID == 0 {
			continue
		}
		if t, ok := s.registry.Lookup(w.TargetID); ok && t.IsActive() {
			return w.TargetID, true
		}
	}
	return 0, false
}
