// internal/system/combat.go
package system

import (
	"fmt"
	"math"

	"go-wave-survivor/internal/config"
	"go-wave-survivor/internal/defs"
	"go-wave-survivor/internal/entity"
	"go-wave-survivor/internal/event"
	"go-wave-survivor/internal/interfaces"
	"go-wave-survivor/internal/physics"
	"go-wave-survivor/internal/stats"
	"go-wave-survivor/internal/types"
	"go-wave-survivor/internal/utils"
)

// DamageOutcome — чем закончилась попытка ранить игрока.
type DamageOutcome int

const (
	OutcomeNegated DamageOutcome = iota // неуязвимость, урон не рассматривался
	OutcomeDodged                       // уклонение, HP не изменились
	OutcomeApplied                      // HP уменьшены
)

func (o DamageOutcome) String() string {
	switch o {
	case OutcomeNegated:
		return "negated"
	case OutcomeDodged:
		return "dodged"
	case OutcomeApplied:
		return "applied"
	}
	return fmt.Sprintf("DamageOutcome(%d)", int(o))
}

// CombatSystem разрешает урон по игроку и по врагам.
type CombatSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	scheduler       *Scheduler
	effects         *VisualEffectSystem
	rng             *utils.PRNGService
	ctx             interfaces.RunContext
	detector        physics.OverlapDetector
}

func NewCombatSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, scheduler *Scheduler,
	effects *VisualEffectSystem, rng *utils.PRNGService, ctx interfaces.RunContext,
	detector physics.OverlapDetector) *CombatSystem {
	return &CombatSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		scheduler:       scheduler,
		effects:         effects,
		rng:             rng,
		ctx:             ctx,
		detector:        detector,
	}
}

// DamagePlayer проводит урон через неуязвимость, броню и уклонение.
func (s *CombatSystem) DamagePlayer(nowMs, amount float64) DamageOutcome {
	playerID := s.ecs.PlayerID
	player, ok := s.ecs.Players[playerID]
	if !ok || player.Invulnerable || player.Defeated {
		return OutcomeNegated
	}

	st := s.ctx.Stats()
	damage := amount * stats.ArmorMultiplier(st[defs.StatArmor])

	pos := s.ecs.Positions[playerID]
	if s.rng.Percent() < st[defs.StatDodgeChance] {
		if pos != nil {
			s.effects.FloatText(pos.X, pos.Y-20, "Dodge", config.TextMutedColor, nowMs)
		}
		s.eventDispatcher.Dispatch(event.Event{Type: event.PlayerDodged})
		return OutcomeDodged
	}

	rs := s.ctx.Run()
	rs.CurrentHP -= damage
	s.effects.Flash(playerID, nowMs)
	if pos != nil {
		s.effects.FloatText(pos.X, pos.Y-20, formatDamage(damage), config.PlayerHitColor, nowMs)
	}
	s.eventDispatcher.Dispatch(event.Event{Type: event.PlayerDamaged, Data: event.PlayerDamagedData{Amount: damage}})

	player.Invulnerable = true
	s.scheduler.After(playerID, nowMs, config.InvulnerabilityMs, func() {
		if p, ok := s.ecs.Players[playerID]; ok {
			p.Invulnerable = false
		}
	})

	if rs.CurrentHP <= 0 && !player.Defeated {
		player.Defeated = true
		s.eventDispatcher.Dispatch(event.Event{Type: event.PlayerDefeated})
	}
	return OutcomeApplied
}

// DamageEnemy вычитает урон без модификаторов. Возвращает false, если
// ссылка устарела или враг уже мёртв. EnemyKilled отправляется ровно один раз.
func (s *CombatSystem) DamageEnemy(nowMs float64, id types.EntityID, amount float64) bool {
	if !s.ecs.IsAlive(id) {
		return false
	}
	enemy, ok := s.ecs.Enemies[id]
	health, hasHealth := s.ecs.Healths[id]
	if !ok || !hasHealth || enemy.Dead {
		return false
	}

	health.Value -= amount
	pos := s.ecs.Positions[id]
	if pos != nil {
		s.effects.FloatText(pos.X, pos.Y-10, formatDamage(amount), config.TextLightColor, nowMs)
	}
	if health.Value > 0 {
		s.effects.Flash(id, nowMs)
		return true
	}

	enemy.Dead = true
	data := event.EnemyKilledData{XPValue: enemy.XPValue}
	if pos != nil {
		data.X, data.Y = pos.X, pos.Y
	}
	s.ecs.Destroy(id)
	s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyKilled, Data: data})
	return true
}

// Knockback отталкивает сущность на dist пикселей по направлению angle, не выпуская её за пределы мира.
func (s *CombatSystem) Knockback(id types.EntityID, angle, dist float64) {
	pos, ok := s.ecs.Positions[id]
	if !ok || dist == 0 {
		return
	}
	pos.X = utils.Clamp(pos.X+math.Cos(angle)*dist, 0, config.WorldWidth)
	pos.Y = utils.Clamp(pos.Y+math.Sin(angle)*dist, 0, config.WorldHeight)
}

// ResolveContacts наносит контактный урон от каждого врага, касающегося игрока,
// и отталкивает такого врага от игрока.
func (s *CombatSystem) ResolveContacts(nowMs float64) {
	playerID := s.ecs.PlayerID
	ppos, ok := s.ecs.Positions[playerID]
	if !ok {
		return
	}
	playerCircle := physics.Circle{X: ppos.X, Y: ppos.Y, R: config.PlayerRadius}
	for _, id := range entity.SortedIDs(s.ecs.Enemies) {
		enemy := s.ecs.Enemies[id]
		epos, ok := s.ecs.Positions[id]
		if !ok || enemy.Dead {
			continue
		}
		if !s.detector.Overlaps(playerCircle, physics.Circle{X: epos.X, Y: epos.Y, R: hitRadius(s.ecs, id, config.EnemyRadius)}) {
			continue
		}
		s.DamagePlayer(nowMs, enemy.Damage)
		s.Knockback(id, utils.AngleBetween(ppos.X, ppos.Y, epos.X, epos.Y), config.ContactKnockback)
	}
}

func hitRadius(ecs *entity.ECS, id types.EntityID, fallback float64) float64 {
	if hb, ok := ecs.Hitboxes[id]; ok {
		return hb.Radius
	}
	return fallback
}

func formatDamage(v float64) string {
	return fmt.Sprintf("%.0f", math.Ceil(v))
}
