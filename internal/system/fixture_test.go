package system

import (
	"testing"

	"go-wave-survivor/internal/defs"
	"go-wave-survivor/internal/entity"
	"go-wave-survivor/internal/event"
	"go-wave-survivor/internal/physics"
	"go-wave-survivor/internal/run"
	"go-wave-survivor/internal/stats"
	"go-wave-survivor/internal/types"
	"go-wave-survivor/internal/utils"
)

type fakeRun struct {
	rs   *run.RunState
	char *defs.Character
}

func (f *fakeRun) Run() *run.RunState     { return f.rs }
func (f *fakeRun) Stats() defs.StatVector { return stats.Effective(f.char, f.rs.Stats) }

type world struct {
	ecs        *entity.ECS
	events     *event.Dispatcher
	sched      *Scheduler
	effects    *VisualEffectSystem
	combat     *CombatSystem
	projectile *ProjectileSystem
	weapons    *WeaponSystem
	waves      *WaveSystem
	pickups    *PickupSystem
	movement   *MovementSystem
	players    *PlayerSystem
	ctx        *fakeRun
	playerID   types.EntityID
	counts     map[event.EventType]int
}

func newWorld(t *testing.T, seed int64) *world {
	t.Helper()
	lib := defs.MustDefaultLibrary()
	rng := utils.NewPRNGService(seed)
	ecs := entity.NewECS()
	w := &world{
		ecs:    ecs,
		events: event.NewDispatcher(),
		ctx:    &fakeRun{rs: run.New("teto_classic", stats.Base(), run.WeaponRecord{})},
		counts: make(map[event.EventType]int),
	}
	w.ctx.rs.CurrentHP = 10
	detector := physics.CircleOverlap{}
	w.sched = NewScheduler(ecs)
	w.effects = NewVisualEffectSystem(ecs, w.sched)
	w.combat = NewCombatSystem(ecs, w.events, w.sched, w.effects, rng, w.ctx, detector)
	w.projectile = NewProjectileSystem(ecs, w.sched, w.combat, detector)
	w.weapons = NewWeaponSystem(ecs, NewEnemyRegistry(ecs), w.combat, w.projectile, lib, rng, w.ctx)
	w.waves = NewWaveSystem(ecs, w.events, rng)
	w.pickups = NewPickupSystem(ecs, w.events, rng, w.ctx, detector)
	w.movement = NewMovementSystem(ecs, w.ctx)
	w.players = NewPlayerSystem(ecs, w.events, w.ctx)
	w.playerID = w.players.Spawn(1000, 1000)

	for _, et := range []event.EventType{
		event.EnemyKilled, event.PlayerDamaged, event.PlayerDodged, event.PlayerDefeated,
		event.WaveEnded, event.PickupCollected, event.LevelUp,
	} {
		et := et
		w.events.SubscribeFunc(et, func(event.Event) { w.counts[et]++ })
	}
	return w
}

func (w *world) setStat(k defs.StatType, v float64) {
	w.ctx.rs.Stats[k] = v
}

func (w *world) enemy(x, y, hp float64) types.EntityID {
	return w.waves.SpawnEnemyAt(x, y, EnemyStats{HP: hp, Damage: 3, Speed: 50, XPValue: 1})
}
