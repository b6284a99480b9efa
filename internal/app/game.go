// internal/app/game.go
package app

import (
	"go-wave-survivor/internal/config"
	"go-wave-survivor/internal/defs"
	"go-wave-survivor/internal/entity"
	"go-wave-survivor/internal/event"
	"go-wave-survivor/internal/interfaces"
	"go-wave-survivor/internal/physics"
	"go-wave-survivor/internal/run"
	"go-wave-survivor/internal/system"
	"go-wave-survivor/internal/utils"
)

// Game holds the combat world: the ECS and every system that ticks it.
type Game struct {
	ECS                *entity.ECS
	EventDispatcher    *event.Dispatcher
	Scheduler          *system.Scheduler
	Registry           *system.EnemyRegistry
	VisualEffectSystem *system.VisualEffectSystem
	CombatSystem       *system.CombatSystem
	ProjectileSystem   *system.ProjectileSystem
	WeaponSystem       *system.WeaponSystem
	WaveSystem         *system.WaveSystem
	PickupSystem       *system.PickupSystem
	MovementSystem     *system.MovementSystem
	PlayerSystem       *system.PlayerSystem
}

// NewGame wires the combat systems around one ECS.
func NewGame(lib *defs.Library, rng *utils.PRNGService, ctx interfaces.RunContext,
	eventDispatcher *event.Dispatcher, detector physics.OverlapDetector) *Game {
	ecs := entity.NewECS()
	g := &Game{
		ECS:             ecs,
		EventDispatcher: eventDispatcher,
		Scheduler:       system.NewScheduler(ecs),
		Registry:        system.NewEnemyRegistry(ecs),
	}
	g.VisualEffectSystem = system.NewVisualEffectSystem(ecs, g.Scheduler)
	g.CombatSystem = system.NewCombatSystem(ecs, eventDispatcher, g.Scheduler, g.VisualEffectSystem, rng, ctx, detector)
	g.ProjectileSystem = system.NewProjectileSystem(ecs, g.Scheduler, g.CombatSystem, detector)
	g.WeaponSystem = system.NewWeaponSystem(ecs, g.Registry, g.CombatSystem, g.ProjectileSystem, lib, rng, ctx)
	g.WaveSystem = system.NewWaveSystem(ecs, eventDispatcher, rng)
	g.PickupSystem = system.NewPickupSystem(ecs, eventDispatcher, rng, ctx, detector)
	g.MovementSystem = system.NewMovementSystem(ecs, ctx)
	g.PlayerSystem = system.NewPlayerSystem(ecs, eventDispatcher, ctx)
	return g
}

// StartWave clears the world, places the player in the middle and arms its weapons.
func (g *Game) StartWave(number int, weapons []run.WeaponRecord, nowMs float64) {
	g.Clear()
	g.ECS.GameTime = nowMs
	g.PlayerSystem.Spawn(config.WorldWidth/2, config.WorldHeight/2)
	g.WeaponSystem.Equip(weapons, nowMs)
	g.WaveSystem.Start(number)
}

// Clear destroys every entity and cancels pending tasks.
func (g *Game) Clear() {
	g.Scheduler.Clear()
	g.ECS.Reset()
}

// Update advances the world by one tick. All projectile and contact overlaps
// resolve before the wave timer can expire.
func (g *Game) Update(nowMs, deltaMs float64, move physics.Vec2) {
	g.ECS.GameTime = nowMs
	g.Scheduler.Update(nowMs)

	g.MovementSystem.MovePlayer(move, deltaMs)
	g.MovementSystem.MoveEnemies(deltaMs)
	g.VisualEffectSystem.Update(deltaMs)

	g.WeaponSystem.Update(nowMs)
	g.ProjectileSystem.Update(deltaMs)

	g.ProjectileSystem.ResolveHits(nowMs)
	g.CombatSystem.ResolveContacts(nowMs)
	g.PickupSystem.CollectOverlaps()
	g.PickupSystem.Update(deltaMs)

	if g.PlayerDefeated() {
		return
	}
	g.WaveSystem.Update(deltaMs)
}

// PlayerDefeated reports whether the player entity has hit zero HP this wave.
func (g *Game) PlayerDefeated() bool {
	p, ok := g.ECS.Players[g.ECS.PlayerID]
	return ok && p.Defeated
}

// PlayerPosition returns the player's world position, or the world center without a player.
func (g *Game) PlayerPosition() (float64, float64) {
	if pos, ok := g.ECS.Positions[g.ECS.PlayerID]; ok {
		return pos.X, pos.Y
	}
	return config.WorldWidth / 2, config.WorldHeight / 2
}

// NearestEnemy finds the closest active enemy within maxDist of the player.
func (g *Game) NearestEnemy(maxDist float64) (float64, float64, bool) {
	px, py := g.PlayerPosition()
	best := maxDist
	var bx, by float64
	found := false
	for _, t := range g.Registry.Targets() {
		tx, ty := t.Position()
		if d := utils.Distance(px, py, tx, ty); d <= best {
			best, bx, by, found = d, tx, ty, true
		}
	}
	return bx, by, found
}
