// internal/entity/ecs.go
package entity

import (
	"slices"

	"go-wave-survivor/internal/component"
	"go-wave-survivor/internal/types"
)

type ECS struct {
	GameTime      float64 // мс с начала волны, задаётся снаружи через Update
	NextID        types.EntityID
	alive         map[types.EntityID]struct{}
	Positions     map[types.EntityID]*component.Position
	Velocities    map[types.EntityID]*component.Velocity
	Healths       map[types.EntityID]*component.Health
	Hitboxes      map[types.EntityID]*component.Hitbox
	Renderables   map[types.EntityID]*component.Renderable
	Enemies       map[types.EntityID]*component.Enemy
	Projectiles   map[types.EntityID]*component.Projectile
	Pickups       map[types.EntityID]*component.Pickup
	Weapons       map[types.EntityID]*component.WeaponInstance
	Texts         map[types.EntityID]*component.Text
	DamageFlashes map[types.EntityID]*component.DamageFlash
	Players       map[types.EntityID]*component.Player
	PlayerID      types.EntityID // 0 — игрока нет
	Wave          *component.Wave
}

func NewECS() *ECS {
	ecs := &ECS{NextID: 1}
	ecs.Reset()
	return ecs
}

// Reset уничтожает все сущности. Счётчик ID не сбрасывается, так что
// старые ссылки остаются недействительными.
func (ecs *ECS) Reset() {
	*ecs = ECS{
		NextID:        ecs.NextID,
		alive:         make(map[types.EntityID]struct{}),
		Positions:     make(map[types.EntityID]*component.Position),
		Velocities:    make(map[types.EntityID]*component.Velocity),
		Healths:       make(map[types.EntityID]*component.Health),
		Hitboxes:      make(map[types.EntityID]*component.Hitbox),
		Renderables:   make(map[types.EntityID]*component.Renderable),
		Enemies:       make(map[types.EntityID]*component.Enemy),
		Projectiles:   make(map[types.EntityID]*component.Projectile),
		Pickups:       make(map[types.EntityID]*component.Pickup),
		Weapons:       make(map[types.EntityID]*component.WeaponInstance),
		Texts:         make(map[types.EntityID]*component.Text),
		DamageFlashes: make(map[types.EntityID]*component.DamageFlash),
		Players:       make(map[types.EntityID]*component.Player),
	}
}

// NewEntity выдаёт новый ID. ID монотонны и не переиспользуются.
func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	ecs.alive[id] = struct{}{}
	return id
}

// IsAlive проверяет, что сущность создана и ещё не уничтожена.
func (ecs *ECS) IsAlive(id types.EntityID) bool {
	_, ok := ecs.alive[id]
	return ok
}

// Destroy удаляет сущность из всех компонентов. Повторный вызов безопасен.
func (ecs *ECS) Destroy(id types.EntityID) {
	delete(ecs.alive, id)
	delete(ecs.Positions, id)
	delete(ecs.Velocities, id)
	delete(ecs.Healths, id)
	delete(ecs.Hitboxes, id)
	delete(ecs.Renderables, id)
	delete(ecs.Enemies, id)
	delete(ecs.Projectiles, id)
	delete(ecs.Pickups, id)
	delete(ecs.Weapons, id)
	delete(ecs.Texts, id)
	delete(ecs.DamageFlashes, id)
	delete(ecs.Players, id)
	if ecs.PlayerID == id {
		ecs.PlayerID = 0
	}
}

// Count возвращает число живых сущностей.
func (ecs *ECS) Count() int {
	return len(ecs.alive)
}

// SortedIDs возвращает ключи компонента по возрастанию, чтобы обход
// был детерминированным при фиксированном сиде.
func SortedIDs[T any](m map[types.EntityID]*T) []types.EntityID {
	ids := make([]types.EntityID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
