// internal/system/target.go
package system

import (
	"go-wave-survivor/internal/entity"
	"go-wave-survivor/internal/types"
)

// Targetable — всё, что оружие знает о цели.
type Targetable interface {
	ID() types.EntityID
	IsActive() bool
	Position() (x, y float64)
	CurrentHP() float64
}

// TargetRegistry отдаёт цели оружию. Передаётся в WeaponSystem явно.
type TargetRegistry interface {
	Targets() []Targetable
	Lookup(id types.EntityID) (Targetable, bool)
}

var _ TargetRegistry = (*EnemyRegistry)(nil)

// EnemyRegistry — реестр целей поверх ECS: целями являются живые враги.
type EnemyRegistry struct {
	ecs *entity.ECS
}

func NewEnemyRegistry(ecs *entity.ECS) *EnemyRegistry {
	return &EnemyRegistry{ecs: ecs}
}

// Targets возвращает активных врагов в порядке ID.
func (r *EnemyRegistry) Targets() []Targetable {
	ids := entity.SortedIDs(r.ecs.Enemies)
	out := make([]Targetable, 0, len(ids))
	for _, id := range ids {
		t := enemyTarget{ecs: r.ecs, id: id}
		if t.IsActive() {
			out = append(out, t)
		}
	}
	return out
}

// Lookup разрешает слабую ссылку. Для уничтоженной сущности ok == false.
func (r *EnemyRegistry) Lookup(id types.EntityID) (Targetable, bool) {
	if id == 0 || !r.ecs.IsAlive(id) {
		return nil, false
	}
	if _, ok := r.ecs.Enemies[id]; !ok {
		return nil, false
	}
	return enemyTarget{ecs: r.ecs, id: id}, true
}

type enemyTarget struct {
	ecs *entity.ECS
	id  types.EntityID
}

func (t enemyTarget) ID() types.EntityID { return t.id }

func (t enemyTarget) IsActive() bool {
	if !t.ecs.IsAlive(t.id) {
		return false
	}
	e, ok := t.ecs.Enemies[t.id]
	return ok && !e.Dead
}

func (t enemyTarget) Position() (float64, float64) {
	if pos, ok := t.ecs.Positions[t.id]; ok {
		return pos.X, pos.Y
	}
	return 0, 0
}

func (t enemyTarget) CurrentHP() float64 {
	if h, ok := t.ecs.Healths[t.id]; ok {
		return h.Value
	}
	return 0
}
