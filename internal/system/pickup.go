// internal/system/pickup.go
package system

import (
	"go-wave-survivor/internal/component"
	"go-wave-survivor/internal/config"
	"go-wave-survivor/internal/entity"
	"go-wave-survivor/internal/event"
	"go-wave-survivor/internal/interfaces"
	"go-wave-survivor/internal/physics"
	"go-wave-survivor/internal/stats"
	"go-wave-survivor/internal/types"
	"go-wave-survivor/internal/utils"
)

// PickupKindMaterial — единственный тип выпадающих материалов.
const PickupKindMaterial = "material"

// PickupSystem роняет материалы из врагов, притягивает их к игроку и начисляет при подборе.
type PickupSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	rng             *utils.PRNGService
	ctx             interfaces.RunContext
	detector        physics.OverlapDetector
}

func NewPickupSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, rng *utils.PRNGService,
	ctx interfaces.RunContext, detector physics.OverlapDetector) *PickupSystem {
	ps := &PickupSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		rng:             rng,
		ctx:             ctx,
		detector:        detector,
	}
	eventDispatcher.Subscribe(event.EnemyKilled, ps)
	return ps
}

// OnEvent роняет от 0 до 5 материалов на месте смерти врага.
func (s *PickupSystem) OnEvent(e event.Event) {
	data, ok := e.Data.(event.EnemyKilledData)
	if !ok {
		return
	}
	count := s.rng.IntRange(0, config.MaxPickupDrops)
	if count == 0 {
		return
	}
	value := max(1, data.XPValue/count)
	for i := 0; i < count; i++ {
		x := data.X + float64(s.rng.IntRange(-config.PickupScatter, config.PickupScatter))
		y := data.Y + float64(s.rng.IntRange(-config.PickupScatter, config.PickupScatter))
		s.SpawnAt(x, y, value)
	}
}

// SpawnAt создаёт материал заданной ценности.
func (s *PickupSystem) SpawnAt(x, y float64, value int) types.EntityID {
	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{X: x, Y: y}
	s.ecs.Hitboxes[id] = &component.Hitbox{Radius: config.PickupRadius}
	s.ecs.Pickups[id] = &component.Pickup{Value: value, Kind: PickupKindMaterial}
	s.ecs.Renderables[id] = &component.Renderable{Color: config.PickupColor, Radius: float32(config.PickupRadius)}
	return id
}

// CollectOverlaps подбирает материалы, касающиеся игрока.
func (s *PickupSystem) CollectOverlaps() {
	ppos, ok := s.ecs.Positions[s.ecs.PlayerID]
	if !ok {
		return
	}
	player := physics.Circle{X: ppos.X, Y: ppos.Y, R: config.PlayerRadius}
	for _, id := range entity.SortedIDs(s.ecs.Pickups) {
		pos := s.ecs.Positions[id]
		if pos == nil {
			continue
		}
		if s.detector.Overlaps(player, physics.Circle{X: pos.X, Y: pos.Y, R: hitRadius(s.ecs, id, config.PickupRadius)}) {
			s.collect(id)
		}
	}
}

// Update притягивает материалы в радиусе подбора. Скорость растёт при приближении,
// ближе PickupForceCollectDist материал подбирается сразу.
func (s *PickupSystem) Update(deltaMs float64) {
	ppos, ok := s.ecs.Positions[s.ecs.PlayerID]
	if !ok {
		return
	}
	reach := stats.PickupRange(s.ctx.Stats())
	for _, id := range entity.SortedIDs(s.ecs.Pickups) {
		p := s.ecs.Pickups[id]
		pos := s.ecs.Positions[id]
		if pos == nil {
			continue
		}
		dist := utils.Distance(pos.X, pos.Y, ppos.X, ppos.Y)
		if dist < config.PickupForceCollectDist {
			s.collect(id)
			continue
		}
		if !p.Homing && dist > reach {
			continue
		}
		p.Homing = true
		step := (config.PickupHomingBase + config.PickupHomingBoost/dist) * deltaMs / 1000
		if step >= dist {
			s.collect(id)
			continue
		}
		dir := physics.Vec2{X: ppos.X - pos.X, Y: ppos.Y - pos.Y}.Normalize().Scale(step)
		pos.X += dir.X
		pos.Y += dir.Y
	}
}

// collect начисляет ценность материала в валюту и опыт.
func (s *PickupSystem) collect(id types.EntityID) {
	p, ok := s.ecs.Pickups[id]
	if !ok {
		return
	}
	s.ecs.Destroy(id)
	rs := s.ctx.Run()
	rs.Currency += p.Value
	rs.XP += p.Value
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.PickupCollected,
		Data: event.PickupCollectedData{Value: p.Value, Kind: p.Kind},
	})
}

// Clear уничтожает все материалы.
func (s *PickupSystem) Clear() {
	for id := range s.ecs.Pickups {
		s.ecs.Destroy(id)
	}
}
