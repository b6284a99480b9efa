// internal/system/wave.go
package system

import (
	"log"
	"math"

	"go-wave-survivor/internal/component"
	"go-wave-survivor/internal/config"
	"go-wave-survivor/internal/entity"
	"go-wave-survivor/internal/event"
	"go-wave-survivor/internal/types"
	"go-wave-survivor/internal/utils"
)

// EnemyStats — параметры врага, зависящие только от номера волны.
type EnemyStats struct {
	HP      float64
	Damage  float64
	Speed   float64
	XPValue int
}

// EnemyStatsForWave масштабирует врага по номеру волны.
func EnemyStatsForWave(wave int) EnemyStats {
	return EnemyStats{
		HP:      config.EnemyBaseHealth + config.EnemyHealthPerWave*float64(wave),
		Damage:  config.EnemyBaseDamage + float64(wave/config.EnemyDamageWaveDivisor),
		Speed:   config.EnemyBaseSpeed + config.EnemySpeedPerWave*float64(wave),
		XPValue: 1 + wave/config.EnemyXPWaveDivisor,
	}
}

// SpawnInterval возвращает паузу между появлениями врагов, мс.
func SpawnInterval(wave int) float64 {
	interval := config.BaseSpawnIntervalMs - config.SpawnIntervalStepMs*float64(wave)
	return utils.Clamp(interval, config.MinSpawnIntervalMs, config.BaseSpawnIntervalMs)
}

type WaveSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	rng             *utils.PRNGService
}

func NewWaveSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, rng *utils.PRNGService) *WaveSystem {
	return &WaveSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		rng:             rng,
	}
}

// Start запускает таймер волны с нуля.
func (s *WaveSystem) Start(number int) {
	s.ecs.Wave = &component.Wave{Number: number}
	log.Printf("Wave %d started", number)
}

// Update ведёт таймер спавна и таймер волны. Истечение волны отправляет WaveEnded один раз.
func (s *WaveSystem) Update(deltaMs float64) {
	wave := s.ecs.Wave
	if wave == nil || wave.Ended {
		return
	}
	wave.ElapsedMs += deltaMs
	wave.SpawnTimerMs += deltaMs

	interval := SpawnInterval(wave.Number)
	for wave.SpawnTimerMs >= interval {
		wave.SpawnTimerMs -= interval
		if len(s.ecs.Enemies) < config.MaxActiveEnemies {
			s.spawnEnemy(wave.Number)
		}
	}

	if wave.ElapsedMs >= config.WaveDurationMs {
		wave.Ended = true
		log.Printf("Wave %d ended", wave.Number)
		s.eventDispatcher.Dispatch(event.Event{Type: event.WaveEnded, Data: wave.Number})
	}
}

// TimeRemainingMs возвращает остаток времени волны.
func (s *WaveSystem) TimeRemainingMs() float64 {
	if s.ecs.Wave == nil {
		return 0
	}
	return math.Max(0, config.WaveDurationMs-s.ecs.Wave.ElapsedMs)
}

func (s *WaveSystem) spawnEnemy(wave int) types.EntityID {
	px, py := config.WorldWidth/2, config.WorldHeight/2
	if pos, ok := s.ecs.Positions[s.ecs.PlayerID]; ok {
		px, py = pos.X, pos.Y
	}
	angle := s.rng.Angle()
	x := utils.Clamp(px+math.Cos(angle)*config.SpawnDistance, config.WorldMargin, config.WorldWidth-config.WorldMargin)
	y := utils.Clamp(py+math.Sin(angle)*config.SpawnDistance, config.WorldMargin, config.WorldHeight-config.WorldMargin)
	return s.SpawnEnemyAt(x, y, EnemyStatsForWave(wave))
}

// SpawnEnemyAt создаёт врага с заданными параметрами.
func (s *WaveSystem) SpawnEnemyAt(x, y float64, st EnemyStats) types.EntityID {
	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{X: x, Y: y}
	s.ecs.Velocities[id] = &component.Velocity{Speed: st.Speed}
	s.ecs.Healths[id] = &component.Health{Value: st.HP, Max: st.HP}
	s.ecs.Hitboxes[id] = &component.Hitbox{Radius: config.EnemyRadius}
	s.ecs.Enemies[id] = &component.Enemy{Damage: st.Damage, XPValue: st.XPValue}
	s.ecs.Renderables[id] = &component.Renderable{Color: config.EnemyColor, Radius: float32(config.EnemyRadius), HasStroke: true}
	return id
}

// ClearEnemies уничтожает всех врагов.
func (s *WaveSystem) ClearEnemies() {
	for id := range s.ecs.Enemies {
		s.ecs.Destroy(id)
	}
}
