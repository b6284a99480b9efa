// internal/config/config.go
package config

import (
	"image/color"
	"log"
	"strconv"

	"go-wave-survivor/internal/utils"
)

const (
	ScreenWidth  = 1280
	ScreenHeight = 720
	WorldWidth   = 2000.0
	WorldHeight  = 2000.0
	WorldMargin  = 50.0 // отступ от края мира для точки спавна
	MaxDeltaMs   = 60.0

	// Волна
	WaveDurationMs      = 30000.0
	BaseSpawnIntervalMs = 800.0
	SpawnIntervalStepMs = 30.0
	MinSpawnIntervalMs  = 60.0
	MaxActiveEnemies    = 500
	SpawnDistance       = 600.0

	// Масштабирование врагов по номеру волны
	EnemyBaseHealth        = 15
	EnemyHealthPerWave     = 8
	EnemyBaseDamage        = 2
	EnemyBaseSpeed         = 50.0
	EnemySpeedPerWave      = 0.5
	EnemyXPWaveDivisor     = 5
	EnemyDamageWaveDivisor = 2

	// Игрок
	PlayerBaseSpeed     = 200.0
	PlayerRadius        = 30.0
	InvulnerabilityMs   = 150.0
	ContactKnockback    = 10.0
	ArmorConstant       = 15.0
	StrongEnemyHealth   = 50.0
	DodgeCapNumerator   = 60.0
	DodgeHalfPoint      = 50.0
	DumbnessPerMaxHP    = 2.0
	MinAttackSpeedRatio = 0.1

	// Сущности
	EnemyRadius      = 14.0
	ProjectileRadius = 5.0
	PickupRadius     = 5.0

	DefaultProjectileSpeed      = 500.0
	DefaultProjectileDurationMs = 2000.0

	// Подбор материалов
	MaxPickupDrops         = 5
	PickupScatter          = 30
	PickupForceCollectDist = 30.0
	PickupHomingBase       = 500.0
	PickupHomingBoost      = 15000.0
	DefaultPickupRange     = 100.0

	// Магазин
	ShopSlots             = 4
	MaxWeapons            = 12
	InitialRerollPrice    = 2
	PriceWaveFactor       = 0.10
	PriceJitterBase       = 5.0
	PriceJitterWaveFactor = 0.05

	// Визуальные эффекты
	DamageFlashMs   = 100.0
	FloatingTextMs  = 1000.0
	CounterBeamMs   = 250.0
	CounterBeamSpd  = 2000.0
	CounterBeamDist = 1000.0

	// Сохранение
	SaveVersion  = 1
	SaveSlotName = "broteto_save_1.json"
	StartLevel   = 1
	StartingWave = 1
)

// CalculateXPForNextLevel возвращает опыт, нужный для перехода с уровня level.
func CalculateXPForNextLevel(level int) int {
	return (level + 3) * (level + 3)
}

var (
	BackgroundColor  = color.RGBA{26, 26, 26, 255}
	GridColor        = color.RGBA{40, 40, 48, 255}
	PlayerColor      = color.RGBA{220, 60, 90, 255}
	PlayerHitColor   = color.RGBA{255, 255, 255, 255}
	EnemyColor       = color.RGBA{120, 200, 80, 255}
	EnemyFlashColor  = color.RGBA{255, 0, 0, 255}
	ProjectileColor  = color.RGBA{255, 230, 120, 255}
	BeamColor        = color.RGBA{57, 197, 187, 255}
	PickupColor      = color.RGBA{255, 215, 0, 255}
	TextLightColor   = color.RGBA{240, 240, 240, 255}
	TextMutedColor   = color.RGBA{140, 140, 140, 255}
	GoldColor        = color.RGBA{255, 215, 0, 255}
	HealthColor      = color.RGBA{0, 255, 0, 255}
	ButtonColor      = color.RGBA{51, 51, 51, 255}
	ButtonHoverColor = color.RGBA{90, 90, 90, 255}
	ButtonGoColor    = color.RGBA{0, 100, 0, 255}
	LockedColor      = color.RGBA{255, 0, 0, 255}
	SlotColor        = color.RGBA{34, 34, 34, 255}
)

// Settings — параметры, которые можно переопределить через окружение.
type Settings struct {
	SaveDir string
	Seed    int64
}

// LoadSettings читает настройки из переменных окружения.
// Некорректный сид не ошибка: берём 0 (сид по текущему времени).
func LoadSettings() Settings {
	s := Settings{
		SaveDir: utils.GetEnvDefault("WAVE_SAVE_DIR", "."),
	}
	if raw := utils.GetEnvDefault("WAVE_SEED", "0"); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			log.Printf("config: invalid WAVE_SEED %q, using time seed", raw)
		}
		s.Seed = seed
	}
	return s
}
