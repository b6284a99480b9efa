package event

const (
	EnemyKilled     EventType = "EnemyKilled"     // Враг уничтожен, Data: EnemyKilledData
	PlayerDamaged   EventType = "PlayerDamaged"   // Игрок получил урон, Data: PlayerDamagedData
	PlayerDodged    EventType = "PlayerDodged"    // Игрок увернулся
	PlayerDefeated  EventType = "PlayerDefeated"  // Игрок погиб
	WaveEnded       EventType = "WaveEnded"       // Таймер волны истёк
	ItemPurchased   EventType = "ItemPurchased"   // Покупка в магазине, Data: ItemPurchasedData
	PickupCollected EventType = "PickupCollected" // Подобран материал, Data: PickupCollectedData
	LevelUp         EventType = "LevelUp"         // Новый уровень, Data: int
	SoundRequested  EventType = "SoundRequested"  // Просьба к слою звука, Data: string
)

// EnemyKilledData — место смерти врага и его ценность.
type EnemyKilledData struct {
	X, Y    float64
	XPValue int
}

type PlayerDamagedData struct {
	Amount float64 // урон после брони
}

type ItemPurchasedData struct {
	Slot   int
	ItemID string
	Price  int
}

type PickupCollectedData struct {
	Value int
	Kind  string
}
