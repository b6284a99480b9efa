// internal/component/weapon.go
package component

import "go-wave-survivor/internal/types"

// WeaponInstance — экземпляр оружия, закреплённый за игроком.
type WeaponInstance struct {
	DefID         string
	InstanceID    string
	LastFiredAtMs float64
	// TargetID — слабая ссылка: сущность могла уже исчезнуть, проверяется через реестр целей.
	TargetID types.EntityID
	Angle    float64
}
