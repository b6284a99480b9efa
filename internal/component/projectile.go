// internal/component/projectile.go
package component

import "go-wave-survivor/internal/types"

// Projectile представляет летящий снаряд.
type Projectile struct {
	Angle     float64
	Speed     float64
	Damage    float64
	Knockback float64
	Pierce    int                     // Сколько ещё врагов можно пробить; < 0 — снаряд исчезает
	Hits      map[types.EntityID]bool // Каждого врага снаряд задевает не больше одного раза
	Kind      string
}
