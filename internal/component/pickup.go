// internal/component/pickup.go
package component

// Pickup — материал, выпавший из врага.
type Pickup struct {
	Value  int
	Kind   string
	Homing bool // Игрок вошёл в радиус подбора, материал летит к нему
}
