package component

// Health — компонент здоровья
type Health struct {
	Value float64
	Max   float64
}

// Hitbox — радиус для проверки пересечений
type Hitbox struct {
	Radius float64
}
