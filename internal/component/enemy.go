package component

// Enemy представляет вражескую сущность.
type Enemy struct {
	Damage  float64 // Контактный урон игроку
	XPValue int     // Сколько материалов выпадает после смерти
	Dead    bool    // Выставляется один раз при смерти, повторный урон игнорируется
}
