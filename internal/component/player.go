// internal/component/player.go
package component

// Player хранит боевое состояние игрока в текущей волне.
// HP, опыт и уровень живут в run.RunState, здесь только флаги тика.
type Player struct {
	Invulnerable bool // Окно неуязвимости после удара
	Defeated     bool // PlayerDefeated уже отправлен
}
