// internal/interfaces/game_context.go
package interfaces

import (
	"go-wave-survivor/internal/defs"
	"go-wave-survivor/internal/run"
)

// RunContext — доступ систем к состоянию текущего забега.
// Реализуется сессией; помогает избежать циклических зависимостей.
type RunContext interface {
	// Run возвращает изменяемое состояние забега (HP, валюта, опыт).
	Run() *run.RunState
	// Stats возвращает эффективные статы: сырая сумма плюс пассивка персонажа.
	Stats() defs.StatVector
}
