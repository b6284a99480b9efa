// internal/state/state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"

	"go-wave-survivor/internal/app"
)

// State — интерфейс для всех состояний
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// StateMachine — структура для управления состояниями.
// Экран выбирается по фазе сессии: после каждого Update машина сверяет фазу
// и при смене переключает состояние.
type StateMachine struct {
	current    State
	session    *app.Session
	fontFace   font.Face
	phase      app.Phase
	terminated bool
}

// NewStateMachine создаёт машину состояний, начиная с экрана текущей фазы сессии.
func NewStateMachine(session *app.Session, fontFace font.Face) *StateMachine {
	sm := &StateMachine{session: session, fontFace: fontFace, phase: session.Phase()}
	sm.SetState(sm.screenFor(sm.phase))
	return sm
}

// SetState устанавливает новое состояние
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit() // Выход из текущего состояния, если оно есть
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter() // Вход в новое состояние, только если оно не nil
	}
}

// Update обновляет текущее состояние и следует за фазой сессии.
func (sm *StateMachine) Update(deltaTime float64) {
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
	sm.follow()
}

// Draw отрисовывает текущее состояние
func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}

// Terminate просит приложение завершиться.
func (sm *StateMachine) Terminate() { sm.terminated = true }

// Terminated сообщает, что пользователь выбрал выход.
func (sm *StateMachine) Terminated() bool { return sm.terminated }

func (sm *StateMachine) follow() {
	phase := sm.session.Phase()
	if phase == app.PhaseQuit {
		sm.session.ReturnToMenu()
		phase = sm.session.Phase()
	}
	if phase == sm.phase {
		return
	}
	sm.phase = phase
	sm.SetState(sm.screenFor(phase))
}

func (sm *StateMachine) screenFor(phase app.Phase) State {
	switch phase {
	case app.PhaseCharacterSelect:
		return NewCharacterSelectState(sm)
	case app.PhaseWeaponSelect:
		return NewWeaponSelectState(sm)
	case app.PhaseCombat:
		return NewGameState(sm)
	case app.PhaseShop:
		return NewShopState(sm)
	case app.PhaseDefeated:
		return NewDefeatedState(sm)
	default:
		return NewMenuState(sm)
	}
}
