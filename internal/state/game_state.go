// internal/state/game_state.go
package state

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-wave-survivor/internal/config"
	"go-wave-survivor/internal/physics"
	"go-wave-survivor/internal/ui"
	"go-wave-survivor/pkg/render"
)

var _ State = (*GameState)(nil)

const (
	weaponOrbit  = 28.0
	weaponRadius = 5.0
)

// GameState — состояние боя: ввод, тик сессии, отрисовка мира и HUD.
type GameState struct {
	sm       *StateMachine
	renderer *render.WorldRenderer
	health   *ui.PlayerHealthIndicator
	level    *ui.PlayerLevelIndicator
	wave     *ui.WaveIndicator
	nowMs    float64
}

func NewGameState(sm *StateMachine) *GameState {
	colors := &render.WorldColors{
		BackgroundColor: config.BackgroundColor,
		GridColor:       config.GridColor,
		BorderColor:     config.TextMutedColor,
		PlayerHitColor:  config.PlayerHitColor,
		EnemyFlashColor: config.EnemyFlashColor,
		StrokeWidth:     2,
	}
	return &GameState{
		sm:       sm,
		renderer: render.NewWorldRenderer(config.ScreenWidth, config.ScreenHeight, sm.fontFace, colors),
		health:   ui.NewPlayerHealthIndicator(20, 20, sm.fontFace),
		level:    ui.NewPlayerLevelIndicator(20, 48, sm.fontFace),
		wave:     ui.NewWaveIndicator(config.ScreenWidth/2, 24, sm.fontFace),
		nowMs:    sm.session.NowMs(),
	}
}

func (g *GameState) Enter() {}

func (g *GameState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}
	deltaMs := deltaTime * 1000
	g.nowMs += deltaMs
	g.sm.session.Update(g.nowMs, deltaMs, readMove())
}

// readMove собирает вектор намерения из WASD и стрелок.
func readMove() physics.Vec2 {
	var move physics.Vec2
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		move.Y--
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		move.Y++
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		move.X--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		move.X++
	}
	return move
}

func (g *GameState) Draw(screen *ebiten.Image) {
	session := g.sm.session
	px, py := session.PlayerPosition()
	g.renderer.Follow(px, py)
	g.renderer.Draw(screen, session.Entities())
	g.drawWeapons(screen, px, py)
	g.drawHUD(screen)
}

// drawWeapons рисует оружие по кругу вокруг игрока, каждое повернуто к своей цели.
func (g *GameState) drawWeapons(screen *ebiten.Image, px, py float64) {
	weapons := g.sm.session.Weapons()
	for i, w := range weapons {
		slot := 2 * math.Pi * float64(i) / float64(len(weapons))
		cx, cy := g.renderer.ToScreen(px+math.Cos(slot)*weaponOrbit, py+math.Sin(slot)*weaponOrbit)
		tipX := cx + float32(math.Cos(w.Angle)*weaponRadius*2)
		tipY := cy + float32(math.Sin(w.Angle)*weaponRadius*2)

		c := config.TextMutedColor
		if w.Ready >= 1 {
			c = config.ProjectileColor
		}
		vector.DrawFilledCircle(screen, cx, cy, weaponRadius, c, true)
		vector.StrokeLine(screen, cx, cy, tipX, tipY, 2, c, true)
	}
}

func (g *GameState) drawHUD(screen *ebiten.Image) {
	snap := g.sm.session.Snapshot()
	g.health.Draw(screen, snap.HP, snap.MaxHP)
	g.level.Draw(screen, snap.Level, snap.XP, config.CalculateXPForNextLevel(snap.Level))
	g.wave.Draw(screen, snap.Wave, snap.TimeRemainingMs)
	ui.DrawLeft(screen, formatCurrency(snap.Currency), g.sm.fontFace, 20, 66, config.GoldColor)
}

func (g *GameState) Exit() {}
