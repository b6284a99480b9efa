package render

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-wave-survivor/internal/config"
	"go-wave-survivor/internal/entity"
	"go-wave-survivor/internal/types"
)

const gridStep = 100.0

// WorldRenderer рисует арену и сущности ECS относительно камеры, следящей за игроком.
type WorldRenderer struct {
	screenWidth  int
	screenHeight int
	fontFace     font.Face
	colors       *WorldColors
	camX, camY   float64
}

func NewWorldRenderer(screenWidth, screenHeight int, fontFace font.Face, colors *WorldColors) *WorldRenderer {
	return &WorldRenderer{
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
		fontFace:     fontFace,
		colors:       colors,
	}
}

// Follow центрирует камеру на точке мира.
func (r *WorldRenderer) Follow(x, y float64) {
	r.camX = x - float64(r.screenWidth)/2
	r.camY = y - float64(r.screenHeight)/2
}

// ToScreen переводит мировые координаты в экранные.
func (r *WorldRenderer) ToScreen(x, y float64) (float32, float32) {
	return float32(x - r.camX), float32(y - r.camY)
}

// Draw рисует фон, сетку, границу мира и все видимые сущности.
func (r *WorldRenderer) Draw(screen *ebiten.Image, ecs *entity.ECS) {
	screen.Fill(r.colors.BackgroundColor)
	r.drawGrid(screen)

	x0, y0 := r.ToScreen(0, 0)
	vector.StrokeRect(screen, x0, y0, config.WorldWidth, config.WorldHeight, r.colors.StrokeWidth*2, r.colors.BorderColor, true)

	// Порядок: подборы, враги, снаряды, игрок. Внутри группы по возрастанию ID.
	for _, id := range entity.SortedIDs(ecs.Pickups) {
		r.drawEntity(screen, ecs, id)
	}
	for _, id := range entity.SortedIDs(ecs.Enemies) {
		r.drawEntity(screen, ecs, id)
	}
	for _, id := range entity.SortedIDs(ecs.Projectiles) {
		r.drawEntity(screen, ecs, id)
	}
	if ecs.PlayerID != 0 {
		r.drawEntity(screen, ecs, ecs.PlayerID)
	}

	for _, id := range entity.SortedIDs(ecs.Texts) {
		pos, ok := ecs.Positions[id]
		if !ok {
			continue
		}
		t := ecs.Texts[id]
		sx, sy := r.ToScreen(pos.X, pos.Y)
		bounds := text.BoundString(r.fontFace, t.Value)
		text.Draw(screen, t.Value, r.fontFace, int(sx)-bounds.Dx()/2, int(sy), t.Color)
	}
}

func (r *WorldRenderer) drawEntity(screen *ebiten.Image, ecs *entity.ECS, id types.EntityID) {
	pos, hasPos := ecs.Positions[id]
	renderable, hasRender := ecs.Renderables[id]
	if !hasPos || !hasRender {
		return
	}
	sx, sy := r.ToScreen(pos.X, pos.Y)
	radius := renderable.Radius
	if sx < -radius || sy < -radius || sx > float32(r.screenWidth)+radius || sy > float32(r.screenHeight)+radius {
		return
	}

	finalColor := renderable.Color
	if _, flashing := ecs.DamageFlashes[id]; flashing {
		if id == ecs.PlayerID {
			finalColor = r.colors.PlayerHitColor
		} else {
			finalColor = r.colors.EnemyFlashColor
		}
	}

	vector.DrawFilledCircle(screen, sx, sy, radius, finalColor, true)
	if renderable.HasStroke {
		vector.StrokeCircle(screen, sx, sy, radius, r.colors.StrokeWidth, DarkenColor(finalColor), true)
	}
}

func (r *WorldRenderer) drawGrid(screen *ebiten.Image) {
	startX := math.Max(0, math.Floor(r.camX/gridStep)*gridStep)
	endX := math.Min(config.WorldWidth, r.camX+float64(r.screenWidth))
	startY := math.Max(0, math.Floor(r.camY/gridStep)*gridStep)
	endY := math.Min(config.WorldHeight, r.camY+float64(r.screenHeight))

	for x := startX; x <= endX; x += gridStep {
		sx, sy0 := r.ToScreen(x, math.Max(0, r.camY))
		_, sy1 := r.ToScreen(x, endY)
		vector.StrokeLine(screen, sx, sy0, sx, sy1, 1, r.colors.GridColor, false)
	}
	for y := startY; y <= endY; y += gridStep {
		sx0, sy := r.ToScreen(math.Max(0, r.camX), y)
		sx1, _ := r.ToScreen(endX, y)
		vector.StrokeLine(screen, sx0, sy, sx1, sy, 1, r.colors.GridColor, false)
	}
}
