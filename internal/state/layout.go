package state

const (
	buttonWidth  = 220
	buttonHeight = 40
	buttonGap    = 12

	cardWidth  = 260
	cardHeight = 140
	cardGap    = 20
)

// rowX возвращает левый край i-й карточки в ряду из n, выровненном по центру экрана.
func rowX(i, n int, width, gap, screenWidth float32) float32 {
	total := float32(n)*width + float32(n-1)*gap
	return (screenWidth-total)/2 + float32(i)*(width+gap)
}
