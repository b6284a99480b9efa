// component/movement.go
package component

// Position — компонент позиции в мировых пикселях
type Position struct {
	X, Y float64
}

// Velocity — компонент скорости
type Velocity struct {
	Speed float64 // пикселей в секунду
	Angle float64 // текущее направление в радианах
}
