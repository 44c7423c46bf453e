// component/movement.go
package component

import "go-hex-defense/pkg/hexmap"

// Position — компонент позиции (мировые координаты)
type Position struct {
	X, Y float64
}

func (p Position) Point() hexmap.Point {
	return hexmap.Point{X: p.X, Y: p.Y}
}

func PositionAt(p hexmap.Point) *Position {
	return &Position{X: p.X, Y: p.Y}
}

// Velocity — компонент скорости
type Velocity struct {
	Speed float64
}

// Path — компонент пути
type Path struct {
	Hexes        []hexmap.Hex
	CurrentIndex int
}
