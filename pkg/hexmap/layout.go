// pkg/hexmap/layout.go
package hexmap

// Point is a world-space position. The origin is the centre of hex {0, 0};
// Y grows downwards like screen space.
type Point struct {
	X, Y float64
}

// Sub returns p - o.
func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}

// Layout converts between axial coordinates and world points for a
// pointy-top grid with hexes of Size (centre to corner).
type Layout struct {
	Size   float64
	Origin Point
}

// NewLayout returns a layout centred on the world origin.
func NewLayout(size float64) Layout {
	return Layout{Size: size}
}

// HexToWorld returns the centre of h.
func (l Layout) HexToWorld(h Hex) Point {
	x := l.Size * (Sqrt3*float64(h.Q) + Sqrt3/2*float64(h.R))
	y := l.Size * (3.0 / 2.0 * float64(h.R))
	return Point{X: x + l.Origin.X, Y: y + l.Origin.Y}
}

// WorldToHex returns the hex whose cell contains p.
func (l Layout) WorldToHex(p Point) Hex {
	x := p.X - l.Origin.X
	y := p.Y - l.Origin.Y
	q := (Sqrt3/3*x - 1.0/3*y) / l.Size
	r := (2.0 / 3 * y) / l.Size
	return axialRound(q, r)
}
