package geom

// Point is a read-only view of one polyline vertex. It is a projection of
// the columnar storage, not an owned entity.
type Point struct {
	X, Y float64
}

// Polyline stores an ordered vertex sequence in columnar form: separate
// x and y coordinate slices of identical length. The columnar layout keeps
// coordinate loads contiguous for the lane-widened kernels.
//
// The length invariant is maintained by construction: mutate only through
// Push or rebuild via Clone/constructors.
type Polyline struct {
	X []float64
	Y []float64
}

// NewPolyline returns an empty polyline with capacity for n vertices.
func NewPolyline(n int) Polyline {
	return Polyline{
		X: make([]float64, 0, n),
		Y: make([]float64, 0, n),
	}
}

// PolylineFromPoints builds a polyline from an explicit point list.
func PolylineFromPoints(pts []Point) Polyline {
	line := NewPolyline(len(pts))
	for _, p := range pts {
		line.Push(p.X, p.Y)
	}
	return line
}

// Len returns the number of vertices.
func (p Polyline) Len() int {
	return len(p.X)
}

// At returns the vertex at index i.
func (p Polyline) At(i int) Point {
	return Point{X: p.X[i], Y: p.Y[i]}
}

// Push appends one vertex.
func (p *Polyline) Push(x, y float64) {
	p.X = append(p.X, x)
	p.Y = append(p.Y, y)
}

// Clone returns a deep copy of the polyline.
func (p Polyline) Clone() Polyline {
	out := Polyline{
		X: make([]float64, len(p.X)),
		Y: make([]float64, len(p.Y)),
	}
	copy(out.X, p.X)
	copy(out.Y, p.Y)
	return out
}
