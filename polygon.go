package geom

import (
	"math"
	"slices"

	"github.com/cwbudde/algo-vecmath"
)

// closedEpsilon is the squared distance below which the first and last
// vertex are considered coincident.
const closedEpsilon = 1e-10

// Polygon wraps one vertex polyline interpreted as a closed ring.
//
// Conventions:
//   - first and last vertex should coincide (closed loop)
//   - outer rings are ordered counter-clockwise, holes clockwise
type Polygon struct {
	Vertices Polyline
}

// IsClosed reports whether the first and last vertex coincide within a
// small squared-distance epsilon.
func (p Polygon) IsClosed() bool {
	n := p.Vertices.Len()
	if n < 2 {
		return false
	}
	dx := p.Vertices.X[0] - p.Vertices.X[n-1]
	dy := p.Vertices.Y[0] - p.Vertices.Y[n-1]
	return dx*dx+dy*dy < closedEpsilon
}

// SignedArea computes the shoelace area over the non-duplicated vertex
// range. Positive means counter-clockwise winding.
func (p Polygon) SignedArea() float64 {
	n := p.Vertices.Len()
	if n < 3 {
		return 0
	}
	x, y := p.Vertices.X, p.Vertices.Y

	// sum(x[i]*y[i+1] - x[i+1]*y[i]) for i in [0, n-2] as two inner products.
	area := vecmath.DotProduct(x[:n-1], y[1:]) - vecmath.DotProduct(x[1:], y[:n-1])
	if !p.IsClosed() {
		// Open ring: add the wrap-around term.
		area += x[n-1]*y[0] - x[0]*y[n-1]
	}
	return area * 0.5
}

// Area returns the absolute polygon area.
func (p Polygon) Area() float64 {
	return math.Abs(p.SignedArea())
}

// IsCCW reports whether the vertices are ordered counter-clockwise.
func (p Polygon) IsCCW() bool {
	return p.SignedArea() > 0
}

// Contains tests whether the point (px, py) lies inside the polygon using
// ray casting: an odd number of edge crossings to the right of the point
// means inside. Points exactly on an edge may resolve either way.
func (p Polygon) Contains(px, py float64) bool {
	n := p.Vertices.Len()
	if n < 3 {
		return false
	}
	x, y := p.Vertices.X, p.Vertices.Y

	limit := n
	if p.IsClosed() {
		limit = n - 1
	}

	inside := false
	for i := 0; i < limit; i++ {
		j := (i + 1) % n
		xi, yi := x[i], y[i]
		xj, yj := x[j], y[j]

		if (yi > py) != (yj > py) &&
			px < (xj-xi)*(py-yi)/(yj-yi)+xi {
			inside = !inside
		}
	}
	return inside
}

// Close appends a copy of the first vertex if the ring is not yet closed.
func (p *Polygon) Close() {
	if p.Vertices.Len() == 0 || p.IsClosed() {
		return
	}
	p.Vertices.Push(p.Vertices.X[0], p.Vertices.Y[0])
}

// Reverse flips the vertex order in place, inverting the winding.
func (p *Polygon) Reverse() {
	slices.Reverse(p.Vertices.X)
	slices.Reverse(p.Vertices.Y)
}
