package generic

// degenerateEpsilon is the squared chord length below which the chord is
// treated as a point and distances are measured to its start vertex.
const degenerateEpsilon = 1e-10

// ChordScan returns the maximum squared perpendicular distance from any
// interior point of [start, end] to the chord (start, end), and the index
// of the first point achieving it. This is the scalar reference kernel;
// every lane-widened variant must reproduce its decisions exactly.
func ChordScan(xs, ys []float64, start, end int) (float64, int) {
	x1, y1 := xs[start], ys[start]
	dx := xs[end] - x1
	dy := ys[end] - y1
	magSq := dx*dx + dy*dy

	maxDistSq := 0.0
	maxIdx := start

	if magSq < degenerateEpsilon {
		// Degenerate chord: squared distance to the chord start.
		for i := start + 1; i < end; i++ {
			dpx := xs[i] - x1
			dpy := ys[i] - y1
			if d := dpx*dpx + dpy*dpy; d > maxDistSq {
				maxDistSq = d
				maxIdx = i
			}
		}
		return maxDistSq, maxIdx
	}

	for i := start + 1; i < end; i++ {
		dpx := xs[i] - x1
		dpy := ys[i] - y1
		cross := dpx*dy - dpy*dx
		if d := cross * cross / magSq; d > maxDistSq {
			maxDistSq = d
			maxIdx = i
		}
	}

	return maxDistSq, maxIdx
}
