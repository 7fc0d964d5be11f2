package curvy

import "math"

// Crossing returns the point where the segment between two consecutive samples
// crosses the boundary of the visible range.
//
// Exactly one of prev and curr has to be inside rng, otherwise ok is false.
// The boundary is rng.Min when the invalid sample lies below the range and
// rng.Max when it lies above. An invalid sample with a non-finite value has
// no boundary to interpolate toward, and a zero span in y cannot be divided;
// both report ok as false so the caller can skip the boundary point.
func Crossing(prev, curr Point, rng Interval) (pt Point, ok bool) {
	prevIn, currIn := rng.Contains(prev.Y), rng.Contains(curr.Y)
	if prevIn == currIn {
		return Point{}, false
	}

	valid, invalid := curr, prev
	if prevIn {
		valid, invalid = prev, curr
	}
	if math.IsNaN(invalid.Y) || math.IsInf(invalid.Y, 0) {
		return Point{}, false
	}

	boundary := rng.Max
	if invalid.Y < rng.Min {
		boundary = rng.Min
	}

	dy := invalid.Y - valid.Y
	if dy == 0 {
		return Point{}, false
	}
	// The ratio along y equals the ratio along x by similar triangles.
	t := (boundary - valid.Y) / dy
	return Point{X: valid.X + t*(invalid.X-valid.X), Y: boundary}, true
}
