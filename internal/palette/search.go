package palette

import "fmt"

// Distance returns the sum of squared per-channel differences between a and
// b. It is only ever compared against other distances, so the square root of
// a true Euclidean norm is omitted.
func Distance(a, b Color) int {
	dr := int(a.R) - int(b.R)
	dg := int(a.G) - int(b.G)
	db := int(a.B) - int(b.B)
	return dr*dr + dg*dg + db*db
}

// NearestIndex returns the index of the candidate closest to target.
//
// Candidates are scanned in order and a later candidate replaces the current
// best only when it is strictly closer, so on ties the first one wins.
func NearestIndex(candidates []Color, target Color) (int, error) {
	if len(candidates) == 0 {
		return 0, ErrEmptyCandidateSet
	}

	best := 0
	bestDist := Distance(candidates[0], target)
	for i := 1; i < len(candidates) && bestDist > 0; i++ {
		if d := Distance(candidates[i], target); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best, nil
}

// NearestInRaster scans the whole raster for the pixel closest to target.
//
// The scan is column-major: x in the outer loop, y in the inner loop. Ties go
// to the first pixel encountered in that order.
func NearestInRaster(r Raster, target Color) (Point, error) {
	w, h := r.Width(), r.Height()
	if w <= 0 || h <= 0 {
		return Point{}, fmt.Errorf("%w: raster is %dx%d", ErrEmptyCandidateSet, w, h)
	}

	best := Point{}
	bestDist := Distance(r.At(0, 0), target)
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			if d := Distance(r.At(x, y), target); d < bestDist {
				best, bestDist = Point{X: x, Y: y}, d
			}
		}
	}
	return best, nil
}

// NearestInColumn scans column x of the raster from top to bottom and returns
// the row closest to target. Ties go to the topmost row.
func NearestInColumn(r Raster, x int, target Color) (int, error) {
	w, h := r.Width(), r.Height()
	if h <= 0 {
		return 0, fmt.Errorf("%w: raster has no rows", ErrEmptyCandidateSet)
	}
	if x < 0 || x >= w {
		return 0, fmt.Errorf("%w: column %d not in [0,%d)", ErrOutOfBounds, x, w)
	}

	best := 0
	bestDist := Distance(r.At(x, 0), target)
	for y := 1; y < h; y++ {
		if d := Distance(r.At(x, y), target); d < bestDist {
			best, bestDist = y, d
		}
	}
	return best, nil
}
