// Copyright (C) 2024 Alexei Volkov
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package interp maps a value of one tabulated stellar quantity onto
// another by fitting a natural cubic spline through a small neighborhood
// of the nearest table row. A local window avoids the oscillation a single
// global spline develops across stellar types spanning four orders of
// magnitude in temperature and luminosity; the table is piecewise
// monotonic at best, and local fidelity beats global smoothness here.
package interp

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	gointerp "gonum.org/v1/gonum/interp"
)

// Rows taken on each side of the nearest row when building the window
const margin = 5

var (
	// ErrLengthMismatch is returned when source and target columns differ in length.
	ErrLengthMismatch = errors.New("interp: source and target columns differ in length")
	// ErrShortTable is returned when the table is too short to window.
	ErrShortTable = errors.New("interp: table too short for local window")
	// ErrDegenerateWindow is returned when the neighborhood of the query holds
	// duplicate source values, so no single-valued spline exists through it.
	ErrDegenerateWindow = errors.New("interp: ambiguous neighborhood with duplicate source values")
)

// Interpolate maps x from the src column onto the dst column and returns the
// interpolated value together with the index of the table row whose src entry
// lies nearest to x. The two columns must be index-aligned; row order of the
// underlying table (descending temperature) does not matter, the window is
// re-sorted by ascending source value before fitting.
func Interpolate(src, dst []float64, x float64) (float64, int, error) {
	if len(src) != len(dst) {
		return 0, 0, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(src), len(dst))
	}
	n := len(src)
	if n <= 2*margin {
		return 0, 0, fmt.Errorf("%w: %d rows", ErrShortTable, n)
	}

	idx := nearestIndex(src, x)
	lo, hi := window(idx, n)

	// window copies, sorted ascending by source with the same permutation
	// applied to the target
	xs := make([]float64, hi-lo+1)
	copy(xs, src[lo:hi+1])
	inds := make([]int, len(xs))
	floats.Argsort(xs, inds)
	ys := make([]float64, len(xs))
	for i, j := range inds {
		ys[i] = dst[lo+j]
	}
	for i := 1; i < len(xs); i++ {
		if xs[i] <= xs[i-1] {
			return 0, idx, fmt.Errorf("%w: value %g at rows %d and %d", ErrDegenerateWindow, xs[i], lo+inds[i-1], lo+inds[i])
		}
	}

	var spline gointerp.NaturalCubic
	if err := spline.Fit(xs, ys); err != nil {
		return 0, idx, fmt.Errorf("interp: spline fit over rows [%d,%d]: %w", lo, hi, err)
	}
	return spline.Predict(x), idx, nil
}

// Index of the element of src nearest to x, lowest index winning ties
func nearestIndex(src []float64, x float64) int {
	best, bestDist := 0, math.Inf(1)
	for i, s := range src {
		if d := math.Abs(x - s); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// Inclusive window bounds around idx. The three branches are evaluated in
// this order and are mutually exclusive; near the table edges the window is
// asymmetric and shorter than the nominal 2*margin+1 rows. The interior
// branch admits idx == n-margin, whose nominal upper bound lands one past
// the last row, so it is clamped there.
func window(idx, n int) (lo, hi int) {
	switch {
	case idx >= margin && idx <= n-margin:
		lo, hi = idx-margin, idx+margin
		if hi > n-1 {
			hi = n - 1
		}
	case idx < margin:
		lo, hi = 0, idx+margin
	default: // idx > n-margin
		lo, hi = idx-margin, n-1
	}
	return lo, hi
}
