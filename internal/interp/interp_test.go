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

package interp

import (
	"errors"
	"math"
	"testing"

	"github.com/valyala/fastrand"

	"github.com/avolkov/dwarfseq/internal/table"
)

// Interpolating at a tabulated value must reproduce that row's entry in any
// other column and return that row's index
func TestSelfConsistency(t *testing.T) {
	tbl := table.Dwarfs()
	teff := tbl.Column(table.Teff)
	logTeff := tbl.Column(table.LogTeff)
	for i, x := range teff {
		got, idx, err := Interpolate(teff, logTeff, x)
		if err != nil {
			t.Fatalf("row %d: %s", i, err)
		}
		if idx != i {
			t.Errorf("row %d: idx=%d; want %d", i, idx, i)
		}
		if math.Abs(got-logTeff[i]) > 1e-9 {
			t.Errorf("row %d: logTeff=%g; want %g", i, got, logTeff[i])
		}
	}
}

// Equidistant neighbors resolve to the lower index: 11500 K lies exactly
// 800 K from both row 23 (12300 K) and row 24 (10700 K)
func TestNearestIndexTieBreak(t *testing.T) {
	tbl := table.Dwarfs()
	_, idx, err := Interpolate(tbl.Column(table.Teff), tbl.Column(table.LogL), 11500)
	if err != nil {
		t.Fatal(err)
	}
	if idx != 23 {
		t.Errorf("idx=%d; want 23", idx)
	}
}

// The nearest index depends on the source column and query only, never on
// the target column requested
func TestNearestIndexInvariance(t *testing.T) {
	tbl := table.Dwarfs()
	teff := tbl.Column(table.Teff)
	want := -1
	for _, q := range table.Quantities() {
		if q == table.Teff {
			continue
		}
		_, idx, err := Interpolate(teff, tbl.Column(q), 13000)
		if err != nil {
			t.Fatalf("target %v: %s", q, err)
		}
		if want < 0 {
			want = idx
		}
		if idx != want {
			t.Errorf("target %v: idx=%d; want %d", q, idx, want)
		}
	}
	if want != 23 {
		t.Errorf("idx=%d; want 23", want)
	}
}

// Queries at and beyond both table edges must use the truncated windows
// without raising an index error
func TestWindowBoundary(t *testing.T) {
	tbl := table.Dwarfs()
	teff := tbl.Column(table.Teff)
	logL := tbl.Column(table.LogL)
	tcs := []struct {
		x       float64
		wantIdx int
	}{
		{44900, 0},  // first row, start-truncated window
		{50000, 0},  // beyond the hot edge
		{2380, 85},  // last row, end-truncated window
		{2000, 85},  // beyond the cool edge
		{2680, 81},  // nominal window would index one past the last row
		{2740, 80},  // interior window ending exactly on the last row
		{3270, 74},
	}
	for _, tc := range tcs {
		got, idx, err := Interpolate(teff, logL, tc.x)
		if err != nil {
			t.Errorf("x=%g: %s", tc.x, err)
			continue
		}
		if idx != tc.wantIdx {
			t.Errorf("x=%g: idx=%d; want %d", tc.x, idx, tc.wantIdx)
		}
		if math.IsNaN(got) {
			t.Errorf("x=%g: got NaN", tc.x)
		}
	}
}

// Interior window shapes, including the asymmetric truncated edges
func TestWindow(t *testing.T) {
	tcs := []struct {
		idx, n, lo, hi int
	}{
		{0, 86, 0, 5},
		{4, 86, 0, 9},
		{5, 86, 0, 10},
		{43, 86, 38, 48},
		{80, 86, 75, 85},
		{81, 86, 76, 85}, // interior branch, upper bound clamped to the last row
		{82, 86, 77, 85},
		{85, 86, 80, 85},
	}
	for _, tc := range tcs {
		lo, hi := window(tc.idx, tc.n)
		if lo != tc.lo || hi != tc.hi {
			t.Errorf("window(%d,%d)=[%d,%d]; want [%d,%d]", tc.idx, tc.n, lo, hi, tc.lo, tc.hi)
		}
	}
}

// Forward and backward interpolation between two monotonic columns must
// approximately recover the input for interior points
func TestMonotonicRoundTrip(t *testing.T) {
	tbl := table.Dwarfs()
	teff := tbl.Column(table.Teff)
	logL := tbl.Column(table.LogL)
	rng := fastrand.RNG{}
	for i := 0; i < 200; i++ {
		x := 5000 + float64(rng.Uint32n(1500))
		l, _, err := Interpolate(teff, logL, x)
		if err != nil {
			t.Fatalf("x=%g forward: %s", x, err)
		}
		back, _, err := Interpolate(logL, teff, l)
		if err != nil {
			t.Fatalf("x=%g backward: %s", x, err)
		}
		if math.Abs(back-x) > 60 {
			t.Errorf("round trip %g -> %g -> %g exceeds 60 K", x, l, back)
		}
	}
}

// The mass column repeats 0.09 Msun across four adjacent rows; a query
// there has no single-valued spline neighborhood
func TestDegenerateWindow(t *testing.T) {
	tbl := table.Dwarfs()
	_, _, err := Interpolate(tbl.Column(table.M), tbl.Column(table.Teff), 0.09)
	if !errors.Is(err, ErrDegenerateWindow) {
		t.Errorf("err=%v; want ErrDegenerateWindow", err)
	}
}

func TestArgumentErrors(t *testing.T) {
	if _, _, err := Interpolate([]float64{1, 2, 3}, []float64{1, 2}, 1); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("err=%v; want ErrLengthMismatch", err)
	}
	short := []float64{1, 2, 3, 4, 5}
	if _, _, err := Interpolate(short, short, 1); !errors.Is(err, ErrShortTable) {
		t.Errorf("err=%v; want ErrShortTable", err)
	}
}
