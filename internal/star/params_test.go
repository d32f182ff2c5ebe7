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

package star

import (
	"errors"
	"math"
	"testing"

	"github.com/avolkov/dwarfseq/internal/table"
)

func near(t *testing.T, name string, got, want, eps float64) {
	t.Helper()
	if math.Abs(got-want) > eps {
		t.Errorf("%s=%g; want %g within %g", name, got, want, eps)
	}
}

// The worked example of the reference catalogue tool: a binary with
// Teff = 13000 and 11500 K at 372 pc with E(B-V) = 0.032 mag
func TestWorkedBinaryExample(t *testing.T) {
	res, err := NewResolver(table.Dwarfs()).Resolve(Request{
		Given:  table.Teff,
		Values: []float64{13000, 11500},
		DistPc: 372,
		EBV:    0.032,
		Binary: true,
	})
	if err != nil {
		t.Fatal(err)
	}
	near(t, "Av", res.Av, 0.1024, 1e-12)
	if len(res.Stars) != 2 {
		t.Fatalf("got %d stars; want 2", len(res.Stars))
	}

	s1, s2 := &res.Stars[0], &res.Stars[1]
	near(t, "s1.logTeff", s1.LogTeff, 4.114, 0.02)
	near(t, "s1.logL", s1.LogL, 2.314, 0.03)
	near(t, "s1.Mbol", s1.Mbol, -1.032, 0.05)
	near(t, "s1.R", s1.R, 2.803, 0.05)
	near(t, "s1.Mv", s1.Mv, -0.165, 0.05)
	near(t, "s1.BV", s1.BV, -0.114, 0.02)
	near(t, "s1.M", s1.M, 3.536, 0.05)
	near(t, "s1.V", s1.V, 7.79, 0.06)
	if s1.Index != 23 || s1.SpType != [2]string{"B7V", "B8V"} {
		t.Errorf("s1 idx=%d spType=%v; want 23 [B7V B8V]", s1.Index, s1.SpType)
	}

	near(t, "s2.logTeff", s2.LogTeff, 4.060, 0.02)
	near(t, "s2.logL", s2.LogL, 2.023, 0.03)
	near(t, "s2.Mv", s2.Mv, 0.244, 0.05)
	near(t, "s2.BV", s2.BV, -0.100, 0.02)
	near(t, "s2.M", s2.M, 3.040, 0.05)
	near(t, "s2.V", s2.V, 8.20, 0.06)
	// 11500 K is equidistant from rows 23 and 24, lower index wins
	if s2.Index != 23 || s2.SpType != [2]string{"B7V", "B8V"} {
		t.Errorf("s2 idx=%d spType=%v; want 23 [B7V B8V]", s2.Index, s2.SpType)
	}

	// the composite must match the formula applied to the resolved
	// components, and the catalogue tool's worked value of 7.37 mag
	if res.Binary == nil {
		t.Fatal("no binary block")
	}
	want := CombineBinary(s1.LogL, s2.LogL, s2.V)
	near(t, "binary.V", res.Binary.V, want, 1e-12)
	near(t, "binary.V", res.Binary.V, 7.37, 0.05)
	near(t, "binary.V1", res.Binary.V1, s1.V, 1e-12)
	near(t, "binary.V2", res.Binary.V2, s2.V, 1e-12)
}

func TestCombineBinary(t *testing.T) {
	// equal log luminosities appear 2.5*log10(2) brighter
	got := CombineBinary(1.0, 1.0, 10.0)
	near(t, "equal pair", got, 10.0-2.5*math.Log10(2), 1e-12)
	// a companion with zero log luminosity changes nothing
	got = CombineBinary(0, 1.0, 10.0)
	near(t, "zero companion", got, 10.0, 1e-12)
	// the worked catalogue values
	got = CombineBinary(2.314, 2.023, 8.199)
	near(t, "worked pair", got, 7.37, 0.01)
}

func TestAbsoluteFromApparent(t *testing.T) {
	// V=8 at 100 pc: Mv = 8 + 5 - 5*log10(100) = 3
	near(t, "Mv", AbsoluteFromApparent(8.0, 100), 3.0, 1e-12)
	// and the round trip through the distance modulus
	near(t, "V", ApparentMagnitude(3.0, 100, 0), 8.0, 1e-12)
}

func TestDistanceFromParallax(t *testing.T) {
	d, err := DistanceFromParallax(2.0)
	if err != nil {
		t.Fatal(err)
	}
	near(t, "d", d, 500, 1e-12)
	for _, bad := range []float64{0, -1} {
		if _, err := DistanceFromParallax(bad); err == nil {
			t.Errorf("parallax %g accepted; want error", bad)
		}
	}
}

func TestExtinctionLinearity(t *testing.T) {
	if Extinction(0.064) != 2*Extinction(0.032) {
		t.Error("Av not linear in E(B-V)")
	}

	r := NewResolver(table.Dwarfs())
	req := Request{Given: table.Teff, Values: []float64{13000}, DistPc: 372, EBV: 0.032}
	res1, err := r.Resolve(req)
	if err != nil {
		t.Fatal(err)
	}
	req.EBV = 0.064
	res2, err := r.Resolve(req)
	if err != nil {
		t.Fatal(err)
	}
	// doubling the reddening shifts V by exactly the extra extinction
	near(t, "V shift", res2.Stars[0].V-res1.Stars[0].V, res2.Av-res1.Av, 1e-12)
	// and leaves the intrinsic parameters untouched
	near(t, "Mv", res2.Stars[0].Mv, res1.Stars[0].Mv, 1e-12)
}

func TestResolveErrors(t *testing.T) {
	r := NewResolver(table.Dwarfs())
	tcs := []struct {
		name string
		req  Request
		want error
	}{
		{"no values", Request{Given: table.Teff}, ErrNoValues},
		{"BCv axis", Request{Given: table.BCv, Values: []float64{-1}}, ErrBadAxis},
		{"binary without distance", Request{Given: table.Teff, Values: []float64{13000, 11500}, Binary: true}, ErrNoDistance},
		{"binary with one value", Request{Given: table.Teff, Values: []float64{13000}, DistPc: 372, Binary: true}, ErrBinaryValues},
	}
	for _, tc := range tcs {
		if _, err := r.Resolve(tc.req); !errors.Is(err, tc.want) {
			t.Errorf("%s: err=%v; want %v", tc.name, err, tc.want)
		}
	}
}

// Resolving from the given axis and back from a resolved quantity must agree
func TestResolveRoundTrip(t *testing.T) {
	r := NewResolver(table.Dwarfs())
	res, err := r.Resolve(Request{Given: table.Teff, Values: []float64{5800}})
	if err != nil {
		t.Fatal(err)
	}
	back, err := r.Resolve(Request{Given: table.Mv, Values: []float64{res.Stars[0].Mv}})
	if err != nil {
		t.Fatal(err)
	}
	near(t, "Teff", back.Stars[0].Teff, 5800, 60)
}
