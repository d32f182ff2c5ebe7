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
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Validity range of the Kim et al. (2002) Planckian locus approximation
const (
	minColorTemp = 1667
	maxColorTemp = 25000
)

// ColorForTeff approximates the visual color of a blackbody at the given
// effective temperature as a clamped sRGB color. Temperatures outside the
// Planckian locus approximation range are clamped to its endpoints, which
// is harmless for display: hotter dwarfs saturate to the same blue-white.
func ColorForTeff(teff float64) colorful.Color {
	t := teff
	if t < minColorTemp {
		t = minColorTemp
	} else if t > maxColorTemp {
		t = maxColorTemp
	}

	// cubic spline approximation of the Planckian locus in CIE 1931 xy
	t2, t3 := t*t, t*t*t
	var x float64
	if t < 4000 {
		x = -0.2661239e9/t3 - 0.2343589e6/t2 + 0.8776956e3/t + 0.179910
	} else {
		x = -3.0258469e9/t3 + 2.1070379e6/t2 + 0.2226347e3/t + 0.240390
	}
	x2, x3 := x*x, x*x*x
	var y float64
	switch {
	case t < 2222:
		y = -1.1063814*x3 - 1.34811020*x2 + 2.18555832*x - 0.20219683
	case t < 4000:
		y = -0.9549476*x3 - 1.37418593*x2 + 2.09137015*x - 0.16748867
	default:
		y = 3.0817580*x3 - 5.87338670*x2 + 3.75112997*x - 0.37001483
	}

	return colorful.Xyy(x, y, 1.0).Clamped()
}
