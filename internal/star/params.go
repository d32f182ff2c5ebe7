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

// Package star resolves a single known stellar quantity into the full set
// of tabulated main-sequence parameters, and derives apparent and binary
// composite magnitudes from distance and interstellar extinction.
package star

import (
	"errors"
	"fmt"
	"math"

	"github.com/avolkov/dwarfseq/internal/interp"
	"github.com/avolkov/dwarfseq/internal/table"
)

// Ratio of total visual extinction Av to reddening E(B-V)
const extinctionRatio = 3.2

var (
	// ErrNoValues is returned when a request carries no query values.
	ErrNoValues = errors.New("star: no input values")
	// ErrBadAxis is returned when the requested input quantity cannot serve as one.
	ErrBadAxis = errors.New("star: quantity cannot be used as input axis")
	// ErrNoDistance is returned when a derived feature needs a distance that was not given.
	ErrNoDistance = errors.New("star: distance required but not given")
	// ErrBinaryValues is returned when binary mode has fewer than two components.
	ErrBinaryValues = errors.New("star: binary mode requires at least two input values")
)

// The full parameter set of one main-sequence star, one field per table column
type Params struct {
	Teff    float64 `json:"Teff"`
	LogTeff float64 `json:"logTeff"`
	LogL    float64 `json:"logL"`
	Mbol    float64 `json:"Mbol"`
	R       float64 `json:"R"`
	Mv      float64 `json:"Mv"`
	BV      float64 `json:"BV"`
	M       float64 `json:"M"`
	BCv     float64 `json:"BCv"`

	Index  int       `json:"index"`  // nearest table row
	SpType [2]string `json:"spType"` // spectral types bracketing the interpolated position
}

// Get returns the value of the given quantity.
func (p *Params) Get(q table.Quantity) float64 {
	switch q {
	case table.Teff:
		return p.Teff
	case table.LogTeff:
		return p.LogTeff
	case table.LogL:
		return p.LogL
	case table.Mbol:
		return p.Mbol
	case table.R:
		return p.R
	case table.Mv:
		return p.Mv
	case table.BV:
		return p.BV
	case table.M:
		return p.M
	case table.BCv:
		return p.BCv
	}
	panic(fmt.Sprintf("star: unknown quantity %v", q))
}

func (p *Params) set(q table.Quantity, v float64) {
	switch q {
	case table.Teff:
		p.Teff = v
	case table.LogTeff:
		p.LogTeff = v
	case table.LogL:
		p.LogL = v
	case table.Mbol:
		p.Mbol = v
	case table.R:
		p.R = v
	case table.Mv:
		p.Mv = v
	case table.BV:
		p.BV = v
	case table.M:
		p.M = v
	case table.BCv:
		p.BCv = v
	}
}

// A lookup request: one known quantity with one or more values for it,
// plus the optional distance, reddening and binary settings
type Request struct {
	Given  table.Quantity
	Values []float64
	DistPc float64 // distance in parsec, 0 = unknown
	EBV    float64 // interstellar reddening E(B-V) in magnitudes
	Binary bool    // combine the first two components into an unresolved binary
}

// One resolved component
type Star struct {
	Params
	V     float64 `json:"V,omitempty"` // apparent magnitude, set when a distance is known
	HasV  bool    `json:"-"`
	Color string  `json:"color"` // approximate sRGB hex swatch for Teff
}

// Composite appearance of the first two components as an unresolved binary
type Binary struct {
	V1 float64 `json:"V1"`
	V2 float64 `json:"V2"`
	V  float64 `json:"V"`
}

// Result of resolving a request
type Result struct {
	Given  table.Quantity `json:"-"`
	DistPc float64        `json:"distancePc,omitempty"`
	Av     float64        `json:"Av"`
	Stars  []Star         `json:"stars"`
	Binary *Binary        `json:"binary,omitempty"`
}

// Resolves requests against one reference table
type Resolver struct {
	tbl *table.Table
}

// NewResolver returns a resolver over the given reference table.
func NewResolver(tbl *table.Table) *Resolver {
	return &Resolver{tbl: tbl}
}

// Resolve interpolates every tabulated quantity for each request value and
// derives the distance-dependent outputs. The input order of the values is
// preserved in the result.
func (r *Resolver) Resolve(req Request) (*Result, error) {
	if len(req.Values) == 0 {
		return nil, ErrNoValues
	}
	if req.Given == table.BCv {
		return nil, fmt.Errorf("%w: %v is non-monotonic over the table", ErrBadAxis, req.Given)
	}
	if req.Binary {
		if len(req.Values) < 2 {
			return nil, ErrBinaryValues
		}
		if req.DistPc <= 0 {
			return nil, fmt.Errorf("%w: binary composite magnitude", ErrNoDistance)
		}
	}

	res := &Result{
		Given:  req.Given,
		DistPc: req.DistPc,
		Av:     Extinction(req.EBV),
		Stars:  make([]Star, 0, len(req.Values)),
	}
	src := r.tbl.Column(req.Given)
	for _, v := range req.Values {
		s := Star{}
		s.set(req.Given, v)
		idx := -1
		for _, q := range table.Quantities() {
			if q == req.Given {
				continue
			}
			val, i, err := interp.Interpolate(src, r.tbl.Column(q), v)
			if err != nil {
				return nil, fmt.Errorf("resolving %v from %v=%g: %w", q, req.Given, v, err)
			}
			s.set(q, val)
			idx = i
		}
		s.Index = idx
		s.SpType = r.tbl.Bracket(idx)
		s.Color = ColorForTeff(s.Teff).Hex()
		if req.DistPc > 0 {
			s.V = ApparentMagnitude(s.Mv, req.DistPc, res.Av)
			s.HasV = true
		}
		res.Stars = append(res.Stars, s)
	}

	// only the first two components contribute to the composite
	if req.Binary {
		s1, s2 := &res.Stars[0], &res.Stars[1]
		res.Binary = &Binary{
			V1: s1.V,
			V2: s2.V,
			V:  CombineBinary(s1.LogL, s2.LogL, s2.V),
		}
	}
	return res, nil
}

// Extinction returns the total visual extinction Av for a reddening E(B-V).
func Extinction(ebv float64) float64 {
	return extinctionRatio * ebv
}

// DistanceFromParallax converts a parallax in milliarcseconds to a distance in parsec.
func DistanceFromParallax(mas float64) (float64, error) {
	if mas <= 0 {
		return 0, fmt.Errorf("star: parallax must be positive, got %g mas", mas)
	}
	return 1000 / mas, nil
}

// ApparentMagnitude returns the apparent visual magnitude of a star with
// absolute magnitude mv at distance distPc, dimmed by extinction av.
func ApparentMagnitude(mv, distPc, av float64) float64 {
	return mv - 5 + 5*math.Log10(distPc) + av
}

// AbsoluteFromApparent inverts the distance modulus: the absolute magnitude
// of a star with apparent magnitude v at distance distPc, ignoring extinction.
func AbsoluteFromApparent(v, distPc float64) float64 {
	return v + 5 - 5*math.Log10(distPc)
}

// CombineBinary returns the apparent magnitude of an unresolved pair with
// log luminosities logL1 and logL2, where the second component appears with
// magnitude v2. The log luminosities add and their sum is expressed on the
// second component's magnitude scale, reproducing the reference catalogue
// tool's combination.
func CombineBinary(logL1, logL2, v2 float64) float64 {
	return v2 - 2.5*math.Log10((logL1+logL2)/logL2)
}
