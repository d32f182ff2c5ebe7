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

// Package table holds the mean dwarf stellar sequence of Pecaut & Mamajek,
// "A Modern Mean Dwarf Stellar Color and Effective Temperature Sequence",
// as of the 2022.04.16 revision of
// http://www.pas.rochester.edu/~emamajek/EEM_dwarf_UBVIJHK_colors_Teff.txt
//
// The table is a fixed set of parallel arrays ordered by descending
// effective temperature, one row per spectral subtype. Index i in any
// column describes the same star as index i in every other column.
package table

import (
	"fmt"
)

// A physical quantity tabulated for each spectral subtype
type Quantity int

const (
	Teff    Quantity = iota // effective temperature [K]
	LogTeff                 // log10 of Teff
	LogL                    // log10 of luminosity [Lsun]
	Mbol                    // absolute bolometric magnitude [mag]
	R                       // radius [Rsun]
	Mv                      // absolute visual magnitude [mag]
	BV                      // B-V color index [mag]
	M                       // mass [Msun]
	BCv                     // bolometric correction [mag], output only
	numQuantities
)

var quantityNames = [numQuantities]string{"Teff", "logTeff", "logL", "Mbol", "R", "Mv", "BV", "M", "BCv"}

func (q Quantity) String() string {
	if q < 0 || q >= numQuantities {
		return fmt.Sprintf("Quantity(%d)", int(q))
	}
	return quantityNames[q]
}

// Parses a quantity name. The match is exact and case-sensitive,
// mirroring the enumerated set in the user-facing flags.
func ParseQuantity(name string) (Quantity, error) {
	for q, n := range quantityNames {
		if n == name {
			return Quantity(q), nil
		}
	}
	return 0, fmt.Errorf("unsupported quantity %q, expected one of %v", name, quantityNames)
}

// Quantities lists every tabulated quantity in display order.
func Quantities() []Quantity {
	qs := make([]Quantity, numQuantities)
	for i := range qs {
		qs[i] = Quantity(i)
	}
	return qs
}

// An immutable set of parallel columns plus spectral type labels,
// all index-aligned and ordered by descending effective temperature
type Table struct {
	spType []string
	cols   [numQuantities][]float64
}

var dwarfs = mustTable()

// Dwarfs returns the process-wide dwarf sequence. The table is read-only
// after construction and safe for concurrent use.
func Dwarfs() *Table {
	return dwarfs
}

// Builds the singleton from the raw column data, enforcing the
// index-alignment invariant instead of trusting positional convention
func mustTable() *Table {
	t := &Table{
		spType: spTypeData,
		cols: [numQuantities][]float64{
			Teff: teffData, LogTeff: logTeffData, LogL: logLData,
			Mbol: mbolData, R: radiusData, Mv: mvData,
			BV: bvData, M: massData, BCv: bcvData,
		},
	}
	n := len(t.spType)
	for q, col := range t.cols {
		if len(col) != n {
			panic(fmt.Sprintf("table: column %s has %d rows, spectral types have %d", Quantity(q), len(col), n))
		}
	}
	return t
}

// Number of rows
func (t *Table) Len() int {
	return len(t.spType)
}

// Column returns the full array of the given quantity, ordered by
// descending effective temperature. Callers must not modify it.
func (t *Table) Column(q Quantity) []float64 {
	return t.cols[q]
}

// SpType returns the spectral type label of row i.
func (t *Table) SpType(i int) string {
	return t.spType[i]
}

// Bracket returns the two spectral type labels straddling the row nearest
// to an interpolated position: rows i-1 and i, with the lower row clamped
// at the hot edge of the table so row 0 yields its own label twice.
func (t *Table) Bracket(i int) [2]string {
	lo := i - 1
	if lo < 0 {
		lo = 0
	}
	return [2]string{t.spType[lo], t.spType[i]}
}
