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

package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	dwf "github.com/avolkov/dwarfseq/internal"
	"github.com/avolkov/dwarfseq/internal/rest"
	"github.com/avolkov/dwarfseq/internal/star"
	"github.com/avolkov/dwarfseq/internal/table"
)

const version = "1.0.0"

var given = flag.String("given", "", "input `quantity`, one of Teff, logTeff, logL, Mbol, R, Mv, BV, M, or V for apparent magnitude")
var val = flag.String("val", "", "input `value` or values separated by commas")
var atdist = flag.Float64("atdist", 0, "`distance` in pc, or parallax in mas with -mas")
var mas = flag.Bool("mas", false, "interpret -atdist as a parallax in mas")
var ebv = flag.Float64("ebv", 0, "interstellar reddening `E(B-V)` in magnitudes")
var binary = flag.Bool("binary", false, "treat the first two values as an unresolved binary at -atdist")
var logF = flag.String("log", "", "save log output to `file`")
var httpAddr = flag.String("http", ":8080", "listen `address` for the serve command")

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `Dwarfseq Copyright (c) 2024 Alexei Volkov
This program comes with ABSOLUTELY NO WARRANTY.
This is free software, and you are welcome to redistribute it under certain conditions.
Refer to https://www.gnu.org/licenses/gpl-3.0.en.html for details.

Usage: %s [-flag value] (lookup|serve|legal|version|help)

Commands:
  lookup  Interpolate the dwarf sequence at the -given quantity and -val values (default)
  serve   Run the JSON API on the -http address
  legal   Show license and attribution information
  version Show version information

Flags:
`, os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if *logF != "" {
		if err := dwf.LogAlsoToFile(*logF); err != nil {
			dwf.LogFatalf("Unable to open logfile '%s': %s\n", *logF, err)
		}
	}

	cmd := "lookup"
	if args := flag.Args(); len(args) > 0 {
		cmd = args[0]
	}

	switch cmd {
	case "lookup":
		cmdLookup()

	case "serve":
		if err := rest.Serve(*httpAddr); err != nil {
			dwf.LogFatalf("Error serving on %s: %s\n", *httpAddr, err)
		}

	case "legal":
		dwf.LogPrintln(legal)

	case "version":
		dwf.LogPrintf("Version %s\n", version)

	case "help", "?":
		flag.Usage()

	default:
		fmt.Fprintf(os.Stderr, "Unknown command '%s'\n\n", cmd)
		flag.Usage()
		os.Exit(1)
	}
	dwf.LogSync()
}

// Interpolate the table at the given quantity and values, then print every
// other quantity plus the derived distance-dependent outputs
func cmdLookup() {
	if *given == "" {
		dwf.LogFatalf("No input quantity specified. Run this programme with -h\n")
	}
	if *val == "" {
		dwf.LogFatalf("No input values specified. Run this programme with -h\n")
	}
	values, err := parseValues(*val)
	if err != nil {
		dwf.LogFatalf("Error parsing -val: %s\n", err)
	}

	dist := *atdist
	if *mas {
		if dist, err = star.DistanceFromParallax(*atdist); err != nil {
			dwf.LogFatalf("Error converting parallax: %s\n", err)
		}
	}

	givenName := *given
	if givenName == "V" {
		if dist <= 0 {
			dwf.LogFatalf("The apparent magnitude V requires a distance, use -atdist\n")
		}
		dwf.LogPrintln("The apparent magnitude is given as an input parameter. Computing absolute magnitude(s)...")
		dwf.LogPrintf("Distance d is %g pc\n", dist)
		givenName = "Mv"
		for i, v := range values {
			values[i] = star.AbsoluteFromApparent(v, dist)
		}
	}

	q, err := table.ParseQuantity(givenName)
	if err != nil {
		dwf.LogFatalf("Error: %s\n", err)
	}

	res, err := star.NewResolver(table.Dwarfs()).Resolve(star.Request{
		Given:  q,
		Values: values,
		DistPc: dist,
		EBV:    *ebv,
		Binary: *binary,
	})
	if err != nil {
		dwf.LogFatalf("Error: %s\n", err)
	}

	for i := range res.Stars {
		s := &res.Stars[i]
		dwf.LogPrintf("Star #%d: %v = %.3f\t", i+1, q, s.Get(q))
		for _, out := range table.Quantities() {
			if out != q {
				dwf.LogPrintf("%v = %.3f\t", out, s.Get(out))
			}
			if out == table.Mv && s.HasV {
				dwf.LogPrintf("V = %.1f (d = %.0f pc, Av = %.3f)\t", s.V, dist, res.Av)
			}
		}
		dwf.LogPrintf("SpType: [%s %s]\tColor: %s\n\n", s.SpType[0], s.SpType[1], s.Color)
	}

	if res.Binary != nil {
		dwf.LogPrintf("Binary with components V1 = %.2f mag and V2 = %.2f mag appears as\n", res.Binary.V1, res.Binary.V2)
		dwf.LogPrintf("a star with V = %.2f mag at distance d = %.0f pc, Av = %.3f mag\n\n", res.Binary.V, dist, res.Av)
	}

	dwf.LogPrintln("Note: the effective temperature Teff is expressed in K, luminosity L, mass M, and radius R are in solar units. The rest of parameters are in magnitudes")
}

// Splits a comma-separated list of numbers
func parseValues(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	values := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("value %q is not numeric", p)
		}
		values = append(values, v)
	}
	return values, nil
}
