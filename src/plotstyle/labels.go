package plotstyle

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hepview/hepplot/src/histogram"
)

// UnitsInAxisTitles controls whether AxisTitle appends the unit suffix.
// Historically the composed "name (units)" title was computed but never
// returned, so every call site got the bare name; the default preserves
// that behavior. Flip to true to get the suffixed form everywhere.
var UnitsInAxisTitles = false

// AxisTitle builds an axis title from a quantity name and its units.
func AxisTitle(name, units string) string {
	if units == "" || !UnitsInAxisTitles {
		return name
	}
	return name + " (" + units + ")"
}

// YAxisTitle builds the entries-per-bin-width y-axis title, e.g.
// "Entries/2.0" or "Entries/(2 MeV)".
func YAxisTitle(rng histogram.Range, bins int, units string) string {
	binw := rng.Width() / float64(bins)
	if units == "" {
		return "Entries/" + floatRepr(binw)
	}
	return fmt.Sprintf("Entries/(%s %s)", strconv.FormatFloat(binw, 'g', -1, 64), units)
}

// floatRepr formats v in its shortest decimal form but always with a
// fractional part, the way a float literal prints: 2 -> "2.0".
func floatRepr(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eEIN") {
		s += ".0"
	}
	return s
}
