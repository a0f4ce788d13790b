package numbers

import (
	"math"
	"strconv"
)

// Format renders a result the way it is sent back to clients: plain decimal
// notation with the shortest digits that round-trip, switching to exponent
// notation for very large and very small magnitudes.
func Format(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	if abs := math.Abs(v); abs == 0 || (abs >= 1e-6 && abs < 1e21) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
