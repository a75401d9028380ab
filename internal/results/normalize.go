package results

import "strings"

// Conversion reports how a score unit mapped onto canonical ns/op.
type Conversion int

const (
	// ConvTimePerOp scaled a "<unit>/op" score into nanoseconds.
	ConvTimePerOp Conversion = iota
	// ConvThroughput inverted an "ops/<unit>" rate into nanoseconds.
	ConvThroughput
	// ConvZeroRate is the degenerate throughput case: a zero score or an
	// unrecognized denominator. The sample is pinned to 0.
	ConvZeroRate
	// ConvPassthrough left the score untouched: the unit was not recognized.
	ConvPassthrough
)

// nsPerUnit scales "<unit>/op" prefixes to nanoseconds.
var nsPerUnit = map[string]float64{
	"ns": 1,
	"us": 1e3,
	"ms": 1e6,
	"s":  1e9,
}

// secPerUnit scales "ops/<unit>" denominators to seconds.
var secPerUnit = map[string]float64{
	"ns": 1e-9,
	"us": 1e-6,
	"ms": 1e-3,
	"s":  1,
}

// Normalize converts a score in the given unit to canonical ns/op samples.
// It never fails: unrecognized units pass the score through and report
// ConvPassthrough so callers can surface a diagnostic.
func Normalize(score float64, unit string) ([]float64, Conversion) {
	if strings.HasSuffix(unit, "/op") {
		mult, known := nsPerUnit[strings.TrimSuffix(unit, "/op")]
		if !known {
			return []float64{score}, ConvPassthrough
		}
		return []float64{score * mult}, ConvTimePerOp
	}

	if strings.HasPrefix(unit, "ops/") {
		mult, known := secPerUnit[strings.TrimPrefix(unit, "ops/")]
		if !known || score == 0 {
			return []float64{0.0}, ConvZeroRate
		}
		opsPerSec := score / mult
		if opsPerSec == 0 {
			return []float64{0.0}, ConvZeroRate
		}
		return []float64{1e9 / opsPerSec}, ConvThroughput
	}

	return []float64{score}, ConvPassthrough
}

// NormalizeRaw applies the same conversion element-wise to raw samples.
func NormalizeRaw(vals []float64, unit string) []float64 {
	out := make([]float64, 0, len(vals))
	for _, v := range vals {
		s, _ := Normalize(v, unit)
		out = append(out, s...)
	}
	return out
}
