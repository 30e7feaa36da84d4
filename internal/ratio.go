package internal

import "math"

// NeutralRatio returns subject/baseline when both are strictly positive and
// the quotient is finite, otherwise 1.0 (same as baseline).
func NeutralRatio(subject, baseline float64) float64 {
	if !(subject > 0) || !(baseline > 0) {
		return 1.0
	}
	r := subject / baseline
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 1.0
	}
	return r
}

// fraction returns n/d, or 0 when d is not positive.
func fraction(n, d int64) float64 {
	if d <= 0 {
		return 0
	}
	return float64(n) / float64(d)
}

// percentage returns n/d × 100, or 0 when d is not positive.
func percentage(n, d int64) float64 {
	return fraction(n, d) * 100
}
