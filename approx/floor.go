package approx

// floor returns the largest integer-valued float64 that is not greater
// than x. Unlike a plain int64 conversion it rounds toward negative
// infinity, not toward zero.
//
// The conversion bounds the usable domain: for |x| at or beyond 2^63
// the result is unspecified. Callers in this package fold their
// arguments well inside that range first; Sin and Cos document the
// resulting argument limit.
func floor(x float64) float64 {
	n := int64(x)
	if x < 0 && float64(n) != x {
		n--
	}
	return float64(n)
}
