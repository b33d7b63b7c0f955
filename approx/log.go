package approx

import "math"

// Numerator and denominator coefficients of the Hart LOG2 2524
// degree-3/3 rational approximation of log2(m) for m in [0.5, 1],
// accurate to 8.32 decimal digits.
var (
	log2NumCoeff = [4]float64{
		-.205466671951e1,
		-.88626599391e1,
		.610585199015e1,
		.481147460989e1,
	}
	log2DenCoeff = [4]float64{
		.353553425277,
		.454517087629e1,
		.642784209029e1,
		1.0,
	}
)

// log2Core evaluates log2(m) for m in [0.5, 1].
func log2Core(m float64) float64 {
	p := log2NumCoeff[3]
	for i := 2; i >= 0; i-- {
		p = p*m + log2NumCoeff[i]
	}
	q := log2DenCoeff[3]
	for i := 2; i >= 0; i-- {
		q = q*m + log2DenCoeff[i]
	}
	return p / q
}

// Log2 computes log2(x).
//
// For positive normal x the bit pattern splits exactly: rewriting the
// exponent field rescales the mantissa into [0.5, 1) with no rounding
// loss, and the discarded exponent (offset by one for the halved
// mantissa) contributes the integer part of the result.
//
// Special cases:
//   - Log2(x) = NaN for x <= 0 (includes -Inf)
//   - Log2(NaN) = NaN
//   - Log2(+Inf) = +Inf
func Log2(x float64) float64 {
	switch {
	case math.IsNaN(x):
		return x
	case x <= 0:
		return math.NaN()
	case math.IsInf(x, 1):
		return x
	}
	e := exponent(x) + 1
	return float64(e) + log2Core(scaleToHalf(x))
}

// Log computes the natural logarithm by rescaling the base-2 result:
// ln(x) = log2(x) * ln(2). Special cases follow Log2.
func Log(x float64) float64 {
	return Log2(x) * ln2
}
