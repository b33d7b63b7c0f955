package approx

import "math"

// Numerator and denominator coefficients (polynomials in x^2) of the
// Hart EXPB 1067 rational approximation of 2^x on [-0.5, 0.5],
// accurate to 18.08 decimal digits. The approximant has the symmetric
// form (Q + x*P)/(Q - x*P).
var (
	exp2NumCoeff = [3]float64{
		.1513906799054338915894328e4,
		.20202065651286927227886e2,
		.23093347753750233624e-1,
	}
	exp2DenCoeff = [3]float64{
		.4368211662727558498496814e4,
		.233184211427481623790295e3,
		1.0,
	}
)

// exp2Core evaluates 2^x for x in [-0.5, 0.5].
func exp2Core(x float64) float64 {
	x2 := x * x
	p := (exp2NumCoeff[2]*x2+exp2NumCoeff[1])*x2 + exp2NumCoeff[0]
	p *= x
	q := (exp2DenCoeff[2]*x2+exp2DenCoeff[1])*x2 + exp2DenCoeff[0]
	return (q + p) / (q - p)
}

// Exp2 computes 2^x.
//
// The argument splits into an integer part n (floor) and a residual
// x - n - 0.5 in [-0.5, 0.5). 2^n is built exactly from its bit
// pattern, and the sqrt(2) factor compensates the 0.5 residual offset.
//
// Special cases:
//   - Exp2(NaN) = NaN
//   - n < -1022 returns exactly 0 (underflow; includes -Inf)
//   - n > 1023 returns +Inf (overflow; includes +Inf)
func Exp2(x float64) float64 {
	switch {
	case math.IsNaN(x):
		return x
	case x < -1022:
		return 0
	case x >= 1024:
		return math.Inf(1)
	}
	n := int(floor(x))
	return pow2(n) * sqrt2 * exp2Core(x-float64(n)-0.5)
}

// Exp computes e^x as a power of two: e^x = 2^(x*log2(e)).
//
// Special cases follow Exp2: Exp(NaN) = NaN, Exp(-Inf) = 0,
// Exp(+Inf) = +Inf.
func Exp(x float64) float64 {
	return Exp2(x * log2E)
}
