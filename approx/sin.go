package approx

import "math"

// Coefficients of the degree-5 odd minimax polynomial for sin(pi/6*t)
// on [0, 1]: Hart SIN 2922, accurate to 16.47 decimal digits.
var sinCoeff = [6]float64{
	.52359877559829885532,
	-.2392459620393377657e-1,
	.32795319441392666e-3,
	-.214071970654441e-5,
	.815113605169e-8,
	-.2020852964e-10,
}

// sinCore evaluates sin(pi/6*t) for t in [0, 1]. The polynomial is
// odd, so Horner runs over t^2 with a final multiply by t.
func sinCore(t float64) float64 {
	t2 := t * t
	p := sinCoeff[5]
	for i := 4; i >= 0; i-- {
		p = p*t2 + sinCoeff[i]
	}
	return p * t
}

// sinReduced computes sin(2*pi*t) for t in [0, 0.25]. The triple-angle
// identity sin(3a) = sin(a)*(3 - 4*sin^2(a)) shrinks the angle seen by
// the core to at most pi/6.
func sinReduced(t float64) float64 {
	s := sinCore(4 * t)
	return s * (3 - 4*s*s)
}

// sinTurns computes sin(2*pi*t) for t in [0, 1), folding the full turn
// onto [0, 0.25] with sine's symmetries.
func sinTurns(t float64) float64 {
	switch {
	case t < 0.25:
		return sinReduced(t)
	case t < 0.5:
		return sinReduced(0.5 - t)
	case t < 0.75:
		return -sinReduced(t - 0.5)
	default:
		return -sinReduced(1 - t)
	}
}

// Sin computes sin(x) for x in radians.
//
// The argument is converted to turns (x/2pi) and folded into [0, 1)
// by subtracting its floor, so accuracy degrades once |x|/2pi
// approaches the int64 range used by the floor step.
//
// Special cases:
//   - Sin(NaN) = NaN
//   - Sin(±Inf) = NaN
func Sin(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return math.NaN()
	}
	t := x * invTwoPi
	return sinTurns(t - floor(t))
}

// Cos computes cos(x) for x in radians, reusing the sine fold with a
// quarter-turn phase shift: cos(x) = sin(x + pi/2).
//
// Special cases:
//   - Cos(NaN) = NaN
//   - Cos(±Inf) = NaN
func Cos(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return math.NaN()
	}
	t := x*invTwoPi + 0.25
	return sinTurns(t - floor(t))
}
