package approx

import "math"

// Coefficients of the degree-5 odd minimax polynomial for arctan(x)
// on [0, tan(pi/32)]: Hart ARCTN 4903, accurate to 16.52 decimal
// digits.
var atanCoeff = [6]float64{
	.99999999999969557,
	-.3333333333318,
	.1999999997276,
	-.14285702288,
	.11108719478,
	-.8870580341e-1,
}

// Partition tables for the arctangent reduction. atanBreak[i] holds
// the breakpoint tan((2i-1)*pi/32) separating the reduction intervals
// centred on the angles (2i-2)*pi/32; the +Inf sentinel closes the
// last interval. atanInv and atanInvSqP1 hold 1/x_i and 1/x_i^2 + 1
// for each centre x_i = tan((2i-2)*pi/32), precomputed to full
// precision. The first two entries of the derived tables are unused:
// interval 1 feeds the core directly.
var (
	atanBreak = [9]float64{
		0,
		0.0984914033571642477671304050090839155018329620361328125,
		0.3033466836073424044428747947677038609981536865234375,
		0.53451113595079158269385288804187439382076263427734375,
		0.82067879082866024287312711749109439551830291748046875,
		1.218503525587976366040265929768793284893035888671875,
		1.8708684117893887854933154812897555530071258544921875,
		3.29655820893832096629694206058047711849212646484375,
		math.Inf(1),
	}

	atanInv = [9]float64{
		0,
		0,
		5.02733949212584807497705696732737123966217041015625,
		2.41421356237309492343001693370752036571502685546875,
		1.496605762665489169904731170390732586383819580078125,
		1.0000000000000002220446049250313080847263336181640625,
		0.66817863791929898997778991542872972786426544189453125,
		0.414213562373095089963470627481001429259777069091796875,
		0.1989123673796580893391450217677629552781581878662109375,
	}

	atanInvSqP1 = [9]float64{
		0,
		0,
		26.2741423690881816810360760428011417388916015625,
		6.8284271247461898468600338674150407314300537109375,
		3.23982880884355051165357508580200374126434326171875,
		2.000000000000000444089209850062616169452667236328125,
		1.446462692171689656817079594475217163562774658203125,
		1.1715728752538099310953612075536511838436126708984375,
		1.0395661298965801488947136022034101188182830810546875,
	}
)

// atanCore evaluates arctan(x) for x in [0, tan(pi/32)]. Odd
// polynomial, Horner over x^2, final multiply by x.
func atanCore(x float64) float64 {
	x2 := x * x
	p := atanCoeff[5]
	for i := 4; i >= 0; i-- {
		p = p*x2 + atanCoeff[i]
	}
	return p * x
}

// atanPositive computes arctan(x) for non-negative x. A three-step
// bounded binary search over atanBreak locates the partition R with
// atanBreak[R-1] <= x < atanBreak[R]; the addition formula
//
//	arctan(x) = arctan(x_R) + arctan(t)
//	t = 1/x_R - (1/x_R^2 + 1)/(1/x_R + x)
//
// then leaves a residual t within [-tan(pi/32), tan(pi/32)] for the
// core. R <= 1 means x is already inside the core's interval.
func atanPositive(x float64) float64 {
	L, R := 0, 8
	for R-L > 1 {
		m := (L + R) / 2
		if atanBreak[m] <= x {
			L = m
		} else {
			R = m
		}
	}

	if R <= 1 {
		return atanCore(x)
	}

	t := atanInv[R] - atanInvSqP1[R]/(atanInv[R]+x)
	if t >= 0 {
		return float64(2*R-2)*(pi/32) + atanCore(t)
	}
	return float64(2*R-2)*(pi/32) - atanCore(-t)
}

// Atan computes arctan(x), extending the non-negative reduction to
// negative arguments by oddness. Atan(-x) == -Atan(x) holds exactly.
//
// Special cases:
//   - Atan(±Inf) = ±pi/2 (to core accuracy)
//   - Atan(NaN) = NaN
func Atan(x float64) float64 {
	if x >= 0 {
		return atanPositive(x)
	}
	return -atanPositive(-x)
}

// Atan2 computes the angle of the point (x, y) in [-pi, pi], using the
// signs of both arguments to pick the quadrant.
//
// Special cases:
//   - Atan2(y, NaN) = NaN and Atan2(NaN, x) = NaN
//   - Atan2(y>0, 0) = +pi/2 and Atan2(y<0, 0) = -pi/2
//   - Atan2(0, 0) = NaN (the direction is undefined)
func Atan2(y, x float64) float64 {
	if math.IsNaN(y) || math.IsNaN(x) {
		return math.NaN()
	}
	switch {
	case x > 0:
		return Atan(y / x)
	case x < 0:
		if y >= 0 {
			return Atan(y/x) + pi
		}
		return Atan(y/x) - pi
	case y > 0:
		return pi / 2
	case y < 0:
		return -pi / 2
	}
	return math.NaN()
}
