package approx

import "math"

// IEEE-754 binary64 layout: 1 sign bit, 11 exponent bits (bias 1023),
// 52 mantissa bits. The exponential and logarithm pipelines manipulate
// these fields directly through math.Float64bits/Float64frombits,
// which are defined bit casts rather than numeric conversions.
const (
	mantBits = 52
	expBias  = 1023
	expMask  = 0x7ff
)

// exponent returns the unbiased exponent field of x. For a positive
// normal x this is floor(log2(x)).
func exponent(x float64) int {
	return int(math.Float64bits(x)>>mantBits&expMask) - expBias
}

// pow2 returns 2^n exactly, built as the bit pattern with biased
// exponent n+1023 and a zero mantissa. n must be in [-1022, 1023].
func pow2(n int) float64 {
	return math.Float64frombits(uint64(n+expBias) << mantBits)
}

// scaleToHalf rewrites the exponent field of a positive normal x to
// 1022, rescaling its mantissa into [0.5, 1) with no rounding loss.
func scaleToHalf(x float64) float64 {
	b := math.Float64bits(x)
	b &^= uint64(expMask) << mantBits
	b |= uint64(expBias-1) << mantBits
	return math.Float64frombits(b)
}
