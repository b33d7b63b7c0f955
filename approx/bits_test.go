package approx

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPow2(t *testing.T) {
	for n := -1022; n <= 1023; n++ {
		if got, want := pow2(n), math.Ldexp(1, n); got != want {
			t.Fatalf("pow2(%d) = %g, want %g", n, got, want)
		}
	}
}

func TestExponent(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  int
	}{
		{"one", 1.0, 0},
		{"mid mantissa", 1.5, 0},
		{"two", 2.0, 1},
		{"three quarters", 0.75, -1},
		{"half", 0.5, -1},
		{"eight", 8.0, 3},
		{"smallest normal", math.Ldexp(1, -1022), -1022},
		{"largest finite", math.MaxFloat64, 1023},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exponent(tt.input); got != tt.want {
				t.Errorf("exponent(%v) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

// scaleToHalf must reproduce math.Frexp exactly: the rescaled mantissa
// is Frexp's fraction bit for bit, and the discarded exponent (offset
// by one) is Frexp's exponent.
func TestScaleToHalf(t *testing.T) {
	samples := []float64{
		0.0625, 0.5, 0.9999, 1.0, 1.5, 2.0, 3.1415, 1024.0,
		6.02e23, 1e-300, 1e300, math.Ldexp(1.75, -900),
	}
	for _, x := range samples {
		frac, exp := math.Frexp(x)
		require.Equal(t, frac, scaleToHalf(x), "scaleToHalf(%g)", x)
		require.Equal(t, exp, exponent(x)+1, "exponent(%g)", x)
	}
}
