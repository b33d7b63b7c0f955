package approx

import (
	"math"
	"testing"
)

func TestSinCore(t *testing.T) {
	for i := 0; i <= 256; i++ {
		x := float64(i) / 256
		got := sinCore(x)
		want := math.Sin(math.Pi / 6 * x)
		if math.Abs(got-want) > 1e-15 {
			t.Fatalf("sinCore(%v) = %v, want %v", x, got, want)
		}
	}
}

func TestSinAgainstStdlib(t *testing.T) {
	const tol = 1e-11
	maxErr := 0.0
	for x := -1000.0; x <= 1000.0; x += 0.1 {
		err := math.Abs(Sin(x) - math.Sin(x))
		if err > maxErr {
			maxErr = err
		}
		if err > tol {
			t.Fatalf("Sin(%v) = %v, want %v (err %g)", x, Sin(x), math.Sin(x), err)
		}
	}
	t.Logf("max |Sin - math.Sin| over [-1000,1000]: %g", maxErr)
}

func TestCosAgainstStdlib(t *testing.T) {
	const tol = 1e-11
	for x := -1000.0; x <= 1000.0; x += 0.1 {
		if err := math.Abs(Cos(x) - math.Cos(x)); err > tol {
			t.Fatalf("Cos(%v) = %v, want %v (err %g)", x, Cos(x), math.Cos(x), err)
		}
	}
}

func TestSinPeriodicity(t *testing.T) {
	const tol = 1e-12
	samples := []float64{0, 0.5, 1, 2.5, -1.25, 3, -7.75}
	for _, x := range samples {
		for k := 1; k <= 5; k++ {
			shifted := x + 2*math.Pi*float64(k)
			if diff := math.Abs(Sin(x) - Sin(shifted)); diff > tol {
				t.Errorf("Sin(%v) and Sin(%v+2pi*%d) differ by %g", x, x, k, diff)
			}
		}
	}
}

func TestCosPhaseIdentity(t *testing.T) {
	const tol = 1e-12
	for x := -20.0; x <= 20.0; x += 0.25 {
		if diff := math.Abs(Cos(x) - Sin(x+math.Pi/2)); diff > tol {
			t.Errorf("Cos(%v) = %v, Sin(%v+pi/2) = %v", x, Cos(x), x, Sin(x+math.Pi/2))
		}
	}
}

func TestSinCosExactPoints(t *testing.T) {
	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"Sin(0)", Sin(0), 0},
		{"Cos(0)", Cos(0), 1},
		{"Sin(pi/2)", Sin(math.Pi / 2), 1},
		{"Sin(pi/6)", Sin(math.Pi / 6), 0.5},
		{"Cos(pi)", Cos(math.Pi), -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if math.Abs(tt.got-tt.want) > 1e-13 {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestSinCosSpecials(t *testing.T) {
	specials := []float64{math.NaN(), math.Inf(1), math.Inf(-1)}
	for _, x := range specials {
		if !math.IsNaN(Sin(x)) {
			t.Errorf("Sin(%v) = %v, want NaN", x, Sin(x))
		}
		if !math.IsNaN(Cos(x)) {
			t.Errorf("Cos(%v) = %v, want NaN", x, Cos(x))
		}
	}
}
