// Copyright 2025 go-approx Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command approxsweep sweeps an input range through one of the
// approximation pipelines and prints (x, f(x)) pairs for offline
// comparison against a trusted reference implementation.
//
// Usage:
//
//	approxsweep -func sin                        # pairs on stdout, 60 significant digits
//	approxsweep -func log -min 0.001 -max 10     # custom range
//	approxsweep -func exp -ref                   # stdlib reference values instead
//	approxsweep -func atan -stats                # error statistics only
//
// The defaults reproduce the historical harness: x from -10 to 10 in
// one million steps.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/ajroetker/go-approx/approx"
)

type pipeline struct {
	fn  func(float64) float64
	ref func(float64) float64
}

var pipelines = map[string]pipeline{
	"sin":  {approx.Sin, math.Sin},
	"cos":  {approx.Cos, math.Cos},
	"atan": {approx.Atan, math.Atan},
	"exp":  {approx.Exp, math.Exp},
	"exp2": {approx.Exp2, math.Exp2},
	"log":  {approx.Log, math.Log},
	"log2": {approx.Log2, math.Log2},
}

var (
	funcName  = flag.String("func", "", "Pipeline to sweep: sin, cos, atan, exp, exp2, log, log2 (required)")
	minX      = flag.Float64("min", -10, "Lower end of the sweep range")
	maxX      = flag.Float64("max", 10, "Upper end of the sweep range")
	steps     = flag.Int("steps", 1000000, "Number of sweep steps")
	useRef    = flag.Bool("ref", false, "Print the stdlib reference instead of the approximation")
	statsMode = flag.Bool("stats", false, "Report error statistics against the stdlib reference instead of printing pairs")
)

func main() {
	flag.Parse()

	p, ok := pipelines[*funcName]
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: -func must name one of the pipelines\n\n")
		flag.Usage()
		os.Exit(1)
	}
	if *steps < 1 || *maxX <= *minX {
		fmt.Fprintf(os.Stderr, "Error: need -max > -min and -steps >= 1\n")
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "approxsweep: func=%s range=[%g,%g] steps=%d cpu=%s\n",
		*funcName, *minX, *maxX, *steps, cpuSummary())

	step := (*maxX - *minX) / float64(*steps)

	if *statsMode {
		printStats(p, step)
		return
	}

	f := p.fn
	if *useRef {
		f = p.ref
	}
	for x := *minX; x <= *maxX; x += step {
		fmt.Printf("%.60e %.60e\n", x, f(x))
	}
}

// printStats reports the absolute error of the pipeline against its
// stdlib reference over the sweep. Points where either side is NaN
// (e.g. the negative half of a log sweep) are excluded.
func printStats(p pipeline, step float64) {
	absErr := make([]float64, 0, *steps+1)
	for x := *minX; x <= *maxX; x += step {
		a, r := p.fn(x), p.ref(x)
		if math.IsNaN(a) || math.IsNaN(r) {
			continue
		}
		absErr = append(absErr, math.Abs(a-r))
	}
	if len(absErr) == 0 {
		fmt.Fprintf(os.Stderr, "Error: no comparable points in the sweep range\n")
		os.Exit(1)
	}

	fmt.Printf("samples   %d\n", len(absErr))
	fmt.Printf("max abs   %.17g\n", floats.Max(absErr))
	fmt.Printf("mean abs  %.17g\n", stat.Mean(absErr, nil))
	fmt.Printf("rms       %.17g\n", math.Sqrt(floats.Dot(absErr, absErr)/float64(len(absErr))))
}
