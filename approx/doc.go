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

// Package approx computes elementary transcendental functions from
// self-contained minimax approximations instead of the platform math
// library.
//
// Each function follows the same two-step shape:
//
//  1. Range reduction: properties of the target function (periodicity,
//     addition formulas, the binary exponent of the IEEE-754
//     representation) map an arbitrary argument onto a small fixed
//     interval.
//
//  2. Core evaluation: a fixed-degree polynomial or rational
//     approximant, valid only on that interval, produces the result.
//
// The approximants were derived offline with the Remez exchange
// algorithm and are taken from the appendix of Hart et al., "Computer
// Approximations" (1st edition): SIN 2922, ARCTN 4903, EXPB 1067 and
// LOG2 2524. Coefficient tables are package-level constants; nothing
// is computed or cached at runtime.
//
// # Public surface
//
//   - Sin, Cos - sine and cosine of a radian argument
//   - Atan, Atan2 - one- and two-argument arctangent
//   - Exp, Exp2 - e^x and 2^x
//   - Log, Log2 - natural and base-2 logarithm
//
// # Accuracy
//
// The cores are accurate to between 8 and 18 decimal digits on their
// reduced intervals (see the per-file coefficient comments). The
// weakest link is the logarithm core at roughly 5e-9 absolute error;
// the other pipelines stay within a few ULP of the reference results.
// The package targets reproducible, documented accuracy rather than
// correct rounding.
//
// # Error handling
//
// There is no error channel. Every function is total over the extended
// reals; domain violations map to IEEE-754 sentinels:
//
//   - Log(x), Log2(x) for x <= 0 return NaN
//   - Atan2(0, 0) returns NaN
//   - Exp2 returns exactly 0 on underflow and +Inf on overflow
//
// All functions are pure and allocation-free, and safe for concurrent
// use without synchronization.
package approx
