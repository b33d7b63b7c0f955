package approx

// =============================================================================
// Constants shared by more than one pipeline
// =============================================================================

// Coefficient tables belong to their core evaluators and live next to
// them (sin.go, atan.go, exp.go, log.go).
const (
	pi       = 3.1415926535897932384626433832795028841971693993751058
	invTwoPi = 1.0 / (2.0 * pi)

	sqrt2 = 1.4142135623730950488016887242096980785696718753769

	log2E = 1.4426950408889634073599246810018921374266459541529
	ln2   = 0.6931471805599453094172321214581765680755001343602
)
