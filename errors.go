package pairing

import "errors"

// Sentinel errors for the small, structural error taxonomy: allocation
// failure, an arithmetic precondition violation, a fatal constant-parse
// failure at context construction, and a propagated failure from a
// lower-level field hook. Context.Pair also returns ErrFieldHook when its
// G1 input is not on the curve.
var (
	ErrAllocation    = errors.New("pairing: scratch allocation failed")
	ErrZeroInverse   = errors.New("pairing: cannot invert zero field element")
	ErrConstantParse = errors.New("pairing: failed to parse curve constant")
	ErrFieldHook     = errors.New("pairing: underlying field operation failed")
)
