package wells

import "errors"

// Domain errors for structure validation.
var (
	// ErrNoWells indicates a structure without any interior well.
	ErrNoWells = errors.New("wells: structure has no wells")

	// ErrShapeMismatch indicates inconsistent lengths of Wells, Barriers and Vint.
	ErrShapeMismatch = errors.New("wells: shape mismatch")

	// ErrNonPositiveWidth indicates a well or barrier width that is zero, negative or not finite.
	ErrNonPositiveWidth = errors.New("wells: width must be positive")

	// ErrNonFinitePotential indicates a NaN or Inf potential height.
	ErrNonFinitePotential = errors.New("wells: potential must be finite")

	// ErrUnknownPlacement indicates a barrier placement other than Shifted or Adjacent.
	ErrUnknownPlacement = errors.New("wells: unknown barrier placement")

	// ErrBasisSize indicates a basis with fewer than one function.
	ErrBasisSize = errors.New("wells: basis size must be at least 1")
)
