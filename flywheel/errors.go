package flywheel

import "errors"

// Domain errors for model construction and derivative evaluation.
var (
	// ErrInvalidParameterShape indicates K, C, M are not all 5x5 with
	// mutually equal shapes.
	ErrInvalidParameterShape = errors.New("flywheel: K, C, M must all be 5x5 and equal in shape")

	// ErrInvalidInitialState indicates a state vector whose length does not
	// match the 10-element augmented state.
	ErrInvalidInitialState = errors.New("flywheel: state must have length 10")

	// ErrInvalidSpinSpeed indicates a supplied spin speed that is not a
	// positive finite number.
	ErrInvalidSpinSpeed = errors.New("flywheel: spin speed must be positive")

	// ErrSingularSystemMatrix indicates the composite inertia/damping matrix
	// A cannot be inverted.
	ErrSingularSystemMatrix = errors.New("flywheel: system matrix A is singular")

	// ErrZeroInertia indicates a zero diagonal entry of M used by the
	// nonlinear formulation.
	ErrZeroInertia = errors.New("flywheel: zero diagonal inertia entry")
)
