// Package flywheel models the rigid-body dynamics of a magnetically
// suspended flywheel rotor with 5 degrees of freedom: two tilt angles
// (theta_x, theta_y) and three translations (x, y, z).
//
// A [Model] is built from three 5x5 physical parameter matrices
// (stiffness K, damping C, inertia M) and derives the 10x10 first-order
// state-space matrices A and B at construction. It exposes two derivative
// formulations:
//
//   - [Model.LinearDerivative]: dx = -inv(A) * (B * x)
//   - [Model.NonlinearDerivative]: per-axis Newton's law with gyroscopic
//     cross-coupling between the tilt axes, proportional to spin speed
//
// The augmented state vector has 10 elements throughout: generalized
// positions in indices 0-4 followed by generalized velocities in indices
// 5-9. The original source validated initial states against the raw 5x5
// parameter size while integrating a 10-element state; this package
// standardizes on the 10-element layout everywhere.
//
// A model is immutable after construction. Both derivative functions are
// pure and safe to call concurrently on a shared instance. The model does
// not advance its own state: an external ODE integrator is expected to own
// the evolving state vector and call one of the derivative functions each
// step.
package flywheel
