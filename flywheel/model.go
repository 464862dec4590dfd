package flywheel

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

const (
	// DOF is the number of generalized coordinates: theta_x, theta_y, x, y, z.
	DOF = 5
	// StateSize is the length of the augmented state vector
	// (positions 0-4, velocities 5-9).
	StateSize = 2 * DOF
)

// Model is a 5-DOF rigid-rotor model. All fields are fixed at construction;
// the evolving state is owned by the caller's integration loop.
type Model struct {
	k, c, m *mat.Dense // 5x5 physical parameters
	a, b    *mat.Dense // 10x10 state-space matrices
	aInv    *mat.Dense // cached inverse of a, nil when a is singular
	invErr  error

	x []float64 // initial state
	w float64   // spin speed, rad/s
}

type options struct {
	x0    []float64
	hasX0 bool
	w0    float64
	hasW0 bool
}

// Option configures optional construction parameters. Options carry an
// explicit presence flag so that a deliberately all-zero initial state or
// spin speed is distinguishable from an omitted one.
type Option func(*options)

// WithInitialState sets the initial 10-element augmented state.
func WithInitialState(x0 []float64) Option {
	return func(o *options) {
		o.x0 = x0
		o.hasX0 = true
	}
}

// WithSpinSpeed sets the constant rotor spin speed in rad/s.
func WithSpinSpeed(w0 float64) Option {
	return func(o *options) {
		o.w0 = w0
		o.hasW0 = true
	}
}

// New builds a rotor model from stiffness K, damping C and inertia M.
// Each matrix must be exactly 5x5. The state-space matrices
//
//	A = | C  I |    B = | K  0 |
//	    | M  0 |        | 0 -I |
//
// are assembled once here and reused by every LinearDerivative call.
// The input matrices are copied; the model does not alias caller memory.
func New(K, C, M mat.Matrix, opts ...Option) (*Model, error) {
	if err := checkShape("K", K); err != nil {
		return nil, err
	}
	if err := checkShape("C", C); err != nil {
		return nil, err
	}
	if err := checkShape("M", M); err != nil {
		return nil, err
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	mdl := &Model{
		k: mat.DenseCopyOf(K),
		c: mat.DenseCopyOf(C),
		m: mat.DenseCopyOf(M),
		a: mat.NewDense(StateSize, StateSize, nil),
		b: mat.NewDense(StateSize, StateSize, nil),
		x: make([]float64, StateSize),
	}

	mdl.a.Slice(0, DOF, 0, DOF).(*mat.Dense).Copy(mdl.c)
	mdl.a.Slice(DOF, StateSize, 0, DOF).(*mat.Dense).Copy(mdl.m)
	mdl.b.Slice(0, DOF, 0, DOF).(*mat.Dense).Copy(mdl.k)
	for i := 0; i < DOF; i++ {
		mdl.a.Set(i, DOF+i, 1)
		mdl.b.Set(DOF+i, DOF+i, -1)
	}

	// Invert eagerly so LinearDerivative is a pure multiply; a singular A
	// is reported per call, not at construction.
	aInv := mat.NewDense(StateSize, StateSize, nil)
	if err := aInv.Inverse(mdl.a); err != nil {
		mdl.invErr = err
	} else {
		mdl.aInv = aInv
	}

	if o.hasX0 {
		if len(o.x0) != StateSize {
			return nil, fmt.Errorf("%w: got length %d", ErrInvalidInitialState, len(o.x0))
		}
		copy(mdl.x, o.x0)
	}
	if o.hasW0 {
		if !(o.w0 > 0) || math.IsInf(o.w0, 1) {
			return nil, fmt.Errorf("%w: got %v", ErrInvalidSpinSpeed, o.w0)
		}
		mdl.w = o.w0
	}

	return mdl, nil
}

func checkShape(name string, a mat.Matrix) error {
	r, c := a.Dims()
	if r != DOF || c != DOF {
		return fmt.Errorf("%w: %s is %dx%d", ErrInvalidParameterShape, name, r, c)
	}
	return nil
}

// LinearDerivative evaluates the linear formulation dx = -inv(A)*(B*x).
// The time argument is unused; the system is time-invariant.
func (m *Model) LinearDerivative(t float64, x []float64) ([]float64, error) {
	if len(x) != StateSize {
		return nil, fmt.Errorf("%w: got length %d", ErrInvalidInitialState, len(x))
	}
	if m.aInv == nil {
		return nil, fmt.Errorf("%w: %v", ErrSingularSystemMatrix, m.invErr)
	}

	xv := mat.NewVecDense(StateSize, x)
	var bx, dx mat.VecDense
	bx.MulVec(m.b, xv)
	dx.MulVec(m.aInv, &bx)

	out := make([]float64, StateSize)
	for i := range out {
		out[i] = -dx.AtVec(i)
	}
	return out, nil
}

// NonlinearDerivative evaluates the nonlinear formulation: positions advance
// with the stored velocities, and each axis obeys Newton's second law with a
// diagonal restoring force. The two tilt axes additionally carry the
// gyroscopic cross-coupling C[1,0]*w and C[0,1]*w. f is an optional 5-element
// external force/moment vector; nil means no external load.
func (m *Model) NonlinearDerivative(t float64, x, f []float64) ([]float64, error) {
	if len(x) != StateSize {
		return nil, fmt.Errorf("%w: got length %d", ErrInvalidInitialState, len(x))
	}
	if f == nil {
		f = make([]float64, DOF)
	} else if len(f) != DOF {
		return nil, fmt.Errorf("flywheel: force vector must have length %d, got %d", DOF, len(f))
	}
	for i := 0; i < DOF; i++ {
		if m.m.At(i, i) == 0 {
			return nil, fmt.Errorf("%w: M[%d,%d]", ErrZeroInertia, i, i)
		}
	}

	dx := make([]float64, StateSize)
	copy(dx[:DOF], x[DOF:])

	dx[5] = (f[0] - m.c.At(1, 0)*m.w*x[6] - m.k.At(0, 0)*x[0]) / m.m.At(0, 0)
	dx[6] = (f[1] - m.c.At(0, 1)*m.w*x[5] - m.k.At(1, 1)*x[1]) / m.m.At(1, 1)
	dx[7] = (f[2] - m.k.At(2, 2)*x[2]) / m.m.At(2, 2)
	dx[8] = (f[3] - m.k.At(3, 3)*x[3]) / m.m.At(3, 3)
	dx[9] = (f[4] - m.k.At(4, 4)*x[4]) / m.m.At(4, 4)

	return dx, nil
}

// Energy returns the total mechanical energy of a state: translational and
// tilt kinetic energy, elastic energy stored in the bearings, and the spin
// kinetic energy 0.5*Ip*w^2 with Ip read from C[0,1].
func (m *Model) Energy(x []float64) float64 {
	if len(x) != StateSize {
		return 0
	}
	q := mat.NewVecDense(DOF, x[:DOF])
	v := mat.NewVecDense(DOF, x[DOF:])
	return 0.5*mat.Inner(v, m.m, v) + 0.5*mat.Inner(q, m.k, q) + 0.5*m.c.At(0, 1)*m.w*m.w
}

// State returns a copy of the initial state the model was constructed with.
func (m *Model) State() []float64 {
	x := make([]float64, StateSize)
	copy(x, m.x)
	return x
}

// SpinSpeed returns the constant rotor spin speed in rad/s.
func (m *Model) SpinSpeed() float64 { return m.w }

// StateDim returns the length of the augmented state vector.
func (m *Model) StateDim() int { return StateSize }

// SystemMatrices returns copies of the derived state-space matrices A and B.
func (m *Model) SystemMatrices() (A, B *mat.Dense) {
	return mat.DenseCopyOf(m.a), mat.DenseCopyOf(m.b)
}
