// Package config loads and saves rotor parameter sets and assembles the
// 5x5 stiffness, damping and inertia matrices consumed by the flywheel
// model.
package config

import (
	"fmt"
	"os"

	"gonum.org/v1/gonum/mat"
	"gopkg.in/yaml.v3"

	"github.com/tonylee2016/KESS/flywheel"
)

// Default physical parameters, sized for a utility-scale shaftless rotor.
const (
	DefaultMass              = 5216.0 // kg
	DefaultPolarInertia      = 3104.0 // kg*m^2, Ip
	DefaultTransverseInertia = 1628.0 // kg*m^2, It
)

// AxisValues holds one scalar per degree of freedom, in the state layout
// order: theta_x, theta_y, x, y, z.
type AxisValues struct {
	ThetaX float64 `yaml:"theta_x"`
	ThetaY float64 `yaml:"theta_y"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Z      float64 `yaml:"z"`
}

func (a AxisValues) slice() []float64 {
	return []float64{a.ThetaX, a.ThetaY, a.X, a.Y, a.Z}
}

// Params is the scalar physical description of a rotor. Matrices derives
// the dense K, C, M from it.
type Params struct {
	Mass              float64    `yaml:"mass"`
	PolarInertia      float64    `yaml:"polar_inertia"`
	TransverseInertia float64    `yaml:"transverse_inertia"`
	Stiffness         AxisValues `yaml:"stiffness"`
	Damping           AxisValues `yaml:"damping"`
	SpinSpeed         float64    `yaml:"spin_speed"`
}

func DefaultParams() *Params {
	return &Params{
		Mass:              DefaultMass,
		PolarInertia:      DefaultPolarInertia,
		TransverseInertia: DefaultTransverseInertia,
	}
}

func Load(path string) (*Params, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	p := DefaultParams()
	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, err
	}
	return p, nil
}

func Save(path string, p *Params) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Matrices assembles the parameter matrices in the layout the model
// expects: M = diag(It, It, m, m, m), C diagonal per-axis damping with the
// polar moment of inertia on C[0,1] and C[1,0], K diagonal per-axis bearing
// stiffness (all zero for a rotor carried by active magnetic bearings).
func (p *Params) Matrices() (K, C, M *mat.Dense) {
	K = mat.NewDense(flywheel.DOF, flywheel.DOF, nil)
	C = mat.NewDense(flywheel.DOF, flywheel.DOF, nil)
	M = mat.NewDense(flywheel.DOF, flywheel.DOF, nil)

	for i, v := range p.Stiffness.slice() {
		K.Set(i, i, v)
	}
	for i, v := range p.Damping.slice() {
		C.Set(i, i, v)
	}
	C.Set(0, 1, p.PolarInertia)
	C.Set(1, 0, p.PolarInertia)

	M.Set(0, 0, p.TransverseInertia)
	M.Set(1, 1, p.TransverseInertia)
	M.Set(2, 2, p.Mass)
	M.Set(3, 3, p.Mass)
	M.Set(4, 4, p.Mass)
	return K, C, M
}

// Build constructs a flywheel model from the parameter set, applying
// SpinSpeed only when it is set.
func (p *Params) Build() (*flywheel.Model, error) {
	k, c, m := p.Matrices()
	var opts []flywheel.Option
	if p.SpinSpeed != 0 {
		opts = append(opts, flywheel.WithSpinSpeed(p.SpinSpeed))
	}
	mdl, err := flywheel.New(k, c, m, opts...)
	if err != nil {
		return nil, fmt.Errorf("config: building model: %w", err)
	}
	return mdl, nil
}
