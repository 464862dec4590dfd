package config

// Presets are ready-made rotor descriptions. "levitated" is the magnetic
// bearing configuration: K is zero because the bearing forces enter as the
// external force vector, not as passive stiffness. "test_rig" approximates
// the rotor parked on its stiff backup bearings.
var Presets = map[string]*Params{
	"levitated": {
		Mass:              DefaultMass,
		PolarInertia:      DefaultPolarInertia,
		TransverseInertia: DefaultTransverseInertia,
		Damping:           AxisValues{ThetaX: 12, ThetaY: 12, X: 80, Y: 80, Z: 80},
		SpinSpeed:         628.3,
	},
	"test_rig": {
		Mass:              DefaultMass,
		PolarInertia:      DefaultPolarInertia,
		TransverseInertia: DefaultTransverseInertia,
		Stiffness:         AxisValues{ThetaX: 1.2e5, ThetaY: 1.2e5, X: 5.0e6, Y: 5.0e6, Z: 8.0e6},
		Damping:           AxisValues{ThetaX: 50, ThetaY: 50, X: 2.0e3, Y: 2.0e3, Z: 3.0e3},
	},
}

func GetPreset(name string) *Params {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cp := *p
	return &cp
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
