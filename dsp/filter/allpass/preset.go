package allpass

import "fmt"

// Preset selects a coefficient-count/transition design profile.
type Preset int

const (
	// PresetFast is the default profile with low CPU cost.
	PresetFast Preset = iota
	// PresetBalanced improves low-mid quadrature accuracy at moderate cost.
	PresetBalanced
	// PresetLowFrequency prioritizes low-frequency quadrature accuracy.
	PresetLowFrequency
)

func (p Preset) String() string {
	switch p {
	case PresetFast:
		return "fast"
	case PresetBalanced:
		return "balanced"
	case PresetLowFrequency:
		return "low_frequency"
	default:
		return "unknown"
	}
}

// PresetConfig returns coefficient count and transition bandwidth for a preset.
func PresetConfig(preset Preset) (numberOfCoeffs int, transition float64, err error) {
	switch preset {
	case PresetFast:
		return DefaultCoefficientCount, DefaultTransition, nil
	case PresetBalanced:
		return 12, 0.06, nil
	case PresetLowFrequency:
		return 20, 0.02, nil
	default:
		return 0, 0, fmt.Errorf("%w: unknown preset %d", ErrInvalidDesign, preset)
	}
}

// QuadraturePreset returns the delay vectors for a preset profile.
func QuadraturePreset(preset Preset) (d1, d2 []float64, err error) {
	n, tr, err := PresetConfig(preset)
	if err != nil {
		return nil, nil, err
	}

	return DesignQuadrature(n, tr)
}
