package motion

const (
	MaxDt         = 0.033 // s, longest step taken regardless of elapsed time
	Drift         = 6.0   // px/s² peak-to-peak random velocity change
	MaxSpeed      = 22.0  // px/s per axis
	RepelRadius   = 160.0 // px
	RepelStrength = 900.0 // px/s² at the cursor
	Jitter        = 18.0  // px/s² peak-to-peak shake while repelled
	MinRepelDist  = 0.001 // px, below this the direction is undefined
)

type Tuning struct {
	MaxDt         float64 `yaml:"max_dt" json:"max_dt"`
	Drift         float64 `yaml:"drift" json:"drift"`
	MaxSpeed      float64 `yaml:"max_speed" json:"max_speed"`
	RepelRadius   float64 `yaml:"repel_radius" json:"repel_radius"`
	RepelStrength float64 `yaml:"repel_strength" json:"repel_strength"`
	Jitter        float64 `yaml:"jitter" json:"jitter"`
}

func DefaultTuning() Tuning {
	return Tuning{
		MaxDt:         MaxDt,
		Drift:         Drift,
		MaxSpeed:      MaxSpeed,
		RepelRadius:   RepelRadius,
		RepelStrength: RepelStrength,
		Jitter:        Jitter,
	}
}

// withDefaults fills non-positive fields from DefaultTuning. Drift and Jitter
// may legitimately be zero.
func (t Tuning) withDefaults() Tuning {
	d := DefaultTuning()
	if t.MaxDt <= 0 {
		t.MaxDt = d.MaxDt
	}
	if t.MaxSpeed <= 0 {
		t.MaxSpeed = d.MaxSpeed
	}
	if t.RepelRadius <= 0 {
		t.RepelRadius = d.RepelRadius
	}
	if t.RepelStrength < 0 {
		t.RepelStrength = d.RepelStrength
	}
	if t.Drift < 0 {
		t.Drift = d.Drift
	}
	if t.Jitter < 0 {
		t.Jitter = d.Jitter
	}
	return t
}
