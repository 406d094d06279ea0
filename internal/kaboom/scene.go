package kaboom

// Scene stores the constant configuration of a render: the displaced sphere centered
// at the origin, the light and the marcher tuning.
type Scene struct {
	Radius       float64
	Amplitude    float64
	NoiseScale   float64
	Displacement Displacement
	Flat         bool // white on hit, no palette or lighting
	Light        Vec3
	Background   Vec3
	// marcher
	MaxSteps  int
	StepScale float64
	MinStep   float64
	NormalEps float64
}

// DefaultScene returns the fire ball scene with the default constants.
func DefaultScene() *Scene {
	return &Scene{
		Radius:       SphereRadius,
		Amplitude:    NoiseAmplitude,
		NoiseScale:   NoiseScale,
		Displacement: DisplaceFBM,
		Light:        v3(10, 10, 10),
		Background:   v3(0.2, 0.7, 0.8),
		MaxSteps:     MaxSteps,
		StepScale:    StepScale,
		MinStep:      MinStep,
		NormalEps:    NormalEps,
	}
}
