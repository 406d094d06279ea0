package kaboom

import "math"

// Defaults for everything the renderer needs; a config file may override most of them.
const (
	Width          = 640
	Height         = 480
	FOV            = math.Pi / 3 // vertical field of view, radians
	SphereRadius   = 1.5
	NoiseAmplitude = 0.2
	NoiseScale     = 3.4 // frequency of the turbulence sampled by the SDF
	SineFrequency  = 16.0
	Output         = "out.png"
	// ray marcher
	MaxSteps  = 128
	StepScale = 0.1  // damping applied to the distance estimate
	MinStep   = 0.01 // floor so tiny positive distances still advance
	NormalEps = 0.1
	// shading
	AmbientFloor = 0.4
	LevelOffset  = 0.2
	LevelGain    = 2.0
	// noise
	hashScale = 43758.5453
	fbmNorm   = 0.9375 // 0.5 + 0.25 + 0.125 + 0.0625
)
