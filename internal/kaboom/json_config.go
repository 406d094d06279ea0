package kaboom

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
)

type PointCfg struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

func (p PointCfg) vec() Vec3 { return v3(p.X, p.Y, p.Z) }

type Config struct {
	Width          int       `json:"width"`
	Height         int       `json:"height"`
	FOVDeg         float64   `json:"fovDeg,omitempty"`
	SphereRadius   float64   `json:"sphereRadius,omitempty"`
	NoiseAmplitude *float64  `json:"noiseAmplitude,omitempty"` // explicit 0 renders a plain sphere
	Displacement   string    `json:"displacement,omitempty"`   // fbm, sine or none
	Flat           bool      `json:"flat,omitempty"`
	Camera         *PointCfg `json:"camera,omitempty"`
	Light          *PointCfg `json:"light,omitempty"`
	Outputs        []string  `json:"outputs,omitempty"`
	Raw            string    `json:"raw,omitempty"`
}

// DefaultConfig is used when no config file is given.
func DefaultConfig() *Config {
	cfg := &Config{}
	if err := cfg.applyDefaults(); err != nil {
		panic(err)
	}
	return cfg
}

func loadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.applyDefaults(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	DebugLog("Loaded config from %s: size=(%d, %d), fov=%.2f deg, radius=%f, amplitude=%f, displacement=%s", path, cfg.Width, cfg.Height, cfg.FOVDeg, cfg.SphereRadius, *cfg.NoiseAmplitude, cfg.Displacement)
	return &cfg, nil
}

// applyDefaults fills zero fields and validates the rest.
func (cfg *Config) applyDefaults() error {
	if cfg.Width <= 0 {
		cfg.Width = Width
	}
	if cfg.Height <= 0 {
		cfg.Height = Height
	}
	if cfg.FOVDeg <= 0 {
		cfg.FOVDeg = FOV * 180.0 / math.Pi
	}
	if cfg.FOVDeg >= 180 {
		return fmt.Errorf("fovDeg must be in (0, 180), got %g", cfg.FOVDeg)
	}
	if cfg.SphereRadius <= 0 {
		cfg.SphereRadius = SphereRadius
	}
	if cfg.NoiseAmplitude == nil {
		a := NoiseAmplitude
		cfg.NoiseAmplitude = &a
	}
	if a := *cfg.NoiseAmplitude; a < 0 || !isFinite(a) {
		return fmt.Errorf("noiseAmplitude must be a finite value >= 0, got %g", a)
	}
	if _, err := ParseDisplacement(cfg.Displacement); err != nil {
		return err
	}
	if cfg.Displacement == "" {
		cfg.Displacement = DisplaceFBM.String()
	}
	if cfg.Camera == nil {
		cfg.Camera = &PointCfg{0, 0, 3}
	}
	if cfg.Light == nil {
		cfg.Light = &PointCfg{10, 10, 10}
	}
	if len(cfg.Outputs) == 0 {
		cfg.Outputs = []string{Output}
	}
	cfg.Outputs = uniqueOutputs(cfg.Outputs)
	return nil
}

// BuildScene builds the render scene described by the config.
func (cfg *Config) BuildScene() (*Scene, error) {
	d, err := ParseDisplacement(cfg.Displacement)
	if err != nil {
		return nil, err
	}
	s := DefaultScene()
	s.Radius = cfg.SphereRadius
	if cfg.NoiseAmplitude != nil {
		s.Amplitude = *cfg.NoiseAmplitude
	}
	s.Displacement = d
	s.Flat = cfg.Flat
	if cfg.Light != nil {
		s.Light = cfg.Light.vec()
	}
	return s, nil
}

// BuildCamera builds the pinhole camera described by the config.
func (cfg *Config) BuildCamera() Camera {
	cam := NewCamera(cfg.Width, cfg.Height, cfg.FOVDeg*math.Pi/180.0)
	if cfg.Camera != nil {
		cam.Position = cfg.Camera.vec()
	}
	return cam
}
