package kaboom

import (
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"
)

// ProbeRays is the sample count of the debug coverage estimate.
const ProbeRays = 10_000

// Run renders the scene described by the config file at cfgPath (the defaults when
// cfgPath is empty) and writes every output. Non-empty outputs replace the ones
// from the config.
func Run(cfgPath string, outputs []string) error {
	cfg := DefaultConfig()
	if cfgPath != "" {
		var err error
		if cfg, err = loadConfig(cfgPath); err != nil {
			return err
		}
	}
	if len(outputs) > 0 {
		cfg.Outputs = outputs
	}
	if RAW != "" {
		cfg.Raw = RAW
	}
	cfg.Outputs = uniqueOutputs(cfg.Outputs)
	// fail on a bad extension before spending time on the render
	for _, out := range cfg.Outputs {
		if _, err := encoderFor(out); err != nil {
			return err
		}
	}

	scene, err := cfg.BuildScene()
	if err != nil {
		return err
	}
	cam := cfg.BuildCamera()

	if Debug {
		resetRayLog()
		DebugLog("Estimated coverage: %.2f%%", estimateCoverage(scene, cam, ProbeRays)*100)
	}

	start := time.Now()
	fb := Render(scene, cam)
	DebugLog("Pixels: %d, time: %s", fb.Width*fb.Height, time.Since(start))

	if Debug {
		raysStats()
	}

	var g errgroup.Group
	for _, out := range cfg.Outputs {
		out := out
		g.Go(func() error {
			if err := SaveImage(out, fb); err != nil {
				return err
			}
			DebugLog("Saved image: %s", out)
			return nil
		})
	}
	if cfg.Raw != "" {
		g.Go(func() error {
			if err := fb.SaveRawRGB64(cfg.Raw); err != nil {
				return err
			}
			DebugLog("Saved raw framebuffer: %s", cfg.Raw)
			return nil
		})
	}
	return g.Wait()
}

// uniqueOutputs drops repeated paths so no two writers share a file.
func uniqueOutputs(outputs []string) []string {
	seen := make(map[string]bool, len(outputs))
	out := outputs[:0:0]
	for _, p := range outputs {
		key := filepath.Clean(p)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, p)
	}
	return out
}
