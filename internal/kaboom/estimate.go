package kaboom

import (
	"math/rand"
	"runtime"
	"sync"
	"sync/atomic"
	"time"
)

// estimateCoverage shoots primary rays through random pixels and reports which
// fraction of them lands on the fire ball.
func estimateCoverage(scene *Scene, cam Camera, trials int) float64 {
	if trials <= 0 || cam.Width <= 0 || cam.Height <= 0 {
		return 0
	}
	workers := min(imax(runtime.NumCPU(), 1), trials)

	var hits atomic.Int64
	var wg sync.WaitGroup
	seed := time.Now().UnixNano()
	for w := 0; w < workers; w++ {
		// worker w takes trials w, w+workers, w+2*workers, ...
		n := (trials - w + workers - 1) / workers
		wg.Add(1)
		go func(rng *rand.Rand, n int) {
			defer wg.Done()
			var local int64
			for ; n > 0; n-- {
				if _, ok := scene.March(cam.PrimaryRay(rng.Intn(cam.Width), rng.Intn(cam.Height))); ok {
					local++
				}
			}
			hits.Add(local)
		}(rand.New(rand.NewSource(seed+int64(w))), n)
	}
	wg.Wait()

	return float64(hits.Load()) / float64(trials)
}
