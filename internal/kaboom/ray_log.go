package kaboom

import (
	"fmt"
	"sort"
	"sync"
)

type Category uint8

const (
	Hit       Category = iota // ray went inside the surface
	Rejected                  // ray misses the bounding sphere
	Exhausted                 // step budget ran out before reaching the surface
)

func (c Category) String() string {
	switch c {
	case Hit:
		return "hit"
	case Rejected:
		return "rejected"
	case Exhausted:
		return "exhausted"
	}
	return fmt.Sprintf("Category(%d)", uint8(c))
}

type RayLog struct {
	Category Category
	I, J     int  // pixel
	Point    Vec3 // hit point, if any
	Steps    int  // marcher iterations used
}

type RayLogCache struct {
	mu   sync.Mutex
	rays map[Category][]RayLog
}

var cache = &RayLogCache{
	rays: make(map[Category][]RayLog),
}

func logRay(category Category, i, j int, point Vec3, steps int) {
	cache.mu.Lock()
	defer cache.mu.Unlock()
	cache.rays[category] = append(cache.rays[category], RayLog{
		Category: category,
		I:        i,
		J:        j,
		Point:    point,
		Steps:    steps,
	})
}

func resetRayLog() {
	cache.mu.Lock()
	cache.rays = make(map[Category][]RayLog)
	cache.mu.Unlock()
}

func raysStats() {
	cache.mu.Lock()
	defer cache.mu.Unlock()
	cats := make([]Category, 0, len(cache.rays))
	for k := range cache.rays {
		cats = append(cats, k)
	}
	sort.Slice(cats, func(a, b int) bool { return cats[a] < cats[b] })
	for _, k := range cats {
		v := cache.rays[k]
		steps := 0
		for _, l := range v {
			steps += l.Steps
		}
		fmt.Printf("Ray type %s: %d logs, %.2f steps avg\n", k, len(v), float64(steps)/float64(len(v)))
	}
}
