package kaboom

var (
	Debug   = false // set to true for verbose debug output and march statistics
	Workers = 0     // number of render workers, 0 means runtime.NumCPU()
	RAW     = ""    // when non-empty, also dump the float framebuffer to this path
)
