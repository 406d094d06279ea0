package kaboom

// Framebuffer is a row-major grid of linear, unclamped RGB colors.
type Framebuffer struct {
	Width, Height int
	Pix           []Vec3 // Pix[i+j*Width] is column i, row j
}

func NewFramebuffer(width, height int) *Framebuffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pix:    make([]Vec3, width*height),
	}
}

func (fb *Framebuffer) Index(i, j int) int { return i + j*fb.Width }

func (fb *Framebuffer) At(i, j int) Vec3 { return fb.Pix[fb.Index(i, j)] }

func (fb *Framebuffer) Set(i, j int, c Vec3) { fb.Pix[fb.Index(i, j)] = c }
