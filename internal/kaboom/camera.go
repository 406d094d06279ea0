package kaboom

import "math"

// Camera is a pinhole looking down the -z axis.
type Camera struct {
	Position      Vec3
	FOV           float64 // vertical, radians
	Width, Height int
}

// NewCamera places the camera at (0,0,3).
func NewCamera(width, height int, fov float64) Camera {
	return Camera{
		Position: v3(0, 0, 3),
		FOV:      fov,
		Width:    width,
		Height:   height,
	}
}

// PrimaryRay returns the ray through the center of pixel (i, j); row 0 is the top.
func (c Camera) PrimaryRay(i, j int) Ray {
	w, h := float64(c.Width), float64(c.Height)
	dirX := (float64(i) + 0.5) - w/2
	dirY := -(float64(j) + 0.5) + h/2 // flips the image at the same time
	dirZ := -h / (2 * math.Tan(c.FOV/2))
	return Ray{Origin: c.Position, Dir: unit(v3(dirX, dirY, dirZ))}
}
