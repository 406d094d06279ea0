package kaboom

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
)

// SaveRawRGB64 dumps the unquantized framebuffer: an int32 width and height
// (little-endian) followed by Width*Height*3 float64 values, row-major.
func (fb *Framebuffer) SaveRawRGB64(path string) error {
	if fb.Width < 0 || fb.Height < 0 {
		return fmt.Errorf("raw frame %dx%d: negative size", fb.Width, fb.Height)
	}
	if want := fb.Width * fb.Height; len(fb.Pix) != want {
		return fmt.Errorf("raw frame %dx%d holds %d pixels, want %d", fb.Width, fb.Height, len(fb.Pix), want)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("raw frame dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create raw frame: %w", err)
	}
	w := bufio.NewWriter(f)
	header := [2]int32{int32(fb.Width), int32(fb.Height)}
	// a Vec3 is a [3]float64, the grid encodes without conversion
	for _, data := range []any{header, fb.Pix} {
		if err = binary.Write(w, binary.LittleEndian, data); err != nil {
			break
		}
	}
	if err == nil {
		err = w.Flush()
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("write raw frame %s: %w", path, err)
	}
	return nil
}
