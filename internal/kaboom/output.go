package kaboom

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Quantize maps a linear color component to 8 bits; NaN maps to 0.
func Quantize(c float64) uint8 {
	return uint8(math.Round(255 * clamp01(c)))
}

// Image converts the framebuffer to 8-bit RGBA with opaque alpha.
func (fb *Framebuffer) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for j := 0; j < fb.Height; j++ {
		rowOff := j * img.Stride
		for i := 0; i < fb.Width; i++ {
			c := fb.At(i, j)
			p := rowOff + i*4
			img.Pix[p+0] = Quantize(c[0])
			img.Pix[p+1] = Quantize(c[1])
			img.Pix[p+2] = Quantize(c[2])
			img.Pix[p+3] = 255
		}
	}
	return img
}

type encodeFunc func(w io.Writer, img image.Image) error

// encoderFor picks a lossless container from the file extension.
func encoderFor(path string) (encodeFunc, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return func(w io.Writer, img image.Image) error {
			enc := png.Encoder{CompressionLevel: png.BestCompression}
			return enc.Encode(w, img)
		}, nil
	case ".tif", ".tiff":
		return func(w io.Writer, img image.Image) error {
			return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
		}, nil
	case ".bmp":
		return bmp.Encode, nil
	}
	return nil, fmt.Errorf("unsupported image format %q (want .png, .tiff or .bmp)", filepath.Ext(path))
}

// SaveImage writes the quantized framebuffer to path.
func SaveImage(path string, fb *Framebuffer) error {
	encode, err := encoderFor(path)
	if err != nil {
		return err
	}
	return saveImage(path, fb, encode)
}

func saveImage(path string, fb *Framebuffer, encode encodeFunc) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create image: %w", err)
	}
	if err := encode(f, fb.Image()); err != nil {
		f.Close()
		// no truncated image is left behind
		os.Remove(path)
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return fmt.Errorf("close image: %w", err)
	}
	return nil
}
