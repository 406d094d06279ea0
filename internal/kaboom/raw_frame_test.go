package kaboom

import (
	"bufio"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
)

func TestFramebufferSaveRawRGB64_Basic(t *testing.T) {
	fb := NewFramebuffer(3, 2)
	for j := 0; j < 2; j++ {
		for i := 0; i < 3; i++ {
			base := float64(i*10 + j)
			fb.Set(i, j, v3(base+0.1, base+0.2, base+0.3))
		}
	}

	path := filepath.Join(t.TempDir(), "sub", "frame.raw")
	if err := fb.SaveRawRGB64(path); err != nil {
		t.Fatalf("SaveRawRGB64 error: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open result file: %v", err)
	}
	defer f.Close()

	r := bufio.NewReader(f)

	var hw, hh int32
	if err := binary.Read(r, binary.LittleEndian, &hw); err != nil {
		t.Fatalf("read width: %v", err)
	}
	if err := binary.Read(r, binary.LittleEndian, &hh); err != nil {
		t.Fatalf("read height: %v", err)
	}
	if hw != 3 || hh != 2 {
		t.Fatalf("header mismatch got (%d,%d) want (3,2)", hw, hh)
	}

	for idx := 0; idx < 6; idx++ {
		for c := 0; c < 3; c++ {
			var got float64
			if err := binary.Read(r, binary.LittleEndian, &got); err != nil {
				t.Fatalf("read body[%d][%d]: %v", idx, c, err)
			}
			if want := fb.Pix[idx][c]; got != want {
				t.Fatalf("value %d/%d mismatch got %v want %v", idx, c, got, want)
			}
		}
	}

	st, err := f.Stat()
	if err != nil {
		t.Fatalf("stat file: %v", err)
	}
	if wantSize := int64(8 + 8*3*6); st.Size() != wantSize {
		t.Fatalf("file size mismatch got %d want %d", st.Size(), wantSize)
	}
}

func TestFramebufferSaveRawRGB64_Errors(t *testing.T) {
	t.Run("negative dims", func(t *testing.T) {
		fb := &Framebuffer{Width: -1, Height: 1}
		if err := fb.SaveRawRGB64(filepath.Join(t.TempDir(), "neg.raw")); err == nil {
			t.Fatalf("expected error for negative dims, got nil")
		}
	})
	t.Run("pix length mismatch", func(t *testing.T) {
		fb := &Framebuffer{Width: 2, Height: 2, Pix: make([]Vec3, 3)}
		if err := fb.SaveRawRGB64(filepath.Join(t.TempDir(), "mismatch.raw")); err == nil {
			t.Fatalf("expected error for pix length mismatch, got nil")
		}
	})
}

func TestFramebufferSaveRawRGB64_Zero(t *testing.T) {
	fb := NewFramebuffer(0, 0)
	path := filepath.Join(t.TempDir(), "zero.raw")
	if err := fb.SaveRawRGB64(path); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	st, _ := os.Stat(path)
	if st.Size() != 8 { // header only
		t.Fatalf("want 8 bytes, got %d", st.Size())
	}
}
