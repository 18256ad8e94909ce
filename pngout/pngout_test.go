package pngout

import (
	"bytes"
	"encoding/binary"
	"errors"
	"image/png"
	"testing"

	mandelzoom "github.com/marben/mandelzoom"
	"github.com/marben/mandelzoom/palette"
	"github.com/marben/mandelzoom/surface"
)

func gradientSurface(w, h int) *surface.Surface[palette.Color] {
	s := surface.New[palette.Color](w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			s.Set(x, y, palette.Color{
				R: float32(x) / float32(w-1),
				G: float32(y) / float32(h-1),
				B: 0.5,
				Status: 1,
			})
		}
	}
	return s
}

func TestEncodeCarriesGamma(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, gradientSurface(8, 8), 8, 1); err != nil {
		t.Fatal(err)
	}
	b := buf.Bytes()

	// the chunk right after IHDR must be gAMA with the documented value
	const ihdrEnd = 8 + 25
	if got := string(b[ihdrEnd+4 : ihdrEnd+8]); got != "gAMA" {
		t.Fatalf("chunk after IHDR is %q", got)
	}
	if got := binary.BigEndian.Uint32(b[ihdrEnd+8:]); got != 45455 {
		t.Errorf("gamma value = %d, want 45455", got)
	}

	// the spliced file must still decode
	img, err := png.Decode(bytes.NewReader(b))
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != 8 || img.Bounds().Dy() != 8 {
		t.Errorf("decoded size = %v", img.Bounds())
	}
}

func TestEncode16Bit(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, gradientSurface(8, 8), 16, 1); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	r, g, b, _ := img.At(7, 0).RGBA()
	if r != 0xffff {
		t.Errorf("right edge red = %#x, want 0xffff", r)
	}
	if g != 0 {
		t.Errorf("top edge green = %#x, want 0", g)
	}
	// 0.5 quantizes to round(0.5*65535) = 32768
	if b != 32768 {
		t.Errorf("blue = %d, want 32768", b)
	}
}

func TestMultisampleFold(t *testing.T) {
	// 2x2 checkerboard of black and white folds to middle gray
	s := surface.New[palette.Color](2, 2)
	s.Set(0, 0, palette.Color{R: 1, G: 1, B: 1})
	s.Set(1, 1, palette.Color{R: 1, G: 1, B: 1})

	var buf bytes.Buffer
	if err := Encode(&buf, s, 8, 2); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != 1 || img.Bounds().Dy() != 1 {
		t.Fatalf("folded size = %v", img.Bounds())
	}
	r, _, _, _ := img.At(0, 0).RGBA()
	// round(0.5*255) = 128, widened to 16 bits
	if r>>8 != 128 {
		t.Errorf("folded red = %d, want 128", r>>8)
	}
}

func TestEncodeRejectsBadArgs(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, gradientSurface(8, 8), 12, 1); !errors.Is(err, mandelzoom.ErrInvalidArgument) {
		t.Errorf("bit depth 12: got %v", err)
	}
	if err := Encode(&buf, gradientSurface(9, 9), 8, 2); !errors.Is(err, mandelzoom.ErrInvalidArgument) {
		t.Errorf("indivisible multisample: got %v", err)
	}
}

func TestWriteFile(t *testing.T) {
	path := t.TempDir() + "/out.png"
	if err := WriteFile(path, gradientSurface(8, 8), 8, 1); err != nil {
		t.Fatal(err)
	}
	if err := WriteFile(t.TempDir()+"/missing/out.png", gradientSurface(8, 8), 8, 1); !errors.Is(err, mandelzoom.ErrIO) {
		t.Errorf("unwritable path: got %v", err)
	}
}
