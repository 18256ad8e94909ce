// Package pngout writes rendered color surfaces as RGB PNG files, 8 or 16
// bits per channel, with the gAMA chunk the renderer's linear-light colors
// call for.
package pngout

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"

	mandelzoom "github.com/marben/mandelzoom"
	"github.com/marben/mandelzoom/palette"
	"github.com/marben/mandelzoom/surface"
)

// Gamma is written into the gAMA chunk of every file.
const Gamma = 0.45455

// Encode writes surf as a PNG. The surface must be multisample times larger
// than the output in each direction; each m x m block is folded to one
// output pixel by unweighted average before quantization.
func Encode(w io.Writer, surf *surface.Surface[palette.Color], bitDepth, multisample int) error {
	img, err := Image(surf, bitDepth, multisample)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("%w: %v", mandelzoom.ErrEncoding, err)
	}

	// Splice the gAMA chunk between IHDR and the first data chunk; the
	// stdlib encoder does not emit one.
	b := buf.Bytes()
	const ihdrEnd = 8 + 25 // signature + IHDR
	for _, part := range [][]byte{b[:ihdrEnd], gamaChunk(), b[ihdrEnd:]} {
		if _, err := w.Write(part); err != nil {
			return fmt.Errorf("%w: %v", mandelzoom.ErrIO, err)
		}
	}
	return nil
}

// WriteFile renders surf into the named PNG file.
func WriteFile(path string, surf *surface.Surface[palette.Color], bitDepth, multisample int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %v", mandelzoom.ErrIO, err)
	}
	if err := Encode(f, surf, bitDepth, multisample); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %v", mandelzoom.ErrIO, err)
	}
	return nil
}

func gamaChunk() []byte {
	chunk := make([]byte, 16)
	binary.BigEndian.PutUint32(chunk[0:], 4)
	copy(chunk[4:], "gAMA")
	binary.BigEndian.PutUint32(chunk[8:], uint32(math.Round(Gamma*100000)))
	binary.BigEndian.PutUint32(chunk[12:], crc32.ChecksumIEEE(chunk[4:12]))
	return chunk
}

// Image folds and quantizes the color surface into a stdlib image without
// encoding it. The preview uses this to scale frames for display.
func Image(surf *surface.Surface[palette.Color], bitDepth, multisample int) (image.Image, error) {
	if multisample < 1 || surf.Width()%multisample != 0 || surf.Height()%multisample != 0 {
		return nil, fmt.Errorf("%w: surface %dx%d not divisible by multisample %d",
			mandelzoom.ErrInvalidArgument, surf.Width(), surf.Height(), multisample)
	}
	w := surf.Width() / multisample
	h := surf.Height() / multisample

	switch bitDepth {
	case 8:
		img := image.NewNRGBA(image.Rect(0, 0, w, h))
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				r, g, b := fold(surf, x, y, multisample)
				img.SetNRGBA(x, y, color.NRGBA{quant8(r), quant8(g), quant8(b), 0xff})
			}
		}
		return img, nil
	case 16:
		img := image.NewNRGBA64(image.Rect(0, 0, w, h))
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				r, g, b := fold(surf, x, y, multisample)
				img.SetNRGBA64(x, y, color.NRGBA64{quant16(r), quant16(g), quant16(b), 0xffff})
			}
		}
		return img, nil
	}
	return nil, fmt.Errorf("%w: png bit depth %d", mandelzoom.ErrInvalidArgument, bitDepth)
}

// fold averages the m x m sample block of output pixel (x, y).
func fold(surf *surface.Surface[palette.Color], x, y, m int) (r, g, b float32) {
	for dy := 0; dy < m; dy++ {
		for dx := 0; dx < m; dx++ {
			c := surf.At(x*m+dx, y*m+dy)
			r += c.R
			g += c.G
			b += c.B
		}
	}
	n := float32(m * m)
	return r / n, g / n, b / n
}

func quant8(v float32) uint8 {
	c := math.Round(float64(v) * 255)
	if c < 0 {
		return 0
	}
	if c > 255 {
		return 255
	}
	return uint8(c)
}

func quant16(v float32) uint16 {
	c := math.Round(float64(v) * 65535)
	if c < 0 {
		return 0
	}
	if c > 65535 {
		return 65535
	}
	return uint16(c)
}
