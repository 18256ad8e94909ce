// Package render drives the adaptive sampler and the antialias engine over
// a pair of surfaces to produce a finalized color image.
package render

import (
	"runtime"

	"github.com/marben/mandelzoom/calc"
	"github.com/marben/mandelzoom/fixnum"
	"github.com/marben/mandelzoom/internal/logging"
	"github.com/marben/mandelzoom/palette"
	"github.com/marben/mandelzoom/surface"
)

// Config carries the knobs a render needs besides the parameter point.
type Config struct {
	Mode      calc.Mode
	MaxIter   int
	Threshold float64 // antialias edge threshold
	Period    float64 // color period in iterations
	Workers   int     // <= 0 means NumCPU
}

// job bundles the per-render state threaded through the sampler and the
// antialias passes.
type job[T fixnum.Real[T]] struct {
	out    *surface.Surface[palette.Color]
	scalar *surface.Surface[float64]
	pal    *palette.Palette

	cx, cy           T
	centerX, centerY float64 // image center in scalar-surface coordinates
	pw               float64 // complex-plane width of one pixel

	cfg     Config
	workers int
}

// point evaluates the kernel at scalar-surface coordinates (x, y).
func (j *job[T]) point(x, y float64) float64 {
	zx := (x - j.centerX) * j.pw
	zy := (j.centerY - y) * j.pw
	return calc.Select(j.cfg.Mode, j.cx, j.cy, zx, zy, j.cfg.MaxIter)
}

// Render fills out with finalized colors for the view centered on (cx, cy)
// with the given complex-plane pixel width. The scalar surface carries a
// one-pixel apron on every side so edge detection never leaves the buffer.
// For point-symmetric modes only the top half is computed; the bottom half
// is its reflection.
func Render[T fixnum.Real[T]](out *surface.Surface[palette.Color], pal *palette.Palette,
	cx, cy T, pixelWidth float64, cfg Config) {

	w, h := out.Width(), out.Height()
	sym := cfg.Mode.Symmetric()
	sh := h + 2
	if sym {
		sh = (h+1)/2 + 2
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	j := &job[T]{
		out:     out,
		scalar:  surface.New[float64](w+2, sh),
		pal:     pal,
		cx:      cx,
		cy:      cy,
		centerX: 0.5*float64(w-1) + 1,
		centerY: 0.5*float64(h-1) + 1,
		pw:      pixelWidth,
		cfg:     cfg,
		workers: workers,
	}

	j.sample()
	logging.Logger().Debug("adaptive sampling done", "width", w, "height", h, "mode", cfg.Mode.String())

	for pass := 0; ; pass++ {
		modified := j.antialias(pass)
		logging.Logger().Debug("antialias pass done", "pass", pass, "modified", modified)
		if !modified {
			break
		}
	}

	if sym {
		fold(out)
	}
}

// fold mirrors the computed top half onto the bottom through the image
// center point.
func fold(out *surface.Surface[palette.Color]) {
	w, h := out.Width(), out.Height()
	for y0, y1 := 0, h-1; y0 < y1; y0, y1 = y0+1, y1-1 {
		for x := 0; x < w; x++ {
			out.Set(x, y1, out.At(w-1-x, y0))
		}
	}
}
