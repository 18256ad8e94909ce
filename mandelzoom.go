// Package mandelzoom renders static images of the Mandelbrot set and
// several Julia variants. Every pixel gets a smooth escape-time value under
// iteration of a complex polynomial, adaptively sampled and edge-refined,
// then mapped through a periodic color palette. The same pipeline runs at
// precisions from hardware doubles up to 1024-bit fixed point, selected per
// render call.
package mandelzoom

import (
	"errors"
	"fmt"
	"math"

	"github.com/marben/mandelzoom/calc"
	"github.com/marben/mandelzoom/fixnum"
	"github.com/marben/mandelzoom/palette"
	"github.com/marben/mandelzoom/render"
	"github.com/marben/mandelzoom/surface"
)

// Mode selects which set is rendered.
type Mode = calc.Mode

const (
	ModeMandelbrot      = calc.Mandelbrot
	ModeJuliaAtC        = calc.JuliaAtC
	ModeJuliaAt0        = calc.JuliaAt0
	ModeMandelbrotJulia = calc.MandelbrotJulia
)

// ParseMode recognizes the mode names accepted by the -j flag.
func ParseMode(s string) (Mode, error) {
	m, err := calc.ParseMode(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	return m, nil
}

// Render computes the image described by p and returns the color surface,
// sized Width*Multisample x Height*Multisample. The caller hands the
// surface to pngout or the preview for consumption.
func Render(p Params) (*surface.Surface[palette.Color], error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	pal, err := loadPalette(p)
	if err != nil {
		return nil, err
	}

	w := p.Width * p.Multisample
	h := p.Height * p.Multisample
	out := surface.New[palette.Color](w, h)

	switch p.Bits {
	case 64:
		err = renderAs[fixnum.Float64](p, out, pal)
	case 80:
		err = renderAs[fixnum.BigFloat](p, out, pal)
	case 128:
		err = renderAs[fixnum.Fix128](p, out, pal)
	case 256:
		err = renderAs[fixnum.Fix256](p, out, pal)
	case 384:
		err = renderAs[fixnum.Fix384](p, out, pal)
	case 512:
		err = renderAs[fixnum.Fix512](p, out, pal)
	case 768:
		err = renderAs[fixnum.Fix768](p, out, pal)
	case 1024:
		err = renderAs[fixnum.Fix1024](p, out, pal)
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}

func loadPalette(p Params) (*palette.Palette, error) {
	if p.PaletteFile == "" {
		return palette.Default(p.PhaseOffset), nil
	}
	pal, err := palette.LoadFile(p.PaletteFile, p.PhaseOffset)
	if err != nil {
		if errors.Is(err, palette.ErrInvalidPalette) {
			return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	return pal, nil
}

// renderAs parses the center at precision T and runs the pipeline.
func renderAs[T fixnum.Real[T]](p Params, out *surface.Surface[palette.Color], pal *palette.Palette) error {
	var zero T
	cx, err := zero.Parse(p.CenterX)
	if err != nil {
		return fmt.Errorf("%w: center x: %w", ErrInvalidArgument, err)
	}
	cy, err := zero.Parse(p.CenterY)
	if err != nil {
		return fmt.Errorf("%w: center y: %w", ErrInvalidArgument, err)
	}

	cx = cx.Add(zero.FromFloat64(p.JuliaRadius * math.Cos(p.JuliaAngle)))
	cy = cy.Add(zero.FromFloat64(p.JuliaRadius * math.Sin(p.JuliaAngle)))

	render.Render(out, pal, cx, cy, p.ViewWidth/float64(out.Width()), render.Config{
		Mode:      p.Mode,
		MaxIter:   p.MaxIter,
		Threshold: p.Threshold,
		Period:    p.Period,
		Workers:   p.Workers,
	})
	return nil
}
