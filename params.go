package mandelzoom

import (
	"errors"
	"fmt"
)

// The error kinds every failure maps onto. The CLI classifies with
// errors.Is and turns any of them into a usage banner plus one diagnostic
// line.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrIO              = errors.New("i/o error")
	ErrEncoding        = errors.New("encoding error")
)

// Params fully specifies one render call.
type Params struct {
	Width, Height int // output size in pixels, before multisampling
	MaxIter       int
	ViewWidth     float64 // complex-plane width of the full image

	// Center coordinates as decimal literals; they are parsed at the
	// selected precision, so a deep-zoom center survives the trip through
	// the command line.
	CenterX string
	CenterY string

	Period    float64 // color period in iterations
	Threshold float64 // antialias edge threshold
	Mode      Mode
	Bits      int // computation precision: 64, 80, 128, 256, 384, 512, 768 or 1024

	Multisample int // render at m*W x m*H and box-filter down; 1..3

	// Polar offset added to the center; setting either from the CLI also
	// switches the mode to Julia-at-0.
	JuliaRadius float64
	JuliaAngle  float64

	PaletteFile string  // empty selects the compiled-in palette
	PhaseOffset float64 // palette phase, 0..1

	Workers int // parallelism; <= 0 means NumCPU
}

// DefaultParams mirrors the CLI defaults.
func DefaultParams() Params {
	return Params{
		Width:       640,
		Height:      480,
		MaxIter:     1024,
		ViewWidth:   4.0,
		CenterX:     "0",
		CenterY:     "0",
		Period:      64,
		Threshold:   3,
		Mode:        ModeMandelbrot,
		Bits:        64,
		Multisample: 1,
	}
}

// MaxIterations is the upper bound of the -i flag.
const MaxIterations = 16 * 1024 * 1024

func validBits(bits int) bool {
	switch bits {
	case 64, 80, 128, 256, 384, 512, 768, 1024:
		return true
	}
	return false
}

// Validate checks every field against the documented ranges.
func (p Params) Validate() error {
	switch {
	case p.Width < 16 || p.Width > 8192:
		return fmt.Errorf("%w: width %d out of range [16, 8192]", ErrInvalidArgument, p.Width)
	case p.Height < 16 || p.Height > 8192:
		return fmt.Errorf("%w: height %d out of range [16, 8192]", ErrInvalidArgument, p.Height)
	case p.MaxIter < 16 || p.MaxIter > MaxIterations:
		return fmt.Errorf("%w: iterations %d out of range [16, %d]", ErrInvalidArgument, p.MaxIter, MaxIterations)
	case p.ViewWidth < 1e-100 || p.ViewWidth > 10000:
		return fmt.Errorf("%w: view width %g out of range [1e-100, 10000]", ErrInvalidArgument, p.ViewWidth)
	case p.Period < 1 || p.Period > 65536:
		return fmt.Errorf("%w: color period %g out of range [1, 65536]", ErrInvalidArgument, p.Period)
	case p.Threshold < 0:
		return fmt.Errorf("%w: negative antialias threshold %g", ErrInvalidArgument, p.Threshold)
	case !validBits(p.Bits):
		return fmt.Errorf("%w: precision %d bits not supported", ErrInvalidArgument, p.Bits)
	case p.Multisample < 1 || p.Multisample > 3:
		return fmt.Errorf("%w: multisample %d out of range [1, 3]", ErrInvalidArgument, p.Multisample)
	case p.PhaseOffset < 0 || p.PhaseOffset > 1:
		return fmt.Errorf("%w: phase offset %g out of range [0, 1]", ErrInvalidArgument, p.PhaseOffset)
	case p.JuliaRadius < -10000 || p.JuliaRadius > 10000:
		return fmt.Errorf("%w: julia radius %g out of range [-10000, 10000]", ErrInvalidArgument, p.JuliaRadius)
	case p.JuliaAngle < -10000 || p.JuliaAngle > 10000:
		return fmt.Errorf("%w: julia angle %g out of range [-10000, 10000]", ErrInvalidArgument, p.JuliaAngle)
	}
	return nil
}
