package calc

import (
	"fmt"

	"github.com/marben/mandelzoom/fixnum"
)

// Mode selects which set is rendered.
type Mode int

const (
	Mandelbrot Mode = iota
	JuliaAtC
	JuliaAt0
	MandelbrotJulia
)

func (m Mode) String() string {
	switch m {
	case Mandelbrot:
		return "mandelbrot"
	case JuliaAtC:
		return "julia-at-c"
	case JuliaAt0:
		return "julia-at-0"
	case MandelbrotJulia:
		return "mandelbrot-julia"
	}
	return "unknown"
}

// ParseMode recognizes the mode names accepted on the command line.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "julia-at-c":
		return JuliaAtC, nil
	case "julia-at-0":
		return JuliaAt0, nil
	case "mandelbrot-julia":
		return MandelbrotJulia, nil
	case "mandelbrot":
		return Mandelbrot, nil
	}
	return 0, fmt.Errorf("unknown julia mode %q", s)
}

// Symmetric reports whether the rendered image is point-symmetric about its
// center, so only the top half needs computing.
func (m Mode) Symmetric() bool {
	return (m == JuliaAt0 || m == MandelbrotJulia) && Power%2 == 0
}

// Select maps a screen-space offset (zx, zy) and the parameter (cx, cy) to
// the kernel inputs for the mode, then runs the kernel. When the starting
// point or the parameter already lies outside the inner bailout radius the
// kernel runs in plain float64; that path is exactly the high-radius phase
// of Calc, so precision is not lost.
func Select[T fixnum.Real[T]](m Mode, cx, cy T, zx, zy float64, maxIter int) float64 {
	var px, py, qx, qy T // c' and z'

	switch m {
	case JuliaAtC, JuliaAt0:
		px, py = cx, cy
		qx, qy = cx.FromFloat64(zx), cx.FromFloat64(zy)
	case MandelbrotJulia:
		ox, oy, _ := complexPow(Power, cx.FromFloat64(zx), cx.FromFloat64(zy))
		px, py = cx.Add(ox), cy.Add(oy)
		qx, qy = cx.FromInt(0), cx.FromInt(0)
	default:
		px, py = cx.Add(cx.FromFloat64(zx)), cy.Add(cy.FromFloat64(zy))
		qx, qy = cx.FromInt(0), cx.FromInt(0)
	}

	pxd, pyd := px.Float64(), py.Float64()
	qxd, qyd := qx.Float64(), qy.Float64()
	if pxd*pxd+pyd*pyd >= Bailout || qxd*qxd+qyd*qyd >= Bailout {
		return Calc(fixnum.Float64(pxd), fixnum.Float64(pyd),
			fixnum.Float64(qxd), fixnum.Float64(qyd), maxIter)
	}
	return Calc(px, py, qx, qy, maxIter)
}
