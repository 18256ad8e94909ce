// Package calc implements the smooth escape-time kernel for the iteration
// z <- z^Power + c, generic over the fixnum scalar tower, plus the render
// mode selection in front of it.
package calc

import (
	"math"

	"github.com/marben/mandelzoom/fixnum"
)

// Power is the exponent of the iterated polynomial. Must be >= 2.
const Power = 2

// Infinity is the sentinel iteration count for points that never escape.
const Infinity = 65536.0 * 65536.0 * 65536.0

// extraIter bounds the high-radius float64 refinement after the inner
// bailout triggers.
const extraIter = 1000

// Bailout is the squared radius that ends the inner iteration. Once |z|^2
// reaches it the orbit is committed to escaping; the remaining steps only
// fix the fractional part of the count and run in float64.
var Bailout = 1.001 * math.Pow(2, 2/float64(Power-1))

var log2Power = math.Log2(Power)

// complexSqr returns z^2 together with |z|^2, which falls out of the
// squarings for free.
func complexSqr[T fixnum.Real[T]](zx, zy T) (sx, sy, fsq T) {
	zx2 := zx.Sqr()
	zy2 := zy.Sqr()
	sx = zx2.Sub(zy2)
	sy = zx.Mul(zy)
	sy = sy.Add(sy)
	fsq = zx2.Add(zy2)
	return sx, sy, fsq
}

func complexMul[T fixnum.Real[T]](ax, ay, bx, by T) (sx, sy T) {
	sx = ax.Mul(bx).Sub(ay.Mul(by))
	sy = ax.Mul(by).Add(bx.Mul(ay))
	return sx, sy
}

// complexPow raises z to the n-th power by repeated squaring, n >= 2.
// fsq is |z|^2 of the input, produced by the innermost squaring.
func complexPow[T fixnum.Real[T]](n int, zx, zy T) (sx, sy, fsq T) {
	if n == 2 {
		return complexSqr(zx, zy)
	}
	if n%2 != 0 {
		tx, ty, f := complexPow(n-1, zx, zy)
		sx, sy = complexMul(tx, ty, zx, zy)
		return sx, sy, f
	}
	tx, ty, f := complexPow(n/2, zx, zy)
	sx, sy, _ = complexSqr(tx, ty)
	return sx, sy, f
}

// Calc iterates z <- z^Power + c from the given starting point and returns
// the smooth iteration count, or Infinity if the orbit stays bounded.
//
// The loop runs in T only until |z|^2 crosses Bailout. The step that
// crossed is then redone in float64 and iterated until |z|^2 reaches
// Infinity, which pins the branch of the smooth count. That phase gives up
// once the step count reaches maxIter+extraIter in total.
func Calc[T fixnum.Real[T]](cx, cy, zx, zy T, maxIter int) float64 {
	for k := 0; k < maxIter; k++ {
		sx, sy, fsq := complexPow(Power, zx, zy)

		if fsq.GE(Bailout) {
			fcx := fixnum.Float64(cx.Float64())
			fcy := fixnum.Float64(cy.Float64())
			fzx := fixnum.Float64(zx.Float64())
			fzy := fixnum.Float64(zy.Float64())

			for k--; k < maxIter+extraIter; k++ {
				fx, fy, ffsq := complexPow(Power, fzx, fzy)
				fzx = fx.Add(fcx)
				fzy = fy.Add(fcy)
				if float64(ffsq) >= Infinity {
					return float64(k) - math.Log2(math.Log2(float64(ffsq)))/log2Power
				}
			}
			return Infinity
		}

		zx = sx.Add(cx)
		zy = sy.Add(cy)
	}
	return Infinity
}
