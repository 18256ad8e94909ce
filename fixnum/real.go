// Package fixnum provides the arithmetic tower the renderer computes in:
// hardware float64, an extended-precision big float, and signed fixed-point
// numbers at widths from 128 to 1024 bits.
//
// All implementations are value types. A fixed-point number of width W is a
// two's-complement integer whose top 8 bits are the signed integer part and
// whose remaining W-8 bits are the fraction, i.e. an implicit scale of
// 2^(W-8). Arithmetic wraps silently; the renderer's coordinates stay far
// inside the representable range.
package fixnum

// Real is the scalar contract shared by every precision. The constraint is
// self-referential so that generic code over T gets value-typed arithmetic
// without boxing.
//
// FromFloat64 and Parse hang off the receiver type only; they ignore the
// receiver value and are callable on a zero T.
type Real[T any] interface {
	Add(T) T
	Sub(T) T
	Neg() T
	Mul(T) T

	// Sqr returns the square. Fixed-point widths route this through a
	// dedicated squaring kernel rather than Mul.
	Sqr() T

	// GE reports whether the value is >= d.
	GE(d float64) bool

	// Float64 converts lossily to a hardware double.
	Float64() float64

	// Int truncates toward negative infinity.
	Int() int

	FromInt(v int) T
	FromFloat64(v float64) T
	Parse(s string) (T, error)
}

var (
	_ Real[Float64]  = Float64(0)
	_ Real[BigFloat] = BigFloat{}
	_ Real[Fix128]   = Fix128{}
	_ Real[Fix256]   = Fix256{}
	_ Real[Fix384]   = Fix384{}
	_ Real[Fix512]   = Fix512{}
	_ Real[Fix768]   = Fix768{}
	_ Real[Fix1024]  = Fix1024{}
)
