package fixnum

import (
	"math"
	"math/big"
)

// bigFloatPrec is the mantissa width of BigFloat. 64 bits matches the
// significand of the x87 extended format, one tier above hardware doubles.
const bigFloatPrec = 64

// BigFloat is an extended-precision float backed by math/big. Values are
// immutable; every operation allocates its result.
type BigFloat struct {
	f *big.Float
}

// val treats the zero BigFloat as 0.
func (a BigFloat) val() *big.Float {
	if a.f == nil {
		return new(big.Float).SetPrec(bigFloatPrec)
	}
	return a.f
}

func newBig() *big.Float { return new(big.Float).SetPrec(bigFloatPrec) }

func (a BigFloat) Add(b BigFloat) BigFloat { return BigFloat{newBig().Add(a.val(), b.val())} }
func (a BigFloat) Sub(b BigFloat) BigFloat { return BigFloat{newBig().Sub(a.val(), b.val())} }
func (a BigFloat) Neg() BigFloat           { return BigFloat{newBig().Neg(a.val())} }
func (a BigFloat) Mul(b BigFloat) BigFloat { return BigFloat{newBig().Mul(a.val(), b.val())} }
func (a BigFloat) Sqr() BigFloat           { v := a.val(); return BigFloat{newBig().Mul(v, v)} }

func (a BigFloat) GE(d float64) bool {
	return a.val().Cmp(big.NewFloat(d)) >= 0
}

func (a BigFloat) Float64() float64 {
	v, _ := a.val().Float64()
	return v
}

func (a BigFloat) Int() int {
	v, _ := a.val().Float64()
	return int(math.Floor(v))
}

func (BigFloat) FromInt(v int) BigFloat {
	return BigFloat{newBig().SetInt64(int64(v))}
}

func (BigFloat) FromFloat64(v float64) BigFloat {
	return BigFloat{newBig().SetFloat64(v)}
}

func (BigFloat) Parse(s string) (BigFloat, error) {
	f, _, err := big.ParseFloat(s, 10, bigFloatPrec, big.ToNearestEven)
	if err != nil {
		return BigFloat{}, literalErr(s)
	}
	return BigFloat{f}, nil
}
