package fixnum

import (
	"errors"
	"fmt"
	"math/big"
)

// ErrInvalidLiteral reports a malformed decimal literal.
var ErrInvalidLiteral = errors.New("invalid literal")

func literalErr(s string) error {
	return fmt.Errorf("%w: %q", ErrInvalidLiteral, s)
}

var limbMask = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 64), big.NewInt(1))

// fixParse parses a decimal literal into r at the given bit width. The
// literal is read at width+64 bits of precision, scaled to the fixed-point
// grid with round half-up, and clamped to the representable magnitude.
func fixParse(r []uint64, s string, width uint) error {
	f, _, err := big.ParseFloat(s, 10, width+64, big.ToNearestEven)
	if err != nil {
		return literalErr(s)
	}
	neg := f.Sign() < 0
	f.Abs(f)

	// floor((|v| * 2^(width-7) + 1) / 2) = round-half-up of |v| * 2^(width-8)
	f.SetMantExp(f, int(width)-7)
	f.Add(f, big.NewFloat(1))
	i, _ := f.Int(nil)
	i.Rsh(i, 1)

	max := new(big.Int).Lsh(big.NewInt(1), width-1)
	if !neg {
		max.Sub(max, big.NewInt(1))
	}
	if i.Cmp(max) > 0 {
		i.Set(max)
	}

	t := new(big.Int)
	for k := range r {
		r[k] = t.And(i, limbMask).Uint64()
		i.Rsh(i, 64)
	}
	if neg {
		limbNeg(r, r)
	}
	return nil
}
