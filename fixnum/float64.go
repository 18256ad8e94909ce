package fixnum

import (
	"math"
	"strconv"
)

// Float64 adapts a hardware double to the Real contract.
type Float64 float64

func (a Float64) Add(b Float64) Float64 { return a + b }
func (a Float64) Sub(b Float64) Float64 { return a - b }
func (a Float64) Neg() Float64          { return -a }
func (a Float64) Mul(b Float64) Float64 { return a * b }
func (a Float64) Sqr() Float64          { return a * a }

func (a Float64) GE(d float64) bool { return float64(a) >= d }

func (a Float64) Float64() float64 { return float64(a) }

func (a Float64) Int() int { return int(math.Floor(float64(a))) }

func (Float64) FromInt(v int) Float64 { return Float64(v) }

func (Float64) FromFloat64(v float64) Float64 { return Float64(v) }

func (Float64) Parse(s string) (Float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, literalErr(s)
	}
	return Float64(v), nil
}
