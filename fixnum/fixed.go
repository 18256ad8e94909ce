package fixnum

// The fixed-point widths. Each is an array type so values are comparable
// and copied by assignment; the limb kernels in limbs.go do the work.
//
// Methods receive the array by value, so slicing the receiver hands the
// kernels a private copy they may clobber.

// Fix128 is a 128-bit fixed-point number.
type Fix128 [2]uint64

func (a Fix128) Add(b Fix128) Fix128 { var r Fix128; limbAdd(r[:], a[:], b[:]); return r }
func (a Fix128) Sub(b Fix128) Fix128 { var r Fix128; limbSub(r[:], a[:], b[:]); return r }
func (a Fix128) Neg() Fix128         { var r Fix128; limbNeg(r[:], a[:]); return r }

func (a Fix128) Mul(b Fix128) Fix128 {
	var r Fix128
	var wide [4]uint64
	fixMul(r[:], a[:], b[:], wide[:])
	return r
}

func (a Fix128) Sqr() Fix128 {
	var r Fix128
	var wide [4]uint64
	fixSqr(r[:], a[:], wide[:])
	return r
}

func (a Fix128) GE(d float64) bool { return a.Float64() >= d }
func (a Fix128) Float64() float64  { return limbToFloat(a[:]) }
func (a Fix128) Int() int          { return limbInt(a[:]) }

func (Fix128) FromInt(v int) Fix128 { var r Fix128; limbFromInt(r[:], v); return r }

func (Fix128) FromFloat64(v float64) Fix128 { var r Fix128; limbFromFloat(r[:], v); return r }

func (Fix128) Parse(s string) (Fix128, error) {
	var r Fix128
	err := fixParse(r[:], s, 128)
	return r, err
}

// Fix256 is a 256-bit fixed-point number.
type Fix256 [4]uint64

func (a Fix256) Add(b Fix256) Fix256 { var r Fix256; limbAdd(r[:], a[:], b[:]); return r }
func (a Fix256) Sub(b Fix256) Fix256 { var r Fix256; limbSub(r[:], a[:], b[:]); return r }
func (a Fix256) Neg() Fix256         { var r Fix256; limbNeg(r[:], a[:]); return r }

func (a Fix256) Mul(b Fix256) Fix256 {
	var r Fix256
	var wide [8]uint64
	fixMul(r[:], a[:], b[:], wide[:])
	return r
}

func (a Fix256) Sqr() Fix256 {
	var r Fix256
	var wide [8]uint64
	fixSqr(r[:], a[:], wide[:])
	return r
}

func (a Fix256) GE(d float64) bool { return a.Float64() >= d }
func (a Fix256) Float64() float64  { return limbToFloat(a[:]) }
func (a Fix256) Int() int          { return limbInt(a[:]) }

func (Fix256) FromInt(v int) Fix256 { var r Fix256; limbFromInt(r[:], v); return r }

func (Fix256) FromFloat64(v float64) Fix256 { var r Fix256; limbFromFloat(r[:], v); return r }

func (Fix256) Parse(s string) (Fix256, error) {
	var r Fix256
	err := fixParse(r[:], s, 256)
	return r, err
}

// Fix384 is a 384-bit fixed-point number.
type Fix384 [6]uint64

func (a Fix384) Add(b Fix384) Fix384 { var r Fix384; limbAdd(r[:], a[:], b[:]); return r }
func (a Fix384) Sub(b Fix384) Fix384 { var r Fix384; limbSub(r[:], a[:], b[:]); return r }
func (a Fix384) Neg() Fix384         { var r Fix384; limbNeg(r[:], a[:]); return r }

func (a Fix384) Mul(b Fix384) Fix384 {
	var r Fix384
	var wide [12]uint64
	fixMul(r[:], a[:], b[:], wide[:])
	return r
}

func (a Fix384) Sqr() Fix384 {
	var r Fix384
	var wide [12]uint64
	fixSqr(r[:], a[:], wide[:])
	return r
}

func (a Fix384) GE(d float64) bool { return a.Float64() >= d }
func (a Fix384) Float64() float64  { return limbToFloat(a[:]) }
func (a Fix384) Int() int          { return limbInt(a[:]) }

func (Fix384) FromInt(v int) Fix384 { var r Fix384; limbFromInt(r[:], v); return r }

func (Fix384) FromFloat64(v float64) Fix384 { var r Fix384; limbFromFloat(r[:], v); return r }

func (Fix384) Parse(s string) (Fix384, error) {
	var r Fix384
	err := fixParse(r[:], s, 384)
	return r, err
}

// Fix512 is a 512-bit fixed-point number.
type Fix512 [8]uint64

func (a Fix512) Add(b Fix512) Fix512 { var r Fix512; limbAdd(r[:], a[:], b[:]); return r }
func (a Fix512) Sub(b Fix512) Fix512 { var r Fix512; limbSub(r[:], a[:], b[:]); return r }
func (a Fix512) Neg() Fix512         { var r Fix512; limbNeg(r[:], a[:]); return r }

func (a Fix512) Mul(b Fix512) Fix512 {
	var r Fix512
	var wide [16]uint64
	fixMul(r[:], a[:], b[:], wide[:])
	return r
}

func (a Fix512) Sqr() Fix512 {
	var r Fix512
	var wide [16]uint64
	fixSqr(r[:], a[:], wide[:])
	return r
}

func (a Fix512) GE(d float64) bool { return a.Float64() >= d }
func (a Fix512) Float64() float64  { return limbToFloat(a[:]) }
func (a Fix512) Int() int          { return limbInt(a[:]) }

func (Fix512) FromInt(v int) Fix512 { var r Fix512; limbFromInt(r[:], v); return r }

func (Fix512) FromFloat64(v float64) Fix512 { var r Fix512; limbFromFloat(r[:], v); return r }

func (Fix512) Parse(s string) (Fix512, error) {
	var r Fix512
	err := fixParse(r[:], s, 512)
	return r, err
}

// Fix768 is a 768-bit fixed-point number.
type Fix768 [12]uint64

func (a Fix768) Add(b Fix768) Fix768 { var r Fix768; limbAdd(r[:], a[:], b[:]); return r }
func (a Fix768) Sub(b Fix768) Fix768 { var r Fix768; limbSub(r[:], a[:], b[:]); return r }
func (a Fix768) Neg() Fix768         { var r Fix768; limbNeg(r[:], a[:]); return r }

func (a Fix768) Mul(b Fix768) Fix768 {
	var r Fix768
	var wide [24]uint64
	fixMul(r[:], a[:], b[:], wide[:])
	return r
}

func (a Fix768) Sqr() Fix768 {
	var r Fix768
	var wide [24]uint64
	fixSqr(r[:], a[:], wide[:])
	return r
}

func (a Fix768) GE(d float64) bool { return a.Float64() >= d }
func (a Fix768) Float64() float64  { return limbToFloat(a[:]) }
func (a Fix768) Int() int          { return limbInt(a[:]) }

func (Fix768) FromInt(v int) Fix768 { var r Fix768; limbFromInt(r[:], v); return r }

func (Fix768) FromFloat64(v float64) Fix768 { var r Fix768; limbFromFloat(r[:], v); return r }

func (Fix768) Parse(s string) (Fix768, error) {
	var r Fix768
	err := fixParse(r[:], s, 768)
	return r, err
}

// Fix1024 is a 1024-bit fixed-point number.
type Fix1024 [16]uint64

func (a Fix1024) Add(b Fix1024) Fix1024 { var r Fix1024; limbAdd(r[:], a[:], b[:]); return r }
func (a Fix1024) Sub(b Fix1024) Fix1024 { var r Fix1024; limbSub(r[:], a[:], b[:]); return r }
func (a Fix1024) Neg() Fix1024          { var r Fix1024; limbNeg(r[:], a[:]); return r }

func (a Fix1024) Mul(b Fix1024) Fix1024 {
	var r Fix1024
	var wide [32]uint64
	fixMul(r[:], a[:], b[:], wide[:])
	return r
}

func (a Fix1024) Sqr() Fix1024 {
	var r Fix1024
	var wide [32]uint64
	fixSqr(r[:], a[:], wide[:])
	return r
}

func (a Fix1024) GE(d float64) bool { return a.Float64() >= d }
func (a Fix1024) Float64() float64  { return limbToFloat(a[:]) }
func (a Fix1024) Int() int          { return limbInt(a[:]) }

func (Fix1024) FromInt(v int) Fix1024 { var r Fix1024; limbFromInt(r[:], v); return r }

func (Fix1024) FromFloat64(v float64) Fix1024 { var r Fix1024; limbFromFloat(r[:], v); return r }

func (Fix1024) Parse(s string) (Fix1024, error) {
	var r Fix1024
	err := fixParse(r[:], s, 1024)
	return r, err
}
