package palette

import (
	"bytes"
	_ "embed"
)

// The compiled-in palette: a 256-stop blue-to-gold ramp with a black
// infinity color, in the same text format Load accepts.
//
//go:embed default.pal
var defaultPal []byte

// Default returns the compiled-in palette with the given phase offset.
func Default(offset float64) *Palette {
	p, err := Load(bytes.NewReader(defaultPal), offset)
	if err != nil {
		panic("palette: embedded default: " + err.Error())
	}
	return p
}
