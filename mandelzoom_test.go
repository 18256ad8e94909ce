package mandelzoom

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func smallParams() Params {
	p := DefaultParams()
	p.Width, p.Height = 16, 16
	p.MaxIter = 64
	p.Workers = 2
	return p
}

func TestRenderSmall(t *testing.T) {
	surf, err := Render(smallParams())
	if err != nil {
		t.Fatal(err)
	}
	if surf.Width() != 16 || surf.Height() != 16 {
		t.Fatalf("surface size = %dx%d", surf.Width(), surf.Height())
	}
	// center of the classic view is in-set: black under the default palette
	c := surf.At(7, 7)
	if c.R != 0 || c.G != 0 || c.B != 0 {
		t.Errorf("center pixel = %v, want infinity color", c)
	}
}

func TestRenderMultisample(t *testing.T) {
	p := smallParams()
	p.Multisample = 2
	surf, err := Render(p)
	if err != nil {
		t.Fatal(err)
	}
	if surf.Width() != 32 || surf.Height() != 32 {
		t.Fatalf("surface size = %dx%d, want 32x32", surf.Width(), surf.Height())
	}
}

// Every precision must run the same pipeline; the two cheapest fixed
// widths are enough to exercise the dispatch.
func TestRenderPrecisionDispatch(t *testing.T) {
	for _, bits := range []int{64, 80, 128, 256} {
		p := smallParams()
		p.Bits = bits
		if _, err := Render(p); err != nil {
			t.Errorf("bits %d: %v", bits, err)
		}
	}
}

func TestRenderJuliaOffset(t *testing.T) {
	p := smallParams()
	p.JuliaRadius = 0.7885
	p.JuliaAngle = 1.5
	p.Mode = ModeJuliaAt0
	if _, err := Render(p); err != nil {
		t.Fatal(err)
	}
}

func TestRenderBadParams(t *testing.T) {
	mutate := []func(*Params){
		func(p *Params) { p.Width = 8 },
		func(p *Params) { p.Height = 10000 },
		func(p *Params) { p.MaxIter = 4 },
		func(p *Params) { p.ViewWidth = 0 },
		func(p *Params) { p.Period = 0 },
		func(p *Params) { p.Threshold = -1 },
		func(p *Params) { p.Bits = 96 },
		func(p *Params) { p.Multisample = 4 },
		func(p *Params) { p.PhaseOffset = 2 },
		func(p *Params) { p.CenterX = "wat" },
		func(p *Params) { p.CenterY = "" },
	}
	for i, m := range mutate {
		p := smallParams()
		m(&p)
		if _, err := Render(p); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("case %d: got %v, want ErrInvalidArgument", i, err)
		}
	}
}

func TestRenderPaletteErrors(t *testing.T) {
	p := smallParams()
	p.PaletteFile = filepath.Join(t.TempDir(), "missing.pal")
	if _, err := Render(p); !errors.Is(err, ErrIO) {
		t.Errorf("missing palette: got %v, want ErrIO", err)
	}

	bad := filepath.Join(t.TempDir(), "bad.pal")
	if err := os.WriteFile(bad, []byte("0 0 0 1 2 0 0"), 0o644); err != nil {
		t.Fatal(err)
	}
	p.PaletteFile = bad
	if _, err := Render(p); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("bad palette: got %v, want ErrInvalidArgument", err)
	}
}

func TestRegions(t *testing.T) {
	p := DefaultParams()
	SpiralMinibrot.Apply(&p)
	if p.CenterX != "-0.74275" || p.ViewWidth != 0.0015 {
		t.Errorf("region not applied: %+v", p)
	}
	if err := p.Validate(); err != nil {
		t.Errorf("region params invalid: %v", err)
	}
}

func TestParseModeNames(t *testing.T) {
	m, err := ParseMode("mandelbrot-julia")
	if err != nil || m != ModeMandelbrotJulia {
		t.Fatalf("ParseMode = %v, %v", m, err)
	}
	if _, err := ParseMode("x"); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("got %v, want ErrInvalidArgument", err)
	}
}
