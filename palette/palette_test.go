package palette

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func testStops() []Color {
	return []Color{
		{R: 0, G: 0.1, B: 0.5},
		{R: 0.3, G: 0.9, B: 0.2},
		{R: 1, G: 0.4, B: 0},
		{R: 0.6, G: 0.6, B: 0.8},
	}
}

func newTestPalette(t *testing.T, offset float64) *Palette {
	t.Helper()
	p, err := New(testStops(), Color{R: 0.5, G: 0.5, B: 0.5}, offset)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestPeriodicity(t *testing.T) {
	for _, p := range []*Palette{newTestPalette(t, 0), newTestPalette(t, 0.37), Default(0), Default(0.5)} {
		for x := -2.0; x < 2.0; x += 0.0137 {
			a := p.Color(x, 0)
			b := p.Color(x+1, 0)
			if abs32(a.R-b.R) > 1e-6 || abs32(a.G-b.G) > 1e-6 || abs32(a.B-b.B) > 1e-6 {
				t.Fatalf("palette not periodic at %g: %v vs %v", x, a, b)
			}
		}
	}
}

// The shape-preserving tangents keep every Hermite segment inside the hull
// of its endpoints, so channels stay in [0, 1] (up to float32 noise).
func TestRange(t *testing.T) {
	for _, p := range []*Palette{newTestPalette(t, 0), newTestPalette(t, 0.8), Default(0.25)} {
		for x := 0.0; x < 1.0; x += 0.0003 {
			c := p.Color(x, 0)
			for _, v := range []float32{c.R, c.G, c.B} {
				if v < -1e-6 || v > 1+1e-6 {
					t.Fatalf("channel %g out of range at x=%g", v, x)
				}
			}
		}
	}
}

// The spline must pass through the control colors.
func TestInterpolatesStops(t *testing.T) {
	p := newTestPalette(t, 0)
	stops := testStops()
	for k, want := range stops {
		x := float64(k) / float64(len(stops))
		c := p.Color(x, 0)
		if abs32(c.R-want.R) > 1e-6 || abs32(c.G-want.G) > 1e-6 || abs32(c.B-want.B) > 1e-6 {
			t.Errorf("stop %d: got %v, want %v", k, c, want)
		}
	}
}

func TestSingleStopIsConstant(t *testing.T) {
	p, err := New([]Color{{R: 1, G: 1, B: 1}}, Color{R: 1, G: 1, B: 1}, 0)
	if err != nil {
		t.Fatal(err)
	}
	for x := 0.0; x < 1.0; x += 0.01 {
		c := p.Color(x, 0)
		if c.R != 1 || c.G != 1 || c.B != 1 {
			t.Fatalf("single-stop palette not constant at %g: %v", x, c)
		}
	}
}

func TestStatusChannel(t *testing.T) {
	p := newTestPalette(t, 0)
	if got := p.Color(0.3, 0).Status; got != 0 {
		t.Errorf("status = %g, want 0", got)
	}
	if got := p.Color(0.3, 1).Status; got != 1 {
		t.Errorf("status = %g, want 1", got)
	}
	inf := p.InfinityColor(1)
	if inf.R != 0.5 || inf.Status != 1 {
		t.Errorf("infinity color = %v", inf)
	}
}

func TestAverage(t *testing.T) {
	got := Average([]Color{
		{R: 1, G: 0, B: 0.5},
		{R: 0, G: 1, B: 0.5},
	}, 1)
	if got.R != 0.5 || got.G != 0.5 || got.B != 0.5 || got.Status != 1 {
		t.Errorf("Average = %v", got)
	}
}

func TestDefaultPalette(t *testing.T) {
	p := Default(0)
	if p.Stops() != 256 {
		t.Fatalf("default palette has %d stops", p.Stops())
	}
	inf := p.InfinityColor(0)
	if inf.R != 0 || inf.G != 0 || inf.B != 0 {
		t.Errorf("default infinity color = %v, want black", inf)
	}
	// first control color of the compiled-in ramp
	c := p.Color(0, 0)
	if math.Abs(float64(c.B)-0.392157) > 1e-5 {
		t.Errorf("first stop blue = %g", c.B)
	}
}

func TestLoad(t *testing.T) {
	good := "0 0 0\n2\n1 0 0\n0 0 1\n"
	p, err := Load(strings.NewReader(good), 0)
	if err != nil {
		t.Fatal(err)
	}
	if p.Stops() != 2 {
		t.Errorf("stops = %d", p.Stops())
	}

	cases := []struct {
		name, in string
	}{
		{"empty", ""},
		{"truncated infinity", "0 0"},
		{"missing count", "0 0 0"},
		{"bad count", "0 0 0 x"},
		{"zero count", "0 0 0 0"},
		{"huge count", "0 0 0 65537 0 0 0"},
		{"truncated stops", "0 0 0 2 1 0 0"},
		{"channel above one", "0 0 0 1 1.5 0 0"},
		{"negative channel", "0 0 0 1 -0.25 0 0"},
		{"bad infinity", "2 0 0 1 0 0 0"},
		{"trailing content", "0 0 0 1 0 0 0 junk"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := Load(strings.NewReader(c.in), 0); !errors.Is(err, ErrInvalidPalette) {
				t.Errorf("got %v, want ErrInvalidPalette", err)
			}
		})
	}
}
