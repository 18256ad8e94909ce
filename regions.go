package mandelzoom

// Region is a named view of the complex plane: a center given as decimal
// literals plus the width of the visible window. Centers are strings so a
// region survives re-parsing at any precision.
type Region struct {
	X, Y string
	View float64
}

// Apply sets the region as the view of p.
func (r Region) Apply(p *Params) {
	p.CenterX = r.X
	p.CenterY = r.Y
	p.ViewWidth = r.View
}

// Classic landmarks in the Mandelbrot set.
var (
	// Seahorse Valley, dense filaments and repeating seahorse curls
	SeahorseValley = Region{X: "-0.75", Y: "0.1", View: 0.1}

	// Elephant Valley, large bulb with trunk-like tendrils
	ElephantValley = Region{X: "-1.8", Y: "-0.06", View: 0.1}

	// Spiral Minibrot, small Mandelbrot copy with tight spiral arms
	SpiralMinibrot = Region{X: "-0.74275", Y: "0.13175", View: 0.0015}

	// Triple Spiral, threefold symmetric spiral structure
	TripleSpiral = Region{X: "-0.7465", Y: "0.0965", View: 0.003}

	// Valley of the Dragon, deep and highly detailed spiral filaments
	ValleyOfTheDragon = Region{X: "-0.7375", Y: "0.1825", View: 0.005}

	// Minibrot in a Mini-Spiral, self-similar copy inside a spiral arm
	MinibrotInMiniSpiral = Region{X: "-1.73825", Y: "-0.02275", View: 0.0015}
)
