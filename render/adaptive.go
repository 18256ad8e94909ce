package render

import (
	"sync"

	"github.com/marben/mandelzoom/calc"
)

// sample fills the scalar surface with smooth iteration counts: every
// border cell directly, then recursive midpoint subdivision of the
// interior.
func (j *job[T]) sample() {
	s := j.scalar
	w, h := s.Width(), s.Height()

	for x := 0; x < w; x++ {
		s.Set(x, 0, j.point(float64(x), 0))
		s.Set(x, h-1, j.point(float64(x), float64(h-1)))
	}
	for y := 1; y < h-1; y++ {
		s.Set(0, y, j.point(0, float64(y)))
		s.Set(w-1, y, j.point(float64(w-1), float64(y)))
	}

	j.refine(0, w-1, 0, h-1, splitDepth(j.workers))
}

// refine subdivides the inclusive rectangle [l..r]x[t..b], whose border
// cells are already computed.
//
// When every border cell is in-set the interior is filled with the
// sentinel without evaluating the kernel: a region fenced by in-set
// samples is very likely in-set itself, and each skipped evaluation costs
// O(maxIter). The antialias passes reclassify any boundary this shortcut
// gets wrong. A thin filament crossing the interior without touching any
// border cell is lost; that risk is accepted.
func (j *job[T]) refine(l, r, t, b, depth int) {
	w := r - l + 1
	h := b - t + 1
	if w <= 2 || h <= 2 {
		return
	}
	s := j.scalar

	allInf := true
	for x := l; allInf && x <= r; x++ {
		if s.At(x, t) < calc.Infinity || s.At(x, b) < calc.Infinity {
			allInf = false
		}
	}
	for y := t + 1; allInf && y <= b-1; y++ {
		if s.At(l, y) < calc.Infinity || s.At(r, y) < calc.Infinity {
			allInf = false
		}
	}
	if allInf {
		for y := t + 1; y <= b-1; y++ {
			for x := l + 1; x <= r-1; x++ {
				s.Set(x, y, calc.Infinity)
			}
		}
		return
	}

	if w <= h {
		my := (t + b) / 2
		for x := l + 1; x <= r-1; x++ {
			s.Set(x, my, j.point(float64(x), float64(my)))
		}
		j.branch(depth,
			func(d int) { j.refine(l, r, t, my, d) },
			func(d int) { j.refine(l, r, my, b, d) })
	} else {
		mx := (l + r) / 2
		for y := t + 1; y <= b-1; y++ {
			s.Set(mx, y, j.point(float64(mx), float64(y)))
		}
		j.branch(depth,
			func(d int) { j.refine(l, mx, t, b, d) },
			func(d int) { j.refine(mx, r, t, b, d) })
	}
}

// branch runs the two halves of a split, on separate goroutines until the
// fork depth is exhausted. The halves share only the just-computed split
// line and their borders, which are read-only to both, so every cell keeps
// a single writer.
func (j *job[T]) branch(depth int, a, b func(int)) {
	if depth <= 0 {
		a(0)
		b(0)
		return
	}
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		a(depth - 1)
	}()
	b(depth - 1)
	wg.Wait()
}

// splitDepth returns how many recursion levels may fork so the fan-out
// roughly matches the worker count.
func splitDepth(workers int) int {
	d := 0
	for 1<<d < workers {
		d++
	}
	return d
}
