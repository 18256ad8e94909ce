package render

import (
	"math"
	"sync"
	"sync/atomic"

	"github.com/marben/mandelzoom/calc"
	"github.com/marben/mandelzoom/palette"
)

// The eight neighbor offsets and their edge-threshold weights; diagonals
// are farther away and tolerate a larger difference.
var (
	aaOffsetX = [8]int{-1, 0, 1, -1, 1, -1, 0, 1}
	aaOffsetY = [8]int{-1, -1, -1, 0, 0, 1, 1, 1}
	aaWeight  = [8]float64{1.3, 1.0, 1.3, 1.0, 1.0, 1.3, 1.0, 1.3}
)

// aaStep is the sub-pixel sampling offset used on edge candidates.
const aaStep = 1.0 / 3.0

// antialias runs one pass over the color surface. Pass 0 first lays down
// the optimistic initial coloring. Returns whether any in-set cell was
// downgraded, which requires a further pass.
func (j *job[T]) antialias(pass int) bool {
	if pass == 0 {
		j.markBorders()
		j.colorInitial()
	}
	return j.refinePass()
}

// markBorders halves in-set border cells of the scalar surface so an
// all-infinity rectangle touching the image edge is no longer treated as
// uniformly in-set by the edge detector.
func (j *job[T]) markBorders() {
	s := j.scalar
	w, h := s.Width(), s.Height()
	half := func(x, y int) {
		if s.At(x, y) == calc.Infinity {
			s.Set(x, y, 0.5*calc.Infinity)
		}
	}
	for x := 0; x < w; x++ {
		half(x, 0)
		half(x, h-1)
	}
	for y := 1; y < h-1; y++ {
		half(0, y)
		half(w-1, y)
	}
}

// colorInitial colors every pixel from its sampled scalar value with
// status 0 ("pending").
func (j *job[T]) colorInitial() {
	s := j.scalar
	for y := 1; y < s.Height()-1; y++ {
		for x := 1; x < s.Width()-1; x++ {
			v := s.At(x, y)
			if v == calc.Infinity {
				j.out.Set(x-1, y-1, j.pal.InfinityColor(0))
			} else {
				j.out.Set(x-1, y-1, j.pal.Color(v/j.cfg.Period, 0))
			}
		}
	}
}

// refinePass fans the scalar rows out to workers. Each worker refines edge
// candidates in its rows and reports the in-set cells whose sub-pixel
// samples escaped; those are downgraded after the barrier so every row of
// a pass sees the same scalar snapshot, and the next pass sees all
// downgrades.
func (j *job[T]) refinePass() bool {
	s := j.scalar
	rows := make(chan int)

	var modified atomic.Bool
	var mu sync.Mutex
	var downgrades [][2]int

	var wg sync.WaitGroup
	for w := 0; w < j.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var local [][2]int
			for y := range rows {
				local = append(local, j.refineRow(y)...)
			}
			if len(local) > 0 {
				modified.Store(true)
				mu.Lock()
				downgrades = append(downgrades, local...)
				mu.Unlock()
			}
		}()
	}
	for y := 1; y < s.Height()-1; y++ {
		rows <- y
	}
	close(rows)
	wg.Wait()

	for _, d := range downgrades {
		s.Set(d[0], d[1], 0.5*calc.Infinity)
	}
	return modified.Load()
}

// refineRow scans one scalar row. Escaping pixels whose neighborhood is
// flat are finalized as-is, while flat in-set pixels stay pending; edge
// candidates are re-sampled at the eight +-1/3-pixel
// offsets and averaged with their existing color. Returns the in-set cells
// that turned out to escape.
func (j *job[T]) refineRow(y int) [][2]int {
	s, out := j.scalar, j.out
	var downgraded [][2]int
	var buf [9]palette.Color

	for x := 1; x < s.Width()-1; x++ {
		if out.At(x-1, y-1).Status > 0 {
			continue
		}

		v := s.At(x, y)
		edge := false
		for k := 0; k < 8; k++ {
			n := s.At(x+aaOffsetX[k], y+aaOffsetY[k])
			if math.Abs(v-n) >= j.cfg.Threshold*aaWeight[k] {
				edge = true
				break
			}
		}
		if !edge {
			if v < calc.Infinity {
				c := out.At(x-1, y-1)
				c.Status = 1
				out.Set(x-1, y-1, c)
			}
			continue
		}

		isInf := true
		for k := 0; k < 8; k++ {
			zx := (float64(x) - j.centerX + float64(aaOffsetX[k])*aaStep) * j.pw
			zy := (j.centerY - float64(y) - float64(aaOffsetY[k])*aaStep) * j.pw
			res := calc.Select(j.cfg.Mode, j.cx, j.cy, zx, zy, j.cfg.MaxIter)
			if res == calc.Infinity {
				buf[k] = j.pal.InfinityColor(1)
			} else {
				buf[k] = j.pal.Color(res/j.cfg.Period, 1)
				isInf = false
			}
		}
		buf[8] = out.At(x-1, y-1)
		out.Set(x-1, y-1, palette.Average(buf[:], 1))

		if v == calc.Infinity && !isInf {
			downgraded = append(downgraded, [2]int{x, y})
		}
	}
	return downgraded
}
