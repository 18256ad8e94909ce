package main

import (
	"fmt"
	"strconv"

	mandelzoom "github.com/marben/mandelzoom"
)

// options is the fully parsed command line.
type options struct {
	params  mandelzoom.Params
	output  string
	pngBits int
}

// parseArgs reads "-x value" flag pairs. Every flag is a single letter and
// takes exactly one value, so the argument count must be even. Flags are
// applied in order: -r and -a switch the mode from mandelbrot to
// julia-at-0, so a julia mode chosen by an earlier -j is kept.
func parseArgs(args []string) (options, error) {
	opts := options{
		params:  mandelzoom.DefaultParams(),
		pngBits: 8,
	}
	p := &opts.params

	if len(args)%2 != 0 {
		return opts, fmt.Errorf("%w: every flag takes exactly one value", mandelzoom.ErrInvalidArgument)
	}

	for k := 0; k < len(args); k += 2 {
		flag, val := args[k], args[k+1]
		if len(flag) != 2 || flag[0] != '-' {
			return opts, fmt.Errorf("%w: unknown flag %q", mandelzoom.ErrInvalidArgument, flag)
		}

		var err error
		switch flag[1] {
		case 'w':
			p.Width, err = parseInt(val, 16, 8192)
		case 'h':
			p.Height, err = parseInt(val, 16, 8192)
		case 'i':
			p.MaxIter, err = parseInt(val, 16, mandelzoom.MaxIterations)
		case 'v':
			p.ViewWidth, err = parseFloat(val, 1e-100, 10000)
		case 'x':
			p.CenterX = val
		case 'y':
			p.CenterY = val
		case 'p':
			p.Period, err = parseFloat(val, 1, 65536)
		case 't':
			p.Threshold, err = parseFloat(val, 0, 1e100)
		case 'r':
			p.JuliaRadius, err = parseFloat(val, -10000, 10000)
			if p.Mode == mandelzoom.ModeMandelbrot {
				p.Mode = mandelzoom.ModeJuliaAt0
			}
		case 'a':
			p.JuliaAngle, err = parseFloat(val, -10000, 10000)
			if p.Mode == mandelzoom.ModeMandelbrot {
				p.Mode = mandelzoom.ModeJuliaAt0
			}
		case 'o':
			opts.output = val
		case 'q':
			p.Bits, err = parseChoice(val, 64, 80, 128, 256, 384, 512, 768, 1024)
		case 'b':
			opts.pngBits, err = parseChoice(val, 8, 16)
		case 'm':
			p.Multisample, err = parseInt(val, 1, 3)
		case 'c':
			p.PaletteFile = val
		case 'C':
			p.PhaseOffset, err = parseFloat(val, 0, 1)
		case 'j':
			p.Mode, err = mandelzoom.ParseMode(val)
		default:
			return opts, fmt.Errorf("%w: unknown flag %q", mandelzoom.ErrInvalidArgument, flag)
		}
		if err != nil {
			return opts, fmt.Errorf("flag %s: %w", flag, err)
		}
	}

	if opts.output == "" {
		return opts, fmt.Errorf("%w: no output file specified", mandelzoom.ErrInvalidArgument)
	}
	return opts, nil
}

func parseInt(s string, min, max int) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", mandelzoom.ErrInvalidArgument, s)
	}
	if v < min || v > max {
		return 0, fmt.Errorf("%w: %d out of range [%d, %d]", mandelzoom.ErrInvalidArgument, v, min, max)
	}
	return v, nil
}

func parseFloat(s string, min, max float64) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", mandelzoom.ErrInvalidArgument, s)
	}
	if v < min || v > max {
		return 0, fmt.Errorf("%w: %g out of range [%g, %g]", mandelzoom.ErrInvalidArgument, v, min, max)
	}
	return v, nil
}

func parseChoice(s string, choices ...int) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", mandelzoom.ErrInvalidArgument, s)
	}
	for _, c := range choices {
		if v == c {
			return v, nil
		}
	}
	return 0, fmt.Errorf("%w: %d is not one of %v", mandelzoom.ErrInvalidArgument, v, choices)
}
