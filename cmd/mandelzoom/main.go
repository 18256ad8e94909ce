// Command mandelzoom renders Mandelbrot and Julia set images to PNG, or
// serves an interactive preview in the browser when -o preview is given.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	mandelzoom "github.com/marben/mandelzoom"
	"github.com/marben/mandelzoom/pngout"
	"github.com/marben/mandelzoom/preview"
)

func usage(w io.Writer) {
	fmt.Fprint(w, `Mandelbrot and Julia set renderer
Usage:
  mandelzoom [OPTIONS...]
OPTIONS:
  -o output.png/preview
  -w width
  -h height
  -i iterations
  -v view width
  -x center x
  -y center y
  -p color period
  -t antialias threshold
  -m global multisample antialias (1..3)
  -r radius of julia parameter (also switches to julia-at-0)
  -a angle of julia parameter (also switches to julia-at-0)
  -q computation bits (64, 80, 128, 256, 384, 512, 768, 1024)
  -b png bits (8, 16)
  -c palette file
  -C palette phase offset (0..1)
  -j julia mode (julia-at-c, julia-at-0, mandelbrot-julia)
`)
}

func main() {
	if os.Getenv("MANDELZOOM_DEBUG") != "" {
		mandelzoom.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if err := run(os.Args[1:]); err != nil {
		usage(os.Stderr)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	opts, err := parseArgs(args)
	if err != nil {
		return err
	}

	if opts.output == "preview" {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		err := preview.Serve(ctx, opts.params, os.Getenv("MANDELZOOM_ADDR"))
		if ctx.Err() != nil {
			return nil
		}
		return err
	}

	start := time.Now()
	surf, err := mandelzoom.Render(opts.params)
	if err != nil {
		return err
	}
	report(os.Stderr, opts.params, time.Since(start))

	return pngout.WriteFile(opts.output, surf, opts.pngBits, opts.params.Multisample)
}

// report echoes the effective parameters of a file render. The preview
// does not call it.
func report(w io.Writer, p mandelzoom.Params, took time.Duration) {
	fmt.Fprintf(w, "type = %s\n", p.Mode)
	fmt.Fprintf(w, "x    = %s\n", p.CenterX)
	fmt.Fprintf(w, "y    = %s\n", p.CenterY)
	fmt.Fprintf(w, "w    = %d\n", p.Width)
	fmt.Fprintf(w, "h    = %d\n", p.Height)
	fmt.Fprintf(w, "v    = %.13e\n", p.ViewWidth)
	fmt.Fprintf(w, "t    = %.6f\n", p.Threshold)
	fmt.Fprintf(w, "p    = %.6f\n", p.Period)
	fmt.Fprintf(w, "i    = %d\n", p.MaxIter)
	fmt.Fprintf(w, "rendered in %.3f seconds\n", took.Seconds())
}
