// Package preview serves an interactive render preview in the browser.
// Frames are pushed as PNG over a websocket; key events come back and
// adjust the view, so the classic zoom-and-explore loop works without any
// native window.
//
// The core never imports this package; it is a consumer of the render API
// like the PNG writer.
package preview

import (
	"bytes"
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"math"
	"math/big"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"golang.org/x/image/draw"

	mandelzoom "github.com/marben/mandelzoom"
	"github.com/marben/mandelzoom/calc"
	"github.com/marben/mandelzoom/pngout"
)

var powerf = float64(calc.Power)

//go:embed static
var static embed.FS

// DefaultAddr is used when no listen address is configured.
const DefaultAddr = "localhost:8343"

// centerPrec is the precision of the pan arithmetic, comfortably above the
// widest fixed-point scalar.
const centerPrec = 1088

// Serve renders p interactively on addr until the server fails or ctx is
// canceled. Every websocket connection gets its own copy of the view
// state, seeded from p.
func Serve(ctx context.Context, p mandelzoom.Params, addr string) error {
	if addr == "" {
		addr = DefaultAddr
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFileFS(w, r, static, "static/index.html")
	})
	mux.HandleFunc("/ws", wsHandler(p))

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	mandelzoom.Logger().Info("preview listening", "url", "http://"+addr+"/")
	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	select {
	case err := <-errc:
		return fmt.Errorf("%w: %v", mandelzoom.ErrIO, err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
		return ctx.Err()
	}
}

func wsHandler(p mandelzoom.Params) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			OriginPatterns: []string{"*"},
		})
		if err != nil {
			mandelzoom.Logger().Warn("websocket accept failed", "err", err)
			return
		}
		defer c.Close(websocket.StatusNormalClosure, "")

		s, err := newSession(p)
		if err != nil {
			mandelzoom.Logger().Warn("preview session rejected", "err", err)
			return
		}
		s.run(r.Context(), c)
	}
}

// event is one client message: a key press plus the mouse position
// relative to the image center, y pointing up. A "resize" event carries
// the display canvas size instead.
type event struct {
	Key string `json:"key"`
	MX  int    `json:"mx"`
	MY  int    `json:"my"`
}

// session is the view state of one connection, mirroring the knobs the
// original preview window binds to keys.
type session struct {
	params     mandelzoom.Params
	cx, cy     *big.Float
	pixelWidth float64
	locked     bool

	// display size requested by the client; frames are scaled to it when
	// it differs from the render size
	dispW, dispH int
}

func newSession(p mandelzoom.Params) (*session, error) {
	p.Multisample = 1
	cx, _, err := big.ParseFloat(p.CenterX, 10, centerPrec, big.ToNearestEven)
	if err != nil {
		return nil, fmt.Errorf("%w: center x %q", mandelzoom.ErrInvalidArgument, p.CenterX)
	}
	cy, _, err := big.ParseFloat(p.CenterY, 10, centerPrec, big.ToNearestEven)
	if err != nil {
		return nil, fmt.Errorf("%w: center y %q", mandelzoom.ErrInvalidArgument, p.CenterY)
	}
	cx.Add(cx, big.NewFloat(p.JuliaRadius*math.Cos(p.JuliaAngle)))
	cy.Add(cy, big.NewFloat(p.JuliaRadius*math.Sin(p.JuliaAngle)))
	p.JuliaRadius, p.JuliaAngle = 0, 0

	return &session{
		params:     p,
		cx:         cx,
		cy:         cy,
		pixelWidth: p.ViewWidth / float64(p.Width),
	}, nil
}

func (s *session) run(ctx context.Context, c *websocket.Conn) {
	for {
		frame, err := s.renderFrame()
		if err != nil {
			mandelzoom.Logger().Warn("preview render failed", "err", err)
			return
		}
		if err := c.Write(ctx, websocket.MessageBinary, frame); err != nil {
			return
		}

		_, data, err := c.Read(ctx)
		if err != nil {
			return
		}
		var ev event
		if err := json.Unmarshal(data, &ev); err != nil {
			continue
		}
		if !s.apply(ev) {
			return
		}
	}
}

// renderFrame renders the current state and encodes it as PNG, scaled to
// the client's display size when that differs from the render size.
func (s *session) renderFrame() ([]byte, error) {
	p := s.params
	digits := p.Bits/3 + 2
	p.CenterX = s.cx.Text('e', digits)
	p.CenterY = s.cy.Text('e', digits)
	p.ViewWidth = s.pixelWidth * float64(p.Width)

	surf, err := mandelzoom.Render(p)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if (s.dispW == 0 && s.dispH == 0) || (s.dispW == p.Width && s.dispH == p.Height) {
		if err := pngout.Encode(&buf, surf, 8, 1); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}

	img, err := pngout.Image(surf, 8, 1)
	if err != nil {
		return nil, err
	}
	dst := image.NewNRGBA(image.Rect(0, 0, s.dispW, s.dispH))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	if err := png.Encode(&buf, dst); err != nil {
		return nil, fmt.Errorf("%w: %v", mandelzoom.ErrEncoding, err)
	}
	return buf.Bytes(), nil
}

// zoomFactor maps the digit row to view-width multipliers.
var zoomFactor = map[string]float64{
	"1": 16, "2": 4, "3": 2, "4": math.Sqrt2, "5": 1,
	"6": 1 / math.Sqrt(math.Sqrt2), "7": 1 / math.Sqrt2, "8": 0.5, "9": 0.25, "0": 1.0 / 16,
}

// apply mutates the session for one key event and reports whether the
// session stays alive.
func (s *session) apply(ev event) bool {
	p := &s.params
	switch ev.Key {
	case "1", "2", "3", "4", "5", "6", "7", "8", "9", "0":
		mul := zoomFactor[ev.Key]
		if p.Mode == mandelzoom.ModeMandelbrot && mul <= 1 && !s.locked {
			// mouse coordinates arrive in display pixels
			sx, sy := 1.0, 1.0
			if s.dispW > 0 && s.dispH > 0 {
				sx = float64(p.Width) / float64(s.dispW)
				sy = float64(p.Height) / float64(s.dispH)
			}
			s.cx.Add(s.cx, big.NewFloat(float64(ev.MX)*sx*s.pixelWidth))
			s.cy.Add(s.cy, big.NewFloat(float64(ev.MY)*sy*s.pixelWidth))
		}
		s.pixelWidth *= mul
	case "a":
		if p.MaxIter > 8*1024*1024 {
			p.MaxIter = MaxPreviewIter
		} else {
			p.MaxIter *= 2
		}
	case "s":
		if p.MaxIter < 512 {
			p.MaxIter = 256
		} else {
			p.MaxIter /= 2
		}
	case "d":
		if p.Period > 8192 {
			p.Period = 16384
		} else {
			p.Period *= 2
		}
	case "f":
		if p.Period < 2 {
			p.Period = 1
		} else {
			p.Period *= 0.5
		}
	case "g":
		if p.Threshold > 4096 {
			p.Threshold = 8192
		} else {
			p.Threshold *= 2
		}
	case "h":
		if p.Threshold < 0.125 {
			p.Threshold = 0.06125
		} else {
			p.Threshold *= 0.5
		}
	case "m":
		s.switchMode(mandelzoom.ModeMandelbrot)
	case "k":
		s.switchMode(mandelzoom.ModeJuliaAtC)
	case "j":
		s.switchMode(mandelzoom.ModeJuliaAt0)
	case "n":
		s.switchMode(mandelzoom.ModeMandelbrotJulia)
	case "l":
		s.locked = !s.locked
	case "resize":
		if ev.MX > 0 && ev.MY > 0 && ev.MX <= 8192 && ev.MY <= 8192 {
			s.dispW, s.dispH = ev.MX, ev.MY
		}
	case "Escape":
		return false
	}
	return true
}

// MaxPreviewIter caps the iteration doubling key.
const MaxPreviewIter = 16 * 1024 * 1024

// switchMode changes the render mode. Crossing between the parameter-plane
// modes and the dynamic-plane modes warps the zoom level through the
// power map so the view stays at a comparable depth.
func (s *session) switchMode(next mandelzoom.Mode) {
	cur := s.params.Mode
	paramPlane := func(m mandelzoom.Mode) bool {
		return m == mandelzoom.ModeMandelbrot || m == mandelzoom.ModeJuliaAtC
	}
	quarter := 0.25 * float64(s.params.Width)
	if paramPlane(next) && !paramPlane(cur) {
		s.pixelWidth = math.Pow(s.pixelWidth*quarter, powerf) / quarter
	}
	if !paramPlane(next) && paramPlane(cur) {
		s.pixelWidth = math.Pow(s.pixelWidth*quarter, 1/powerf) / quarter
	}
	s.params.Mode = next
}
