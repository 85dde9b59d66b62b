// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"errors"
	"log/slog"

	"github.com/Lattexshz/Bly/geom"
	"github.com/Lattexshz/Bly/handle"
	"github.com/Lattexshz/Bly/internal/backend"
	"github.com/Lattexshz/Bly/internal/logger"
	"github.com/Lattexshz/Bly/paint"
)

// ErrNotImplemented is wrapped by the panic values of primitives the
// selected backend does not support.
var ErrNotImplemented = backend.ErrNotImplemented

var (
	errReleased    = errors.New("app: use of released Canvas")
	errReentrant   = errors.New("app: Draw called during Draw")
	errPainterDone = errors.New("app: use of Painter after Draw returned")
)

// Canvas draws into a native window.
type Canvas struct {
	b       backend.Backend
	drawing bool
}

// Painter issues the drawing commands of a single frame. It is only
// valid during the call to Draw it was passed to.
type Painter struct {
	b backend.Backend
}

// NewCanvas creates the canvas of the process for w. It panics with
// ErrCanvasExists if a canvas was already created.
func NewCanvas(w handle.Window) (*Canvas, error) {
	return processGuard.NewCanvas(w)
}

// SetLogger replaces the logger of the package. A nil logger disables
// logging.
func SetLogger(l *slog.Logger) {
	logger.Set(l)
}

func newCanvas(b backend.Backend) *Canvas {
	return &Canvas{b: b}
}

// Draw draws a frame. The surface is prepared, f is called to issue
// the drawing commands and the frame is presented. If the surface
// could not be prepared, f is not called.
func (c *Canvas) Draw(f func(p *Painter)) error {
	if c.b == nil {
		panic(errReleased)
	}
	if c.drawing {
		panic(errReentrant)
	}
	if err := c.b.BeginDraw(); err != nil {
		return err
	}
	c.drawing = true
	p := &Painter{b: c.b}
	flushed := false
	defer func() {
		p.b = nil
		c.drawing = false
		if !flushed {
			// f panicked; close the frame anyway.
			if err := c.b.Flush(); err != nil {
				logger.Get().Warn("app: flush after panic", "err", err)
			}
		}
	}()
	logger.Get().Debug("app: frame", "backend", c.b.Name())
	f(p)
	flushed = true
	return c.b.Flush()
}

// Clear draws a frame filled with the color c.
func (c *Canvas) Clear(col paint.Color) error {
	return c.Draw(func(p *Painter) {
		p.Clear(col)
	})
}

// Size returns the current size of the window surface in pixels.
func (c *Canvas) Size() (width, height uint32) {
	if c.b == nil {
		panic(errReleased)
	}
	return c.b.DisplaySize()
}

// Release frees the native resources of the canvas. Calling Release
// more than once is a no-op.
func (c *Canvas) Release() {
	if c.b == nil {
		return
	}
	if c.drawing {
		panic(errReentrant)
	}
	c.b.Release()
	c.b = nil
}

func (p *Painter) active() backend.Backend {
	if p.b == nil {
		panic(errPainterDone)
	}
	return p.b
}

// Size returns the size of the frame in pixels.
func (p *Painter) Size() (width, height uint32) {
	return p.active().DisplaySize()
}

// Clear fills the frame. A gradient clears to its first stop.
func (p *Painter) Clear(c paint.Color) {
	p.active().Clear(c)
}

// Ellipse fills the circle of radius r whose bounding square has its
// top left corner at pt.
func (p *Painter) Ellipse(pt geom.Point2[float32], r float32, c paint.Color) {
	p.active().Ellipse(pt, r, c)
}

// Rectangle fills the rectangle with its top left corner at pt and the
// given width and height.
func (p *Painter) Rectangle(pt, size geom.Point2[float32], c paint.Color) {
	p.active().Rectangle(pt, size, c)
}

// RoundedRectangle is like Rectangle with corners of radius r.
func (p *Painter) RoundedRectangle(pt, size geom.Point2[float32], r float32, c paint.Color) {
	p.active().RoundedRectangle(pt, size, r, c)
}

// Line strokes the line from p1 to p2.
func (p *Painter) Line(p1, p2 geom.Point2[float32], width float32, c paint.Color) {
	p.active().Line(p1, p2, width, c)
}
