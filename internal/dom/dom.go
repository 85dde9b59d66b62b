// SPDX-License-Identifier: Unlicense OR MIT

/*
Package dom implements a drawing backend on the 2D context of an HTML
canvas element.

The canvas is sized to the inner size of the browser window and follows
it. Rectangle forwards both points unchanged to fillRect, whose last two
arguments are the width and height. Ellipse and RoundedRectangle are not
supported and panic with backend.ErrNotImplemented.
*/
package dom

import (
	"errors"
	"fmt"
	"math"

	"github.com/Lattexshz/Bly/geom"
	"github.com/Lattexshz/Bly/internal/backend"
	"github.com/Lattexshz/Bly/internal/logger"
	"github.com/Lattexshz/Bly/paint"
)

// CanvasID is the id of the canvas element used when the handle names
// no element.
const CanvasID = "bly_canvas"

// value is a JavaScript value.
type value interface {
	Get(name string) value
	Set(name string, v any)
	Call(name string, args ...any) value
	Float() float64
	Truthy() bool
}

// Backend draws into a canvas element through its 2D context.
type Backend struct {
	window value
	canvas value
	ctx    value

	width, height int
	// fill is the CSS color last assigned to fillStyle, or empty if
	// fillStyle holds a gradient.
	fill string
	// drawing is set between BeginDraw and Flush. Resizing the canvas
	// clears it, so the size is not updated while drawing is set.
	drawing bool
}

var _ backend.Backend = (*Backend)(nil)

func newBackend(window value, id uint32) (*Backend, error) {
	doc := window.Get("document")
	if !doc.Truthy() {
		return nil, errors.New("dom: no document")
	}
	cnv := findCanvas(doc, id)
	ctx := cnv.Call("getContext", "2d")
	if !ctx.Truthy() {
		return nil, errors.New("dom: 2d context unavailable")
	}
	b := &Backend{window: window, canvas: cnv, ctx: ctx}
	b.updateSize()
	return b, nil
}

// findCanvas returns the canvas tagged with the raw handle id, or the
// default canvas, creating it if missing.
func findCanvas(doc value, id uint32) value {
	if id != 0 {
		cnv := doc.Call("querySelector", fmt.Sprintf(`canvas[data-raw-handle="%d"]`, id))
		if cnv.Truthy() {
			return cnv
		}
	}
	cnv := doc.Call("getElementById", CanvasID)
	if cnv.Truthy() {
		return cnv
	}
	cnv = doc.Call("createElement", "canvas")
	cnv.Set("id", CanvasID)
	doc.Get("body").Call("appendChild", cnv)
	return cnv
}

// updateSize resizes the canvas if the window's inner size changed.
func (b *Backend) updateSize() {
	w := int(b.window.Get("innerWidth").Float())
	h := int(b.window.Get("innerHeight").Float())
	if w == b.width && h == b.height {
		return
	}
	b.width, b.height = w, h
	b.canvas.Set("width", w)
	b.canvas.Set("height", h)
	b.canvas.Get("style").Set("cssText", fmt.Sprintf("width: %dpx; height: %dpx;", w, h))
	// Resizing resets the context state.
	b.fill = ""
	logger.Get().Debug("dom: canvas resized", "width", w, "height", h)
}

func (b *Backend) Name() string { return "dom" }

func (b *Backend) BeginDraw() error {
	b.updateSize()
	b.ctx.Call("beginPath")
	b.drawing = true
	return nil
}

func (b *Backend) Flush() error {
	b.drawing = false
	b.ctx.Call("fill")
	return nil
}

func (b *Backend) DisplaySize() (uint32, uint32) {
	if !b.drawing {
		b.updateSize()
	}
	return uint32(b.width), uint32(b.height)
}

func (b *Backend) Clear(c paint.Color) {
	b.setFill(paint.Solid(c))
	b.ctx.Call("fillRect", 0, 0, b.width, b.height)
}

func (b *Backend) Rectangle(p1, p2 geom.Point2[float32], c paint.Color) {
	b.setPaint(c)
	b.ctx.Call("fillRect", p1.X, p1.Y, p2.X, p2.Y)
}

func (b *Backend) Line(p1, p2 geom.Point2[float32], width float32, c paint.Color) {
	b.ctx.Set("strokeStyle", b.style(c))
	b.ctx.Set("lineWidth", width)
	b.ctx.Call("beginPath")
	b.ctx.Call("moveTo", p1.X, p1.Y)
	b.ctx.Call("lineTo", p2.X, p2.Y)
	b.ctx.Call("stroke")
}

func (b *Backend) Ellipse(geom.Point2[float32], float32, paint.Color) {
	backend.NotImplemented("dom", "ellipse")
}

func (b *Backend) RoundedRectangle(_, _ geom.Point2[float32], _ float32, _ paint.Color) {
	backend.NotImplemented("dom", "rounded rectangle")
}

func (b *Backend) Release() {
	b.ctx = nil
	b.canvas = nil
	b.window = nil
}

func (b *Backend) setPaint(c paint.Color) {
	if g, ok := c.(paint.Gradient); ok {
		if grad := b.gradient(g); grad != nil {
			b.ctx.Set("fillStyle", grad)
			b.fill = ""
			return
		}
	}
	b.setFill(paint.Solid(c))
}

func (b *Backend) setFill(c paint.RGBA) {
	css := cssColor(c)
	if css == b.fill {
		return
	}
	b.ctx.Set("fillStyle", css)
	b.fill = css
}

// style returns a value for strokeStyle or fillStyle.
func (b *Backend) style(c paint.Color) any {
	if g, ok := c.(paint.Gradient); ok {
		if grad := b.gradient(g); grad != nil {
			return grad
		}
	}
	return cssColor(paint.Solid(c))
}

// gradient creates a CanvasGradient for g, or returns nil if g has
// no stops.
func (b *Backend) gradient(g paint.Gradient) value {
	l, ok := g.Kind.(paint.Linear)
	if !ok {
		return nil
	}
	stops := g.Resolve()
	if len(stops) == 0 {
		return nil
	}
	grad := b.ctx.Call("createLinearGradient", l.From.X, l.From.Y, l.To.X, l.To.Y)
	for _, s := range stops {
		grad.Call("addColorStop", s.Offset, cssColor(s.Color))
	}
	return grad
}

// cssColor formats c as a CSS rgba() color, clamping the channels.
func cssColor(c paint.RGBA) string {
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", byteChannel(c.R), byteChannel(c.G), byteChannel(c.B), alpha(c.A))
}

func byteChannel(v float32) int {
	return int(math.Round(float64(clamp01(v)) * 255))
}

func alpha(v float32) string {
	return fmt.Sprintf("%g", math.Round(float64(clamp01(v))*1000)/1000)
}

func clamp01(v float32) float32 {
	switch {
	case !(v > 0):
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
