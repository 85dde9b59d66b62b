// SPDX-License-Identifier: Unlicense OR MIT

/*
Package d2d implements a drawing backend on a Direct2D window render
target.

The render target is recreated whenever the client area of the window
changes size. Brushes live for a single drawing call. Rectangle and
RoundedRectangle interpret their second point as the width and height
of the shape.
*/
package d2d

import (
	"fmt"

	"github.com/Lattexshz/Bly/geom"
	"github.com/Lattexshz/Bly/internal/backend"
	"github.com/Lattexshz/Bly/internal/logger"
	"github.com/Lattexshz/Bly/paint"
)

// HRESULT is a failed COM result code.
type HRESULT uint32

// errRecreateTarget is returned by EndDraw when the device was lost.
const errRecreateTarget HRESULT = 0x8899000C

func (h HRESULT) Error() string {
	return fmt.Sprintf("d2d: HRESULT 0x%08x", uint32(h))
}

// factory creates device independent resources.
type factory interface {
	CreateRenderTarget(hwnd uintptr, width, height uint32) (renderTarget, error)
	// CreateLineStyle creates the stroke style of lines: a round start
	// cap and a triangle end cap.
	CreateLineStyle() (resource, error)
	Release()
}

// renderTarget is an ID2D1HwndRenderTarget.
type renderTarget interface {
	BeginDraw()
	EndDraw() error
	Clear(c paint.RGBA)
	CreateSolidBrush(c paint.RGBA) (resource, error)
	CreateLinearBrush(from, to geom.Point2[float32], stops []paint.Stop) (resource, error)
	FillRectangle(r geom.Rect[float32], b resource)
	FillRoundedRectangle(r geom.Rect[float32], radius float32, b resource)
	FillEllipse(center geom.Point2[float32], rx, ry float32, b resource)
	DrawLine(p1, p2 geom.Point2[float32], b resource, width float32, style resource)
	Release()
}

// resource is a brush or a stroke style.
type resource interface {
	Release()
}

// Backend draws into the render target of a window.
type Backend struct {
	f          factory
	hwnd       uintptr
	clientSize func(hwnd uintptr) (uint32, uint32, error)

	target        renderTarget
	lineStyle     resource
	width, height uint32
	// drawing is set between BeginDraw and Flush. The target is never
	// replaced while it is set.
	drawing bool
}

var _ backend.Backend = (*Backend)(nil)

// newBackend takes ownership of f. It is released if construction fails.
func newBackend(f factory, hwnd uintptr, clientSize func(uintptr) (uint32, uint32, error)) (*Backend, error) {
	style, err := f.CreateLineStyle()
	if err != nil {
		f.Release()
		return nil, err
	}
	b := &Backend{
		f:          f,
		hwnd:       hwnd,
		clientSize: clientSize,
		lineStyle:  style,
	}
	if err := b.updateTarget(); err != nil {
		style.Release()
		f.Release()
		return nil, err
	}
	return b, nil
}

func (b *Backend) Name() string { return "d2d" }

// updateTarget recreates the render target if the client area changed
// size.
func (b *Backend) updateTarget() error {
	w, h, err := b.clientSize(b.hwnd)
	if err != nil {
		return err
	}
	if b.target != nil && w == b.width && h == b.height {
		return nil
	}
	if b.target != nil {
		b.target.Release()
		b.target = nil
	}
	t, err := b.f.CreateRenderTarget(b.hwnd, w, h)
	if err != nil {
		return err
	}
	b.target = t
	b.width, b.height = w, h
	logger.Get().Debug("d2d: render target created", "width", w, "height", h)
	return nil
}

func (b *Backend) BeginDraw() error {
	if err := b.updateTarget(); err != nil {
		return err
	}
	b.target.BeginDraw()
	b.drawing = true
	return nil
}

func (b *Backend) Flush() error {
	b.drawing = false
	err := b.target.EndDraw()
	if err == errRecreateTarget {
		logger.Get().Info("d2d: render target lost")
		b.target.Release()
		b.target = nil
		return nil
	}
	return err
}

// DisplaySize returns the client area size. Inside a frame it returns
// the size of the target being drawn; a resize is picked up by the next
// BeginDraw.
func (b *Backend) DisplaySize() (uint32, uint32) {
	if b.drawing {
		return b.width, b.height
	}
	if err := b.updateTarget(); err != nil {
		logger.Get().Warn("d2d: update render target", "err", err)
	}
	return b.width, b.height
}

func (b *Backend) Clear(c paint.Color) {
	b.target.Clear(paint.Solid(c))
}

func (b *Backend) Rectangle(p, extent geom.Point2[float32], c paint.Color) {
	b.withBrush(c, func(br resource) {
		b.target.FillRectangle(geom.Extent(p, extent).Canon(), br)
	})
}

func (b *Backend) RoundedRectangle(p, extent geom.Point2[float32], radius float32, c paint.Color) {
	b.withBrush(c, func(br resource) {
		b.target.FillRoundedRectangle(geom.Extent(p, extent).Canon(), radius, br)
	})
}

func (b *Backend) Ellipse(p geom.Point2[float32], radius float32, c paint.Color) {
	b.withBrush(c, func(br resource) {
		b.target.FillEllipse(p.Add(geom.Pt2(radius, radius)), radius, radius, br)
	})
}

func (b *Backend) Line(p1, p2 geom.Point2[float32], width float32, c paint.Color) {
	b.withBrush(c, func(br resource) {
		b.target.DrawLine(p1, p2, br, width, b.lineStyle)
	})
}

// withBrush creates a brush for c, passes it to f and releases it.
func (b *Backend) withBrush(c paint.Color, f func(br resource)) {
	br, err := b.brush(c)
	if err != nil {
		logger.Get().Warn("d2d: create brush", "err", err)
		return
	}
	defer br.Release()
	f(br)
}

func (b *Backend) brush(c paint.Color) (resource, error) {
	if g, ok := c.(paint.Gradient); ok {
		if l, ok := g.Kind.(paint.Linear); ok {
			if stops := g.Resolve(); len(stops) > 0 {
				return b.target.CreateLinearBrush(l.From, l.To, stops)
			}
		}
	}
	return b.target.CreateSolidBrush(paint.Solid(c))
}

func (b *Backend) Release() {
	if b.f == nil {
		return
	}
	if b.target != nil {
		b.target.Release()
		b.target = nil
	}
	b.lineStyle.Release()
	b.f.Release()
	b.f = nil
}
