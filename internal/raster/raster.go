// SPDX-License-Identifier: Unlicense OR MIT

/*
Package raster implements a software drawing backend that fills paths
with golang.org/x/image/vector into a window sized surface.

Rectangle and RoundedRectangle interpret their second point as the
width and height of the shape.
*/
package raster

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/vector"

	"github.com/Lattexshz/Bly/geom"
	"github.com/Lattexshz/Bly/internal/backend"
	"github.com/Lattexshz/Bly/internal/logger"
	"github.com/Lattexshz/Bly/paint"
)

// Window is the native window a Backend draws into.
type Window interface {
	// Size queries the current window geometry.
	Size() (width, height int, err error)
	// NewSurface creates an off screen surface of the given size that
	// presents into the window.
	NewSurface(width, height int) (Surface, error)
	Release()
}

// Surface is a fixed size image presented to its window on Flush.
type Surface interface {
	Image() draw.Image
	Present() error
	Release()
}

// Backend rasterizes shapes into a surface of its window.
type Backend struct {
	win  Window
	surf Surface
	// vr is the drawing context for surf.
	vr            *vector.Rasterizer
	width, height int
	// drawing is set between BeginDraw and Flush. The surface is never
	// replaced while it is set.
	drawing bool
}

var _ backend.Backend = (*Backend)(nil)

// New creates a backend for w with a surface matching the current
// window size.
func New(w Window) (*Backend, error) {
	width, height, err := w.Size()
	if err != nil {
		return nil, err
	}
	b := &Backend{win: w}
	if err := b.resize(width, height); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Backend) Name() string { return "raster" }

// Surface returns the image of the current frame, or nil when the
// window has no area.
func (b *Backend) Surface() draw.Image {
	if b.surf == nil {
		return nil
	}
	return b.surf.Image()
}

func (b *Backend) BeginDraw() error {
	if err := b.update(); err != nil {
		return err
	}
	b.drawing = true
	return nil
}

func (b *Backend) Flush() error {
	b.drawing = false
	if b.surf == nil {
		return nil
	}
	return b.surf.Present()
}

// DisplaySize returns the window size. Inside a frame it returns the
// size of the surface being drawn.
func (b *Backend) DisplaySize() (uint32, uint32) {
	if b.drawing {
		return uint32(b.width), uint32(b.height)
	}
	if err := b.update(); err != nil {
		logger.Get().Warn("raster: query window size", "err", err)
	}
	return uint32(b.width), uint32(b.height)
}

// update recreates the surface if the window changed size.
func (b *Backend) update() error {
	width, height, err := b.win.Size()
	if err != nil {
		return err
	}
	if width == b.width && height == b.height {
		return nil
	}
	return b.resize(width, height)
}

func (b *Backend) resize(width, height int) error {
	if b.surf != nil {
		b.surf.Release()
		b.surf = nil
		b.vr = nil
	}
	b.width, b.height = width, height
	if width <= 0 || height <= 0 {
		return nil
	}
	s, err := b.win.NewSurface(width, height)
	if err != nil {
		b.width, b.height = 0, 0
		return err
	}
	b.surf = s
	b.vr = vector.NewRasterizer(width, height)
	logger.Get().Debug("raster: surface created", "width", width, "height", height)
	return nil
}

func (b *Backend) Release() {
	if b.win == nil {
		return
	}
	if b.surf != nil {
		b.surf.Release()
		b.surf = nil
	}
	b.vr = nil
	b.win.Release()
	b.win = nil
}

func (b *Backend) Clear(c paint.Color) {
	if b.surf == nil {
		return
	}
	dst := b.surf.Image()
	draw.Draw(dst, dst.Bounds(), image.NewUniform(toNRGBA(paint.Solid(c))), image.Point{}, draw.Src)
}

func (b *Backend) Rectangle(p, extent geom.Point2[float32], c paint.Color) {
	if !b.begin() {
		return
	}
	r := geom.Extent(p, extent).Canon()
	b.vr.MoveTo(r.Min.X, r.Min.Y)
	b.vr.LineTo(r.Max.X, r.Min.Y)
	b.vr.LineTo(r.Max.X, r.Max.Y)
	b.vr.LineTo(r.Min.X, r.Max.Y)
	b.vr.ClosePath()
	b.fill(c)
}

func (b *Backend) RoundedRectangle(p, extent geom.Point2[float32], radius float32, c paint.Color) {
	if !b.begin() {
		return
	}
	r := geom.Extent(p, extent).Canon()
	radius = clampRadius(radius, r)
	roundRect(b.vr, r, radius)
	b.fill(c)
}

func (b *Backend) Ellipse(p geom.Point2[float32], radius float32, c paint.Color) {
	if radius <= 0 || !b.begin() {
		return
	}
	circle(b.vr, p.Add(geom.Pt2(radius, radius)), radius)
	b.fill(c)
}

func (b *Backend) Line(p1, p2 geom.Point2[float32], width float32, c paint.Color) {
	if width <= 0 || !b.begin() {
		return
	}
	if !strokeQuad(b.vr, p1, p2, width) {
		return
	}
	b.fill(c)
}

// begin resets the path of the drawing context.
func (b *Backend) begin() bool {
	if b.surf == nil {
		return false
	}
	b.vr.Reset(b.width, b.height)
	b.vr.DrawOp = draw.Over
	return true
}

// fill paints the current path with a source built for this call.
func (b *Backend) fill(c paint.Color) {
	dst := b.surf.Image()
	src := source(c)
	b.vr.Draw(dst, dst.Bounds(), src, image.Point{})
}

func source(c paint.Color) image.Image {
	if g, ok := c.(paint.Gradient); ok {
		if src := newLinearGradient(g); src != nil {
			return src
		}
	}
	return image.NewUniform(toNRGBA(paint.Solid(c)))
}

// toNRGBA converts c to 8 bit channels, saturating out of range
// values.
func toNRGBA(c paint.RGBA) color.NRGBA {
	return color.NRGBA{
		R: channel(c.R),
		G: channel(c.G),
		B: channel(c.B),
		A: channel(c.A),
	}
}

func channel(v float32) uint8 {
	switch {
	case !(v > 0):
		return 0
	case v >= 1:
		return 0xff
	default:
		return uint8(v*0xff + .5)
	}
}
