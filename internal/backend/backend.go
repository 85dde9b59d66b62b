// SPDX-License-Identifier: Unlicense OR MIT

// Package backend defines the contract between the canvas and the
// native drawing APIs.
package backend

import (
	"errors"
	"fmt"

	"github.com/Lattexshz/Bly/geom"
	"github.com/Lattexshz/Bly/paint"
)

// ErrNotImplemented is the panic value, wrapped, of primitives a
// backend does not support.
var ErrNotImplemented = errors.New("not implemented")

// Backend represents the abstraction of a native 2D drawing API bound
// to a single window.
//
// Every BeginDraw that returns a nil error is followed by exactly one
// Flush. Drawing calls are only valid between the two.
type Backend interface {
	// Name identifies the backend in logs, such as "raster".
	Name() string
	// BeginDraw opens a frame. If the window changed size since the
	// last frame, the drawing surface is recreated at the new size
	// first.
	BeginDraw() error
	// Flush closes the frame opened by BeginDraw and presents it.
	Flush() error
	// DisplaySize reports the current surface size in pixels. It may
	// recreate the surface like BeginDraw does.
	DisplaySize() (width, height uint32)
	// Clear fills the whole surface with the solid reduction of c.
	Clear(c paint.Color)
	// Ellipse fills a circle of radius r whose bounding square has its
	// top left corner at p.
	Ellipse(p geom.Point2[float32], r float32, c paint.Color)
	// Rectangle fills the rectangle at p1. How p2 is interpreted is
	// documented by each backend.
	Rectangle(p1, p2 geom.Point2[float32], c paint.Color)
	// RoundedRectangle is like Rectangle with corners of radius r.
	RoundedRectangle(p1, p2 geom.Point2[float32], r float32, c paint.Color)
	// Line strokes the segment p1-p2 with the given width.
	Line(p1, p2 geom.Point2[float32], width float32, c paint.Color)
	// Release frees the native resources. The backend must not be used
	// afterwards.
	Release()
}

// NotImplemented panics with an error wrapping ErrNotImplemented.
func NotImplemented(backend, op string) {
	panic(fmt.Errorf("%s: %s: %w", backend, op, ErrNotImplemented))
}

// FarCorner returns the corner opposite p of the rectangle with the
// given extent.
func FarCorner(p, extent geom.Point2[float32]) geom.Point2[float32] {
	return geom.Extent(p, extent).Max
}
