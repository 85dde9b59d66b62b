// SPDX-License-Identifier: Unlicense OR MIT

/*
Package geom defines the small coordinate tuples passed to drawing
calls.

The coordinate space has the origin in the top left corner with the
axes extending right and down.
*/
package geom

import "golang.org/x/exp/constraints"

// Number is the set of element types a point can carry.
type Number interface {
	constraints.Integer | constraints.Float
}

// A Point2 is a two dimensional point.
type Point2[T Number] struct {
	X, Y T
}

// A Point3 is a three dimensional point.
type Point3[T Number] struct {
	X, Y, Z T
}

// A Point4 is a four dimensional point. Colors use it as an
// (R, G, B, A) vector.
type Point4[T Number] struct {
	X, Y, Z, W T
}

// A Rect contains the points (X, Y) where Min.X <= X < Max.X,
// Min.Y <= Y < Max.Y.
type Rect[T Number] struct {
	Min, Max Point2[T]
}

// Pt2 is shorthand for Point2[T]{X: x, Y: y}.
func Pt2[T Number](x, y T) Point2[T] {
	return Point2[T]{X: x, Y: y}
}

// Pt3 is shorthand for Point3[T]{X: x, Y: y, Z: z}.
func Pt3[T Number](x, y, z T) Point3[T] {
	return Point3[T]{X: x, Y: y, Z: z}
}

// Pt4 is shorthand for Point4[T]{X: x, Y: y, Z: z, W: w}.
func Pt4[T Number](x, y, z, w T) Point4[T] {
	return Point4[T]{X: x, Y: y, Z: z, W: w}
}

// Add returns the point p+p2.
func (p Point2[T]) Add(p2 Point2[T]) Point2[T] {
	return Point2[T]{X: p.X + p2.X, Y: p.Y + p2.Y}
}

// Sub returns the vector p-p2.
func (p Point2[T]) Sub(p2 Point2[T]) Point2[T] {
	return Point2[T]{X: p.X - p2.X, Y: p.Y - p2.Y}
}

// Extent returns the rectangle with its top left corner at p and the
// given width and height.
func Extent[T Number](p, size Point2[T]) Rect[T] {
	return Rect[T]{Min: p, Max: p.Add(size)}
}

// Dx returns r's width.
func (r Rect[T]) Dx() T {
	return r.Max.X - r.Min.X
}

// Dy returns r's height.
func (r Rect[T]) Dy() T {
	return r.Max.Y - r.Min.Y
}

// Canon returns the canonical version of r, where Min is to
// the upper left of Max.
func (r Rect[T]) Canon() Rect[T] {
	if r.Max.X < r.Min.X {
		r.Min.X, r.Max.X = r.Max.X, r.Min.X
	}
	if r.Max.Y < r.Min.Y {
		r.Min.Y, r.Max.Y = r.Max.Y, r.Min.Y
	}
	return r
}

// Empty reports whether r represents the empty area.
func (r Rect[T]) Empty() bool {
	return r.Min.X >= r.Max.X || r.Min.Y >= r.Max.Y
}
