// SPDX-License-Identifier: Unlicense OR MIT

package raster

import (
	"math"

	"golang.org/x/image/vector"

	"github.com/Lattexshz/Bly/geom"
)

// kappa is the control point distance of a cubic approximating a
// quarter circle of radius 1.
const kappa = 0.5522847498

func clampRadius(radius float32, r geom.Rect[float32]) float32 {
	if radius < 0 {
		return 0
	}
	if m := min(r.Dx(), r.Dy()) / 2; radius > m {
		return m
	}
	return radius
}

// roundRect adds a closed rounded rectangle to vr. The corners are
// visited top right, bottom right, bottom left, top left.
func roundRect(vr *vector.Rasterizer, r geom.Rect[float32], rad float32) {
	k := rad * kappa
	x0, y0, x1, y1 := r.Min.X, r.Min.Y, r.Max.X, r.Max.Y
	vr.MoveTo(x0+rad, y0)
	vr.LineTo(x1-rad, y0)
	vr.CubeTo(x1-rad+k, y0, x1, y0+rad-k, x1, y0+rad)
	vr.LineTo(x1, y1-rad)
	vr.CubeTo(x1, y1-rad+k, x1-rad+k, y1, x1-rad, y1)
	vr.LineTo(x0+rad, y1)
	vr.CubeTo(x0+rad-k, y1, x0, y1-rad+k, x0, y1-rad)
	vr.LineTo(x0, y0+rad)
	vr.CubeTo(x0, y0+rad-k, x0+rad-k, y0, x0+rad, y0)
	vr.ClosePath()
}

// circle adds a closed circle around center to vr.
func circle(vr *vector.Rasterizer, center geom.Point2[float32], rad float32) {
	k := rad * kappa
	cx, cy := center.X, center.Y
	vr.MoveTo(cx+rad, cy)
	vr.CubeTo(cx+rad, cy+k, cx+k, cy+rad, cx, cy+rad)
	vr.CubeTo(cx-k, cy+rad, cx-rad, cy+k, cx-rad, cy)
	vr.CubeTo(cx-rad, cy-k, cx-k, cy-rad, cx, cy-rad)
	vr.CubeTo(cx+k, cy-rad, cx+rad, cy-k, cx+rad, cy)
	vr.ClosePath()
}

// strokeQuad adds the outline of the segment p1-p2 stroked with butt
// caps. It reports false for degenerate segments.
func strokeQuad(vr *vector.Rasterizer, p1, p2 geom.Point2[float32], width float32) bool {
	d := p2.Sub(p1)
	l := float32(math.Hypot(float64(d.X), float64(d.Y)))
	if l == 0 {
		return false
	}
	s := width / 2 / l
	n := geom.Pt2(-d.Y*s, d.X*s)
	a, b := p1.Add(n), p2.Add(n)
	c, e := p2.Sub(n), p1.Sub(n)
	vr.MoveTo(a.X, a.Y)
	vr.LineTo(b.X, b.Y)
	vr.LineTo(c.X, c.Y)
	vr.LineTo(e.X, e.Y)
	vr.ClosePath()
	return true
}
