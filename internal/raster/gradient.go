// SPDX-License-Identifier: Unlicense OR MIT

package raster

import (
	"image"
	"image/color"

	"github.com/Lattexshz/Bly/geom"
	"github.com/Lattexshz/Bly/paint"
)

// linearGradient is an unbounded image of a linear paint.Gradient.
type linearGradient struct {
	line  paint.Linear
	stops []paint.Stop
}

// newLinearGradient returns nil if g has no stops or no supported
// kind.
func newLinearGradient(g paint.Gradient) image.Image {
	l, ok := g.Kind.(paint.Linear)
	if !ok {
		return nil
	}
	stops := g.Resolve()
	if len(stops) == 0 {
		return nil
	}
	return &linearGradient{line: l, stops: stops}
}

func (g *linearGradient) ColorModel() color.Model { return color.NRGBAModel }

func (g *linearGradient) Bounds() image.Rectangle {
	return image.Rect(-1e9, -1e9, 1e9, 1e9)
}

func (g *linearGradient) At(x, y int) color.Color {
	t := g.line.Offset(geom.Pt2(float32(x)+.5, float32(y)+.5))
	return toNRGBA(paint.Sample(g.stops, t))
}
