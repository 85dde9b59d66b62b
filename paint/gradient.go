// SPDX-License-Identifier: Unlicense OR MIT

package paint

import (
	"sort"

	"github.com/Lattexshz/Bly/geom"
)

// Gradient is a color ramp through Stops laid out according to Kind.
type Gradient struct {
	// Stops are the ramp colors in order. Gradient stops are reduced
	// to their base color.
	Stops []Color
	Kind  GradientKind
	// Mix is the offset of the first stop along the ramp. The
	// remaining stops are spread evenly between Mix and 1.
	Mix float32
}

// GradientKind is implemented by Linear.
type GradientKind interface {
	implementsGradientKind()
}

// Linear lays a ramp out along the line From-To. Points projecting
// before From take the first stop's color, points projecting past To
// the last stop's.
type Linear struct {
	From, To geom.Point2[float32]
}

// Stop is one resolved (offset, color) pair of a gradient.
type Stop struct {
	Offset float32
	Color  RGBA
}

func (Linear) implementsGradientKind() {}

// Resolve returns the stops of g with their offsets. Offsets are
// strictly increasing and lie in [0, 1].
func (g Gradient) Resolve() []Stop {
	if len(g.Stops) == 0 {
		return nil
	}
	start := g.Mix
	if start < 0 || start != start {
		start = 0
	}
	if start >= 1 {
		start = 0
	}
	stops := make([]Stop, len(g.Stops))
	n := len(g.Stops) - 1
	for i, c := range g.Stops {
		off := start
		if n > 0 {
			off = start + (1-start)*float32(i)/float32(n)
		}
		stops[i] = Stop{Offset: off, Color: Solid(c)}
	}
	return stops
}

// Offset projects p onto the line From-To and returns its position,
// where From is 0 and To is 1.
func (l Linear) Offset(p geom.Point2[float32]) float32 {
	d := l.To.Sub(l.From)
	lsq := d.X*d.X + d.Y*d.Y
	if lsq == 0 {
		return 0
	}
	v := p.Sub(l.From)
	return (v.X*d.X + v.Y*d.Y) / lsq
}

// Sample returns the color at offset t of a ramp through stops, which
// must be sorted by offset. Offsets outside the ramp take the color of
// the nearest end.
func Sample(stops []Stop, t float32) RGBA {
	switch len(stops) {
	case 0:
		return RGBA{}
	case 1:
		return stops[0].Color
	}
	i := sort.Search(len(stops), func(i int) bool {
		return stops[i].Offset >= t
	})
	if i == 0 {
		return stops[0].Color
	}
	if i == len(stops) {
		return stops[len(stops)-1].Color
	}
	s0, s1 := stops[i-1], stops[i]
	if s1.Offset == s0.Offset {
		return s0.Color
	}
	return s0.Color.Lerp(s1.Color, (t-s0.Offset)/(s1.Offset-s0.Offset))
}
