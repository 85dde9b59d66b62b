// SPDX-License-Identifier: Unlicense OR MIT

package paint

import (
	"fmt"
	"strings"

	"golang.org/x/image/colornames"

	"github.com/Lattexshz/Bly/geom"
)

// Color is implemented by Named, RGBA and Gradient.
type Color interface {
	implementsColor()
}

// Named is an entry of the fixed palette.
type Named uint8

// RGBA is a color with explicit, non-premultiplied channels. The
// nominal range of every channel is [0, 1].
type RGBA struct {
	R, G, B, A float32
}

const (
	White Named = iota
	WhiteGray
	Gray
	Black
	Red
	Green
	Blue
)

var palette = [...]RGBA{
	White:     {R: 1, G: 1, B: 1, A: 1},
	WhiteGray: {R: 0.9, G: 0.9, B: 0.9, A: 1},
	Gray:      {R: 0.5, G: 0.5, B: 0.5, A: 1},
	Black:     {R: 0, G: 0, B: 0, A: 1},
	Red:       {R: 1, G: 0, B: 0, A: 1},
	Green:     {R: 0, G: 1, B: 0, A: 1},
	Blue:      {R: 0, G: 0, B: 1, A: 1},
}

var names = [...]string{
	White:     "White",
	WhiteGray: "WhiteGray",
	Gray:      "Gray",
	Black:     "Black",
	Red:       "Red",
	Green:     "Green",
	Blue:      "Blue",
}

func (Named) implementsColor()    {}
func (RGBA) implementsColor()     {}
func (Gradient) implementsColor() {}

// RGBA returns the palette entry for n. Unknown entries are
// transparent.
func (n Named) RGBA() RGBA {
	if int(n) < len(palette) {
		return palette[n]
	}
	return RGBA{}
}

func (n Named) String() string {
	if int(n) < len(names) {
		return names[n]
	}
	return fmt.Sprintf("Named(%d)", uint8(n))
}

// Vec4 converts c to an (R, G, B, A) vector. A gradient converts to
// its base color.
func Vec4(c Color) geom.Point4[float32] {
	s := Solid(c)
	return geom.Pt4(s.R, s.G, s.B, s.A)
}

// Solid reduces c to a single color. A gradient reduces to its first
// stop, or to transparent when it has none.
func Solid(c Color) RGBA {
	switch c := c.(type) {
	case RGBA:
		return c
	case Named:
		return c.RGBA()
	case Gradient:
		if len(c.Stops) == 0 {
			return RGBA{}
		}
		return Solid(c.Stops[0])
	case nil:
		return RGBA{}
	default:
		panic(fmt.Errorf("paint: unknown color %T", c))
	}
}

// Lookup returns the SVG 1.1 color with the given name, such as
// "cornflowerblue". The name is case insensitive.
func Lookup(name string) (RGBA, bool) {
	c, ok := colornames.Map[strings.ToLower(name)]
	if !ok {
		return RGBA{}, false
	}
	return RGBA{
		R: float32(c.R) / 0xff,
		G: float32(c.G) / 0xff,
		B: float32(c.B) / 0xff,
		A: float32(c.A) / 0xff,
	}, true
}

// Lerp returns the color t of the way from c to c2.
func (c RGBA) Lerp(c2 RGBA, t float32) RGBA {
	return RGBA{
		R: c.R + (c2.R-c.R)*t,
		G: c.G + (c2.G-c.G)*t,
		B: c.B + (c2.B-c.B)*t,
		A: c.A + (c2.A-c.A)*t,
	}
}
