// SPDX-License-Identifier: Unlicense OR MIT

//go:build (linux && !android) || freebsd || openbsd

package raster

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/xgraphics"
)

// x11Window draws into an X11 window through pixmaps on its own
// connection to the X server named by $DISPLAY.
type x11Window struct {
	x   *xgbutil.XUtil
	win xproto.Window
}

type x11Surface struct {
	w   *x11Window
	img *xgraphics.Image
}

// NewX11 returns a backend drawing into the X11 window with the given
// id.
func NewX11(win uint32) (*Backend, error) {
	X, err := xgbutil.NewConn()
	if err != nil {
		return nil, fmt.Errorf("raster: X11 connection: %w", err)
	}
	w := &x11Window{x: X, win: xproto.Window(win)}
	b, err := New(w)
	if err != nil {
		w.Release()
		return nil, err
	}
	return b, nil
}

func (w *x11Window) Size() (int, int, error) {
	g, err := xproto.GetGeometry(w.x.Conn(), xproto.Drawable(w.win)).Reply()
	if err != nil {
		return 0, 0, fmt.Errorf("raster: GetGeometry: %w", err)
	}
	return int(g.Width), int(g.Height), nil
}

func (w *x11Window) NewSurface(width, height int) (Surface, error) {
	img := xgraphics.New(w.x, image.Rect(0, 0, width, height))
	if err := img.XSurfaceSet(w.win); err != nil {
		img.Destroy()
		return nil, fmt.Errorf("raster: create pixmap: %w", err)
	}
	return &x11Surface{w: w, img: img}, nil
}

func (w *x11Window) Release() {
	w.x.Conn().Close()
}

func (s *x11Surface) Image() draw.Image {
	return s.img
}

func (s *x11Surface) Present() error {
	s.img.XDraw()
	s.img.XPaint(s.w.win)
	s.w.x.Sync()
	return nil
}

func (s *x11Surface) Release() {
	s.img.Destroy()
}
