// SPDX-License-Identifier: Unlicense OR MIT

//go:build (linux && !android) || freebsd || openbsd

package app

import (
	"github.com/Lattexshz/Bly/handle"
	"github.com/Lattexshz/Bly/internal/backend"
	"github.com/Lattexshz/Bly/internal/egl"
	"github.com/Lattexshz/Bly/internal/raster"
)

func init() {
	xlibDriver = newX11Backend
	waylandDriver = newWaylandBackend
}

func newX11Backend(h handle.Raw) (backend.Backend, error) {
	x := h.(handle.Xlib)
	b, err := raster.NewX11(uint32(x.Window))
	if err != nil {
		return nil, err
	}
	return b, nil
}

func newWaylandBackend(h handle.Raw) (backend.Backend, error) {
	w := h.(handle.Wayland)
	b, err := egl.New(w.Surface, w.Display)
	if err != nil {
		return nil, err
	}
	return b, nil
}
