// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"github.com/Lattexshz/Bly/handle"
	"github.com/Lattexshz/Bly/internal/backend"
	"github.com/Lattexshz/Bly/internal/d2d"
)

func init() {
	win32Driver = newD2DBackend
}

func newD2DBackend(h handle.Raw) (backend.Backend, error) {
	b, err := d2d.New(h.(handle.Win32).HWND)
	if err != nil {
		return nil, err
	}
	return b, nil
}
