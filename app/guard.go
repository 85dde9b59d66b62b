// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"errors"
	"sync/atomic"

	"github.com/Lattexshz/Bly/handle"
)

// ErrCanvasExists is the panic value of a second canvas creation.
var ErrCanvasExists = errors.New("app: a canvas was already created")

// Guard allows a single Canvas to be created. The zero value is ready
// to use.
type Guard struct {
	claimed atomic.Bool
}

var processGuard Guard

// NewCanvas creates a canvas for w, selecting the backend from its raw
// handle. If no backend could be created, the guard remains unclaimed
// and the error is returned. Once a canvas was created, NewCanvas
// panics with ErrCanvasExists.
func (g *Guard) NewCanvas(w handle.Window) (*Canvas, error) {
	if !g.claimed.CompareAndSwap(false, true) {
		panic(ErrCanvasExists)
	}
	b, err := newBackend(w.RawWindowHandle())
	if err != nil {
		g.claimed.Store(false)
		return nil, err
	}
	return newCanvas(b), nil
}
