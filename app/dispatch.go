// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/Lattexshz/Bly/handle"
	"github.com/Lattexshz/Bly/internal/backend"
	"github.com/Lattexshz/Bly/internal/logger"
)

// ErrUnsupportedPlatform is matched by the errors of handles without a
// backend.
var ErrUnsupportedPlatform = errors.New("app: unsupported platform")

// UnsupportedError reports a handle kind without a backend.
type UnsupportedError struct {
	Kind handle.Kind
}

type driver func(h handle.Raw) (backend.Backend, error)

// Each platform file sets the drivers it supports. A nil driver means
// the backend is not available for the GOOS.
var xlibDriver, waylandDriver, win32Driver, webDriver driver

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("app: unsupported platform: %s", e.Kind)
}

func (e *UnsupportedError) Is(target error) bool {
	return target == ErrUnsupportedPlatform
}

// newBackend selects and creates the backend for h. Pointers to handles
// are accepted as the handle they point to.
func newBackend(h handle.Raw) (backend.Backend, error) {
	switch h := deref(h).(type) {
	case handle.Xlib, handle.Wayland:
		return unixBackend(h)
	case handle.Win32:
		return open(h, win32Driver)
	case handle.Web:
		return open(h, webDriver)
	case handle.Xcb, handle.WinRt, handle.UiKit, handle.AppKit, handle.Orbital,
		handle.Drm, handle.Gbm, handle.AndroidNdk, handle.Haiku:
		return nil, &UnsupportedError{Kind: h.Kind()}
	default:
		return nil, &UnsupportedError{Kind: handle.KindOf(h)}
	}
}

// deref returns the handle a pointer handle points to, or nil for a nil
// pointer.
func deref(h handle.Raw) handle.Raw {
	v := reflect.ValueOf(h)
	if v.Kind() != reflect.Pointer {
		return h
	}
	if v.IsNil() {
		return nil
	}
	if r, ok := v.Elem().Interface().(handle.Raw); ok {
		return r
	}
	return h
}

// unixBackend selects between the X11 and Wayland backends.
func unixBackend(h handle.Raw) (backend.Backend, error) {
	switch h.(type) {
	case handle.Xlib:
		return open(h, xlibDriver)
	case handle.Wayland:
		return open(h, waylandDriver)
	}
	panic("unreachable")
}

func open(h handle.Raw, d driver) (backend.Backend, error) {
	if d == nil {
		return nil, &UnsupportedError{Kind: h.Kind()}
	}
	b, err := d(h)
	if err != nil {
		return nil, fmt.Errorf("app: %s backend: %w", h.Kind(), err)
	}
	logger.Get().Info("app: backend selected", "platform", h.Kind(), "backend", b.Name())
	return b, nil
}
