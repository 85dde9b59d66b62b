// SPDX-License-Identifier: Unlicense OR MIT

//go:build !linux || android || !cgo || nowayland

package egl

import (
	"errors"
	"unsafe"
)

// New returns an error; Wayland support needs cgo on Linux.
func New(surf, display unsafe.Pointer) (*Backend, error) {
	return nil, errors.New("egl: built without Wayland support")
}
