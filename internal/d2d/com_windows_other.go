// SPDX-License-Identifier: Unlicense OR MIT

//go:build windows && !amd64

package d2d

import (
	"errors"
	"runtime"
)

// New returns an error: Direct2D calls pass structs by value, which is
// only implemented for amd64.
func New(hwnd uintptr) (*Backend, error) {
	return nil, errors.New("d2d: unsupported architecture " + runtime.GOARCH)
}
