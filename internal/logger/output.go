// SPDX-License-Identifier: Unlicense OR MIT

//go:build !windows

package logger

import (
	"io"
	"os"
)

func output() io.Writer {
	return os.Stderr
}
