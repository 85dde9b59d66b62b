// SPDX-License-Identifier: Unlicense OR MIT

package logger

import (
	"io"
	"os"
	"unsafe"

	syscall "golang.org/x/sys/windows"
)

type debugView struct{}

var (
	kernel32           = syscall.NewLazySystemDLL("kernel32")
	outputDebugStringW = kernel32.NewProc("OutputDebugStringW")
)

// output returns standard error, or the debugger output for GUI
// programs without a console.
func output() io.Writer {
	if syscall.Stderr == 0 {
		return debugView{}
	}
	return os.Stderr
}

func (debugView) Write(buf []byte) (int, error) {
	p, err := syscall.UTF16PtrFromString(string(buf))
	if err != nil {
		return 0, err
	}
	outputDebugStringW.Call(uintptr(unsafe.Pointer(p)))
	return len(buf), nil
}
