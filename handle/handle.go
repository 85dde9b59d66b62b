// SPDX-License-Identifier: Unlicense OR MIT

// Package handle describes the native window handles a canvas can be
// created for.
//
// A Raw value is produced by the windowing toolkit that owns the event
// loop. Only the fields needed to reach the native drawing API are
// carried; the toolkit keeps ownership of the window and its display
// connection.
package handle

import (
	"fmt"
	"unsafe"
)

// Window is implemented by anything that can report its native window
// handle.
type Window interface {
	RawWindowHandle() Raw
}

// Raw is implemented by the handle variants in this package.
type Raw interface {
	Kind() Kind
	implementsRaw()
}

// Kind identifies a Raw variant.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindXlib
	KindXcb
	KindWayland
	KindWin32
	KindWinRt
	KindWeb
	KindUiKit
	KindAppKit
	KindOrbital
	KindDrm
	KindGbm
	KindAndroidNdk
	KindHaiku
)

// Xlib is an X11 window reached through an Xlib display connection.
type Xlib struct {
	Window  uintptr
	Display unsafe.Pointer
}

// Xcb is an X11 window reached through an XCB connection.
type Xcb struct {
	Window     uint32
	Connection unsafe.Pointer
}

// Wayland is a wl_surface on a wl_display. A nil Display makes the
// backend open its own connection.
type Wayland struct {
	Surface unsafe.Pointer
	Display unsafe.Pointer
}

// Win32 is a window created by user32.
type Win32 struct {
	HWND      uintptr
	HInstance uintptr
}

// WinRt is a UWP CoreWindow.
type WinRt struct {
	CoreWindow unsafe.Pointer
}

// Web is a canvas element in the browser DOM. ID is the value of the
// element's data-raw-handle attribute.
type Web struct {
	ID uint32
}

// UiKit is a UIView on iOS.
type UiKit struct {
	UIView unsafe.Pointer
}

// AppKit is an NSView on macOS.
type AppKit struct {
	NSView unsafe.Pointer
}

// Orbital is a window of the Redox display server.
type Orbital struct {
	Window unsafe.Pointer
}

// Drm is a plane of a kernel mode setting device.
type Drm struct {
	Plane uint32
}

// Gbm is a surface of the generic buffer manager.
type Gbm struct {
	Surface unsafe.Pointer
}

// AndroidNdk is an ANativeWindow.
type AndroidNdk struct {
	Window unsafe.Pointer
}

// Haiku is a BWindow.
type Haiku struct {
	Window unsafe.Pointer
}

func (Xlib) Kind() Kind       { return KindXlib }
func (Xcb) Kind() Kind        { return KindXcb }
func (Wayland) Kind() Kind    { return KindWayland }
func (Win32) Kind() Kind      { return KindWin32 }
func (WinRt) Kind() Kind      { return KindWinRt }
func (Web) Kind() Kind        { return KindWeb }
func (UiKit) Kind() Kind      { return KindUiKit }
func (AppKit) Kind() Kind     { return KindAppKit }
func (Orbital) Kind() Kind    { return KindOrbital }
func (Drm) Kind() Kind        { return KindDrm }
func (Gbm) Kind() Kind        { return KindGbm }
func (AndroidNdk) Kind() Kind { return KindAndroidNdk }
func (Haiku) Kind() Kind      { return KindHaiku }

func (Xlib) implementsRaw()       {}
func (Xcb) implementsRaw()        {}
func (Wayland) implementsRaw()    {}
func (Win32) implementsRaw()      {}
func (WinRt) implementsRaw()      {}
func (Web) implementsRaw()        {}
func (UiKit) implementsRaw()      {}
func (AppKit) implementsRaw()     {}
func (Orbital) implementsRaw()    {}
func (Drm) implementsRaw()        {}
func (Gbm) implementsRaw()        {}
func (AndroidNdk) implementsRaw() {}
func (Haiku) implementsRaw()      {}

var kindNames = [...]string{
	KindUnknown:    "unknown",
	KindXlib:       "xlib",
	KindXcb:        "xcb",
	KindWayland:    "wayland",
	KindWin32:      "win32",
	KindWinRt:      "winrt",
	KindWeb:        "web",
	KindUiKit:      "uikit",
	KindAppKit:     "appkit",
	KindOrbital:    "orbital",
	KindDrm:        "drm",
	KindGbm:        "gbm",
	KindAndroidNdk: "android-ndk",
	KindHaiku:      "haiku",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// KindOf returns the kind of h, or KindUnknown for a nil handle.
func KindOf(h Raw) Kind {
	if h == nil {
		return KindUnknown
	}
	return h.Kind()
}
