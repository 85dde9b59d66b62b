// SPDX-License-Identifier: Unlicense OR MIT

/*
Package egl implements a drawing backend on an OpenGL ES 2 context
created with EGL for a Wayland surface.

The window surface keeps the size it was created with. Only Clear is
supported; the shape primitives panic with backend.ErrNotImplemented.
*/
package egl

import (
	"fmt"
	"unsafe"

	"github.com/Lattexshz/Bly/geom"
	"github.com/Lattexshz/Bly/internal/backend"
	"github.com/Lattexshz/Bly/internal/logger"
	"github.com/Lattexshz/Bly/paint"
)

// Error is a failed native call with its EGL error code, if any.
type Error struct {
	Op   string
	Code int32
}

const (
	_EGL_BLUE_SIZE              = 0x3022
	_EGL_CONTEXT_CLIENT_VERSION = 0x3098
	_EGL_DEPTH_SIZE             = 0x3025
	_EGL_GREEN_SIZE             = 0x3023
	_EGL_NONE                   = 0x3038
	_EGL_OPENGL_ES2_BIT         = 0x4
	_EGL_RED_SIZE               = 0x3024
	_EGL_RENDERABLE_TYPE        = 0x3040
	_EGL_SURFACE_TYPE           = 0x3033
	_EGL_WINDOW_BIT             = 0x4

	_GL_COLOR_BUFFER_BIT = 0x4000
	_GL_VERSION          = 0x1F02
)

// initialWidth and initialHeight are the size of the native window.
const (
	initialWidth  = 520
	initialHeight = 520
)

var configAttribs = []int32{
	_EGL_RED_SIZE, 8,
	_EGL_GREEN_SIZE, 8,
	_EGL_BLUE_SIZE, 8,
	_EGL_DEPTH_SIZE, 24,
	_EGL_SURFACE_TYPE, _EGL_WINDOW_BIT,
	_EGL_RENDERABLE_TYPE, _EGL_OPENGL_ES2_BIT,
	_EGL_NONE,
}

var contextAttribs = []int32{
	_EGL_CONTEXT_CLIENT_VERSION, 2,
	_EGL_NONE,
}

// api is the subset of libwayland, libEGL and libGLESv2 used by
// Backend. Null handles report failure.
type api interface {
	Connect() unsafe.Pointer
	Disconnect(disp unsafe.Pointer)
	DispatchPending(disp unsafe.Pointer) int
	CreateWindow(surf unsafe.Pointer, width, height int) unsafe.Pointer
	DestroyWindow(win unsafe.Pointer)

	GetDisplay(native unsafe.Pointer) unsafe.Pointer
	Initialize(disp unsafe.Pointer) bool
	ChooseConfig(disp unsafe.Pointer, attribs []int32) unsafe.Pointer
	CreateWindowSurface(disp, config, win unsafe.Pointer) unsafe.Pointer
	CreateContext(disp, config unsafe.Pointer, attribs []int32) unsafe.Pointer
	MakeCurrent(disp, surf, ctx unsafe.Pointer) bool
	SwapBuffers(disp, surf unsafe.Pointer) bool
	DestroySurface(disp, surf unsafe.Pointer)
	DestroyContext(disp, ctx unsafe.Pointer)
	Terminate(disp unsafe.Pointer)
	GetError() int32

	ClearColor(r, g, b, a float32)
	Clear(mask uint32)
	GetString(name uint32) string
}

// Backend clears an EGL window surface on a Wayland surface.
type Backend struct {
	c api

	wlDisp unsafe.Pointer
	// ownDisp is set if wlDisp was connected by the backend.
	ownDisp bool
	eglWin  unsafe.Pointer

	disp unsafe.Pointer
	// initialized tracks eglInitialize for eglTerminate.
	initialized bool
	config      unsafe.Pointer
	surf        unsafe.Pointer
	ctx         unsafe.Pointer

	width, height int
}

var _ backend.Backend = (*Backend)(nil)

func (e *Error) Error() string {
	if e.Code == 0 {
		return fmt.Sprintf("egl: %s failed", e.Op)
	}
	return fmt.Sprintf("egl: %s failed: 0x%x", e.Op, e.Code)
}

func newBackend(c api, surf, wlDisp unsafe.Pointer) (*Backend, error) {
	b := &Backend{c: c, width: initialWidth, height: initialHeight}
	if err := b.init(surf, wlDisp); err != nil {
		b.Release()
		return nil, err
	}
	logger.Get().Debug("egl: context created", "version", c.GetString(_GL_VERSION))
	return b, nil
}

// init acquires the native resources in order, stopping at the first
// failure.
func (b *Backend) init(surf, wlDisp unsafe.Pointer) error {
	c := b.c
	b.wlDisp = wlDisp
	if b.wlDisp == nil {
		b.wlDisp = c.Connect()
		if b.wlDisp == nil {
			return &Error{Op: "wl_display_connect"}
		}
		b.ownDisp = true
	}
	b.disp = c.GetDisplay(b.wlDisp)
	if b.disp == nil {
		return b.eglError("eglGetDisplay")
	}
	if !c.Initialize(b.disp) {
		return b.eglError("eglInitialize")
	}
	b.initialized = true
	b.config = c.ChooseConfig(b.disp, configAttribs)
	if b.config == nil {
		return b.eglError("eglChooseConfig")
	}
	if surf != nil {
		b.eglWin = c.CreateWindow(surf, b.width, b.height)
	}
	if b.eglWin == nil {
		return &Error{Op: "wl_egl_window_create"}
	}
	b.surf = c.CreateWindowSurface(b.disp, b.config, b.eglWin)
	if b.surf == nil {
		return b.eglError("eglCreateWindowSurface")
	}
	b.ctx = c.CreateContext(b.disp, b.config, contextAttribs)
	if b.ctx == nil {
		return b.eglError("eglCreateContext")
	}
	if !c.MakeCurrent(b.disp, b.surf, b.ctx) {
		return b.eglError("eglMakeCurrent")
	}
	return nil
}

func (b *Backend) eglError(op string) error {
	return &Error{Op: op, Code: b.c.GetError()}
}

func (b *Backend) Name() string { return "egl" }

func (b *Backend) BeginDraw() error {
	if b.c.DispatchPending(b.wlDisp) < 0 {
		return &Error{Op: "wl_display_dispatch_pending"}
	}
	b.c.ClearColor(1, 1, 1, 1)
	b.c.Clear(_GL_COLOR_BUFFER_BIT)
	return nil
}

func (b *Backend) Flush() error {
	if !b.c.SwapBuffers(b.disp, b.surf) {
		return b.eglError("eglSwapBuffers")
	}
	return nil
}

// DisplaySize returns the size the surface was created with.
func (b *Backend) DisplaySize() (uint32, uint32) {
	return uint32(b.width), uint32(b.height)
}

func (b *Backend) Clear(c paint.Color) {
	s := paint.Solid(c)
	b.c.ClearColor(s.R, s.G, s.B, s.A)
	b.c.Clear(_GL_COLOR_BUFFER_BIT)
}

func (b *Backend) Ellipse(geom.Point2[float32], float32, paint.Color) {
	backend.NotImplemented("egl", "ellipse")
}

func (b *Backend) Rectangle(_, _ geom.Point2[float32], _ paint.Color) {
	backend.NotImplemented("egl", "rectangle")
}

func (b *Backend) RoundedRectangle(_, _ geom.Point2[float32], _ float32, _ paint.Color) {
	backend.NotImplemented("egl", "rounded rectangle")
}

func (b *Backend) Line(_, _ geom.Point2[float32], _ float32, _ paint.Color) {
	backend.NotImplemented("egl", "line")
}

// Release destroys whatever init managed to acquire.
func (b *Backend) Release() {
	c := b.c
	if c == nil {
		return
	}
	if b.ctx != nil {
		c.MakeCurrent(b.disp, nil, nil)
		c.DestroyContext(b.disp, b.ctx)
		b.ctx = nil
	}
	if b.surf != nil {
		c.DestroySurface(b.disp, b.surf)
		b.surf = nil
	}
	if b.eglWin != nil {
		c.DestroyWindow(b.eglWin)
		b.eglWin = nil
	}
	if b.initialized {
		c.Terminate(b.disp)
		b.initialized = false
	}
	if b.ownDisp {
		c.Disconnect(b.wlDisp)
		b.ownDisp = false
	}
	b.c = nil
}
