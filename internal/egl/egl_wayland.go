// SPDX-License-Identifier: Unlicense OR MIT

//go:build linux && !android && cgo && !nowayland

package egl

/*
#cgo LDFLAGS: -lwayland-client -lwayland-egl -lEGL -lGLESv2
#cgo CFLAGS: -DWL_EGL_PLATFORM

#include <stdlib.h>
#include <wayland-client.h>
#include <wayland-egl.h>
#include <EGL/egl.h>
#include <GLES2/gl2.h>
*/
import "C"

import "unsafe"

type wlAPI struct{}

// New creates a backend for the wl_surface surf. A nil display makes
// the backend open its own connection to the compositor.
func New(surf, display unsafe.Pointer) (*Backend, error) {
	return newBackend(wlAPI{}, surf, display)
}

func (wlAPI) Connect() unsafe.Pointer {
	return unsafe.Pointer(C.wl_display_connect(nil))
}

func (wlAPI) Disconnect(disp unsafe.Pointer) {
	C.wl_display_disconnect((*C.struct_wl_display)(disp))
}

func (wlAPI) DispatchPending(disp unsafe.Pointer) int {
	return int(C.wl_display_dispatch_pending((*C.struct_wl_display)(disp)))
}

func (wlAPI) CreateWindow(surf unsafe.Pointer, width, height int) unsafe.Pointer {
	return unsafe.Pointer(C.wl_egl_window_create((*C.struct_wl_surface)(surf), C.int(width), C.int(height)))
}

func (wlAPI) DestroyWindow(win unsafe.Pointer) {
	C.wl_egl_window_destroy((*C.struct_wl_egl_window)(win))
}

func (wlAPI) GetDisplay(native unsafe.Pointer) unsafe.Pointer {
	return unsafe.Pointer(C.eglGetDisplay(C.EGLNativeDisplayType(native)))
}

func (wlAPI) Initialize(disp unsafe.Pointer) bool {
	var major, minor C.EGLint
	return C.eglInitialize(C.EGLDisplay(disp), &major, &minor) == C.EGL_TRUE
}

func (wlAPI) ChooseConfig(disp unsafe.Pointer, attribs []int32) unsafe.Pointer {
	var (
		cfg  C.EGLConfig
		ncfg C.EGLint
	)
	if C.eglChooseConfig(C.EGLDisplay(disp), (*C.EGLint)(unsafe.Pointer(&attribs[0])), &cfg, 1, &ncfg) != C.EGL_TRUE || ncfg == 0 {
		return nil
	}
	return unsafe.Pointer(cfg)
}

func (wlAPI) CreateWindowSurface(disp, config, win unsafe.Pointer) unsafe.Pointer {
	attribs := []C.EGLint{C.EGL_NONE}
	return unsafe.Pointer(C.eglCreateWindowSurface(C.EGLDisplay(disp), C.EGLConfig(config), C.EGLNativeWindowType(win), &attribs[0]))
}

func (wlAPI) CreateContext(disp, config unsafe.Pointer, attribs []int32) unsafe.Pointer {
	return unsafe.Pointer(C.eglCreateContext(C.EGLDisplay(disp), C.EGLConfig(config), C.EGLContext(nil), (*C.EGLint)(unsafe.Pointer(&attribs[0]))))
}

func (wlAPI) MakeCurrent(disp, surf, ctx unsafe.Pointer) bool {
	return C.eglMakeCurrent(C.EGLDisplay(disp), C.EGLSurface(surf), C.EGLSurface(surf), C.EGLContext(ctx)) == C.EGL_TRUE
}

func (wlAPI) SwapBuffers(disp, surf unsafe.Pointer) bool {
	return C.eglSwapBuffers(C.EGLDisplay(disp), C.EGLSurface(surf)) == C.EGL_TRUE
}

func (wlAPI) DestroySurface(disp, surf unsafe.Pointer) {
	C.eglDestroySurface(C.EGLDisplay(disp), C.EGLSurface(surf))
}

func (wlAPI) DestroyContext(disp, ctx unsafe.Pointer) {
	C.eglDestroyContext(C.EGLDisplay(disp), C.EGLContext(ctx))
}

func (wlAPI) Terminate(disp unsafe.Pointer) {
	C.eglTerminate(C.EGLDisplay(disp))
	C.eglReleaseThread()
}

func (wlAPI) GetError() int32 {
	return int32(C.eglGetError())
}

func (wlAPI) ClearColor(r, g, b, a float32) {
	C.glClearColor(C.GLfloat(r), C.GLfloat(g), C.GLfloat(b), C.GLfloat(a))
}

func (wlAPI) Clear(mask uint32) {
	C.glClear(C.GLbitfield(mask))
}

func (wlAPI) GetString(name uint32) string {
	return C.GoString((*C.char)(unsafe.Pointer(C.glGetString(C.GLenum(name)))))
}
