// SPDX-License-Identifier: Unlicense OR MIT

package egl

import (
	"errors"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lattexshz/Bly/geom"
	"github.com/Lattexshz/Bly/internal/backend"
	"github.com/Lattexshz/Bly/paint"
)

// fakeAPI records the native calls and fails the one named by fail.
type fakeAPI struct {
	calls     []string
	fail      string
	errCode   int32
	clear     [4]float32
	dispatchN int
}

func (f *fakeAPI) ptr(call string) unsafe.Pointer {
	f.calls = append(f.calls, call)
	if call == f.fail {
		return nil
	}
	return unsafe.Pointer(new(byte))
}

func (f *fakeAPI) ok(call string) bool {
	f.calls = append(f.calls, call)
	return call != f.fail
}

func (f *fakeAPI) Connect() unsafe.Pointer                  { return f.ptr("connect") }
func (f *fakeAPI) Disconnect(unsafe.Pointer)                { f.calls = append(f.calls, "disconnect") }
func (f *fakeAPI) DestroyWindow(unsafe.Pointer)             { f.calls = append(f.calls, "destroyWindow") }
func (f *fakeAPI) GetDisplay(unsafe.Pointer) unsafe.Pointer { return f.ptr("getDisplay") }
func (f *fakeAPI) Initialize(unsafe.Pointer) bool           { return f.ok("initialize") }
func (f *fakeAPI) Terminate(unsafe.Pointer)                 { f.calls = append(f.calls, "terminate") }
func (f *fakeAPI) GetError() int32                          { return f.errCode }
func (f *fakeAPI) Clear(mask uint32)                        { f.calls = append(f.calls, "glClear") }
func (f *fakeAPI) GetString(uint32) string                  { return "OpenGL ES 2.0 fake" }

func (f *fakeAPI) DispatchPending(unsafe.Pointer) int {
	f.calls = append(f.calls, "dispatch")
	f.dispatchN++
	if f.fail == "dispatch" {
		return -1
	}
	return 0
}

func (f *fakeAPI) CreateWindow(_ unsafe.Pointer, w, h int) unsafe.Pointer {
	if w != initialWidth || h != initialHeight {
		panic("unexpected window size")
	}
	return f.ptr("createWindow")
}

func (f *fakeAPI) ChooseConfig(_ unsafe.Pointer, attribs []int32) unsafe.Pointer {
	if attribs[len(attribs)-1] != _EGL_NONE {
		panic("unterminated attribute list")
	}
	return f.ptr("chooseConfig")
}

func (f *fakeAPI) CreateWindowSurface(_, _, _ unsafe.Pointer) unsafe.Pointer {
	return f.ptr("createWindowSurface")
}

func (f *fakeAPI) CreateContext(_, _ unsafe.Pointer, attribs []int32) unsafe.Pointer {
	if attribs[0] != _EGL_CONTEXT_CLIENT_VERSION || attribs[1] != 2 {
		panic("unexpected context version")
	}
	return f.ptr("createContext")
}

func (f *fakeAPI) MakeCurrent(_, surf, _ unsafe.Pointer) bool {
	if surf == nil {
		f.calls = append(f.calls, "releaseCurrent")
		return true
	}
	return f.ok("makeCurrent")
}

func (f *fakeAPI) SwapBuffers(_, _ unsafe.Pointer) bool { return f.ok("swapBuffers") }

func (f *fakeAPI) DestroySurface(_, _ unsafe.Pointer) {
	f.calls = append(f.calls, "destroySurface")
}

func (f *fakeAPI) DestroyContext(_, _ unsafe.Pointer) {
	f.calls = append(f.calls, "destroyContext")
}

func (f *fakeAPI) ClearColor(r, g, b, a float32) {
	f.clear = [4]float32{r, g, b, a}
	f.calls = append(f.calls, "glClearColor")
}

var surface = unsafe.Pointer(new(byte))

var construction = []string{
	"connect",
	"getDisplay",
	"initialize",
	"chooseConfig",
	"createWindow",
	"createWindowSurface",
	"createContext",
	"makeCurrent",
}

func TestConstructionOrder(t *testing.T) {
	f := new(fakeAPI)
	b, err := newBackend(f, surface, nil)
	require.NoError(t, err)
	assert.Equal(t, construction, f.calls)

	f.calls = nil
	b.Release()
	b.Release()
	assert.Equal(t, []string{
		"releaseCurrent",
		"destroyContext",
		"destroySurface",
		"destroyWindow",
		"terminate",
		"disconnect",
	}, f.calls)
}

func TestAdoptedDisplay(t *testing.T) {
	f := new(fakeAPI)
	b, err := newBackend(f, surface, unsafe.Pointer(new(byte)))
	require.NoError(t, err)
	assert.Equal(t, construction[1:], f.calls)
	f.calls = nil
	b.Release()
	assert.NotContains(t, f.calls, "disconnect")
}

func TestConstructionAborts(t *testing.T) {
	for i, step := range construction {
		t.Run(step, func(t *testing.T) {
			f := &fakeAPI{fail: step, errCode: 0x3003}
			_, err := newBackend(f, surface, nil)
			require.Error(t, err)
			var eerr *Error
			require.True(t, errors.As(err, &eerr))
			// No step after the failing one runs.
			assert.Equal(t, construction[:i+1], f.calls[:i+1])
			for _, later := range construction[i+1:] {
				assert.NotContains(t, f.calls, later)
			}
			// Everything acquired before is released.
			if i > 0 {
				assert.Contains(t, f.calls, "disconnect")
			}
			if i > 2 {
				assert.Contains(t, f.calls, "terminate")
			}
		})
	}
}

func TestErrorCode(t *testing.T) {
	f := &fakeAPI{fail: "chooseConfig", errCode: 0x3009}
	_, err := newBackend(f, surface, nil)
	assert.EqualError(t, err, "egl: eglChooseConfig failed: 0x3009")

	f = &fakeAPI{fail: "connect"}
	_, err = newBackend(f, surface, nil)
	assert.EqualError(t, err, "egl: wl_display_connect failed")

	_, err = newBackend(new(fakeAPI), nil, nil)
	assert.EqualError(t, err, "egl: wl_egl_window_create failed")
}

func TestFrame(t *testing.T) {
	f := new(fakeAPI)
	b, err := newBackend(f, surface, nil)
	require.NoError(t, err)
	f.calls = nil

	require.NoError(t, b.BeginDraw())
	assert.Equal(t, [4]float32{1, 1, 1, 1}, f.clear)
	b.Clear(paint.Red)
	assert.Equal(t, [4]float32{1, 0, 0, 1}, f.clear)
	require.NoError(t, b.Flush())
	assert.Equal(t, []string{
		"dispatch", "glClearColor", "glClear",
		"glClearColor", "glClear",
		"swapBuffers",
	}, f.calls)

	// Empty frames are fine too.
	require.NoError(t, b.BeginDraw())
	require.NoError(t, b.Flush())
	assert.Equal(t, 2, f.dispatchN)

	w, h := b.DisplaySize()
	assert.Equal(t, uint32(initialWidth), w)
	assert.Equal(t, uint32(initialHeight), h)
}

func TestFrameErrors(t *testing.T) {
	f := new(fakeAPI)
	b, err := newBackend(f, surface, nil)
	require.NoError(t, err)

	f.fail = "swapBuffers"
	f.errCode = 0x300d
	assert.EqualError(t, b.Flush(), "egl: eglSwapBuffers failed: 0x300d")

	f.fail = "dispatch"
	assert.EqualError(t, b.BeginDraw(), "egl: wl_display_dispatch_pending failed")
}

func TestUnimplementedPrimitives(t *testing.T) {
	b, err := newBackend(new(fakeAPI), surface, nil)
	require.NoError(t, err)
	p := geom.Pt2[float32](1, 1)
	ops := map[string]func(){
		"egl: ellipse: not implemented":           func() { b.Ellipse(p, 1, paint.Red) },
		"egl: rectangle: not implemented":         func() { b.Rectangle(p, p, paint.Red) },
		"egl: rounded rectangle: not implemented": func() { b.RoundedRectangle(p, p, 1, paint.Red) },
		"egl: line: not implemented":              func() { b.Line(p, p, 1, paint.Red) },
	}
	for msg, op := range ops {
		assert.PanicsWithError(t, msg, op)
	}
	func() {
		defer func() {
			err := recover().(error)
			assert.True(t, errors.Is(err, backend.ErrNotImplemented))
		}()
		b.Line(p, p, 1, paint.Blue)
	}()
}
