// SPDX-License-Identifier: Unlicense OR MIT

package d2d

import (
	"math"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/Lattexshz/Bly/geom"
	"github.com/Lattexshz/Bly/paint"
)

var (
	d2d1               = windows.NewLazySystemDLL("d2d1.dll")
	_D2D1CreateFactory = d2d1.NewProc("D2D1CreateFactory")

	user32         = windows.NewLazySystemDLL("user32.dll")
	_GetClientRect = user32.NewProc("GetClientRect")
)

var _IID_ID2D1Factory = windows.GUID{
	Data1: 0x06152247,
	Data2: 0x6f50,
	Data3: 0x465a,
	Data4: [8]byte{0x92, 0x45, 0x11, 0x8b, 0xfd, 0x3b, 0x60, 0x07},
}

// Vtable slots, counted from IUnknown.
const (
	_IUnknown_Release = 2

	_ID2D1Factory_CreateStrokeStyle      = 11
	_ID2D1Factory_CreateHwndRenderTarget = 14

	_ID2D1RenderTarget_CreateSolidColorBrush        = 8
	_ID2D1RenderTarget_CreateGradientStopCollection = 9
	_ID2D1RenderTarget_CreateLinearGradientBrush    = 10
	_ID2D1RenderTarget_DrawLine                     = 15
	_ID2D1RenderTarget_FillRectangle                = 17
	_ID2D1RenderTarget_FillRoundedRectangle         = 19
	_ID2D1RenderTarget_FillEllipse                  = 21
	_ID2D1RenderTarget_Clear                        = 47
	_ID2D1RenderTarget_BeginDraw                    = 48
	_ID2D1RenderTarget_EndDraw                      = 49

	_D2D1_FACTORY_TYPE_SINGLE_THREADED = 0
	_D2D1_CAP_STYLE_ROUND              = 2
	_D2D1_CAP_STYLE_TRIANGLE           = 3
	_D2D1_GAMMA_2_2                    = 0
	_D2D1_EXTEND_MODE_CLAMP            = 0
)

type comObject struct {
	vtbl *[64]uintptr
}

type _D2D1_COLOR_F struct {
	R, G, B, A float32
}

type _D2D1_RECT_F struct {
	Left, Top, Right, Bottom float32
}

type _D2D1_ROUNDED_RECT struct {
	Rect             _D2D1_RECT_F
	RadiusX, RadiusY float32
}

type _D2D1_ELLIPSE struct {
	X, Y             float32
	RadiusX, RadiusY float32
}

type _D2D1_GRADIENT_STOP struct {
	Position float32
	Color    _D2D1_COLOR_F
}

type _D2D1_LINEAR_GRADIENT_BRUSH_PROPERTIES struct {
	StartX, StartY float32
	EndX, EndY     float32
}

type _D2D1_STROKE_STYLE_PROPERTIES struct {
	StartCap   uint32
	EndCap     uint32
	DashCap    uint32
	LineJoin   uint32
	MiterLimit float32
	DashStyle  uint32
	DashOffset float32
}

type _D2D1_RENDER_TARGET_PROPERTIES struct {
	Type       uint32
	Format     uint32
	AlphaMode  uint32
	DpiX, DpiY float32
	Usage      uint32
	MinLevel   uint32
}

type _D2D1_HWND_RENDER_TARGET_PROPERTIES struct {
	Hwnd           uintptr
	Width, Height  uint32
	PresentOptions uint32
}

type _RECT struct {
	Left, Top, Right, Bottom int32
}

type comFactory struct {
	obj *comObject
}

type comTarget struct {
	obj *comObject
}

// New returns a backend drawing into the window hwnd.
func New(hwnd uintptr) (*Backend, error) {
	var f *comObject
	r, _, _ := _D2D1CreateFactory.Call(
		_D2D1_FACTORY_TYPE_SINGLE_THREADED,
		uintptr(unsafe.Pointer(&_IID_ID2D1Factory)),
		0, // pFactoryOptions
		uintptr(unsafe.Pointer(&f)),
	)
	if failed(r) {
		return nil, HRESULT(r)
	}
	return newBackend(&comFactory{obj: f}, hwnd, getClientSize)
}

func getClientSize(hwnd uintptr) (uint32, uint32, error) {
	var r _RECT
	ok, _, err := _GetClientRect.Call(hwnd, uintptr(unsafe.Pointer(&r)))
	if ok == 0 {
		return 0, 0, err
	}
	return uint32(r.Right - r.Left), uint32(r.Bottom - r.Top), nil
}

func failed(r uintptr) bool {
	return int32(r) < 0
}

func (o *comObject) call(slot int, args ...uintptr) uintptr {
	r, _, _ := syscall.SyscallN(o.vtbl[slot], append([]uintptr{uintptr(unsafe.Pointer(o))}, args...)...)
	return r
}

func (o *comObject) Release() {
	o.call(_IUnknown_Release)
}

func (f *comFactory) CreateRenderTarget(hwnd uintptr, width, height uint32) (renderTarget, error) {
	var props _D2D1_RENDER_TARGET_PROPERTIES
	hprops := _D2D1_HWND_RENDER_TARGET_PROPERTIES{Hwnd: hwnd, Width: width, Height: height}
	var t *comObject
	r := f.obj.call(_ID2D1Factory_CreateHwndRenderTarget,
		uintptr(unsafe.Pointer(&props)),
		uintptr(unsafe.Pointer(&hprops)),
		uintptr(unsafe.Pointer(&t)),
	)
	if failed(r) {
		return nil, HRESULT(r)
	}
	return &comTarget{obj: t}, nil
}

func (f *comFactory) CreateLineStyle() (resource, error) {
	props := _D2D1_STROKE_STYLE_PROPERTIES{
		StartCap:   _D2D1_CAP_STYLE_ROUND,
		EndCap:     _D2D1_CAP_STYLE_TRIANGLE,
		MiterLimit: 10,
	}
	var s *comObject
	r := f.obj.call(_ID2D1Factory_CreateStrokeStyle,
		uintptr(unsafe.Pointer(&props)),
		0, // dashes
		0, // dashesCount
		uintptr(unsafe.Pointer(&s)),
	)
	if failed(r) {
		return nil, HRESULT(r)
	}
	return s, nil
}

func (f *comFactory) Release() {
	f.obj.Release()
}

func (t *comTarget) BeginDraw() {
	t.obj.call(_ID2D1RenderTarget_BeginDraw)
}

func (t *comTarget) EndDraw() error {
	r := t.obj.call(_ID2D1RenderTarget_EndDraw, 0, 0)
	if failed(r) {
		return HRESULT(r)
	}
	return nil
}

func (t *comTarget) Clear(c paint.RGBA) {
	col := colorF(c)
	t.obj.call(_ID2D1RenderTarget_Clear, uintptr(unsafe.Pointer(&col)))
}

func (t *comTarget) CreateSolidBrush(c paint.RGBA) (resource, error) {
	col := colorF(c)
	var br *comObject
	r := t.obj.call(_ID2D1RenderTarget_CreateSolidColorBrush,
		uintptr(unsafe.Pointer(&col)),
		0, // brushProperties
		uintptr(unsafe.Pointer(&br)),
	)
	if failed(r) {
		return nil, HRESULT(r)
	}
	return br, nil
}

func (t *comTarget) CreateLinearBrush(from, to geom.Point2[float32], stops []paint.Stop) (resource, error) {
	dstops := make([]_D2D1_GRADIENT_STOP, len(stops))
	for i, s := range stops {
		dstops[i] = _D2D1_GRADIENT_STOP{Position: s.Offset, Color: colorF(s.Color)}
	}
	var coll *comObject
	r := t.obj.call(_ID2D1RenderTarget_CreateGradientStopCollection,
		uintptr(unsafe.Pointer(&dstops[0])),
		uintptr(len(dstops)),
		_D2D1_GAMMA_2_2,
		_D2D1_EXTEND_MODE_CLAMP,
		uintptr(unsafe.Pointer(&coll)),
	)
	if failed(r) {
		return nil, HRESULT(r)
	}
	defer coll.Release()
	props := _D2D1_LINEAR_GRADIENT_BRUSH_PROPERTIES{
		StartX: from.X, StartY: from.Y,
		EndX: to.X, EndY: to.Y,
	}
	var br *comObject
	r = t.obj.call(_ID2D1RenderTarget_CreateLinearGradientBrush,
		uintptr(unsafe.Pointer(&props)),
		0, // brushProperties
		uintptr(unsafe.Pointer(coll)),
		uintptr(unsafe.Pointer(&br)),
	)
	if failed(r) {
		return nil, HRESULT(r)
	}
	return br, nil
}

func (t *comTarget) FillRectangle(r geom.Rect[float32], b resource) {
	rect := rectF(r)
	t.obj.call(_ID2D1RenderTarget_FillRectangle, uintptr(unsafe.Pointer(&rect)), objPtr(b))
}

func (t *comTarget) FillRoundedRectangle(r geom.Rect[float32], radius float32, b resource) {
	rr := _D2D1_ROUNDED_RECT{Rect: rectF(r), RadiusX: radius, RadiusY: radius}
	t.obj.call(_ID2D1RenderTarget_FillRoundedRectangle, uintptr(unsafe.Pointer(&rr)), objPtr(b))
}

func (t *comTarget) FillEllipse(center geom.Point2[float32], rx, ry float32, b resource) {
	e := _D2D1_ELLIPSE{X: center.X, Y: center.Y, RadiusX: rx, RadiusY: ry}
	t.obj.call(_ID2D1RenderTarget_FillEllipse, uintptr(unsafe.Pointer(&e)), objPtr(b))
}

func (t *comTarget) DrawLine(p1, p2 geom.Point2[float32], b resource, width float32, style resource) {
	// D2D1_POINT_2F is passed by value in a single register.
	t.obj.call(_ID2D1RenderTarget_DrawLine,
		point2F(p1),
		point2F(p2),
		objPtr(b),
		uintptr(math.Float32bits(width)),
		objPtr(style),
	)
}

func (t *comTarget) Release() {
	t.obj.Release()
}

func objPtr(r resource) uintptr {
	return uintptr(unsafe.Pointer(r.(*comObject)))
}

func colorF(c paint.RGBA) _D2D1_COLOR_F {
	return _D2D1_COLOR_F{R: c.R, G: c.G, B: c.B, A: c.A}
}

func rectF(r geom.Rect[float32]) _D2D1_RECT_F {
	return _D2D1_RECT_F{Left: r.Min.X, Top: r.Min.Y, Right: r.Max.X, Bottom: r.Max.Y}
}

func point2F(p geom.Point2[float32]) uintptr {
	return uintptr(math.Float32bits(p.Y))<<32 | uintptr(math.Float32bits(p.X))
}
