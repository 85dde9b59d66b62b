// SPDX-License-Identifier: Unlicense OR MIT

package dom

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lattexshz/Bly/geom"
	"github.com/Lattexshz/Bly/paint"
)

// fakeValue is a JavaScript object recording its calls into a log
// shared by the whole fake document.
type fakeValue struct {
	name    string
	log     *[]string
	props   map[string]any
	returns map[string]*fakeValue
}

func newFake(name string, log *[]string) *fakeValue {
	return &fakeValue{
		name:    name,
		log:     log,
		props:   make(map[string]any),
		returns: make(map[string]*fakeValue),
	}
}

func (f *fakeValue) Get(name string) value {
	switch v := f.props[name].(type) {
	case *fakeValue:
		return v
	case float64:
		return number(v)
	}
	return undefined{}
}

func (f *fakeValue) Set(name string, v any) {
	if fv, ok := v.(*fakeValue); ok {
		v = fv.name
	}
	*f.log = append(*f.log, fmt.Sprintf("%s.%s = %v", f.name, name, v))
	f.props[name] = v
}

func (f *fakeValue) Call(name string, args ...any) value {
	strs := make([]string, len(args))
	for i, a := range args {
		if fv, ok := a.(*fakeValue); ok {
			a = fv.name
		}
		strs[i] = fmt.Sprint(a)
	}
	*f.log = append(*f.log, fmt.Sprintf("%s.%s(%s)", f.name, name, strings.Join(strs, ", ")))
	if v, ok := f.returns[name]; ok {
		return v
	}
	return undefined{}
}

func (f *fakeValue) Float() float64 { return 0 }
func (f *fakeValue) Truthy() bool   { return true }

type number float64

func (n number) Get(string) value          { return undefined{} }
func (n number) Set(string, any)           {}
func (n number) Call(string, ...any) value { return undefined{} }
func (n number) Float() float64            { return float64(n) }
func (n number) Truthy() bool              { return n != 0 }

type undefined struct{}

func (undefined) Get(string) value          { return undefined{} }
func (undefined) Set(string, any)           {}
func (undefined) Call(string, ...any) value { return undefined{} }
func (undefined) Float() float64            { return 0 }
func (undefined) Truthy() bool              { return false }

type fakeDOM struct {
	log                []string
	window, doc, body  *fakeValue
	canvas, style, ctx *fakeValue
	gradient           *fakeValue
}

// newFakeDOM returns a document without a canvas element.
func newFakeDOM(width, height float64) *fakeDOM {
	d := new(fakeDOM)
	d.window = newFake("window", &d.log)
	d.doc = newFake("document", &d.log)
	d.body = newFake("body", &d.log)
	d.canvas = newFake("canvas", &d.log)
	d.style = newFake("style", &d.log)
	d.ctx = newFake("ctx", &d.log)
	d.gradient = newFake("gradient", &d.log)
	d.window.props["document"] = d.doc
	d.window.props["innerWidth"] = width
	d.window.props["innerHeight"] = height
	d.doc.props["body"] = d.body
	d.doc.returns["createElement"] = d.canvas
	d.canvas.props["style"] = d.style
	d.canvas.returns["getContext"] = d.ctx
	d.ctx.returns["createLinearGradient"] = d.gradient
	return d
}

func (d *fakeDOM) resize(width, height float64) {
	d.window.props["innerWidth"] = width
	d.window.props["innerHeight"] = height
}

func newTestBackend(t *testing.T, d *fakeDOM) *Backend {
	t.Helper()
	b, err := newBackend(d.window, 0)
	require.NoError(t, err)
	d.log = nil
	return b
}

func TestConstruction(t *testing.T) {
	d := newFakeDOM(800, 600)
	_, err := newBackend(d.window, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"document.getElementById(bly_canvas)",
		"document.createElement(canvas)",
		"canvas.id = bly_canvas",
		"body.appendChild(canvas)",
		"canvas.getContext(2d)",
		"canvas.width = 800",
		"canvas.height = 600",
		"style.cssText = width: 800px; height: 600px;",
	}, d.log)
}

func TestExistingCanvas(t *testing.T) {
	d := newFakeDOM(10, 10)
	d.doc.returns["querySelector"] = d.canvas
	_, err := newBackend(d.window, 7)
	require.NoError(t, err)
	assert.Equal(t, `document.querySelector(canvas[data-raw-handle="7"])`, d.log[0])
	assert.NotContains(t, d.log, "document.createElement(canvas)")

	d = newFakeDOM(10, 10)
	d.doc.returns["getElementById"] = d.canvas
	_, err = newBackend(d.window, 0)
	require.NoError(t, err)
	assert.NotContains(t, d.log, "document.createElement(canvas)")
}

func TestNoContext(t *testing.T) {
	d := newFakeDOM(10, 10)
	delete(d.canvas.returns, "getContext")
	_, err := newBackend(d.window, 0)
	assert.EqualError(t, err, "dom: 2d context unavailable")
}

func TestRectanglePassesPointsThrough(t *testing.T) {
	d := newFakeDOM(200, 200)
	b := newTestBackend(t, d)
	require.NoError(t, b.BeginDraw())
	b.Rectangle(geom.Pt2[float32](10, 10), geom.Pt2[float32](100, 100), paint.Red)
	require.NoError(t, b.Flush())
	assert.Equal(t, []string{
		"ctx.beginPath()",
		"ctx.fillStyle = rgba(255, 0, 0, 1)",
		"ctx.fillRect(10, 10, 100, 100)",
		"ctx.fill()",
	}, d.log)
}

func TestClear(t *testing.T) {
	d := newFakeDOM(320, 240)
	b := newTestBackend(t, d)
	b.Clear(paint.WhiteGray)
	b.Clear(paint.WhiteGray)
	b.Clear(paint.Black)
	assert.Equal(t, []string{
		"ctx.fillStyle = rgba(229, 229, 229, 1)",
		"ctx.fillRect(0, 0, 320, 240)",
		"ctx.fillRect(0, 0, 320, 240)",
		"ctx.fillStyle = rgba(0, 0, 0, 1)",
		"ctx.fillRect(0, 0, 320, 240)",
	}, d.log)
}

func TestResize(t *testing.T) {
	d := newFakeDOM(100, 100)
	b := newTestBackend(t, d)
	require.NoError(t, b.BeginDraw())
	require.NoError(t, b.Flush())
	assert.Equal(t, []string{"ctx.beginPath()", "ctx.fill()"}, d.log)

	d.log = nil
	d.resize(300, 150)
	w, h := b.DisplaySize()
	assert.Equal(t, uint32(300), w)
	assert.Equal(t, uint32(150), h)
	assert.Contains(t, d.log, "style.cssText = width: 300px; height: 150px;")

	d.log = nil
	require.NoError(t, b.BeginDraw())
	assert.Equal(t, []string{"ctx.beginPath()"}, d.log)
}

func TestResizeInsideFrame(t *testing.T) {
	d := newFakeDOM(100, 100)
	b := newTestBackend(t, d)
	require.NoError(t, b.BeginDraw())
	b.Clear(paint.Red)
	d.resize(300, 150)
	w, h := b.DisplaySize()
	assert.Equal(t, uint32(100), w)
	assert.Equal(t, uint32(100), h)
	require.NoError(t, b.Flush())
	assert.Equal(t, []string{
		"ctx.beginPath()",
		"ctx.fillStyle = rgba(255, 0, 0, 1)",
		"ctx.fillRect(0, 0, 100, 100)",
		"ctx.fill()",
	}, d.log)

	w, _ = b.DisplaySize()
	assert.Equal(t, uint32(300), w)
}

func TestLine(t *testing.T) {
	d := newFakeDOM(100, 100)
	b := newTestBackend(t, d)
	b.Line(geom.Pt2[float32](1, 2), geom.Pt2[float32](30, 40), 2.5, paint.RGBA{R: 0, G: 0.5, B: 1, A: 0.25})
	assert.Equal(t, []string{
		"ctx.strokeStyle = rgba(0, 128, 255, 0.25)",
		"ctx.lineWidth = 2.5",
		"ctx.beginPath()",
		"ctx.moveTo(1, 2)",
		"ctx.lineTo(30, 40)",
		"ctx.stroke()",
	}, d.log)
}

func TestGradient(t *testing.T) {
	d := newFakeDOM(100, 100)
	b := newTestBackend(t, d)
	g := paint.Gradient{
		Stops: []paint.Color{paint.Red, paint.Green, paint.Blue},
		Kind:  paint.Linear{From: geom.Pt2[float32](0, 0), To: geom.Pt2[float32](100, 0)},
	}
	b.Rectangle(geom.Pt2[float32](0, 0), geom.Pt2[float32](100, 50), g)
	assert.Equal(t, []string{
		"ctx.createLinearGradient(0, 0, 100, 0)",
		"gradient.addColorStop(0, rgba(255, 0, 0, 1))",
		"gradient.addColorStop(0.5, rgba(0, 255, 0, 1))",
		"gradient.addColorStop(1, rgba(0, 0, 255, 1))",
		"ctx.fillStyle = gradient",
		"ctx.fillRect(0, 0, 100, 50)",
	}, d.log)

	// A solid fill after a gradient is assigned again.
	d.log = nil
	b.Rectangle(geom.Pt2[float32](0, 0), geom.Pt2[float32](1, 1), paint.Red)
	assert.Equal(t, "ctx.fillStyle = rgba(255, 0, 0, 1)", d.log[0])
}

func TestCSSColor(t *testing.T) {
	tests := []struct {
		c    paint.RGBA
		want string
	}{
		{paint.RGBA{R: 1, G: 1, B: 1, A: 1}, "rgba(255, 255, 255, 1)"},
		{paint.RGBA{}, "rgba(0, 0, 0, 0)"},
		{paint.RGBA{R: 2, G: -1, B: 0.5, A: 7}, "rgba(255, 0, 128, 1)"},
		{paint.RGBA{A: 0.5}, "rgba(0, 0, 0, 0.5)"},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, cssColor(test.c))
	}
}

func TestUnimplementedPrimitives(t *testing.T) {
	b := newTestBackend(t, newFakeDOM(10, 10))
	p := geom.Pt2[float32](1, 1)
	assert.PanicsWithError(t, "dom: ellipse: not implemented", func() {
		b.Ellipse(p, 3, paint.Red)
	})
	assert.PanicsWithError(t, "dom: rounded rectangle: not implemented", func() {
		b.RoundedRectangle(p, p, 3, paint.Red)
	})
}
