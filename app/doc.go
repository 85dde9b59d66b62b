// SPDX-License-Identifier: Unlicense OR MIT

/*
Package app draws 2D shapes into a native window through the drawing
API of the platform.

The window itself, and its event loop, are owned by the caller. A Canvas
is created from the window's raw handle and selects a backend:

	xlib     software rasterizer presenting through X11 pixmaps
	wayland  OpenGL ES 2 over EGL
	win32    Direct2D window render target
	web      2D context of an HTML canvas element

Other handle kinds, and kinds whose backend is not compiled for the
current GOOS, are reported with an error matching ErrUnsupportedPlatform.

# Drawing

Frames are drawn with Canvas.Draw:

	cnv, err := app.NewCanvas(w)
	if err != nil {
		log.Fatal(err)
	}
	defer cnv.Release()
	// On every expose or resize event:
	err = cnv.Draw(func(p *app.Painter) {
		p.Clear(paint.WhiteGray)
		p.Rectangle(geom.Pt2[float32](10, 10), geom.Pt2[float32](100, 100), paint.Red)
	})

The surface of the backend is recreated when the window changes size, so
Painter.Size always reports the size of the current frame.

Only one Canvas may be created per process. Creating a second one panics
with ErrCanvasExists.

# Logging

The package is silent by default. SetLogger installs a log/slog logger,
and the BLY_LOG environment variable (debug, info, warn or error) enables
logging to standard error at startup.
*/
package app
