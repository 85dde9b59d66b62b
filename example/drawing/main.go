// SPDX-License-Identifier: Unlicense OR MIT

package main

// Draws every primitive into an X11 window.

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/xevent"
	"github.com/BurntSushi/xgbutil/xwindow"

	"github.com/Lattexshz/Bly/app"
	"github.com/Lattexshz/Bly/geom"
	"github.com/Lattexshz/Bly/handle"
	"github.com/Lattexshz/Bly/paint"
)

var verbose = flag.Bool("v", false, "log backend diagnostics")

type window struct {
	w *xwindow.Window
}

func (w window) RawWindowHandle() handle.Raw {
	return handle.Xlib{Window: uintptr(w.w.Id)}
}

func main() {
	flag.Parse()
	if *verbose {
		app.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}
	if err := loop(); err != nil {
		log.Fatal(err)
	}
}

func loop() error {
	X, err := xgbutil.NewConn()
	if err != nil {
		return err
	}
	win, err := xwindow.Generate(X)
	if err != nil {
		return err
	}
	win.Create(X.RootWin(), 0, 0, 520, 520,
		xproto.CwBackPixel|xproto.CwEventMask,
		0xffffff, xproto.EventMaskExposure|xproto.EventMaskStructureNotify)
	if err := ewmh.WmNameSet(X, win.Id, "Bly"); err != nil {
		log.Printf("set window title: %v", err)
	}
	win.WMGracefulClose(func(w *xwindow.Window) {
		xevent.Detach(w.X, w.Id)
		xevent.Quit(w.X)
		w.Destroy()
	})
	win.Map()

	cnv, err := app.NewCanvas(window{win})
	if err != nil {
		return err
	}
	defer cnv.Release()

	redraw := func() {
		if err := cnv.Draw(scene); err != nil {
			log.Printf("draw: %v", err)
		}
	}
	xevent.ExposeFun(func(X *xgbutil.XUtil, e xevent.ExposeEvent) {
		if e.Count == 0 {
			redraw()
		}
	}).Connect(X, win.Id)
	xevent.ConfigureNotifyFun(func(X *xgbutil.XUtil, e xevent.ConfigureNotifyEvent) {
		redraw()
	}).Connect(X, win.Id)
	xevent.Main(X)
	return nil
}

func scene(p *app.Painter) {
	w, _ := p.Size()
	p.Clear(paint.WhiteGray)
	p.Rectangle(geom.Pt2[float32](10, 10), geom.Pt2[float32](100, 100), paint.Red)
	p.Rectangle(geom.Pt2[float32](120, 10), geom.Pt2[float32](100, 100), paint.Green)
	p.Rectangle(geom.Pt2[float32](230, 10), geom.Pt2[float32](100, 100), paint.Blue)
	p.RoundedRectangle(geom.Pt2[float32](10, 130), geom.Pt2[float32](210, 100), 20, paint.Gray)
	p.Ellipse(geom.Pt2[float32](230, 130), 50, paint.RGBA{R: 1, G: 0.6, A: 1})
	p.Rectangle(geom.Pt2[float32](10, 250), geom.Pt2[float32](float32(w)-20, 60), paint.Gradient{
		Stops: []paint.Color{paint.Red, paint.Green, paint.Blue},
		Kind: paint.Linear{
			From: geom.Pt2[float32](10, 0),
			To:   geom.Pt2[float32](float32(w)-10, 0),
		},
	})
	if c, ok := paint.Lookup("cornflowerblue"); ok {
		p.Line(geom.Pt2[float32](10, 330), geom.Pt2[float32](float32(w)-10, 480), 4, c)
	}
}
