// SPDX-License-Identifier: Unlicense OR MIT

package raster

import (
	"image"
	"image/draw"
)

// Headless is an in-memory window. The last presented frame is
// available from Screenshot.
type Headless struct {
	size  image.Point
	frame *image.RGBA
}

type headlessSurface struct {
	w   *Headless
	img *image.RGBA
}

// NewHeadless creates a headless window.
func NewHeadless(width, height int) *Headless {
	return &Headless{size: image.Pt(width, height)}
}

// Resize changes the window size. Like a real window, the backend
// notices on its next frame.
func (w *Headless) Resize(width, height int) {
	w.size = image.Pt(width, height)
}

// Screenshot returns a copy of the last presented frame, or nil if no
// frame was presented.
func (w *Headless) Screenshot() *image.RGBA {
	if w.frame == nil {
		return nil
	}
	img := image.NewRGBA(w.frame.Bounds())
	copy(img.Pix, w.frame.Pix)
	return img
}

func (w *Headless) Size() (int, int, error) {
	return w.size.X, w.size.Y, nil
}

func (w *Headless) NewSurface(width, height int) (Surface, error) {
	return &headlessSurface{w: w, img: image.NewRGBA(image.Rect(0, 0, width, height))}, nil
}

func (w *Headless) Release() {
	w.frame = nil
}

func (s *headlessSurface) Image() draw.Image {
	return s.img
}

func (s *headlessSurface) Present() error {
	if s.w.frame == nil || s.w.frame.Bounds() != s.img.Bounds() {
		s.w.frame = image.NewRGBA(s.img.Bounds())
	}
	copy(s.w.frame.Pix, s.img.Pix)
	return nil
}

func (s *headlessSurface) Release() {
	s.img = nil
}
