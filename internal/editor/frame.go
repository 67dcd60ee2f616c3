package editor

import (
	"image"
	"image/color"
	"image/draw"

	xdraw "golang.org/x/image/draw"

	"github.com/example/paintboard/internal/drawing"
	"github.com/example/paintboard/internal/render"
)

var (
	selectionDash = color.RGBA{0, 0, 0, 0xff}
	previewColor  = color.RGBA{0x80, 0x80, 0x80, 0xff}
)

// Frame composes what the window shows: the flattened document scaled by
// the zoom factor, the outline of a shape being dragged out, pending text
// and the dashed selection rectangle.
func (e *Editor) Frame() *image.RGBA {
	flat := e.Flatten()
	if e.text.active && e.text.text != "" {
		if err := render.Text(flat, e.text.at, e.text.text+"|", e.strokeColor, e.fontSize); err != nil {
			e.debugf("pending text not drawn", "err", err)
		}
	}
	zoom := e.canvas.Zoom()
	b := flat.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, int(float64(b.Dx())*zoom), int(float64(b.Dy())*zoom)))
	if zoom == 1 {
		draw.Draw(dst, dst.Bounds(), flat, b.Min, draw.Src)
	} else {
		xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), flat, b, draw.Src, nil)
	}

	if e.shape.active && e.shape.start != e.shape.end {
		e.drawPreview(dst)
	}
	if e.text.active && e.text.text == "" {
		at := e.canvas.ScreenPoint(e.text.at)
		render.Line(dst, at.X, at.Y-int(float64(e.fontSize)*zoom), at.X, at.Y, previewColor, 1)
	}
	if r, ok := e.sel.Rect(); ok {
		render.DashedRect(dst, e.canvas.ScreenRect(r), 5, selectionDash, nil)
	}
	return dst
}

// drawPreview outlines the pending shape in screen space with a one pixel
// pen.
func (e *Editor) drawPreview(dst *image.RGBA) {
	a := e.canvas.ScreenPoint(e.shape.start)
	b := e.canvas.ScreenPoint(e.shape.end)
	switch e.mode {
	case drawing.ModeLine:
		render.Line(dst, a.X, a.Y, b.X, b.Y, previewColor, 1)
	case drawing.ModeCircle:
		render.Ellipse(dst, image.Rect(a.X, a.Y, b.X, b.Y), previewColor, 1)
	case drawing.ModeRectangle:
		render.Rect(dst, image.Rect(a.X, a.Y, b.X, b.Y), previewColor, 1)
	}
}
