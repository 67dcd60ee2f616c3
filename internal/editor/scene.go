package editor

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"slices"

	"github.com/example/paintboard/internal/drawing"
	"github.com/example/paintboard/internal/raster"
)

func hexRGB(c color.RGBA) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// Entries returns the scene objects in drawing order.
func (e *Editor) Entries() []Entry { return e.entries }

// Objects returns the scene objects in drawing order.
func (e *Editor) Objects() []drawing.Object {
	out := make([]drawing.Object, len(e.entries))
	for i, en := range e.entries {
		out[i] = en.Object
	}
	return out
}

// Add validates o and appends it to the scene, returning its identifier.
func (e *Editor) Add(o drawing.Object) (string, error) {
	if err := o.Validate(); err != nil {
		return "", err
	}
	id := newID()
	e.entries = append(e.entries, Entry{ID: id, Object: o})
	e.debugf("object added", "id", id, "object", o.String())
	e.changed()
	return id, nil
}

// Lookup returns the object with the given identifier.
func (e *Editor) Lookup(id string) (drawing.Object, bool) {
	for _, en := range e.entries {
		if en.ID == id {
			return en.Object, true
		}
	}
	return nil, false
}

// Remove deletes the object with the given identifier. Removing a selected
// object clears the selection.
func (e *Editor) Remove(id string) bool {
	i := slices.IndexFunc(e.entries, func(en Entry) bool { return en.ID == id })
	if i < 0 {
		return false
	}
	if e.sel.Contains(e.entries[i].Object) {
		e.sel.Clear()
	}
	e.entries = slices.Delete(e.entries, i, i+1)
	e.changed()
	return true
}

// Selected returns the selected objects.
func (e *Editor) Selected() []drawing.Object { return e.sel.Objects() }

// SelectionRect returns the selection rectangle in document coordinates.
func (e *Editor) SelectionRect() (image.Rectangle, bool) { return e.sel.Rect() }

// Select picks every object hit by r, replacing the selection. It returns
// the number of selected objects.
func (e *Editor) Select(r image.Rectangle) int {
	n := e.sel.Select(r, e.Objects())
	e.debugf("selection set", "rect", r, "selected", n)
	e.changed()
	return n
}

// ClearSelection drops the selection.
func (e *Editor) ClearSelection() {
	e.sel.Clear()
	e.changed()
}

// MoveSelection translates the selected objects and the rectangle by d.
func (e *Editor) MoveSelection(d image.Point) error {
	if e.sel.Empty() {
		return ErrNoSelection
	}
	e.sel.Move(d)
	e.changed()
	return nil
}

// DeleteSelection removes every selected object from the scene and clears
// the selection. It returns the number of objects removed.
func (e *Editor) DeleteSelection() int {
	sel := e.sel.Objects()
	before := len(e.entries)
	e.entries = slices.DeleteFunc(e.entries, func(en Entry) bool {
		return slices.Contains(sel, en.Object)
	})
	e.sel.Clear()
	removed := before - len(e.entries)
	e.debugf("deleted selected objects", "count", removed)
	e.changed()
	return removed
}

// FillSelection paints the raster pixels under the selection rectangle. It
// does not touch vector objects.
func (e *Editor) FillSelection(c color.RGBA) error {
	r, ok := e.sel.Rect()
	if !ok {
		e.debugf("fill selection failed: no area selected")
		return ErrNoSelection
	}
	c.A = 0xff
	n := e.canvas.FillRect(r, c)
	e.debugf("fill selection completed", "rect", r, "pixels", n)
	e.changed()
	return nil
}

// NewDocument clears the scene, the trail and the selection and resets the
// raster to a blank buffer of the current size.
func (e *Editor) NewDocument() {
	w, h := e.canvas.Size()
	e.NewDocumentSize(w, h)
}

// NewDocumentSize is NewDocument with explicit dimensions.
func (e *Editor) NewDocumentSize(w, h int) {
	e.entries = nil
	e.sel.Clear()
	e.shape = pendingShape{}
	e.text = pendingText{}
	e.canvas.Reset(w, h)
	e.debugf("all drawing lists cleared")
}

// Resize changes the document size keeping the overlapping pixels.
func (e *Editor) Resize(w, h int) {
	e.canvas.Resize(w, h)
}

// FlipH mirrors the raster left to right.
func (e *Editor) FlipH() {
	w, h := e.canvas.Size()
	e.debugf("applying flip horizontal")
	e.canvas.FlipHorizontal()
	e.mapObjects(func(p image.Point) image.Point { return raster.FlipPoint(p, w, h, true) })
}

// FlipV mirrors the raster top to bottom.
func (e *Editor) FlipV() {
	w, h := e.canvas.Size()
	e.debugf("applying flip vertical")
	e.canvas.FlipVertical()
	e.mapObjects(func(p image.Point) image.Point { return raster.FlipPoint(p, w, h, false) })
}

// Rotate turns the raster a quarter turn.
func (e *Editor) Rotate(clockwise bool) {
	w, h := e.canvas.Size()
	e.debugf("applying rotate 90 degrees", "clockwise", clockwise)
	e.canvas.Rotate(clockwise)
	e.mapObjects(func(p image.Point) image.Point { return raster.RotatePoint(p, w, h, clockwise) })
}

// mapObjects applies fn to every object point and trail point when object
// transforms are enabled.
func (e *Editor) mapObjects(fn func(image.Point) image.Point) {
	if !e.transformObjects {
		return
	}
	for _, en := range e.entries {
		s := en.Object.Base()
		s.From = fn(s.From)
		s.To = fn(s.To)
	}
	pts := e.canvas.Points()
	for i, p := range pts {
		pts[i] = fn(p)
	}
	e.sel.Clear()
	e.changed()
}

// Flatten renders the raster with every valid object drawn on top at zoom
// one. The result is a new image; the scene is not modified.
func (e *Editor) Flatten() *image.RGBA {
	src := e.canvas.Image()
	out := image.NewRGBA(src.Bounds())
	draw.Draw(out, out.Bounds(), src, src.Bounds().Min, draw.Src)
	for _, en := range e.entries {
		if err := en.Object.Validate(); err != nil {
			e.debugf("skipping invalid object", "state", en.Object.Detail())
			continue
		}
		e.render(out, en.Object)
	}
	return out
}

// drawer is implemented by objects whose rendering can fail.
type drawer interface {
	Draw(dst *image.RGBA) error
}

func (e *Editor) render(dst *image.RGBA, o drawing.Object) {
	d, ok := o.(drawer)
	if !ok {
		o.Render(dst)
		return
	}
	if err := d.Draw(dst); err != nil {
		e.warn("object not rendered", "err", err)
	}
}
