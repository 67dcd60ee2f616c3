package editor

import (
	"image"
	"strings"

	"github.com/example/paintboard/internal/drawing"
)

// PointerDown handles a primary button press at screen position (x, y).
func (e *Editor) PointerDown(x, y int) {
	p := e.canvas.ActualPoint(image.Pt(x, y))
	if e.text.active {
		e.commitPendingText()
		return
	}
	switch e.mode {
	case drawing.ModeSelection:
		e.sel.Press(p)
		if e.sel.Dragging() {
			e.debugf("entering selection drag", "at", p)
		} else {
			e.debugf("starting new selection", "at", p)
		}
	case drawing.ModeFillBucket:
		e.floodFill(p)
	case drawing.ModePoint:
		e.canvas.AddPoint(p, e.strokeColor)
		e.debugf("point added", "at", p)
	case drawing.ModeEraser:
		e.canvas.Erase(p, e.eraserSize)
	case drawing.ModeLine, drawing.ModeCircle, drawing.ModeRectangle:
		e.shape = pendingShape{active: true, start: p, end: p}
		e.debugf("starting shape", "at", p)
	case drawing.ModeText:
		e.text = pendingText{active: true, at: p}
		e.debugf("starting text", "at", p)
	}
	e.changed()
}

// PointerDrag handles motion with the primary button held.
func (e *Editor) PointerDrag(x, y int) {
	p := e.canvas.ActualPoint(image.Pt(x, y))
	switch e.mode {
	case drawing.ModeSelection:
		e.sel.Drag(p)
	case drawing.ModePoint:
		e.canvas.AddPoint(p, e.strokeColor)
	case drawing.ModeEraser:
		e.canvas.Erase(p, e.eraserSize)
	case drawing.ModeLine, drawing.ModeCircle, drawing.ModeRectangle:
		if !e.shape.active {
			return
		}
		e.shape.end = p
	default:
		return
	}
	e.changed()
}

// PointerUp handles the primary button release.
func (e *Editor) PointerUp(x, y int) {
	p := e.canvas.ActualPoint(image.Pt(x, y))
	switch e.mode {
	case drawing.ModeSelection:
		n := e.sel.Release(p, e.Objects())
		if n == 0 {
			e.debugf("selection ended: no objects selected")
		} else {
			e.debugf("selection ended", "selected", n)
		}
	case drawing.ModeLine, drawing.ModeCircle, drawing.ModeRectangle:
		if !e.shape.active {
			return
		}
		e.shape.end = p
		obj := e.pendingObject()
		e.shape = pendingShape{}
		if _, err := e.Add(obj); err != nil {
			e.debugf("object creation failed validation", "err", err, "state", obj.Detail())
		}
	default:
		return
	}
	e.changed()
}

// pendingObject builds the object the current drag would commit.
func (e *Editor) pendingObject() drawing.Object {
	a, b := e.shape.start, e.shape.end
	switch e.mode {
	case drawing.ModeCircle:
		return drawing.NewCircle(a, b, e.strokeColor, e.stroke, e.fill, e.fillColor)
	case drawing.ModeRectangle:
		return drawing.NewRectangle(a, b, e.strokeColor, e.stroke, e.fill, e.fillColor)
	}
	return drawing.NewLine(a, b, e.strokeColor, e.stroke)
}

// PendingText returns the anchor and buffer of text being typed.
func (e *Editor) PendingText() (at image.Point, text string, ok bool) {
	return e.text.at, e.text.text, e.text.active
}

// UpdateText replaces the buffer of the text being typed.
func (e *Editor) UpdateText(s string) {
	if !e.text.active {
		return
	}
	e.text.text = s
	e.changed()
}

// CommitText finishes the pending text with s. It reports whether a text
// object was added; blank or invalid text is discarded.
func (e *Editor) CommitText(s string) bool {
	if !e.text.active {
		return false
	}
	e.text.text = s
	return e.commitPendingText()
}

// CancelText discards the pending text.
func (e *Editor) CancelText() {
	e.text = pendingText{}
	e.changed()
}

func (e *Editor) commitPendingText() bool {
	t := e.text
	e.text = pendingText{}
	defer e.changed()
	if strings.TrimSpace(t.text) == "" {
		return false
	}
	obj := drawing.NewText(t.at, e.strokeColor, t.text, e.fontSize)
	if _, err := e.Add(obj); err != nil {
		e.debugf("text failed validation on finalize", "err", err)
		return false
	}
	e.debugf("text object added")
	return true
}

func (e *Editor) floodFill(p image.Point) {
	if !p.In(e.canvas.Bounds()) {
		e.debugf("fill location is outside image bounds", "at", p)
		return
	}
	boundary := e.Flatten()
	if boundary.RGBAAt(p.X, p.Y) == e.fillColor {
		e.debugf("fill target color already matches replacement color")
		return
	}
	n := e.canvas.Fill(p, e.fillColor, boundary)
	e.debugf("flood fill finished", "at", p, "pixels", n)
}
