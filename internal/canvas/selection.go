package canvas

import (
	"image"

	"github.com/example/paintboard/internal/drawing"
)

// Selection tracks the selection rectangle and the objects it picked. The
// rectangle is in document coordinates. When no object is selected the
// rectangle only exists while a rubber band is being dragged out.
type Selection struct {
	rect     image.Rectangle
	active   bool
	origin   image.Point
	last     image.Point
	dragging bool
	objects  []drawing.Object
}

// Rect returns the selection rectangle and whether one exists.
func (s *Selection) Rect() (image.Rectangle, bool) { return s.rect, s.active }

// Objects returns the selected objects in scene order.
func (s *Selection) Objects() []drawing.Object { return s.objects }

// Dragging reports whether a move of the selected objects is in progress.
func (s *Selection) Dragging() bool { return s.dragging }

// Empty reports whether nothing is selected.
func (s *Selection) Empty() bool { return len(s.objects) == 0 }

// Clear drops the rectangle and the selected objects together.
func (s *Selection) Clear() {
	*s = Selection{}
}

// Press starts a gesture at p. A move starts when the rectangle still holds
// the first selected object's anchor and, as an additional condition, p
// itself lies inside the rectangle; a press outside always starts a new
// rubber band even when the anchor test alone would allow a move.
func (s *Selection) Press(p image.Point) {
	if s.active && len(s.objects) > 0 && p.In(s.rect) && s.objects[0].Base().From.In(s.rect) {
		s.dragging = true
		s.last = p
		return
	}
	s.objects = nil
	s.dragging = false
	s.active = true
	s.origin = p
	s.last = p
	s.rect = image.Rectangle{Min: p, Max: p}
}

// Drag continues the gesture. A move translates the rectangle and every
// selected object by the distance since the previous event; a rubber band
// spans the press point and p.
func (s *Selection) Drag(p image.Point) {
	if !s.active {
		return
	}
	if s.dragging {
		d := p.Sub(s.last)
		for _, o := range s.objects {
			o.Translate(d.X, d.Y)
		}
		s.rect = s.rect.Add(d)
		s.last = p
		return
	}
	s.rect = image.Rect(s.origin.X, s.origin.Y, p.X, p.Y)
}

// Release ends the gesture. A rubber band selects every object in objs that
// it hits and is discarded when it hits none. It returns the number of
// selected objects.
func (s *Selection) Release(p image.Point, objs []drawing.Object) int {
	if !s.active {
		return 0
	}
	if s.dragging {
		s.dragging = false
		return len(s.objects)
	}
	return s.Select(image.Rect(s.origin.X, s.origin.Y, p.X, p.Y), objs)
}

// Select replaces the selection with the objects of objs hit by r.
func (s *Selection) Select(r image.Rectangle, objs []drawing.Object) int {
	r = r.Canon()
	var hits []drawing.Object
	for _, o := range objs {
		if o.HitTest(r) {
			hits = append(hits, o)
		}
	}
	if len(hits) == 0 {
		s.Clear()
		return 0
	}
	*s = Selection{rect: r, active: true, origin: r.Min, last: r.Min, objects: hits}
	return len(hits)
}

// Move translates the rectangle and the selected objects by d.
func (s *Selection) Move(d image.Point) {
	if !s.active || len(s.objects) == 0 {
		return
	}
	for _, o := range s.objects {
		o.Translate(d.X, d.Y)
	}
	s.rect = s.rect.Add(d)
}

// Contains reports whether o is selected.
func (s *Selection) Contains(o drawing.Object) bool {
	for _, sel := range s.objects {
		if sel == o {
			return true
		}
	}
	return false
}
