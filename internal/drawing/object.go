// Package drawing defines the vector objects that make up a scene: lines,
// ellipses, rectangles and text labels. Objects store their geometry in
// document coordinates; zoom is applied by whoever composes the frame.
package drawing

import (
	"fmt"
	"image"
	"image/color"
	"io"
)

// Object is implemented by every vector shape.
type Object interface {
	Mode() Mode
	// Base exposes the attributes shared by all variants.
	Base() *Shape
	// Bounds is the box the object occupies in document coordinates.
	Bounds() image.Rectangle
	// Render paints the fill, if any, and then the outline or glyphs.
	Render(dst *image.RGBA)
	Validate() error
	// HitTest reports whether the selection rectangle r picks the object.
	HitTest(r image.Rectangle) bool
	Translate(dx, dy int)
	// Encode writes the record tag followed by the variant's fields.
	Encode(w io.Writer) error
	String() string
	Detail() string
}

var (
	Black = color.RGBA{0, 0, 0, 0xff}
	White = color.RGBA{0xff, 0xff, 0xff, 0xff}
)

// Shape holds the attributes common to every object.
type Shape struct {
	From, To  image.Point
	Color     color.RGBA
	Stroke    int
	Filled    bool
	FillColor color.RGBA
}

func (s *Shape) Base() *Shape { return s }

// box is the normalised rectangle spanned by From and To.
func (s *Shape) box() image.Rectangle {
	return image.Rect(s.From.X, s.From.Y, s.To.X, s.To.Y)
}

func (s *Shape) Translate(dx, dy int) {
	d := image.Pt(dx, dy)
	s.From = s.From.Add(d)
	s.To = s.To.Add(d)
}

func hexRGB(c color.RGBA) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

func (s *Shape) detail(m Mode) string {
	return fmt.Sprintf("mode: %s\n  start: (%d, %d)\n  end: (%d, %d)\n  color: %s\n  fill color: %s\n  stroke: %d | filled: %t",
		m, s.From.X, s.From.Y, s.To.X, s.To.Y, hexRGB(s.Color), hexRGB(s.FillColor), s.Stroke, s.Filled)
}

// IsValid reports whether o passes validation.
func IsValid(o Object) bool { return o.Validate() == nil }
