package drawing

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"strings"

	"github.com/example/paintboard/internal/render"
)

const maxStroke = 100

// Line is a straight segment. It never carries a fill.
type Line struct {
	Shape
}

// NewLine returns a line from a to b.
func NewLine(a, b image.Point, c color.RGBA, stroke int) *Line {
	return &Line{Shape{From: a, To: b, Color: c, Stroke: stroke, FillColor: White}}
}

func (l *Line) Mode() Mode              { return ModeLine }
func (l *Line) Bounds() image.Rectangle { return l.box() }

func (l *Line) Render(dst *image.RGBA) {
	render.Line(dst, l.From.X, l.From.Y, l.To.X, l.To.Y, l.Color, l.Stroke)
}

func (l *Line) Validate() error {
	if l.Stroke < 1 || l.Stroke > maxStroke {
		return invalid(ModeLine, "stroke %d outside [1,%d]", l.Stroke, maxStroke)
	}
	return nil
}

// HitTest matches when r holds either endpoint or overlaps the segment's
// bounding box.
func (l *Line) HitTest(r image.Rectangle) bool {
	return l.From.In(r) || l.To.In(r) || r.Overlaps(l.box())
}

func (l *Line) Encode(w io.Writer) error {
	s := l.Shape
	s.Filled = false
	s.FillColor = White
	return encodeShape(w, ModeLine, &s)
}

func (l *Line) String() string {
	return fmt.Sprintf("line (%d,%d)-(%d,%d) color %s stroke %d",
		l.From.X, l.From.Y, l.To.X, l.To.Y, hexRGB(l.Color), l.Stroke)
}

func (l *Line) Detail() string { return l.detail(ModeLine) }

// Circle is the ellipse inscribed in the box spanned by its two points.
type Circle struct {
	Shape
}

// NewCircle returns an ellipse bounded by a and b.
func NewCircle(a, b image.Point, c color.RGBA, stroke int, filled bool, fill color.RGBA) *Circle {
	return &Circle{Shape{From: a, To: b, Color: c, Stroke: stroke, Filled: filled, FillColor: fill}}
}

func (c *Circle) Mode() Mode              { return ModeCircle }
func (c *Circle) Bounds() image.Rectangle { return c.box() }

func (c *Circle) Render(dst *image.RGBA) {
	b := c.box()
	if c.Filled {
		render.FillEllipse(dst, b, c.FillColor)
	}
	render.Ellipse(dst, b, c.Color, c.Stroke)
}

func (c *Circle) Validate() error {
	if c.Stroke < 1 || c.Stroke > maxStroke {
		return invalid(ModeCircle, "stroke %d outside [1,%d]", c.Stroke, maxStroke)
	}
	if c.From == c.To {
		return invalid(ModeCircle, "degenerate at (%d,%d)", c.From.X, c.From.Y)
	}
	return nil
}

func (c *Circle) HitTest(r image.Rectangle) bool { return r.Overlaps(c.box()) }

func (c *Circle) Encode(w io.Writer) error { return encodeShape(w, ModeCircle, &c.Shape) }

func (c *Circle) String() string {
	return fmt.Sprintf("circle (%d,%d)-(%d,%d) color %s stroke %d filled %t fill %s",
		c.From.X, c.From.Y, c.To.X, c.To.Y, hexRGB(c.Color), c.Stroke, c.Filled, hexRGB(c.FillColor))
}

func (c *Circle) Detail() string { return c.detail(ModeCircle) }

// Rectangle is the axis-aligned box spanned by its two points.
type Rectangle struct {
	Shape
}

// NewRectangle returns a rectangle spanning a and b.
func NewRectangle(a, b image.Point, c color.RGBA, stroke int, filled bool, fill color.RGBA) *Rectangle {
	return &Rectangle{Shape{From: a, To: b, Color: c, Stroke: stroke, Filled: filled, FillColor: fill}}
}

func (r *Rectangle) Mode() Mode              { return ModeRectangle }
func (r *Rectangle) Bounds() image.Rectangle { return r.box() }

func (r *Rectangle) Render(dst *image.RGBA) {
	b := r.box()
	if r.Filled {
		render.FillRect(dst, b, r.FillColor)
	}
	render.Rect(dst, b, r.Color, r.Stroke)
}

// Validate accepts a zero stroke, which draws a hairline.
func (r *Rectangle) Validate() error {
	if r.Stroke < 0 || r.Stroke > maxStroke {
		return invalid(ModeRectangle, "stroke %d outside [0,%d]", r.Stroke, maxStroke)
	}
	return nil
}

func (r *Rectangle) HitTest(sel image.Rectangle) bool { return sel.Overlaps(r.box()) }

func (r *Rectangle) Encode(w io.Writer) error { return encodeShape(w, ModeRectangle, &r.Shape) }

func (r *Rectangle) String() string {
	return fmt.Sprintf("rectangle (%d,%d)-(%d,%d) color %s stroke %d filled %t fill %s",
		r.From.X, r.From.Y, r.To.X, r.To.Y, hexRGB(r.Color), r.Stroke, r.Filled, hexRGB(r.FillColor))
}

func (r *Rectangle) Detail() string { return r.detail(ModeRectangle) }

const (
	MinFontSize = 8
	MaxFontSize = 72
)

// Text is a single line label anchored at its baseline-left point. To always
// mirrors From.
type Text struct {
	Shape
	Text     string
	FontSize int
}

// NewText returns a label at p.
func NewText(p image.Point, c color.RGBA, text string, size int) *Text {
	return &Text{Shape: Shape{From: p, To: p, Color: c, FillColor: White}, Text: text, FontSize: size}
}

func (t *Text) Mode() Mode { return ModeText }

func (t *Text) Bounds() image.Rectangle {
	r, err := render.TextBounds(t.From, t.Text, t.FontSize)
	if err != nil {
		return image.Rectangle{Min: t.From, Max: t.From}
	}
	return r
}

// Render draws the label. Use Draw to learn whether the face could be
// built.
func (t *Text) Render(dst *image.RGBA) {
	_ = t.Draw(dst)
}

// Draw draws the label and reports a font face that could not be built.
func (t *Text) Draw(dst *image.RGBA) error {
	if err := render.Text(dst, t.From, t.Text, t.Color, t.FontSize); err != nil {
		return fmt.Errorf("text %q size %d: %w", t.Text, t.FontSize, err)
	}
	return nil
}

func (t *Text) Validate() error {
	if t.FontSize < MinFontSize || t.FontSize > MaxFontSize {
		return invalid(ModeText, "font size %d outside [%d,%d]", t.FontSize, MinFontSize, MaxFontSize)
	}
	if strings.TrimSpace(t.Text) == "" {
		return invalid(ModeText, "empty text")
	}
	return nil
}

func (t *Text) HitTest(r image.Rectangle) bool { return t.From.In(r) }

// Translate moves the anchor.
func (t *Text) Translate(dx, dy int) {
	t.From = t.From.Add(image.Pt(dx, dy))
	t.To = t.From
}

func (t *Text) String() string {
	return fmt.Sprintf("text (%d,%d) %q size %d color %s", t.From.X, t.From.Y, t.Text, t.FontSize, hexRGB(t.Color))
}

func (t *Text) Detail() string {
	return t.detail(ModeText) + fmt.Sprintf("\n  text: %q | font size: %d", t.Text, t.FontSize)
}
