// Package canvas owns the raster side of a document: the pixel buffer that
// keeps brush strokes, fills and imported images, the zoom factor used to
// map between screen and document coordinates, and the freehand point
// trail.
package canvas

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/example/paintboard/internal/raster"
	"github.com/example/paintboard/internal/render"
)

const (
	MinZoom  = 0.5
	MaxZoom  = 4.0
	ZoomStep = 0.5

	// BrushSize is the diameter of the oval stamped for each trail point.
	BrushSize = 10
)

// ErrNoImage is returned when an operation is given a nil or empty image.
var ErrNoImage = errors.New("no image")

// Canvas is the raster layer of a document. It is not safe for concurrent
// use.
type Canvas struct {
	img        *image.RGBA
	zoom       float64
	background color.RGBA
	points     []image.Point
	colors     []color.RGBA

	onResize  func(w, h int)
	onRepaint func()
}

// Option configures a Canvas.
type Option func(*Canvas)

// WithResizeListener registers fn to run whenever the buffer is reallocated.
func WithResizeListener(fn func(w, h int)) Option { return func(c *Canvas) { c.onResize = fn } }

// WithRepaintListener registers fn to run when the visible frame changes
// without the buffer being replaced, such as a zoom change.
func WithRepaintListener(fn func()) Option { return func(c *Canvas) { c.onRepaint = fn } }

// WithBackground sets the colour new buffers and the eraser use.
func WithBackground(col color.RGBA) Option { return func(c *Canvas) { c.background = col } }

// WithZoom sets the initial zoom factor.
func WithZoom(z float64) Option { return func(c *Canvas) { c.zoom = ClampZoom(z) } }

// New returns a w×h canvas filled with the background colour.
func New(w, h int, opts ...Option) *Canvas {
	c := &Canvas{
		zoom:       1,
		background: color.RGBA{0xff, 0xff, 0xff, 0xff},
	}
	for _, o := range opts {
		o(c)
	}
	c.img = c.blank(w, h)
	return c
}

func (c *Canvas) blank(w, h int) *image.RGBA {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(c.background), image.Point{}, draw.Src)
	return img
}

// Image returns the live pixel buffer.
func (c *Canvas) Image() *image.RGBA { return c.img }

// Size returns the document dimensions.
func (c *Canvas) Size() (w, h int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

// Bounds returns the document rectangle.
func (c *Canvas) Bounds() image.Rectangle { return c.img.Bounds() }

// Background returns the colour of blank pixels.
func (c *Canvas) Background() color.RGBA { return c.background }

// Zoom returns the current zoom factor.
func (c *Canvas) Zoom() float64 { return c.zoom }

// ClampZoom limits z to [MinZoom, MaxZoom] and snaps it to the ZoomStep grid.
func ClampZoom(z float64) float64 {
	if math.IsNaN(z) {
		return 1
	}
	z = math.Round(z/ZoomStep) * ZoomStep
	return math.Max(MinZoom, math.Min(MaxZoom, z))
}

// SetZoom changes the zoom factor and returns the value applied. Stored
// coordinates are not touched.
func (c *Canvas) SetZoom(z float64) float64 {
	c.zoom = ClampZoom(z)
	c.repaint()
	return c.zoom
}

// ZoomIn steps the zoom up by ZoomStep.
func (c *Canvas) ZoomIn() float64 { return c.SetZoom(c.zoom + ZoomStep) }

// ZoomOut steps the zoom down by ZoomStep.
func (c *Canvas) ZoomOut() float64 { return c.SetZoom(c.zoom - ZoomStep) }

// ActualPoint converts a screen position to document coordinates.
func (c *Canvas) ActualPoint(screen image.Point) image.Point {
	return image.Pt(
		int(math.Floor(float64(screen.X)/c.zoom)),
		int(math.Floor(float64(screen.Y)/c.zoom)),
	)
}

// ScreenPoint converts a document position to screen coordinates.
func (c *Canvas) ScreenPoint(actual image.Point) image.Point {
	return image.Pt(int(float64(actual.X)*c.zoom), int(float64(actual.Y)*c.zoom))
}

// ScreenRect converts a document rectangle to screen coordinates.
func (c *Canvas) ScreenRect(r image.Rectangle) image.Rectangle {
	return image.Rectangle{Min: c.ScreenPoint(r.Min), Max: c.ScreenPoint(r.Max)}
}

// Points returns the freehand trail.
func (c *Canvas) Points() []image.Point { return c.points }

// PointColors returns the colour of each trail point.
func (c *Canvas) PointColors() []color.RGBA { return c.colors }

// AddPoint appends p to the trail and stamps a brush oval at p.
func (c *Canvas) AddPoint(p image.Point, col color.RGBA) {
	c.points = append(c.points, p)
	c.colors = append(c.colors, col)
	render.Oval(c.img, p, BrushSize, BrushSize, col)
}

// SetPoints replaces the trail and stamps every point. colors may be shorter
// than points; missing entries default to black.
func (c *Canvas) SetPoints(points []image.Point, colors []color.RGBA) {
	c.points = nil
	c.colors = nil
	for i, p := range points {
		col := color.RGBA{0, 0, 0, 0xff}
		if i < len(colors) {
			col = colors[i]
		}
		c.AddPoint(p, col)
	}
}

// Erase paints a size×size background square centred on p.
func (c *Canvas) Erase(p image.Point, size int) {
	render.Square(c.img, p, size, c.background)
}

// Fill flood fills the region at p. When boundary is non-nil the region is
// found in boundary, which must match the canvas bounds.
func (c *Canvas) Fill(p image.Point, col color.RGBA, boundary *image.RGBA) int {
	if boundary == nil {
		return raster.FloodFill(c.img, p.X, p.Y, col)
	}
	return raster.FloodFillInto(c.img, boundary, p.X, p.Y, col)
}

// FillRect paints the in-bounds part of r.
func (c *Canvas) FillRect(r image.Rectangle, col color.RGBA) int {
	return raster.FillRect(c.img, r, col)
}

// Reset replaces the buffer with a blank w×h one and clears the trail.
func (c *Canvas) Reset(w, h int) {
	c.points = nil
	c.colors = nil
	c.replace(c.blank(w, h))
}

// Resize reallocates the buffer to w×h keeping the overlapping pixels.
func (c *Canvas) Resize(w, h int) {
	img := c.blank(w, h)
	draw.Draw(img, img.Bounds(), c.img, image.Point{}, draw.Src)
	c.replace(img)
}

// Load replaces the buffer with a copy of img and clears the trail.
func (c *Canvas) Load(img image.Image) error {
	if img == nil || img.Bounds().Empty() {
		return ErrNoImage
	}
	b := img.Bounds()
	dst := c.blank(b.Dx(), b.Dy())
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Over)
	c.points = nil
	c.colors = nil
	c.replace(dst)
	return nil
}

// FlipHorizontal mirrors the buffer left to right.
func (c *Canvas) FlipHorizontal() { c.replace(raster.FlipHorizontal(c.img)) }

// FlipVertical mirrors the buffer top to bottom.
func (c *Canvas) FlipVertical() { c.replace(raster.FlipVertical(c.img)) }

// Rotate turns the buffer a quarter turn, swapping its dimensions.
func (c *Canvas) Rotate(clockwise bool) { c.replace(raster.Rotate90(c.img, clockwise)) }

func (c *Canvas) replace(img *image.RGBA) {
	c.img = img
	if c.onResize != nil {
		w, h := c.Size()
		c.onResize(w, h)
	}
}

func (c *Canvas) repaint() {
	if c.onRepaint != nil {
		c.onRepaint()
	}
}
