// Package editor ties the raster canvas and the vector scene together and
// exposes the command surface driven by the window, the REPL and the CLI:
// tool and parameter setters, pointer events, document commands and file
// operations. An Editor is not safe for concurrent use.
package editor

import (
	"context"
	"errors"
	"image"
	"image/color"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/example/paintboard/internal/canvas"
	"github.com/example/paintboard/internal/drawing"
)

const (
	DefaultWidth  = 800
	DefaultHeight = 600

	MinStroke     = 1
	MaxStroke     = 10
	MinEraserSize = 5
	MaxEraserSize = 30
	EraserStep    = 5
	MinFontSize   = 8
	MaxFontSize   = 48
	FontStep      = 2

	DefaultStroke     = 1
	DefaultEraserSize = 10
	DefaultFontSize   = 16
)

// ErrNoSelection is returned by commands that need a selection rectangle.
var ErrNoSelection = errors.New("nothing selected")

// Entry is a scene object with its runtime identifier. Identifiers are not
// persisted.
type Entry struct {
	ID     string
	Object drawing.Object
}

type pendingShape struct {
	active     bool
	start, end image.Point
}

type pendingText struct {
	active bool
	at     image.Point
	text   string
}

// Editor holds one open document.
type Editor struct {
	canvas  *canvas.Canvas
	entries []Entry
	sel     canvas.Selection

	mode        drawing.Mode
	strokeColor color.RGBA
	fillColor   color.RGBA
	stroke      int
	fill        bool
	eraserSize  int
	fontSize    int

	// transformObjects makes flips and rotations move vector objects with
	// the raster. Off by default: transforms only touch pixels.
	transformObjects bool

	shape pendingShape
	text  pendingText

	debug  bool
	level  *slog.LevelVar
	logger *slog.Logger

	width, height int
	zoom          float64
	onResize      func(w, h int)
	onChange      func()
}

// Option configures an Editor during creation.
type Option func(*Editor)

// WithSize sets the initial document size.
func WithSize(w, h int) Option { return func(e *Editor) { e.width, e.height = w, h } }

// WithStrokeColor sets the initial outline colour.
func WithStrokeColor(c color.RGBA) Option { return func(e *Editor) { e.strokeColor = c } }

// WithFillColor sets the initial fill colour.
func WithFillColor(c color.RGBA) Option { return func(e *Editor) { e.fillColor = c } }

// WithStroke sets the initial stroke width.
func WithStroke(w int) Option { return func(e *Editor) { e.stroke = w } }

// WithFill enables filling of new ellipses and rectangles.
func WithFill(on bool) Option { return func(e *Editor) { e.fill = on } }

// WithEraserSize sets the initial eraser size.
func WithEraserSize(n int) Option { return func(e *Editor) { e.eraserSize = n } }

// WithFontSize sets the initial font size for text.
func WithFontSize(n int) Option { return func(e *Editor) { e.fontSize = n } }

// WithZoom sets the initial zoom factor.
func WithZoom(z float64) Option { return func(e *Editor) { e.zoom = z } }

// WithMode sets the initial tool.
func WithMode(m drawing.Mode) Option { return func(e *Editor) { e.mode = m } }

// WithDebug enables debug logging from the start.
func WithDebug(on bool) Option { return func(e *Editor) { e.debug = on } }

// WithLogOutput sends log records to w as text. Warnings are always
// written; debug records only while debug mode is on.
func WithLogOutput(w io.Writer) Option {
	return func(e *Editor) {
		e.logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: e.level}))
	}
}

// WithLogger replaces the logger. Debug records are still gated by debug
// mode.
func WithLogger(l *slog.Logger) Option { return func(e *Editor) { e.logger = l } }

// WithTransformObjects makes flips and rotations move vector objects too.
func WithTransformObjects(on bool) Option { return func(e *Editor) { e.transformObjects = on } }

// WithResizeListener registers fn to run whenever the document size changes.
func WithResizeListener(fn func(w, h int)) Option { return func(e *Editor) { e.onResize = fn } }

// WithChangeListener registers fn to run whenever the frame needs repainting.
func WithChangeListener(fn func()) Option { return func(e *Editor) { e.onChange = fn } }

// New creates an editor with a blank document.
func New(opts ...Option) *Editor {
	e := &Editor{
		mode:        drawing.ModeLine,
		strokeColor: drawing.Black,
		fillColor:   drawing.White,
		stroke:      DefaultStroke,
		eraserSize:  DefaultEraserSize,
		fontSize:    DefaultFontSize,
		width:       DefaultWidth,
		height:      DefaultHeight,
		zoom:        1,
		level:       new(slog.LevelVar),
	}
	e.level.Set(slog.LevelWarn)
	e.logger = slog.New(nopHandler{})
	for _, o := range opts {
		o(e)
	}
	e.stroke = clamp(e.stroke, MinStroke, MaxStroke)
	e.eraserSize = clamp(e.eraserSize, MinEraserSize, MaxEraserSize)
	e.fontSize = clamp(e.fontSize, MinFontSize, MaxFontSize)
	e.SetDebug(e.debug)
	e.canvas = canvas.New(e.width, e.height,
		canvas.WithZoom(e.zoom),
		canvas.WithResizeListener(e.resized),
		canvas.WithRepaintListener(e.changed),
	)
	return e
}

type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (e *Editor) debugf(msg string, args ...any) {
	if !e.debug {
		return
	}
	e.logger.Debug(msg, append([]any{"mode", e.mode.String()}, args...)...)
}

func (e *Editor) warn(msg string, args ...any) {
	e.logger.Warn(msg, args...)
}

func (e *Editor) resized(w, h int) {
	e.debugf("canvas resized", "width", w, "height", h)
	if e.onResize != nil {
		e.onResize(w, h)
	}
	e.changed()
}

func (e *Editor) changed() {
	if e.onChange != nil {
		e.onChange()
	}
}

// Canvas returns the raster layer.
func (e *Editor) Canvas() *canvas.Canvas { return e.canvas }

// Size returns the document dimensions.
func (e *Editor) Size() (w, h int) { return e.canvas.Size() }

// Mode returns the active tool.
func (e *Editor) Mode() drawing.Mode { return e.mode }

// StrokeColor returns the outline colour for new objects.
func (e *Editor) StrokeColor() color.RGBA { return e.strokeColor }

// FillColor returns the fill colour for new objects and the fill tools.
func (e *Editor) FillColor() color.RGBA { return e.fillColor }

// Stroke returns the stroke width for new objects.
func (e *Editor) Stroke() int { return e.stroke }

// FillEnabled reports whether new ellipses and rectangles are filled.
func (e *Editor) FillEnabled() bool { return e.fill }

// EraserSize returns the eraser square size.
func (e *Editor) EraserSize() int { return e.eraserSize }

// FontSize returns the font size for new text.
func (e *Editor) FontSize() int { return e.fontSize }

// Zoom returns the zoom factor.
func (e *Editor) Zoom() float64 { return e.canvas.Zoom() }

// Debug reports whether debug logging is on.
func (e *Editor) Debug() bool { return e.debug }

// SetMode switches tools. Any shape being dragged out is dropped; pending
// text is committed.
func (e *Editor) SetMode(m drawing.Mode) {
	if e.text.active {
		e.commitPendingText()
	}
	e.shape = pendingShape{}
	e.mode = m
	e.debugf("draw mode set", "to", m.String())
	e.changed()
}

// SetStrokeColor sets the outline colour. Alpha is forced opaque.
func (e *Editor) SetStrokeColor(c color.RGBA) {
	c.A = 0xff
	e.strokeColor = c
	e.debugf("line color set", "rgb", hexRGB(c))
}

// SetFillColor sets the fill colour. Alpha is forced opaque.
func (e *Editor) SetFillColor(c color.RGBA) {
	c.A = 0xff
	e.fillColor = c
	e.debugf("fill color set", "rgb", hexRGB(c))
}

// SetStroke sets the stroke width, clamped to [MinStroke, MaxStroke].
func (e *Editor) SetStroke(w int) int {
	e.stroke = clamp(w, MinStroke, MaxStroke)
	e.debugf("stroke set", "width", e.stroke)
	return e.stroke
}

// SetFillEnabled toggles filling of new ellipses and rectangles.
func (e *Editor) SetFillEnabled(on bool) {
	e.fill = on
	e.debugf("fill toggled", "on", on)
}

// SetEraserSize sets the eraser size, clamped to [MinEraserSize, MaxEraserSize].
func (e *Editor) SetEraserSize(n int) int {
	e.eraserSize = clamp(n, MinEraserSize, MaxEraserSize)
	e.debugf("eraser size set", "size", e.eraserSize)
	return e.eraserSize
}

// SetFontSize sets the font size, clamped to [MinFontSize, MaxFontSize].
// Loaded text may use sizes up to drawing.MaxFontSize.
func (e *Editor) SetFontSize(n int) int {
	e.fontSize = clamp(n, MinFontSize, MaxFontSize)
	e.debugf("font size set", "size", e.fontSize)
	return e.fontSize
}

// SetZoom sets the zoom factor and returns the clamped value applied.
func (e *Editor) SetZoom(z float64) float64 {
	applied := e.canvas.SetZoom(z)
	e.debugf("zoom set", "level", applied)
	return applied
}

// ZoomIn steps the zoom up.
func (e *Editor) ZoomIn() float64 { return e.SetZoom(e.canvas.Zoom() + canvas.ZoomStep) }

// ZoomOut steps the zoom down.
func (e *Editor) ZoomOut() float64 { return e.SetZoom(e.canvas.Zoom() - canvas.ZoomStep) }

// SetDebug toggles debug logging.
func (e *Editor) SetDebug(on bool) {
	e.debug = on
	if on {
		e.level.Set(slog.LevelDebug)
	} else {
		e.level.Set(slog.LevelWarn)
	}
	e.debugf("debug mode toggled", "on", on)
}

// SetTransformObjects toggles whether flips and rotations move vector
// objects with the raster.
func (e *Editor) SetTransformObjects(on bool) { e.transformObjects = on }

// TransformObjects reports whether transforms move vector objects.
func (e *Editor) TransformObjects() bool { return e.transformObjects }

func newID() string { return uuid.NewString() }
