package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/example/paintboard/internal/drawing"
	"github.com/example/paintboard/internal/editor"
)

type drawCmd struct {
	*root
	fs *flag.FlagSet

	file       string
	color      color.RGBA
	fillColor  color.RGBA
	stroke     int
	filled     bool
	fontSize   int
	eraserSize int

	shape string
	args  []string
}

func (d *drawCmd) FlagSet() *flag.FlagSet { return d.fs }
func (d *drawCmd) Program() string        { return d.subProgram("draw") }
func (d *drawCmd) Template() string       { return "draw.txt" }

var drawFlagNames = map[string]struct{}{
	"file":        {},
	"color":       {},
	"fill-color":  {},
	"stroke":      {},
	"filled":      {},
	"font-size":   {},
	"eraser-size": {},
}

var drawBoolFlags = map[string]struct{}{
	"filled": {},
}

func parseDrawCmd(args []string, r *root) (*drawCmd, error) {
	d := &drawCmd{root: r}
	cfg := r.config
	d.color = cfg.StrokeColor
	d.fillColor = cfg.FillColor
	fs := flag.NewFlagSet("draw", flag.ContinueOnError)
	fs.SetOutput(r.stderr)
	fs.StringVar(&d.file, "file", "", "scene file to edit")
	fs.Var(colorValue{&d.color}, "color", "outline, text and point colour")
	fs.Var(colorValue{&d.fillColor}, "fill-color", "interior colour for filled shapes and flood fills")
	fs.IntVar(&d.stroke, "stroke", cfg.Stroke, "outline width")
	fs.BoolVar(&d.filled, "filled", cfg.Fill, "fill circles and rectangles")
	fs.IntVar(&d.fontSize, "font-size", cfg.FontSize, "text size in points")
	fs.IntVar(&d.eraserSize, "eraser-size", cfg.EraserSize, "eraser square size")
	d.fs = fs
	fs.Usage = usageFunc(d)

	flagArgs, positional, err := splitDrawArgs(args)
	if err != nil {
		return nil, err
	}
	if err := fs.Parse(flagArgs); err != nil {
		return nil, err
	}
	if len(positional) == 0 {
		return nil, &UsageError{of: d}
	}
	d.shape = strings.ToLower(positional[0])
	d.args = positional[1:]
	switch d.shape {
	case "line", "circle", "rect", "text", "point", "erase", "fill":
	default:
		return nil, fmt.Errorf("unsupported shape %q", d.shape)
	}
	return d, nil
}

// splitDrawArgs separates known flags from positionals so flags may follow
// the shape arguments. Negative numbers stay positional.
func splitDrawArgs(args []string) ([]string, []string, error) {
	var flags []string
	var positionals []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			positionals = append(positionals, args[i+1:]...)
			break
		}
		if !strings.HasPrefix(arg, "-") || arg == "-" {
			positionals = append(positionals, arg)
			continue
		}
		name := strings.TrimLeft(arg, "-")
		parts := strings.SplitN(name, "=", 2)
		base := strings.ToLower(parts[0])
		if _, ok := drawFlagNames[base]; !ok {
			positionals = append(positionals, arg)
			continue
		}
		norm := "-" + base
		if len(parts) == 2 {
			flags = append(flags, norm+"="+parts[1])
			continue
		}
		if _, ok := drawBoolFlags[base]; ok {
			flags = append(flags, norm)
			continue
		}
		if i+1 >= len(args) {
			return nil, nil, fmt.Errorf("flag %s requires a value", arg)
		}
		flags = append(flags, norm, args[i+1])
		i++
	}
	return flags, positionals, nil
}

// errSurfaceOnly rejects raster edits on scene files, which do not store
// the drawing surface.
var errSurfaceOnly = errors.New("erase and fill change only the drawing surface, which scene files do not store; use interactive mode")

func (d *drawCmd) Run() error {
	if d.file != "" && (d.shape == "erase" || d.shape == "fill") {
		return errSurfaceOnly
	}
	ed, err := d.openDocument(d.file, false)
	if err != nil {
		return err
	}
	if err := d.apply(ed); err != nil {
		return err
	}
	return d.saveDocument(ed, d.file)
}

func (d *drawCmd) apply(ed *editor.Editor) error {
	switch d.shape {
	case "line", "circle", "rect":
		v, err := expectInts(d.args, 4, d.shape)
		if err != nil {
			return err
		}
		a, b := image.Pt(v[0], v[1]), image.Pt(v[2], v[3])
		var obj drawing.Object
		switch d.shape {
		case "line":
			obj = drawing.NewLine(a, b, d.color, d.stroke)
		case "circle":
			obj = drawing.NewCircle(a, b, d.color, d.stroke, d.filled, d.fillColor)
		default:
			obj = drawing.NewRectangle(a, b, d.color, d.stroke, d.filled, d.fillColor)
		}
		id, err := ed.Add(obj)
		if err != nil {
			return fmt.Errorf("%s: %w", d.shape, err)
		}
		fmt.Fprintln(d.stdout, id)
	case "text":
		if len(d.args) < 3 {
			return errors.New("text requires x y and the text")
		}
		v, err := expectInts(d.args[:2], 2, "text")
		if err != nil {
			return err
		}
		obj := drawing.NewText(image.Pt(v[0], v[1]), d.color, strings.Join(d.args[2:], " "), d.fontSize)
		id, err := ed.Add(obj)
		if err != nil {
			return fmt.Errorf("text: %w", err)
		}
		fmt.Fprintln(d.stdout, id)
	case "point":
		if len(d.args) == 0 || len(d.args)%2 != 0 {
			return errors.New("point requires pairs of x y coordinates")
		}
		v, err := expectInts(d.args, len(d.args), "point")
		if err != nil {
			return err
		}
		ed.SetStrokeColor(d.color)
		ed.SetMode(drawing.ModePoint)
		ed.PointerDown(v[0], v[1])
		for i := 2; i < len(v); i += 2 {
			ed.PointerDrag(v[i], v[i+1])
		}
		ed.PointerUp(v[len(v)-2], v[len(v)-1])
	case "erase", "fill":
		v, err := expectInts(d.args, 2, d.shape)
		if err != nil {
			return err
		}
		if d.shape == "erase" {
			ed.SetEraserSize(d.eraserSize)
			ed.SetMode(drawing.ModeEraser)
		} else {
			ed.SetFillColor(d.fillColor)
			ed.SetMode(drawing.ModeFillBucket)
		}
		ed.PointerDown(v[0], v[1])
		ed.PointerUp(v[0], v[1])
	}
	return nil
}
