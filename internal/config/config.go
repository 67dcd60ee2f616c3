// Package config reads and writes the paintboard rc file.
package config

import (
	"fmt"
	"image/color"
	"sort"
	"strings"

	"github.com/example/paintboard/internal/drawing"
	"github.com/example/paintboard/internal/editor"
	"github.com/example/paintboard/internal/theme"
)

// Notify holds notification settings.
type Notify struct {
	Save   bool
	Export bool
	Copy   bool
}

// Config holds the application configuration.
type Config struct {
	Width            int
	Height           int
	Stroke           int
	StrokeColor      color.RGBA
	FillColor        color.RGBA
	Fill             bool
	EraserSize       int
	FontSize         int
	Zoom             float64
	Debug            bool
	TransformObjects bool

	Theme   string
	SaveDir string
	Notify  Notify
	Themes  map[string]*theme.Theme
}

// New creates a new Config with defaults.
func New() *Config {
	return &Config{
		Width:       editor.DefaultWidth,
		Height:      editor.DefaultHeight,
		Stroke:      editor.DefaultStroke,
		StrokeColor: drawing.Black,
		FillColor:   drawing.White,
		EraserSize:  editor.DefaultEraserSize,
		FontSize:    editor.DefaultFontSize,
		Zoom:        1,
		Themes:      make(map[string]*theme.Theme),
	}
}

// EditorOptions converts the document settings into editor options.
func (c *Config) EditorOptions() []editor.Option {
	return []editor.Option{
		editor.WithSize(c.Width, c.Height),
		editor.WithStroke(c.Stroke),
		editor.WithStrokeColor(c.StrokeColor),
		editor.WithFillColor(c.FillColor),
		editor.WithFill(c.Fill),
		editor.WithEraserSize(c.EraserSize),
		editor.WithFontSize(c.FontSize),
		editor.WithZoom(c.Zoom),
		editor.WithDebug(c.Debug),
		editor.WithTransformObjects(c.TransformObjects),
	}
}

// String implements fmt.Stringer and returns the configuration in RC format.
func (c *Config) String() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "width = %d\n", c.Width)
	fmt.Fprintf(&sb, "height = %d\n", c.Height)
	fmt.Fprintf(&sb, "stroke = %d\n", c.Stroke)
	fmt.Fprintf(&sb, "stroke_color = %s\n", theme.Hex(c.StrokeColor))
	fmt.Fprintf(&sb, "fill_color = %s\n", theme.Hex(c.FillColor))
	fmt.Fprintf(&sb, "fill = %v\n", c.Fill)
	fmt.Fprintf(&sb, "eraser_size = %d\n", c.EraserSize)
	fmt.Fprintf(&sb, "font_size = %d\n", c.FontSize)
	fmt.Fprintf(&sb, "zoom = %g\n", c.Zoom)
	fmt.Fprintf(&sb, "debug = %v\n", c.Debug)
	fmt.Fprintf(&sb, "transform_objects = %v\n", c.TransformObjects)
	if c.Theme != "" {
		fmt.Fprintf(&sb, "theme = %s\n", c.Theme)
	}
	if c.SaveDir != "" {
		fmt.Fprintf(&sb, "save_dir = %s\n", c.SaveDir)
	}
	sb.WriteString("\n")

	sb.WriteString("[notify]\n")
	fmt.Fprintf(&sb, "save = %v\n", c.Notify.Save)
	fmt.Fprintf(&sb, "export = %v\n", c.Notify.Export)
	fmt.Fprintf(&sb, "copy = %v\n", c.Notify.Copy)
	sb.WriteString("\n")

	names := make([]string, 0, len(c.Themes))
	for name := range c.Themes {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		t := c.Themes[name]
		fmt.Fprintf(&sb, "[theme.%s]\n", name)
		fmt.Fprintf(&sb, "Name: %s\n", t.Name)
		for _, f := range theme.Fields(t) {
			fmt.Fprintf(&sb, "%s: %s\n", f.Name, theme.Hex(f.Color))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
