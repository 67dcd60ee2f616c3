// Package theme holds the colours the window host paints around the
// document.
package theme

import (
	"embed"
	"image/color"
)

// EmbeddedThemes carries the themes shipped with the binary.
//
//go:embed defaults/*.theme
var EmbeddedThemes embed.FS

// Theme defines the window palette. Document pixels never use it.
type Theme struct {
	Name string

	Background color.RGBA // behind the page
	Paper      color.RGBA // page shadow tint

	// Selection overlay dashes
	SelectionA color.RGBA
	SelectionB color.RGBA

	CheckerLight color.RGBA
	CheckerDark  color.RGBA

	StatusText       color.RGBA
	StatusBackground color.RGBA
}

// Default returns the built in light theme.
func Default() *Theme {
	return &Theme{
		Name:             "Default",
		Background:       color.RGBA{220, 220, 220, 255},
		Paper:            color.RGBA{0, 0, 0, 255},
		SelectionA:       color.RGBA{0, 0, 0, 255},
		SelectionB:       color.RGBA{255, 255, 255, 255},
		CheckerLight:     color.RGBA{220, 220, 220, 255},
		CheckerDark:      color.RGBA{192, 192, 192, 255},
		StatusText:       color.RGBA{0, 0, 0, 255},
		StatusBackground: color.RGBA{200, 200, 200, 255},
	}
}

// Names lists the embedded themes.
func Names() []string {
	entries, err := EmbeddedThemes.ReadDir("defaults")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		n := e.Name()
		names = append(names, n[:len(n)-len(".theme")])
	}
	return names
}
