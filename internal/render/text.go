package render

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

var regular *opentype.Font

var faces sync.Map // map[int]font.Face

func init() {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		log.Fatalf("parse font: %v", err)
	}
	regular = f
}

// Face returns the regular face at size points, 72 DPI, creating and caching
// it on first use.
func Face(size int) (font.Face, error) {
	if size <= 0 {
		return nil, fmt.Errorf("font size %d", size)
	}
	if face, ok := faces.Load(size); ok {
		return face.(font.Face), nil
	}
	face, err := opentype.NewFace(regular, &opentype.FaceOptions{Size: float64(size), DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return nil, err
	}
	actual, _ := faces.LoadOrStore(size, face)
	return actual.(font.Face), nil
}

// Text draws s with its baseline-left corner at p.
func Text(img *image.RGBA, p image.Point, s string, col color.Color, size int) error {
	face, err := Face(size)
	if err != nil {
		return err
	}
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P(p.X, p.Y),
	}
	d.DrawString(s)
	return nil
}

// TextBounds reports the pixel box covered by s drawn at p.
func TextBounds(p image.Point, s string, size int) (image.Rectangle, error) {
	face, err := Face(size)
	if err != nil {
		return image.Rectangle{}, err
	}
	d := &font.Drawer{Face: face}
	w := d.MeasureString(s).Ceil()
	m := face.Metrics()
	return image.Rect(p.X, p.Y-m.Ascent.Ceil(), p.X+w, p.Y+m.Descent.Ceil()), nil
}
