package render

import (
	"image"
	"image/color"
	"testing"
)

func TestPageShadowOffset(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 40, 40))
	page := image.Rect(5, 5, 25, 25)
	PageShadow(dst, page, ShadowOptions{Radius: 2, Offset: image.Pt(6, 6), Opacity: 0.5})
	if dst.RGBAAt(28, 28).A == 0 {
		t.Fatalf("expected shadow alpha at offset corner")
	}
	if dst.RGBAAt(1, 1).A != 0 {
		t.Fatalf("shadow leaked to %v", image.Pt(1, 1))
	}
}

func TestPageShadowZeroOpacity(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 10, 10))
	PageShadow(dst, image.Rect(1, 1, 5, 5), ShadowOptions{Radius: 3, Offset: image.Pt(2, 2)})
	for i, v := range dst.Pix {
		if v != 0 {
			t.Fatalf("pixel byte %d = %d, want untouched", i, v)
		}
	}
}

func TestBlurGrayPreservesUniform(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 8, 6))
	for i := range src.Pix {
		src.Pix[i] = 200
	}
	out := blurGray(src, 3)
	for y := 0; y < 6; y++ {
		for x := 0; x < 8; x++ {
			if got := out.GrayAt(x, y); got != (color.Gray{Y: 200}) {
				t.Fatalf("blur at (%d,%d) = %v", x, y, got)
			}
		}
	}
}

func TestPageShadowTint(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 10, 10))
	PageShadow(dst, image.Rect(0, 0, 4, 4), ShadowOptions{Offset: image.Pt(2, 2), Opacity: 1, Color: color.RGBA{200, 0, 0, 0}})
	if got := dst.RGBAAt(3, 3); got != (color.RGBA{200, 0, 0, 255}) {
		t.Fatalf("tinted shadow %v", got)
	}
}
