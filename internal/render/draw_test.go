package render

import (
	"image"
	"image/color"
	"testing"
)

var red = color.RGBA{255, 0, 0, 255}

func count(img *image.RGBA, c color.RGBA) int {
	n := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.RGBAAt(x, y) == c {
				n++
			}
		}
	}
	return n
}

func TestLineEndpoints(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 20, 20))
	Line(img, 2, 3, 15, 11, red, 1)
	if img.RGBAAt(2, 3) != red || img.RGBAAt(15, 11) != red {
		t.Fatalf("line endpoints not painted")
	}
}

func TestLineClipsOutsideBounds(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	Line(img, -20, 5, 30, 5, red, 3)
	if got := count(img, red); got != 30 {
		t.Fatalf("painted %d pixels, want 30", got)
	}
}

func TestRectOutline(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 20, 20))
	Rect(img, image.Rect(2, 2, 8, 6), red, 1)
	for _, p := range []image.Point{{2, 2}, {8, 2}, {8, 6}, {2, 6}, {5, 2}, {2, 4}} {
		if img.RGBAAt(p.X, p.Y) != red {
			t.Errorf("outline missing at %v", p)
		}
	}
	if img.RGBAAt(5, 4) == red {
		t.Errorf("outline painted interior")
	}
}

func TestFillRectHalfOpen(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	FillRect(img, image.Rect(2, 2, 5, 4), red)
	if got := count(img, red); got != 6 {
		t.Fatalf("filled %d pixels, want 6", got)
	}
}

func TestFillEllipseCoversCentre(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 30, 30))
	FillEllipse(img, image.Rect(5, 5, 25, 15), red)
	if img.RGBAAt(15, 10) != red {
		t.Fatalf("centre not filled")
	}
	if img.RGBAAt(5, 5) == red {
		t.Fatalf("corner of bounding box filled")
	}
	if img.RGBAAt(15, 20) == red {
		t.Fatalf("fill escaped the box")
	}
}

func TestEllipseOutlineTouchesBox(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 30, 30))
	Ellipse(img, image.Rect(4, 4, 24, 14), red, 1)
	if img.RGBAAt(24, 9) != red || img.RGBAAt(4, 9) != red {
		t.Fatalf("outline should reach left and right edges")
	}
	if img.RGBAAt(14, 9) == red {
		t.Fatalf("outline painted the centre")
	}
}

func TestSquareCentred(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 20, 20))
	Square(img, image.Pt(10, 10), 4, red)
	if got := count(img, red); got != 16 {
		t.Fatalf("square painted %d pixels, want 16", got)
	}
	if img.RGBAAt(8, 8) != red || img.RGBAAt(11, 11) != red {
		t.Fatalf("square not centred on point")
	}
}

func TestDashedRectSkipsGaps(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 20, 20))
	DashedRect(img, image.Rect(0, 0, 19, 19), 5, red, nil)
	if img.RGBAAt(0, 0) != red {
		t.Fatalf("first dash missing")
	}
	if img.RGBAAt(6, 0) == red {
		t.Fatalf("gap painted")
	}
}

func TestTextDrawsInk(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 100, 40))
	if err := Text(img, image.Pt(4, 30), "Hi", red, 20); err != nil {
		t.Fatalf("Text: %v", err)
	}
	if count(img, red) == 0 {
		t.Fatalf("no text pixels drawn")
	}
	r, err := TextBounds(image.Pt(4, 30), "Hi", 20)
	if err != nil {
		t.Fatalf("TextBounds: %v", err)
	}
	if r.Min.Y >= 30 || r.Max.Y < 30 || r.Dx() == 0 {
		t.Fatalf("bounds %v should straddle baseline", r)
	}
}

func TestFaceRejectsZero(t *testing.T) {
	if _, err := Face(0); err == nil {
		t.Fatalf("expected error for zero size")
	}
}
