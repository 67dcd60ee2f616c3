package canvas

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

var (
	white = color.RGBA{0xff, 0xff, 0xff, 0xff}
	black = color.RGBA{0, 0, 0, 0xff}
	red   = color.RGBA{0xff, 0, 0, 0xff}
)

func TestNewIsBlank(t *testing.T) {
	c := New(30, 20)
	if w, h := c.Size(); w != 30 || h != 20 {
		t.Fatalf("size %dx%d", w, h)
	}
	if c.Image().RGBAAt(29, 19) != white {
		t.Fatalf("new canvas not white")
	}
}

func TestClampZoom(t *testing.T) {
	tests := map[float64]float64{0.1: 0.5, 0.5: 0.5, 1.2: 1.0, 1.3: 1.5, 4: 4, 9: 4, -3: 0.5}
	for in, want := range tests {
		if got := ClampZoom(in); got != want {
			t.Errorf("ClampZoom(%v) = %v, want %v", in, got, want)
		}
	}
}

func TestZoomStepsAndRepaint(t *testing.T) {
	repaints := 0
	c := New(10, 10, WithRepaintListener(func() { repaints++ }))
	c.ZoomIn()
	c.ZoomIn()
	if c.Zoom() != 2 {
		t.Fatalf("zoom %v, want 2", c.Zoom())
	}
	for i := 0; i < 10; i++ {
		c.ZoomOut()
	}
	if c.Zoom() != MinZoom {
		t.Fatalf("zoom %v, want %v", c.Zoom(), MinZoom)
	}
	if repaints != 12 {
		t.Fatalf("repaint fired %d times", repaints)
	}
}

func TestScreenActualRoundTrip(t *testing.T) {
	c := New(10, 10)
	pts := []image.Point{{0, 0}, {1, 1}, {7, 13}, {333, 91}, {799, 599}}
	for z := MinZoom; z <= MaxZoom; z += ZoomStep {
		c.SetZoom(z)
		for _, p := range pts {
			got := c.ActualPoint(c.ScreenPoint(p))
			d := got.Sub(p)
			if d.X < -1 || d.X > 1 || d.Y < -1 || d.Y > 1 {
				t.Fatalf("zoom %v: document %v -> %v", z, p, got)
			}
			// Going the other way a screen pixel can only drift within the
			// cell of the document pixel it lands on.
			back := c.ScreenPoint(c.ActualPoint(p))
			if e := p.Sub(back); e.X < 0 || float64(e.X) >= z || e.Y < 0 || float64(e.Y) >= z {
				t.Fatalf("zoom %v: screen %v -> %v", z, p, back)
			}
		}
	}
}

func TestActualPointFloors(t *testing.T) {
	c := New(10, 10, WithZoom(2))
	if p := c.ActualPoint(image.Pt(-1, 5)); p != image.Pt(-1, 2) {
		t.Fatalf("ActualPoint = %v", p)
	}
}

func TestAddPointStampsBrush(t *testing.T) {
	c := New(40, 40)
	c.AddPoint(image.Pt(10, 10), red)
	if c.Image().RGBAAt(15, 15) != red {
		t.Fatalf("brush oval not stamped")
	}
	if len(c.Points()) != 1 || c.PointColors()[0] != red {
		t.Fatalf("trail not recorded")
	}
}

func TestSetPointsDefaultsToBlack(t *testing.T) {
	c := New(40, 40)
	c.SetPoints([]image.Point{{0, 0}, {20, 20}}, nil)
	for _, col := range c.PointColors() {
		if col != black {
			t.Fatalf("point colour %v, want black", col)
		}
	}
}

func TestEraseUsesBackground(t *testing.T) {
	c := New(20, 20)
	c.FillRect(c.Bounds(), red)
	c.Erase(image.Pt(10, 10), 6)
	if c.Image().RGBAAt(10, 10) != white || c.Image().RGBAAt(7, 7) != white {
		t.Fatalf("eraser did not paint background")
	}
	if c.Image().RGBAAt(3, 3) != red {
		t.Fatalf("eraser spilled")
	}
}

func TestRotateNotifiesResize(t *testing.T) {
	var got image.Point
	calls := 0
	c := New(30, 10, WithResizeListener(func(w, h int) { got = image.Pt(w, h); calls++ }))
	c.Rotate(true)
	if got != image.Pt(10, 30) {
		t.Fatalf("resize notified %v", got)
	}
	c.FlipHorizontal()
	c.FlipVertical()
	if calls != 3 {
		t.Fatalf("resize fired %d times", calls)
	}
}

func TestTransformsLeaveTrailAlone(t *testing.T) {
	c := New(30, 10)
	c.AddPoint(image.Pt(1, 1), red)
	c.Rotate(false)
	if c.Points()[0] != image.Pt(1, 1) {
		t.Fatalf("trail moved with the raster")
	}
}

func TestResizeKeepsPixels(t *testing.T) {
	c := New(10, 10)
	c.FillRect(image.Rect(0, 0, 2, 2), red)
	c.Resize(20, 5)
	if c.Image().RGBAAt(1, 1) != red || c.Image().RGBAAt(19, 4) != white {
		t.Fatalf("resize lost content")
	}
}

func TestLoadRejectsEmpty(t *testing.T) {
	c := New(10, 10)
	if err := c.Load(image.NewRGBA(image.Rectangle{})); !errors.Is(err, ErrNoImage) {
		t.Fatalf("got %v", err)
	}
	if w, _ := c.Size(); w != 10 {
		t.Fatalf("failed load changed the buffer")
	}
}

func TestFillWithBoundary(t *testing.T) {
	c := New(10, 10)
	boundary := New(10, 10)
	boundary.FillRect(image.Rect(5, 0, 6, 10), black)
	n := c.Fill(image.Pt(0, 0), red, boundary.Image())
	if n != 50 {
		t.Fatalf("filled %d pixels, want 50", n)
	}
	if c.Image().RGBAAt(5, 0) != white {
		t.Fatalf("boundary pixel painted on the canvas")
	}
}
