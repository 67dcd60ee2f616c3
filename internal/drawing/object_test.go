package drawing

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"io"
	"reflect"
	"testing"
)

var red = color.RGBA{0xff, 0, 0, 0xff}

func roundTrip(t *testing.T, o Object) Object {
	t.Helper()
	var buf bytes.Buffer
	if err := o.Encode(&buf); err != nil {
		t.Fatalf("encode %s: %v", o, err)
	}
	got, err := Decode(&buf)
	if err != nil {
		t.Fatalf("decode %s: %v", o, err)
	}
	if buf.Len() != 0 {
		t.Fatalf("decode %s left %d bytes", o, buf.Len())
	}
	return got
}

func TestRoundTrip(t *testing.T) {
	objs := []Object{
		NewLine(image.Pt(0, 0), image.Pt(10, 10), red, 2),
		NewCircle(image.Pt(-5, 3), image.Pt(40, 22), color.RGBA{1, 2, 3, 255}, 7, true, color.RGBA{9, 8, 7, 255}),
		NewRectangle(image.Pt(30, 30), image.Pt(2, 1), Black, 0, false, White),
		NewText(image.Pt(12, 40), red, "héllo 세계 \U0001F600", 72),
	}
	for _, o := range objs {
		if err := o.Validate(); err != nil {
			t.Fatalf("fixture %s invalid: %v", o, err)
		}
		got := roundTrip(t, o)
		if !reflect.DeepEqual(got, o) {
			t.Errorf("round trip mismatch:\n got %#v\nwant %#v", got, o)
		}
	}
}

func TestLineEncodeDropsFill(t *testing.T) {
	l := NewLine(image.Pt(1, 1), image.Pt(2, 2), red, 1)
	l.Filled = true
	got := roundTrip(t, l).Base()
	if got.Filled || got.FillColor != White {
		t.Fatalf("line decoded with fill %v %v", got.Filled, got.FillColor)
	}
}

func TestDecodeIgnoresAlpha(t *testing.T) {
	c := NewCircle(image.Pt(0, 0), image.Pt(4, 4), color.RGBA{10, 20, 30, 0x40}, 1, true, color.RGBA{1, 1, 1, 0})
	got := roundTrip(t, c).Base()
	if got.Color.A != 0xff || got.FillColor.A != 0xff {
		t.Fatalf("decoded colours should be opaque: %v %v", got.Color, got.FillColor)
	}
	if got.Color.R != 10 || got.Color.G != 20 || got.Color.B != 30 {
		t.Fatalf("colour channels changed: %v", got.Color)
	}
}

func TestDecodeTagMismatch(t *testing.T) {
	var buf bytes.Buffer
	if err := NewCircle(image.Pt(0, 0), image.Pt(5, 5), red, 1, false, White).Encode(&buf); err != nil {
		t.Fatal(err)
	}
	buf.Next(4) // tag consumed by the caller
	_, err := DecodeLine(&buf, ModeCircle)
	var fe *FormatError
	if !errors.As(err, &fe) || !errors.Is(err, ErrTagMismatch) {
		t.Fatalf("DecodeLine with circle tag: %v", err)
	}
	if _, err := DecodeText(bytes.NewReader(make([]byte, 64)), ModeRectangle); !errors.Is(err, ErrTagMismatch) {
		t.Fatalf("DecodeText with rectangle tag: %v", err)
	}
}

func TestDecodeTruncated(t *testing.T) {
	var buf bytes.Buffer
	if err := NewText(image.Pt(1, 2), red, "abc", 16).Encode(&buf); err != nil {
		t.Fatal(err)
	}
	data := buf.Bytes()
	for n := 0; n < len(data); n++ {
		_, err := Decode(bytes.NewReader(data[:n]))
		var fe *FormatError
		if !errors.As(err, &fe) {
			t.Fatalf("prefix %d: want FormatError, got %v", n, err)
		}
		if !errors.Is(err, io.ErrUnexpectedEOF) {
			t.Fatalf("prefix %d: want unexpected EOF, got %v", n, err)
		}
	}
}

func TestDecodeUnknownTag(t *testing.T) {
	for _, tag := range []byte{0, 1, 5, 7, 42} {
		r := bytes.NewReader([]byte{0, 0, 0, tag, 0xaa})
		if _, err := Decode(r); !errors.Is(err, ErrUnknownTag) {
			t.Fatalf("tag %d: got %v", tag, err)
		}
		if r.Len() != 1 {
			t.Fatalf("tag %d consumed payload", tag)
		}
	}
}

func TestValidate(t *testing.T) {
	p, q := image.Pt(0, 0), image.Pt(5, 5)
	tests := []struct {
		obj  Object
		want bool
	}{
		{NewLine(p, q, red, 0), false},
		{NewLine(p, q, red, 1), true},
		{NewLine(p, q, red, 100), true},
		{NewLine(p, q, red, 101), false},
		{NewCircle(p, q, red, 0, false, White), false},
		{NewCircle(p, p, red, 3, false, White), false},
		{NewCircle(p, q, red, 3, false, White), true},
		{NewRectangle(p, q, red, 0, false, White), true},
		{NewRectangle(p, q, red, -1, false, White), false},
		{NewRectangle(p, q, red, 101, false, White), false},
		{NewText(p, red, "hi", 5), false},
		{NewText(p, red, "hi", 8), true},
		{NewText(p, red, "hi", 72), true},
		{NewText(p, red, "hi", 73), false},
		{NewText(p, red, "   ", 12), false},
	}
	for _, tt := range tests {
		err := tt.obj.Validate()
		if (err == nil) != tt.want {
			t.Errorf("%s: Validate() = %v, want valid=%t", tt.obj, err, tt.want)
		}
		if err != nil {
			var ve *ValidationError
			if !errors.As(err, &ve) || ve.Mode != tt.obj.Mode() {
				t.Errorf("%s: error %v is not a ValidationError for its mode", tt.obj, err)
			}
		}
	}
}

func TestHitTest(t *testing.T) {
	rect := NewRectangle(image.Pt(10, 10), image.Pt(20, 20), red, 1, false, White)
	if !rect.HitTest(image.Rect(0, 0, 15, 15)) {
		t.Errorf("overlapping selection should hit")
	}
	if rect.HitTest(image.Rect(30, 30, 40, 40)) {
		t.Errorf("disjoint selection should miss")
	}

	vertical := NewLine(image.Pt(5, 0), image.Pt(5, 20), red, 1)
	if !vertical.HitTest(image.Rect(0, 0, 10, 10)) {
		t.Errorf("rectangle holding an endpoint should hit a zero-width line")
	}
	if vertical.HitTest(image.Rect(0, 8, 10, 12)) {
		t.Errorf("degenerate line box never overlaps")
	}

	text := NewText(image.Pt(50, 50), red, "label", 16)
	if !text.HitTest(image.Rect(45, 45, 55, 55)) {
		t.Errorf("text anchor inside selection should hit")
	}
	if text.HitTest(image.Rect(51, 30, 90, 60)) {
		t.Errorf("text is only hit through its anchor")
	}

	c := NewCircle(image.Pt(0, 0), image.Pt(10, 10), red, 1, false, White)
	if c.HitTest(image.Rect(3, 3, 3, 3)) {
		t.Errorf("empty selection never hits")
	}
}

func TestTranslate(t *testing.T) {
	r := NewRectangle(image.Pt(1, 2), image.Pt(3, 4), red, 1, false, White)
	r.Translate(10, -1)
	if r.From != image.Pt(11, 1) || r.To != image.Pt(13, 3) {
		t.Fatalf("rectangle moved to %v %v", r.From, r.To)
	}
	tx := NewText(image.Pt(5, 5), red, "x", 12)
	tx.Translate(-5, 2)
	if tx.From != image.Pt(0, 7) || tx.To != tx.From {
		t.Fatalf("text anchor %v end %v", tx.From, tx.To)
	}
}

func TestRenderFillsBeforeStroke(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 20, 20))
	blue := color.RGBA{0, 0, 0xff, 0xff}
	NewRectangle(image.Pt(2, 2), image.Pt(12, 12), red, 1, true, blue).Render(img)
	if img.RGBAAt(2, 2) != red {
		t.Fatalf("outline should be drawn over the fill, got %v", img.RGBAAt(2, 2))
	}
	if img.RGBAAt(7, 7) != blue {
		t.Fatalf("interior should carry the fill, got %v", img.RGBAAt(7, 7))
	}
}

func TestParseMode(t *testing.T) {
	for _, m := range Modes() {
		got, err := ParseMode(m.String())
		if err != nil || got != m {
			t.Errorf("ParseMode(%q) = %v, %v", m.String(), got, err)
		}
	}
	if _, err := ParseMode("lasso"); err == nil {
		t.Errorf("expected error for unknown mode")
	}
}

func TestTextDrawReportsFaceError(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 60, 30))
	if err := NewText(image.Pt(2, 20), red, "hi", 0).Draw(dst); err == nil {
		t.Fatalf("expected an error for a zero font size")
	}
	if err := NewText(image.Pt(2, 20), red, "hi", 16).Draw(dst); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	painted := false
	for y := 0; y < 30 && !painted; y++ {
		for x := 0; x < 60; x++ {
			if dst.RGBAAt(x, y).A != 0 {
				painted = true
				break
			}
		}
	}
	if !painted {
		t.Fatalf("text left the image blank")
	}
}
