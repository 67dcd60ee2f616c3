//go:build linux || freebsd || openbsd || netbsd || dragonfly

package capture

import (
	"image/color"
	"testing"
)

func TestXImageToRGBA(t *testing.T) {
	// 2x1 image, 32 bpp BGRX with two bytes of row padding.
	data := []byte{1, 2, 3, 0, 4, 5, 6, 0, 9, 9}
	img, err := xImageToRGBA(32, data, 2, 1)
	if err != nil {
		t.Fatal(err)
	}
	if img.RGBAAt(0, 0) != (color.RGBA{3, 2, 1, 255}) || img.RGBAAt(1, 0) != (color.RGBA{6, 5, 4, 255}) {
		t.Fatalf("pixels %v %v", img.RGBAAt(0, 0), img.RGBAAt(1, 0))
	}
	if _, err := xImageToRGBA(16, data, 2, 1); err == nil {
		t.Fatalf("16 bpp accepted")
	}
	if _, err := xImageToRGBA(32, data[:4], 2, 1); err == nil {
		t.Fatalf("short row accepted")
	}
}

func TestPortalResult(t *testing.T) {
	if _, err := portalResult([]any{uint32(1), nil}); err == nil {
		t.Fatalf("cancelled request accepted")
	}
	if _, err := portalResult([]any{uint32(0)}); err == nil {
		t.Fatalf("short body accepted")
	}
}
