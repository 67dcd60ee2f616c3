package capture

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

var testMonitors = []MonitorInfo{
	{Index: 0, Name: "HDMI-1", Rect: image.Rect(0, 0, 4, 4)},
	{Index: 1, Name: "eDP-1", Rect: image.Rect(4, 0, 8, 4), Primary: true},
}

func TestFindMonitor(t *testing.T) {
	cases := []struct {
		sel  string
		want int
	}{
		{"", 0},
		{"primary", 1},
		{"1", 1},
		{"#0", 0},
		{"edp", 1},
	}
	for _, tc := range cases {
		got, err := FindMonitor(testMonitors, tc.sel)
		if err != nil {
			t.Fatalf("FindMonitor(%q): %v", tc.sel, err)
		}
		if got.Index != tc.want {
			t.Errorf("FindMonitor(%q) = %d want %d", tc.sel, got.Index, tc.want)
		}
	}
	for _, bad := range []string{"5", "dp-9"} {
		if _, err := FindMonitor(testMonitors, bad); err == nil {
			t.Errorf("FindMonitor(%q) succeeded", bad)
		}
	}
	if _, err := FindMonitor(nil, ""); !errors.Is(err, errNoMonitors) {
		t.Errorf("empty list: %v", err)
	}
}

func stubPlatform(t *testing.T, portal, root func() (*image.RGBA, error)) {
	t.Helper()
	origPortal, origRoot, origList := portalShot, rootShot, listMonitors
	portalShot = func(Options) (*image.RGBA, error) { return portal() }
	rootShot = root
	listMonitors = func() ([]MonitorInfo, error) { return testMonitors, nil }
	t.Cleanup(func() { portalShot, rootShot, listMonitors = origPortal, origRoot, origList })
}

func desktop() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 8, 4))
	img.SetRGBA(5, 1, color.RGBA{255, 0, 0, 255})
	return img
}

func TestScreenFallsBackToRootWindow(t *testing.T) {
	rootCalls := 0
	stubPlatform(t,
		func() (*image.RGBA, error) { return nil, errors.New("no portal") },
		func() (*image.RGBA, error) { rootCalls++; return desktop(), nil },
	)
	img, err := Screen(Options{Display: "primary"})
	if err != nil {
		t.Fatalf("Screen: %v", err)
	}
	if rootCalls != 1 {
		t.Fatalf("root fallback called %d times", rootCalls)
	}
	if img.Bounds() != image.Rect(0, 0, 4, 4) {
		t.Fatalf("cropped bounds %v", img.Bounds())
	}
	if img.RGBAAt(1, 1) != (color.RGBA{255, 0, 0, 255}) {
		t.Fatalf("crop lost the marker pixel")
	}
}

func TestScreenReportsBothFailures(t *testing.T) {
	rootErr := errors.New("no X")
	stubPlatform(t,
		func() (*image.RGBA, error) { return nil, errors.New("no portal") },
		func() (*image.RGBA, error) { return nil, rootErr },
	)
	if _, err := Screen(Options{}); !errors.Is(err, rootErr) {
		t.Fatalf("got %v", err)
	}
}

func TestScreenPrefersPortal(t *testing.T) {
	stubPlatform(t,
		func() (*image.RGBA, error) { return desktop(), nil },
		func() (*image.RGBA, error) { t.Fatal("root window read"); return nil, nil },
	)
	img, err := Screen(Options{})
	if err != nil || img.Bounds().Dx() != 8 {
		t.Fatalf("Screen = %v, %v", img, err)
	}
}

func TestCropOutside(t *testing.T) {
	if _, err := cropToRect(desktop(), image.Rect(20, 20, 30, 30)); err == nil {
		t.Fatalf("crop outside succeeded")
	}
}
