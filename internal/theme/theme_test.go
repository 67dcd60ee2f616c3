package theme

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseColor(t *testing.T) {
	cases := []struct {
		in   string
		want color.RGBA
	}{
		{"#FF0000", color.RGBA{255, 0, 0, 255}},
		{"#00ff0080", color.RGBA{0, 255, 0, 128}},
		{"red", color.RGBA{255, 0, 0, 255}},
		{" CornflowerBlue ", color.RGBA{100, 149, 237, 255}},
	}
	for _, tc := range cases {
		got, err := ParseColor(tc.in)
		if err != nil {
			t.Errorf("ParseColor(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseColor(%q) = %v want %v", tc.in, got, tc.want)
		}
	}
	for _, bad := range []string{"", "#12", "#GGGGGG", "notacolor"} {
		if _, err := ParseColor(bad); err == nil {
			t.Errorf("ParseColor(%q) succeeded", bad)
		}
	}
}

func TestParseKeepsDefaults(t *testing.T) {
	th, err := Parse(strings.NewReader("Name: mine\nbackground: #010203\nUnknown: #FFFFFF\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if th.Name != "mine" || th.Background != (color.RGBA{1, 2, 3, 255}) {
		t.Fatalf("parsed %+v", th)
	}
	if th.CheckerDark != Default().CheckerDark {
		t.Fatalf("missing key did not keep default")
	}
	if _, err := Parse(strings.NewReader("Paper: #XYZ\n")); err == nil {
		t.Fatalf("bad colour accepted")
	}
}

func TestEmbeddedThemes(t *testing.T) {
	names := Names()
	if len(names) < 2 {
		t.Fatalf("embedded themes %v", names)
	}
	l := &Loader{ConfigDir: t.TempDir(), SystemDir: t.TempDir()}
	for _, n := range names {
		th, err := l.Load(n)
		if err != nil {
			t.Fatalf("Load(%q): %v", n, err)
		}
		if th.Name != n {
			t.Errorf("theme %q named %q", n, th.Name)
		}
	}
}

func TestLoaderSearchOrder(t *testing.T) {
	dir := t.TempDir()
	l := &Loader{ConfigDir: dir, SystemDir: t.TempDir()}
	if err := os.WriteFile(filepath.Join(dir, "custom.theme"), []byte("Name: custom\nPaper: #112233\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	th, err := l.Load("custom")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if th.Paper != (color.RGBA{0x11, 0x22, 0x33, 255}) {
		t.Fatalf("paper %v", th.Paper)
	}
	if th, err := l.Load(""); err != nil || th.Name != "Default" {
		t.Fatalf("empty name gave %v, %v", th, err)
	}
	if _, err := l.Load("missing"); err == nil {
		t.Fatalf("missing theme loaded")
	}
}

func TestFieldsRoundTrip(t *testing.T) {
	th := Default()
	th.SelectionB = color.RGBA{9, 8, 7, 6}
	var sb strings.Builder
	for _, f := range Fields(th) {
		sb.WriteString(f.Name + ": " + Hex(f.Color) + "\n")
	}
	back, err := Parse(strings.NewReader(sb.String()))
	if err != nil {
		t.Fatal(err)
	}
	back.Name = th.Name
	if *back != *th {
		t.Fatalf("round trip %+v != %+v", back, th)
	}
}
