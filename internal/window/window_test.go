package window

import (
	"image"
	"image/color"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/mouse"

	"github.com/example/paintboard/internal/drawing"
	"github.com/example/paintboard/internal/editor"
	"github.com/example/paintboard/internal/theme"
)

func newTestWindow(opts ...Option) *Window {
	return New(editor.New(editor.WithSize(60, 40)), opts...)
}

func press(r rune) key.Event {
	return key.Event{Rune: r, Direction: key.DirPress}
}

func code(c key.Code, mods key.Modifiers) key.Event {
	return key.Event{Rune: -1, Code: c, Modifiers: mods, Direction: key.DirPress}
}

func pointer(x, y int, b mouse.Button, d mouse.Direction) mouse.Event {
	return mouse.Event{X: float32(x + margin), Y: float32(y + margin), Button: b, Direction: d}
}

func TestInitialSize(t *testing.T) {
	w := newTestWindow()
	if w.width != 60+2*margin || w.height != 40+2*margin+statusHeight {
		t.Fatalf("initial size %dx%d", w.width, w.height)
	}
	big := New(editor.New(editor.WithSize(4000, 3000)))
	if big.width != maxInitialW || big.height != maxInitialH {
		t.Fatalf("large document gave %dx%d", big.width, big.height)
	}
}

func TestModeAndParameterKeys(t *testing.T) {
	w := newTestWindow()
	for r, m := range modeKeys {
		if !w.handleKey(press(r)) || w.ed.Mode() != m {
			t.Fatalf("key %q did not select %s", r, m)
		}
	}
	w.handleKey(press(']'))
	w.handleKey(press(']'))
	if w.ed.Stroke() != 3 {
		t.Fatalf("stroke %d", w.ed.Stroke())
	}
	w.handleKey(press('.'))
	if w.ed.EraserSize() != 15 {
		t.Fatalf("eraser %d", w.ed.EraserSize())
	}
	w.handleKey(press('}'))
	if w.ed.FontSize() != 18 {
		t.Fatalf("font %d", w.ed.FontSize())
	}
	w.handleKey(press('g'))
	if !w.ed.FillEnabled() {
		t.Fatalf("fill not toggled")
	}
	w.handleKey(press('='))
	if w.ed.Zoom() != 1.5 {
		t.Fatalf("zoom %v", w.ed.Zoom())
	}
	w.handleKey(code(key.CodeX, key.ModControl|key.ModShift))
	if w.ed.Zoom() != 1 {
		t.Fatalf("ctrl+shift+x zoom %v", w.ed.Zoom())
	}
	if w.handleKey(press('q')) {
		t.Fatalf("unbound key handled")
	}
	if w.handleKey(key.Event{Rune: 'l', Direction: key.DirRelease}) {
		t.Fatalf("release handled")
	}
}

func TestMouseDrawsLine(t *testing.T) {
	w := newTestWindow()
	w.handleKey(press('l'))
	if !w.handleMouse(pointer(2, 3, mouse.ButtonLeft, mouse.DirPress)) {
		t.Fatalf("press not handled")
	}
	w.handleMouse(pointer(10, 12, mouse.ButtonNone, mouse.DirNone))
	w.handleMouse(pointer(20, 30, mouse.ButtonLeft, mouse.DirRelease))
	objs := w.ed.Objects()
	if len(objs) != 1 {
		t.Fatalf("scene has %d objects", len(objs))
	}
	if b := objs[0].Base(); b.From != image.Pt(2, 3) || b.To != image.Pt(20, 30) {
		t.Fatalf("line %v-%v", b.From, b.To)
	}
	if w.handleMouse(pointer(5, 5, mouse.ButtonNone, mouse.DirNone)) {
		t.Fatalf("hover without a button handled")
	}
}

func TestWheelZoom(t *testing.T) {
	w := newTestWindow()
	e := pointer(0, 0, mouse.ButtonWheelUp, mouse.DirStep)
	if w.handleMouse(e) {
		t.Fatalf("wheel without ctrl handled")
	}
	e.Modifiers = key.ModControl
	w.handleMouse(e)
	if w.ed.Zoom() != 1.5 {
		t.Fatalf("zoom %v", w.ed.Zoom())
	}
}

func TestTextEntry(t *testing.T) {
	w := newTestWindow()
	w.handleKey(press('t'))
	w.handleMouse(pointer(5, 20, mouse.ButtonLeft, mouse.DirPress))
	w.handleMouse(pointer(5, 20, mouse.ButtonLeft, mouse.DirRelease))
	for _, r := range "hi!" {
		w.handleKey(press(r))
	}
	w.handleKey(code(key.CodeDeleteBackspace, 0))
	if _, text, ok := w.ed.PendingText(); !ok || text != "hi" {
		t.Fatalf("pending text %q %t", text, ok)
	}
	// Mode keys type while text is pending.
	w.handleKey(press('l'))
	w.handleKey(code(key.CodeReturnEnter, 0))
	objs := w.ed.Objects()
	if len(objs) != 1 || objs[0].(*drawing.Text).Text != "hil" {
		t.Fatalf("objects %v", objs)
	}
	if w.ed.Mode() != drawing.ModeText {
		t.Fatalf("mode changed while typing")
	}
}

func TestSelectionKeys(t *testing.T) {
	w := newTestWindow()
	l := drawing.NewLine(image.Pt(5, 5), image.Pt(10, 10), drawing.Black, 1)
	w.ed.Add(l)
	w.ed.Select(image.Rect(0, 0, 20, 20))
	w.handleKey(code(key.CodeRightArrow, key.ModShift))
	w.handleKey(code(key.CodeDownArrow, 0))
	if l.From != image.Pt(15, 6) {
		t.Fatalf("moved to %v", l.From)
	}
	w.handleKey(code(key.CodeDeleteForward, 0))
	if len(w.ed.Objects()) != 0 {
		t.Fatalf("delete key kept the line")
	}
	if w.handleKey(code(key.CodeLeftArrow, 0)) {
		t.Fatalf("arrow without selection handled")
	}
}

func TestSaveAndOpenShortcuts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.pbd")
	w := newTestWindow(WithScenePath(path))
	w.ed.Add(drawing.NewRectangle(image.Pt(1, 1), image.Pt(9, 9), drawing.Black, 1, false, drawing.White))
	w.handleKey(code(key.CodeS, key.ModControl))
	w.handleKey(code(key.CodeN, key.ModControl))
	if len(w.ed.Objects()) != 0 {
		t.Fatalf("new drawing kept objects")
	}
	w.handleKey(code(key.CodeO, key.ModControl))
	if len(w.ed.Objects()) != 1 {
		t.Fatalf("open restored %d objects", len(w.ed.Objects()))
	}
	if !strings.Contains(w.status(), "opened") {
		t.Fatalf("status %q", w.status())
	}

	unset := newTestWindow()
	unset.handleKey(code(key.CodeE, key.ModControl))
	if !strings.Contains(unset.status(), "no file configured") {
		t.Fatalf("status %q", unset.status())
	}
}

func TestStatusMessageExpires(t *testing.T) {
	w := newTestWindow()
	now := time.Unix(100, 0)
	w.now = func() time.Time { return now }
	w.flash("hello")
	if !strings.Contains(w.status(), "hello") || !strings.Contains(w.status(), "Zoom: 100%") {
		t.Fatalf("status %q", w.status())
	}
	now = now.Add(3 * time.Second)
	if strings.Contains(w.status(), "hello") {
		t.Fatalf("message did not expire")
	}
}

func TestCompose(t *testing.T) {
	th := theme.Default()
	th.Background = color.RGBA{1, 2, 3, 255}
	th.StatusBackground = color.RGBA{9, 9, 9, 255}
	w := newTestWindow(WithTheme(th))
	red := color.RGBA{255, 0, 0, 255}
	w.ed.Add(drawing.NewRectangle(image.Pt(0, 0), image.Pt(59, 39), red, 1, false, drawing.White))
	w.ed.Select(image.Rect(20, 20, 30, 30))

	dst := image.NewRGBA(image.Rect(0, 0, w.width+40, w.height))
	w.compose(dst, w.snapshot(dst.Bounds().Size()))
	if got := dst.RGBAAt(dst.Bounds().Dx()-1, 0); got != th.Background {
		t.Fatalf("backdrop %v", got)
	}
	if got := dst.RGBAAt(margin, margin); got != red {
		t.Fatalf("page corner %v", got)
	}
	if got := dst.RGBAAt(margin+30, margin+10); got != drawing.White {
		t.Fatalf("page interior %v", got)
	}
	if got := dst.RGBAAt(margin+20, margin+20); got != th.SelectionA {
		t.Fatalf("selection corner %v", got)
	}
	if got := dst.RGBAAt(dst.Bounds().Dx()-1, dst.Bounds().Dy()-1); got != th.StatusBackground {
		t.Fatalf("status bar %v", got)
	}
}

func TestDoRunsDirectlyWhenClosed(t *testing.T) {
	w := newTestWindow()
	ran := false
	w.Do(func(ed *editor.Editor) { ran = ed == w.ed })
	if !ran {
		t.Fatalf("Do did not run")
	}
	closed := false
	w.onClose = func() { closed = true }
	w.detach()
	w.detach()
	if !closed {
		t.Fatalf("close callback not run")
	}
}
