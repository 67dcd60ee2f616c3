package window

import (
	"errors"
	"image"
	"unicode"
	"unicode/utf8"

	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/mouse"

	"github.com/example/paintboard/internal/clipboard"
	"github.com/example/paintboard/internal/drawing"
	"github.com/example/paintboard/internal/editor"
)

var modeKeys = map[rune]drawing.Mode{
	's': drawing.ModeSelection,
	'p': drawing.ModePoint,
	'l': drawing.ModeLine,
	'c': drawing.ModeCircle,
	'r': drawing.ModeRectangle,
	'e': drawing.ModeEraser,
	't': drawing.ModeText,
	'f': drawing.ModeFillBucket,
}

// handleMouse forwards primary button gestures to the editor in page
// coordinates. It reports whether a repaint is needed.
func (w *Window) handleMouse(e mouse.Event) bool {
	p := image.Pt(int(e.X), int(e.Y)).Sub(pageOrigin)
	switch {
	case e.Direction == mouse.DirStep && e.Modifiers&key.ModControl != 0:
		switch e.Button {
		case mouse.ButtonWheelUp:
			w.ed.ZoomIn()
		case mouse.ButtonWheelDown:
			w.ed.ZoomOut()
		default:
			return false
		}
	case e.Button == mouse.ButtonLeft && e.Direction == mouse.DirPress:
		w.pressed = true
		w.ed.PointerDown(p.X, p.Y)
	case e.Button == mouse.ButtonLeft && e.Direction == mouse.DirRelease:
		if !w.pressed {
			return false
		}
		w.pressed = false
		w.ed.PointerUp(p.X, p.Y)
	case e.Direction == mouse.DirNone && w.pressed:
		w.ed.PointerDrag(p.X, p.Y)
	default:
		return false
	}
	return true
}

// handleKey applies a keyboard shortcut. It reports whether a repaint is
// needed.
func (w *Window) handleKey(e key.Event) bool {
	if e.Direction == key.DirRelease {
		return false
	}
	if _, text, ok := w.ed.PendingText(); ok {
		return w.textKey(e, text)
	}
	ed := w.ed
	shift := e.Modifiers&key.ModShift != 0
	if e.Modifiers&key.ModControl != 0 {
		switch e.Code {
		case key.CodeS:
			w.saveScene()
		case key.CodeO:
			w.openScene()
		case key.CodeE:
			w.exportImage()
		case key.CodeC:
			w.copyImage()
		case key.CodeV:
			w.pasteImage()
		case key.CodeN:
			ed.NewDocument()
			w.flash("new drawing")
		case key.CodeZ:
			if !shift {
				return false
			}
			ed.ZoomIn()
		case key.CodeX:
			if !shift {
				return false
			}
			ed.ZoomOut()
		case key.CodeD:
			ed.SetDebug(!ed.Debug())
			w.flash("debug %v", ed.Debug())
		case key.CodeR:
			ed.Rotate(!shift)
		default:
			return false
		}
		return true
	}

	step := 1
	if shift {
		step = 10
	}
	switch e.Code {
	case key.CodeDeleteForward, key.CodeDeleteBackspace:
		w.flash("deleted %d objects", ed.DeleteSelection())
		return true
	case key.CodeEscape:
		ed.ClearSelection()
		return true
	case key.CodeLeftArrow:
		return w.moveSelection(image.Pt(-step, 0))
	case key.CodeRightArrow:
		return w.moveSelection(image.Pt(step, 0))
	case key.CodeUpArrow:
		return w.moveSelection(image.Pt(0, -step))
	case key.CodeDownArrow:
		return w.moveSelection(image.Pt(0, step))
	}

	if m, ok := modeKeys[e.Rune]; ok {
		ed.SetMode(m)
		return true
	}
	switch e.Rune {
	case 'h':
		ed.FlipH()
	case 'v':
		ed.FlipV()
	case '[':
		ed.SetStroke(ed.Stroke() - 1)
	case ']':
		ed.SetStroke(ed.Stroke() + 1)
	case ',':
		ed.SetEraserSize(ed.EraserSize() - editor.EraserStep)
	case '.':
		ed.SetEraserSize(ed.EraserSize() + editor.EraserStep)
	case '{':
		ed.SetFontSize(ed.FontSize() - editor.FontStep)
	case '}':
		ed.SetFontSize(ed.FontSize() + editor.FontStep)
	case '-':
		ed.ZoomOut()
	case '=', '+':
		ed.ZoomIn()
	case 'g':
		ed.SetFillEnabled(!ed.FillEnabled())
	case 'x':
		if err := ed.FillSelection(ed.FillColor()); err != nil {
			w.flash("fill selection: %v", err)
		}
	default:
		return false
	}
	return true
}

func (w *Window) moveSelection(d image.Point) bool {
	if err := w.ed.MoveSelection(d); err != nil {
		return false
	}
	return true
}

// textKey edits the pending text buffer.
func (w *Window) textKey(e key.Event, text string) bool {
	switch e.Code {
	case key.CodeReturnEnter:
		if !w.ed.CommitText(text) {
			w.flash("text discarded")
		}
	case key.CodeEscape:
		w.ed.CancelText()
	case key.CodeDeleteBackspace:
		if text == "" {
			return false
		}
		_, n := utf8.DecodeLastRuneInString(text)
		w.ed.UpdateText(text[:len(text)-n])
	default:
		if e.Rune <= 0 || !unicode.IsPrint(e.Rune) || e.Modifiers&key.ModControl != 0 {
			return false
		}
		w.ed.UpdateText(text + string(e.Rune))
	}
	return true
}

var errNoPath = errors.New("no file configured")

func (w *Window) saveScene() {
	if w.scene == "" {
		w.flash("save: %v", errNoPath)
		return
	}
	if err := w.ed.SaveScene(w.scene); err != nil {
		w.flash("save: %v", err)
		return
	}
	w.flash("saved %s", w.scene)
	w.notifier.Save(w.scene)
}

func (w *Window) openScene() {
	if w.scene == "" {
		w.flash("open: %v", errNoPath)
		return
	}
	warnings, err := w.ed.LoadScene(w.scene)
	if err != nil {
		w.flash("open: %v", err)
		return
	}
	if len(warnings) > 0 {
		w.flash("opened %s, dropped %d records", w.scene, len(warnings))
		return
	}
	w.flash("opened %s", w.scene)
}

func (w *Window) exportImage() {
	if w.export == "" {
		w.flash("export: %v", errNoPath)
		return
	}
	if err := w.ed.ExportImage(w.export, ""); err != nil {
		w.flash("export: %v", err)
		return
	}
	w.flash("exported %s", w.export)
	w.notifier.Export(w.export)
}

func (w *Window) copyImage() {
	if err := clipboard.WriteImage(w.ed.Flatten()); err != nil {
		w.flash("copy: %v", err)
		return
	}
	w.flash("image copied to clipboard")
	w.notifier.Copy("drawing")
}

func (w *Window) pasteImage() {
	img, err := clipboard.ReadImage()
	if err != nil {
		w.flash("paste: %v", err)
		return
	}
	if err := w.ed.ImportRGBA(img); err != nil {
		w.flash("paste: %v", err)
		return
	}
	w.flash("pasted image")
}
