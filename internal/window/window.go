// Package window hosts an editor in a native window. All editor access
// happens on the window's event loop; other goroutines go through Do.
package window

import (
	"context"
	"fmt"
	"image"
	"image/draw"
	"log"
	"sync"
	"time"

	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"

	"github.com/example/paintboard/internal/editor"
	"github.com/example/paintboard/internal/notify"
	"github.com/example/paintboard/internal/render"
	"github.com/example/paintboard/internal/theme"
)

const (
	margin       = 16
	statusHeight = 20
	checkerSize  = 8
	maxInitialW  = 1400
	maxInitialH  = 1000
	messageTime  = 2 * time.Second
)

var pageOrigin = image.Pt(margin, margin)

// Window shows one editor.
type Window struct {
	ed       *editor.Editor
	theme    *theme.Theme
	title    string
	scene    string
	export   string
	notifier *notify.Notifier
	onClose  func()

	width, height int

	mu        sync.Mutex
	send      func(any)
	closed    chan struct{}
	closeOnce sync.Once

	pressed      bool
	message      string
	messageUntil time.Time
	now          func() time.Time
}

// Option configures a Window during creation.
type Option func(*Window)

// WithTheme sets the window palette.
func WithTheme(t *theme.Theme) Option { return func(w *Window) { w.theme = t } }

// WithTitle sets the window title.
func WithTitle(title string) Option { return func(w *Window) { w.title = title } }

// WithScenePath sets the file Ctrl+S saves to and Ctrl+O loads from.
func WithScenePath(path string) Option { return func(w *Window) { w.scene = path } }

// WithExportPath sets the image file Ctrl+E exports to.
func WithExportPath(path string) Option { return func(w *Window) { w.export = path } }

// WithNotifier routes save, export and copy notifications.
func WithNotifier(n *notify.Notifier) Option { return func(w *Window) { w.notifier = n } }

// WithOnClose registers a callback invoked when the window closes.
func WithOnClose(fn func()) Option { return func(w *Window) { w.onClose = fn } }

// New creates a window for ed. The editor must not be used directly once
// Run has been called; use Do.
func New(ed *editor.Editor, opts ...Option) *Window {
	w := &Window{
		ed:     ed,
		theme:  theme.Default(),
		title:  "Paintboard",
		closed: make(chan struct{}),
		now:    time.Now,
	}
	for _, o := range opts {
		o(w)
	}
	dw, dh := ed.Size()
	z := ed.Zoom()
	w.width = min(int(float64(dw)*z)+2*margin, maxInitialW)
	w.height = min(int(float64(dh)*z)+2*margin+statusHeight, maxInitialH)
	return w
}

type commandEvent struct {
	fn   func(*editor.Editor)
	done chan struct{}
}

// Do runs fn on the event loop and waits for it. Before the window opens
// and after it closes fn runs on the calling goroutine.
func (w *Window) Do(fn func(*editor.Editor)) {
	w.mu.Lock()
	send := w.send
	w.mu.Unlock()
	if send == nil {
		fn(w.ed)
		return
	}
	done := make(chan struct{})
	send(commandEvent{fn: fn, done: done})
	select {
	case <-done:
	case <-w.closed:
	}
}

func (w *Window) detach() {
	w.closeOnce.Do(func() {
		w.mu.Lock()
		w.send = nil
		w.mu.Unlock()
		close(w.closed)
		if w.onClose != nil {
			w.onClose()
		}
	})
}

// Run executes the UI loop using shiny's driver.
func (w *Window) Run() { driver.Main(w.Main) }

type paintState struct {
	size      image.Point
	frame     *image.RGBA
	selection image.Rectangle
	selected  bool
	status    string
}

// Main runs the event loop on s until the window closes.
func (w *Window) Main(s screen.Screen) {
	win, err := s.NewWindow(&screen.NewWindowOptions{Width: w.width, Height: w.height, Title: w.title})
	if err != nil {
		log.Printf("new window: %v", err)
		return
	}
	defer win.Release()
	w.mu.Lock()
	w.send = win.Send
	w.mu.Unlock()
	defer w.detach()

	var paintMu sync.Mutex
	var paintCancel context.CancelFunc
	cancelPaint := func() {
		paintMu.Lock()
		if paintCancel != nil {
			paintCancel()
		}
		paintMu.Unlock()
	}
	paintCh := make(chan paintState, 1)
	go func() {
		for st := range paintCh {
			ctx, cancel := context.WithCancel(context.Background())
			paintMu.Lock()
			paintCancel = cancel
			paintMu.Unlock()
			w.present(ctx, s, win, st)
			cancel()
			paintMu.Lock()
			paintCancel = nil
			paintMu.Unlock()
		}
	}()
	defer close(paintCh)

	winSize := image.Pt(w.width, w.height)
	for {
		switch e := win.NextEvent().(type) {
		case lifecycle.Event:
			if e.To == lifecycle.StageDead {
				cancelPaint()
				return
			}
		case size.Event:
			winSize = e.Size()
			win.Send(paint.Event{})
		case paint.Event:
			cancelPaint()
			st := w.snapshot(winSize)
			select {
			case paintCh <- st:
			default:
				select {
				case <-paintCh:
				default:
				}
				paintCh <- st
			}
		case mouse.Event:
			if w.handleMouse(e) {
				win.Send(paint.Event{})
			}
		case key.Event:
			if w.handleKey(e) {
				win.Send(paint.Event{})
			}
		case commandEvent:
			e.fn(w.ed)
			close(e.done)
			win.Send(paint.Event{})
		}
	}
}

func (w *Window) snapshot(winSize image.Point) paintState {
	st := paintState{size: winSize, frame: w.ed.Frame(), status: w.status()}
	if r, ok := w.ed.SelectionRect(); ok {
		st.selection = w.ed.Canvas().ScreenRect(r).Add(pageOrigin)
		st.selected = true
	}
	return st
}

func (w *Window) present(ctx context.Context, s screen.Screen, win screen.Window, st paintState) {
	if st.size.X <= 0 || st.size.Y <= 0 {
		return
	}
	b, err := s.NewBuffer(st.size)
	if err != nil {
		log.Printf("new buffer: %v", err)
		return
	}
	defer b.Release()
	w.compose(b.RGBA(), st)
	if ctx.Err() != nil {
		return
	}
	win.Upload(image.Point{}, b, b.Bounds())
	win.Publish()
}

// compose paints the backdrop, the page with its shadow, the themed
// selection outline and the status bar.
func (w *Window) compose(dst *image.RGBA, st paintState) {
	th := w.theme
	draw.Draw(dst, dst.Bounds(), image.NewUniform(th.Background), image.Point{}, draw.Src)

	page := image.Rectangle{Min: pageOrigin, Max: pageOrigin.Add(st.frame.Bounds().Size())}
	shadow := render.DefaultShadowOptions()
	shadow.Color = th.Paper
	render.PageShadow(dst, page, shadow)
	render.Checkerboard(dst, page, checkerSize, th.CheckerLight, th.CheckerDark)
	draw.Draw(dst, page, st.frame, st.frame.Bounds().Min, draw.Over)
	if st.selected {
		render.DashedRect(dst, st.selection, 5, th.SelectionA, th.SelectionB)
	}

	b := dst.Bounds()
	bar := image.Rect(b.Min.X, b.Max.Y-statusHeight, b.Max.X, b.Max.Y)
	draw.Draw(dst, bar, image.NewUniform(th.StatusBackground), image.Point{}, draw.Src)
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(th.StatusText), Face: basicfont.Face7x13}
	d.Dot = fixed.P(bar.Min.X+6, bar.Max.Y-6)
	d.DrawString(st.status)
}

// status describes the active tool settings for the status bar.
func (w *Window) status() string {
	ed := w.ed
	fill := "off"
	if ed.FillEnabled() {
		fill = "on"
	}
	s := fmt.Sprintf("%s | stroke %d %s | fill %s %s | eraser %d | font %d | Zoom: %d%%",
		ed.Mode(), ed.Stroke(), theme.Hex(ed.StrokeColor()), fill, theme.Hex(ed.FillColor()),
		ed.EraserSize(), ed.FontSize(), int(ed.Zoom()*100+0.5))
	if w.message != "" && w.now().Before(w.messageUntil) {
		s += " | " + w.message
	}
	return s
}

func (w *Window) flash(format string, args ...any) {
	w.message = fmt.Sprintf(format, args...)
	w.messageUntil = w.now().Add(messageTime)
	log.Print(w.message)
}
