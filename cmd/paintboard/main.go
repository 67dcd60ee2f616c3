package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/example/paintboard/internal/config"
	"github.com/example/paintboard/internal/editor"
	"github.com/example/paintboard/internal/notify"
	"github.com/example/paintboard/internal/theme"
)

var (
	version            = "dev"
	commit             = ""
	date               = ""
	configPathOverride = ""
)

type runnable interface{ Run() error }

type root struct {
	fs       *flag.FlagSet
	program  string
	notifier *notify.Notifier
	config   *config.Config

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	saveAlerts   bool
	exportAlerts bool
	copyAlerts   bool
	themeName    string
	debug        bool
	width        int
	height       int
	activeTheme  *theme.Theme

	// session is the in-memory document of an interactive run. Commands
	// given no -file operate on it.
	session *editor.Editor
}

func (r *root) Program() string {
	return r.program
}

func (r *root) FlagSet() *flag.FlagSet {
	return r.fs
}

func newRoot() *root {
	cfg, err := config.NewLoader(version, configPathOverride).Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to load config: %v\n", err)
		cfg = config.New()
	}
	return newRootWith(cfg, notify.New(notify.LoadPreferences()), os.Stdin, os.Stdout, os.Stderr)
}

func newRootWith(cfg *config.Config, n *notify.Notifier, stdin io.Reader, stdout, stderr io.Writer) *root {
	r := &root{
		fs:       flag.NewFlagSet("paintboard", flag.ContinueOnError),
		program:  "paintboard",
		notifier: n,
		config:   cfg,
		stdin:    stdin,
		stdout:   stdout,
		stderr:   stderr,
	}
	r.fs.SetOutput(stderr)
	r.fs.BoolVar(&r.saveAlerts, "notify-save", cfg.Notify.Save, "show a desktop notification after saving a drawing")
	r.fs.BoolVar(&r.exportAlerts, "notify-export", cfg.Notify.Export, "show a desktop notification after exporting an image")
	r.fs.BoolVar(&r.copyAlerts, "notify-copy", cfg.Notify.Copy, "show a desktop notification after copying to the clipboard")
	r.fs.BoolVar(&r.debug, "debug", cfg.Debug, "log editor debug records to stderr")
	r.fs.IntVar(&r.width, "width", cfg.Width, "document width in pixels")
	r.fs.IntVar(&r.height, "height", cfg.Height, "document height in pixels")

	// Precedence: CLI > Env > Config > Default
	r.fs.StringVar(&r.themeName, "theme", "", "window theme ("+strings.Join(theme.Names(), ", ")+" or a .theme file)")
	r.fs.Usage = usageFunc(r)
	return r
}

func (r *root) Run(args []string) error {
	if err := r.fs.Parse(args); err != nil {
		return err
	}
	if r.fs.NArg() < 1 {
		return &UsageError{of: r}
	}
	if r.notifier != nil {
		r.notifier.Enable(notify.EventSave, r.saveAlerts)
		r.notifier.Enable(notify.EventExport, r.exportAlerts)
		r.notifier.Enable(notify.EventCopy, r.copyAlerts)
	}
	r.activeTheme = r.resolveTheme()
	return r.dispatch(r.fs.Arg(0), r.fs.Args()[1:])
}

func (r *root) dispatch(name string, args []string) error {
	var (
		cmd runnable
		err error
	)
	switch name {
	case "new":
		cmd, err = parseNewCmd(args, r)
	case "info":
		cmd, err = parseInfoCmd(args, r)
	case "draw":
		cmd, err = parseDrawCmd(args, r)
	case "select":
		cmd, err = parseSelectCmd(args, r)
	case "transform":
		cmd, err = parseTransformCmd(args, r)
	case "export":
		cmd, err = parseExportCmd(args, r)
	case "copy":
		cmd, err = parseCopyCmd(args, r)
	case "import", "import-screen", "paste":
		cmd, err = parseImportCmd(name, args, r)
	case "edit":
		cmd, err = parseEditCmd(args, r)
	case "interactive":
		cmd, err = parseInteractiveCmd(args, r)
	case "config":
		cmd, err = parseConfigCmd(args, r)
	case "colors":
		cmd, err = parseColorsCmd(args, r)
	case "monitors":
		cmd, err = parseMonitorsCmd(args, r)
	case "version":
		cmd = &versionCmd{root: r}
	default:
		err = &UsageError{of: r}
	}
	if err != nil {
		return err
	}
	return cmd.Run()
}

// resolveTheme picks the window theme from the flag, PAINTBOARD_THEME, the
// config file and finally the built in default.
func (r *root) resolveTheme() *theme.Theme {
	name := r.themeName
	if name == "" {
		name = os.Getenv("PAINTBOARD_THEME")
	}
	if name == "" {
		name = r.config.Theme
	}
	if t, ok := r.config.Themes[name]; ok {
		return t
	}
	t, err := theme.NewLoader().Load(name)
	if err != nil {
		if name != "default" {
			fmt.Fprintf(r.stderr, "warning: failed to load theme '%s': %v. using default.\n", name, err)
		}
		return theme.Default()
	}
	return t
}

func main() {
	r := newRoot()
	if err := r.Run(os.Args[1:]); err != nil {
		var uerr *UsageError
		switch {
		case errors.As(err, &uerr):
			fmt.Fprintln(os.Stderr, uerr.Error())
			os.Exit(2)
		case errors.Is(err, flag.ErrHelp):
		default:
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
}

func (r *root) notifySave(path string) {
	if r == nil || r.notifier == nil {
		return
	}
	r.notifier.Save(path)
}

func (r *root) notifyExport(path string) {
	if r == nil || r.notifier == nil {
		return
	}
	r.notifier.Export(path)
}

func (r *root) notifyCopy(detail string) {
	if r == nil || r.notifier == nil {
		return
	}
	r.notifier.Copy(detail)
}
