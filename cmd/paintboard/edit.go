package main

import (
	"flag"
	"path/filepath"
	"strings"

	"github.com/example/paintboard/internal/editor"
	"github.com/example/paintboard/internal/window"
)

type editCmd struct {
	*root
	fs     *flag.FlagSet
	file   string
	output string
}

func (e *editCmd) FlagSet() *flag.FlagSet { return e.fs }
func (e *editCmd) Program() string        { return e.subProgram("edit") }
func (e *editCmd) Template() string       { return "edit.txt" }

func parseEditCmd(args []string, r *root) (*editCmd, error) {
	e := &editCmd{root: r}
	fs := flag.NewFlagSet("edit", flag.ContinueOnError)
	fs.SetOutput(r.stderr)
	fs.StringVar(&e.file, "file", "", "scene file to edit and save")
	fs.StringVar(&e.output, "output", "", "image written by Ctrl+E")
	e.fs = fs
	fs.Usage = usageFunc(e)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: e}
	}
	return e, nil
}

func (e *editCmd) Run() error {
	ed, err := e.openDocument(e.file, false)
	if err != nil {
		return err
	}
	output := e.output
	if output == "" && e.file != "" {
		base := filepath.Base(e.file)
		output = e.exportPath(strings.TrimSuffix(base, filepath.Ext(base)) + ".png")
	}
	return e.openWindow(ed, e.file, output)
}

// exportPath places name in the configured save directory.
func (r *root) exportPath(name string) string {
	if r.config.SaveDir == "" {
		return name
	}
	return filepath.Join(r.config.SaveDir, name)
}

// runWindow is swapped out by tests.
var runWindow = (*window.Window).Run

// openWindow shows ed until the window closes. Window edits reach the
// session document directly.
func (r *root) openWindow(ed *editor.Editor, scene, export string) error {
	title := "Paintboard"
	if scene != "" {
		title += " - " + filepath.Base(scene)
	}
	ed.SetZoom(r.config.Zoom)
	opts := []window.Option{
		window.WithTitle(title),
		window.WithScenePath(scene),
		window.WithNotifier(r.notifier),
	}
	if r.activeTheme != nil {
		opts = append(opts, window.WithTheme(r.activeTheme))
	}
	if export != "" {
		opts = append(opts, window.WithExportPath(export))
	}
	runWindow(window.New(ed, opts...))
	return nil
}
