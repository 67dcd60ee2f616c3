package main

import (
	"flag"
	"fmt"
	"image"

	"github.com/example/paintboard/internal/capture"
	"github.com/example/paintboard/internal/clipboard"
	"github.com/example/paintboard/internal/codec"
	"github.com/example/paintboard/internal/editor"
)

var (
	captureScreenFn = capture.Screen
	readClipboardFn = clipboard.ReadImage
)

// importCmd loads a new drawing surface from a file, the screen or the
// clipboard.
type importCmd struct {
	*root
	fs     *flag.FlagSet
	source string
	output string

	path        string
	display     string
	interactive bool
}

func (i *importCmd) FlagSet() *flag.FlagSet { return i.fs }
func (i *importCmd) Program() string        { return i.subProgram(i.source) }
func (i *importCmd) Template() string       { return "import.txt" }

func parseImportCmd(source string, args []string, r *root) (*importCmd, error) {
	i := &importCmd{root: r, source: source}
	fs := flag.NewFlagSet(source, flag.ContinueOnError)
	fs.SetOutput(r.stderr)
	fs.StringVar(&i.output, "output", "", "export the result to this image instead of opening the editor")
	if source == "import-screen" {
		fs.StringVar(&i.display, "display", "", "monitor index, name or 'primary'")
		fs.BoolVar(&i.interactive, "region", false, "let the screenshot portal ask for a region")
	}
	i.fs = fs
	fs.Usage = usageFunc(i)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	switch source {
	case "import":
		if fs.NArg() != 1 {
			return nil, &UsageError{of: i}
		}
		i.path = fs.Arg(0)
	default:
		if fs.NArg() != 0 {
			return nil, &UsageError{of: i}
		}
	}
	return i, nil
}

func (i *importCmd) Run() error {
	ed := i.session
	if ed == nil {
		ed = i.newEditor()
	}
	if err := i.load(ed); err != nil {
		return err
	}
	switch {
	case i.session != nil && i.output == "":
		return nil
	case i.output != "":
		f, err := codec.FormatFromPath(i.output)
		if err != nil {
			return err
		}
		if err := ed.ExportImage(i.output, f); err != nil {
			return fmt.Errorf("export %s: %w", i.output, err)
		}
		i.notifyExport(i.output)
		return nil
	}
	return i.openWindow(ed, "", i.exportPath("paintboard.png"))
}

func (i *importCmd) load(ed *editor.Editor) error {
	var (
		img image.Image
		err error
	)
	switch i.source {
	case "import":
		return ed.ImportImage(i.path)
	case "import-screen":
		img, err = captureScreenFn(capture.Options{Display: i.display, Interactive: i.interactive})
		if err != nil {
			return fmt.Errorf("failed to capture screen: %w", err)
		}
	case "paste":
		img, err = readClipboardFn()
		if err != nil {
			return fmt.Errorf("failed to read clipboard: %w", err)
		}
	}
	return ed.ImportRGBA(img)
}
