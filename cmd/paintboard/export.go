package main

import (
	"flag"
	"fmt"

	"github.com/example/paintboard/internal/clipboard"
	"github.com/example/paintboard/internal/codec"
)

type exportCmd struct {
	*root
	fs     *flag.FlagSet
	file   string
	format string
	output string
}

func (e *exportCmd) FlagSet() *flag.FlagSet { return e.fs }
func (e *exportCmd) Program() string        { return e.subProgram("export") }
func (e *exportCmd) Template() string       { return "export.txt" }

func parseExportCmd(args []string, r *root) (*exportCmd, error) {
	e := &exportCmd{root: r}
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	fs.SetOutput(r.stderr)
	fs.StringVar(&e.file, "file", "", "scene file to export")
	fs.StringVar(&e.format, "format", "", "image format (png, jpeg, gif, bmp, tiff, pdf)")
	e.fs = fs
	fs.Usage = usageFunc(e)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 1 {
		return nil, &UsageError{of: e}
	}
	e.output = fs.Arg(0)
	return e, nil
}

func (e *exportCmd) Run() error {
	f, err := e.resolveFormat()
	if err != nil {
		return err
	}
	ed, err := e.openDocument(e.file, true)
	if err != nil {
		return err
	}
	if err := ed.ExportImage(e.output, f); err != nil {
		return fmt.Errorf("export %s: %w", e.output, err)
	}
	fmt.Fprintf(e.stdout, "exported %s\n", e.output)
	e.notifyExport(e.output)
	return nil
}

func (e *exportCmd) resolveFormat() (codec.Format, error) {
	if e.format != "" {
		return codec.ParseFormat(e.format)
	}
	return codec.FormatFromPath(e.output)
}

type copyCmd struct {
	*root
	fs   *flag.FlagSet
	file string
}

func (c *copyCmd) FlagSet() *flag.FlagSet { return c.fs }
func (c *copyCmd) Program() string        { return c.subProgram("copy") }
func (c *copyCmd) Template() string       { return "copy.txt" }

func parseCopyCmd(args []string, r *root) (*copyCmd, error) {
	c := &copyCmd{root: r}
	fs := flag.NewFlagSet("copy", flag.ContinueOnError)
	fs.SetOutput(r.stderr)
	fs.StringVar(&c.file, "file", "", "scene file to copy")
	c.fs = fs
	fs.Usage = usageFunc(c)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return c, nil
}

var writeClipboardFn = clipboard.WriteImage

func (c *copyCmd) Run() error {
	ed, err := c.openDocument(c.file, true)
	if err != nil {
		return err
	}
	if err := writeClipboardFn(ed.Flatten()); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	detail := c.file
	if detail == "" {
		detail = "drawing"
	}
	c.notifyCopy(detail)
	return nil
}
