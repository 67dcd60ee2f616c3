package main

import (
	"flag"
	"fmt"

	"github.com/example/paintboard/internal/drawing"
)

type newCmd struct {
	*root
	fs     *flag.FlagSet
	file   string
	width  int
	height int
}

func (n *newCmd) FlagSet() *flag.FlagSet { return n.fs }
func (n *newCmd) Program() string        { return n.subProgram("new") }
func (n *newCmd) Template() string       { return "new.txt" }

func parseNewCmd(args []string, r *root) (*newCmd, error) {
	n := &newCmd{root: r}
	fs := flag.NewFlagSet("new", flag.ContinueOnError)
	fs.SetOutput(r.stderr)
	fs.StringVar(&n.file, "file", "", "scene file to create")
	fs.IntVar(&n.width, "width", r.width, "document width")
	fs.IntVar(&n.height, "height", r.height, "document height")
	n.fs = fs
	fs.Usage = usageFunc(n)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, &UsageError{of: n}
	}
	if n.width <= 0 || n.height <= 0 {
		return nil, fmt.Errorf("invalid size %dx%d", n.width, n.height)
	}
	return n, nil
}

func (n *newCmd) Run() error {
	if n.file == "" && n.session != nil {
		n.session.NewDocumentSize(n.width, n.height)
		return nil
	}
	if n.file == "" {
		return &UsageError{of: n}
	}
	ed := n.newEditor()
	ed.NewDocumentSize(n.width, n.height)
	return n.saveDocument(ed, n.file)
}

type infoCmd struct {
	*root
	fs      *flag.FlagSet
	file    string
	verbose bool
}

func (i *infoCmd) FlagSet() *flag.FlagSet { return i.fs }
func (i *infoCmd) Program() string        { return i.subProgram("info") }
func (i *infoCmd) Template() string       { return "info.txt" }

func parseInfoCmd(args []string, r *root) (*infoCmd, error) {
	i := &infoCmd{root: r}
	fs := flag.NewFlagSet("info", flag.ContinueOnError)
	fs.SetOutput(r.stderr)
	fs.StringVar(&i.file, "file", "", "scene file to inspect")
	fs.BoolVar(&i.verbose, "v", false, "print the full state of every object")
	i.fs = fs
	fs.Usage = usageFunc(i)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return i, nil
}

func (i *infoCmd) Run() error {
	ed, err := i.openDocument(i.file, true)
	if err != nil {
		return err
	}
	w, h := ed.Size()
	fmt.Fprintf(i.stdout, "size %dx%d\n", w, h)
	fmt.Fprintf(i.stdout, "points %d\n", len(ed.Canvas().Points()))
	fmt.Fprintf(i.stdout, "objects %d\n", len(ed.Entries()))
	for _, en := range ed.Entries() {
		desc := en.Object.String()
		if i.verbose {
			desc = en.Object.Detail()
		}
		if !drawing.IsValid(en.Object) {
			desc += " (invalid)"
		}
		fmt.Fprintf(i.stdout, "%s  %s\n", en.ID, desc)
	}
	return nil
}
