package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"

	"github.com/example/paintboard/internal/editor"
)

type selectCmd struct {
	*root
	fs    *flag.FlagSet
	file  string
	color color.RGBA

	rect   image.Rectangle
	action string
	delta  image.Point
}

func (s *selectCmd) FlagSet() *flag.FlagSet { return s.fs }
func (s *selectCmd) Program() string        { return s.subProgram("select") }
func (s *selectCmd) Template() string       { return "select.txt" }

func parseSelectCmd(args []string, r *root) (*selectCmd, error) {
	s := &selectCmd{root: r, color: r.config.FillColor}
	fs := flag.NewFlagSet("select", flag.ContinueOnError)
	fs.SetOutput(r.stderr)
	fs.StringVar(&s.file, "file", "", "scene file to edit")
	fs.Var(colorValue{&s.color}, "color", "colour used by the fill action")
	s.fs = fs
	fs.Usage = usageFunc(s)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	rest := fs.Args()
	if len(rest) < 5 {
		return nil, &UsageError{of: s}
	}
	v, err := expectInts(rest[:4], 4, "select")
	if err != nil {
		return nil, err
	}
	s.rect = image.Rect(v[0], v[1], v[2], v[3])
	s.action = rest[4]
	switch s.action {
	case "list", "delete", "fill":
		if len(rest) != 5 {
			return nil, fmt.Errorf("%s takes no arguments", s.action)
		}
	case "move":
		d, err := expectInts(rest[5:], 2, "move")
		if err != nil {
			return nil, err
		}
		s.delta = image.Pt(d[0], d[1])
	default:
		return nil, fmt.Errorf("unknown selection action %q", s.action)
	}
	if s.action == "fill" && s.file != "" {
		return nil, errSurfaceOnly
	}
	return s, nil
}

func (s *selectCmd) Run() error {
	ed, err := s.openDocument(s.file, true)
	if err != nil {
		return err
	}
	n := ed.Select(s.rect)
	switch s.action {
	case "list":
		for _, o := range ed.Selected() {
			fmt.Fprintln(s.stdout, o.String())
		}
		return nil
	case "delete":
		fmt.Fprintf(s.stdout, "deleted %d\n", ed.DeleteSelection())
	case "move":
		if err := ed.MoveSelection(s.delta); err != nil {
			return err
		}
		fmt.Fprintf(s.stdout, "moved %d\n", n)
	case "fill":
		if err := ed.FillSelection(s.color); err != nil {
			return err
		}
	}
	return s.saveDocument(ed, s.file)
}

type transformCmd struct {
	*root
	fs      *flag.FlagSet
	file    string
	objects bool
	op      string
}

func (t *transformCmd) FlagSet() *flag.FlagSet { return t.fs }
func (t *transformCmd) Program() string        { return t.subProgram("transform") }
func (t *transformCmd) Template() string       { return "transform.txt" }

func parseTransformCmd(args []string, r *root) (*transformCmd, error) {
	t := &transformCmd{root: r}
	fs := flag.NewFlagSet("transform", flag.ContinueOnError)
	fs.SetOutput(r.stderr)
	fs.StringVar(&t.file, "file", "", "scene file to edit")
	fs.BoolVar(&t.objects, "objects", r.config.TransformObjects, "move objects and trail points with the surface")
	t.fs = fs
	fs.Usage = usageFunc(t)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 1 {
		return nil, &UsageError{of: t}
	}
	t.op = fs.Arg(0)
	if _, ok := transforms[t.op]; !ok {
		return nil, fmt.Errorf("unknown transform %q", t.op)
	}
	return t, nil
}

var transforms = map[string]func(*editor.Editor){
	"flip-h":     (*editor.Editor).FlipH,
	"flip-v":     (*editor.Editor).FlipV,
	"rotate-cw":  func(e *editor.Editor) { e.Rotate(true) },
	"rotate-ccw": func(e *editor.Editor) { e.Rotate(false) },
}

func (t *transformCmd) Run() error {
	ed, err := t.openDocument(t.file, true)
	if err != nil {
		return err
	}
	prev := ed.TransformObjects()
	ed.SetTransformObjects(t.objects)
	transforms[t.op](ed)
	ed.SetTransformObjects(prev)
	return t.saveDocument(ed, t.file)
}
