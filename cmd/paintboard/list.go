package main

import (
	"flag"
	"fmt"
	"sort"

	"golang.org/x/image/colornames"

	"github.com/example/paintboard/internal/capture"
	"github.com/example/paintboard/internal/theme"
)

type colorsCmd struct {
	*root
	fs *flag.FlagSet
}

func (c *colorsCmd) FlagSet() *flag.FlagSet { return c.fs }
func (c *colorsCmd) Program() string        { return c.subProgram("colors") }
func (c *colorsCmd) Template() string       { return "colors.txt" }

func parseColorsCmd(args []string, r *root) (*colorsCmd, error) {
	fs := flag.NewFlagSet("colors", flag.ContinueOnError)
	fs.SetOutput(r.stderr)
	cmd := &colorsCmd{root: r, fs: fs}
	fs.Usage = usageFunc(cmd)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: cmd}
	}
	return cmd, nil
}

func (c *colorsCmd) Run() error {
	names := append([]string(nil), colornames.Names...)
	sort.Strings(names)
	for _, name := range names {
		col := colornames.Map[name]
		hex := theme.Hex(col)
		block := fmt.Sprintf("\x1b[48;2;%d;%d;%dm  \x1b[0m", col.R, col.G, col.B)
		fmt.Fprintf(c.stdout, "%-22s %s %s\n", name, hex, block)
	}
	return nil
}

var listMonitorsFn = capture.ListMonitors

type monitorsCmd struct {
	*root
	fs *flag.FlagSet
}

func (c *monitorsCmd) FlagSet() *flag.FlagSet { return c.fs }
func (c *monitorsCmd) Program() string        { return c.subProgram("monitors") }
func (c *monitorsCmd) Template() string       { return "monitors.txt" }

func parseMonitorsCmd(args []string, r *root) (*monitorsCmd, error) {
	fs := flag.NewFlagSet("monitors", flag.ContinueOnError)
	fs.SetOutput(r.stderr)
	cmd := &monitorsCmd{root: r, fs: fs}
	fs.Usage = usageFunc(cmd)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: cmd}
	}
	return cmd, nil
}

func (c *monitorsCmd) Run() error {
	monitors, err := listMonitorsFn()
	if err != nil {
		return err
	}
	if len(monitors) == 0 {
		fmt.Fprintln(c.stdout, "no monitors available")
		return nil
	}
	fmt.Fprintln(c.stdout, "available monitors (* marks the primary monitor):")
	for _, m := range monitors {
		marker := " "
		if m.Primary {
			marker = "*"
		}
		fmt.Fprintf(c.stdout, "%s %d: %s %dx%d+%d+%d\n", marker, m.Index, m.Name,
			m.Rect.Dx(), m.Rect.Dy(), m.Rect.Min.X, m.Rect.Min.Y)
	}
	return nil
}
