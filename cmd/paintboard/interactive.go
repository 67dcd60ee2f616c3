package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"strings"
)

type interactiveCmd struct {
	*root
	fs       *flag.FlagSet
	commands stringList
}

type stringList []string

func (s *stringList) String() string     { return strings.Join(*s, "; ") }
func (s *stringList) Set(v string) error { *s = append(*s, v); return nil }

func (i *interactiveCmd) FlagSet() *flag.FlagSet { return i.fs }
func (i *interactiveCmd) Program() string        { return i.subProgram("interactive") }
func (i *interactiveCmd) Template() string       { return "interactive.txt" }

func parseInteractiveCmd(args []string, r *root) (*interactiveCmd, error) {
	i := &interactiveCmd{root: r}
	fs := flag.NewFlagSet("interactive", flag.ContinueOnError)
	fs.SetOutput(r.stderr)
	fs.Var(&i.commands, "e", "run this command and exit (repeatable)")
	i.fs = fs
	fs.Usage = usageFunc(i)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: i}
	}
	return i, nil
}

var errExit = errors.New("exit")

func (i *interactiveCmd) Run() error {
	if i.session != nil {
		return errors.New("already in interactive mode")
	}
	i.session = i.newEditor()
	defer func() { i.session = nil }()

	if len(i.commands) > 0 {
		for _, line := range i.commands {
			if err := i.exec(line); err != nil {
				if errors.Is(err, errExit) {
					return nil
				}
				return fmt.Errorf("%s: %w", line, err)
			}
		}
		return nil
	}

	fmt.Fprintln(i.stdout, "Enter commands (type 'exit' to quit)")
	scanner := bufio.NewScanner(i.stdin)
	for {
		fmt.Fprint(i.stdout, "> ")
		if !scanner.Scan() {
			break
		}
		if err := i.exec(scanner.Text()); err != nil {
			if errors.Is(err, errExit) {
				break
			}
			fmt.Fprintln(i.stderr, err)
		}
	}
	return scanner.Err()
}

// exec runs one REPL line against the session document.
func (i *interactiveCmd) exec(line string) error {
	args := strings.Fields(line)
	if len(args) == 0 {
		return nil
	}
	switch args[0] {
	case "exit", "quit":
		return errExit
	case "save":
		if len(args) != 2 {
			return errors.New("usage: save FILE")
		}
		if err := i.session.SaveScene(args[1]); err != nil {
			return err
		}
		i.notifySave(args[1])
		return nil
	case "open":
		if len(args) != 2 {
			return errors.New("usage: open FILE")
		}
		warnings, err := i.session.LoadScene(args[1])
		if err != nil {
			return err
		}
		if len(warnings) > 0 {
			fmt.Fprintf(i.stdout, "opened %s, dropped %d record(s)\n", args[1], len(warnings))
		}
		return nil
	case "interactive":
		return nil
	}
	return i.dispatch(args[0], args[1:])
}
