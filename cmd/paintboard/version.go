package main

import "fmt"

type versionCmd struct{ root *root }

func (v *versionCmd) Run() error {
	fmt.Fprintf(v.root.stdout, "%s version %s", v.root.program, version)
	if commit != "" {
		fmt.Fprintf(v.root.stdout, " (%s", commit)
		if date != "" {
			fmt.Fprintf(v.root.stdout, " %s", date)
		}
		fmt.Fprint(v.root.stdout, ")")
	}
	fmt.Fprintln(v.root.stdout)
	return nil
}
