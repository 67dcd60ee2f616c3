package main

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/example/paintboard/internal/theme"
)

// colorValue is a flag.Value accepting colour names and #RRGGBB.
type colorValue struct {
	c *color.RGBA
}

func (v colorValue) String() string {
	if v.c == nil {
		return ""
	}
	return theme.Hex(*v.c)
}

func (v colorValue) Set(s string) error {
	c, err := theme.ParseColor(s)
	if err != nil {
		return err
	}
	c.A = 0xff
	*v.c = c
	return nil
}

func expectInts(args []string, n int, what string) ([]int, error) {
	if len(args) != n {
		return nil, fmt.Errorf("%s requires %d integer arguments", what, n)
	}
	vals := make([]int, n)
	for i, raw := range args {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q", raw)
		}
		vals[i] = v
	}
	return vals, nil
}
