package drawing

import "fmt"

// Mode identifies an editor tool. The numeric values double as the record
// tags of the scene format and must not change.
type Mode int32

const (
	ModeSelection  Mode = 0
	ModePoint      Mode = 1
	ModeLine       Mode = 2
	ModeCircle     Mode = 3
	ModeRectangle  Mode = 4
	ModeEraser     Mode = 5
	ModeText       Mode = 6
	ModeFillBucket Mode = 7
)

var modeNames = map[Mode]string{
	ModeSelection:  "selection",
	ModePoint:      "point",
	ModeLine:       "line",
	ModeCircle:     "circle",
	ModeRectangle:  "rectangle",
	ModeEraser:     "eraser",
	ModeText:       "text",
	ModeFillBucket: "fill",
}

func (m Mode) String() string {
	if n, ok := modeNames[m]; ok {
		return n
	}
	return fmt.Sprintf("mode(%d)", int32(m))
}

// ParseMode maps a tool name (as printed by String) back to its Mode.
func ParseMode(s string) (Mode, error) {
	for m, n := range modeNames {
		if n == s {
			return m, nil
		}
	}
	switch s {
	case "select":
		return ModeSelection, nil
	case "rect":
		return ModeRectangle, nil
	case "erase":
		return ModeEraser, nil
	case "bucket":
		return ModeFillBucket, nil
	}
	return 0, fmt.Errorf("unknown mode %q", s)
}

// Modes lists every tool in tag order.
func Modes() []Mode {
	return []Mode{ModeSelection, ModePoint, ModeLine, ModeCircle, ModeRectangle, ModeEraser, ModeText, ModeFillBucket}
}
