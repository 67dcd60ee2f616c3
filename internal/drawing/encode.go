package drawing

import (
	"errors"
	"fmt"
	"image"
	"io"

	"github.com/example/paintboard/internal/wire"
)

// ErrUnknownTag is returned by Decode for tags that carry no object record.
var ErrUnknownTag = errors.New("unknown record tag")

func encodeShape(w io.Writer, m Mode, s *Shape) error {
	for _, v := range []int32{int32(m), int32(s.From.X), int32(s.From.Y), int32(s.To.X), int32(s.To.Y), wire.PackRGB(s.Color), int32(s.Stroke)} {
		if err := wire.WriteInt32(w, v); err != nil {
			return err
		}
	}
	if err := wire.WriteBool(w, s.Filled); err != nil {
		return err
	}
	return wire.WriteColor(w, s.FillColor)
}

// Encode writes the text record. The fill fields are written for layout
// compatibility and ignored when read back.
func (t *Text) Encode(w io.Writer) error {
	for _, v := range []int32{int32(ModeText), int32(t.From.X), int32(t.From.Y), wire.PackRGB(t.Color)} {
		if err := wire.WriteInt32(w, v); err != nil {
			return err
		}
	}
	if err := wire.WriteUTF(w, t.Text); err != nil {
		return &FormatError{Op: "encode text", Err: err}
	}
	if err := wire.WriteInt32(w, int32(t.FontSize)); err != nil {
		return err
	}
	if err := wire.WriteBool(w, false); err != nil {
		return err
	}
	return wire.WriteColor(w, White)
}

func decodeShape(r io.Reader) (Shape, error) {
	var v [6]int32
	for i := range v {
		n, err := wire.ReadInt32(r)
		if err != nil {
			return Shape{}, err
		}
		v[i] = n
	}
	filled, err := wire.ReadBool(r)
	if err != nil {
		return Shape{}, err
	}
	fill, err := wire.ReadColor(r)
	if err != nil {
		return Shape{}, err
	}
	return Shape{
		From:      image.Pt(int(v[0]), int(v[1])),
		To:        image.Pt(int(v[2]), int(v[3])),
		Color:     wire.UnpackRGB(v[4]),
		Stroke:    int(v[5]),
		Filled:    filled,
		FillColor: fill,
	}, nil
}

func mismatch(want, got Mode) error {
	return &FormatError{Op: "decode " + want.String(), Err: fmt.Errorf("%w: got %s", ErrTagMismatch, got)}
}

func truncated(m Mode, err error) error {
	return &FormatError{Op: "decode " + m.String(), Err: err}
}

// DecodeLine reads the fields of a line record whose tag has already been
// consumed. Any tag other than ModeLine is a FormatError.
func DecodeLine(r io.Reader, tag Mode) (*Line, error) {
	s, err := decodeShape(r)
	if err != nil {
		return nil, truncated(ModeLine, err)
	}
	if tag != ModeLine {
		return nil, mismatch(ModeLine, tag)
	}
	return NewLine(s.From, s.To, s.Color, s.Stroke), nil
}

// DecodeCircle reads the fields of an ellipse record.
func DecodeCircle(r io.Reader, tag Mode) (*Circle, error) {
	s, err := decodeShape(r)
	if err != nil {
		return nil, truncated(ModeCircle, err)
	}
	if tag != ModeCircle {
		return nil, mismatch(ModeCircle, tag)
	}
	return &Circle{s}, nil
}

// DecodeRectangle reads the fields of a rectangle record.
func DecodeRectangle(r io.Reader, tag Mode) (*Rectangle, error) {
	s, err := decodeShape(r)
	if err != nil {
		return nil, truncated(ModeRectangle, err)
	}
	if tag != ModeRectangle {
		return nil, mismatch(ModeRectangle, tag)
	}
	return &Rectangle{s}, nil
}

// DecodeText reads the fields of a text record.
func DecodeText(r io.Reader, tag Mode) (*Text, error) {
	var xy [3]int32
	for i := range xy {
		n, err := wire.ReadInt32(r)
		if err != nil {
			return nil, truncated(ModeText, err)
		}
		xy[i] = n
	}
	text, err := wire.ReadUTF(r)
	if err != nil {
		return nil, truncated(ModeText, err)
	}
	size, err := wire.ReadInt32(r)
	if err != nil {
		return nil, truncated(ModeText, err)
	}
	if _, err := wire.ReadBool(r); err != nil {
		return nil, truncated(ModeText, err)
	}
	if _, err := wire.ReadInt32(r); err != nil {
		return nil, truncated(ModeText, err)
	}
	if tag != ModeText {
		return nil, mismatch(ModeText, tag)
	}
	return NewText(image.Pt(int(xy[0]), int(xy[1])), wire.UnpackRGB(xy[2]), text, int(size)), nil
}

// Decode reads one tagged record. Tags without an object layout return an
// error wrapping ErrUnknownTag and consume nothing past the tag.
func Decode(r io.Reader) (Object, error) {
	v, err := wire.ReadInt32(r)
	if err != nil {
		return nil, &FormatError{Op: "read tag", Err: err}
	}
	tag := Mode(v)
	var obj Object
	switch tag {
	case ModeLine:
		obj, err = pick(DecodeLine(r, tag))
	case ModeCircle:
		obj, err = pick(DecodeCircle(r, tag))
	case ModeRectangle:
		obj, err = pick(DecodeRectangle(r, tag))
	case ModeText:
		obj, err = pick(DecodeText(r, tag))
	default:
		return nil, fmt.Errorf("%w %d", ErrUnknownTag, v)
	}
	if err != nil {
		return nil, err
	}
	return obj, nil
}

// pick drops the typed nil a failed decoder returns so callers never see a
// non-nil Object holding a nil pointer.
func pick[T Object](o T, err error) (Object, error) {
	if err != nil {
		return nil, err
	}
	return o, nil
}
