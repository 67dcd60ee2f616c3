// Package codec reads and writes scene files and converts canvases to and
// from standard image formats.
package codec

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"io"

	"github.com/example/paintboard/internal/drawing"
	"github.com/example/paintboard/internal/wire"
)

// Scene is the persisted part of a document: the freehand trail and the
// vector objects. Point colours and the raster buffer are not stored.
type Scene struct {
	Points  []image.Point
	Objects []drawing.Object
	// Warnings lists records that were read but dropped.
	Warnings []string
}

// EncodeScene writes points then objects. Objects are written as given; it
// is the caller's job to only pass valid ones.
func EncodeScene(w io.Writer, points []image.Point, objects []drawing.Object) error {
	bw := bufio.NewWriter(w)
	if err := wire.WriteInt32(bw, int32(len(points))); err != nil {
		return err
	}
	for _, p := range points {
		if err := wire.WriteInt32(bw, int32(p.X)); err != nil {
			return err
		}
		if err := wire.WriteInt32(bw, int32(p.Y)); err != nil {
			return err
		}
	}
	if err := wire.WriteInt32(bw, int32(len(objects))); err != nil {
		return err
	}
	for _, o := range objects {
		if err := o.Encode(bw); err != nil {
			return fmt.Errorf("encode %s: %w", o.Mode(), err)
		}
	}
	return bw.Flush()
}

// maxPrealloc bounds slice preallocation from untrusted counts.
const maxPrealloc = 1 << 16

// DecodeScene reads a whole scene. Objects that fail validation and records
// with tags that carry no object are skipped and reported in Warnings.
// Truncated or malformed input returns a *drawing.FormatError and no scene.
func DecodeScene(r io.Reader) (*Scene, error) {
	br := bufio.NewReader(r)
	n, err := wire.ReadInt32(br)
	if err != nil {
		return nil, &drawing.FormatError{Op: "read point count", Err: err}
	}
	if n < 0 {
		return nil, &drawing.FormatError{Op: "read point count", Err: fmt.Errorf("negative count %d", n)}
	}
	s := &Scene{Points: make([]image.Point, 0, min(int(n), maxPrealloc))}
	for i := int32(0); i < n; i++ {
		x, err := wire.ReadInt32(br)
		if err != nil {
			return nil, &drawing.FormatError{Op: fmt.Sprintf("read point %d", i), Err: err}
		}
		y, err := wire.ReadInt32(br)
		if err != nil {
			return nil, &drawing.FormatError{Op: fmt.Sprintf("read point %d", i), Err: err}
		}
		s.Points = append(s.Points, image.Pt(int(x), int(y)))
	}
	n, err = wire.ReadInt32(br)
	if err != nil {
		return nil, &drawing.FormatError{Op: "read object count", Err: err}
	}
	if n < 0 {
		return nil, &drawing.FormatError{Op: "read object count", Err: fmt.Errorf("negative count %d", n)}
	}
	for i := int32(0); i < n; i++ {
		o, err := drawing.Decode(br)
		switch {
		case errors.Is(err, drawing.ErrUnknownTag):
			s.Warnings = append(s.Warnings, fmt.Sprintf("object %d: %v", i, err))
			continue
		case err != nil:
			return nil, err
		}
		if err := o.Validate(); err != nil {
			s.Warnings = append(s.Warnings, fmt.Sprintf("object %d: %v", i, err))
			continue
		}
		s.Objects = append(s.Objects, o)
	}
	return s, nil
}
