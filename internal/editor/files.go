package editor

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"

	"github.com/example/paintboard/internal/codec"
	"github.com/example/paintboard/internal/drawing"
)

// WriteScene encodes the trail and the valid objects to w.
func (e *Editor) WriteScene(w io.Writer) error {
	var objs []drawing.Object
	for _, en := range e.entries {
		if drawing.IsValid(en.Object) {
			objs = append(objs, en.Object)
		}
	}
	e.debugf("writing scene", "points", len(e.canvas.Points()), "objects", len(objs))
	return codec.EncodeScene(w, e.canvas.Points(), objs)
}

// ReadScene decodes a scene from r and replaces the document only if the
// whole stream decodes. Objects, the trail, the selection and any pending
// shape or text are replaced; the raster is kept, since scene files do not
// store it, and the loaded trail is stamped onto it in black. Dropped
// records are logged and returned as warnings.
func (e *Editor) ReadScene(r io.Reader) ([]string, error) {
	s, err := codec.DecodeScene(r)
	if err != nil {
		return nil, err
	}
	for _, w := range s.Warnings {
		e.warn("dropped record on load", "detail", w)
	}
	e.entries = nil
	e.sel.Clear()
	e.shape = pendingShape{}
	e.text = pendingText{}
	e.canvas.SetPoints(s.Points, nil)
	for _, o := range s.Objects {
		e.entries = append(e.entries, Entry{ID: newID(), Object: o})
	}
	e.debugf("scene loaded", "points", len(s.Points), "objects", len(s.Objects))
	e.changed()
	return s.Warnings, nil
}

// SaveScene writes the scene to path. The file is replaced atomically.
func (e *Editor) SaveScene(path string) error {
	e.debugf("starting save", "path", path)
	return writeAtomic(path, e.WriteScene)
}

// LoadScene reads the scene at path. On any error the current document is
// left untouched.
func (e *Editor) LoadScene(path string) ([]string, error) {
	e.debugf("starting open", "path", path)
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	warnings, err := e.ReadScene(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return warnings, nil
}

// ExportImage flattens the document and writes it to path in format f. An
// empty format is taken from the file extension.
func (e *Editor) ExportImage(path string, f codec.Format) error {
	if f == "" {
		var err error
		if f, err = codec.FormatFromPath(path); err != nil {
			return err
		}
	}
	img := e.Flatten()
	e.debugf("saving image file", "path", path, "format", string(f))
	return writeAtomic(path, func(w io.Writer) error {
		return codec.EncodeImage(w, img, f)
	})
}

// ImportImage replaces the raster with the image at path, clearing every
// object, the trail and the selection. The document takes the image's
// size. On error nothing changes.
func (e *Editor) ImportImage(path string) error {
	e.debugf("loading image file", "path", path)
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	img, _, err := codec.DecodeImage(f)
	if err != nil {
		e.debugf("image read failed", "err", err)
		return fmt.Errorf("import %s: %w", path, err)
	}
	return e.ImportRGBA(img)
}

// ImportRGBA replaces the raster with img as ImportImage does.
func (e *Editor) ImportRGBA(img image.Image) error {
	if err := e.canvas.Load(img); err != nil {
		return err
	}
	e.entries = nil
	e.sel.Clear()
	e.shape = pendingShape{}
	e.text = pendingText{}
	w, h := e.canvas.Size()
	e.debugf("image load success", "width", w, "height", h)
	e.changed()
	return nil
}

// writeAtomic writes through a temporary file in the target directory and
// renames it into place once fn succeeds.
func writeAtomic(path string, fn func(io.Writer) error) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	name := tmp.Name()
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		os.Remove(name)
		return err
	}
	if err := fn(tmp); err != nil {
		tmp.Close()
		os.Remove(name)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(name)
		return err
	}
	if err := os.Rename(name, path); err != nil {
		os.Remove(name)
		return err
	}
	return nil
}
