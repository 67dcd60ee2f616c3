package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/example/paintboard/internal/editor"
)

// newEditor builds an editor from the config and the root flags. Command
// line documents always work at zoom one so coordinates are document
// pixels.
func (r *root) newEditor(opts ...editor.Option) *editor.Editor {
	base := r.config.EditorOptions()
	base = append(base,
		editor.WithSize(r.width, r.height),
		editor.WithZoom(1),
		editor.WithDebug(r.debug),
		editor.WithLogOutput(r.stderr),
	)
	return editor.New(append(base, opts...)...)
}

// openDocument returns the editor for path. An empty path selects the
// interactive session document. A missing file yields a blank document
// unless mustExist is set.
func (r *root) openDocument(path string, mustExist bool) (*editor.Editor, error) {
	if path == "" {
		if r.session != nil {
			return r.session, nil
		}
		return nil, errors.New("-file is required outside interactive mode")
	}
	ed := r.newEditor()
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) && !mustExist {
			return ed, nil
		}
		return nil, err
	}
	if _, err := ed.LoadScene(path); err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return ed, nil
}

// saveDocument writes ed back to path. Session documents live in memory
// and are only written by an explicit save.
func (r *root) saveDocument(ed *editor.Editor, path string) error {
	if path == "" {
		return nil
	}
	if err := ed.SaveScene(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	r.notifySave(path)
	return nil
}
