// Package clipboard moves flattened drawings to and from the system
// clipboard as PNG data.
package clipboard

import (
	"bytes"
	"errors"
	"image"
	"image/png"
)

var (
	// ErrNoDisplay is returned when no X11 or Wayland display is reachable.
	ErrNoDisplay = errors.New("clipboard initialization requires DISPLAY or WAYLAND_DISPLAY")
	// ErrEmpty is returned by ReadImage when the clipboard holds no image.
	ErrEmpty = errors.New("clipboard does not contain image data")
	// ErrUnsupported is returned on builds without a clipboard backend.
	ErrUnsupported = errors.New("clipboard image operations are not supported on this platform")
)

// WriteImage encodes img as PNG and publishes it to the clipboard.
func WriteImage(img image.Image) error {
	if err := ensureInit(); err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return err
	}
	return write(buf.Bytes())
}

// ReadImage decodes the PNG image held by the clipboard.
func ReadImage() (image.Image, error) {
	if err := ensureInit(); err != nil {
		return nil, err
	}
	data, err := read()
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, ErrEmpty
	}
	return png.Decode(bytes.NewReader(data))
}
