//go:build !(linux || freebsd || openbsd || netbsd || dragonfly)

package capture

import (
	"errors"
	"image"
)

var errUnsupported = errors.New("screen capture is not supported on this platform")

func portalScreenshot(Options) (*image.RGBA, error) { return nil, errUnsupported }

func rootWindowScreenshot() (*image.RGBA, error) { return nil, errUnsupported }

// ListMonitors is unsupported on this platform.
func ListMonitors() ([]MonitorInfo, error) { return nil, errUnsupported }
