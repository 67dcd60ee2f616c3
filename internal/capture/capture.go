// Package capture grabs the desktop so a screenshot can become the raster
// of a new drawing.
package capture

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"strconv"
	"strings"
)

var errNoMonitors = errors.New("no monitors available")

// Options selects what Screen grabs.
type Options struct {
	// Display crops the result to one monitor: an index, "primary" or part
	// of the output name. Empty keeps the whole desktop.
	Display string
	// Interactive lets the portal ask the user for a region.
	Interactive   bool
	IncludeCursor bool
}

// MonitorInfo describes an individual monitor in the display layout.
type MonitorInfo struct {
	Index   int
	Name    string
	Rect    image.Rectangle
	Primary bool
}

// Platform hooks, swapped out by tests.
var (
	portalShot   = portalScreenshot
	rootShot     = rootWindowScreenshot
	listMonitors = ListMonitors
)

// Screen captures the desktop. The screenshot portal is tried first; when it
// is unavailable the X11 root window is read directly.
func Screen(opts Options) (*image.RGBA, error) {
	img, perr := portalShot(opts)
	if perr != nil {
		var xerr error
		img, xerr = rootShot()
		if xerr != nil {
			return nil, fmt.Errorf("portal screenshot: %v; x11 fallback: %w", perr, xerr)
		}
	}
	if opts.Display == "" {
		return img, nil
	}
	monitors, err := listMonitors()
	if err != nil {
		return nil, err
	}
	mon, err := FindMonitor(monitors, opts.Display)
	if err != nil {
		return nil, err
	}
	return cropToRect(img, mon.Rect)
}

// FindMonitor resolves a monitor selector against the provided list.
func FindMonitor(monitors []MonitorInfo, selector string) (MonitorInfo, error) {
	if len(monitors) == 0 {
		return MonitorInfo{}, errNoMonitors
	}
	lower := strings.ToLower(strings.TrimSpace(selector))
	switch lower {
	case "":
		return monitors[0], nil
	case "primary":
		for _, mon := range monitors {
			if mon.Primary {
				return mon, nil
			}
		}
		return monitors[0], nil
	}
	if idx, err := strconv.Atoi(strings.TrimPrefix(lower, "#")); err == nil {
		if idx < 0 || idx >= len(monitors) {
			return MonitorInfo{}, fmt.Errorf("monitor index %d out of range", idx)
		}
		return monitors[idx], nil
	}
	for _, mon := range monitors {
		if strings.Contains(strings.ToLower(mon.Name), lower) {
			return mon, nil
		}
	}
	return MonitorInfo{}, fmt.Errorf("monitor %q not found", selector)
}

func cropToRect(src *image.RGBA, rect image.Rectangle) (*image.RGBA, error) {
	rect = rect.Intersect(src.Bounds())
	if rect.Empty() {
		return nil, fmt.Errorf("requested region outside captured image")
	}
	dst := image.NewRGBA(image.Rect(0, 0, rect.Dx(), rect.Dy()))
	draw.Draw(dst, dst.Bounds(), src, rect.Min, draw.Src)
	return dst, nil
}
