//go:build !((linux || freebsd || openbsd || netbsd || dragonfly) && cgo)

package clipboard

func ensureInit() error { return ErrUnsupported }

func write([]byte) error { return ErrUnsupported }

func read() ([]byte, error) { return nil, ErrUnsupported }
