// Package wire reads and writes the primitive fields of the scene format:
// big-endian 32-bit integers, single-byte booleans, packed RGB colours and
// length-prefixed modified UTF-8 strings. The layout matches Java's
// DataOutputStream so files written by older builds stay readable.
package wire

import (
	"encoding/binary"
	"errors"
	"fmt"
	"image/color"
	"io"
	"unicode/utf16"
)

// MaxStringBytes is the longest encoded string a record can hold.
const MaxStringBytes = 0xffff

// ErrStringTooLong is returned when a string does not fit its length prefix.
var ErrStringTooLong = errors.New("string exceeds 65535 encoded bytes")

func short(err error) error {
	if errors.Is(err, io.EOF) {
		return io.ErrUnexpectedEOF
	}
	return err
}

// WriteInt32 writes v big-endian.
func WriteInt32(w io.Writer, v int32) error {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], uint32(v))
	_, err := w.Write(b[:])
	return err
}

// ReadInt32 reads a big-endian int32. Running out of input, even at a field
// boundary, is reported as io.ErrUnexpectedEOF.
func ReadInt32(r io.Reader) (int32, error) {
	var b [4]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, short(err)
	}
	return int32(binary.BigEndian.Uint32(b[:])), nil
}

// WriteBool writes one byte, 1 for true.
func WriteBool(w io.Writer, v bool) error {
	b := []byte{0}
	if v {
		b[0] = 1
	}
	_, err := w.Write(b)
	return err
}

// ReadBool reads one byte; any non-zero value is true.
func ReadBool(r io.Reader) (bool, error) {
	var b [1]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return false, short(err)
	}
	return b[0] != 0, nil
}

// PackRGB returns c as 0xFFRRGGBB.
func PackRGB(c color.RGBA) int32 {
	return int32(uint32(0xff)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B))
}

// UnpackRGB decodes a packed colour. The alpha byte is ignored and the
// result is always opaque.
func UnpackRGB(v int32) color.RGBA {
	u := uint32(v)
	return color.RGBA{R: uint8(u >> 16), G: uint8(u >> 8), B: uint8(u), A: 0xff}
}

// WriteColor writes c packed as 0xFFRRGGBB.
func WriteColor(w io.Writer, c color.RGBA) error {
	return WriteInt32(w, PackRGB(c))
}

// ReadColor reads a packed colour.
func ReadColor(r io.Reader) (color.RGBA, error) {
	v, err := ReadInt32(r)
	if err != nil {
		return color.RGBA{}, err
	}
	return UnpackRGB(v), nil
}

// encodeUTF converts s to modified UTF-8: UTF-16 code units, with NUL
// written as two bytes and surrogates encoded individually.
func encodeUTF(s string) []byte {
	units := utf16.Encode([]rune(s))
	out := make([]byte, 0, len(units))
	for _, u := range units {
		switch {
		case u >= 0x0001 && u <= 0x007f:
			out = append(out, byte(u))
		case u <= 0x07ff:
			out = append(out, byte(0xc0|(u>>6)&0x1f), byte(0x80|u&0x3f))
		default:
			out = append(out, byte(0xe0|(u>>12)&0x0f), byte(0x80|(u>>6)&0x3f), byte(0x80|u&0x3f))
		}
	}
	return out
}

func decodeUTF(b []byte) (string, error) {
	units := make([]uint16, 0, len(b))
	for i := 0; i < len(b); {
		c := b[i]
		switch {
		case c&0x80 == 0:
			units = append(units, uint16(c))
			i++
		case c&0xe0 == 0xc0:
			if i+1 >= len(b) || b[i+1]&0xc0 != 0x80 {
				return "", fmt.Errorf("malformed input around byte %d", i)
			}
			units = append(units, uint16(c&0x1f)<<6|uint16(b[i+1]&0x3f))
			i += 2
		case c&0xf0 == 0xe0:
			if i+2 >= len(b) || b[i+1]&0xc0 != 0x80 || b[i+2]&0xc0 != 0x80 {
				return "", fmt.Errorf("malformed input around byte %d", i)
			}
			units = append(units, uint16(c&0x0f)<<12|uint16(b[i+1]&0x3f)<<6|uint16(b[i+2]&0x3f))
			i += 3
		default:
			return "", fmt.Errorf("malformed input around byte %d", i)
		}
	}
	return string(utf16.Decode(units)), nil
}

// WriteUTF writes s as a uint16 byte length followed by modified UTF-8.
func WriteUTF(w io.Writer, s string) error {
	b := encodeUTF(s)
	if len(b) > MaxStringBytes {
		return ErrStringTooLong
	}
	var n [2]byte
	binary.BigEndian.PutUint16(n[:], uint16(len(b)))
	if _, err := w.Write(n[:]); err != nil {
		return err
	}
	_, err := w.Write(b)
	return err
}

// ReadUTF reads a string written by WriteUTF.
func ReadUTF(r io.Reader) (string, error) {
	var n [2]byte
	if _, err := io.ReadFull(r, n[:]); err != nil {
		return "", short(err)
	}
	b := make([]byte, binary.BigEndian.Uint16(n[:]))
	if _, err := io.ReadFull(r, b); err != nil {
		return "", short(err)
	}
	return decodeUTF(b)
}
