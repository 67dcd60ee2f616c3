package wire

import (
	"bytes"
	"errors"
	"image/color"
	"io"
	"strings"
	"testing"
)

func TestInt32BigEndian(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteInt32(&buf, -2); err != nil {
		t.Fatal(err)
	}
	if got := buf.Bytes(); !bytes.Equal(got, []byte{0xff, 0xff, 0xff, 0xfe}) {
		t.Fatalf("encoded %x", got)
	}
	v, err := ReadInt32(&buf)
	if err != nil || v != -2 {
		t.Fatalf("ReadInt32 = %d, %v", v, err)
	}
}

func TestReadInt32EmptyIsUnexpectedEOF(t *testing.T) {
	if _, err := ReadInt32(bytes.NewReader(nil)); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("got %v", err)
	}
}

func TestPackRGB(t *testing.T) {
	c := color.RGBA{0x12, 0x34, 0x56, 0x00}
	if got := uint32(PackRGB(c)); got != 0xff123456 {
		t.Fatalf("PackRGB = %#x", got)
	}
	if got := UnpackRGB(int32(0x00123456)); got != (color.RGBA{0x12, 0x34, 0x56, 0xff}) {
		t.Fatalf("UnpackRGB = %v", got)
	}
}

func TestBool(t *testing.T) {
	v, err := ReadBool(bytes.NewReader([]byte{7}))
	if err != nil || !v {
		t.Fatalf("non-zero byte should read true: %v %v", v, err)
	}
}

func TestUTFModifiedEncoding(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteUTF(&buf, "a\x00é"); err != nil {
		t.Fatal(err)
	}
	want := []byte{0, 5, 'a', 0xc0, 0x80, 0xc3, 0xa9}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Fatalf("encoded %x, want %x", buf.Bytes(), want)
	}
	s, err := ReadUTF(&buf)
	if err != nil || s != "a\x00é" {
		t.Fatalf("ReadUTF = %q, %v", s, err)
	}
}

func TestUTFSupplementary(t *testing.T) {
	var buf bytes.Buffer
	const s = "\U0001F600"
	if err := WriteUTF(&buf, s); err != nil {
		t.Fatal(err)
	}
	if n := buf.Len(); n != 2+6 {
		t.Fatalf("surrogate pair should take six bytes, total %d", n)
	}
	got, err := ReadUTF(&buf)
	if err != nil || got != s {
		t.Fatalf("ReadUTF = %q, %v", got, err)
	}
}

func TestUTFTooLong(t *testing.T) {
	if err := WriteUTF(io.Discard, strings.Repeat("x", MaxStringBytes+1)); !errors.Is(err, ErrStringTooLong) {
		t.Fatalf("got %v", err)
	}
}

func TestReadUTFMalformed(t *testing.T) {
	if _, err := ReadUTF(bytes.NewReader([]byte{0, 1, 0xff})); err == nil {
		t.Fatal("expected malformed input error")
	}
	if _, err := ReadUTF(bytes.NewReader([]byte{0, 4, 'a'})); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("got %v", err)
	}
}
