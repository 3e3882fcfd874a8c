package ppm

import (
	"bytes"
	"errors"
	"testing"
)

func TestEncode_SmallImage(t *testing.T) {
	img := NewWithInit(2, 3, func(row, col int) Pixel {
		return Pixel{R: uint8(row), G: uint8(col), B: 12}
	})

	expected := "P3\n" +
		"3 2\n" +
		"255\n" +
		"  0   0  12\n" +
		"  0   1  12\n" +
		"  0   2  12\n" +
		"  1   0  12\n" +
		"  1   1  12\n" +
		"  1   2  12\n"

	var buf bytes.Buffer
	if err := Encode(&buf, img); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if got := buf.String(); got != expected {
		t.Errorf("Expected:\n%s\ngot:\n%s", expected, got)
	}
}

func TestEncode_Idempotent(t *testing.T) {
	img := SampleImage(7, 5)

	first := img.Bytes()
	second := img.Bytes()
	if !bytes.Equal(first, second) {
		t.Error("Expected repeated serialization to produce identical bytes")
	}
	if img.String() != string(first) {
		t.Error("Expected String to match Bytes")
	}
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestEncode_WriterError(t *testing.T) {
	if err := Encode(failingWriter{}, SampleImage(4, 4)); err == nil {
		t.Error("Expected error from failing writer")
	}
}
