package ppm

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
)

// MaxValue is the maximum channel value written in the P3 header
const MaxValue = 255

// Encode writes img to w in plain-text P3 format: a "P3" line, "<width> <height>",
// the max value, then one "%3d %3d %3d" line per pixel in row-major order.
func Encode(w io.Writer, img *Image) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n%d\n", img.width, img.height, MaxValue); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, p := range img.pixels {
		if _, err := fmt.Fprintf(bw, "%3d %3d %3d\n", p.R, p.G, p.B); err != nil {
			return fmt.Errorf("failed to write pixel data: %w", err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to flush image: %w", err)
	}
	return nil
}

// Bytes returns the P3 encoding of img
func (img *Image) Bytes() []byte {
	var buf bytes.Buffer
	// Writes to a bytes.Buffer cannot fail
	_ = Encode(&buf, img)
	return buf.Bytes()
}

// String returns the P3 encoding of img
func (img *Image) String() string {
	return string(img.Bytes())
}
