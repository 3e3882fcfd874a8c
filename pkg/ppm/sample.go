package ppm

import (
	"github.com/df07/go-ppm-raytracer/pkg/core"
	"github.com/nfnt/resize"
)

// SampleImage renders a test gradient: red grows left to right, green top to bottom
func SampleImage(width, height int) *Image {
	return NewWithInit(height, width, func(row, col int) Pixel {
		return WriteColor(core.NewVec3(ratio(col, width), ratio(row, height), 0))
	})
}

func ratio(i, n int) float64 {
	if n <= 1 {
		return 0
	}
	return float64(i) / float64(n-1)
}

// Thumbnail downsizes img to fit within maxWidth x maxHeight, preserving aspect ratio.
// Images already within the bounds are returned unchanged.
func Thumbnail(img *Image, maxWidth, maxHeight uint) *Image {
	scaled := resize.Thumbnail(maxWidth, maxHeight, img.ToRGBA(), resize.Lanczos3)
	if scaled.Bounds().Dx() == img.width && scaled.Bounds().Dy() == img.height {
		return img
	}
	// resize never produces empty bounds for a non-empty source
	thumb, err := FromImage(scaled)
	if err != nil {
		panic(err)
	}
	return thumb
}
