package ppm

import (
	"fmt"
	"image"
	"image/color"
)

// Pixel is an 8-bit RGB sample
type Pixel struct {
	R, G, B uint8
}

// String formats the pixel as a P3 body line
func (p Pixel) String() string {
	return fmt.Sprintf("%3d %3d %3d", p.R, p.G, p.B)
}

// Image is a fixed-size grid of pixels. Rows run top to bottom, columns left to right.
type Image struct {
	width, height int
	pixels        []Pixel // row-major
}

// New creates a zero-filled image. It panics if either dimension is not positive.
func New(height, width int) *Image {
	if height <= 0 || width <= 0 {
		panic(fmt.Sprintf("ppm: image dimensions must be positive, got %dx%d", width, height))
	}
	return &Image{
		width:  width,
		height: height,
		pixels: make([]Pixel, width*height),
	}
}

// NewWithInit creates an image whose pixel at (row, col) is init(row, col).
// init is called in row-major order.
func NewWithInit(height, width int, init func(row, col int) Pixel) *Image {
	img := New(height, width)
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			img.pixels[row*width+col] = init(row, col)
		}
	}
	return img
}

// Width returns the number of columns
func (img *Image) Width() int { return img.width }

// Height returns the number of rows
func (img *Image) Height() int { return img.height }

// Pixel returns the pixel at (row, col)
func (img *Image) Pixel(row, col int) Pixel {
	return img.pixels[img.index(row, col)]
}

// Set stores p at (row, col)
func (img *Image) Set(row, col int, p Pixel) {
	img.pixels[img.index(row, col)] = p
}

func (img *Image) index(row, col int) int {
	if row < 0 || row >= img.height || col < 0 || col >= img.width {
		panic(fmt.Sprintf("ppm: pixel (%d, %d) outside %dx%d image", row, col, img.width, img.height))
	}
	return row*img.width + col
}

// ToRGBA converts the image to an opaque *image.RGBA
func (img *Image) ToRGBA() *image.RGBA {
	rgba := image.NewRGBA(image.Rect(0, 0, img.width, img.height))
	for row := 0; row < img.height; row++ {
		for col := 0; col < img.width; col++ {
			p := img.pixels[row*img.width+col]
			rgba.SetRGBA(col, row, color.RGBA{R: p.R, G: p.G, B: p.B, A: 255})
		}
	}
	return rgba
}

// FromImage converts any image.Image into an Image, dropping alpha.
// It returns an error for empty bounds.
func FromImage(src image.Image) (*Image, error) {
	bounds := src.Bounds()
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		return nil, fmt.Errorf("cannot convert empty image with bounds %v", bounds)
	}
	return NewWithInit(bounds.Dy(), bounds.Dx(), func(row, col int) Pixel {
		// RGBA returns 16-bit channels
		r, g, b, _ := src.At(bounds.Min.X+col, bounds.Min.Y+row).RGBA()
		return Pixel{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
	}), nil
}
