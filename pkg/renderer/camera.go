package renderer

import (
	"fmt"
	"math"

	"github.com/df07/go-ppm-raytracer/pkg/core"
)

// CameraConfig contains the parameters a Camera is derived from
type CameraConfig struct {
	Width          int       // Image width in pixels
	AspectRatio    float64   // Ideal width / height ratio
	FocalLength    float64   // Distance from camera center to viewport
	ViewportHeight float64   // Viewport height in world units
	Center         core.Vec3 // Camera position, looking down -Z
}

// DefaultCameraConfig returns a 400px wide 16:9 camera at the origin
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		Width:          400,
		AspectRatio:    16.0 / 9.0,
		FocalLength:    1.0,
		ViewportHeight: 2.0,
		Center:         core.NewVec3(0, 0, 0),
	}
}

// MaxPixels is the largest image, in pixels, a render may allocate
const MaxPixels = 1 << 26

// ImageHeight returns max(1, floor(width / aspectRatio)).
// It panics when the height is not finite or does not fit in an int32.
func ImageHeight(width int, aspectRatio float64) int {
	h := math.Floor(float64(width) / aspectRatio)
	if math.IsNaN(h) || math.IsInf(h, 0) || h > math.MaxInt32 {
		panic(fmt.Sprintf("renderer: image height for width %d and aspect ratio %v is out of range", width, aspectRatio))
	}
	return max(1, int(h))
}

// Camera generates one primary ray per pixel center
type Camera struct {
	width, height int
	center        core.Vec3
	pixel00Loc    core.Vec3 // Center of pixel (0, 0), the top-left pixel
	pixelDeltaU   core.Vec3 // Offset to the pixel to the right
	pixelDeltaV   core.Vec3 // Offset to the pixel below
}

// NewCamera derives the viewport geometry from config.
// It panics on a non-positive width, aspect ratio, focal length or viewport height.
func NewCamera(config CameraConfig) *Camera {
	if config.Width <= 0 {
		panic(fmt.Sprintf("renderer: camera width must be positive, got %d", config.Width))
	}
	for name, v := range map[string]float64{
		"aspect ratio":    config.AspectRatio,
		"focal length":    config.FocalLength,
		"viewport height": config.ViewportHeight,
	} {
		if !(v > 0) || math.IsInf(v, 0) {
			panic(fmt.Sprintf("renderer: camera %s must be positive and finite, got %v", name, v))
		}
	}

	width := config.Width
	height := ImageHeight(width, config.AspectRatio)

	// Use the realized pixel ratio rather than the ideal aspect ratio
	viewportWidth := config.ViewportHeight * float64(width) / float64(height)

	// Rows run top to bottom, so v points down
	viewportU := core.NewVec3(viewportWidth, 0, 0)
	viewportV := core.NewVec3(0, -config.ViewportHeight, 0)

	pixelDeltaU := viewportU.Divide(float64(width))
	pixelDeltaV := viewportV.Divide(float64(height))

	upperLeft := config.Center.
		Subtract(core.NewVec3(0, 0, config.FocalLength)).
		Subtract(viewportU.Divide(2)).
		Subtract(viewportV.Divide(2))
	pixel00Loc := upperLeft.Add(pixelDeltaU.Add(pixelDeltaV).Multiply(0.5))

	return &Camera{
		width:       width,
		height:      height,
		center:      config.Center,
		pixel00Loc:  pixel00Loc,
		pixelDeltaU: pixelDeltaU,
		pixelDeltaV: pixelDeltaV,
	}
}

// Width returns the image width in pixels
func (c *Camera) Width() int { return c.width }

// Height returns the image height in pixels
func (c *Camera) Height() int { return c.height }

// PixelCenter returns the world-space center of pixel (row, col)
func (c *Camera) PixelCenter(row, col int) core.Vec3 {
	return c.pixel00Loc.
		Add(c.pixelDeltaU.Multiply(float64(col))).
		Add(c.pixelDeltaV.Multiply(float64(row)))
}

// GetRay returns the ray from the camera center through pixel (row, col)
func (c *Camera) GetRay(row, col int) core.Ray {
	pixelCenter := c.PixelCenter(row, col)
	return core.NewRay(c.center, pixelCenter.Subtract(c.center))
}
