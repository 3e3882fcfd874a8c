package renderer

import (
	"time"

	"github.com/df07/go-ppm-raytracer/pkg/core"
	"github.com/df07/go-ppm-raytracer/pkg/ppm"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels      int           // Total number of pixels rendered
	TotalRays        int           // Primary rays cast
	SurfaceHits      int           // Rays that hit a surface
	AverageLuminance float64       // Mean luminance of the quantized image in [0, 1]
	Duration         time.Duration // Wall time spent rendering
}

// HitRatio returns the fraction of rays that hit a surface
func (s RenderStats) HitRatio() float64 {
	if s.TotalRays == 0 {
		return 0
	}
	return float64(s.SurfaceHits) / float64(s.TotalRays)
}

// CalculateAverageLuminance returns the mean Rec. 709 luminance of img, in [0, 1]
func CalculateAverageLuminance(img *ppm.Image) float64 {
	var total float64
	for row := 0; row < img.Height(); row++ {
		for col := 0; col < img.Width(); col++ {
			p := img.Pixel(row, col)
			c := core.NewVec3(float64(p.R), float64(p.G), float64(p.B)).Divide(255)
			total += c.Luminance()
		}
	}
	return total / float64(img.Width()*img.Height())
}
