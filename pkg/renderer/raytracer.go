package renderer

import (
	"time"

	"github.com/df07/go-ppm-raytracer/pkg/core"
	"github.com/df07/go-ppm-raytracer/pkg/integrator"
	"github.com/df07/go-ppm-raytracer/pkg/ppm"
)

// Raytracer casts one ray per pixel and quantizes the result into an image
type Raytracer struct {
	scene      core.Scene
	camera     *Camera
	integrator integrator.Integrator
	quantize   ppm.QuantizePolicy
	logger     core.Logger
}

// NewRaytracer creates a raytracer using normal shading and clamped quantization
func NewRaytracer(scene core.Scene, camera *Camera, logger core.Logger) *Raytracer {
	if logger == nil {
		logger = NewDefaultLogger()
	}
	return &Raytracer{
		scene:      scene,
		camera:     camera,
		integrator: integrator.NewNormalIntegrator(),
		quantize:   ppm.Clamp,
		logger:     logger,
	}
}

// SetIntegrator replaces the shading integrator
func (rt *Raytracer) SetIntegrator(integratorInst integrator.Integrator) {
	rt.integrator = integratorInst
}

// SetQuantizePolicy selects how out-of-range colors are converted to bytes
func (rt *Raytracer) SetQuantizePolicy(policy ppm.QuantizePolicy) {
	rt.quantize = policy
}

// Render traces every pixel and returns the finished image.
// Pixels are independent of each other; only the scene and camera are shared.
func (rt *Raytracer) Render() (*ppm.Image, RenderStats) {
	width, height := rt.camera.Width(), rt.camera.Height()
	rt.logger.Printf("Rendering %dx%d image (quantize=%s)\n", width, height, rt.quantize)

	startTime := time.Now()
	stats := RenderStats{TotalPixels: width * height}

	img := ppm.NewWithInit(height, width, func(row, col int) ppm.Pixel {
		ray := rt.camera.GetRay(row, col)
		color, isHit := rt.integrator.RayColor(ray, rt.scene)
		stats.TotalRays++
		if isHit {
			stats.SurfaceHits++
		}
		return rt.quantize.Quantize(color)
	})

	stats.Duration = time.Since(startTime)
	stats.AverageLuminance = CalculateAverageLuminance(img)

	rt.logger.Printf("Render completed in %v (%d rays, %.1f%% hit a surface)\n",
		stats.Duration, stats.TotalRays, 100*stats.HitRatio())

	return img, stats
}
