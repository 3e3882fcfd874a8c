package renderer

import (
	"bytes"
	"testing"

	"github.com/df07/go-ppm-raytracer/pkg/core"
	"github.com/df07/go-ppm-raytracer/pkg/geometry"
	"github.com/df07/go-ppm-raytracer/pkg/integrator"
	"github.com/df07/go-ppm-raytracer/pkg/ppm"
)

func newTestRaytracer(width int, aspectRatio float64) (*Raytracer, *Camera) {
	config := DefaultCameraConfig()
	config.Width = width
	config.AspectRatio = aspectRatio
	camera := NewCamera(config)
	scene := geometry.ShapeList{geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5)}
	return NewRaytracer(scene, camera, core.NewDiscardLogger()), camera
}

func TestRaytracer_Render(t *testing.T) {
	rt, camera := newTestRaytracer(3, 1.0)
	img, stats := rt.Render()

	if img.Width() != 3 || img.Height() != 3 {
		t.Fatalf("Expected 3x3 image, got %dx%d", img.Width(), img.Height())
	}

	// Center pixel looks straight at the sphere, normal (0, 0, 1)
	if got := img.Pixel(1, 1); got != (ppm.Pixel{R: 127, G: 127, B: 255}) {
		t.Errorf("Expected normal color at center, got %v", got)
	}

	// Corner pixel misses and shows the background
	expected := ppm.WriteColor(integrator.BackgroundGradient(camera.GetRay(0, 0)))
	if got := img.Pixel(0, 0); got != expected {
		t.Errorf("Expected background %v at corner, got %v", expected, got)
	}

	if stats.TotalPixels != 9 || stats.TotalRays != 9 {
		t.Errorf("Expected 9 pixels and rays, got %d and %d", stats.TotalPixels, stats.TotalRays)
	}
	if stats.SurfaceHits != 1 {
		t.Errorf("Expected exactly 1 surface hit, got %d", stats.SurfaceHits)
	}
	if stats.AverageLuminance <= 0 || stats.AverageLuminance > 1 {
		t.Errorf("Expected luminance in (0, 1], got %f", stats.AverageLuminance)
	}
}

func TestRaytracer_RenderDeterministic(t *testing.T) {
	rt, _ := newTestRaytracer(40, 16.0/9.0)

	first, _ := rt.Render()
	second, _ := rt.Render()
	if !bytes.Equal(first.Bytes(), second.Bytes()) {
		t.Error("Expected identical output from repeated renders")
	}
}

type constantIntegrator struct {
	color core.Color
}

func (ci constantIntegrator) RayColor(core.Ray, core.Scene) (core.Color, bool) {
	return ci.color, true
}

func TestRaytracer_QuantizePolicy(t *testing.T) {
	tests := []struct {
		name     string
		policy   ppm.QuantizePolicy
		expected ppm.Pixel
	}{
		{"clamp", ppm.Clamp, ppm.Pixel{R: 255, G: 0, B: 127}},
		{"wrap", ppm.Wrap, ppm.Pixel{R: 127, G: 230, B: 127}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rt, _ := newTestRaytracer(2, 2.0)
			rt.SetIntegrator(constantIntegrator{color: core.NewVec3(1.5, -0.1, 0.5)})
			rt.SetQuantizePolicy(tt.policy)

			img, stats := rt.Render()
			if got := img.Pixel(0, 1); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
			if stats.HitRatio() != 1 {
				t.Errorf("Expected hit ratio 1, got %f", stats.HitRatio())
			}
		})
	}
}
