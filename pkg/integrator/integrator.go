package integrator

import "github.com/df07/go-ppm-raytracer/pkg/core"

// Integrator defines the interface for turning a camera ray into a color
type Integrator interface {
	// RayColor computes the color seen along ray. The hit result is reported
	// so callers can gather statistics without re-tracing the ray.
	RayColor(ray core.Ray, scene core.Scene) (core.Color, bool)
}
