package integrator

import (
	"math"

	"github.com/df07/go-ppm-raytracer/pkg/core"
)

// Intersection window used for camera rays
const (
	DefaultTMin = 0.001
	DefaultTMax = math.MaxFloat64
)

var (
	white   = core.NewVec3(1.0, 1.0, 1.0)
	skyBlue = core.NewVec3(0.5, 0.7, 1.0)
)

// NormalIntegrator colors surfaces by their unit normal and misses by a vertical sky gradient
type NormalIntegrator struct {
	TMin, TMax float64
}

// NewNormalIntegrator creates a normal integrator using the default intersection window
func NewNormalIntegrator() *NormalIntegrator {
	return &NormalIntegrator{TMin: DefaultTMin, TMax: DefaultTMax}
}

// RayColor returns 0.5*(n+1) for the closest hit, or the background gradient on a miss
func (ni *NormalIntegrator) RayColor(ray core.Ray, scene core.Scene) (core.Color, bool) {
	if hit, isHit := scene.Hit(ray, ni.TMin, ni.TMax); isHit {
		return NormalColor(hit.Normal), true
	}
	return BackgroundGradient(ray), false
}

// NormalColor maps a unit normal with components in [-1, 1] into [0, 1]
func NormalColor(normal core.Vec3) core.Color {
	return normal.Add(white).Multiply(0.5)
}

// BackgroundGradient blends white (straight down) to sky blue (straight up).
// The ray direction must be non-zero.
func BackgroundGradient(ray core.Ray) core.Color {
	unitDirection := ray.Direction.Normalize()

	// Map y from [-1, 1] to [0, 1]
	a := 0.5 * (unitDirection.Y + 1.0)
	return white.Lerp(skyBlue, a)
}
