package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-ppm-raytracer/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center core.Vec3
	Radius float64
}

// NewSphere creates a new sphere. It panics if radius is not positive.
func NewSphere(center core.Vec3, radius float64) *Sphere {
	if !(radius > 0) || math.IsInf(radius, 0) {
		panic(fmt.Sprintf("geometry: sphere radius must be positive and finite, got %v", radius))
	}
	return &Sphere{
		Center: center,
		Radius: radius,
	}
}

// Hit tests if a ray intersects with the sphere strictly inside (tMin, tMax)
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	// Vector from ray origin to sphere center
	oc := s.Center.Subtract(ray.Origin)

	// Quadratic coefficients with h = -b/2: at² - 2ht + c = 0
	a := ray.Direction.LengthSquared()
	if a == 0 {
		return nil, false
	}
	h := ray.Direction.Dot(oc)
	c := oc.LengthSquared() - s.Radius*s.Radius

	discriminant := h*h - a*c
	if discriminant < 0 {
		return nil, false
	}

	sqrtD := math.Sqrt(discriminant)

	// Try the closer intersection point first
	root := (h - sqrtD) / a
	if root <= tMin || tMax <= root {
		// Try the farther intersection point
		root = (h + sqrtD) / a
		if root <= tMin || tMax <= root {
			return nil, false
		}
	}

	point := ray.At(root)
	normal := point.Subtract(s.Center).Divide(s.Radius)

	return &core.HitRecord{
		T:         root,
		Point:     point,
		Normal:    normal,
		FrontFace: ray.Direction.Dot(normal) < 0,
	}, true
}
