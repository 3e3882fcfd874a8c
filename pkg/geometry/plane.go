package geometry

import (
	"math"

	"github.com/df07/go-ppm-raytracer/pkg/core"
)

// parallelEpsilon is the smallest |direction · normal| treated as crossing the plane
const parallelEpsilon = 1e-8

// Plane represents an infinite plane defined by a point and normal
type Plane struct {
	Point  core.Vec3 // A point on the plane
	Normal core.Vec3 // Unit normal; the side it points to is the front
}

// NewPlane creates a new plane. It panics if normal has zero length.
func NewPlane(point, normal core.Vec3) *Plane {
	return &Plane{
		Point:  point,
		Normal: normal.Normalize(),
	}
}

// Hit tests if a ray crosses the plane strictly inside (tMin, tMax)
func (p *Plane) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	denominator := ray.Direction.Dot(p.Normal)

	// Parallel rays (including zero-direction rays) never cross
	if math.Abs(denominator) < parallelEpsilon {
		return nil, false
	}

	// t = (point_on_plane - ray_origin) · normal / (ray_direction · normal)
	t := p.Point.Subtract(ray.Origin).Dot(p.Normal) / denominator
	if t <= tMin || tMax <= t {
		return nil, false
	}

	return &core.HitRecord{
		T:         t,
		Point:     ray.At(t),
		Normal:    p.Normal,
		FrontFace: denominator < 0,
	}, true
}
