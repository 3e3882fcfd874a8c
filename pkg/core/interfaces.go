package core

// Logger interface for raytracer logging
type Logger interface {
	Printf(format string, args ...interface{})
}

type discardLogger struct{}

func (discardLogger) Printf(string, ...interface{}) {}

// NewDiscardLogger returns a Logger that drops all output
func NewDiscardLogger() Logger {
	return discardLogger{}
}

// HitRecord contains information about a ray-surface intersection.
// It is only meaningful when returned alongside a successful hit.
type HitRecord struct {
	Point     Vec3    // Hit point
	Normal    Vec3    // Unit outward surface normal at Point
	T         float64 // Ray parameter at the hit
	FrontFace bool    // True if the ray arrived from outside the surface
}

// Shape is implemented by every surface that can be intersected by a ray.
// A hit is only reported for tMin < t < tMax.
type Shape interface {
	Hit(ray Ray, tMin, tMax float64) (*HitRecord, bool)
}

// Scene is the set of surfaces a ray is traced against
type Scene interface {
	// Hit returns the closest hit among all surfaces within (tMin, tMax)
	Hit(ray Ray, tMin, tMax float64) (*HitRecord, bool)
}
