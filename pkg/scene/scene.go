package scene

import (
	"github.com/df07/go-ppm-raytracer/pkg/core"
	"github.com/df07/go-ppm-raytracer/pkg/geometry"
	"github.com/df07/go-ppm-raytracer/pkg/renderer"
)

// Scene contains all the surfaces and camera settings needed for rendering
type Scene struct {
	Name         string
	Shapes       geometry.ShapeList // Objects in the scene, intersected by linear scan
	CameraConfig renderer.CameraConfig
}

// Hit returns the closest hit across all shapes in the scene
func (s *Scene) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	return s.Shapes.Hit(ray, tMin, tMax)
}

// GetPrimitiveCount returns the total number of shapes in the scene
func (s *Scene) GetPrimitiveCount() int {
	return len(s.Shapes)
}

// NewDefaultScene creates a small sphere resting on a large ground sphere
func NewDefaultScene() *Scene {
	return &Scene{
		Name:         "default",
		CameraConfig: renderer.DefaultCameraConfig(),
		Shapes: geometry.ShapeList{
			geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5),
			geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100),
		},
	}
}

// NewSphereScene creates a scene with a single sphere in front of the camera
func NewSphereScene() *Scene {
	return &Scene{
		Name:         "sphere",
		CameraConfig: renderer.DefaultCameraConfig(),
		Shapes: geometry.ShapeList{
			geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5),
		},
	}
}

// NewPlaneScene creates a sphere resting on an infinite ground plane, seen from slightly above and behind
func NewPlaneScene() *Scene {
	cameraConfig := renderer.DefaultCameraConfig()
	cameraConfig.Center = core.NewVec3(0, 0.25, 0.5)

	return &Scene{
		Name:         "plane",
		CameraConfig: cameraConfig,
		Shapes: geometry.ShapeList{
			geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5),
			geometry.NewPlane(core.NewVec3(0, -0.5, 0), core.NewVec3(0, 1, 0)),
		},
	}
}
