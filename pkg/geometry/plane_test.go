package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-ppm-raytracer/pkg/core"
	"gonum.org/v1/gonum/floats/scalar"
)

func TestPlane_Hit_BasicIntersection(t *testing.T) {
	// Horizontal plane at y=0
	plane := NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0))

	// Ray shooting down from above
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))

	hit, isHit := plane.Hit(ray, 0.001, 1000.0)
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}
	if !scalar.EqualWithinAbs(hit.T, 1.0, tolerance) {
		t.Errorf("Expected t=1, got t=%f", hit.T)
	}
	if !hit.Point.ApproxEqual(core.NewVec3(0, 0, 0), tolerance) {
		t.Errorf("Expected hit point (0, 0, 0), got %v", hit.Point)
	}
	if !hit.FrontFace {
		t.Error("Expected front face hit from above")
	}
}

func TestPlane_Hit_Miss(t *testing.T) {
	plane := NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0))

	tests := []struct {
		name      string
		direction core.Vec3
	}{
		{"parallel ray", core.NewVec3(1, 0, 0)},
		{"intersection behind ray", core.NewVec3(0, 1, 0)},
		{"zero direction", core.NewVec3(0, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(core.NewVec3(0, 1, 0), tt.direction)
			if hit, isHit := plane.Hit(ray, 0.001, math.Inf(1)); isHit {
				t.Errorf("Expected miss, but got hit at t=%f", hit.T)
			}
		})
	}
}

func TestPlane_Hit_ExclusiveBounds(t *testing.T) {
	plane := NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 2, 0))
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))

	if _, isHit := plane.Hit(ray, 0.001, 1.0); isHit {
		t.Error("Expected miss when t equals tMax")
	}
	if _, isHit := plane.Hit(ray, 1.0, 10.0); isHit {
		t.Error("Expected miss when t equals tMin")
	}
}

func TestPlane_Hit_BackFace(t *testing.T) {
	plane := NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0))
	ray := core.NewRay(core.NewVec3(0, -1, 0), core.NewVec3(0, 1, 0))

	hit, isHit := plane.Hit(ray, 0.001, 1000.0)
	if !isHit {
		t.Fatal("Expected hit from below")
	}
	if hit.FrontFace {
		t.Error("Expected back face hit from below")
	}
	if !hit.Normal.ApproxEqual(core.NewVec3(0, 1, 0), tolerance) {
		t.Errorf("Expected plane normal (0, 1, 0), got %v", hit.Normal)
	}
}
