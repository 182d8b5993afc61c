// Copyright 2017, Timothy Bogdala <tdb@animal-machine.com>
// See the LICENSE file for more details.

package scene

import (
	"testing"

	mgl "github.com/go-gl/mathgl/mgl32"
)

func TestNewSceneInstanceCount(t *testing.T) {
	s := NewScene(10, 1)
	if s.InstanceCount() != 10 {
		t.Errorf("got %d instances, want 10", s.InstanceCount())
	}
	if len(s.InstanceTransforms()) != 10 {
		t.Errorf("got %d transforms, want 10", len(s.InstanceTransforms()))
	}
}

func TestFirstCubeSitsOnFloor(t *testing.T) {
	s := NewScene(10, 99)

	first := s.InstanceTransforms()[0]
	origin := mgl.TransformCoordinate(mgl.Vec3{0, 0, 0}, first)
	want := mgl.Vec3{0, 0.5, 0}
	if !origin.ApproxEqualThreshold(want, 1e-5) {
		t.Errorf("first cube center is %v, want %v", origin, want)
	}
}

func TestCubePlacementBounds(t *testing.T) {
	s := NewScene(200, 7)

	for i, transform := range s.InstanceTransforms()[1:] {
		center := mgl.TransformCoordinate(mgl.Vec3{0, 0, 0}, transform)
		if center.X() < -5 || center.X() > 5 || center.Z() < -5 || center.Z() > 5 {
			t.Errorf("cube %d sits at %v, outside the placement square", i+1, center)
		}
		if center.Y() < 1 || center.Y() > 5 {
			t.Errorf("cube %d sits at height %f, want within [1, 5]", i+1, center.Y())
		}
	}
}

func TestPlacementIsDeterministicPerSeed(t *testing.T) {
	a := NewScene(25, 42)
	b := NewScene(25, 42)
	c := NewScene(25, 43)

	ta, tb, tc := a.InstanceTransforms(), b.InstanceTransforms(), c.InstanceTransforms()
	differs := false
	for i := range ta {
		if ta[i] != tb[i] {
			t.Fatalf("same seed produced different transforms at index %d", i)
		}
		if ta[i] != tc[i] {
			differs = true
		}
	}
	if !differs {
		t.Error("different seeds produced identical placements")
	}
}

func TestInstanceRotationSteps(t *testing.T) {
	s := NewScene(3, 1)
	transforms := s.InstanceTransforms()

	// instance i rotates i*20 degrees around the (1,1,1) diagonal; the
	// diagonal itself is invariant under that rotation
	axis := mgl.Vec3{1, 1, 1}.Normalize()
	for i, transform := range transforms {
		rotated := mgl.TransformNormal(axis, transform)
		if !rotated.ApproxEqualThreshold(axis, 1e-5) {
			t.Errorf("instance %d does not rotate around the diagonal: %v", i, rotated)
		}
	}

	// instance 0 carries no rotation at all
	xAxis := mgl.TransformNormal(mgl.Vec3{1, 0, 0}, transforms[0])
	if !xAxis.ApproxEqualThreshold(mgl.Vec3{1, 0, 0}, 1e-5) {
		t.Errorf("instance 0 rotated the x axis to %v", xAxis)
	}
}

func TestFloorTransform(t *testing.T) {
	s := NewScene(1, 1)

	corner := mgl.TransformCoordinate(mgl.Vec3{1, 0, 1}, s.FloorTransform())
	want := mgl.Vec3{FloorScale, 0, FloorScale}
	if !corner.ApproxEqualThreshold(want, 1e-5) {
		t.Errorf("floor corner lands at %v, want %v", corner, want)
	}
}

func TestLightDefaults(t *testing.T) {
	s := NewScene(1, 1)

	if s.LightPosition() != (mgl.Vec3{-3, 3, 0}) {
		t.Errorf("got light position %v, want (-3, 3, 0)", s.LightPosition())
	}
	if s.LightColor() != (mgl.Vec3{1, 1, 1}) {
		t.Errorf("got light color %v, want white", s.LightColor())
	}
}
