// Copyright 2017, Timothy Bogdala <tdb@animal-machine.com>
// See the LICENSE file for more details.

package camera

import (
	"testing"

	mgl "github.com/go-gl/mathgl/mgl32"
)

const epsilon = 1e-4

func vecNear(a, b mgl.Vec3) bool {
	return a.ApproxEqualThreshold(b, epsilon)
}

func TestSetTransformationLooksAtTarget(t *testing.T) {
	c := NewCamera()
	c.SetTransformation(mgl.Vec3{-3, 3, -5}, mgl.Vec3{0, 0, 0}, mgl.Vec3{0, 1, 0})

	if !vecNear(c.Position(), mgl.Vec3{-3, 3, -5}) {
		t.Errorf("got position %v, want (-3, 3, -5)", c.Position())
	}

	// transforming the target into view space must land it on the -Z axis
	view := c.WorldToView()
	target := mgl.TransformCoordinate(mgl.Vec3{0, 0, 0}, view)
	if mgl.Abs(target.X()) > epsilon || mgl.Abs(target.Y()) > epsilon {
		t.Errorf("target transformed to %v, want it centered on the view axis", target)
	}
	if target.Z() >= 0 {
		t.Errorf("target is at view depth %f, want it in front of the camera", target.Z())
	}
}

func TestMoveTranslatesAlongView(t *testing.T) {
	c := NewCamera()
	c.SetTransformation(mgl.Vec3{0, 0, 0}, mgl.Vec3{1, 0, 0}, mgl.Vec3{0, 1, 0})

	// one second forward at the default speed, no mouse movement
	c.Move(Forward, mgl.Vec2{}, 1.0)
	if !vecNear(c.Position(), mgl.Vec3{DefaultMovementSpeed, 0, 0}) {
		t.Errorf("got position %v after moving forward, want (%f, 0, 0)",
			c.Position(), float32(DefaultMovementSpeed))
	}

	// opposing directions cancel
	c.Move(Left|Right|Up|Down, mgl.Vec2{}, 1.0)
	if !vecNear(c.Position(), mgl.Vec3{DefaultMovementSpeed, 0, 0}) {
		t.Errorf("opposing directions moved the camera to %v", c.Position())
	}
}

func TestMoveScalesWithSpeedAndDelta(t *testing.T) {
	c := NewCamera()
	c.SetTransformation(mgl.Vec3{0, 0, 0}, mgl.Vec3{1, 0, 0}, mgl.Vec3{0, 1, 0})
	c.SetMovementSpeed(50.0)

	c.Move(Up, mgl.Vec2{}, 0.1)
	if !vecNear(c.Position(), mgl.Vec3{0, 5, 0}) {
		t.Errorf("got position %v, want (0, 5, 0)", c.Position())
	}
}

func TestMoveZeroMouseDeltaKeepsOrientation(t *testing.T) {
	c := NewCamera()
	c.SetTransformation(mgl.Vec3{-3, 3, -5}, mgl.Vec3{0, 0, 0}, mgl.Vec3{0, 1, 0})

	before := c.WorldToView()
	c.Move(None, mgl.Vec2{}, 0.016)
	after := c.WorldToView()

	if !before.ApproxEqualThreshold(after, epsilon) {
		t.Error("a frame with no input changed the view transform")
	}
}

func TestMousePitchStopsShortOfVertical(t *testing.T) {
	c := NewCamera()
	c.SetTransformation(mgl.Vec3{0, 0, 0}, mgl.Vec3{1, 0, 0}, mgl.Vec3{0, 1, 0})

	// drag far enough down to pass straight up many times over
	c.Move(None, mgl.Vec2{0, -1e6}, 0.016)

	view := c.WorldToView()
	up := mgl.TransformNormal(mgl.Vec3{0, 1, 0}, view)
	if up.Len() < epsilon {
		t.Fatal("view basis degenerated at maximum pitch")
	}

	// moving forward at max pitch still has to go mostly upward
	c.Move(Forward, mgl.Vec2{}, 1.0)
	if c.Position().Y() < DefaultMovementSpeed*0.99 {
		t.Errorf("got position %v, want nearly straight up", c.Position())
	}
}

func TestViewToWorldInvertsWorldToView(t *testing.T) {
	c := NewCamera()
	c.SetTransformation(mgl.Vec3{2, 1, -4}, mgl.Vec3{0, 0.5, 0}, mgl.Vec3{0, 1, 0})

	product := c.WorldToView().Mul4(c.ViewToWorld())
	if !product.ApproxEqualThreshold(mgl.Ident4(), epsilon) {
		t.Error("the view transform times its inverse is not identity")
	}

	// the inverse's translation column is the camera position
	eye := c.ViewToWorld().Col(3).Vec3()
	if !vecNear(eye, c.Position()) {
		t.Errorf("inverse translation is %v, want %v", eye, c.Position())
	}
}

func TestSetProjection(t *testing.T) {
	c := NewCamera()
	c.SetProjection(45.0, 800.0/600.0, 0.1, 100.1)

	want := mgl.Perspective(mgl.DegToRad(45.0), 800.0/600.0, 0.1, 100.1)
	if !c.Projection().ApproxEqualThreshold(want, epsilon) {
		t.Error("projection does not match the perspective parameters")
	}
}
