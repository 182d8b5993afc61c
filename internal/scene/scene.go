// Copyright 2017, Timothy Bogdala <tdb@animal-machine.com>
// See the LICENSE file for more details.

// Package scene holds the fixed scene: a scaled floor quad, a set of cube
// instances with positions randomized once at startup and a single point
// light.
package scene

import (
	"math/rand"

	mgl "github.com/go-gl/mathgl/mgl32"
)

const (
	// FloorScale is the half extent of the floor quad on X and Z.
	FloorScale = 30.0

	// cube placement bounds
	cubeMinXZ, cubeMaxXZ = -5.0, 5.0
	cubeMinY, cubeMaxY   = 1.0, 5.0

	// rotationStepDegrees is the per-instance rotation increment around
	// the (1,1,1) axis.
	rotationStepDegrees = 20.0
)

// LightMarkerSize is the point size used to draw the light position.
const LightMarkerSize = 10.0

// Scene is the static scene content generated once at startup.
type Scene struct {
	cubePositions []mgl.Vec3
	lightPosition mgl.Vec3
	lightColor    mgl.Vec3
}

// NewScene generates cube placements from the given seed. The first cube
// always sits half a meter above the origin; the rest are scattered
// randomly above the floor.
func NewScene(numCubes int, seed int64) *Scene {
	rng := rand.New(rand.NewSource(seed))

	positions := make([]mgl.Vec3, 0, numCubes)
	if numCubes > 0 {
		positions = append(positions, mgl.Vec3{0.0, 0.5, 0.0})
	}
	for i := 1; i < numCubes; i++ {
		positions = append(positions, mgl.Vec3{
			randomRange(rng, cubeMinXZ, cubeMaxXZ),
			randomRange(rng, cubeMinY, cubeMaxY),
			randomRange(rng, cubeMinXZ, cubeMaxXZ),
		})
	}

	return &Scene{
		cubePositions: positions,
		lightPosition: mgl.Vec3{-3.0, 3.0, 0.0},
		lightColor:    mgl.Vec3{1.0, 1.0, 1.0},
	}
}

func randomRange(rng *rand.Rand, min, max float32) float32 {
	return min + rng.Float32()*(max-min)
}

// InstanceCount returns the number of cube instances in the scene.
func (s *Scene) InstanceCount() int {
	return len(s.cubePositions)
}

// InstanceTransforms returns the ordered world transforms for the cube
// instances: a translation to the generated position plus a per-index
// rotation around the (1,1,1) axis.
func (s *Scene) InstanceTransforms() []mgl.Mat4 {
	axis := mgl.Vec3{1.0, 1.0, 1.0}.Normalize()
	transforms := make([]mgl.Mat4, len(s.cubePositions))
	for i, pos := range s.cubePositions {
		angle := mgl.DegToRad(float32(i) * rotationStepDegrees)
		transforms[i] = mgl.Translate3D(pos.X(), pos.Y(), pos.Z()).
			Mul4(mgl.HomogRotate3D(angle, axis))
	}
	return transforms
}

// FloorTransform returns the world transform for the floor quad.
func (s *Scene) FloorTransform() mgl.Mat4 {
	return mgl.Scale3D(FloorScale, 1.0, FloorScale)
}

// LightPosition returns the point light position in world space.
func (s *Scene) LightPosition() mgl.Vec3 {
	return s.lightPosition
}

// LightColor returns the light marker color.
func (s *Scene) LightColor() mgl.Vec3 {
	return s.lightColor
}
