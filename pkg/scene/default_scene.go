package scene

import (
	"github.com/df07/go-mirror-raytracer/pkg/core"
	"github.com/df07/go-mirror-raytracer/pkg/geometry"
)

// DefaultConfig returns the three-sphere checkerboard scene
func DefaultConfig() Config {
	return Config{
		Spheres: []geometry.Sphere{
			geometry.NewSphere(core.NewVec3(0, 1, -6), 1, core.NewVec3(1, 0, 0), 0.5),  // red, center
			geometry.NewSphere(core.NewVec3(2, 1, -7), 1, core.NewVec3(0, 1, 0), 0.3),  // green, right
			geometry.NewSphere(core.NewVec3(-2, 1, -7), 1, core.NewVec3(0, 0, 1), 0.8), // blue, left
		},
		Floor:      geometry.NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0)),
		Light:      core.NewVec3(5, 8, -3),
		Camera:     core.NewVec3(0, 1, 2),
		Background: core.NewVec3(0.1, 0.1, 0.15),
		FloorColors: [2]core.Vec3{
			core.NewVec3(0, 0, 0), // even cells
			core.NewVec3(1, 1, 1), // odd cells
		},
	}
}

// NewDefaultScene creates the default scene
func NewDefaultScene() *Scene {
	s, err := New(DefaultConfig())
	if err != nil {
		// DefaultConfig is constant and valid
		panic(err)
	}
	return s
}
