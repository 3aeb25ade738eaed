package scene

import (
	"fmt"
	"iter"
	"slices"

	"github.com/df07/go-mirror-raytracer/pkg/core"
	"github.com/df07/go-mirror-raytracer/pkg/geometry"
)

// Config describes a scene before validation
type Config struct {
	Spheres     []geometry.Sphere // Tested in order; earlier spheres win ties
	Floor       geometry.Plane
	Light       core.Vec3    // Point light position
	Camera      core.Vec3    // Eye position
	Background  core.Vec3    // Color of rays that escape the scene
	FloorColors [2]core.Vec3 // Checker colors indexed by cell parity
}

// Scene is an immutable set of primitives, one point light, and one camera
// origin. It is safe for concurrent use by any number of renderers.
type Scene struct {
	spheres     []geometry.Sphere
	floor       geometry.Plane
	light       core.Vec3
	camera      core.Vec3
	background  core.Vec3
	floorColors [2]core.Vec3
}

// New validates the config and builds a scene from a private copy of it
func New(config Config) (*Scene, error) {
	for i, s := range config.Spheres {
		if err := s.Validate(); err != nil {
			return nil, fmt.Errorf("sphere %d: %w", i, err)
		}
	}
	if err := config.Floor.Validate(); err != nil {
		return nil, fmt.Errorf("floor: %w", err)
	}

	return &Scene{
		spheres:     slices.Clone(config.Spheres),
		floor:       config.Floor,
		light:       config.Light,
		camera:      config.Camera,
		background:  config.Background,
		floorColors: config.FloorColors,
	}, nil
}

// Spheres iterates over the spheres in intersection order
func (s *Scene) Spheres() iter.Seq2[int, geometry.Sphere] {
	return func(yield func(int, geometry.Sphere) bool) {
		for i, sphere := range s.spheres {
			if !yield(i, sphere) {
				return
			}
		}
	}
}

// SphereCount returns the number of spheres
func (s *Scene) SphereCount() int {
	return len(s.spheres)
}

// Sphere returns the i-th sphere
func (s *Scene) Sphere(i int) geometry.Sphere {
	return s.spheres[i]
}

// Floor returns the checkerboard plane
func (s *Scene) Floor() geometry.Plane { return s.floor }

// Light returns the point light position
func (s *Scene) Light() core.Vec3 { return s.light }

// Camera returns the eye position
func (s *Scene) Camera() core.Vec3 { return s.camera }

// Background returns the color of rays that hit nothing
func (s *Scene) Background() core.Vec3 { return s.background }

// FloorColors returns the checker colors for even and odd cells
func (s *Scene) FloorColors() [2]core.Vec3 { return s.floorColors }

// Config returns a copy of the scene's configuration
func (s *Scene) Config() Config {
	return Config{
		Spheres:     slices.Clone(s.spheres),
		Floor:       s.floor,
		Light:       s.light,
		Camera:      s.camera,
		Background:  s.background,
		FloorColors: s.floorColors,
	}
}
