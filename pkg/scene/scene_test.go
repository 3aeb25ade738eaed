package scene

import (
	"errors"
	"testing"

	"github.com/df07/go-mirror-raytracer/pkg/core"
	"github.com/df07/go-mirror-raytracer/pkg/geometry"
)

func TestNewDefaultScene(t *testing.T) {
	s := NewDefaultScene()

	if s.SphereCount() != 3 {
		t.Fatalf("Expected 3 spheres, got %d", s.SphereCount())
	}

	expected := []struct {
		center       core.Vec3
		color        core.Vec3
		reflectivity float64
	}{
		{core.NewVec3(0, 1, -6), core.NewVec3(1, 0, 0), 0.5},
		{core.NewVec3(2, 1, -7), core.NewVec3(0, 1, 0), 0.3},
		{core.NewVec3(-2, 1, -7), core.NewVec3(0, 0, 1), 0.8},
	}
	for i, sphere := range s.Spheres() {
		if sphere.Center != expected[i].center || sphere.Radius != 1 ||
			sphere.Color != expected[i].color || sphere.Reflectivity != expected[i].reflectivity {
			t.Errorf("Sphere %d: unexpected %+v", i, sphere)
		}
	}

	if s.Light() != core.NewVec3(5, 8, -3) {
		t.Errorf("Unexpected light %v", s.Light())
	}
	if s.Camera() != core.NewVec3(0, 1, 2) {
		t.Errorf("Unexpected camera %v", s.Camera())
	}
	if s.Background() != core.NewVec3(0.1, 0.1, 0.15) {
		t.Errorf("Unexpected background %v", s.Background())
	}
	if s.Floor().Normal != core.NewVec3(0, 1, 0) {
		t.Errorf("Unexpected floor normal %v", s.Floor().Normal)
	}
	colors := s.FloorColors()
	if colors[0] != core.NewVec3(0, 0, 0) || colors[1] != core.NewVec3(1, 1, 1) {
		t.Errorf("Unexpected floor colors %v", colors)
	}
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(c *Config)
		expected error
	}{
		{
			name:     "bad radius",
			mutate:   func(c *Config) { c.Spheres[1].Radius = 0 },
			expected: geometry.ErrInvalidRadius,
		},
		{
			name:     "bad reflectivity",
			mutate:   func(c *Config) { c.Spheres[2].Reflectivity = 1.5 },
			expected: geometry.ErrInvalidReflectivity,
		},
		{
			name:     "zero floor normal",
			mutate:   func(c *Config) { c.Floor.Normal = core.Vec3{} },
			expected: geometry.ErrInvalidNormal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.mutate(&config)

			s, err := New(config)
			if !errors.Is(err, tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, err)
			}
			if s != nil {
				t.Errorf("Expected nil scene on error")
			}
		})
	}
}

func TestNew_NoSpheres(t *testing.T) {
	config := DefaultConfig()
	config.Spheres = nil

	s, err := New(config)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if s.SphereCount() != 0 {
		t.Errorf("Expected empty scene, got %d spheres", s.SphereCount())
	}
}

func TestScene_IsolatedFromConfig(t *testing.T) {
	config := DefaultConfig()
	s, err := New(config)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// Mutating the caller's slice must not reach the scene
	config.Spheres[0].Radius = 42
	if s.Sphere(0).Radius != 1 {
		t.Errorf("Scene changed through the config slice: radius %g", s.Sphere(0).Radius)
	}

	// Nor may mutating a returned config
	copied := s.Config()
	copied.Spheres[0].Reflectivity = 0
	if s.Sphere(0).Reflectivity != 0.5 {
		t.Errorf("Scene changed through Config(): reflectivity %g", s.Sphere(0).Reflectivity)
	}
}

func TestScene_SpheresStopsEarly(t *testing.T) {
	s := NewDefaultScene()

	visited := 0
	for i := range s.Spheres() {
		visited++
		if i == 1 {
			break
		}
	}
	if visited != 2 {
		t.Errorf("Expected to visit 2 spheres, visited %d", visited)
	}
}
