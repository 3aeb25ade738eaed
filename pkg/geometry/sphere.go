package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-mirror-raytracer/pkg/core"
)

// Sphere represents a solid-colored, optionally mirrored sphere
type Sphere struct {
	Center       core.Vec3
	Radius       float64
	Color        core.Vec3 // Linear RGB, 0..1 per channel
	Reflectivity float64   // Blend weight of the mirrored color, 0..1
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, color core.Vec3, reflectivity float64) Sphere {
	return Sphere{
		Center:       center,
		Radius:       radius,
		Color:        color,
		Reflectivity: reflectivity,
	}
}

// IntersectSphere returns the near root of the ray/sphere quadratic.
//
// The direction is assumed to be unit length: the quadratic is solved without
// an `a` coefficient. ok is false only when the discriminant is negative; the
// returned distance may be zero or negative when the origin is inside or past
// the sphere, and callers must reject those themselves.
func IntersectSphere(origin, direction core.Vec3, s Sphere) (t float64, ok bool) {
	oc := origin.Subtract(s.Center)
	b := oc.Dot(direction)
	c := oc.Dot(oc) - s.Radius*s.Radius
	h := b*b - c
	if h < 0 {
		return 0, false
	}
	return -b - math.Sqrt(h), true
}

// Intersect tests the ray against the sphere. See IntersectSphere.
func (s Sphere) Intersect(ray core.Ray) (float64, bool) {
	return IntersectSphere(ray.Origin, ray.Direction, s)
}

// NormalAt returns the outward unit normal at a point on the surface
func (s Sphere) NormalAt(point core.Vec3) core.Vec3 {
	return point.Subtract(s.Center).Normalize()
}

// Reflective reports whether the sphere mirrors any of its surroundings
func (s Sphere) Reflective() bool {
	return s.Reflectivity > 0
}

// Validate checks the radius, reflectivity and color ranges
func (s Sphere) Validate() error {
	if !(s.Radius > 0) {
		return fmt.Errorf("%w: radius %g", ErrInvalidRadius, s.Radius)
	}
	if !(s.Reflectivity >= 0 && s.Reflectivity <= 1) {
		return fmt.Errorf("%w: %g", ErrInvalidReflectivity, s.Reflectivity)
	}
	if !inUnitRange(s.Color) {
		return fmt.Errorf("%w: %v", ErrInvalidColor, s.Color)
	}
	return nil
}

func inUnitRange(c core.Vec3) bool {
	for _, channel := range [...]float64{c.X, c.Y, c.Z} {
		if !(channel >= 0 && channel <= 1) {
			return false
		}
	}
	return true
}
