package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-mirror-raytracer/pkg/core"
)

// parallelEpsilon is the smallest |n·d| treated as crossing the plane
const parallelEpsilon = 1e-6

// Plane represents an infinite plane defined by a point and normal
type Plane struct {
	Point  core.Vec3 // A point on the plane
	Normal core.Vec3 // Unit normal, used as given
}

// NewPlane creates a new plane. Unlike a sphere's normal, the plane normal is
// not normalized here; callers pass a unit vector.
func NewPlane(point, normal core.Vec3) Plane {
	return Plane{Point: point, Normal: normal}
}

// IntersectPlane returns the distance along direction at which the ray
// crosses the plane. Rays nearly parallel to the plane and crossings at or
// behind the origin are misses.
func IntersectPlane(origin, direction core.Vec3, p Plane) (float64, bool) {
	denominator := p.Normal.Dot(direction)
	if math.Abs(denominator) < parallelEpsilon {
		return 0, false
	}

	t := p.Point.Subtract(origin).Dot(p.Normal) / denominator
	if !(t > 0) {
		return 0, false
	}
	return t, true
}

// Intersect tests the ray against the plane. See IntersectPlane.
func (p Plane) Intersect(ray core.Ray) (float64, bool) {
	return IntersectPlane(ray.Origin, ray.Direction, p)
}

// CheckerParity returns 0 or 1 for the unit cell of the XZ grid containing
// point. Cells are binned with floor, so the cells either side of an axis
// differ.
func CheckerParity(point core.Vec3) int {
	return (int(math.Floor(point.X)) + int(math.Floor(point.Z))) & 1
}

// Validate checks that the normal is non-zero
func (p Plane) Validate() error {
	if p.Normal.IsZero() {
		return fmt.Errorf("%w: %v", ErrInvalidNormal, p.Normal)
	}
	return nil
}
