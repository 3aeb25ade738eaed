package core

// Ray represents a ray with an origin and direction
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

// NewRay creates a new ray
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}

// Offset returns the ray moved along normal by bias, keeping its direction.
// Secondary rays use it to leave the surface they start on.
func (r Ray) Offset(normal Vec3, bias float64) Ray {
	return Ray{Origin: r.Origin.Add(normal.Multiply(bias)), Direction: r.Direction}
}
