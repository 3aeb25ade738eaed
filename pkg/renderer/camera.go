package renderer

import (
	"github.com/df07/go-mirror-raytracer/pkg/core"
)

// Camera generates rays for rendering. It looks down -Z from origin through
// an image plane one unit away that spans [-aspect, aspect] x [-1, 1].
type Camera struct {
	origin core.Vec3
	width  float64
	height float64
}

// NewCamera creates a pinhole camera for an image of width x height pixels
func NewCamera(origin core.Vec3, width, height int) *Camera {
	return &Camera{
		origin: origin,
		width:  float64(width),
		height: float64(height),
	}
}

// Origin returns the eye position
func (c *Camera) Origin() core.Vec3 {
	return c.origin
}

// ScreenPoint maps the center of pixel (x, y) to image plane coordinates.
// Row 0 is the top of the image.
func (c *Camera) ScreenPoint(x, y int) (px, py float64) {
	px = (2*(float64(x)+0.5)/c.width - 1) * c.width / c.height
	py = 1 - 2*(float64(y)+0.5)/c.height
	return px, py
}

// PixelRay returns the primary ray through the center of pixel (x, y)
func (c *Camera) PixelRay(x, y int) core.Ray {
	px, py := c.ScreenPoint(x, y)
	return core.NewRay(c.origin, core.NewVec3(px, py, -1).Normalize())
}
