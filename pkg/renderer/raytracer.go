package renderer

import (
	"context"
	"errors"
	"fmt"
	"image"
	"iter"
	"runtime"

	"github.com/df07/go-mirror-raytracer/pkg/core"
	"github.com/df07/go-mirror-raytracer/pkg/geometry"
)

// noHitDistance is the starting distance of the nearest-hit search
const noHitDistance = 1e9

// ErrInvalidSize is returned when a frame has no pixels
var ErrInvalidSize = errors.New("image dimensions must be positive")

// TraceConfig contains shading configuration
type TraceConfig struct {
	MaxDepth          int     // Deepest reflection bounce; primary rays are depth 0
	ShadowAttenuation float64 // Light factor for points whose light is blocked
	SurfaceBias       float64 // Distance secondary rays start off the surface
	Gamma             float64 // Display gamma used when converting to bytes
}

// DefaultTraceConfig returns the values the reference render uses
func DefaultTraceConfig() TraceConfig {
	return TraceConfig{
		MaxDepth:          3,
		ShadowAttenuation: 0.2,
		SurfaceBias:       0.01,
		Gamma:             2.2,
	}
}

// RenderConfig controls how a frame is split across workers
type RenderConfig struct {
	NumWorkers  int // Worker count; 0 or less uses runtime.NumCPU()
	RowsPerTask int // Scanlines per worker task
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		NumWorkers:  runtime.NumCPU(),
		RowsPerTask: 8,
	}
}

// Scene interface to keep the renderer independent of scene construction
type Scene interface {
	Spheres() iter.Seq2[int, geometry.Sphere]
	Floor() geometry.Plane
	Light() core.Vec3
	Camera() core.Vec3
	Background() core.Vec3
	FloorColors() [2]core.Vec3
}

// hitRecord describes the nearest surface a ray reached
type hitRecord struct {
	T      float64
	Point  core.Vec3
	Normal core.Vec3
	Color  core.Vec3
	Floor  bool
	Sphere geometry.Sphere // Valid only when Floor is false
}

// Raytracer handles the rendering process
type Raytracer struct {
	scene        Scene
	width        int
	height       int
	config       TraceConfig
	renderConfig RenderConfig
	camera       *Camera
}

// NewRaytracer creates a new raytracer
func NewRaytracer(scene Scene, width, height int) *Raytracer {
	return &Raytracer{
		scene:        scene,
		width:        width,
		height:       height,
		config:       DefaultTraceConfig(),
		renderConfig: DefaultRenderConfig(),
		camera:       NewCamera(scene.Camera(), width, height),
	}
}

// SetTraceConfig updates the shading configuration
func (rt *Raytracer) SetTraceConfig(config TraceConfig) {
	rt.config = config
}

// SetRenderConfig updates the parallelism configuration
func (rt *Raytracer) SetRenderConfig(config RenderConfig) {
	rt.renderConfig = config
}

// Camera returns the camera generating primary rays
func (rt *Raytracer) Camera() *Camera {
	return rt.camera
}

// Trace returns the color seen along ray. depth is the number of reflections
// already taken to reach this ray.
func (rt *Raytracer) Trace(ray core.Ray, depth int) core.Vec3 {
	var stats RenderStats
	return rt.rayColor(ray, depth, &stats)
}

// rayColor is Trace with statistics collection
func (rt *Raytracer) rayColor(ray core.Ray, depth int, stats *RenderStats) core.Vec3 {
	stats.MaxDepthReached = max(stats.MaxDepthReached, depth)

	hit, isHit := rt.hitWorld(ray)
	if !isHit {
		stats.BackgroundHits++
		return rt.scene.Background()
	}
	if hit.Floor {
		stats.FloorHits++
	} else {
		stats.SphereHits++
	}

	toLight := rt.scene.Light().Subtract(hit.Point).Normalize()
	diffuse := max(0, hit.Normal.Dot(toLight))

	shadow := 1.0
	shadowRay := core.NewRay(hit.Point, toLight).Offset(hit.Normal, rt.config.SurfaceBias)
	stats.ShadowRays++
	if rt.occluded(shadowRay) {
		shadow = rt.config.ShadowAttenuation
	}

	color := hit.Color.Multiply(diffuse * shadow)

	// The floor never reflects
	if hit.Floor || !hit.Sphere.Reflective() || depth >= rt.config.MaxDepth {
		return color
	}

	reflectivity := hit.Sphere.Reflectivity
	reflected := core.NewRay(hit.Point, ray.Direction.Reflect(hit.Normal)).Offset(hit.Normal, rt.config.SurfaceBias)
	stats.ReflectionRays++
	reflectedColor := rt.rayColor(reflected, depth+1, stats)

	return blend(color, reflectedColor, reflectivity)
}

// blend mixes local shading with the mirrored color
func blend(local, reflected core.Vec3, reflectivity float64) core.Vec3 {
	return local.Multiply(1 - reflectivity).Add(reflected.Multiply(reflectivity))
}

// hitWorld finds the nearest surface in front of the ray. Spheres are tested
// before the floor, and a later primitive only wins when strictly closer.
func (rt *Raytracer) hitWorld(ray core.Ray) (hitRecord, bool) {
	var hit hitRecord
	closestSoFar := noHitDistance
	hitAnything := false

	for _, sphere := range rt.scene.Spheres() {
		if t, ok := sphere.Intersect(ray); ok && t > 0 && t < closestSoFar {
			closestSoFar = t
			hit.Sphere = sphere
			hit.Floor = false
			hitAnything = true
		}
	}

	floor := rt.scene.Floor()
	if t, ok := floor.Intersect(ray); ok && t < closestSoFar {
		closestSoFar = t
		hit.Floor = true
		hitAnything = true
	}

	if !hitAnything {
		return hitRecord{}, false
	}

	hit.T = closestSoFar
	hit.Point = ray.At(closestSoFar)
	if hit.Floor {
		hit.Normal = floor.Normal
		hit.Color = rt.scene.FloorColors()[geometry.CheckerParity(hit.Point)]
	} else {
		hit.Normal = hit.Sphere.NormalAt(hit.Point)
		hit.Color = hit.Sphere.Color
	}
	return hit, true
}

// occluded reports whether any sphere lies in front of the shadow ray.
// Only spheres cast shadows; the floor does not.
func (rt *Raytracer) occluded(shadowRay core.Ray) bool {
	for _, sphere := range rt.scene.Spheres() {
		if t, ok := sphere.Intersect(shadowRay); ok && t > 0 {
			return true
		}
	}
	return false
}

// RenderBounds renders the pixels inside bounds into frame and returns the
// statistics for that region. Concurrent calls must use disjoint bounds.
func (rt *Raytracer) RenderBounds(bounds image.Rectangle, frame *Frame) RenderStats {
	bounds = bounds.Intersect(frame.Bounds())
	stats := RenderStats{TotalPixels: bounds.Dx() * bounds.Dy()}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			ray := rt.camera.PixelRay(x, y)
			stats.PrimaryRays++
			color := rt.rayColor(ray, 0, &stats)
			frame.SetRGB(x, y, ToneMap(color, rt.config.Gamma))
		}
	}

	return stats
}

// RenderFrame renders every pixel across the worker pool. The frame is
// returned only once all pixels are written. The only error is ctx ending
// early or an empty image size.
func (rt *Raytracer) RenderFrame(ctx context.Context) (*Frame, RenderStats, error) {
	if rt.width <= 0 || rt.height <= 0 {
		return nil, RenderStats{}, fmt.Errorf("%w: %dx%d", ErrInvalidSize, rt.width, rt.height)
	}

	frame := NewFrame(rt.width, rt.height)
	tasks := NewRowTasks(rt.width, rt.height, rt.renderConfig.RowsPerTask)
	pool := NewWorkerPool(rt, rt.renderConfig.NumWorkers)

	results, err := pool.Run(ctx, frame, tasks)
	if err != nil {
		return nil, RenderStats{}, err
	}

	var stats RenderStats
	for _, result := range results {
		stats.Merge(result.Stats)
	}
	return frame, stats, nil
}
