package renderer

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/df07/go-mirror-raytracer/pkg/scene"
)

func TestRenderFrame_DefaultScene(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping full-resolution render in short mode")
	}

	s := scene.NewDefaultScene()
	raytracer := NewRaytracer(s, 800, 600)

	frame, stats, err := raytracer.RenderFrame(context.Background())
	if err != nil {
		t.Fatalf("RenderFrame failed: %v", err)
	}
	if frame.Width != 800 || frame.Height != 600 || len(frame.Pix) != 800*600*3 {
		t.Fatalf("Unexpected frame %dx%d with %d bytes", frame.Width, frame.Height, len(frame.Pix))
	}

	// Pixel (400, 500) looks at the floor just in front of the camera
	ray := raytracer.Camera().PixelRay(400, 500)
	hit, isHit := raytracer.hitWorld(ray)
	if !isHit || !hit.Floor {
		t.Fatalf("Expected pixel (400, 500) to see the floor, got hit=%t %+v", isHit, hit)
	}
	expected := ToneMap(raytracer.Trace(ray, 0), DefaultTraceConfig().Gamma)
	if got := frame.RGB(400, 500); got != expected {
		t.Errorf("Expected pixel (400, 500) = %v, got %v", expected, got)
	}
	if got := frame.RGB(400, 500); got == ToneMap(s.Background(), DefaultTraceConfig().Gamma) {
		t.Errorf("Pixel (400, 500) has the background color")
	}

	// The top row is sky
	background := ToneMap(s.Background(), DefaultTraceConfig().Gamma)
	if got := frame.RGB(400, 0); got != background {
		t.Errorf("Expected background %v at (400, 0), got %v", background, got)
	}

	// The center pixel looks straight at the red sphere
	if got := frame.RGB(400, 300); got[0] <= got[1] || got[0] <= got[2] {
		t.Errorf("Expected a red-dominant pixel at the image center, got %v", got)
	}

	if stats.TotalPixels != 800*600 || stats.PrimaryRays != 800*600 {
		t.Errorf("Expected one primary ray per pixel, got %+v", stats)
	}
	if stats.MaxDepthReached > DefaultTraceConfig().MaxDepth {
		t.Errorf("Recursion went to depth %d", stats.MaxDepthReached)
	}
	if stats.ShadowRays != stats.FloorHits+stats.SphereHits {
		t.Errorf("Expected one shadow ray per surface hit, got %+v", stats)
	}
	if stats.BackgroundHits+stats.FloorHits+stats.SphereHits != stats.PrimaryRays+stats.ReflectionRays {
		t.Errorf("Every traced ray must end somewhere, got %+v", stats)
	}
}

func TestRenderFrame_WorkerCountDoesNotChangeOutput(t *testing.T) {
	s := scene.NewDefaultScene()

	render := func(workers, rows int) []uint8 {
		raytracer := NewRaytracer(s, 160, 120)
		raytracer.SetRenderConfig(RenderConfig{NumWorkers: workers, RowsPerTask: rows})
		frame, _, err := raytracer.RenderFrame(context.Background())
		if err != nil {
			t.Fatalf("RenderFrame failed: %v", err)
		}
		return frame.Pix
	}

	serial := render(1, 120)
	parallel := render(8, 3)
	if !bytes.Equal(serial, parallel) {
		t.Errorf("Parallel render differs from serial render")
	}
}

func TestRenderFrame_MatchesPerPixelTrace(t *testing.T) {
	raytracer := NewRaytracer(scene.NewDefaultScene(), 32, 24)
	frame, _, err := raytracer.RenderFrame(context.Background())
	if err != nil {
		t.Fatalf("RenderFrame failed: %v", err)
	}

	for y := 0; y < 24; y++ {
		for x := 0; x < 32; x++ {
			expected := ToneMap(raytracer.Trace(raytracer.Camera().PixelRay(x, y), 0), 2.2)
			if got := frame.RGB(x, y); got != expected {
				t.Fatalf("Pixel (%d, %d): expected %v, got %v", x, y, expected, got)
			}
		}
	}
}

func TestRenderFrame_InvalidSize(t *testing.T) {
	for _, size := range [][2]int{{0, 600}, {800, 0}, {-1, -1}} {
		raytracer := NewRaytracer(scene.NewDefaultScene(), size[0], size[1])
		if _, _, err := raytracer.RenderFrame(context.Background()); !errors.Is(err, ErrInvalidSize) {
			t.Errorf("Size %v: expected ErrInvalidSize, got %v", size, err)
		}
	}
}

func TestRenderFrame_Cancelled(t *testing.T) {
	raytracer := NewRaytracer(scene.NewDefaultScene(), 64, 48)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	frame, _, err := raytracer.RenderFrame(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
	if frame != nil {
		t.Errorf("Expected no frame after cancellation")
	}
}
