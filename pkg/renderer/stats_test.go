package renderer

import "testing"

func TestRenderStats_Merge(t *testing.T) {
	total := RenderStats{TotalPixels: 4, PrimaryRays: 4, ShadowRays: 3, BackgroundHits: 1, FloorHits: 2, SphereHits: 1, MaxDepthReached: 1}
	total.Merge(RenderStats{TotalPixels: 2, PrimaryRays: 2, ShadowRays: 4, ReflectionRays: 2, SphereHits: 4, MaxDepthReached: 3})
	total.Merge(RenderStats{TotalPixels: 1, PrimaryRays: 1, BackgroundHits: 1})

	expected := RenderStats{
		TotalPixels:     7,
		PrimaryRays:     7,
		ShadowRays:      7,
		ReflectionRays:  2,
		BackgroundHits:  2,
		FloorHits:       2,
		SphereHits:      5,
		MaxDepthReached: 3,
	}
	if total != expected {
		t.Errorf("Expected %+v, got %+v", expected, total)
	}
	if total.TotalRays() != 16 {
		t.Errorf("Expected 16 rays, got %d", total.TotalRays())
	}
}
