package renderer

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels     int // Pixels rendered
	PrimaryRays     int // Camera rays, one per pixel
	ShadowRays      int // Rays cast toward the light
	ReflectionRays  int // Mirror bounces traced
	BackgroundHits  int // Rays that escaped the scene
	FloorHits       int // Rays that ended on the checkerboard
	SphereHits      int // Rays that hit a sphere
	MaxDepthReached int // Deepest bounce taken by any ray
}

// Merge adds another region's statistics into s
func (s *RenderStats) Merge(other RenderStats) {
	s.TotalPixels += other.TotalPixels
	s.PrimaryRays += other.PrimaryRays
	s.ShadowRays += other.ShadowRays
	s.ReflectionRays += other.ReflectionRays
	s.BackgroundHits += other.BackgroundHits
	s.FloorHits += other.FloorHits
	s.SphereHits += other.SphereHits
	s.MaxDepthReached = max(s.MaxDepthReached, other.MaxDepthReached)
}

// TotalRays returns every ray traced
func (s RenderStats) TotalRays() int {
	return s.PrimaryRays + s.ShadowRays + s.ReflectionRays
}
