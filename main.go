package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/df07/go-mirror-raytracer/pkg/imageio"
	"github.com/df07/go-mirror-raytracer/pkg/renderer"
	"github.com/df07/go-mirror-raytracer/pkg/scene"
)

// config holds the command line settings
type config struct {
	Width   int
	Height  int
	Output  string
	Quality int
	Workers int
	Depth   int
}

// defaultConfig reproduces the reference render
func defaultConfig() config {
	return config{
		Width:   800,
		Height:  600,
		Output:  "render.jpg",
		Quality: imageio.DefaultQuality,
		Workers: 0,
		Depth:   renderer.DefaultTraceConfig().MaxDepth,
	}
}

// parseFlags reads the command line. flag.ErrHelp is returned after usage is
// printed for -help.
func parseFlags(args []string, output io.Writer) (config, error) {
	cfg := defaultConfig()

	fs := flag.NewFlagSet("raytracer", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.IntVar(&cfg.Width, "width", cfg.Width, "Image width in pixels")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "Image height in pixels")
	fs.StringVar(&cfg.Output, "output", cfg.Output, "Output file (.jpg, .jpeg, .png or .ppm)")
	fs.IntVar(&cfg.Quality, "quality", cfg.Quality, "JPEG quality (1-100)")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "Render workers (0 = one per CPU)")
	fs.IntVar(&cfg.Depth, "depth", cfg.Depth, "Maximum reflection depth")
	help := fs.Bool("help", false, "Show help information")
	fs.Usage = func() {
		fmt.Fprintln(output, "Mirror Raytracer")
		fmt.Fprintln(output, "Renders three reflective spheres over a checkerboard floor.")
		fmt.Fprintln(output)
		fmt.Fprintln(output, "Usage: raytracer [options]")
		fmt.Fprintln(output)
		fmt.Fprintln(output, "Options:")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if *help {
		fs.Usage()
		return cfg, flag.ErrHelp
	}

	if cfg.Width <= 0 || cfg.Height <= 0 {
		return cfg, fmt.Errorf("invalid image size %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Depth < 0 {
		return cfg, fmt.Errorf("invalid reflection depth %d", cfg.Depth)
	}
	if _, err := imageio.FormatFromPath(cfg.Output); err != nil {
		return cfg, err
	}
	if cfg.Quality < 1 || cfg.Quality > 100 {
		log.Printf("JPEG quality %d out of range, using %d", cfg.Quality, imageio.DefaultQuality)
		cfg.Quality = imageio.DefaultQuality
	}

	return cfg, nil
}

// run renders the default scene and writes it to cfg.Output
func run(ctx context.Context, cfg config, out io.Writer) error {
	fmt.Fprintln(out, "Starting Mirror Raytracer...")

	raytracer := renderer.NewRaytracer(scene.NewDefaultScene(), cfg.Width, cfg.Height)

	traceConfig := renderer.DefaultTraceConfig()
	traceConfig.MaxDepth = cfg.Depth
	raytracer.SetTraceConfig(traceConfig)

	renderConfig := renderer.DefaultRenderConfig()
	if cfg.Workers > 0 {
		renderConfig.NumWorkers = cfg.Workers
	}
	raytracer.SetRenderConfig(renderConfig)

	startTime := time.Now()
	frame, stats, err := raytracer.RenderFrame(ctx)
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}
	renderTime := time.Since(startTime)

	fmt.Fprintf(out, "Render completed in %v (%dx%d, %d workers)\n",
		renderTime, cfg.Width, cfg.Height, renderConfig.NumWorkers)
	fmt.Fprintf(out, "Rays traced: %d (primary %d, shadow %d, reflection %d), deepest bounce %d\n",
		stats.TotalRays(), stats.PrimaryRays, stats.ShadowRays, stats.ReflectionRays, stats.MaxDepthReached)
	fmt.Fprintf(out, "Average luminance: %.3f\n", renderer.CalculateAverageLuminance(frame))

	err = imageio.Save(cfg.Output, frame.Pix, frame.Width, frame.Height, imageio.Options{Quality: cfg.Quality})
	if err != nil {
		return fmt.Errorf("saving %s: %w", cfg.Output, err)
	}

	fmt.Fprintf(out, "Render saved as %s\n", cfg.Output)
	return nil
}

func main() {
	cfg, err := parseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	if err := run(context.Background(), cfg, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
