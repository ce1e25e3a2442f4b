// Command raytracer is a thin illustrative front-end over the core
// path tracer: it picks one of the built-in example scenes, renders it,
// and writes the result as PPM P3 to stdout or a file. Scene
// configuration loading, a GUI preview, and general-purpose scene files
// are explicitly out of scope for the core and are not implemented
// here either — this is a demonstration caller, not a product CLI.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/arcweave/pathtracer/pkg/integrator"
	"github.com/arcweave/pathtracer/pkg/logging"
	"github.com/arcweave/pathtracer/pkg/renderer"
	"github.com/arcweave/pathtracer/pkg/scene"
)

func main() {
	sceneName := flag.String("scene", "spheres", "built-in scene: 'spheres' or 'cornell'")
	samples := flag.Int("samples", 0, "samples per pixel (0 keeps the scene's default)")
	width := flag.Int("width", 0, "image width in pixels (0 keeps the scene's default)")
	output := flag.String("output", "", "output PPM path (empty writes to stdout)")
	workers := flag.Int("workers", 0, "parallel workers (0 = CPU count)")
	flag.Parse()

	log := logging.NewDevelopment()
	defer log.Sync()

	built, err := buildScene(*sceneName)
	if err != nil {
		fail(log, err)
	}

	if *samples > 0 {
		built.Config.SamplesPerPixel = *samples
	}
	if *width > 0 {
		built.Config.ImageWidth = *width
	}
	built.Config.NumWorkers = *workers

	rt, err := renderer.NewRaytracer(built.Scene, built.Camera, integrator.NewPathTracer(), built.Config, log)
	if err != nil {
		fail(log, err)
	}

	start := time.Now()
	img, stats, err := rt.Render(context.Background())
	if err != nil {
		fail(log, err)
	}
	log.Printf("rendered %dx%d at %d samples/pixel in %v", stats.Width, stats.Height, stats.SamplesPerPixel, time.Since(start))

	sink := os.Stdout
	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			fail(log, err)
		}
		defer f.Close()
		sink = f
	}

	if err := renderer.WritePPM(sink, img); err != nil {
		fail(log, err)
	}
}

func buildScene(name string) (*scene.Built, error) {
	switch name {
	case "cornell":
		return scene.NewCornellScene()
	case "spheres":
		return scene.NewSpheresScene()
	default:
		return nil, fmt.Errorf("unknown scene %q: expected 'spheres' or 'cornell'", name)
	}
}

func fail(log interface{ Printf(string, ...interface{}) }, err error) {
	log.Printf("fatal: %v", err)
	os.Exit(1)
}
