package renderer

import (
	"context"
	"image"
	"image/color"
	"math"
	"runtime"

	"github.com/alitto/pond/v2"

	"github.com/arcweave/pathtracer/pkg/core"
	"github.com/arcweave/pathtracer/pkg/integrator"
)

// Raytracer renders a Scene through a Camera with a given Integrator,
// scheduling tiles across a bounded worker pool.
type Raytracer struct {
	scene      *core.Scene
	camera     *Camera
	integrator integrator.Integrator
	config     RenderConfig
	logger     core.Logger
	width      int
	height     int
}

// NewRaytracer builds a Raytracer. scene.Build must already have been
// called. logger may be nil, in which case render progress is not
// logged.
func NewRaytracer(scene *core.Scene, camera *Camera, integratorInst integrator.Integrator, cfg RenderConfig, logger core.Logger) (*Raytracer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Raytracer{
		scene:      scene,
		camera:     camera,
		integrator: integratorInst,
		config:     cfg,
		logger:     logger,
		width:      cfg.ImageWidth,
		height:     cfg.ImageHeight(),
	}, nil
}

// PassResult is emitted by RenderProgressive once per completed pass:
// a partial (or, on the final pass, converged) image plus the stats for
// that pass.
type PassResult struct {
	Image           *image.RGBA
	PassNumber      int
	SamplesPerPixel int
	Stats           RenderStats
}

// Render performs a single pass at the full configured sample count and
// returns the tone-mapped image.
func (rt *Raytracer) Render(ctx context.Context) (*image.RGBA, RenderStats, error) {
	pixelStats := newPixelGrid(rt.width, rt.height)
	stats, err := rt.renderPass(ctx, pixelStats, 0, rt.config.SamplesPerPixel, rt.config.SamplesPerPixel, 0)
	if err != nil {
		return nil, RenderStats{}, err
	}
	return toImage(pixelStats, rt.width, rt.height, rt.config.Gamma), stats, nil
}

// RenderProgressive renders in passes of geometrically increasing
// sample counts (1, 2, 4, 8, ... capped at SamplesPerPixel), emitting a
// PassResult after each completed pass. The channel is closed after the
// final pass or on error/cancellation; the caller should drain it fully.
func (rt *Raytracer) RenderProgressive(ctx context.Context) <-chan PassResult {
	out := make(chan PassResult)

	go func() {
		defer close(out)

		pixelStats := newPixelGrid(rt.width, rt.height)
		sampleStart := 0
		passSize := 1
		passNumber := 0

		for sampleStart < rt.config.SamplesPerPixel {
			samplesThisPass := passSize
			if sampleStart+samplesThisPass > rt.config.SamplesPerPixel {
				samplesThisPass = rt.config.SamplesPerPixel - sampleStart
			}

			stats, err := rt.renderPass(ctx, pixelStats, sampleStart, samplesThisPass, rt.config.SamplesPerPixel, passNumber)
			if err != nil {
				if rt.logger != nil {
					rt.logger.Printf("render pass %d failed: %v", passNumber, err)
				}
				return
			}

			select {
			case out <- PassResult{
				Image:           toImage(pixelStats, rt.width, rt.height, rt.config.Gamma),
				PassNumber:      passNumber,
				SamplesPerPixel: sampleStart + samplesThisPass,
				Stats:           stats,
			}:
			case <-ctx.Done():
				return
			}

			sampleStart += samplesThisPass
			passSize *= 2
			passNumber++
		}
	}()

	return out
}

// renderPass schedules every tile of one pass across the worker pool
// and blocks until all tiles for that pass have completed, or ctx is
// cancelled.
func (rt *Raytracer) renderPass(ctx context.Context, pixelStats [][]PixelStats, sampleStart, sampleCount, totalSamples, passID int) (RenderStats, error) {
	tiles := Tiles(rt.width, rt.height, rt.config.TileSize)

	numWorkers := rt.config.NumWorkers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	pool := pond.NewPool(numWorkers)

	for _, tile := range tiles {
		tile := tile
		if ctx.Err() != nil {
			break
		}
		pool.Submit(func() {
			if ctx.Err() != nil {
				return
			}
			renderTile(tile, pixelStats, rt.width, rt.height, rt.scene, rt.camera, rt.integrator,
				sampleStart, sampleCount, totalSamples, rt.config.MaxDepth, rt.config.RandomSeed, passID)
		})
	}
	pool.StopAndWait()

	if ctx.Err() != nil {
		return RenderStats{}, core.ErrCancelled
	}

	if rt.logger != nil {
		rt.logger.Printf("render pass %d: %d tiles, %d samples/pixel this pass", passID, len(tiles), sampleCount)
	}

	return RenderStats{
		Width:           rt.width,
		Height:          rt.height,
		SamplesPerPixel: sampleStart + sampleCount,
		TilesRendered:   len(tiles),
	}, nil
}

// renderTile traces sampleCount additional stratified samples (indices
// [sampleStart, sampleStart+sampleCount)) out of totalSamples total for
// every pixel in tile's bounds, accumulating into pixelStats. Its RNG is
// seeded from a hash of (tile.ID, passID), so re-running the same pass
// on the same tile always draws the same samples regardless of which
// worker picks it up.
func renderTile(tile Tile, pixelStats [][]PixelStats, width, height int, scene *core.Scene, camera *Camera, integratorInst integrator.Integrator, sampleStart, sampleCount, totalSamples, maxDepth int, baseSeed int64, passID int) {
	gridSize := int(math.Ceil(math.Sqrt(float64(totalSamples))))
	if gridSize < 1 {
		gridSize = 1
	}
	random := core.NewRNG(core.TileSeed(baseSeed, tile.ID, passID))

	for j := tile.Bounds.Min.Y; j < tile.Bounds.Max.Y; j++ {
		for i := tile.Bounds.Min.X; i < tile.Bounds.Max.X; i++ {
			ps := &pixelStats[j][i]
			for s := 0; s < sampleCount; s++ {
				sampleIndex := sampleStart + s
				cx := sampleIndex % gridSize
				cy := (sampleIndex / gridSize) % gridSize

				u := (float64(cx) + random.Float64()) / float64(gridSize)
				v := (float64(cy) + random.Float64()) / float64(gridSize)

				screenS := (float64(i) + u) / float64(width)
				screenT := 1.0 - (float64(j)+v)/float64(height)

				ray := camera.GetRay(screenS, screenT, random)
				color := integratorInst.RayColor(ray, scene, random, maxDepth)
				ps.AddSample(color)
			}
		}
	}
}

func newPixelGrid(width, height int) [][]PixelStats {
	grid := make([][]PixelStats, height)
	for y := range grid {
		grid[y] = make([]PixelStats, width)
	}
	return grid
}

// toImage tone-maps accumulated pixel statistics into an 8-bit image:
// gamma correction, then clamp each channel to [0, 0.999] so it never
// rounds up to 256, then floor(channel * 256).
func toImage(pixelStats [][]PixelStats, width, height int, gamma float64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := pixelStats[y][x].Color().GammaCorrect(gamma).Clamp(0, 0.999)
			img.Set(x, y, color.RGBA{
				R: uint8(c.X * 256),
				G: uint8(c.Y * 256),
				B: uint8(c.Z * 256),
				A: 255,
			})
		}
	}
	return img
}
