package renderer

import (
	"context"
	"math"
	"runtime"
	"time"

	"github.com/df07/go-bounce-pathtracer/pkg/core"
	"github.com/df07/go-bounce-pathtracer/pkg/integrator"
)

// Config contains frame rendering configuration
type Config struct {
	Width      int               // Image width in pixels
	Height     int               // Image height in pixels
	Samples    int               // Independent sample passes per frame
	Workers    int               // Parallel workers (0 = use CPU count)
	Seed       uint64            // Base seed for worker streams (0 = non-deterministic)
	Camera     Camera            // Eye and screen plane
	Integrator integrator.Config // Depth cap and roulette probability

	// UnscaledEmitters adds directly visible lights at full strength on
	// every pass instead of normalizing them by the sample count.
	UnscaledEmitters bool
}

// DefaultConfig returns the classic 256x256, 150 sample setup
func DefaultConfig() Config {
	return Config{
		Width:      256,
		Height:     256,
		Samples:    150,
		Camera:     DefaultCamera(),
		Integrator: integrator.DefaultConfig(),
	}
}

// Brightness is the per-sample weight of non-emissive hits: the 2*pi
// hemisphere measure spread over all passes.
func (c Config) Brightness() float64 {
	return 2.0 * math.Pi / float64(c.Samples)
}

// FrameRenderer renders one frame at a time by running independent sample
// passes over the whole image on a pool of workers.
type FrameRenderer struct {
	config Config
	logger core.Logger
}

// NewFrameRenderer creates a new frame renderer
func NewFrameRenderer(config Config, logger core.Logger) *FrameRenderer {
	if logger == nil {
		logger = core.NopLogger{}
	}
	return &FrameRenderer{
		config: config,
		logger: logger,
	}
}

func (fr *FrameRenderer) numWorkers() int {
	n := fr.config.Workers
	if n <= 0 {
		n = runtime.NumCPU()
	}
	return max(1, min(n, fr.config.Samples))
}

// Render renders frame 0 of the scene
func (fr *FrameRenderer) Render(ctx context.Context, scene integrator.Intersector) (*Frame, RenderStats, error) {
	return fr.RenderFrame(ctx, scene, 0)
}

// RenderFrame renders one frame. The frame index only feeds the worker
// seeds, so a fixed base seed still gives every frame fresh noise. The scene
// must not change until RenderFrame returns.
func (fr *FrameRenderer) RenderFrame(ctx context.Context, scene integrator.Intersector, index int) (*Frame, RenderStats, error) {
	start := time.Now()
	pt := integrator.NewPathTracer(scene, fr.config.Integrator)

	pool := newPassPool(fr.numWorkers(), fr.config, index)
	fr.logger.Debug("rendering frame", "frame", index, "samples", fr.config.Samples, "workers", len(pool.workers))

	if err := pool.run(ctx, fr.config.Samples, func(w *passWorker) {
		fr.renderPass(pt, w)
	}); err != nil {
		return nil, RenderStats{}, err
	}

	frame, err := pool.merge(fr.config.Width, fr.config.Height)
	if err != nil {
		return nil, RenderStats{}, err
	}
	frame.ResolveEmission(fr.config.Samples, fr.config.UnscaledEmitters)

	stats := RenderStats{
		Frame:    index,
		Passes:   pool.passes(),
		Workers:  len(pool.workers),
		Pixels:   fr.config.Width * fr.config.Height,
		Duration: time.Since(start),
	}
	return frame, stats, nil
}

// renderPass adds one sample of every pixel into the worker's buffer
func (fr *FrameRenderer) renderPass(pt *integrator.PathTracer, w *passWorker) {
	width, height := fr.config.Width, fr.config.Height
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			x, y := ScreenPoint(col, row, width, height, w.sampler.Get1D(), w.sampler.Get1D())
			ray := fr.config.Camera.GetRay(x, y)
			if c, emitted := fr.SamplePixel(pt, ray, w.sampler); emitted {
				w.frame.AddEmission(col, row, c)
			} else {
				w.frame.Add(col, row, c)
			}
		}
	}
}

// SamplePixel evaluates one camera ray. A directly visible light returns its
// unweighted color and true; the frame weights those hits once all passes
// are merged. Other surfaces take one bounce, hand the continuation to the
// integrator and come back already weighted by Brightness.
func (fr *FrameRenderer) SamplePixel(pt *integrator.PathTracer, ray core.Ray, sampler core.Sampler) (core.Vec3, bool) {
	hit := pt.NearestHit(ray)
	if !hit.Hit {
		return core.Vec3{}, false
	}
	if hit.Material.Emissive {
		return hit.Material.Color, true
	}
	color := pt.Bounce(ray, hit, 0, sampler, integrator.BounceOptions{})
	return color.Multiply(fr.config.Brightness()), false
}
