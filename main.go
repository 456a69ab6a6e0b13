package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/df07/go-bounce-pathtracer/pkg/config"
	"github.com/df07/go-bounce-pathtracer/pkg/loaders"
	"github.com/df07/go-bounce-pathtracer/pkg/output"
	"github.com/df07/go-bounce-pathtracer/pkg/renderer"
	"github.com/df07/go-bounce-pathtracer/pkg/scene"
)

// scenesDir holds the YAML scenes selectable by name
const scenesDir = "scenes"

// gifDelay is the animated GIF frame time in 100ths of a second
const gifDelay = 4

func main() {
	// Parse command line flags
	configPath := flag.String("config", "", "YAML run configuration (default: built-in bounce animation)")
	sceneName := flag.String("scene", "", "Scene: built-in ID, name of a file in scenes/, or path to a YAML scene")
	frames := flag.Int("frames", 0, "Last frame index, inclusive")
	samples := flag.Int("samples", 0, "Sample passes per frame")
	workers := flag.Int("workers", 0, "Parallel workers (0 = CPU count)")
	seed := flag.Uint64("seed", 0, "Base random seed (0 = non-deterministic)")
	out := flag.String("out", "", "Output directory or bucket URL (file://, mem://)")
	format := flag.String("format", "", "Frame format: png, bmp or tiff")
	gifKey := flag.String("gif", "", "Also write an animated GIF under this key")
	list := flag.Bool("list", false, "List available scenes and exit")
	debug := flag.Bool("debug", false, "Enable debug logging")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Bounce Path Tracer")
		fmt.Println("Usage: pathtracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Frames are saved as Images/image_<frame>.png unless -out or the config say otherwise.")
		return
	}

	if *list {
		scenes, err := scene.ListScenes(scenesDir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error listing scenes: %v\n", err)
			os.Exit(1)
		}
		for _, s := range scenes {
			fmt.Printf("  %-16s %-8s %s\n", s.ID, s.Type, s.Description)
		}
		return
	}

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			logger.Error("loading config", "err", err)
			os.Exit(1)
		}
	}

	// Flags given on the command line win over the config file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "scene":
			cfg.Scene = *sceneName
		case "frames":
			cfg.Animation.Frames = *frames
		case "samples":
			cfg.Samples = *samples
		case "workers":
			cfg.Workers = *workers
		case "seed":
			cfg.Seed = *seed
		case "out":
			cfg.Output.URL = *out
		case "format":
			cfg.Output.Format = *format
		case "gif":
			cfg.Output.GIF = *gifKey
		}
	})
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "err", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("render failed", "err", err)
		stop()
		os.Exit(1)
	}
}

// run renders every frame of the configured scene into the output sink and
// finishes with the optional GIF and the run manifest.
func run(ctx context.Context, cfg config.Config, logger *slog.Logger) (err error) {
	runID := uuid.NewString()
	logger = logger.With("run", runID)

	sc, err := createScene(cfg.Scene, cfg.Animation.Step)
	if err != nil {
		return err
	}

	sink, err := output.OpenSink(ctx, cfg.Output.URL, cfg.Output.Pattern, cfg.Output.Format)
	if err != nil {
		return err
	}
	defer closeOutput(sink, logger, &err)

	logger.Info("starting render",
		"scene", cfg.Scene,
		"size", fmt.Sprintf("%dx%d", cfg.Width, cfg.Height),
		"samples", cfg.Samples,
		"frames", cfg.Animation.Frames+1,
		"output", cfg.Output.URL)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	fr := renderer.NewFrameRenderer(cfg.Renderer(), logger)
	results, errs := renderer.NewSequenceRenderer(fr, sc, cfg.Animation.Frames).Render(ctx)

	var anim *output.GIFWriter
	if cfg.Output.GIF != "" {
		anim = output.NewGIFWriter(gifDelay)
	}
	manifest := &output.Manifest{
		Run:     runID,
		Started: time.Now().UTC(),
		Scene:   cfg.Scene,
		Config:  cfg,
		GIF:     cfg.Output.GIF,
	}

	start := time.Now()
	for result := range results {
		key, err := sink.WriteFrame(ctx, result.Index, result.Image)
		if err != nil {
			// Stop the renderer and let it close its channels
			cancel()
			for range results {
			}
			return err
		}
		logger.Info("frame saved",
			"frame", result.Index,
			"key", key,
			"duration", result.Stats.Duration,
			"luminance", fmt.Sprintf("%.3f", renderer.CalculateAverageLuminance(result.Image)))

		manifest.Frames = append(manifest.Frames, output.FrameEntry{
			Index:    result.Index,
			Key:      key,
			Duration: result.Stats.Duration,
			Passes:   result.Stats.Passes,
		})
		if anim != nil {
			anim.Add(result.Image)
		}
	}
	if err := <-errs; err != nil {
		return errors.Wrap(err, "rendering")
	}

	if anim != nil {
		data, err := anim.Bytes()
		if err != nil {
			return err
		}
		if err := sink.WriteObject(ctx, cfg.Output.GIF, "image/gif", data); err != nil {
			return err
		}
		logger.Info("gif saved", "key", cfg.Output.GIF, "frames", anim.Len())
	}

	if err := sink.WriteManifest(ctx, manifest); err != nil {
		return err
	}
	logger.Info("render complete", "frames", len(manifest.Frames), "elapsed", time.Since(start))
	return nil
}

// closeOutput closes c and reports a failure through err unless the run
// already failed.
func closeOutput(c interface{ Close() error }, logger *slog.Logger, err *error) {
	cerr := c.Close()
	if cerr == nil {
		return
	}
	logger.Error("closing output", "error", cerr)
	if *err == nil {
		*err = errors.Wrap(cerr, "closing output")
	}
}

func validateScene(name string, s *scene.Scene) (*scene.Scene, error) {
	if err := s.Validate(); err != nil {
		return nil, errors.Wrapf(err, "scene %q", name)
	}
	return s, nil
}

// createScene resolves a scene name: built-in IDs first, then YAML files by
// path, then by name in the scenes directory.
func createScene(name string, step float64) (*scene.Scene, error) {
	if name == "" {
		return nil, errors.New("no scene selected")
	}
	if s, ok := scene.Builtin(name, step); ok {
		return validateScene(name, s)
	}

	ext := strings.ToLower(filepath.Ext(name))
	if ext == ".yaml" || ext == ".yml" {
		return loaders.LoadScene(name)
	}

	for _, candidate := range []string{name + ".yaml", name + ".yml"} {
		path := filepath.Join(scenesDir, candidate)
		if _, err := os.Stat(path); err == nil {
			return loaders.LoadScene(path)
		}
	}
	return nil, errors.Errorf("unknown scene %q", name)
}
