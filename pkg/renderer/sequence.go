package renderer

import (
	"context"
	"image"

	"github.com/df07/go-bounce-pathtracer/pkg/scene"
)

// FrameResult is one finished frame of a sequence
type FrameResult struct {
	Index  int
	Frame  *Frame      // Linear accumulated radiance
	Image  *image.RGBA // Tone-mapped frame
	Stats  RenderStats
	IsLast bool
}

// SequenceRenderer renders an animated scene frame by frame, stepping the
// scene's animations between frames.
type SequenceRenderer struct {
	renderer *FrameRenderer
	scene    *scene.Scene
	frames   int // Last frame index, inclusive
}

// NewSequenceRenderer creates a sequence of frames 0..lastFrame inclusive
func NewSequenceRenderer(renderer *FrameRenderer, sc *scene.Scene, lastFrame int) *SequenceRenderer {
	return &SequenceRenderer{
		renderer: renderer,
		scene:    sc,
		frames:   lastFrame,
	}
}

// Render starts rendering in the background. Frames arrive in order on the
// first channel; the error channel carries at most one error. Both close
// when the sequence ends. Stop early by cancelling ctx.
func (sr *SequenceRenderer) Render(ctx context.Context) (<-chan FrameResult, <-chan error) {
	frameChan := make(chan FrameResult, 1)
	errChan := make(chan error, 1)
	logger := sr.renderer.logger

	go func() {
		defer close(frameChan)
		defer close(errChan)

		logger.Info("starting sequence", "frames", sr.frames+1, "shapes", sr.scene.GetPrimitiveCount())

		for index := 0; index <= sr.frames; index++ {
			select {
			case <-ctx.Done():
				logger.Info("sequence cancelled", "frame", index)
				errChan <- ctx.Err()
				return
			default:
			}

			frame, stats, err := sr.renderer.RenderFrame(ctx, sr.scene, index)
			if err != nil {
				errChan <- err
				return
			}

			result := FrameResult{
				Index:  index,
				Frame:  frame,
				Image:  ToImage(frame),
				Stats:  stats,
				IsLast: index == sr.frames,
			}
			logger.Info("frame complete", "frame", index, "duration", stats.Duration, "passes", stats.Passes)

			select {
			case frameChan <- result:
			case <-ctx.Done():
				errChan <- ctx.Err()
				return
			}

			// Animation only moves shapes once the frame's workers are done
			sr.scene.Step()
		}
	}()

	return frameChan, errChan
}
