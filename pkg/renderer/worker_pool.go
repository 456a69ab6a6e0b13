package renderer

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/df07/go-bounce-pathtracer/pkg/core"
)

// passWorker owns a private accumulation buffer and random stream, so
// workers never share mutable state while a frame is in flight.
type passWorker struct {
	ID      int
	frame   *Frame
	sampler core.Sampler
	done    int // Passes completed
}

// passPool distributes the sample passes of one frame over its workers
type passPool struct {
	workers []*passWorker
}

func newPassPool(numWorkers int, config Config, frameIndex int) *passPool {
	pool := &passPool{}
	for i := 0; i < numWorkers; i++ {
		stream := frameIndex*numWorkers + i
		pool.workers = append(pool.workers, &passWorker{
			ID:      i,
			frame:   NewFrame(config.Width, config.Height),
			sampler: core.NewRandomSampler(core.SeedStream(config.Seed, stream)),
		})
	}
	return pool
}

// run executes render once per pass and returns after every worker has
// finished. Cancellation is checked between passes.
func (p *passPool) run(ctx context.Context, passes int, render func(w *passWorker)) error {
	tasks := make(chan int, passes)
	for i := 0; i < passes; i++ {
		tasks <- i
	}
	close(tasks)

	g, ctx := errgroup.WithContext(ctx)
	for _, w := range p.workers {
		w := w
		g.Go(func() error {
			for range tasks {
				if err := ctx.Err(); err != nil {
					return err
				}
				render(w)
				w.done++
			}
			return nil
		})
	}
	return g.Wait()
}

// merge sums the private buffers in worker order
func (p *passPool) merge(width, height int) (*Frame, error) {
	out := NewFrame(width, height)
	for _, w := range p.workers {
		if err := out.Merge(w.frame); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (p *passPool) passes() int {
	total := 0
	for _, w := range p.workers {
		total += w.done
	}
	return total
}
