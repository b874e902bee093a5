// Package dispatcher implements the parallel tile dispatcher: one
// dispatcher goroutine, N worker goroutines, one input channel, one output
// channel, and a condition variable coordinating start/stop/restart.
//
// This is the canonical design among the several coexisting dispatcher
// variants in the system this renderer is modeled on (a simple chunked
// thread pool, a rayon-based parallel iterator, and a step-driven
// incremental variant all existed side by side); it was chosen because it
// is the one that actually exposes progressive, cancellable rendering
// through a stable worker pool rather than spinning up a fresh pool per
// frame.
package dispatcher

import (
	"context"
	"math/rand"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/dkarpushkin/go-pathtracer/pkg/camera"
	"github.com/dkarpushkin/go-pathtracer/pkg/integrator"
	"github.com/dkarpushkin/go-pathtracer/pkg/vec3"
)

// PixelResult is one pixel's averaged color, or nil to mark a worker's
// end-of-stream for the current pass.
type PixelResult struct {
	X, Y  int
	Color vec3.Vec3
}

// Dispatcher owns a fixed pool of worker goroutines parked behind a
// sync.Cond; Render/RenderStep wake them, feed them chunked pixel-ray
// batches, and drain their results into a caller-owned buffer.
type Dispatcher struct {
	integrator *integrator.PathTracer
	numWorkers int

	inputCh  chan []camera.PixelRays
	outputCh chan *PixelResult

	mu      sync.Mutex
	cond    *sync.Cond
	running bool
	started bool // false => next RenderStep overwrites; true => accumulates

	group *errgroup.Group
}

// New creates a dispatcher with numWorkers parked worker goroutines. A
// numWorkers <= 0 defaults to 1.
func New(it *integrator.PathTracer, numWorkers int) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = 1
	}

	d := &Dispatcher{
		integrator: it,
		numWorkers: numWorkers,
		inputCh:    make(chan []camera.PixelRays, numWorkers*2),
		outputCh:   make(chan *PixelResult, numWorkers*2),
	}
	d.cond = sync.NewCond(&d.mu)

	group := &errgroup.Group{}
	d.group = group
	for i := 0; i < numWorkers; i++ {
		seed := int64(i + 1)
		group.Go(func() error { return d.workerLoop(seed) })
	}

	return d
}

// Reset clears the accumulate/overwrite state, so the next RenderStep call
// overwrites the buffer instead of accumulating into it. Call this when
// the camera or scene changes and a fresh progressive sequence begins.
func (d *Dispatcher) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.started = false
}

// Close stops every worker goroutine and waits for them to exit.
func (d *Dispatcher) Close() error {
	d.mu.Lock()
	close(d.inputCh)
	d.running = true // wake any parked worker so it observes the close
	d.cond.Broadcast()
	d.mu.Unlock()

	return d.group.Wait()
}

// Render performs one full-quality, one-shot render into buffer, always
// overwriting existing pixel values.
func (d *Dispatcher) Render(ctx context.Context, cam camera.Camera, width, height, samplesPerPixel int, buffer []vec3.Vec3) error {
	return d.dispatch(ctx, cam, width, height, samplesPerPixel, buffer, false)
}

// RenderStep performs one progressive pass: the first call after Reset (or
// after construction) overwrites buffer; subsequent calls accumulate into
// it. Each pass adds a per-pixel average, so the caller divides by the
// number of passes (not samples) to display it.
func (d *Dispatcher) RenderStep(ctx context.Context, cam camera.Camera, width, height, samplesPerPixel int, buffer []vec3.Vec3) error {
	return d.dispatch(ctx, cam, width, height, samplesPerPixel, buffer, true)
}

func (d *Dispatcher) dispatch(ctx context.Context, cam camera.Camera, width, height, samplesPerPixel int, buffer []vec3.Vec3, progressive bool) error {
	chunkSize := (width * height) / (d.numWorkers * 8)
	if chunkSize < 1 {
		chunkSize = 1
	}

	d.mu.Lock()
	d.running = true
	d.cond.Broadcast()
	d.mu.Unlock()

	rc := camera.NewMultisamplerRayCaster(cam, width, height, samplesPerPixel)
	random := rand.New(rand.NewSource(int64(width)*31 + int64(height)))

	go d.runProducer(ctx, rc, random, width, height, chunkSize)

	d.mu.Lock()
	accumulate := progressive && d.started
	d.mu.Unlock()

	finished := 0
	for finished < d.numWorkers {
		result, ok := <-d.outputCh
		if !ok {
			break
		}
		if result == nil {
			finished++
			continue
		}
		idx := result.Y*width + result.X
		if accumulate {
			buffer[idx] = buffer[idx].Add(result.Color)
		} else {
			buffer[idx] = result.Color
		}
	}

	d.mu.Lock()
	d.running = false
	if progressive {
		d.started = true
	}
	d.mu.Unlock()

	return ctx.Err()
}

func (d *Dispatcher) runProducer(ctx context.Context, rc *camera.MultisamplerRayCaster, random *rand.Rand, width, height, chunkSize int) {
	chunk := make([]camera.PixelRays, 0, chunkSize)

	flush := func() {
		if len(chunk) == 0 {
			return
		}
		d.inputCh <- chunk
		chunk = make([]camera.PixelRays, 0, chunkSize)
	}

loop:
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if ctx.Err() != nil {
				break loop
			}
			chunk = append(chunk, rc.Sample(x, y, random))
			if len(chunk) == chunkSize {
				flush()
			}
		}
	}
	flush()

	for i := 0; i < d.numWorkers; i++ {
		d.inputCh <- nil
	}
}

func (d *Dispatcher) workerLoop(seed int64) error {
	random := rand.New(rand.NewSource(seed))

	for {
		d.mu.Lock()
		for !d.running {
			d.cond.Wait()
		}
		d.mu.Unlock()

		chunk, ok := <-d.inputCh
		if !ok {
			return nil
		}
		if chunk == nil {
			d.outputCh <- nil
			continue
		}

		for _, batch := range chunk {
			color := vec3.Vec3{}
			for _, ray := range batch.Rays {
				color = color.Add(d.integrator.RayColor(ray, random))
			}
			if len(batch.Rays) > 0 {
				color = color.Multiply(1.0 / float64(len(batch.Rays)))
			}
			d.outputCh <- &PixelResult{X: batch.X, Y: batch.Y, Color: color}
		}
	}
}
