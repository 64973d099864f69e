// Package measure computes aggregate measurements over many shapes at once,
// spreading the work over a bounded number of goroutines.
package measure

import (
	"context"
	"errors"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/zeusync/geometry/pkg/geometry"
	"github.com/zeusync/geometry/pkg/log"
)

// ErrEmpty is returned by reductions that have no identity for an empty input.
var ErrEmpty = errors.New("measure: no shapes given")

const defaultChunkSize = 256

// Measurer runs batch measurements. It holds no per-call state and is safe
// for concurrent use.
type Measurer struct {
	workers   int
	chunkSize int
	logger    log.Log
}

// Option configures a Measurer.
type Option func(*Measurer)

// WithWorkers sets the number of goroutines used per call. Values below 1 mean 1.
func WithWorkers(n int) Option {
	return func(m *Measurer) { m.workers = max(n, 1) }
}

// WithChunkSize sets how many shapes one goroutine handles at a time.
func WithChunkSize(n int) Option {
	return func(m *Measurer) { m.chunkSize = max(n, 1) }
}

// WithLogger sets the logger for batch diagnostics.
func WithLogger(l log.Log) Option {
	return func(m *Measurer) { m.logger = l }
}

// New returns a Measurer using half the CPUs by default, capped to [1, 8].
func New(opts ...Option) *Measurer {
	m := &Measurer{
		workers:   min(max(runtime.NumCPU()/2, 1), 8),
		chunkSize: defaultChunkSize,
		logger:    log.Provide(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// TotalArea sums the area of every shape.
func (m *Measurer) TotalArea(ctx context.Context, shapes []geometry.Shape2D) (float64, error) {
	return sum(ctx, m, "total area", shapes, geometry.Shape2D.Area)
}

// TotalPerimeter sums the perimeter of every shape.
func (m *Measurer) TotalPerimeter(ctx context.Context, shapes []geometry.Shape2D) (float64, error) {
	return sum(ctx, m, "total perimeter", shapes, geometry.Shape2D.Perimeter)
}

// TotalVolume sums the volume of every solid.
func (m *Measurer) TotalVolume(ctx context.Context, solids []geometry.Solid) (float64, error) {
	return sum(ctx, m, "total volume", solids, geometry.Solid.Volume)
}

// Classify reports, for each point, whether poly contains it. The result is
// in the order of points.
func (m *Measurer) Classify(ctx context.Context, poly geometry.Polygon, points []geometry.Point2) ([]bool, error) {
	out := make([]bool, len(points))
	err := m.forEachChunk(ctx, "classify", len(points), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			out[i] = poly.Contains(points[i])
		}
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Bounds returns the union of all rectangles.
func (m *Measurer) Bounds(rects ...geometry.Rectangle) (geometry.Rectangle, error) {
	if len(rects) == 0 {
		return geometry.Rectangle{}, ErrEmpty
	}
	out := rects[0]
	for _, r := range rects[1:] {
		out = geometry.Union(out, r)
	}
	return out, nil
}

// Largest returns the index of the shape with the greatest area. Ties keep
// the earliest shape.
func (m *Measurer) Largest(shapes []geometry.Shape2D) (int, error) {
	if len(shapes) == 0 {
		return -1, ErrEmpty
	}
	best, bestArea := 0, shapes[0].Area()
	for i, s := range shapes[1:] {
		if a := s.Area(); a > bestArea {
			best, bestArea = i+1, a
		}
	}
	return best, nil
}

// sum adds f over items chunk by chunk. Partial sums are combined in chunk
// order so the result does not depend on scheduling.
func sum[T any](ctx context.Context, m *Measurer, op string, items []T, f func(T) float64) (float64, error) {
	partial := make([]float64, m.chunks(len(items)))
	err := m.forEachChunk(ctx, op, len(items), func(lo, hi int) {
		var acc float64
		for _, item := range items[lo:hi] {
			acc += f(item)
		}
		partial[lo/m.chunkSize] = acc
	})
	if err != nil {
		return 0, err
	}
	var total float64
	for _, p := range partial {
		total += p
	}
	return total, nil
}

func (m *Measurer) chunks(n int) int {
	return (n + m.chunkSize - 1) / m.chunkSize
}

// forEachChunk calls fn for [lo, hi) ranges covering [0, n), at most
// m.workers at a time. It stops scheduling once ctx is done.
func (m *Measurer) forEachChunk(ctx context.Context, op string, n int, fn func(lo, hi int)) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	start := time.Now()
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(m.workers)

	for lo := 0; lo < n; lo += m.chunkSize {
		if gctx.Err() != nil {
			break
		}
		hi := min(lo+m.chunkSize, n)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			fn(lo, hi)
			return nil
		})
	}

	err := g.Wait()
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		m.logger.Warn("batch aborted", log.String("op", op), log.Int("items", n), log.Error(err))
		return err
	}
	m.logger.Debug("batch done",
		log.String("op", op),
		log.Int("items", n),
		log.Int("workers", m.workers),
		log.Duration("elapsed", time.Since(start)),
	)
	return nil
}
