// Package batcher provides a generic buffered batch processor with rate
// limited flushing.
package batcher

import (
	"context"
	"sync"
	"time"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

// Batcher buffers items and flushes them when the buffer fills or the flush
// interval elapses, whichever comes first. Flushes are rate limited.
type Batcher[T any] struct {
	flush         func(context.Context, []T) error
	items         chan T
	flushSize     int
	flushInterval time.Duration
	limiter       ratelimit.Limiter
	logger        *zap.Logger

	wg   sync.WaitGroup
	done chan struct{}
}

// New constructs a Batcher flushing through the given callback at most
// flushRPS times per second.
func New[T any](logger *zap.Logger, flush func(context.Context, []T) error, flushSize int, flushInterval time.Duration, flushRPS int) *Batcher[T] {
	return &Batcher[T]{
		logger:        logger,
		flush:         flush,
		items:         make(chan T, 2*flushSize),
		flushSize:     flushSize,
		flushInterval: flushInterval,
		limiter:       ratelimit.New(flushRPS),
		done:          make(chan struct{}),
	}
}

// Start begins the background flushing loop.
func (b *Batcher[T]) Start(ctx context.Context) {
	b.wg.Add(1)
	go b.run(ctx)
}

// Stop flushes any buffered items and stops the background loop.
func (b *Batcher[T]) Stop() {
	close(b.done)
	b.wg.Wait()
}

// Add queues an item for batching, respecting context cancellation.
func (b *Batcher[T]) Add(ctx context.Context, item T) error {
	select {
	case <-b.done:
		return context.Canceled
	default:
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case b.items <- item:
		return nil
	}
}

func (b *Batcher[T]) run(ctx context.Context) {
	defer b.wg.Done()

	ticker := time.NewTicker(b.flushInterval)
	defer ticker.Stop()

	buf := make([]T, 0, b.flushSize)

	flush := func() {
		if len(buf) == 0 {
			return
		}

		b.limiter.Take()
		if err := b.flush(ctx, buf); err != nil {
			b.logger.Error("batch not flushed", zap.Error(err))
		} else {
			b.logger.Debug("batch flushed", zap.Int("size", len(buf)))
		}
		buf = buf[:0]
	}

	for {
		select {
		case <-ctx.Done():
			flush()
			return

		case <-b.done:
			// Drain whatever is already queued before the final flush.
			for {
				select {
				case item := <-b.items:
					buf = append(buf, item)
					if len(buf) >= b.flushSize {
						flush()
					}
					continue
				default:
				}
				break
			}
			flush()
			return

		case item := <-b.items:
			buf = append(buf, item)
			if len(buf) >= b.flushSize {
				flush()
			}

		case <-ticker.C:
			flush()
		}
	}
}
