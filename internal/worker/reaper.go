package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// MarketplaceFacade exposes the subset of application functionality required
// by the reaper.
type MarketplaceFacade interface {
	ReapStaleOrders(ctx context.Context, olderThan time.Time, limit int) (int64, error)
}

// Reaper periodically removes pending orders whose checkout was abandoned.
// Those rows are created before the payment provider is contacted, so a
// closed tab or a provider failure leaves them behind forever otherwise.
type Reaper struct {
	facade    MarketplaceFacade
	interval  time.Duration
	maxAge    time.Duration
	batchSize int
	logger    *slog.Logger

	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewReaper constructs the stale-order reaper.
func NewReaper(facade MarketplaceFacade, interval, maxAge time.Duration, batchSize int, logger *slog.Logger) *Reaper {
	if batchSize <= 0 {
		batchSize = 1
	}
	return &Reaper{
		facade:    facade,
		interval:  interval,
		maxAge:    maxAge,
		batchSize: batchSize,
		logger:    logger,
	}
}

// Start launches the background sweep loop.
func (r *Reaper) Start(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	r.cancel = cancel

	r.wg.Add(1)
	go r.run(runCtx)
}

// Stop cancels the loop and waits for an in-flight sweep to finish.
func (r *Reaper) Stop() {
	r.mu.Lock()
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
	r.mu.Unlock()

	r.wg.Wait()
}

func (r *Reaper) run(ctx context.Context) {
	defer r.wg.Done()
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.sweep(ctx)
		}
	}
}

func (r *Reaper) sweep(ctx context.Context) {
	cutoff := time.Now().Add(-r.maxAge)
	removed, err := r.facade.ReapStaleOrders(ctx, cutoff, r.batchSize)
	if err != nil {
		r.logger.Error("stale order sweep failed", slog.String("error", err.Error()))
		return
	}
	if removed > 0 {
		r.logger.Info("stale pending orders removed", slog.Int64("count", removed))
	}
}
