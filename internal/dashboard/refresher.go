package dashboard

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"prepmate/internal/metrics"
	"prepmate/internal/models"
)

// DefaultRefreshInterval matches the dashboard auto-refresh cadence.
const DefaultRefreshInterval = 5 * time.Minute

// Fetcher produces a dashboard snapshot for a set of filters.
type Fetcher interface {
	FetchData(ctx context.Context, filters models.DashboardFilters) (*models.DashboardData, error)
}

// Refresher keeps a dashboard snapshot warm. It refetches on a fixed
// interval and on demand; whichever fetch completes last owns the
// snapshot. Stop cancels the interval timer and waits for the loop to
// exit, so no timer outlives the refresher.
type Refresher struct {
	fetcher  Fetcher
	logger   *zap.Logger
	interval time.Duration

	mu      sync.Mutex
	filters models.DashboardFilters
	data    *models.DashboardData
	lastErr error

	stop     chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

func NewRefresher(fetcher Fetcher, interval time.Duration, logger *zap.Logger) *Refresher {
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}
	return &Refresher{
		fetcher:  fetcher,
		logger:   logger,
		interval: interval,
		filters: models.DashboardFilters{
			CardType:        models.CardAll,
			TransactionType: models.TxAll,
		},
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}
}

// Start performs an initial fetch and begins the refresh loop.
func (r *Refresher) Start(ctx context.Context) {
	r.refresh(ctx, "initial")

	go func() {
		defer close(r.done)
		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				r.refresh(ctx, "interval")
			case <-r.stop:
				return
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Refresh fetches immediately with the current filters.
func (r *Refresher) Refresh(ctx context.Context) (*models.DashboardData, error) {
	return r.refresh(ctx, "manual")
}

// SetFilters replaces the active filters and refetches.
func (r *Refresher) SetFilters(ctx context.Context, filters models.DashboardFilters) (*models.DashboardData, error) {
	r.mu.Lock()
	r.filters = filters
	r.mu.Unlock()
	return r.refresh(ctx, "filter_change")
}

// Snapshot returns the most recently applied data, or the error of the
// last failed fetch when no data has ever been applied.
func (r *Refresher) Snapshot() (*models.DashboardData, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.data == nil {
		return nil, r.lastErr
	}
	return r.data, nil
}

// Stop halts the refresh loop and blocks until it has exited. Safe to
// call more than once.
func (r *Refresher) Stop() {
	r.stopOnce.Do(func() { close(r.stop) })
	<-r.done
}

func (r *Refresher) refresh(ctx context.Context, trigger string) (*models.DashboardData, error) {
	r.mu.Lock()
	filters := r.filters
	r.mu.Unlock()

	data, err := r.fetcher.FetchData(ctx, filters)

	// snapshot ownership follows completion order: the fetch that
	// finishes last wins, regardless of start order
	r.mu.Lock()
	if err != nil {
		r.lastErr = err
	} else {
		r.data = data
		r.lastErr = nil
	}
	r.mu.Unlock()

	metrics.DashboardRefreshes.WithLabelValues(trigger).Inc()

	if err != nil {
		r.logger.Warn("dashboard refresh failed", zap.Error(err), zap.String("trigger", trigger))
		return nil, err
	}
	return data, nil
}
