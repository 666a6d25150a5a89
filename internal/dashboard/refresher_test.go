package dashboard

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"prepmate/internal/models"
)

type countingFetcher struct {
	mu      sync.Mutex
	calls   int
	filters []models.DashboardFilters
	err     error
}

func (f *countingFetcher) FetchData(_ context.Context, filters models.DashboardFilters) (*models.DashboardData, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.filters = append(f.filters, filters)
	if f.err != nil {
		return nil, f.err
	}
	return &models.DashboardData{
		TransactionVolume: []models.TransactionVolumePoint{{Date: "May 10", Volume: f.calls}},
	}, nil
}

func (f *countingFetcher) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func TestRefresher_InitialFetchOnStart(t *testing.T) {
	fetcher := &countingFetcher{}
	r := NewRefresher(fetcher, time.Hour, zap.NewNop())
	r.Start(context.Background())
	defer r.Stop()

	assert.Equal(t, 1, fetcher.callCount())

	data, err := r.Snapshot()
	assert.NoError(t, err)
	assert.NotNil(t, data)
}

func TestRefresher_IntervalFetches(t *testing.T) {
	fetcher := &countingFetcher{}
	r := NewRefresher(fetcher, 10*time.Millisecond, zap.NewNop())
	r.Start(context.Background())
	defer r.Stop()

	assert.Eventually(t, func() bool {
		return fetcher.callCount() >= 3
	}, 2*time.Second, 5*time.Millisecond)
}

func TestRefresher_ManualRefresh(t *testing.T) {
	fetcher := &countingFetcher{}
	r := NewRefresher(fetcher, time.Hour, zap.NewNop())
	r.Start(context.Background())
	defer r.Stop()

	data, err := r.Refresh(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 2, data.TransactionVolume[0].Volume)

	snap, err := r.Snapshot()
	assert.NoError(t, err)
	assert.Equal(t, data, snap)
}

func TestRefresher_SetFiltersRefetches(t *testing.T) {
	fetcher := &countingFetcher{}
	r := NewRefresher(fetcher, time.Hour, zap.NewNop())
	r.Start(context.Background())
	defer r.Stop()

	filters := models.DashboardFilters{
		CardType:        models.CardCredit,
		TransactionType: models.TxPurchase,
	}
	_, err := r.SetFilters(context.Background(), filters)
	assert.NoError(t, err)

	fetcher.mu.Lock()
	last := fetcher.filters[len(fetcher.filters)-1]
	fetcher.mu.Unlock()
	assert.Equal(t, models.CardCredit, last.CardType)
	assert.Equal(t, models.TxPurchase, last.TransactionType)
}

func TestRefresher_FetchErrorKeepsLastSnapshot(t *testing.T) {
	fetcher := &countingFetcher{}
	r := NewRefresher(fetcher, time.Hour, zap.NewNop())
	r.Start(context.Background())
	defer r.Stop()

	good, err := r.Snapshot()
	assert.NoError(t, err)

	fetcher.mu.Lock()
	fetcher.err = errors.New("upstream down")
	fetcher.mu.Unlock()

	_, err = r.Refresh(context.Background())
	assert.Error(t, err)

	// the stale snapshot survives a failed refresh
	snap, err := r.Snapshot()
	assert.NoError(t, err)
	assert.Equal(t, good, snap)
}

func TestRefresher_ErrorBeforeFirstSuccess(t *testing.T) {
	fetcher := &countingFetcher{err: errors.New("upstream down")}
	r := NewRefresher(fetcher, time.Hour, zap.NewNop())
	r.Start(context.Background())
	defer r.Stop()

	snap, err := r.Snapshot()
	assert.Nil(t, snap)
	assert.Error(t, err)
}

func TestRefresher_StopHaltsLoop(t *testing.T) {
	fetcher := &countingFetcher{}
	r := NewRefresher(fetcher, 5*time.Millisecond, zap.NewNop())
	r.Start(context.Background())

	time.Sleep(20 * time.Millisecond)
	r.Stop()
	after := fetcher.callCount()

	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, fetcher.callCount())

	// Stop is idempotent
	r.Stop()
}

func TestRefresher_DefaultInterval(t *testing.T) {
	r := NewRefresher(&countingFetcher{}, 0, zap.NewNop())
	assert.Equal(t, DefaultRefreshInterval, r.interval)
}
