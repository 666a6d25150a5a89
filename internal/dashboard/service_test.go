package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"prepmate/internal/models"
)

func fixedClock() time.Time {
	return time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)
}

func allFilters() models.DashboardFilters {
	return models.DashboardFilters{
		CardType:        models.CardAll,
		TransactionType: models.TxAll,
	}
}

func TestFetchData_SeriesShape(t *testing.T) {
	s := NewServiceWithSeed(1, fixedClock)

	data, err := s.FetchData(context.Background(), allFilters())
	assert.NoError(t, err)

	assert.Len(t, data.TransactionVolume, 7)
	assert.Len(t, data.FraudAlerts, 7)
	assert.Len(t, data.CardTypeDistribution, 3)
	assert.Len(t, data.TransactionTypes, 4)
}

func TestFetchData_SevenDayWindowEndsToday(t *testing.T) {
	s := NewServiceWithSeed(1, fixedClock)

	data, err := s.FetchData(context.Background(), allFilters())
	assert.NoError(t, err)

	assert.Equal(t, "May 4", data.TransactionVolume[0].Date)
	assert.Equal(t, "May 10", data.TransactionVolume[6].Date)
	assert.Equal(t, "May 4", data.FraudAlerts[0].Date)
	assert.Equal(t, "May 10", data.FraudAlerts[6].Date)
}

func TestFetchData_ValueRanges(t *testing.T) {
	s := NewServiceWithSeed(42, fixedClock)

	data, err := s.FetchData(context.Background(), allFilters())
	assert.NoError(t, err)

	for _, p := range data.TransactionVolume {
		assert.GreaterOrEqual(t, p.Volume, 1000)
		assert.Less(t, p.Volume, 6000)
	}
	for _, p := range data.FraudAlerts {
		assert.GreaterOrEqual(t, p.Alerts, 1)
		assert.LessOrEqual(t, p.Alerts, 20)
	}
}

func TestFetchData_CardTypeFilterNarrows(t *testing.T) {
	s := NewServiceWithSeed(7, fixedClock)
	filters := allFilters()
	filters.CardType = models.CardDebit

	data, err := s.FetchData(context.Background(), filters)
	assert.NoError(t, err)

	assert.Len(t, data.CardTypeDistribution, 1)
	assert.Equal(t, "Debit Card", data.CardTypeDistribution[0].Type)
	// the other series are unaffected
	assert.Len(t, data.TransactionTypes, 4)
}

func TestFetchData_TransactionTypeFilterNarrows(t *testing.T) {
	s := NewServiceWithSeed(7, fixedClock)
	filters := allFilters()
	filters.TransactionType = models.TxRefund

	data, err := s.FetchData(context.Background(), filters)
	assert.NoError(t, err)

	assert.Len(t, data.TransactionTypes, 1)
	assert.Equal(t, "Refund", data.TransactionTypes[0].Type)
	assert.Len(t, data.CardTypeDistribution, 3)
}

func TestFetchData_UnknownFilterLeavesSeriesUnchanged(t *testing.T) {
	s := NewServiceWithSeed(7, fixedClock)
	filters := allFilters()
	filters.CardType = models.CardType("platinum")
	filters.TransactionType = models.TransactionType("chargeback")

	data, err := s.FetchData(context.Background(), filters)
	assert.NoError(t, err)

	assert.Len(t, data.CardTypeDistribution, 3)
	assert.Len(t, data.TransactionTypes, 4)
}

func TestFetchData_DateRangeAcceptedNotApplied(t *testing.T) {
	s := NewServiceWithSeed(7, fixedClock)
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
	filters := allFilters()
	filters.DateRange = models.DateRange{Start: &start, End: &end}

	data, err := s.FetchData(context.Background(), filters)
	assert.NoError(t, err)

	// the window is always the trailing seven days
	assert.Len(t, data.TransactionVolume, 7)
	assert.Equal(t, "May 10", data.TransactionVolume[6].Date)
}

func TestFetchData_FreshValuesPerFetch(t *testing.T) {
	s := NewServiceWithSeed(99, fixedClock)
	ctx := context.Background()

	first, err := s.FetchData(ctx, allFilters())
	assert.NoError(t, err)
	second, err := s.FetchData(ctx, allFilters())
	assert.NoError(t, err)

	assert.NotEqual(t, first.TransactionVolume, second.TransactionVolume)
}

func TestFetchData_CancelledContext(t *testing.T) {
	s := NewServiceWithSeed(1, fixedClock)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.FetchData(ctx, allFilters())
	assert.ErrorIs(t, err, context.Canceled)
}
