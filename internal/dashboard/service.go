package dashboard

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"prepmate/internal/models"
)

// seriesDays is the length of the date-bucketed series, ending today.
const seriesDays = 7

// Service generates the four chart-ready dashboard series. The data is
// synthetic: each fetch draws fresh values, so two fetches with the same
// filters differ. Filters narrow the categorical series; the date range is
// accepted but not applied to the generated window.
type Service struct {
	mu  sync.Mutex
	rng *rand.Rand
	now func() time.Time
}

func NewService() *Service {
	return &Service{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
		now: time.Now,
	}
}

// NewServiceWithSeed returns a service with a deterministic value stream
// and a fixed clock.
func NewServiceWithSeed(seed int64, now func() time.Time) *Service {
	return &Service{
		rng: rand.New(rand.NewSource(seed)),
		now: now,
	}
}

// FetchData builds a dashboard snapshot for the given filters.
func (s *Service) FetchData(ctx context.Context, filters models.DashboardFilters) (*models.DashboardData, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	today := s.now()

	volume := make([]models.TransactionVolumePoint, 0, seriesDays)
	for i := 0; i < seriesDays; i++ {
		day := today.AddDate(0, 0, -(seriesDays - 1 - i))
		volume = append(volume, models.TransactionVolumePoint{
			Date:   day.Format("Jan 2"),
			Volume: s.rng.Intn(5000) + 1000,
		})
	}

	cards := []models.CardTypeCount{
		{Type: "Credit Card", Count: s.rng.Intn(1000) + 500},
		{Type: "Debit Card", Count: s.rng.Intn(1000) + 500},
		{Type: "Prepaid Card", Count: s.rng.Intn(500) + 200},
	}
	cards = filterCounts(cards, cardTypeLabel(filters.CardType))

	alerts := make([]models.FraudAlertPoint, 0, seriesDays)
	for i := 0; i < seriesDays; i++ {
		day := today.AddDate(0, 0, -(seriesDays - 1 - i))
		alerts = append(alerts, models.FraudAlertPoint{
			Date:   day.Format("Jan 2"),
			Alerts: s.rng.Intn(20) + 1,
		})
	}

	txTypes := []models.TransactionTypeCount{
		{Type: "Purchase", Count: s.rng.Intn(2000) + 1000},
		{Type: "Withdrawal", Count: s.rng.Intn(1500) + 500},
		{Type: "Refund", Count: s.rng.Intn(500) + 100},
		{Type: "Transfer", Count: s.rng.Intn(1000) + 300},
	}
	txTypes = filterTx(txTypes, txTypeLabel(filters.TransactionType))

	return &models.DashboardData{
		TransactionVolume:    volume,
		CardTypeDistribution: cards,
		FraudAlerts:          alerts,
		TransactionTypes:     txTypes,
	}, nil
}

// cardTypeLabel maps a filter value to its display label. Returns "" for
// "all" or an unrecognized value, which leaves the series unchanged.
func cardTypeLabel(t models.CardType) string {
	switch t {
	case models.CardCredit:
		return "Credit Card"
	case models.CardDebit:
		return "Debit Card"
	case models.CardPrepaid:
		return "Prepaid Card"
	default:
		return ""
	}
}

func txTypeLabel(t models.TransactionType) string {
	switch t {
	case models.TxPurchase:
		return "Purchase"
	case models.TxWithdrawal:
		return "Withdrawal"
	case models.TxRefund:
		return "Refund"
	case models.TxTransfer:
		return "Transfer"
	default:
		return ""
	}
}

func filterCounts(items []models.CardTypeCount, label string) []models.CardTypeCount {
	if label == "" {
		return items
	}
	for _, item := range items {
		if item.Type == label {
			return []models.CardTypeCount{item}
		}
	}
	return items
}

func filterTx(items []models.TransactionTypeCount, label string) []models.TransactionTypeCount {
	if label == "" {
		return items
	}
	for _, item := range items {
		if item.Type == label {
			return []models.TransactionTypeCount{item}
		}
	}
	return items
}
