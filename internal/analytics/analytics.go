package analytics

import (
	"context"
	"math"
	"sort"

	"prepmate/internal/models"
)

// topQuestionCount caps the popular-questions list.
const topQuestionCount = 5

// SessionSource supplies the saved-session catalog.
type SessionSource interface {
	GetAllSessions(ctx context.Context) ([]models.Session, error)
}

// Service computes aggregate usage from saved sessions. Everything is
// recomputed per call; the catalog is small enough that caching would
// only add staleness.
type Service struct {
	sessions SessionSource
}

func NewService(sessions SessionSource) *Service {
	return &Service{sessions: sessions}
}

// Aggregate builds the usage summary. Only completed sessions count
// toward totals and averages; answered questions are tallied across all
// saved sessions.
func (s *Service) Aggregate(ctx context.Context) (*models.AnalyticsResponse, error) {
	sessions, err := s.sessions.GetAllSessions(ctx)
	if err != nil {
		return nil, err
	}

	breakdown := make(map[models.JobCategory]int)
	scoreSums := make(map[models.JobCategory]float64)
	questionCounts := make(map[string]int)
	total := 0

	for _, session := range sessions {
		if session.State == models.StateCompleted {
			total++
			breakdown[session.JobCategory]++
			if session.OverallScore != nil {
				scoreSums[session.JobCategory] += *session.OverallScore
			}
		}

		for _, q := range session.Questions {
			if _, answered := session.ResponseFor(q.ID); answered {
				questionCounts[q.Question]++
			}
		}
	}

	averages := make(map[models.JobCategory]float64, len(breakdown))
	for category, count := range breakdown {
		mean := scoreSums[category] / float64(count)
		averages[category] = math.Round(mean*10) / 10
	}

	return &models.AnalyticsResponse{
		TotalInterviews:      total,
		JobCategoryBreakdown: breakdown,
		AverageScores:        averages,
		PopularQuestions:     topQuestions(questionCounts, topQuestionCount),
	}, nil
}

// topQuestions returns the n most-answered questions, most popular first.
// Ties break alphabetically so the ordering is stable.
func topQuestions(counts map[string]int, n int) []models.PopularQuestion {
	out := make([]models.PopularQuestion, 0, len(counts))
	for question, count := range counts {
		out = append(out, models.PopularQuestion{Question: question, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Question < out[j].Question
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}
