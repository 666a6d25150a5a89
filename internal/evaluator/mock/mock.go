// Package mock is the default evaluator. It produces intentionally
// unpredictable scores for demonstration; nothing about the response text
// influences the result beyond its length. Tests that need stable output
// should construct it with a fixed seed.
package mock

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"prepmate/internal/evaluator"
	"prepmate/internal/models"
)

const (
	minScore = 6
	// scores land in [minScore, minScore+scoreRange-1], i.e. 6-9
	scoreRange = 4

	strongScoreThreshold     = 8
	conciseResponseThreshold = 100
)

var strengthPool = []string{
	"Clear communication",
	"Good structure",
	"Specific examples provided",
	"Demonstrated relevant experience",
}

var improvementPool = []string{
	"Could provide more specific metrics",
	"Consider using the STAR method",
	"Add more context about the outcome",
	"Be more concise",
}

type Evaluator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func New() *Evaluator {
	return NewWithSeed(time.Now().UnixNano())
}

func NewWithSeed(seed int64) *Evaluator {
	return &Evaluator{rng: rand.New(rand.NewSource(seed))}
}

func (e *Evaluator) Analyze(ctx context.Context, req evaluator.AnalysisRequest) (*models.Feedback, error) {
	if err := ctx.Err(); err != nil {
		return nil, &evaluator.ProviderError{
			Provider: e.GetProviderName(),
			Code:     evaluator.ErrCodeTimeout,
			Message:  "analysis cancelled",
			Err:      err,
		}
	}
	if req.ResponseText == "" {
		return nil, &evaluator.ProviderError{
			Provider: e.GetProviderName(),
			Code:     evaluator.ErrCodeInvalidInput,
			Message:  "response text is empty",
		}
	}

	e.mu.Lock()
	score := e.rng.Intn(scoreRange) + minScore
	strengths := strengthPool[:e.rng.Intn(3)+1]
	improvements := improvementPool[:e.rng.Intn(2)+1]
	e.mu.Unlock()

	quality := "good"
	if score >= strongScoreThreshold {
		quality = "strong"
	}
	advice := "Try to elaborate more with specific examples."
	if len(req.ResponseText) > conciseResponseThreshold {
		advice = "Consider being more concise while maintaining key details."
	}

	return &models.Feedback{
		QuestionID:   req.QuestionID,
		Score:        score,
		Strengths:    append([]string(nil), strengths...),
		Improvements: append([]string(nil), improvements...),
		Suggestions:  fmt.Sprintf("Your response demonstrates %s understanding. %s", quality, advice),
	}, nil
}

func (e *Evaluator) GetProviderName() string {
	return "mock"
}

func init() {
	evaluator.RegisterProvider("mock", func() (evaluator.Provider, error) {
		return New(), nil
	})
}
