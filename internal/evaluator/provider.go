package evaluator

import (
	"context"

	"prepmate/internal/models"
)

// AnalysisRequest carries everything an evaluator needs to score one answer.
type AnalysisRequest struct {
	QuestionID   string
	QuestionText string
	ResponseText string
	JobCategory  models.JobCategory
	ResumeText   string
}

// Provider evaluates interview answers. Implementations may call out over
// the network, so Analyze is context-aware and must not be assumed to
// return quickly. Contract: on success the score is in [1,10] and the
// suggestion string is non-empty.
type Provider interface {
	Analyze(ctx context.Context, req AnalysisRequest) (*models.Feedback, error)
	GetProviderName() string
}

// represents an error from an evaluation provider
type ProviderError struct {
	Provider string
	Code     string
	Message  string
	Err      error
}

func (e *ProviderError) Error() string {
	if e.Err != nil {
		return e.Provider + " error: " + e.Message + " (" + e.Err.Error() + ")"
	}
	return e.Provider + " error: " + e.Message
}

func (e *ProviderError) Unwrap() error { return e.Err }

// Common error codes
const (
	ErrCodeAPIKey       = "invalid_api_key"
	ErrCodeRateLimit    = "rate_limit_exceeded"
	ErrCodeServiceDown  = "service_unavailable"
	ErrCodeInvalidInput = "invalid_input"
	ErrCodeTimeout      = "timeout"
)
