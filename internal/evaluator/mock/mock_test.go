package mock

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"prepmate/internal/evaluator"
	"prepmate/internal/models"
)

func analysisRequest(response string) evaluator.AnalysisRequest {
	return evaluator.AnalysisRequest{
		QuestionID:   "gn-1",
		QuestionText: "Tell me about yourself.",
		ResponseText: response,
		JobCategory:  models.JobGeneral,
	}
}

func TestAnalyze_ScoreAlwaysInRange(t *testing.T) {
	e := NewWithSeed(42)

	for i := 0; i < 200; i++ {
		fb, err := e.Analyze(context.Background(), analysisRequest("I am a software engineer."))
		assert.NoError(t, err)
		assert.GreaterOrEqual(t, fb.Score, 1)
		assert.LessOrEqual(t, fb.Score, 10)
		assert.NotEmpty(t, fb.Suggestions)
	}
}

func TestAnalyze_NotePoolSizes(t *testing.T) {
	e := NewWithSeed(7)

	for i := 0; i < 100; i++ {
		fb, err := e.Analyze(context.Background(), analysisRequest("short answer"))
		assert.NoError(t, err)
		assert.GreaterOrEqual(t, len(fb.Strengths), 1)
		assert.LessOrEqual(t, len(fb.Strengths), 3)
		assert.GreaterOrEqual(t, len(fb.Improvements), 1)
		assert.LessOrEqual(t, len(fb.Improvements), 2)
	}
}

func TestAnalyze_SuggestionTracksResponseLength(t *testing.T) {
	e := NewWithSeed(1)

	short, err := e.Analyze(context.Background(), analysisRequest("brief"))
	assert.NoError(t, err)
	assert.Contains(t, short.Suggestions, "elaborate")

	long, err := e.Analyze(context.Background(), analysisRequest(strings.Repeat("detail ", 30)))
	assert.NoError(t, err)
	assert.Contains(t, long.Suggestions, "concise")
}

func TestAnalyze_DeterministicWithSeed(t *testing.T) {
	a := NewWithSeed(99)
	b := NewWithSeed(99)

	fa, err := a.Analyze(context.Background(), analysisRequest("same input"))
	assert.NoError(t, err)
	fb, err := b.Analyze(context.Background(), analysisRequest("same input"))
	assert.NoError(t, err)

	assert.Equal(t, fa, fb)
}

func TestAnalyze_EmptyResponseRejected(t *testing.T) {
	e := NewWithSeed(3)

	_, err := e.Analyze(context.Background(), analysisRequest(""))
	assert.Error(t, err)

	var provErr *evaluator.ProviderError
	assert.ErrorAs(t, err, &provErr)
	assert.Equal(t, evaluator.ErrCodeInvalidInput, provErr.Code)
}

func TestAnalyze_CancelledContext(t *testing.T) {
	e := NewWithSeed(5)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := e.Analyze(ctx, analysisRequest("answer"))
	assert.Error(t, err)
}

func TestRegistry_MockRegistered(t *testing.T) {
	p, err := evaluator.NewProvider("mock")
	assert.NoError(t, err)
	assert.Equal(t, "mock", p.GetProviderName())
}

func TestRegistry_UnknownProvider(t *testing.T) {
	_, err := evaluator.NewProvider("does-not-exist")
	assert.Error(t, err)
}
