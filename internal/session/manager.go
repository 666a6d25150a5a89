package session

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"prepmate/internal/evaluator"
	"prepmate/internal/metrics"
	"prepmate/internal/models"
)

// Validation rejections. These are returned before any side effect; the
// session is left untouched.
var (
	ErrEmptyResponse      = errors.New("response text is empty")
	ErrQuestionOutOfRange = errors.New("no question at the requested position")
	ErrNotNextQuestion    = errors.New("questions must be answered in order")
	ErrNoQuestions        = errors.New("no questions available for the requested category and difficulty")
	ErrSessionNotFound    = errors.New("session not found")
	ErrSessionCompleted   = errors.New("session is already completed")
	ErrEvaluationInFlight = errors.New("an evaluation for this session is already pending")
)

// Store is the persistence surface the manager needs.
type Store interface {
	SaveSession(ctx context.Context, session *models.Session) error
	SetCurrentSession(ctx context.Context, session *models.Session) error
	GetCurrentSession(ctx context.Context) (*models.Session, error)
	ClearCurrentSession(ctx context.Context) error
}

// QuestionSource supplies the fixed question list for a new session.
type QuestionSource interface {
	Questions(job models.JobCategory, difficulty models.Difficulty) []models.Question
	TailoredQuestions(ctx context.Context, resumeText string, job models.JobCategory, count int) ([]models.Question, error)
}

// AuditRecorder receives a copy of every successful evaluation.
// Recording is best-effort; failures are logged, never surfaced.
type AuditRecorder interface {
	RecordEvaluation(ctx context.Context, sessionID string, fb *models.Feedback) error
}

// Manager owns the interview session lifecycle: sequencing questions,
// recording responses, attaching feedback, and finalizing.
type Manager struct {
	store     Store
	questions QuestionSource
	provider  evaluator.Provider
	logger    *zap.Logger
	auditor   AuditRecorder

	// tracks sessions with a pending evaluation; at most one outstanding
	// feedback request per session at a time
	mu       sync.Mutex
	inFlight map[string]bool
}

func NewManager(store Store, questions QuestionSource, provider evaluator.Provider, logger *zap.Logger) *Manager {
	return &Manager{
		store:     store,
		questions: questions,
		provider:  provider,
		logger:    logger,
		inFlight:  make(map[string]bool),
	}
}

// SetAuditRecorder enables the evaluation audit trail.
func (m *Manager) SetAuditRecorder(a AuditRecorder) {
	m.auditor = a
}

// Create builds a new session and persists it as the current one. The
// question list is fixed here and never mutated afterwards. Nothing is
// persisted when creation fails; the caller retries or abandons.
func (m *Manager) Create(ctx context.Context, userID string, job models.JobCategory, difficulty models.Difficulty, resumeText string) (*models.Session, error) {
	var qs []models.Question
	if resumeText != "" {
		tailored, err := m.questions.TailoredQuestions(ctx, resumeText, job, 0)
		if err != nil {
			return nil, fmt.Errorf("failed to generate tailored questions: %w", err)
		}
		qs = tailored
	} else {
		qs = m.questions.Questions(job, difficulty)
	}

	if len(qs) == 0 {
		return nil, ErrNoQuestions
	}

	session := &models.Session{
		ID:          uuid.New().String(),
		UserID:      userID,
		JobCategory: job,
		Difficulty:  difficulty,
		ResumeText:  resumeText,
		State:       models.StateInProgress,
		Questions:   qs,
		Responses:   []models.Response{},
		Feedback:    []models.Feedback{},
		CreatedAt:   time.Now().UTC(),
	}

	if err := m.store.SetCurrentSession(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to persist new session: %w", err)
	}

	metrics.SessionsStarted.Inc()
	m.logger.Info("session created",
		zap.String("session_id", session.ID),
		zap.String("job_category", string(job)),
		zap.Int("questions", len(qs)))

	return session, nil
}

// SubmitResponse records one answer and its feedback. The appended
// (response, feedback) pair is atomic: if the evaluator fails, nothing is
// committed and the session is unchanged. Questions are answered in order;
// questionIndex must be the next unanswered position.
func (m *Manager) SubmitResponse(ctx context.Context, sessionID string, questionIndex int, responseText string) (*models.Session, *models.Feedback, error) {
	if strings.TrimSpace(responseText) == "" {
		return nil, nil, ErrEmptyResponse
	}

	session, err := m.loadCurrent(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}
	if session.Completed() {
		return nil, nil, ErrSessionCompleted
	}
	if questionIndex < 0 || questionIndex >= len(session.Questions) {
		return nil, nil, ErrQuestionOutOfRange
	}
	if questionIndex != session.NextQuestionIndex() {
		return nil, nil, ErrNotNextQuestion
	}

	if !m.acquire(sessionID) {
		return nil, nil, ErrEvaluationInFlight
	}
	defer m.release(sessionID)

	question := session.Questions[questionIndex]

	feedback, err := m.provider.Analyze(ctx, evaluator.AnalysisRequest{
		QuestionID:   question.ID,
		QuestionText: question.Question,
		ResponseText: responseText,
		JobCategory:  session.JobCategory,
		ResumeText:   session.ResumeText,
	})
	if err != nil {
		metrics.Evaluations.WithLabelValues(m.provider.GetProviderName(), "error").Inc()
		return nil, nil, fmt.Errorf("failed to analyze response: %w", err)
	}
	metrics.Evaluations.WithLabelValues(m.provider.GetProviderName(), "ok").Inc()

	// both lists grow together, keyed by question ID
	session.Responses = append(session.Responses, models.Response{
		QuestionID: question.ID,
		Response:   responseText,
		Timestamp:  time.Now().UTC(),
	})
	session.Feedback = append(session.Feedback, *feedback)

	if err := m.store.SetCurrentSession(ctx, session); err != nil {
		return nil, nil, fmt.Errorf("failed to persist session update: %w", err)
	}

	if m.auditor != nil {
		if err := m.auditor.RecordEvaluation(ctx, session.ID, feedback); err != nil {
			m.logger.Warn("failed to record evaluation audit entry",
				zap.Error(err), zap.String("session_id", session.ID))
		}
	}

	return session, feedback, nil
}

// Advance finalizes the session once every question has been answered.
// While unanswered questions remain it returns the session unchanged;
// the question cursor is a UI concern, not session state.
func (m *Manager) Advance(ctx context.Context, sessionID string) (*models.Session, error) {
	session, err := m.loadCurrent(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Completed() {
		return session, nil
	}
	if len(session.Responses) < len(session.Questions) {
		return session, nil
	}

	now := time.Now().UTC()
	score := aggregateScore(session.Feedback)
	session.State = models.StateCompleted
	session.CompletedAt = &now
	session.OverallScore = &score

	if err := m.store.SaveSession(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save completed session: %w", err)
	}
	if err := m.store.ClearCurrentSession(ctx); err != nil {
		return nil, fmt.Errorf("failed to clear current session: %w", err)
	}

	metrics.SessionsCompleted.Inc()
	m.logger.Info("session completed",
		zap.String("session_id", session.ID),
		zap.Float64("overall_score", score))

	return session, nil
}

func (m *Manager) loadCurrent(ctx context.Context, sessionID string) (*models.Session, error) {
	session, err := m.store.GetCurrentSession(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load current session: %w", err)
	}
	if session == nil || session.ID != sessionID {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

func (m *Manager) acquire(sessionID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.inFlight[sessionID] {
		return false
	}
	m.inFlight[sessionID] = true
	return true
}

func (m *Manager) release(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.inFlight, sessionID)
}

// aggregateScore is the arithmetic mean of all feedback scores, rounded to
// one decimal place. Defined as 0 when no feedback exists.
func aggregateScore(feedback []models.Feedback) float64 {
	if len(feedback) == 0 {
		return 0
	}
	sum := 0
	for _, f := range feedback {
		sum += f.Score
	}
	mean := float64(sum) / float64(len(feedback))
	return math.Round(mean*10) / 10
}
