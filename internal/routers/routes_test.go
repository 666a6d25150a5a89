package routers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"prepmate/internal/analytics"
	"prepmate/internal/dashboard"
	"prepmate/internal/evaluator/mock"
	"prepmate/internal/handlers"
	"prepmate/internal/models"
	"prepmate/internal/profile"
	"prepmate/internal/questions"
	"prepmate/internal/session"
	"prepmate/internal/store"
)

// setupRouter wires the full API against miniredis and the mock evaluator.
func setupRouter(t *testing.T) http.Handler {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	catalog, err := questions.NewCatalog()
	if err != nil {
		t.Fatalf("Failed to load catalog: %v", err)
	}

	logger := zap.NewNop()
	st := store.NewRedisStore(client)
	manager := session.NewManager(st, catalog, mock.NewWithSeed(1), logger)

	refresher := dashboard.NewRefresher(dashboard.NewServiceWithSeed(1, time.Now), time.Hour, logger)
	refresher.Start(context.Background())
	t.Cleanup(refresher.Stop)

	r := chi.NewRouter()
	Routes(r, &Handlers{
		Sessions:    handlers.NewSessionHandler(manager, st),
		Questions:   handlers.NewQuestionHandler(catalog),
		Transcripts: handlers.NewTranscriptHandler(st),
		Dashboard:   handlers.NewDashboardHandler(refresher),
		Profile:     handlers.NewProfileHandler(profile.NewService(st)),
		Analytics:   handlers.NewAnalyticsHandler(analytics.NewService(st)),
		Health:      handlers.NewHealthHandler(client),
	})
	return r
}

func doJSON(t *testing.T, router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, bytes.NewBufferString(body))
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestInterviewLifecycle(t *testing.T) {
	router := setupRouter(t)

	// create a session
	rec := doJSON(t, router, http.MethodPost, "/api/v1/sessions",
		`{"user_id":"u-1","job_category":"software-engineer"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var created models.SessionResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	sessionID := created.Session.ID
	assert.Len(t, created.Session.Questions, 5)

	// it is the current session
	rec = doJSON(t, router, http.MethodGet, "/api/v1/sessions/current", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	// answering out of order is rejected
	rec = doJSON(t, router, http.MethodPost, "/api/v1/sessions/"+sessionID+"/responses",
		`{"question_index":2,"response":"skipping ahead"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	// answer every question in order
	for i := 0; i < 5; i++ {
		body := fmt.Sprintf(`{"question_index":%d,"response":"answer %d with some detail"}`, i, i)
		rec = doJSON(t, router, http.MethodPost, "/api/v1/sessions/"+sessionID+"/responses", body)
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp models.SessionResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.GreaterOrEqual(t, resp.Feedback.Score, 6)
		assert.LessOrEqual(t, resp.Feedback.Score, 9)
		assert.Equal(t, len(resp.Session.Responses), len(resp.Session.Feedback))
	}

	// finalize
	rec = doJSON(t, router, http.MethodPost, "/api/v1/sessions/"+sessionID+"/advance", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	var completed models.SessionResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &completed))
	assert.Equal(t, models.StateCompleted, completed.Session.State)
	assert.NotNil(t, completed.Session.OverallScore)
	assert.NotNil(t, completed.Session.CompletedAt)

	// no current session remains
	rec = doJSON(t, router, http.MethodGet, "/api/v1/sessions/current", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// the catalog holds the completed session
	rec = doJSON(t, router, http.MethodGet, "/api/v1/sessions", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	var all models.SessionsResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &all))
	assert.Equal(t, 1, all.Total)

	// transcript in both formats
	rec = doJSON(t, router, http.MethodGet, "/api/v1/sessions/"+sessionID+"/transcript", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"session_id":"`+sessionID+`"`)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/sessions/"+sessionID+"/transcript/export", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "interview-transcript-"+sessionID+".txt")
	assert.Contains(t, rec.Body.String(), "INTERVIEW TRANSCRIPT")

	// analytics sees the completed interview
	rec = doJSON(t, router, http.MethodGet, "/api/v1/analytics", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	var usage models.AnalyticsResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &usage))
	assert.Equal(t, 1, usage.TotalInterviews)
	assert.Equal(t, 1, usage.JobCategoryBreakdown[models.JobSoftwareEngineer])
}

func TestQuestionRoutes(t *testing.T) {
	router := setupRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/questions?job_category=finance", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp models.QuestionsResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 5, resp.Total)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/questions?difficulty=expert", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/v1/questions/tailored",
		`{"resume_text":"Five years of Go and Kubernetes.","job_category":"software-engineer","count":3}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.Total)
}

func TestDashboardRoutes(t *testing.T) {
	router := setupRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/dashboard/data", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	var data models.DashboardData
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &data))
	assert.Len(t, data.TransactionVolume, 7)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/dashboard/data?card_type=credit", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &data))
	assert.Len(t, data.CardTypeDistribution, 1)

	rec = doJSON(t, router, http.MethodPost, "/api/v1/dashboard/refresh", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestProfileAndPlanRoutes(t *testing.T) {
	router := setupRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/profile?email=dev@example.com", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	var created models.UserProfile
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, models.TierFree, created.SubscriptionTier)

	rec = doJSON(t, router, http.MethodPost, "/api/v1/profile",
		`{"email":"dev@example.com","subscription_tier":"monthly"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	var updated models.UserProfile
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, models.TierMonthly, updated.SubscriptionTier)
	assert.Equal(t, models.UnlimitedInterviews, updated.InterviewsRemaining)

	rec = doJSON(t, router, http.MethodDelete, "/api/v1/profile", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/plans", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	var plans models.PlansResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &plans))
	assert.Len(t, plans.Items, 3)
}

func TestHealthRoutes(t *testing.T) {
	router := setupRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/readyz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}
