package models

import "time"

type JobCategory string

const (
	JobSoftwareEngineer JobCategory = "software-engineer"
	JobProductManager   JobCategory = "product-manager"
	JobDataScientist    JobCategory = "data-scientist"
	JobMarketing        JobCategory = "marketing"
	JobFinance          JobCategory = "finance"
	JobSales            JobCategory = "sales"
	JobCustomerService  JobCategory = "customer-service"
	JobGeneral          JobCategory = "general"
)

// ValidJobCategories contains all job categories in the catalog (in lowercase)
var ValidJobCategories = map[JobCategory]bool{
	JobSoftwareEngineer: true,
	JobProductManager:   true,
	JobDataScientist:    true,
	JobMarketing:        true,
	JobFinance:          true,
	JobSales:            true,
	JobCustomerService:  true,
	JobGeneral:          true,
}

func JobCategoryList() []JobCategory {
	return []JobCategory{
		JobSoftwareEngineer, JobProductManager, JobDataScientist, JobMarketing,
		JobFinance, JobSales, JobCustomerService, JobGeneral,
	}
}

type Difficulty string

const (
	DifficultyEntry  Difficulty = "entry"
	DifficultyMid    Difficulty = "mid"
	DifficultySenior Difficulty = "senior"
)

var ValidDifficulties = map[Difficulty]bool{
	DifficultyEntry:  true,
	DifficultyMid:    true,
	DifficultySenior: true,
}

// Question is a single interview prompt from the static catalog.
// Immutable once drawn from the catalog.
type Question struct {
	ID          string      `json:"id"`
	Question    string      `json:"question"`
	Category    string      `json:"category"` // behavioral, technical, strategy
	Difficulty  Difficulty  `json:"difficulty"`
	JobCategory JobCategory `json:"job_category"`
}

// Response records one submitted answer. Owned by its session.
type Response struct {
	QuestionID string    `json:"question_id"`
	Response   string    `json:"response"`
	Timestamp  time.Time `json:"timestamp"`
}

// Feedback is the scored evaluation attached to one submitted response.
type Feedback struct {
	QuestionID   string   `json:"question_id"`
	Score        int      `json:"score"` // 1-10 inclusive
	Strengths    []string `json:"strengths"`
	Improvements []string `json:"improvements"`
	Suggestions  string   `json:"suggestions"`
}

type SessionState string

const (
	StateInProgress SessionState = "in_progress"
	StateCompleted  SessionState = "completed"
)

// Session is one interview attempt. Questions are fixed at creation;
// responses and feedback are append-only and stay index-aligned
// (len(Responses) == len(Feedback) after every update).
type Session struct {
	ID           string       `json:"id"`
	UserID       string       `json:"user_id"`
	JobCategory  JobCategory  `json:"job_category"`
	Difficulty   Difficulty   `json:"difficulty"`
	ResumeText   string       `json:"resume_text,omitempty"`
	State        SessionState `json:"state"`
	Questions    []Question   `json:"questions"`
	Responses    []Response   `json:"responses"`
	Feedback     []Feedback   `json:"feedback"`
	OverallScore *float64     `json:"overall_score,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
	CompletedAt  *time.Time   `json:"completed_at,omitempty"`
}

// Completed reports whether the session has been finalized.
func (s *Session) Completed() bool {
	return s.CompletedAt != nil
}

// NextQuestionIndex is the position of the first unanswered question,
// or len(Questions) when all have been answered.
func (s *Session) NextQuestionIndex() int {
	return len(s.Responses)
}

// ResponseFor returns the response for a question ID, if one was submitted.
func (s *Session) ResponseFor(questionID string) (Response, bool) {
	for _, r := range s.Responses {
		if r.QuestionID == questionID {
			return r, true
		}
	}
	return Response{}, false
}

// FeedbackFor returns the feedback for a question ID, if one was recorded.
func (s *Session) FeedbackFor(questionID string) (Feedback, bool) {
	for _, f := range s.Feedback {
		if f.QuestionID == questionID {
			return f, true
		}
	}
	return Feedback{}, false
}

// TranscriptEntry pairs one question with its response and feedback,
// substituting placeholders when either is missing.
type TranscriptEntry struct {
	Question string   `json:"question"`
	Response string   `json:"response"`
	Feedback Feedback `json:"feedback"`
}

// Transcript is a read-only projection of a session, regenerated on demand.
type Transcript struct {
	SessionID    string            `json:"session_id"`
	JobCategory  JobCategory       `json:"job_category"`
	Questions    []TranscriptEntry `json:"questions"`
	OverallScore float64           `json:"overall_score"`
	Summary      string            `json:"summary"`
	GeneratedAt  time.Time         `json:"generated_at"`
}

type SubscriptionTier string

const (
	TierFree      SubscriptionTier = "free"
	TierPayPerUse SubscriptionTier = "pay-per-use"
	TierMonthly   SubscriptionTier = "monthly"
)

var ValidSubscriptionTiers = map[SubscriptionTier]bool{
	TierFree:      true,
	TierPayPerUse: true,
	TierMonthly:   true,
}

// UserProfile is persisted independently of the session pipeline.
type UserProfile struct {
	ID                  string           `json:"id"`
	Email               string           `json:"email"`
	Name                string           `json:"name,omitempty"`
	SubscriptionTier    SubscriptionTier `json:"subscription_tier"`
	InterviewsUsed      int              `json:"interviews_used"`
	InterviewsRemaining int              `json:"interviews_remaining"`
	CreatedAt           time.Time        `json:"created_at"`
}

// UnlimitedInterviews is the sentinel for plans without a usage cap.
const UnlimitedInterviews = -1

// PricingPlan is a static catalog entry, process-wide constant.
type PricingPlan struct {
	ID                 string           `json:"id"`
	Name               string           `json:"name"`
	Tier               SubscriptionTier `json:"tier"`
	Price              float64          `json:"price"`
	Features           []string         `json:"features"`
	InterviewsIncluded int              `json:"interviews_included"` // UnlimitedInterviews for no cap
}
