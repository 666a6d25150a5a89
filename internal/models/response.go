package models

// uniform error responses
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *ErrorResponse) Error() string {
	return e.Code + ": " + e.Message
}

// SessionResponse wraps a session together with the feedback produced by the
// most recent submission.
type SessionResponse struct {
	Session  *Session  `json:"session"`
	Feedback *Feedback `json:"feedback,omitempty"`
}

// SessionsResponse lists saved sessions.
type SessionsResponse struct {
	Total int       `json:"total"`
	Items []Session `json:"items"`
}

// QuestionsResponse lists catalog questions for one lookup.
type QuestionsResponse struct {
	Total int        `json:"total"`
	Items []Question `json:"items"`
}

// PlansResponse lists the static pricing catalog.
type PlansResponse struct {
	Items []PricingPlan `json:"items"`
}

// AnalyticsResponse aggregates usage across saved sessions.
type AnalyticsResponse struct {
	TotalInterviews      int                     `json:"total_interviews"`
	JobCategoryBreakdown map[JobCategory]int     `json:"job_category_breakdown"`
	AverageScores        map[JobCategory]float64 `json:"average_scores"`
	PopularQuestions     []PopularQuestion       `json:"popular_questions"`
}

type PopularQuestion struct {
	Question string `json:"question"`
	Count    int    `json:"count"`
}
