package audit

import (
	"time"

	"gorm.io/gorm"
)

// EvaluationRecord is one row of the evaluation audit trail. User IDs are
// intentionally excluded; the trail exists to review scoring quality, not
// to track people.
type EvaluationRecord struct {
	gorm.Model
	SessionID    string     `gorm:"not null;index" json:"session_id"`
	QuestionID   string     `gorm:"not null" json:"question_id"`
	Provider     string     `gorm:"not null" json:"provider"`
	Score        int        `gorm:"not null" json:"score"`
	Strengths    string     `gorm:"type:text" json:"strengths"`    // JSON-encoded list
	Improvements string     `gorm:"type:text" json:"improvements"` // JSON-encoded list
	Suggestions  string     `gorm:"type:text" json:"suggestions"`
	EvaluatedAt  time.Time  `gorm:"not null" json:"evaluated_at"`
	Exported     bool       `gorm:"not null;default:false;index" json:"exported"`
	ExportedAt   *time.Time `json:"exported_at"`
}

// ExportEntry is the JSONL line format for one exported evaluation.
type ExportEntry struct {
	SessionID   string   `json:"session_id"`
	QuestionID  string   `json:"question_id"`
	Provider    string   `json:"provider"`
	Score       int      `json:"score"`
	Strengths   []string `json:"strengths"`
	Suggestions string   `json:"suggestions"`
	EvaluatedAt string   `json:"evaluated_at"`
}
