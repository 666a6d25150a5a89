package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"prepmate/internal/models"
)

// Recorder writes every successful evaluation to the audit database and
// serves the export job. It implements the session manager's audit hook.
type Recorder struct {
	db       *gorm.DB
	provider string
	logger   *zap.Logger
}

func NewRecorder(db *gorm.DB, provider string, logger *zap.Logger) *Recorder {
	return &Recorder{db: db, provider: provider, logger: logger}
}

// Migrate creates the audit schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&EvaluationRecord{})
}

// RecordEvaluation persists one evaluation outcome.
func (r *Recorder) RecordEvaluation(ctx context.Context, sessionID string, fb *models.Feedback) error {
	strengths, err := json.Marshal(fb.Strengths)
	if err != nil {
		return fmt.Errorf("failed to encode strengths: %w", err)
	}
	improvements, err := json.Marshal(fb.Improvements)
	if err != nil {
		return fmt.Errorf("failed to encode improvements: %w", err)
	}

	record := &EvaluationRecord{
		SessionID:    sessionID,
		QuestionID:   fb.QuestionID,
		Provider:     r.provider,
		Score:        fb.Score,
		Strengths:    string(strengths),
		Improvements: string(improvements),
		Suggestions:  fb.Suggestions,
		EvaluatedAt:  time.Now().UTC(),
		Exported:     false,
	}

	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("failed to store evaluation record: %w", err)
	}

	r.logger.Debug("evaluation recorded",
		zap.String("session_id", sessionID),
		zap.String("question_id", fb.QuestionID),
		zap.Int("score", fb.Score))

	return nil
}

// GetUnexportedRecords returns records not yet exported, oldest first.
// A limit of 0 means no limit.
func (r *Recorder) GetUnexportedRecords(ctx context.Context, limit int) ([]EvaluationRecord, error) {
	var records []EvaluationRecord

	query := r.db.WithContext(ctx).Where("exported = ?", false).Order("evaluated_at ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to get unexported records: %w", err)
	}
	return records, nil
}

// MarkAsExported flags the given records as exported.
func (r *Recorder) MarkAsExported(ctx context.Context, ids []uint) error {
	now := time.Now().UTC()
	result := r.db.WithContext(ctx).Model(&EvaluationRecord{}).
		Where("id IN ?", ids).
		Updates(map[string]interface{}{
			"exported":    true,
			"exported_at": now,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to mark records as exported: %w", result.Error)
	}
	return nil
}

// ExportToJSONL renders records as newline-delimited JSON.
func (r *Recorder) ExportToJSONL(records []EvaluationRecord) ([]byte, error) {
	var out []byte

	for i, record := range records {
		var strengths []string
		if err := json.Unmarshal([]byte(record.Strengths), &strengths); err != nil {
			strengths = nil
		}

		entry := ExportEntry{
			SessionID:   record.SessionID,
			QuestionID:  record.QuestionID,
			Provider:    record.Provider,
			Score:       record.Score,
			Strengths:   strengths,
			Suggestions: record.Suggestions,
			EvaluatedAt: record.EvaluatedAt.Format(time.RFC3339),
		}

		line, err := json.Marshal(entry)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal export entry: %w", err)
		}

		out = append(out, line...)
		if i < len(records)-1 {
			out = append(out, '\n')
		}
	}

	return out, nil
}

// Stats summarizes the audit trail.
func (r *Recorder) Stats(ctx context.Context) (map[string]interface{}, error) {
	stats := make(map[string]interface{})

	var total int64
	if err := r.db.WithContext(ctx).Model(&EvaluationRecord{}).Count(&total).Error; err != nil {
		return nil, err
	}
	stats["total_count"] = total

	var unexported int64
	if err := r.db.WithContext(ctx).Model(&EvaluationRecord{}).Where("exported = ?", false).Count(&unexported).Error; err != nil {
		return nil, err
	}
	stats["unexported_count"] = unexported

	return stats, nil
}
