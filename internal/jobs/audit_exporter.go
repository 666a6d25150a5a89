package jobs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"prepmate/internal/audit"
)

// ExporterConfig controls the scheduled audit export.
type ExporterConfig struct {
	Schedule  string // cron schedule, e.g. "0 2 * * *" for 2 AM daily
	ExportDir string
	Enabled   bool
}

// AuditExporterJob periodically dumps unexported evaluation records to
// JSONL files for offline review.
type AuditExporterJob struct {
	recorder *audit.Recorder
	config   *ExporterConfig
	logger   *zap.Logger
	cron     *cron.Cron
}

func NewAuditExporterJob(recorder *audit.Recorder, config *ExporterConfig, logger *zap.Logger) *AuditExporterJob {
	return &AuditExporterJob{
		recorder: recorder,
		config:   config,
		logger:   logger,
		cron:     cron.New(),
	}
}

// Start schedules the export job. A disabled exporter starts nothing.
func (j *AuditExporterJob) Start() error {
	if !j.config.Enabled {
		j.logger.Info("audit export disabled, skipping scheduler")
		return nil
	}

	_, err := j.cron.AddFunc(j.config.Schedule, func() {
		if err := j.RunExport(context.Background()); err != nil {
			j.logger.Error("audit export run failed", zap.Error(err))
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule audit export: %w", err)
	}

	j.cron.Start()
	j.logger.Info("audit exporter started", zap.String("schedule", j.config.Schedule))
	return nil
}

// Stop halts the scheduler.
func (j *AuditExporterJob) Stop() {
	if j.cron != nil {
		j.cron.Stop()
	}
}

// RunExport performs a single export run: collect unexported records,
// write a timestamped JSONL file, then flag the records.
func (j *AuditExporterJob) RunExport(ctx context.Context) error {
	records, err := j.recorder.GetUnexportedRecords(ctx, 0)
	if err != nil {
		return fmt.Errorf("failed to get unexported records: %w", err)
	}
	if len(records) == 0 {
		j.logger.Info("no unexported evaluation records")
		return nil
	}

	data, err := j.recorder.ExportToJSONL(records)
	if err != nil {
		return fmt.Errorf("failed to render export: %w", err)
	}

	if err := os.MkdirAll(j.config.ExportDir, 0755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}

	filename := fmt.Sprintf("evaluations_%s.jsonl", time.Now().Format("20060102_150405"))
	path := filepath.Join(j.config.ExportDir, filename)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}

	ids := make([]uint, len(records))
	for i, record := range records {
		ids[i] = record.ID
	}
	if err := j.recorder.MarkAsExported(ctx, ids); err != nil {
		return fmt.Errorf("failed to mark records as exported: %w", err)
	}

	j.logger.Info("audit export complete",
		zap.Int("records", len(records)),
		zap.String("file", path))
	return nil
}
