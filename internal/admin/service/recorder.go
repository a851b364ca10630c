package service

import (
	"context"
	"time"

	"planadmin/internal/admin/model"
	"planadmin/internal/admin/repository"

	"go.uber.org/zap"
)

const recordTimeout = 5 * time.Second

// Recorder writes audit and project log entries asynchronously. Recording
// never blocks or fails the mutation that triggered it; write errors are
// logged and dropped.
type Recorder struct {
	logs   repository.LogRepository
	logger *zap.Logger
}

func NewRecorder(logs repository.LogRepository, logger *zap.Logger) *Recorder {
	return &Recorder{logs: logs, logger: logger}
}

func (r *Recorder) RecordAudit(entry *model.AuditLog) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
		defer cancel()
		if err := r.logs.InsertAuditLog(ctx, entry); err != nil {
			r.logger.Warn("audit log write failed",
				zap.String("module", entry.Module),
				zap.String("action", entry.Action),
				zap.String("target", entry.TargetObjectID),
				zap.Error(err))
		}
	}()
}

func (r *Recorder) RecordProjectLog(entry *model.ProjectLog) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
		defer cancel()
		if err := r.logs.InsertProjectLog(ctx, entry); err != nil {
			r.logger.Warn("project log write failed",
				zap.String("project_id", entry.ProjectID),
				zap.String("module", entry.Module),
				zap.String("action", entry.Action),
				zap.Error(err))
		}
	}()
}
