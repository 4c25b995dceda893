package report

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"log/slog"

	"github.com/hibiken/asynq"

	"github.com/easybank/easybank-backend/internal/transactions"
	"github.com/easybank/easybank-backend/jobs"
)

const statementPageSize = 50

// StatementJob renders statement PDFs in the background worker.
type StatementJob struct {
	transactions *transactions.Service
	client       *Client
	storageDir   string
	logger       *slog.Logger
}

// NewStatementJob constructs a StatementJob.
func NewStatementJob(txns *transactions.Service, client *Client, storageDir string, logger *slog.Logger) *StatementJob {
	return &StatementJob{transactions: txns, client: client, storageDir: storageDir, logger: logger}
}

// Handle processes one statement generation task.
func (j *StatementJob) Handle(ctx context.Context, t *asynq.Task) error {
	var payload jobs.StatementPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return asynq.SkipRetry
	}

	page, err := j.transactions.ListForUser(ctx, payload.UserID, 1, statementPageSize)
	if err != nil {
		return fmt.Errorf("report: load transactions: %w", err)
	}

	now := time.Now().UTC()
	html, err := StatementHTML(payload.Name, payload.Email, page, now)
	if err != nil {
		return err
	}

	pdf, err := j.client.RenderHTML(ctx, html)
	if err != nil {
		return fmt.Errorf("report: render pdf: %w", err)
	}

	if err := os.MkdirAll(j.storageDir, 0o755); err != nil {
		return fmt.Errorf("report: storage dir: %w", err)
	}
	path := filepath.Join(j.storageDir, fmt.Sprintf("statement-%d-%s.pdf", payload.UserID, now.Format("20060102-150405")))
	if err := os.WriteFile(path, pdf, 0o644); err != nil {
		return fmt.Errorf("report: write pdf: %w", err)
	}

	if j.logger != nil {
		j.logger.Info("statement generated",
			slog.Int64("user_id", payload.UserID),
			slog.String("path", path),
		)
	}
	return nil
}
