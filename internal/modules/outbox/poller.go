package outbox

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"gorm.io/gorm"
)

// Sender delivers one task payload. The poller treats any error as a failed
// attempt and retries up to the attempt cap.
type Sender interface {
	Send(ctx context.Context, payload json.RawMessage) error
}

type Poller struct {
	db          *gorm.DB
	sender      Sender
	logger      *slog.Logger
	tick        time.Duration
	batchSize   int
	maxAttempts int
}

func NewPoller(db *gorm.DB, sender Sender, logger *slog.Logger, tick time.Duration, batchSize, maxAttempts int) *Poller {
	if logger == nil {
		logger = slog.Default()
	}
	if tick <= 0 {
		tick = 5 * time.Second
	}
	if batchSize <= 0 {
		batchSize = 50
	}
	if maxAttempts <= 0 {
		maxAttempts = 5
	}
	return &Poller{db: db, sender: sender, logger: logger, tick: tick, batchSize: batchSize, maxAttempts: maxAttempts}
}

// Run polls until the context is cancelled. Delivery is at-least-once: a
// crash between Send and the processed mark re-sends on the next tick.
func (p *Poller) Run(ctx context.Context) {
	ticker := time.NewTicker(p.tick)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			p.ProcessBatch(ctx)
		case <-ctx.Done():
			return
		}
	}
}

// ProcessBatch claims and delivers one batch of pending tasks.
func (p *Poller) ProcessBatch(ctx context.Context) {
	var tasks []EmailTask
	err := p.db.WithContext(ctx).
		Where("processed_at IS NULL AND attempts < ?", p.maxAttempts).
		Order("created_at ASC").
		Limit(p.batchSize).
		Find(&tasks).Error
	if err != nil {
		p.logger.ErrorContext(ctx, "outbox fetch failed", "err", err)
		return
	}

	for _, task := range tasks {
		if err := p.sender.Send(ctx, json.RawMessage(task.Payload)); err != nil {
			p.markFailed(ctx, task, err)
			continue
		}
		p.markProcessed(ctx, task)
	}
}

func (p *Poller) markProcessed(ctx context.Context, task EmailTask) {
	now := time.Now()
	err := p.db.WithContext(ctx).Model(&EmailTask{}).
		Where("id = ?", task.ID).
		Updates(map[string]any{
			"attempts":     task.Attempts + 1,
			"processed_at": &now,
			"last_error":   nil,
			"updated_at":   now,
		}).Error
	if err != nil {
		p.logger.ErrorContext(ctx, "outbox mark processed failed", "task_id", task.ID, "err", err)
	}
}

func (p *Poller) markFailed(ctx context.Context, task EmailTask, sendErr error) {
	attempts := task.Attempts + 1
	msg := truncate(sendErr.Error(), 250)
	p.logger.WarnContext(ctx, "outbox delivery failed",
		"task_id", task.ID, "attempts", attempts, "max_attempts", p.maxAttempts, "err", sendErr)

	err := p.db.WithContext(ctx).Model(&EmailTask{}).
		Where("id = ?", task.ID).
		Updates(map[string]any{
			"attempts":   attempts,
			"last_error": msg,
			"updated_at": time.Now(),
		}).Error
	if err != nil {
		p.logger.ErrorContext(ctx, "outbox attempt update failed", "task_id", task.ID, "err", err)
	}
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	return s[:n]
}
