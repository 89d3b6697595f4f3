package alert

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/subuhana2303/vaanirakshak/internal/models"
	"github.com/subuhana2303/vaanirakshak/internal/repository"
)

// Sink receives best-effort emergency notifications. Implementations must
// never panic or block the caller; a false return means the alert was
// dropped, and the caller carries on regardless.
type Sink interface {
	Emit(category models.Category, message string, loc models.Location) bool
}

// LogSink formats alerts, writes them to the structured log (standing in for
// an SMS gateway), and persists them for audit. Delivery runs on background
// workers; Emit only enqueues.
type LogSink struct {
	repo repository.AlertRepository
	pool *pool
}

// NewLogSink creates a sink backed by repo for audit. repo may be nil, in
// which case alerts are logged only.
func NewLogSink(repo repository.AlertRepository, workers, bufferSize int) *LogSink {
	s := &LogSink{repo: repo}
	s.pool = newPool(workers, bufferSize, s.deliver)
	return s
}

func (s *LogSink) Start(ctx context.Context) {
	s.pool.Start(ctx)
}

// Stop drains the queue and waits for in-flight deliveries.
func (s *LogSink) Stop() {
	s.pool.Stop()
}

func (s *LogSink) Emit(category models.Category, message string, loc models.Location) bool {
	rec := &models.AlertRecord{
		ID:        uuid.NewString(),
		Category:  category,
		Message:   message,
		Latitude:  loc.Latitude,
		Longitude: loc.Longitude,
		CreatedAt: time.Now(),
	}

	if !s.pool.TrySubmit(rec) {
		slog.Error("alert dropped, delivery queue full", "id", rec.ID, "category", category)
		return false
	}

	return true
}

func (s *LogSink) deliver(ctx context.Context, rec *models.AlertRecord) error {
	notice := fmt.Sprintf("[VaaniRakshak Alert] %s\nTime: %s\nLocation: Lat: %.4f, Lon: %.4f",
		rec.Message,
		rec.CreatedAt.Format("2006-01-02 15:04:05"),
		rec.Latitude,
		rec.Longitude,
	)

	// Mock SMS transport: the structured log is the delivery channel.
	slog.Info("mock SMS alert", "id", rec.ID, "category", rec.Category, "notice", notice)

	if s.repo != nil {
		if err := s.repo.Add(ctx, rec); err != nil {
			slog.Error("failed to persist alert", "id", rec.ID, "error", err)
			return err
		}
	}

	return nil
}
