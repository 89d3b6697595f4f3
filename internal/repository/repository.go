package repository

import (
	"context"
	"time"

	"github.com/subuhana2303/vaanirakshak/internal/models"
)

// AlertRepository stores emitted alerts for audit.
type AlertRepository interface {
	Add(ctx context.Context, a *models.AlertRecord) error
	List(ctx context.Context, limit int) ([]models.AlertRecord, error)
	CountSince(ctx context.Context, since time.Time) (int, error)
}
