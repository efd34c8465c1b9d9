package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/shutterstudio/studio-api/internal/core/domain"
	"github.com/shutterstudio/studio-api/internal/core/ports"
)

// ActivityRecorder writes audit entries best-effort: a failed write is logged
// and swallowed, never failing the primary operation.
type ActivityRecorder interface {
	Record(ctx context.Context, entry domain.ActivityLog)
}

type activityRecorder struct {
	repo ports.ActivityLogRepository
	log  zerolog.Logger
}

// NewActivityRecorder returns an ActivityRecorder backed by the given repository.
func NewActivityRecorder(repo ports.ActivityLogRepository, log zerolog.Logger) ActivityRecorder {
	return &activityRecorder{repo: repo, log: log}
}

func (a *activityRecorder) Record(ctx context.Context, entry domain.ActivityLog) {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	if err := a.repo.Insert(ctx, &entry); err != nil {
		a.log.Warn().Err(err).
			Str("action", entry.Action).
			Str("entity_id", entry.EntityID).
			Msg("failed to write activity log")
	}
}
