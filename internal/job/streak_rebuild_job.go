package job

import (
	"MoodMastery/internal/pkg/logger"
	"MoodMastery/internal/service"
	"context"
	log "log/slog"

	"github.com/google/uuid"
)

// StreakRebuildJob 每晚全量重建连续天数，同时让跨过零点后的状态与存储保持一致。
// 每个实例各自持有状态，因此不加分布式锁。
type StreakRebuildJob struct {
	journalSvc service.JournalService
}

func NewStreakRebuildJob(journalSvc service.JournalService) *StreakRebuildJob {
	return &StreakRebuildJob{
		journalSvc: journalSvc,
	}
}

func (s *StreakRebuildJob) Run() {
	traceID := "job-" + uuid.NewString()
	ctx := logger.WithTraceID(context.Background(), traceID)

	state, err := s.journalSvc.RebuildStreak(ctx)
	if err != nil {
		log.ErrorContext(ctx, "rebuild streak error", "err", err)
		return
	}

	last := ""
	if state.LastEntryDate != nil {
		last = state.LastEntryDate.String()
	}
	log.InfoContext(ctx, "rebuild streak success",
		"current", state.Current, "longest", state.Longest, "last_entry_date", last)
}
