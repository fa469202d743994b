package job

import (
	"MoodMastery/internal/pkg/consts"
	"MoodMastery/internal/pkg/logger"
	"MoodMastery/internal/pkg/redis"
	"MoodMastery/internal/service"
	"context"
	log "log/slog"
	"time"

	"github.com/google/uuid"
)

// 锁不主动释放，同一分钟内其他实例直接跳过
const reminderLockTTL = 50 * time.Second

type ReminderJob struct {
	notificationSvc service.NotificationService
}

func NewReminderJob(notificationSvc service.NotificationService) *ReminderJob {
	return &ReminderJob{
		notificationSvc: notificationSvc,
	}
}

func (s *ReminderJob) Run() {
	traceID := "job-" + uuid.NewString()
	ctx := logger.WithTraceID(context.Background(), traceID)

	if redis.Enabled() {
		ok, err := redis.TryLock(ctx, consts.ReminderFireLock, traceID, reminderLockTTL, 1)
		if err != nil {
			log.ErrorContext(ctx, "acquire reminder lock error", "err", err)
			return
		}
		if !ok {
			log.InfoContext(ctx, "reminder already fired by another instance")
			return
		}
	}

	if err := s.notificationSvc.FireReminder(ctx); err != nil {
		log.ErrorContext(ctx, "fire reminder error", "err", err)
		return
	}
	log.InfoContext(ctx, "daily reminder fired", "message", consts.ReminderMessage)
}
