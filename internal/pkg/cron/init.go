package cron

import (
	"MoodMastery/internal/service"
	"context"
	log "log/slog"
)

// InitCron 注册固定任务，按已保存的设置排期每日提醒，然后启动引擎
func InitCron(ctx context.Context, mgr *Manager, notificationSvc service.NotificationService) error {
	log.Info("Cron Jobs starting...")
	if err := mgr.RegisterJobs(); err != nil {
		return err
	}
	if err := notificationSvc.Init(ctx, mgr); err != nil {
		return err
	}
	mgr.Start()
	return nil
}
