package api

import "MoodMastery/internal/api/handler"

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	EntryHandler        *handler.EntryHandler
	AnalyticsHandler    *handler.AnalyticsHandler
	NotificationHandler *handler.NotificationHandler
}
