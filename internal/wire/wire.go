package wire

import (
	"MoodMastery/internal/api"
	"MoodMastery/internal/api/config"
	"MoodMastery/internal/api/handler"
	"MoodMastery/internal/job"
	"MoodMastery/internal/pkg/cron"
	"MoodMastery/internal/pkg/redis"
	"MoodMastery/internal/repository"
	"MoodMastery/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router          *gin.Engine
	DB              *gorm.DB
	CronMgr         *cron.Manager
	JournalSvc      service.JournalService
	NotificationSvc service.NotificationService
}

func BuildApplication(db *gorm.DB, cfg *config.Config) (*ApplicationContainer, error) {
	entryRepo := repository.NewEntryRepository(db)
	privacyRepo := repository.NewPrivacyRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	tagRepo := repository.NewTagRepository(db)

	// 启用 Redis 时多个实例共享连续天数
	var streakStore service.StreakStore
	if redis.Enabled() {
		streakStore = service.NewRedisStreakStore()
	}

	journalService := service.NewJournalService(entryRepo, tagRepo, streakStore)
	analyticsService := service.NewAnalyticsService(entryRepo, cfg.Journal)
	privacyService := service.NewPrivacyService(entryRepo, privacyRepo)
	notificationService := service.NewNotificationService(notificationRepo, cfg.Notification)

	handlers := &api.HandlersGroup{
		EntryHandler:        handler.NewEntryHandler(journalService, privacyService),
		AnalyticsHandler:    handler.NewAnalyticsHandler(analyticsService),
		NotificationHandler: handler.NewNotificationHandler(notificationService),
	}

	router := api.SetupRouter(cfg.Server, handlers)

	cronMgr := cron.NewCronManager(
		cfg.Journal.Location(),
		job.NewReminderJob(notificationService),
		job.NewStreakRebuildJob(journalService),
	)

	return &ApplicationContainer{
		Router:          router,
		DB:              db,
		CronMgr:         cronMgr,
		JournalSvc:      journalService,
		NotificationSvc: notificationService,
	}, nil
}
