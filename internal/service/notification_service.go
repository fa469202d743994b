package service

import (
	"MoodMastery/internal/api/config"
	"MoodMastery/internal/api/dto"
	"MoodMastery/internal/model"
	"MoodMastery/internal/pkg/consts"
	"MoodMastery/internal/pkg/notify"
	"MoodMastery/internal/pkg/redis"
	"MoodMastery/internal/repository"
	"context"
	log "log/slog"
	"sync"
	"time"

	"github.com/goccy/go-json"
)

const reminderTTL = 48 * time.Hour

// ReminderScheduler 由 cron 管理器实现，设置变更后重新排期
type ReminderScheduler interface {
	ScheduleReminder(enabled bool, hour, minute int) error
}

type NotificationService interface {
	Init(ctx context.Context, scheduler ReminderScheduler) error
	GetSetting(ctx context.Context) (*model.NotificationSetting, error)
	UpdateSetting(ctx context.Context, settingDTO *dto.NotificationSettingDTO) (*model.NotificationSetting, error)
	FireReminder(ctx context.Context) error
	LatestReminder(ctx context.Context) (*dto.ReminderDTO, error)
}

type NotificationServiceImpl struct {
	notificationRepo repository.NotificationRepo
	defaults         config.NotificationConfig
	now              func() time.Time
	desktop          notify.Sender

	mu        sync.Mutex
	scheduler ReminderScheduler
	// 未启用 Redis 时保存在内存
	latest *dto.ReminderDTO
}

func NewNotificationService(notificationRepo repository.NotificationRepo, defaults config.NotificationConfig) NotificationService {
	s := &NotificationServiceImpl{
		notificationRepo: notificationRepo,
		defaults:         defaults,
		now:              time.Now,
	}
	if defaults.Desktop {
		s.desktop = notify.Desktop
	}
	return s
}

// Init 保存调度器并按当前设置排期
func (s *NotificationServiceImpl) Init(ctx context.Context, scheduler ReminderScheduler) error {
	s.mu.Lock()
	s.scheduler = scheduler
	s.mu.Unlock()

	setting, err := s.GetSetting(ctx)
	if err != nil {
		return err
	}
	return s.schedule(setting)
}

// GetSetting 未保存过设置时返回配置文件中的默认值
func (s *NotificationServiceImpl) GetSetting(ctx context.Context) (*model.NotificationSetting, error) {
	setting, err := s.notificationRepo.GetSetting(ctx)
	if err != nil {
		return nil, err
	}
	if setting != nil {
		return setting, nil
	}
	return &model.NotificationSetting{
		Enabled:         s.defaults.Enabled,
		ScheduledHour:   s.defaults.Hour,
		ScheduledMinute: s.defaults.Minute,
	}, nil
}

func (s *NotificationServiceImpl) UpdateSetting(ctx context.Context, settingDTO *dto.NotificationSettingDTO) (*model.NotificationSetting, error) {
	if settingDTO == nil || settingDTO.Enabled == nil || settingDTO.Hour == nil || settingDTO.Minute == nil {
		return nil, ErrParamInvalid
	}
	if *settingDTO.Hour < 0 || *settingDTO.Hour > 23 || *settingDTO.Minute < 0 || *settingDTO.Minute > 59 {
		return nil, ErrParamInvalid
	}

	setting, err := s.GetSetting(ctx)
	if err != nil {
		return nil, err
	}
	setting.Enabled = *settingDTO.Enabled
	setting.ScheduledHour = *settingDTO.Hour
	setting.ScheduledMinute = *settingDTO.Minute
	if err = s.notificationRepo.SaveSetting(ctx, setting); err != nil {
		return nil, err
	}

	if err = s.schedule(setting); err != nil {
		log.ErrorContext(ctx, "reschedule reminder failed", "err", err)
		return nil, UnExpectedError
	}
	log.InfoContext(ctx, "reminder setting updated",
		"enabled", setting.Enabled, "hour", setting.ScheduledHour, "minute", setting.ScheduledMinute)
	return setting, nil
}

func (s *NotificationServiceImpl) schedule(setting *model.NotificationSetting) error {
	s.mu.Lock()
	scheduler := s.scheduler
	s.mu.Unlock()
	if scheduler == nil {
		return nil
	}
	return scheduler.ScheduleReminder(setting.Enabled, setting.ScheduledHour, setting.ScheduledMinute)
}

// FireReminder 由定时任务触发，记录最近一次提醒
func (s *NotificationServiceImpl) FireReminder(ctx context.Context) error {
	reminder := &dto.ReminderDTO{
		Message: consts.ReminderMessage,
		FiredAt: s.now().Format(time.DateTime),
	}
	if s.desktop != nil {
		// 桌面通知失败不影响提醒记录
		if err := s.desktop(consts.ReminderTitle, reminder.Message); err != nil {
			log.WarnContext(ctx, "desktop notification failed", "err", err)
		}
	}

	if !redis.Enabled() {
		s.mu.Lock()
		s.latest = reminder
		s.mu.Unlock()
		return nil
	}

	data, err := json.Marshal(reminder)
	if err != nil {
		return err
	}
	return redis.SetWithExpiration(ctx, consts.ReminderLatestKey, data, reminderTTL)
}

// LatestReminder 没有提醒时返回 nil
func (s *NotificationServiceImpl) LatestReminder(ctx context.Context) (*dto.ReminderDTO, error) {
	if !redis.Enabled() {
		s.mu.Lock()
		defer s.mu.Unlock()
		return s.latest, nil
	}

	raw, err := redis.GetValue(ctx, consts.ReminderLatestKey)
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, nil
	}
	var reminder dto.ReminderDTO
	if err = json.Unmarshal([]byte(raw), &reminder); err != nil {
		return nil, err
	}
	return &reminder, nil
}
