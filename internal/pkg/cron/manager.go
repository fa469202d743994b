package cron

import (
	"MoodMastery/internal/job"
	"fmt"
	log "log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// streakRebuildSpec 每天 00:05:00
const streakRebuildSpec = "0 5 0 * * *"

type Manager struct {
	engine           *cron.Cron
	reminderJob      *job.ReminderJob
	streakRebuildJob *job.StreakRebuildJob

	mu         sync.Mutex
	reminderID cron.EntryID
}

func NewCronManager(loc *time.Location, reminderJob *job.ReminderJob, streakRebuildJob *job.StreakRebuildJob) *Manager {
	if loc == nil {
		loc = time.Local
	}
	return &Manager{
		engine:           cron.New(cron.WithSeconds(), cron.WithLocation(loc)),
		reminderJob:      reminderJob,
		streakRebuildJob: streakRebuildJob,
	}
}

// RegisterJobs 注册固定的定时任务，提醒任务由 ScheduleReminder 按设置注册
func (s *Manager) RegisterJobs() error {
	if _, err := s.engine.AddJob(streakRebuildSpec, s.streakRebuildJob); err != nil {
		return err
	}
	return nil
}

// ScheduleReminder 替换每日提醒的执行时间，enabled 为 false 时仅移除
func (s *Manager) ScheduleReminder(enabled bool, hour, minute int) error {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return fmt.Errorf("invalid reminder time %02d:%02d", hour, minute)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.reminderID != 0 {
		s.engine.Remove(s.reminderID)
		s.reminderID = 0
	}
	if !enabled {
		log.Info("每日提醒已关闭")
		return nil
	}

	id, err := s.engine.AddJob(reminderSpec(hour, minute), s.reminderJob)
	if err != nil {
		return err
	}
	s.reminderID = id
	log.Info("每日提醒已排期", "hour", hour, "minute", minute)
	return nil
}

func reminderSpec(hour, minute int) string {
	return fmt.Sprintf("0 %d %d * * *", minute, hour)
}

// NextReminder 下一次提醒时间，未排期时返回零值
func (s *Manager) NextReminder() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.reminderID == 0 {
		return time.Time{}
	}
	return s.engine.Entry(s.reminderID).Next
}

func (s *Manager) Start() {
	log.Info("Cron 定时任务引擎启动")
	s.engine.Start()
}

func (s *Manager) Stop() {
	log.Info("Cron 定时任务引擎停止")
	<-s.engine.Stop().Done()
}
