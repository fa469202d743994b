package job

import (
	"MoodMastery/internal/analytics"
	"MoodMastery/internal/pkg/logger"
	"MoodMastery/internal/service"
	"context"
	"errors"
	"strings"
	"testing"
)

type fakeNotification struct {
	service.NotificationService
	fired   int
	traceID string
	err     error
}

func (f *fakeNotification) FireReminder(ctx context.Context) error {
	f.fired++
	f.traceID = logger.TraceID(ctx)
	return f.err
}

type fakeJournal struct {
	service.JournalService
	rebuilds int
	err      error
}

func (f *fakeJournal) RebuildStreak(context.Context) (analytics.StreakState, error) {
	f.rebuilds++
	return analytics.StreakState{}, f.err
}

func TestReminderJobFires(t *testing.T) {
	svc := &fakeNotification{}
	NewReminderJob(svc).Run()
	if svc.fired != 1 {
		t.Fatalf("fired = %d, want 1", svc.fired)
	}
	if !strings.HasPrefix(svc.traceID, "job-") {
		t.Errorf("trace id = %q, want job- prefix", svc.traceID)
	}

	svc.err = errors.New("redis down")
	NewReminderJob(svc).Run()
	if svc.fired != 2 {
		t.Errorf("fired = %d after failure, want 2", svc.fired)
	}
}

func TestStreakRebuildJob(t *testing.T) {
	svc := &fakeJournal{}
	job := NewStreakRebuildJob(svc)
	job.Run()
	svc.err = errors.New("db down")
	job.Run()
	if svc.rebuilds != 2 {
		t.Errorf("rebuilds = %d, want 2", svc.rebuilds)
	}
}
