package service

import (
	"context"
	"errors"
	"testing"
)

func TestPrivacyFlow(t *testing.T) {
	repo := newMemEntryRepo()
	journal := NewJournalService(repo, &memTagRepo{entries: repo}, nil)
	privacy := NewPrivacyService(repo, &memPrivacyRepo{})
	ctx := context.Background()

	req := entryReq("2026-01-01", 1)
	req.Body = "secret thoughts"
	id := mustLog(t, journal, req)

	if _, err := privacy.MakePrivate(ctx, id, ""); !errors.Is(err, ErrPasswordRequired) {
		t.Fatalf("MakePrivate(no password) error = %v", err)
	}
	if ok, err := privacy.MakePrivate(ctx, 404, "pw"); err != nil || ok {
		t.Fatalf("MakePrivate(unknown) = %v, %v", ok, err)
	}
	if ok, err := privacy.MakePrivate(ctx, id, "pw"); err != nil || !ok {
		t.Fatalf("MakePrivate() = %v, %v", ok, err)
	}

	locked, err := privacy.ViewEntry(ctx, id, "")
	if err != nil {
		t.Fatalf("ViewEntry(no password) error = %v", err)
	}
	if !locked.Locked || locked.Body != "" || !locked.IsPrivate {
		t.Errorf("locked view = %+v", locked)
	}

	if _, err = privacy.ViewEntry(ctx, id, "nope"); !errors.Is(err, ErrPasswordIncorrect) {
		t.Errorf("ViewEntry(wrong password) error = %v", err)
	}

	view, err := privacy.ViewEntry(ctx, id, "pw")
	if err != nil || view.Body != "secret thoughts" || view.Locked {
		t.Errorf("ViewEntry(password) = %+v, %v", view, err)
	}

	// 密码设置后，其他记录必须使用同一个密码
	other := mustLog(t, journal, entryReq("2026-01-02", 1))
	if _, err = privacy.MakePrivate(ctx, other, "different"); !errors.Is(err, ErrPasswordIncorrect) {
		t.Errorf("MakePrivate(different password) error = %v", err)
	}
}

func TestViewEntryPublicAndMissing(t *testing.T) {
	repo := newMemEntryRepo()
	journal := NewJournalService(repo, &memTagRepo{entries: repo}, nil)
	privacy := NewPrivacyService(repo, &memPrivacyRepo{})
	ctx := context.Background()

	if _, err := privacy.ViewEntry(ctx, 1, ""); !errors.Is(err, ErrEntryNotFound) {
		t.Fatalf("ViewEntry(unknown) error = %v", err)
	}

	req := entryReq("2026-01-01", 5)
	req.Body = "hello"
	id := mustLog(t, journal, req)
	view, err := privacy.ViewEntry(ctx, id, "")
	if err != nil || view.Body != "hello" || view.Emoji == "" || view.EntryDate != "2026-01-01" {
		t.Errorf("ViewEntry() = %+v, %v", view, err)
	}
}
