package service

import (
	"MoodMastery/internal/api/dto"
	"MoodMastery/internal/model"
	"MoodMastery/internal/pkg/security"
	"MoodMastery/internal/repository"
	"context"
	log "log/slog"
)

type PrivacyService interface {
	MakePrivate(ctx context.Context, id uint64, password string) (bool, error)
	ViewEntry(ctx context.Context, id uint64, password string) (*dto.EntryViewDTO, error)
}

type PrivacyServiceImpl struct {
	entryRepo   repository.EntryRepo
	privacyRepo repository.PrivacyRepo
}

func NewPrivacyService(entryRepo repository.EntryRepo, privacyRepo repository.PrivacyRepo) PrivacyService {
	return &PrivacyServiceImpl{
		entryRepo:   entryRepo,
		privacyRepo: privacyRepo,
	}
}

// MakePrivate 第一次使用时设置日记密码，之后必须提供相同的密码
func (s *PrivacyServiceImpl) MakePrivate(ctx context.Context, id uint64, password string) (bool, error) {
	if password == "" {
		return false, ErrPasswordRequired
	}
	entry, err := s.entryRepo.GetEntry(ctx, id)
	if err != nil || entry == nil {
		return false, err
	}

	setting, err := s.privacyRepo.GetSetting(ctx)
	if err != nil {
		return false, err
	}
	if setting == nil {
		hash, err := security.HashPassword(password)
		if err != nil {
			return false, ErrParamInvalid
		}
		if err = s.privacyRepo.SaveSetting(ctx, &model.PrivacySetting{PasswordHash: hash}); err != nil {
			return false, err
		}
		log.InfoContext(ctx, "journal password set")
	} else if !security.VerifyPassword(password, setting.PasswordHash) {
		return false, ErrPasswordIncorrect
	}

	return s.entryRepo.SetPrivate(ctx, id, true)
}

// ViewEntry 私密记录在没有密码时隐藏正文，密码错误返回 ErrPasswordIncorrect
func (s *PrivacyServiceImpl) ViewEntry(ctx context.Context, id uint64, password string) (*dto.EntryViewDTO, error) {
	entry, err := s.entryRepo.GetEntry(ctx, id)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, ErrEntryNotFound
	}

	view := ToEntryView(entry)
	if !entry.IsPrivate {
		return view, nil
	}
	if password == "" {
		view.Body = ""
		view.Locked = true
		return view, nil
	}

	setting, err := s.privacyRepo.GetSetting(ctx)
	if err != nil {
		return nil, err
	}
	if setting == nil || !security.VerifyPassword(password, setting.PasswordHash) {
		return nil, ErrPasswordIncorrect
	}
	return view, nil
}
