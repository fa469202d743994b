package repository

import (
	"MoodMastery/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type PrivacyRepo interface {
	GetSetting(ctx context.Context) (*model.PrivacySetting, error)
	SaveSetting(ctx context.Context, setting *model.PrivacySetting) error
}

type privacyRepoImpl struct {
	db *gorm.DB
}

func NewPrivacyRepository(db *gorm.DB) PrivacyRepo {
	return &privacyRepoImpl{db: db}
}

// GetSetting 未设置过密码时返回 nil
func (s *privacyRepoImpl) GetSetting(ctx context.Context) (*model.PrivacySetting, error) {
	var setting model.PrivacySetting
	err := s.db.WithContext(ctx).Order("id ASC").First(&setting).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &setting, nil
}

func (s *privacyRepoImpl) SaveSetting(ctx context.Context, setting *model.PrivacySetting) error {
	return s.db.WithContext(ctx).Save(setting).Error
}
