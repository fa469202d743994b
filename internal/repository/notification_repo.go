package repository

import (
	"MoodMastery/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type NotificationRepo interface {
	GetSetting(ctx context.Context) (*model.NotificationSetting, error)
	SaveSetting(ctx context.Context, setting *model.NotificationSetting) error
}

type notificationRepoImpl struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepo {
	return &notificationRepoImpl{db: db}
}

// GetSetting 表中只有一行，不存在时返回 nil 由调用方套用默认值
func (s *notificationRepoImpl) GetSetting(ctx context.Context) (*model.NotificationSetting, error) {
	var setting model.NotificationSetting
	err := s.db.WithContext(ctx).Order("id ASC").First(&setting).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &setting, nil
}

func (s *notificationRepoImpl) SaveSetting(ctx context.Context, setting *model.NotificationSetting) error {
	return s.db.WithContext(ctx).Save(setting).Error
}
