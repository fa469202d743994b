package model

import "time"

// PrivacySetting 日记级别的私密密码，只保存一行
type PrivacySetting struct {
	ID           uint64 `gorm:"primaryKey"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (PrivacySetting) TableName() string {
	return "privacy_settings"
}
