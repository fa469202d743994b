package model

import "time"

type NotificationSetting struct {
	ID              uint64    `gorm:"primaryKey" json:"-"`
	Enabled         bool      `gorm:"type:tinyint(1);not null;default:0" json:"enabled"`
	ScheduledHour   int       `gorm:"not null;default:20" json:"scheduled_hour"`
	ScheduledMinute int       `gorm:"not null;default:0" json:"scheduled_minute"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (NotificationSetting) TableName() string {
	return "notification_settings"
}
