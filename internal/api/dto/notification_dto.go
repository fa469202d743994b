package dto

type NotificationSettingDTO struct {
	Enabled *bool `json:"enabled" validate:"required"`
	Hour    *int  `json:"hour" validate:"required,min=0,max=23"`
	Minute  *int  `json:"minute" validate:"required,min=0,max=59"`
}

// ReminderDTO 最近一次提醒，存放在 Redis 中
type ReminderDTO struct {
	Message string `json:"message"`
	FiredAt string `json:"fired_at"`
}
