package handler

import (
	"MoodMastery/internal/api/dto"
	"MoodMastery/internal/pkg/response"
	"MoodMastery/internal/service"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	notificationSvc service.NotificationService
}

func NewNotificationHandler(notificationSvc service.NotificationService) *NotificationHandler {
	return &NotificationHandler{
		notificationSvc: notificationSvc,
	}
}

func (s *NotificationHandler) GetSetting(c *gin.Context) {
	setting, err := s.notificationSvc.GetSetting(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, setting)
}

func (s *NotificationHandler) UpdateSetting(c *gin.Context) {
	var req dto.NotificationSettingDTO
	if !bindJSON(c, &req) {
		return
	}
	setting, err := s.notificationSvc.UpdateSetting(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, setting)
}

// LatestReminder 没有提醒时 data 为 null
func (s *NotificationHandler) LatestReminder(c *gin.Context) {
	reminder, err := s.notificationSvc.LatestReminder(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, reminder)
}
