package notify

import (
	"MoodMastery/internal/pkg/consts"

	"github.com/gen2brain/beeep"
)

// Sender 发送一条桌面通知
type Sender func(title, message string) error

// Desktop 通过系统通知中心弹出提醒，服务部署在本机时使用
func Desktop(title, message string) error {
	beeep.AppName = consts.AppName
	return beeep.Notify(title, message, "")
}
