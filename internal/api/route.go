package api

import (
	"MoodMastery/internal/api/config"
	"MoodMastery/internal/api/middleware"
	"MoodMastery/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(cfg config.ServerConfig, group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware(cfg.AllowOrigins))
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"code":    200,
				"message": "pong",
				"data":    nil,
			})
		})

		entryGroup := apiGroup.Group("/entries")
		{
			entryGroup.POST("", group.EntryHandler.LogEntry)
			entryGroup.GET("", group.EntryHandler.ListEntries)
			entryGroup.DELETE("", group.EntryHandler.ClearEntries)

			entryGroup.GET("/:id", group.EntryHandler.GetEntry)
			entryGroup.PUT("/:id", group.EntryHandler.EditEntry)
			entryGroup.DELETE("/:id", group.EntryHandler.DeleteEntry)

			entryGroup.GET("/:id/exclude", group.EntryHandler.GetExcluded)
			entryGroup.PUT("/:id/exclude", group.EntryHandler.SetExcluded)
			entryGroup.POST("/:id/private", group.EntryHandler.MakePrivate)

			entryGroup.POST("/:id/tags", group.EntryHandler.AddTag)
			entryGroup.DELETE("/:id/tags", group.EntryHandler.ClearTags)
			entryGroup.DELETE("/:id/tags/:tag", group.EntryHandler.RemoveTag)
			entryGroup.DELETE("/:id/biometrics/:key", group.EntryHandler.ClearBiometric)
		}

		apiGroup.GET("/biometrics", group.EntryHandler.Biometrics)
		apiGroup.GET("/streak", group.EntryHandler.GetStreak)

		reportGroup := apiGroup.Group("/reports")
		{
			reportGroup.GET("/weekly", group.AnalyticsHandler.WeeklyReport)
			reportGroup.GET("/monthly", group.AnalyticsHandler.MonthlyReport)
			reportGroup.GET("/emoji-groups", group.AnalyticsHandler.EmojiGroups)
			reportGroup.GET("/emoji-groups/:rank", group.AnalyticsHandler.EmojiGroup)
		}

		calendarGroup := apiGroup.Group("/calendar")
		{
			calendarGroup.GET("", group.AnalyticsHandler.Calendar)
			calendarGroup.GET("/days", group.AnalyticsHandler.CalendarDays)
			calendarGroup.GET("/days/:date", group.AnalyticsHandler.DayEntries)
		}

		apiGroup.GET("/mood-graph", group.AnalyticsHandler.MoodGraph)
		apiGroup.GET("/trends", group.AnalyticsHandler.Trends)

		tagGroup := apiGroup.Group("/tags")
		{
			tagGroup.GET("", group.AnalyticsHandler.Tags)
			tagGroup.GET("/:tag/entries", group.AnalyticsHandler.EntriesWithTag)
		}

		notificationGroup := apiGroup.Group("/notifications")
		{
			notificationGroup.GET("/settings", group.NotificationHandler.GetSetting)
			notificationGroup.PUT("/settings", group.NotificationHandler.UpdateSetting)
			notificationGroup.GET("/latest", group.NotificationHandler.LatestReminder)
		}
	}

	return r
}
