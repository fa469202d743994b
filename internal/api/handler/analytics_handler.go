package handler

import (
	"MoodMastery/internal/api/dto"
	"MoodMastery/internal/pkg/response"
	"MoodMastery/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	analyticsSvc service.AnalyticsService
}

func NewAnalyticsHandler(analyticsSvc service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsSvc: analyticsSvc,
	}
}

func (s *AnalyticsHandler) WeeklyReport(c *gin.Context) {
	var query dto.ReportQueryDTO
	if !bindQuery(c, &query) {
		return
	}
	report, err := s.analyticsSvc.WeeklyReport(c.Request.Context(), query.Date)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, report)
}

func (s *AnalyticsHandler) MonthlyReport(c *gin.Context) {
	var query dto.ReportQueryDTO
	if !bindQuery(c, &query) {
		return
	}
	report, err := s.analyticsSvc.MonthlyReport(c.Request.Context(), query.Date)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, report)
}

func (s *AnalyticsHandler) EmojiGroups(c *gin.Context) {
	groups, err := s.analyticsSvc.EmojiGroups(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, groups)
}

func (s *AnalyticsHandler) EmojiGroup(c *gin.Context) {
	rank, err := strconv.Atoi(c.Param("rank"))
	if err != nil {
		response.Fail(c, response.BadRequest, "参数错误")
		return
	}
	group, err := s.analyticsSvc.EmojiGroup(c.Request.Context(), rank)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, group)
}

func (s *AnalyticsHandler) DayEntries(c *gin.Context) {
	entries, err := s.analyticsSvc.DayEntries(c.Request.Context(), c.Param("date"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, entries)
}

func (s *AnalyticsHandler) Calendar(c *gin.Context) {
	var query dto.CalendarQueryDTO
	if !bindQuery(c, &query) {
		return
	}
	calendar, err := s.analyticsSvc.MonthCalendar(c.Request.Context(), query.Year, query.Month)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, calendar)
}

func (s *AnalyticsHandler) CalendarDays(c *gin.Context) {
	var query dto.DateRangeDTO
	if !bindQuery(c, &query) {
		return
	}
	calendar, err := s.analyticsSvc.CalendarDays(c.Request.Context(), query.Start, query.End)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, calendar)
}

func (s *AnalyticsHandler) MoodGraph(c *gin.Context) {
	var query dto.MoodGraphQueryDTO
	if !bindQuery(c, &query) {
		return
	}
	graph, err := s.analyticsSvc.MoodGraph(c.Request.Context(), &query)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, graph)
}

func (s *AnalyticsHandler) Trends(c *gin.Context) {
	trends, err := s.analyticsSvc.Trends(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, trends)
}

func (s *AnalyticsHandler) Tags(c *gin.Context) {
	overview, err := s.analyticsSvc.Tags(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, overview)
}

func (s *AnalyticsHandler) EntriesWithTag(c *gin.Context) {
	entries, err := s.analyticsSvc.EntriesWithTag(c.Request.Context(), c.Param("tag"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, entries)
}
