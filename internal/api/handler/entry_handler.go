package handler

import (
	"MoodMastery/internal/api/dto"
	"MoodMastery/internal/pkg/consts"
	"MoodMastery/internal/pkg/response"
	"MoodMastery/internal/service"
	"slices"

	"github.com/gin-gonic/gin"
)

type EntryHandler struct {
	journalSvc service.JournalService
	privacySvc service.PrivacyService
}

func NewEntryHandler(journalSvc service.JournalService, privacySvc service.PrivacyService) *EntryHandler {
	return &EntryHandler{
		journalSvc: journalSvc,
		privacySvc: privacySvc,
	}
}

func (s *EntryHandler) LogEntry(c *gin.Context) {
	var req dto.EntryDTO
	if !bindJSON(c, &req) {
		return
	}

	id, err := s.journalSvc.LogEntry(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{
		"id": id,
	})
}

// ListEntries 按日期倒序，私密记录不返回正文
func (s *EntryHandler) ListEntries(c *gin.Context) {
	entries, err := s.journalSvc.ListEntries(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	views := service.ToEntryViews(entries)
	slices.Reverse(views)
	response.Success(c, views)
}

func (s *EntryHandler) ClearEntries(c *gin.Context) {
	if err := s.journalSvc.ClearAll(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *EntryHandler) GetEntry(c *gin.Context) {
	id, ok := parseEntryID(c)
	if !ok {
		return
	}
	var query dto.ViewEntryDTO
	if !bindQuery(c, &query) {
		return
	}

	view, err := s.privacySvc.ViewEntry(c.Request.Context(), id, query.Password)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, view)
}

func (s *EntryHandler) EditEntry(c *gin.Context) {
	id, ok := parseEntryID(c)
	if !ok {
		return
	}
	var req dto.EntryDTO
	if !bindJSON(c, &req) {
		return
	}

	updated, err := s.journalSvc.EditEntry(c.Request.Context(), id, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	if !updated {
		response.NotFoundEntry(c)
		return
	}
	response.Success(c, nil)
}

func (s *EntryHandler) DeleteEntry(c *gin.Context) {
	id, ok := parseEntryID(c)
	if !ok {
		return
	}

	deleted, err := s.journalSvc.DeleteEntry(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	if !deleted {
		response.NotFoundEntry(c)
		return
	}
	response.Success(c, nil)
}

func (s *EntryHandler) SetExcluded(c *gin.Context) {
	id, ok := parseEntryID(c)
	if !ok {
		return
	}
	var req dto.ExcludeDTO
	if !bindJSON(c, &req) {
		return
	}

	updated, err := s.journalSvc.SetExcluded(c.Request.Context(), id, *req.Excluded)
	if err != nil {
		response.Error(c, err)
		return
	}
	if !updated {
		response.NotFoundEntry(c)
		return
	}
	response.Success(c, &dto.ExcludeStateDTO{ID: id, Excluded: *req.Excluded})
}

func (s *EntryHandler) GetExcluded(c *gin.Context) {
	id, ok := parseEntryID(c)
	if !ok {
		return
	}

	excluded, err := s.journalSvc.IsExcluded(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	if excluded == nil {
		response.NotFoundEntry(c)
		return
	}
	response.Success(c, &dto.ExcludeStateDTO{ID: id, Excluded: *excluded})
}

func (s *EntryHandler) MakePrivate(c *gin.Context) {
	id, ok := parseEntryID(c)
	if !ok {
		return
	}
	var req dto.PrivateDTO
	if !bindJSON(c, &req) {
		return
	}

	updated, err := s.privacySvc.MakePrivate(c.Request.Context(), id, req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}
	if !updated {
		response.NotFoundEntry(c)
		return
	}
	response.Success(c, nil)
}

func (s *EntryHandler) AddTag(c *gin.Context) {
	id, ok := parseEntryID(c)
	if !ok {
		return
	}
	var req dto.TagDTO
	if !bindJSON(c, &req) {
		return
	}
	s.tagResult(c, func() (bool, error) {
		return s.journalSvc.AddTag(c.Request.Context(), id, req.Tag)
	})
}

func (s *EntryHandler) RemoveTag(c *gin.Context) {
	id, ok := parseEntryID(c)
	if !ok {
		return
	}
	tag := c.Param("tag")
	s.tagResult(c, func() (bool, error) {
		return s.journalSvc.RemoveTag(c.Request.Context(), id, tag)
	})
}

func (s *EntryHandler) ClearTags(c *gin.Context) {
	id, ok := parseEntryID(c)
	if !ok {
		return
	}
	s.tagResult(c, func() (bool, error) {
		return s.journalSvc.ClearTags(c.Request.Context(), id)
	})
}

func (s *EntryHandler) tagResult(c *gin.Context, op func() (bool, error)) {
	updated, err := op()
	if err != nil {
		response.Error(c, err)
		return
	}
	if !updated {
		response.NotFoundEntry(c)
		return
	}
	response.Success(c, nil)
}

func (s *EntryHandler) ClearBiometric(c *gin.Context) {
	id, ok := parseEntryID(c)
	if !ok {
		return
	}

	updated, err := s.journalSvc.ClearBiometric(c.Request.Context(), id, c.Param("key"))
	if err != nil {
		response.Error(c, err)
		return
	}
	if !updated {
		response.NotFoundEntry(c)
		return
	}
	response.Success(c, nil)
}

// Biometrics 可记录的生理指标及取值
func (s *EntryHandler) Biometrics(c *gin.Context) {
	response.Success(c, consts.Biometrics)
}

func (s *EntryHandler) GetStreak(c *gin.Context) {
	streak, err := s.journalSvc.Streak(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, streak)
}
