package service

import (
	"MoodMastery/internal/analytics"
	"MoodMastery/internal/api/dto"
	"MoodMastery/internal/model"
	"MoodMastery/internal/pkg/consts"
	"time"

	"github.com/jinzhu/copier"
)

// ToEntryView 模型转详情，私密记录的正文由调用方决定是否隐藏
func ToEntryView(entry *model.JournalEntry) *dto.EntryViewDTO {
	view := &dto.EntryViewDTO{}
	_ = copier.Copy(view, entry)
	view.EntryDate = analytics.EntryDate(entry).String()
	view.Emoji = consts.RankingEmoji(entry.Ranking)
	view.Tags = entry.TagNames()
	if view.Biometrics == nil {
		view.Biometrics = map[string]string{}
	}
	view.CreatedAt = entry.CreatedAt.Format(time.DateTime)
	view.UpdatedAt = entry.UpdatedAt.Format(time.DateTime)
	return view
}

// ToEntryViews 列表默认隐藏私密记录正文
func ToEntryViews(entries []*model.JournalEntry) []*dto.EntryViewDTO {
	views := make([]*dto.EntryViewDTO, 0, len(entries))
	for _, e := range entries {
		view := ToEntryView(e)
		if e.IsPrivate {
			view.Body = ""
			view.Locked = true
		}
		views = append(views, view)
	}
	return views
}

func toEntrySummary(entry *model.JournalEntry) *dto.EntrySummaryDTO {
	return &dto.EntrySummaryDTO{
		ID:         entry.ID,
		Title:      entry.Title,
		EntryDate:  analytics.EntryDate(entry).String(),
		Ranking:    entry.Ranking,
		Emoji:      consts.RankingEmoji(entry.Ranking),
		MoodRating: entry.MoodRating,
	}
}

func toEntrySummaries(entries []*model.JournalEntry) []*dto.EntrySummaryDTO {
	items := make([]*dto.EntrySummaryDTO, 0, len(entries))
	for _, e := range entries {
		items = append(items, toEntrySummary(e))
	}
	return items
}

// toRatingCounts 1..100 每个评分一项，与情绪曲线柱状图一致
func toRatingCounts(hist analytics.RatingHistogram) []*dto.RatingCountDTO {
	items := make([]*dto.RatingCountDTO, 0, consts.MoodRatingMax)
	for rating := consts.MoodRatingMin; rating <= consts.MoodRatingMax; rating++ {
		items = append(items, &dto.RatingCountDTO{Rating: rating, Count: hist.Count(rating)})
	}
	return items
}
