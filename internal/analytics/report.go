package analytics

import (
	"MoodMastery/internal/model"
	"MoodMastery/internal/pkg/consts"
)

// RankingHistogram 下标 0 对应 ranking 1
type RankingHistogram [consts.RankingMax]int

// Count 返回某个 ranking 的次数，越界返回 0
func (h RankingHistogram) Count(rank int) int {
	if rank < consts.RankingMin || rank > consts.RankingMax {
		return 0
	}
	return h[rank-1]
}

func (h RankingHistogram) Total() int {
	total := 0
	for _, c := range h {
		total += c
	}
	return total
}

// RatingHistogram 下标 0 对应 mood rating 1
type RatingHistogram [consts.MoodRatingMax]int

// Count 返回某个评分的次数，越界返回 0
func (h RatingHistogram) Count(rating int) int {
	if rating < consts.MoodRatingMin || rating > consts.MoodRatingMax {
		return 0
	}
	return h[rating-1]
}

func (h RatingHistogram) Total() int {
	total := 0
	for _, c := range h {
		total += c
	}
	return total
}

func (h *RatingHistogram) add(rating int) {
	if rating < consts.MoodRatingMin || rating > consts.MoodRatingMax {
		return
	}
	h[rating-1]++
}

// WindowedRankingHistogram 统计 anchor 往前 windowDays 天（含 anchor）的 ranking 分布。
// 排除 ExcludedFromReports 的记录；没有可统计的记录时返回 nil。
func WindowedRankingHistogram(anchor Date, windowDays int, entries []*model.JournalEntry) *RankingHistogram {
	if windowDays <= 0 {
		return nil
	}
	start := anchor.AddDays(-(windowDays - 1))

	var hist RankingHistogram
	counted := 0
	for _, e := range entries {
		if e.ExcludedFromReports || !inRange(EntryDate(e), start, anchor) {
			continue
		}
		if e.Ranking < consts.RankingMin || e.Ranking > consts.RankingMax {
			continue
		}
		hist[e.Ranking-1]++
		counted++
	}

	if counted == 0 {
		return nil
	}
	return &hist
}

// WeeklyReport 最近 7 天
func WeeklyReport(anchor Date, entries []*model.JournalEntry) *RankingHistogram {
	return WindowedRankingHistogram(anchor, consts.WeeklyReportDays, entries)
}

// MonthlyReport 最近 30 天
func MonthlyReport(anchor Date, entries []*model.JournalEntry) *RankingHistogram {
	return WindowedRankingHistogram(anchor, consts.MonthlyReportDays, entries)
}

// RankingGroup 某个 ranking（表情组）下的评分分布与记录 ID，不考虑排除标记
func RankingGroup(target int, entries []*model.JournalEntry) (RatingHistogram, []uint64) {
	var hist RatingHistogram
	ids := make([]uint64, 0)
	for _, e := range entries {
		if e.Ranking != target {
			continue
		}
		hist.add(e.MoodRating)
		ids = append(ids, e.ID)
	}
	return hist, ids
}
