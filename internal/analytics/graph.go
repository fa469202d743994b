package analytics

import (
	"strings"

	"MoodMastery/internal/model"
)

type GraphMode string

const (
	GraphLine GraphMode = "line"
	GraphBar  GraphMode = "bar"
)

// ParseGraphMode 未知模式按折线图处理
func ParseGraphMode(s string) GraphMode {
	if GraphMode(strings.ToLower(strings.TrimSpace(s))) == GraphBar {
		return GraphBar
	}
	return GraphLine
}

// LinePoint 某天的平均评分，没有记录的日子为 0
type LinePoint struct {
	Date    Date    `json:"date"`
	Average float64 `json:"average"`
}

// MoodSeries 只填充与 Mode 对应的一项
type MoodSeries struct {
	Mode GraphMode
	Line []LinePoint
	Bar  RatingHistogram
}

// MoodLine 区间内每天一个点
func MoodLine(start, end Date, entries []*model.JournalEntry) []LinePoint {
	points := make([]LinePoint, 0)
	GroupByDay(start, end, entries).Each(func(day Date, list []*model.JournalEntry) {
		p := LinePoint{Date: day}
		if len(list) > 0 {
			sum := 0
			for _, e := range list {
				sum += e.MoodRating
			}
			p.Average = float64(sum) / float64(len(list))
		}
		points = append(points, p)
	})
	return points
}

// MoodBar 区间内所有记录的 1..100 评分分布
func MoodBar(start, end Date, entries []*model.JournalEntry) RatingHistogram {
	var hist RatingHistogram
	GroupByDay(start, end, entries).Each(func(_ Date, list []*model.JournalEntry) {
		for _, e := range list {
			hist.add(e.MoodRating)
		}
	})
	return hist
}

func MoodRatingSeries(mode GraphMode, start, end Date, entries []*model.JournalEntry) MoodSeries {
	if mode == GraphBar {
		return MoodSeries{Mode: GraphBar, Bar: MoodBar(start, end, entries)}
	}
	return MoodSeries{Mode: GraphLine, Line: MoodLine(start, end, entries)}
}
