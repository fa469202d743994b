package analytics

import (
	"time"

	"MoodMastery/internal/model"
)

var baseCreated = time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)

func entryOn(id uint64, y int, m time.Month, d int, ranking, rating int, tags ...string) *model.JournalEntry {
	e := &model.JournalEntry{
		ID:         id,
		Title:      "entry",
		Ranking:    ranking,
		MoodRating: rating,
		EntryDate:  time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
		CreatedAt:  baseCreated.Add(time.Duration(id) * time.Minute),
	}
	for _, t := range tags {
		e.Tags = append(e.Tags, model.Tag{Name: t})
	}
	return e
}

func d(y int, m time.Month, day int) Date {
	return DateOf(y, m, day)
}
