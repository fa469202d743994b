package analytics

import (
	"testing"

	"MoodMastery/internal/model"
)

func TestMoodTrendsEmpty(t *testing.T) {
	tr := MoodTrends(nil)
	for _, p := range []TrendPoint{tr.HappiestDay, tr.HappiestThird, tr.HappiestMonth} {
		if p.Label != "" || p.Value != 0 {
			t.Errorf("happiest sentinel wrong: %+v", p)
		}
	}
	for _, p := range []TrendPoint{tr.SaddestDay, tr.SaddestThird, tr.SaddestMonth} {
		if p.Label != "" || p.Value != 999 {
			t.Errorf("saddest sentinel wrong: %+v", p)
		}
	}
}

func TestMoodTrendsSingleEntry(t *testing.T) {
	// 2026-01-15 周四
	tr := MoodTrends([]*model.JournalEntry{entryOn(1, 2026, 1, 15, 5, 73)})
	pairs := []struct {
		happy, sad TrendPoint
		label      string
	}{
		{tr.HappiestDay, tr.SaddestDay, "Thursday"},
		{tr.HappiestThird, tr.SaddestThird, "Second third"},
		{tr.HappiestMonth, tr.SaddestMonth, "January"},
	}
	for _, p := range pairs {
		if p.happy != p.sad {
			t.Errorf("happiest %+v != saddest %+v", p.happy, p.sad)
		}
		if p.happy.Label != p.label || p.happy.Value != 73 {
			t.Errorf("got %+v, want %s/73", p.happy, p.label)
		}
	}
}

func TestMoodTrendsAxes(t *testing.T) {
	entries := []*model.JournalEntry{
		entryOn(1, 2026, 1, 5, 5, 90),  // 周一，上旬，一月
		entryOn(2, 2026, 1, 5, 5, 70),  // 周一
		entryOn(3, 2026, 1, 20, 5, 20), // 周二，中旬
		entryOn(4, 2026, 2, 28, 5, 61), // 周六，下旬，二月
	}
	tr := MoodTrends(entries)

	if tr.HappiestDay.Label != "Monday" || tr.HappiestDay.Value != 80 {
		t.Errorf("happiest day = %+v", tr.HappiestDay)
	}
	if tr.SaddestDay.Label != "Tuesday" || tr.SaddestDay.Value != 20 {
		t.Errorf("saddest day = %+v", tr.SaddestDay)
	}
	if tr.HappiestThird.Label != "First third" || tr.SaddestThird.Label != "Second third" {
		t.Errorf("thirds = %+v / %+v", tr.HappiestThird, tr.SaddestThird)
	}
	if tr.HappiestMonth.Label != "February" || tr.HappiestMonth.Value != 61 {
		t.Errorf("happiest month = %+v", tr.HappiestMonth)
	}
	if tr.SaddestMonth.Label != "January" || tr.SaddestMonth.Value != 60 {
		t.Errorf("saddest month = %+v", tr.SaddestMonth)
	}
}

func TestMoodTrendsTiesJoinLabels(t *testing.T) {
	entries := []*model.JournalEntry{
		entryOn(1, 2026, 3, 2, 5, 50),  // 周一，上旬
		entryOn(2, 2026, 3, 4, 5, 50),  // 周三，上旬
		entryOn(3, 2026, 3, 14, 5, 50), // 周六，中旬
		entryOn(4, 2026, 3, 31, 5, 50), // 周二，下旬
	}
	tr := MoodTrends(entries)
	if tr.HappiestDay.Label != "Monday, Tuesday, Wednesday, Saturday" || tr.HappiestDay.Value != 50 {
		t.Errorf("happiest day = %+v", tr.HappiestDay)
	}
	if tr.SaddestDay.Label != tr.HappiestDay.Label {
		t.Errorf("saddest day = %+v", tr.SaddestDay)
	}
	if tr.HappiestThird.Label != "First third, Second third, Last third" {
		t.Errorf("thirds = %+v", tr.HappiestThird)
	}
	if tr.HappiestMonth.Label != "March" {
		t.Errorf("month = %+v", tr.HappiestMonth)
	}
}

func TestThirdOfMonthBoundaries(t *testing.T) {
	cases := map[int]int{1: 0, 10: 0, 11: 1, 20: 1, 21: 2, 31: 2}
	for day, want := range cases {
		if got := thirdOfMonth(day); got != want {
			t.Errorf("day %d: got %d, want %d", day, got, want)
		}
	}
}
