package analytics

import (
	"testing"
	"time"

	"MoodMastery/internal/model"
)

func TestGroupByDayIsDense(t *testing.T) {
	entries := []*model.JournalEntry{
		entryOn(1, 2025, 11, 5, 5, 40),
		entryOn(2, 2025, 11, 5, 5, 60),
		entryOn(3, 2025, 11, 8, 5, 40),
		entryOn(4, 2025, 10, 31, 5, 40), // 区间外
		entryOn(5, 2025, 11, 10, 5, 40), // 区间外
	}
	start, end := d(2025, 11, 1), d(2025, 11, 9)
	b := GroupByDay(start, end, entries)

	if b.Len() != end.DaysSince(start)+1 {
		t.Fatalf("got %d days, want %d", b.Len(), end.DaysSince(start)+1)
	}
	days := b.Days()
	if days[0] != start || days[len(days)-1] != end {
		t.Fatalf("range is %v..%v", days[0], days[len(days)-1])
	}

	total := 0
	b.Each(func(day Date, list []*model.JournalEntry) {
		if list == nil {
			t.Errorf("%v has a nil bucket", day)
		}
		total += len(list)
	})
	if total != 3 {
		t.Fatalf("expected 3 in-range entries, got %d", total)
	}
	if len(b.Entries(d(2025, 11, 5))) != 2 || len(b.Entries(d(2025, 11, 6))) != 0 {
		t.Fatal("entries landed in the wrong bucket")
	}
}

func TestGroupByDayEmptyAndReversedRange(t *testing.T) {
	if b := GroupByDay(d(2026, 1, 1), d(2026, 1, 7), nil); b.Len() != 7 {
		t.Fatalf("empty journal should still yield 7 days, got %d", b.Len())
	}
	if b := GroupByDay(d(2026, 1, 7), d(2026, 1, 1), nil); b.Len() != 0 {
		t.Fatalf("reversed range should be empty, got %d", b.Len())
	}
}

func TestGroupByDayOrdering(t *testing.T) {
	at := time.Date(2026, 2, 2, 8, 0, 0, 0, time.UTC)
	late := &model.JournalEntry{ID: 1, Title: "a", EntryDate: at, CreatedAt: at.Add(time.Hour)}
	sameTimeB := &model.JournalEntry{ID: 2, Title: "b", EntryDate: at, CreatedAt: at}
	sameTimeA := &model.JournalEntry{ID: 9, Title: "a", EntryDate: at, CreatedAt: at}
	sameTimeA2 := &model.JournalEntry{ID: 3, Title: "a", EntryDate: at, CreatedAt: at}

	day := d(2026, 2, 2)
	list := GroupByDay(day, day, []*model.JournalEntry{late, sameTimeB, sameTimeA, sameTimeA2}).Entries(day)
	gotIDs := []uint64{list[0].ID, list[1].ID, list[2].ID, list[3].ID}
	want := []uint64{3, 9, 2, 1}
	for i := range want {
		if gotIDs[i] != want[i] {
			t.Fatalf("order = %v, want %v", gotIDs, want)
		}
	}
}

func TestMonthBounds(t *testing.T) {
	cases := []struct {
		year      int
		month     time.Month
		weekStart time.Weekday
		start     Date
		end       Date
	}{
		// 2025-11-01 是周六，11-30 是周日
		{2025, time.November, time.Monday, d(2025, 10, 27), d(2025, 11, 30)},
		// 2024-12-01 是周日，12-31 是周二
		{2024, time.December, time.Monday, d(2024, 11, 25), d(2025, 1, 5)},
		// 2021-02 恰好从周一到周日
		{2021, time.February, time.Monday, d(2021, 2, 1), d(2021, 2, 28)},
		{2025, time.November, time.Sunday, d(2025, 10, 26), d(2025, 12, 6)},
	}
	for _, tc := range cases {
		start, end := MonthBounds(tc.year, tc.month, tc.weekStart)
		if start != tc.start || end != tc.end {
			t.Errorf("%d-%02d (%v): got %v..%v, want %v..%v", tc.year, tc.month, tc.weekStart, start, end, tc.start, tc.end)
		}
		if start.Weekday() != tc.weekStart {
			t.Errorf("grid must start on %v, got %v", tc.weekStart, start.Weekday())
		}
		if (end.DaysSince(start)+1)%7 != 0 {
			t.Errorf("grid is not whole weeks: %v..%v", start, end)
		}
	}
}

func TestMonthCalendar(t *testing.T) {
	entries := []*model.JournalEntry{
		entryOn(1, 2025, 10, 27, 5, 50),
		entryOn(2, 2025, 11, 15, 5, 50),
	}
	cal := MonthCalendar(2025, time.November, time.Monday, entries)
	if cal.Len() != 35 {
		t.Fatalf("expected 5 full weeks, got %d days", cal.Len())
	}
	if len(cal.Entries(d(2025, 10, 27))) != 1 {
		t.Fatal("leading grid day should carry its entries")
	}
}

func TestEntriesOn(t *testing.T) {
	entries := []*model.JournalEntry{
		entryOn(3, 2026, 1, 2, 5, 50),
		entryOn(1, 2026, 1, 1, 5, 50),
		entryOn(2, 2026, 1, 1, 5, 50),
		entryOn(4, 2026, 1, 9, 5, 50),
	}
	if got := EntriesOn(d(2026, 1, 1), entries); len(got) != 2 || got[0].ID != 1 {
		t.Fatalf("EntriesOn = %v", got)
	}
	if got := EntriesOn(d(2026, 1, 5), entries); len(got) != 0 {
		t.Fatalf("EntriesOn(empty day) = %v", got)
	}
}
