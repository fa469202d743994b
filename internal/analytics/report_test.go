package analytics

import (
	"testing"

	"MoodMastery/internal/model"
)

func TestWeeklyReportWindow(t *testing.T) {
	entries := []*model.JournalEntry{
		entryOn(1, 2026, 1, 10, 1, 50),
		entryOn(2, 2026, 1, 4, 1, 50),  // anchor-6，在窗口内
		entryOn(3, 2026, 1, 3, 2, 50),  // anchor-7，窗口外
		entryOn(4, 2026, 1, 11, 2, 50), // 晚于 anchor
		entryOn(5, 2026, 1, 8, 8, 50),
	}
	h := WeeklyReport(d(2026, 1, 10), entries)
	if h == nil {
		t.Fatal("expected a histogram")
	}
	if h.Count(1) != 2 || h.Count(2) != 0 || h.Count(8) != 1 || h.Total() != 3 {
		t.Fatalf("unexpected histogram %v", *h)
	}
}

func TestReportNoDataSentinel(t *testing.T) {
	entries := []*model.JournalEntry{entryOn(1, 2026, 1, 1, 3, 50)}
	if h := WeeklyReport(d(2026, 3, 1), entries); h != nil {
		t.Fatalf("expected nil for empty window, got %v", *h)
	}
	if h := WeeklyReport(d(2026, 3, 1), nil); h != nil {
		t.Fatal("expected nil for empty journal")
	}
}

func TestReportSkipsExcludedEntries(t *testing.T) {
	excluded := entryOn(1, 2026, 1, 10, 4, 50)
	excluded.ExcludedFromReports = true
	if h := WeeklyReport(d(2026, 1, 10), []*model.JournalEntry{excluded}); h != nil {
		t.Fatal("window with only excluded entries is no data")
	}

	kept := entryOn(2, 2026, 1, 9, 4, 50)
	h := MonthlyReport(d(2026, 1, 10), []*model.JournalEntry{excluded, kept})
	if h == nil || h.Count(4) != 1 {
		t.Fatalf("expected only the kept entry, got %v", h)
	}
}

func TestReportIgnoresOutOfRangeRanking(t *testing.T) {
	entries := []*model.JournalEntry{
		entryOn(1, 2026, 1, 10, 0, 50),
		entryOn(2, 2026, 1, 10, 9, 50),
	}
	if h := WeeklyReport(d(2026, 1, 10), entries); h != nil {
		t.Fatalf("out-of-range rankings must not be counted, got %v", *h)
	}
	entries = append(entries, entryOn(3, 2026, 1, 10, 8, 50))
	if h := WeeklyReport(d(2026, 1, 10), entries); h == nil || h.Total() != 1 {
		t.Fatalf("got %v", h)
	}
}

func TestMonthlyWindowIsThirtyDays(t *testing.T) {
	entries := []*model.JournalEntry{
		entryOn(1, 2026, 1, 2, 2, 50), // anchor-29
		entryOn(2, 2026, 1, 1, 2, 50), // anchor-30
	}
	h := MonthlyReport(d(2026, 1, 31), entries)
	if h == nil || h.Count(2) != 1 {
		t.Fatalf("got %v", h)
	}
}

func TestRankingGroup(t *testing.T) {
	excluded := entryOn(3, 2026, 1, 3, 2, 70)
	excluded.ExcludedFromReports = true
	entries := []*model.JournalEntry{
		entryOn(1, 2026, 1, 1, 2, 70),
		entryOn(2, 2026, 1, 2, 2, 10),
		excluded,
		entryOn(4, 2026, 1, 4, 5, 70),
		entryOn(5, 2026, 1, 5, 2, 0),   // 越界评分
		entryOn(6, 2026, 1, 6, 2, 101), // 越界评分
	}
	hist, ids := RankingGroup(2, entries)
	if hist.Count(70) != 2 || hist.Count(10) != 1 || hist.Total() != 3 {
		t.Fatalf("unexpected histogram totals: 70=%d 10=%d total=%d", hist.Count(70), hist.Count(10), hist.Total())
	}
	if len(ids) != 5 {
		t.Fatalf("expected 5 matching ids, got %v", ids)
	}

	hist, ids = RankingGroup(7, entries)
	if hist.Total() != 0 || len(ids) != 0 {
		t.Fatal("unused ranking should be empty")
	}
}
