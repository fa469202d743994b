package analytics

import (
	"sort"
	"time"

	"MoodMastery/internal/model"
)

// DayBuckets 按日期升序排列的 日期 → 记录 映射，区间内每一天都有 key
type DayBuckets struct {
	days    []Date
	buckets map[Date][]*model.JournalEntry
}

func (b *DayBuckets) Days() []Date {
	return append([]Date(nil), b.days...)
}

func (b *DayBuckets) Len() int {
	return len(b.days)
}

// Entries 返回某天的记录；不在区间内的日期返回 nil
func (b *DayBuckets) Entries(d Date) []*model.JournalEntry {
	return b.buckets[d]
}

// Each 按日期顺序遍历
func (b *DayBuckets) Each(fn func(day Date, entries []*model.JournalEntry)) {
	for _, d := range b.days {
		fn(d, b.buckets[d])
	}
}

// GroupByDay 把记录放入 [start, end] 的每日桶中，空的日期也会保留
func GroupByDay(start, end Date, entries []*model.JournalEntry) *DayBuckets {
	b := &DayBuckets{buckets: make(map[Date][]*model.JournalEntry)}
	for d := start; !d.After(end); d = d.AddDays(1) {
		b.days = append(b.days, d)
		b.buckets[d] = []*model.JournalEntry{}
	}

	for _, e := range entries {
		d := EntryDate(e)
		if !inRange(d, start, end) {
			continue
		}
		b.buckets[d] = append(b.buckets[d], e)
	}

	for _, list := range b.buckets {
		sort.SliceStable(list, func(i, j int) bool {
			return sameDayLess(list[i], list[j])
		})
	}
	return b
}

// sameDayLess 同一天内的排序：创建时间、标题、ID
func sameDayLess(a, b *model.JournalEntry) bool {
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.Before(b.CreatedAt)
	}
	if a.Title != b.Title {
		return a.Title < b.Title
	}
	return a.ID < b.ID
}

// MonthBounds 返回覆盖整月的完整周网格的起止日期
func MonthBounds(year int, month time.Month, weekStart time.Weekday) (Date, Date) {
	first := DateOf(year, month, 1)
	last := DateOf(year, month+1, 1).AddDays(-1)

	lead := (int(first.Weekday()) - int(weekStart) + 7) % 7
	weekEnd := (weekStart + 6) % 7
	trail := (int(weekEnd) - int(last.Weekday()) + 7) % 7

	return first.AddDays(-lead), last.AddDays(trail)
}

// MonthCalendar 月视图：从周首到周尾的完整网格
func MonthCalendar(year int, month time.Month, weekStart time.Weekday, entries []*model.JournalEntry) *DayBuckets {
	start, end := MonthBounds(year, month, weekStart)
	return GroupByDay(start, end, entries)
}

// EntriesOn 某一天的全部记录
func EntriesOn(day Date, entries []*model.JournalEntry) []*model.JournalEntry {
	return GroupByDay(day, day, entries).Entries(day)
}
