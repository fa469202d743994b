package analytics

import (
	"sort"

	"MoodMastery/internal/model"
)

// StreakState 连续打卡状态，LastEntryDate 为 nil 表示还没有任何记录
type StreakState struct {
	Current       int   `json:"current_streak"`
	Longest       int   `json:"longest_streak"`
	LastEntryDate *Date `json:"last_entry_date"`
}

// distinctDates 去重后升序排列的记录日期
func distinctDates(entries []*model.JournalEntry) []Date {
	seen := make(map[Date]struct{}, len(entries))
	dates := make([]Date, 0, len(entries))
	for _, e := range entries {
		d := EntryDate(e)
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool {
		return dates[i].Before(dates[j])
	})
	return dates
}

// ComputeStreak 从全部记录重新计算连续打卡，是增量更新的正确性基准
func ComputeStreak(entries []*model.JournalEntry) StreakState {
	dates := distinctDates(entries)
	if len(dates) == 0 {
		return StreakState{}
	}

	longest, run := 1, 1
	for i := 1; i < len(dates); i++ {
		if dates[i].DaysSince(dates[i-1]) == 1 {
			run++
		} else {
			run = 1
		}
		longest = max(longest, run)
	}

	current := 1
	for j := len(dates) - 1; j > 0; j-- {
		if dates[j].DaysSince(dates[j-1]) != 1 {
			break
		}
		current++
	}

	last := dates[len(dates)-1]
	return StreakState{
		Current:       current,
		Longest:       longest,
		LastEntryDate: &last,
	}
}

// StreakTracker 持有一份连续打卡状态，只能通过 ApplyInsertion、Rebuild 与 Restore 修改
type StreakTracker struct {
	state StreakState
}

func NewStreakTracker() *StreakTracker {
	return &StreakTracker{}
}

// State 返回状态副本
func (s *StreakTracker) State() StreakState {
	st := s.state
	if st.LastEntryDate != nil {
		last := *st.LastEntryDate
		st.LastEntryDate = &last
	}
	return st
}

// ApplyInsertion 新增一条记录后的 O(1) 更新。
// 返回 false 表示该日期早于最后一次记录（补录），调用方必须改用 Rebuild。
func (s *StreakTracker) ApplyInsertion(day Date) bool {
	st := &s.state
	if st.LastEntryDate == nil {
		st.Current = 1
		st.Longest = max(st.Longest, 1)
		st.LastEntryDate = &day
		return true
	}

	gap := day.DaysSince(*st.LastEntryDate)
	switch {
	case gap == 0:
		// 同一天多次记录不延长连续天数
		return true
	case gap == 1:
		st.Current++
	case gap > 1:
		st.Current = 1
	default:
		return false
	}
	st.LastEntryDate = &day
	st.Longest = max(st.Longest, st.Current)
	return true
}

// Rebuild 用全量记录重建状态；删除、改日期、补录都走这里
func (s *StreakTracker) Rebuild(entries []*model.JournalEntry) {
	s.state = ComputeStreak(entries)
}

// Restore 载入其他实例写入的状态
func (s *StreakTracker) Restore(state StreakState) {
	if state.LastEntryDate != nil {
		last := *state.LastEntryDate
		state.LastEntryDate = &last
	}
	s.state = state
}
