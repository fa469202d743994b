package analytics

import (
	"sort"

	"MoodMastery/internal/model"
	"MoodMastery/internal/pkg/util"
)

type TagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// AllTags 所有出现过的标签，升序
func AllTags(entries []*model.JournalEntry) []string {
	set := make(map[string]struct{})
	for _, e := range entries {
		for _, t := range e.Tags {
			set[t.Name] = struct{}{}
		}
	}
	tags := make([]string, 0, len(set))
	for t := range set {
		tags = append(tags, t)
	}
	sort.Strings(tags)
	return tags
}

// EntriesWithTag 包含该标签的记录，按 日期、标题、ID 排序
func EntriesWithTag(entries []*model.JournalEntry, tag string) []*model.JournalEntry {
	tag = util.NormalizeTag(tag)
	items := make([]*model.JournalEntry, 0)
	if tag == "" {
		return items
	}
	for _, e := range entries {
		if e.HasTag(tag) {
			items = append(items, e)
		}
	}
	sort.SliceStable(items, func(i, j int) bool {
		di, dj := EntryDate(items[i]), EntryDate(items[j])
		if di != dj {
			return di.Before(dj)
		}
		if items[i].Title != items[j].Title {
			return items[i].Title < items[j].Title
		}
		return items[i].ID < items[j].ID
	})
	return items
}

// TagSummary 标签使用次数，次数降序，相同次数按名称升序
func TagSummary(entries []*model.JournalEntry) []TagCount {
	counts := make(map[string]int)
	for _, e := range entries {
		for _, t := range e.Tags {
			counts[t.Name]++
		}
	}
	summary := make([]TagCount, 0, len(counts))
	for tag, c := range counts {
		summary = append(summary, TagCount{Tag: tag, Count: c})
	}
	sort.Slice(summary, func(i, j int) bool {
		if summary[i].Count != summary[j].Count {
			return summary[i].Count > summary[j].Count
		}
		return summary[i].Tag < summary[j].Tag
	})
	return summary
}
