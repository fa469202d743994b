package service

import (
	"MoodMastery/internal/analytics"
	"MoodMastery/internal/model"
	"context"
	"sort"
	"sync"
	"time"
)

// memEntryRepo 内存版 EntryRepo，返回副本以模拟数据库读取
type memEntryRepo struct {
	mu        sync.Mutex
	entries   map[uint64]*model.JournalEntry
	// tagRows 模拟 tags 表，关联删除后行仍然保留
	tagRows   map[string]struct{}
	nextID    uint64
	clock     time.Time
	createErr error
	updateErr error
	listErr   error
}

func newMemEntryRepo() *memEntryRepo {
	return &memEntryRepo{
		entries: make(map[uint64]*model.JournalEntry),
		tagRows: make(map[string]struct{}),
		clock:   time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC),
	}
}

func cloneEntry(e *model.JournalEntry) *model.JournalEntry {
	c := *e
	c.Tags = append([]model.Tag(nil), e.Tags...)
	if e.Biometrics != nil {
		c.Biometrics = make(map[string]string, len(e.Biometrics))
		for k, v := range e.Biometrics {
			c.Biometrics[k] = v
		}
	}
	return &c
}

func toTags(names []string) []model.Tag {
	tags := make([]model.Tag, 0, len(names))
	for _, n := range names {
		tags = append(tags, model.Tag{Name: n})
	}
	return tags
}

func (r *memEntryRepo) CreateEntry(_ context.Context, entry *model.JournalEntry, tagNames []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	r.nextID++
	r.clock = r.clock.Add(time.Minute)
	entry.ID = r.nextID
	entry.CreatedAt = r.clock
	entry.UpdatedAt = r.clock
	entry.Tags = toTags(tagNames)
	r.addTagRows(tagNames)
	r.entries[entry.ID] = cloneEntry(entry)
	return nil
}

func (r *memEntryRepo) UpdateEntry(_ context.Context, entry *model.JournalEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.updateErr != nil {
		return r.updateErr
	}
	stored, ok := r.entries[entry.ID]
	if !ok {
		return nil
	}
	stored.Title = entry.Title
	stored.Body = entry.Body
	stored.Ranking = entry.Ranking
	stored.MoodRating = entry.MoodRating
	stored.EntryDate = entry.EntryDate
	return nil
}

func (r *memEntryRepo) DeleteEntry(_ context.Context, id uint64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[id]; !ok {
		return false, nil
	}
	delete(r.entries, id)
	return true, nil
}

func (r *memEntryRepo) GetEntry(_ context.Context, id uint64) (*model.JournalEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[id]
	if !ok {
		return nil, nil
	}
	return cloneEntry(e), nil
}

func (r *memEntryRepo) ListEntries(_ context.Context) ([]*model.JournalEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.listErr != nil {
		return nil, r.listErr
	}
	items := make([]*model.JournalEntry, 0, len(r.entries))
	for _, e := range r.entries {
		items = append(items, cloneEntry(e))
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func (r *memEntryRepo) SetExcluded(_ context.Context, id uint64, excluded bool) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[id]
	if !ok {
		return false, nil
	}
	e.ExcludedFromReports = excluded
	return true, nil
}

func (r *memEntryRepo) SetPrivate(_ context.Context, id uint64, private bool) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[id]
	if !ok {
		return false, nil
	}
	e.IsPrivate = private
	return true, nil
}

func (r *memEntryRepo) ReplaceTags(_ context.Context, id uint64, tagNames []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.entries[id]; ok {
		e.Tags = toTags(tagNames)
		r.addTagRows(tagNames)
	}
	return nil
}

func (r *memEntryRepo) addTagRows(names []string) {
	for _, n := range names {
		r.tagRows[n] = struct{}{}
	}
}

// tagNames 当前 tags 表中的全部标签
func (r *memEntryRepo) tagNames() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]string, 0, len(r.tagRows))
	for n := range r.tagRows {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func (r *memEntryRepo) UpdateBiometrics(_ context.Context, id uint64, biometrics map[string]string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.entries[id]; ok {
		e.Biometrics = biometrics
	}
	return nil
}

func (r *memEntryRepo) DeleteAll(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = make(map[uint64]*model.JournalEntry)
	r.tagRows = make(map[string]struct{})
	return nil
}

// memTagRepo 与 memEntryRepo 共享数据
type memTagRepo struct {
	entries  *memEntryRepo
	pruneErr error
	prunes   int
}

func (r *memTagRepo) DeleteUnusedTags(context.Context) (int64, error) {
	r.entries.mu.Lock()
	defer r.entries.mu.Unlock()
	r.prunes++
	if r.pruneErr != nil {
		return 0, r.pruneErr
	}
	used := make(map[string]struct{})
	for _, e := range r.entries.entries {
		for _, t := range e.Tags {
			used[t.Name] = struct{}{}
		}
	}
	var removed int64
	for n := range r.entries.tagRows {
		if _, ok := used[n]; !ok {
			delete(r.entries.tagRows, n)
			removed++
		}
	}
	return removed, nil
}

// memStreakStore 模拟多个实例共享的 Redis 状态
type memStreakStore struct {
	mu      sync.Mutex
	state   *analytics.StreakState
	loadErr error
}

func (s *memStreakStore) Load(context.Context) (*analytics.StreakState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	if s.state == nil {
		return nil, nil
	}
	c := *s.state
	return &c, nil
}

func (s *memStreakStore) Save(_ context.Context, state analytics.StreakState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = &state
	return nil
}

type memPrivacyRepo struct {
	setting *model.PrivacySetting
}

func (r *memPrivacyRepo) GetSetting(context.Context) (*model.PrivacySetting, error) {
	return r.setting, nil
}

func (r *memPrivacyRepo) SaveSetting(_ context.Context, setting *model.PrivacySetting) error {
	r.setting = setting
	return nil
}

type memNotificationRepo struct {
	setting *model.NotificationSetting
	saves   int
}

func (r *memNotificationRepo) GetSetting(context.Context) (*model.NotificationSetting, error) {
	if r.setting == nil {
		return nil, nil
	}
	c := *r.setting
	return &c, nil
}

func (r *memNotificationRepo) SaveSetting(_ context.Context, setting *model.NotificationSetting) error {
	c := *setting
	r.setting = &c
	r.saves++
	return nil
}
