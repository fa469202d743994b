package service

import (
	"MoodMastery/internal/analytics"
	"MoodMastery/internal/api/dto"
	"MoodMastery/internal/model"
	"MoodMastery/internal/pkg/consts"
	"MoodMastery/internal/pkg/redis"
	"MoodMastery/internal/pkg/util"
	"MoodMastery/internal/repository"
	"context"
	log "log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	mutationLockTTL   = 10 * time.Second
	mutationLockRetry = 25
)

type JournalService interface {
	Init(ctx context.Context) error
	LogEntry(ctx context.Context, entryDTO *dto.EntryDTO) (uint64, error)
	EditEntry(ctx context.Context, id uint64, entryDTO *dto.EntryDTO) (bool, error)
	DeleteEntry(ctx context.Context, id uint64) (bool, error)
	ClearAll(ctx context.Context) error
	GetEntry(ctx context.Context, id uint64) (*model.JournalEntry, error)
	ListEntries(ctx context.Context) ([]*model.JournalEntry, error)
	SetExcluded(ctx context.Context, id uint64, excluded bool) (bool, error)
	IsExcluded(ctx context.Context, id uint64) (*bool, error)
	AddTag(ctx context.Context, id uint64, tag string) (bool, error)
	RemoveTag(ctx context.Context, id uint64, tag string) (bool, error)
	ClearTags(ctx context.Context, id uint64) (bool, error)
	ClearBiometric(ctx context.Context, id uint64, key string) (bool, error)
	Streak(ctx context.Context) (analytics.StreakState, error)
	RebuildStreak(ctx context.Context) (analytics.StreakState, error)
}

type JournalServiceImpl struct {
	entryRepo repository.EntryRepo
	tagRepo   repository.TagRepo
	// streakStore 为 nil 时连续天数只保存在本进程
	streakStore StreakStore

	// mu 串行化所有写操作（落库 + 更新连续天数）
	mu sync.Mutex
	// stateMu 只保护 tracker，读连续天数时不必等待写锁
	stateMu sync.RWMutex
	tracker *analytics.StreakTracker
}

func NewJournalService(entryRepo repository.EntryRepo, tagRepo repository.TagRepo, streakStore StreakStore) JournalService {
	return &JournalServiceImpl{
		entryRepo:   entryRepo,
		tagRepo:     tagRepo,
		streakStore: streakStore,
		tracker:     analytics.NewStreakTracker(),
	}
}

// Init 启动时从全量记录重建连续天数
func (s *JournalServiceImpl) Init(ctx context.Context) error {
	_, err := s.RebuildStreak(ctx)
	return err
}

func (s *JournalServiceImpl) LogEntry(ctx context.Context, entryDTO *dto.EntryDTO) (uint64, error) {
	entry, day, err := buildEntry(entryDTO)
	if err != nil {
		return 0, err
	}
	entry.Biometrics = filterBiometrics(entryDTO.Biometrics)
	tags := util.NormalizeTags(entryDTO.Tags)

	unlock, err := s.lock(ctx)
	if err != nil {
		return 0, err
	}
	defer unlock()

	synced := s.syncLocked(ctx)
	if err = s.entryRepo.CreateEntry(ctx, entry, tags); err != nil {
		return 0, err
	}

	s.stateMu.Lock()
	applied := synced && s.tracker.ApplyInsertion(day)
	s.stateMu.Unlock()
	if applied {
		s.publishLocked(ctx)
	} else {
		// 补录早于最后记录日期，或共享状态不可用，改为全量重建
		s.rebuildLocked(ctx)
	}

	log.InfoContext(ctx, "journal entry logged", "entry_id", entry.ID, "entry_date", day.String())
	return entry.ID, nil
}

func (s *JournalServiceImpl) EditEntry(ctx context.Context, id uint64, entryDTO *dto.EntryDTO) (bool, error) {
	update, day, err := buildEntry(entryDTO)
	if err != nil {
		return false, err
	}

	unlock, err := s.lock(ctx)
	if err != nil {
		return false, err
	}
	defer unlock()

	entry, err := s.entryRepo.GetEntry(ctx, id)
	if err != nil {
		return false, err
	}
	if entry == nil {
		return false, nil
	}
	oldDay := analytics.EntryDate(entry)

	entry.Title = update.Title
	entry.Body = update.Body
	entry.Ranking = update.Ranking
	if entryDTO.MoodRating != nil {
		entry.MoodRating = update.MoodRating
	}
	entry.EntryDate = update.EntryDate
	if err = s.entryRepo.UpdateEntry(ctx, entry); err != nil {
		return false, err
	}

	if oldDay != day {
		s.rebuildLocked(ctx)
	}
	return true, nil
}

func (s *JournalServiceImpl) DeleteEntry(ctx context.Context, id uint64) (bool, error) {
	unlock, err := s.lock(ctx)
	if err != nil {
		return false, err
	}
	defer unlock()

	deleted, err := s.entryRepo.DeleteEntry(ctx, id)
	if err != nil || !deleted {
		return false, err
	}
	s.rebuildLocked(ctx)
	s.pruneTags(ctx)
	log.InfoContext(ctx, "journal entry deleted", "entry_id", id)
	return true, nil
}

func (s *JournalServiceImpl) ClearAll(ctx context.Context) error {
	unlock, err := s.lock(ctx)
	if err != nil {
		return err
	}
	defer unlock()

	if err = s.entryRepo.DeleteAll(ctx); err != nil {
		return err
	}
	s.stateMu.Lock()
	s.tracker.Rebuild(nil)
	s.stateMu.Unlock()
	s.publishLocked(ctx)
	log.WarnContext(ctx, "journal cleared")
	return nil
}

func (s *JournalServiceImpl) GetEntry(ctx context.Context, id uint64) (*model.JournalEntry, error) {
	return s.entryRepo.GetEntry(ctx, id)
}

func (s *JournalServiceImpl) ListEntries(ctx context.Context) ([]*model.JournalEntry, error) {
	return s.entryRepo.ListEntries(ctx)
}

func (s *JournalServiceImpl) SetExcluded(ctx context.Context, id uint64, excluded bool) (bool, error) {
	unlock, err := s.lock(ctx)
	if err != nil {
		return false, err
	}
	defer unlock()
	return s.entryRepo.SetExcluded(ctx, id, excluded)
}

// IsExcluded 记录不存在时返回 nil
func (s *JournalServiceImpl) IsExcluded(ctx context.Context, id uint64) (*bool, error) {
	entry, err := s.entryRepo.GetEntry(ctx, id)
	if err != nil || entry == nil {
		return nil, err
	}
	return util.PtrBool(entry.ExcludedFromReports), nil
}

func (s *JournalServiceImpl) AddTag(ctx context.Context, id uint64, tag string) (bool, error) {
	tag = util.NormalizeTag(tag)
	if tag == "" {
		return false, ErrTagInvalid
	}
	return s.updateTags(ctx, id, false, func(tags []string) []string {
		return append(tags, tag)
	})
}

func (s *JournalServiceImpl) RemoveTag(ctx context.Context, id uint64, tag string) (bool, error) {
	tag = util.NormalizeTag(tag)
	return s.updateTags(ctx, id, true, func(tags []string) []string {
		kept := make([]string, 0, len(tags))
		for _, t := range tags {
			if t != tag {
				kept = append(kept, t)
			}
		}
		return kept
	})
}

func (s *JournalServiceImpl) ClearTags(ctx context.Context, id uint64) (bool, error) {
	return s.updateTags(ctx, id, true, func([]string) []string {
		return nil
	})
}

// updateTags prune 为 true 时顺带删除不再被引用的标签
func (s *JournalServiceImpl) updateTags(ctx context.Context, id uint64, prune bool, change func([]string) []string) (bool, error) {
	unlock, err := s.lock(ctx)
	if err != nil {
		return false, err
	}
	defer unlock()

	entry, err := s.entryRepo.GetEntry(ctx, id)
	if err != nil || entry == nil {
		return false, err
	}
	tags := util.NormalizeTags(change(entry.TagNames()))
	if err = s.entryRepo.ReplaceTags(ctx, id, tags); err != nil {
		return false, err
	}
	if prune {
		s.pruneTags(ctx)
	}
	return true, nil
}

// pruneTags 调用方已持有写锁。清理失败只记录日志，不影响本次操作
func (s *JournalServiceImpl) pruneTags(ctx context.Context) {
	removed, err := s.tagRepo.DeleteUnusedTags(ctx)
	if err != nil {
		log.WarnContext(ctx, "prune unused tags failed", "err", err)
		return
	}
	if removed > 0 {
		log.InfoContext(ctx, "unused tags pruned", "count", removed)
	}
}

func (s *JournalServiceImpl) ClearBiometric(ctx context.Context, id uint64, key string) (bool, error) {
	if _, ok := consts.Biometrics[key]; !ok {
		return false, ErrBiometricInvalid
	}

	unlock, err := s.lock(ctx)
	if err != nil {
		return false, err
	}
	defer unlock()

	entry, err := s.entryRepo.GetEntry(ctx, id)
	if err != nil || entry == nil {
		return false, err
	}
	biometrics := make(map[string]string, len(entry.Biometrics))
	for k, v := range entry.Biometrics {
		if k != key {
			biometrics[k] = v
		}
	}
	if err = s.entryRepo.UpdateBiometrics(ctx, id, biometrics); err != nil {
		return false, err
	}
	return true, nil
}

// Streak 有共享存储时以共享状态为准，其他实例写入的记录也能立即反映
func (s *JournalServiceImpl) Streak(ctx context.Context) (analytics.StreakState, error) {
	if s.streakStore == nil {
		return s.localStreak(), nil
	}
	state, err := s.streakStore.Load(ctx)
	if err != nil {
		log.WarnContext(ctx, "load shared streak failed", "err", err)
		return s.localStreak(), nil
	}
	if state == nil {
		return s.RebuildStreak(ctx)
	}
	return *state, nil
}

func (s *JournalServiceImpl) localStreak() analytics.StreakState {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()
	return s.tracker.State()
}

// RebuildStreak 全量重建，供启动与夜间任务兜底使用
func (s *JournalServiceImpl) RebuildStreak(ctx context.Context) (analytics.StreakState, error) {
	unlock, err := s.lock(ctx)
	if err != nil {
		return analytics.StreakState{}, err
	}
	defer unlock()

	entries, err := s.entryRepo.ListEntries(ctx)
	if err != nil {
		return analytics.StreakState{}, err
	}
	s.stateMu.Lock()
	s.tracker.Rebuild(entries)
	state := s.tracker.State()
	s.stateMu.Unlock()
	s.publishLocked(ctx)
	return state, nil
}

// rebuildLocked 调用方已持有 mu。读取失败时保留旧状态，等待下一次重建
func (s *JournalServiceImpl) rebuildLocked(ctx context.Context) {
	entries, err := s.entryRepo.ListEntries(ctx)
	if err != nil {
		log.ErrorContext(ctx, "rebuild streak failed", "err", err)
		return
	}
	s.stateMu.Lock()
	s.tracker.Rebuild(entries)
	s.stateMu.Unlock()
	s.publishLocked(ctx)
}

// syncLocked 调用方已持有写锁。从共享存储载入最新状态，返回 false 表示本地状态不可信
func (s *JournalServiceImpl) syncLocked(ctx context.Context) bool {
	if s.streakStore == nil {
		return true
	}
	state, err := s.streakStore.Load(ctx)
	if err != nil {
		log.WarnContext(ctx, "load shared streak failed", "err", err)
		return false
	}
	if state == nil {
		return false
	}
	s.stateMu.Lock()
	s.tracker.Restore(*state)
	s.stateMu.Unlock()
	return true
}

// publishLocked 调用方已持有写锁
func (s *JournalServiceImpl) publishLocked(ctx context.Context) {
	if s.streakStore == nil {
		return
	}
	if err := s.streakStore.Save(ctx, s.localStreak()); err != nil {
		log.ErrorContext(ctx, "save shared streak failed", "err", err)
	}
}

// lock 进程内互斥锁；启用 Redis 时再加一把分布式锁，多个实例之间同样串行
func (s *JournalServiceImpl) lock(ctx context.Context) (func(), error) {
	s.mu.Lock()
	if !redis.Enabled() {
		return s.mu.Unlock, nil
	}

	token := uuid.NewString()
	ok, err := redis.TryLock(ctx, consts.JournalMutationLock, token, mutationLockTTL, mutationLockRetry)
	if err != nil || !ok {
		s.mu.Unlock()
		if err != nil {
			log.ErrorContext(ctx, "acquire journal lock failed", "err", err)
		}
		return nil, ErrJournalBusy
	}
	return func() {
		redis.UnLock(context.WithoutCancel(ctx), consts.JournalMutationLock, token)
		s.mu.Unlock()
	}, nil
}

// buildEntry 校验请求并转换为模型，标签与生理指标由调用方处理
func buildEntry(entryDTO *dto.EntryDTO) (*model.JournalEntry, analytics.Date, error) {
	if entryDTO == nil {
		return nil, analytics.Date{}, ErrParamInvalid
	}
	title := strings.TrimSpace(entryDTO.Title)
	if title == "" {
		return nil, analytics.Date{}, ErrParamInvalid
	}
	day, err := analytics.ParseDate(entryDTO.EntryDate)
	if err != nil {
		return nil, analytics.Date{}, ErrDateInvalid
	}
	if entryDTO.Ranking < consts.RankingMin || entryDTO.Ranking > consts.RankingMax {
		return nil, analytics.Date{}, ErrRankingInvalid
	}
	rating := consts.DefaultMoodRating
	if entryDTO.MoodRating != nil {
		rating = *entryDTO.MoodRating
		if rating < consts.MoodRatingMin || rating > consts.MoodRatingMax {
			return nil, analytics.Date{}, ErrParamInvalid
		}
	}

	return &model.JournalEntry{
		Title:      title,
		Body:       entryDTO.Body,
		Ranking:    entryDTO.Ranking,
		MoodRating: rating,
		EntryDate:  day.Time(),
	}, day, nil
}

// filterBiometrics 丢弃不在词表内的指标与取值
func filterBiometrics(raw map[string]string) map[string]string {
	biometrics := make(map[string]string, len(raw))
	for k, v := range raw {
		if consts.IsValidBiometric(k, v) {
			biometrics[k] = v
		}
	}
	return biometrics
}
