package repository

import (
	"MoodMastery/internal/model"
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type EntryRepo interface {
	CreateEntry(ctx context.Context, entry *model.JournalEntry, tagNames []string) error
	UpdateEntry(ctx context.Context, entry *model.JournalEntry) error
	DeleteEntry(ctx context.Context, id uint64) (bool, error)
	GetEntry(ctx context.Context, id uint64) (*model.JournalEntry, error)
	ListEntries(ctx context.Context) ([]*model.JournalEntry, error)
	SetExcluded(ctx context.Context, id uint64, excluded bool) (bool, error)
	SetPrivate(ctx context.Context, id uint64, private bool) (bool, error)
	ReplaceTags(ctx context.Context, id uint64, tagNames []string) error
	UpdateBiometrics(ctx context.Context, id uint64, biometrics map[string]string) error
	DeleteAll(ctx context.Context) error
}

type entryRepoImpl struct {
	db *gorm.DB
}

func NewEntryRepository(db *gorm.DB) EntryRepo {
	return &entryRepoImpl{db: db}
}

// CreateEntry 记录、标签与关联在同一事务中写入
func (s *entryRepoImpl) CreateEntry(ctx context.Context, entry *model.JournalEntry, tagNames []string) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		tags, err := getOrCreateTags(tx, tagNames)
		if err != nil {
			return err
		}
		entry.Tags = make([]model.Tag, 0, len(tags))
		for _, t := range tags {
			entry.Tags = append(entry.Tags, *t)
		}
		// 标签已存在，只写关联
		return tx.Omit("Tags.*").Create(entry).Error
	})
	return errors.Wrap(err, "create journal entry")
}

func (s *entryRepoImpl) UpdateEntry(ctx context.Context, entry *model.JournalEntry) error {
	err := s.db.WithContext(ctx).
		Model(&model.JournalEntry{ID: entry.ID}).
		Select("title", "body", "ranking", "mood_rating", "entry_date").
		Updates(entry).Error
	return errors.Wrapf(err, "update journal entry %d", entry.ID)
}

func (s *entryRepoImpl) DeleteEntry(ctx context.Context, id uint64) (bool, error) {
	var deleted bool
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("entry_id = ?", id).Delete(&model.EntryTag{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&model.JournalEntry{}, id)
		if result.Error != nil {
			return result.Error
		}
		deleted = result.RowsAffected > 0
		return nil
	})
	if err != nil {
		return false, errors.Wrapf(err, "delete journal entry %d", id)
	}
	return deleted, nil
}

func (s *entryRepoImpl) GetEntry(ctx context.Context, id uint64) (*model.JournalEntry, error) {
	var entry model.JournalEntry
	err := s.db.WithContext(ctx).Preload("Tags").First(&entry, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "get journal entry %d", id)
	}
	return &entry, nil
}

func (s *entryRepoImpl) ListEntries(ctx context.Context) ([]*model.JournalEntry, error) {
	entries := make([]*model.JournalEntry, 0)
	err := s.db.WithContext(ctx).
		Preload("Tags").
		Order("entry_date ASC, created_at ASC, id ASC").
		Find(&entries).Error
	if err != nil {
		return nil, errors.Wrap(err, "list journal entries")
	}
	return entries, nil
}

func (s *entryRepoImpl) SetExcluded(ctx context.Context, id uint64, excluded bool) (bool, error) {
	return s.updateFlag(ctx, id, "excluded_from_reports", excluded)
}

func (s *entryRepoImpl) SetPrivate(ctx context.Context, id uint64, private bool) (bool, error) {
	return s.updateFlag(ctx, id, "is_private", private)
}

// updateFlag MySQL 在值未变化时 RowsAffected 为 0，所以先确认记录存在
func (s *entryRepoImpl) updateFlag(ctx context.Context, id uint64, column string, value bool) (bool, error) {
	var count int64
	db := s.db.WithContext(ctx)
	if err := db.Model(&model.JournalEntry{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, errors.Wrapf(err, "check journal entry %d", id)
	}
	if count == 0 {
		return false, nil
	}
	if err := db.Model(&model.JournalEntry{}).Where("id = ?", id).Update(column, value).Error; err != nil {
		return false, errors.Wrapf(err, "update %s of journal entry %d", column, id)
	}
	return true, nil
}

func (s *entryRepoImpl) ReplaceTags(ctx context.Context, id uint64, tagNames []string) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		tags, err := getOrCreateTags(tx, tagNames)
		if err != nil {
			return err
		}
		if err = tx.Where("entry_id = ?", id).Delete(&model.EntryTag{}).Error; err != nil {
			return err
		}
		if len(tags) == 0 {
			return nil
		}
		links := make([]*model.EntryTag, 0, len(tags))
		for _, t := range tags {
			links = append(links, &model.EntryTag{EntryID: id, TagID: t.ID})
		}
		return tx.Create(links).Error
	})
	return errors.Wrapf(err, "replace tags of journal entry %d", id)
}

func (s *entryRepoImpl) UpdateBiometrics(ctx context.Context, id uint64, biometrics map[string]string) error {
	err := s.db.WithContext(ctx).
		Model(&model.JournalEntry{ID: id}).
		Select("biometrics").
		Updates(&model.JournalEntry{Biometrics: biometrics}).Error
	return errors.Wrapf(err, "update biometrics of journal entry %d", id)
}

// DeleteAll 清空日记数据（记录、关联、标签）
func (s *entryRepoImpl) DeleteAll(ctx context.Context) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&model.EntryTag{}).Error; err != nil {
			return err
		}
		if err := tx.Where("1 = 1").Delete(&model.JournalEntry{}).Error; err != nil {
			return err
		}
		return tx.Where("1 = 1").Delete(&model.Tag{}).Error
	})
	return errors.Wrap(err, "clear journal")
}
