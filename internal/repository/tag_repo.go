package repository

import (
	"MoodMastery/internal/model"
	"context"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// TagRepo 标签的创建随记录写入一起完成（getOrCreateTags），这里只负责清理
type TagRepo interface {
	DeleteUnusedTags(ctx context.Context) (int64, error)
}

type tagRepoImpl struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) TagRepo {
	return &tagRepoImpl{
		db: db,
	}
}

// DeleteUnusedTags 删除没有任何记录引用的标签
func (s *tagRepoImpl) DeleteUnusedTags(ctx context.Context) (int64, error) {
	result := s.db.WithContext(ctx).
		Where("id NOT IN (?)", s.db.Model(&model.EntryTag{}).Select("tag_id")).
		Delete(&model.Tag{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "delete unused tags")
	}
	return result.RowsAffected, nil
}

// getOrCreateTags 逐个插入，唯一索引冲突说明已存在（可能是并发写入），随后统一查询
func getOrCreateTags(tx *gorm.DB, tagNames []string) ([]*model.Tag, error) {
	if len(tagNames) == 0 {
		return nil, nil
	}

	var existing []*model.Tag
	if err := tx.Where("name IN ?", tagNames).Find(&existing).Error; err != nil {
		return nil, err
	}
	known := make(map[string]struct{}, len(existing))
	for _, t := range existing {
		known[t.Name] = struct{}{}
	}

	for _, tagName := range tagNames {
		if _, ok := known[tagName]; ok {
			continue
		}
		tag := model.Tag{
			Name:      tagName,
			CreatedAt: time.Now(),
		}
		if err := tx.Create(&tag).Error; err != nil && !isDuplicateError(err) {
			return nil, err
		}
	}

	var tags []*model.Tag
	if err := tx.Where("name IN ?", tagNames).Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

func isDuplicateError(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1062
}
