package model

import (
	"time"
)

type JournalEntry struct {
	ID                  uint64            `gorm:"primaryKey" json:"id"`
	Title               string            `gorm:"type:varchar(200);not null" json:"title"`
	Body                string            `gorm:"type:text" json:"body"`
	Ranking             int               `gorm:"not null" json:"ranking"`
	MoodRating          int               `gorm:"not null" json:"mood_rating"`
	IsPrivate           bool              `gorm:"type:tinyint(1);not null;default:0" json:"is_private"`
	ExcludedFromReports bool              `gorm:"type:tinyint(1);not null;default:0" json:"excluded_from_reports"`
	EntryDate           time.Time         `gorm:"type:date;not null;index:idx_entry_date" json:"entry_date"` // 记录所属日期，与创建时间无关
	Biometrics          map[string]string `gorm:"serializer:json;type:json" json:"biometrics"`
	CreatedAt           time.Time         `json:"created_at"`
	UpdatedAt           time.Time         `json:"updated_at"`

	// 关联关系
	Tags []Tag `gorm:"many2many:entry_tags;joinForeignKey:EntryID;joinReferences:TagID" json:"tags"`
}

func (JournalEntry) TableName() string {
	return "journal_entries"
}

// TagNames 返回标签名，标签在写入时已经规范化
func (e *JournalEntry) TagNames() []string {
	names := make([]string, 0, len(e.Tags))
	for _, t := range e.Tags {
		names = append(names, t.Name)
	}
	return names
}

// HasTag 判断是否包含某个（已规范化的）标签
func (e *JournalEntry) HasTag(name string) bool {
	for _, t := range e.Tags {
		if t.Name == name {
			return true
		}
	}
	return false
}
