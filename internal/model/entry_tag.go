package model

type EntryTag struct {
	EntryID uint64 `gorm:"primaryKey" json:"entryId"`
	TagID   uint64 `gorm:"primaryKey;index:idx_tag_id" json:"tagId"`
}

func (EntryTag) TableName() string {
	return "entry_tags"
}
