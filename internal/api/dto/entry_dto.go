package dto

// EntryDTO 新建 / 编辑记录
type EntryDTO struct {
	Title      string            `json:"title" validate:"required,max=200"`
	Body       string            `json:"body"`
	EntryDate  string            `json:"entry_date" validate:"required"` // 2026-01-07
	Ranking    int               `json:"ranking" validate:"required,min=1,max=8"`
	MoodRating *int              `json:"mood_rating,omitempty" validate:"omitempty,min=1,max=100"` // 缺省为 50
	Tags       []string          `json:"tags,omitempty"`                                           // 编辑时忽略
	Biometrics map[string]string `json:"biometrics,omitempty"`                                     // 编辑时忽略
}

// EntryViewDTO 记录详情
type EntryViewDTO struct {
	ID                  uint64            `json:"id"`
	Title               string            `json:"title"`
	Body                string            `json:"body"`
	EntryDate           string            `json:"entry_date"`
	Ranking             int               `json:"ranking"`
	Emoji               string            `json:"emoji"`
	MoodRating          int               `json:"mood_rating"`
	Tags                []string          `json:"tags"`
	Biometrics          map[string]string `json:"biometrics"`
	IsPrivate           bool              `json:"is_private"`
	ExcludedFromReports bool              `json:"excluded_from_reports"`
	Locked              bool              `json:"locked"` // 私密记录未提供正确密码时正文被隐藏
	CreatedAt           string            `json:"created_at"`
	UpdatedAt           string            `json:"updated_at"`
}

// EntrySummaryDTO 日历 / 分组中使用的简要信息
type EntrySummaryDTO struct {
	ID         uint64 `json:"id"`
	Title      string `json:"title"`
	EntryDate  string `json:"entry_date"`
	Ranking    int    `json:"ranking"`
	Emoji      string `json:"emoji"`
	MoodRating int    `json:"mood_rating"`
}

type ExcludeDTO struct {
	Excluded *bool `json:"excluded" validate:"required"`
}

type ExcludeStateDTO struct {
	ID       uint64 `json:"id"`
	Excluded bool   `json:"excluded"`
}

type PrivateDTO struct {
	Password string `json:"password" validate:"required,min=1,max=72"`
}

type ViewEntryDTO struct {
	Password string `form:"password"`
}

type TagDTO struct {
	Tag string `json:"tag" validate:"required,max=50"`
}
