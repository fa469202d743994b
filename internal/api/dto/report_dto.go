package dto

// RankingBarDTO 报表中某个 ranking 的一根柱
type RankingBarDTO struct {
	Ranking    int     `json:"ranking"`
	Emoji      string  `json:"emoji"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"` // 0-100，保留一位小数
}

// RankingReportDTO 周报 / 月报
type RankingReportDTO struct {
	Period string           `json:"period"` // weekly / monthly
	Start  string           `json:"start"`
	End    string           `json:"end"`
	Total  int              `json:"total"`
	Bars   []*RankingBarDTO `json:"bars"`
}

type ReportQueryDTO struct {
	Date string `form:"date"` // 缺省为今天
}

// RatingCountDTO 评分直方图中非零的一项
type RatingCountDTO struct {
	Rating int `json:"rating"`
	Count  int `json:"count"`
}

// EmojiGroupDTO 某个 ranking 下的全部记录
type EmojiGroupDTO struct {
	Ranking  int                `json:"ranking"`
	Emoji    string             `json:"emoji"`
	Count    int                `json:"count"`
	EntryIDs []uint64           `json:"entry_ids"`
	Ratings  []*RatingCountDTO  `json:"ratings,omitempty"`
	Entries  []*EntrySummaryDTO `json:"entries,omitempty"` // 按日期倒序
}
