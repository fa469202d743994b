package dto

type MoodGraphQueryDTO struct {
	Mode  string `form:"mode"` // line / bar
	Start string `form:"start"`
	End   string `form:"end"`
}

type LinePointDTO struct {
	Date    string  `json:"date"`
	Average float64 `json:"average"`
}

// MoodGraphDTO line 模式返回 Points，bar 模式返回 Buckets（1..100 全部给出）
type MoodGraphDTO struct {
	Mode    string            `json:"mode"`
	Start   string            `json:"start"`
	End     string            `json:"end"`
	Points  []*LinePointDTO   `json:"points,omitempty"`
	Buckets []*RatingCountDTO `json:"buckets,omitempty"`
}
