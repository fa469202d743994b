package dto

type CalendarQueryDTO struct {
	Year  int `form:"year" validate:"omitempty,min=1,max=9999"`
	Month int `form:"month" validate:"omitempty,min=1,max=12"`
}

type DateRangeDTO struct {
	Start string `form:"start"`
	End   string `form:"end"`
}

type CalendarDayDTO struct {
	Date    string             `json:"date"`
	InMonth bool               `json:"in_month"`
	Entries []*EntrySummaryDTO `json:"entries"`
}

// CalendarDTO 月历，首尾补齐到整周
type CalendarDTO struct {
	Year      int               `json:"year,omitempty"`
	Month     int               `json:"month,omitempty"`
	WeekStart string            `json:"week_start,omitempty"`
	Start     string            `json:"start"`
	End       string            `json:"end"`
	Days      []*CalendarDayDTO `json:"days"`
}
