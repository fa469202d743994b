// Package analytics 情绪日记的统计引擎：连续打卡、日历分组、周/月报告、情绪曲线、趋势与标签索引。
// 所有函数只读取传入的记录，不会修改记录，也不会因为记录为空或稀疏而报错。
package analytics

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"MoodMastery/internal/model"
)

// Date 日历日期（不含时间与时区），可直接作为 map 的 key
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

var dateLayouts = []string{
	time.DateOnly,
	"2006/01/02",
	time.RFC3339,
	time.DateTime,
}

// DateOf 构造日期，越界的月/日按 time.Date 的规则进位
func DateOf(year int, month time.Month, day int) Date {
	return NormalizeDate(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// NormalizeDate 丢弃时钟与时区，只保留该时间所在地的年月日
func NormalizeDate(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseDate 支持 2006-01-02、2006/01/02、RFC3339 以及 2006-01-02 15:04:05
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return NormalizeDate(t), nil
		}
	}
	return Date{}, fmt.Errorf("invalid date %q", s)
}

// EntryDate 记录所属的日历日期
func EntryDate(e *model.JournalEntry) Date {
	return NormalizeDate(e.EntryDate)
}

// Time 返回该日期 UTC 零点
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

func (d Date) AddDays(n int) Date {
	return NormalizeDate(d.Time().AddDate(0, 0, n))
}

// DaysSince 返回 d - other 的天数
func (d Date) DaysSince(other Date) int {
	return int(d.Time().Sub(other.Time()).Hours() / 24)
}

func (d Date) Before(other Date) bool {
	return d.Time().Before(other.Time())
}

func (d Date) After(other Date) bool {
	return d.Time().After(other.Time())
}

func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}

func (d Date) IsZero() bool {
	return d == Date{}
}

func (d Date) String() string {
	return d.Time().Format(time.DateOnly)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(d.String())), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s, err := strconv.Unquote(string(b))
	if err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// inRange 闭区间判断
func inRange(d, start, end Date) bool {
	return !d.Before(start) && !d.After(end)
}
