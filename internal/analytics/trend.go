package analytics

import (
	"strings"
	"time"

	"MoodMastery/internal/model"
)

const (
	happiestSentinel = 0
	saddestSentinel  = 999
)

var thirdLabels = [3]string{"First third", "Second third", "Last third"}

// weekdayOrder 周一到周日
var weekdayOrder = [7]time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
	time.Friday, time.Saturday, time.Sunday,
}

// TrendPoint 分类标签与平均评分；并列时标签以逗号连接
type TrendPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

type Trends struct {
	HappiestDay   TrendPoint `json:"happiest_day"`
	SaddestDay    TrendPoint `json:"saddest_day"`
	HappiestThird TrendPoint `json:"happiest_time_of_month"`
	SaddestThird  TrendPoint `json:"saddest_time_of_month"`
	HappiestMonth TrendPoint `json:"happiest_month"`
	SaddestMonth  TrendPoint `json:"saddest_month"`
}

type bucket struct {
	label string
	sum   int
	count int
}

// axis 一个分类维度，桶按扫描顺序排列
type axis []bucket

func newAxis(labels []string) axis {
	a := make(axis, len(labels))
	for i, l := range labels {
		a[i].label = l
	}
	return a
}

func (a axis) add(i, rating int) {
	a[i].sum += rating
	a[i].count++
}

// extremes 找出平均值最高与最低的桶，空桶不参与比较
func (a axis) extremes() (happiest, saddest TrendPoint) {
	happiest = TrendPoint{Value: happiestSentinel}
	saddest = TrendPoint{Value: saddestSentinel}

	var top, bottom []string
	first := true
	for _, b := range a {
		if b.count == 0 {
			continue
		}
		mean := float64(b.sum) / float64(b.count)
		switch {
		case first || mean > happiest.Value:
			happiest.Value = mean
			top = []string{b.label}
		case mean == happiest.Value:
			top = append(top, b.label)
		}
		switch {
		case first || mean < saddest.Value:
			saddest.Value = mean
			bottom = []string{b.label}
		case mean == saddest.Value:
			bottom = append(bottom, b.label)
		}
		first = false
	}

	happiest.Label = strings.Join(top, ", ")
	saddest.Label = strings.Join(bottom, ", ")
	return happiest, saddest
}

// thirdOfMonth 1-10 上旬，11-20 中旬，其余下旬
func thirdOfMonth(day int) int {
	switch {
	case day <= 10:
		return 0
	case day <= 20:
		return 1
	default:
		return 2
	}
}

// weekdayIndex 周一为 0
func weekdayIndex(w time.Weekday) int {
	return (int(w) + 6) % 7
}

// MoodTrends 按星期、月内旬、月份三个维度统计最开心与最低落的时段
func MoodTrends(entries []*model.JournalEntry) Trends {
	dayLabels := make([]string, len(weekdayOrder))
	for i, w := range weekdayOrder {
		dayLabels[i] = w.String()
	}
	monthLabels := make([]string, 12)
	for m := time.January; m <= time.December; m++ {
		monthLabels[m-1] = m.String()
	}

	days := newAxis(dayLabels)
	thirds := newAxis(thirdLabels[:])
	months := newAxis(monthLabels)

	for _, e := range entries {
		d := EntryDate(e)
		days.add(weekdayIndex(d.Weekday()), e.MoodRating)
		thirds.add(thirdOfMonth(d.Day), e.MoodRating)
		months.add(int(d.Month)-1, e.MoodRating)
	}

	var t Trends
	t.HappiestDay, t.SaddestDay = days.extremes()
	t.HappiestThird, t.SaddestThird = thirds.extremes()
	t.HappiestMonth, t.SaddestMonth = months.extremes()
	return t
}
