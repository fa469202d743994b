package consts

import "time"

const (
	RankingMin = 1
	RankingMax = 8

	MoodRatingMin     = 1
	MoodRatingMax     = 100
	DefaultMoodRating = 50
)

const (
	WeeklyReportDays  = 7
	MonthlyReportDays = 30
	DefaultGraphDays  = 14
)

// DefaultWeekStart 日历默认以周一开头（ISO 周）
const DefaultWeekStart = time.Monday

const AppName = "MoodMastery"

const (
	DefaultReminderHour    = 20
	DefaultReminderMinute  = 0
	ReminderTitle          = "MoodMastery"
	ReminderMessage        = "It's time to log your mood entry!"
	ReminderCronEntryLabel = "daily-reminder"
)

// rankingEmoji 每个 ranking 对应的展示表情
var rankingEmoji = map[int]string{
	1: "\U0001F60E",
	2: "\U0001F621",
	3: "\U0001F628",
	4: "\U0001F62D",
	5: "\U0001F63C",
	6: "\U0001F922",
	7: "\U0001FAE0",
	8: "\U0001FAE9",
}

// RankingEmoji 返回 ranking 对应的表情，越界返回空串
func RankingEmoji(rank int) string {
	return rankingEmoji[rank]
}

// Biometrics 允许记录的生理指标及其取值
var Biometrics = map[string][]string{
	"Sleep":             {"well rested", "meh", "sleepy", "exhausted"},
	"Physical Wellness": {"sick", "been better", "normal", "energized"},
	"Mental Wellness":   {"terrible", "been better", "normal", "energized"},
	"Menstruation":      {"yes", "no"},
}

// IsValidBiometric 校验指标名与取值是否在允许范围内
func IsValidBiometric(key, value string) bool {
	values, ok := Biometrics[key]
	if !ok {
		return false
	}
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
