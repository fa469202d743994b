package service

import (
	"MoodMastery/internal/analytics"
	"MoodMastery/internal/api/config"
	"MoodMastery/internal/api/dto"
	"MoodMastery/internal/model"
	"MoodMastery/internal/pkg/consts"
	"MoodMastery/internal/repository"
	"context"
	"math"
	"sort"
	"strings"
	"time"
)

type AnalyticsService interface {
	WeeklyReport(ctx context.Context, date string) (*dto.RankingReportDTO, error)
	MonthlyReport(ctx context.Context, date string) (*dto.RankingReportDTO, error)
	EmojiGroups(ctx context.Context) ([]*dto.EmojiGroupDTO, error)
	EmojiGroup(ctx context.Context, ranking int) (*dto.EmojiGroupDTO, error)
	MonthCalendar(ctx context.Context, year, month int) (*dto.CalendarDTO, error)
	CalendarDays(ctx context.Context, start, end string) (*dto.CalendarDTO, error)
	DayEntries(ctx context.Context, date string) ([]*dto.EntrySummaryDTO, error)
	MoodGraph(ctx context.Context, query *dto.MoodGraphQueryDTO) (*dto.MoodGraphDTO, error)
	Trends(ctx context.Context) (*analytics.Trends, error)
	Tags(ctx context.Context) (*dto.TagOverviewDTO, error)
	EntriesWithTag(ctx context.Context, tag string) ([]*dto.EntrySummaryDTO, error)
}

type AnalyticsServiceImpl struct {
	entryRepo repository.EntryRepo
	cfg       config.JournalConfig
	now       func() time.Time
}

func NewAnalyticsService(entryRepo repository.EntryRepo, cfg config.JournalConfig) AnalyticsService {
	return &AnalyticsServiceImpl{
		entryRepo: entryRepo,
		cfg:       cfg,
		now:       time.Now,
	}
}

func (s *AnalyticsServiceImpl) today() analytics.Date {
	return analytics.NormalizeDate(s.now().In(s.cfg.Location()))
}

// parseDateOr 空串返回默认值
func parseDateOr(raw string, def analytics.Date) (analytics.Date, error) {
	if strings.TrimSpace(raw) == "" {
		return def, nil
	}
	day, err := analytics.ParseDate(raw)
	if err != nil {
		return analytics.Date{}, ErrDateInvalid
	}
	return day, nil
}

func (s *AnalyticsServiceImpl) checkRange(start, end analytics.Date) error {
	if start.After(end) {
		return ErrDateRangeInvalid
	}
	if s.cfg.MaxRange > 0 && end.DaysSince(start)+1 > s.cfg.MaxRange {
		return ErrDateRangeInvalid
	}
	return nil
}

func (s *AnalyticsServiceImpl) WeeklyReport(ctx context.Context, date string) (*dto.RankingReportDTO, error) {
	return s.rankingReport(ctx, "weekly", date, windowOr(s.cfg.WeeklyDays, consts.WeeklyReportDays))
}

func (s *AnalyticsServiceImpl) MonthlyReport(ctx context.Context, date string) (*dto.RankingReportDTO, error) {
	return s.rankingReport(ctx, "monthly", date, windowOr(s.cfg.MonthlyDays, consts.MonthlyReportDays))
}

func windowOr(days, def int) int {
	if days <= 0 {
		return def
	}
	return days
}

func (s *AnalyticsServiceImpl) rankingReport(ctx context.Context, period, date string, windowDays int) (*dto.RankingReportDTO, error) {
	anchor, err := parseDateOr(date, s.today())
	if err != nil {
		return nil, err
	}
	entries, err := s.entryRepo.ListEntries(ctx)
	if err != nil {
		return nil, err
	}

	hist := analytics.WindowedRankingHistogram(anchor, windowDays, entries)
	if hist == nil {
		return nil, ErrReportNoData
	}

	total := hist.Total()
	report := &dto.RankingReportDTO{
		Period: period,
		Start:  anchor.AddDays(-(windowDays - 1)).String(),
		End:    anchor.String(),
		Total:  total,
		Bars:   make([]*dto.RankingBarDTO, 0, consts.RankingMax),
	}
	for rank := consts.RankingMin; rank <= consts.RankingMax; rank++ {
		count := hist.Count(rank)
		report.Bars = append(report.Bars, &dto.RankingBarDTO{
			Ranking:    rank,
			Emoji:      consts.RankingEmoji(rank),
			Count:      count,
			Percentage: percentage(count, total),
		})
	}
	return report, nil
}

// percentage 保留一位小数
func percentage(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(count)*1000/float64(total)) / 10
}

// EmojiGroups 所有 ranking 的概览，不含明细，ID 按日期倒序
func (s *AnalyticsServiceImpl) EmojiGroups(ctx context.Context) ([]*dto.EmojiGroupDTO, error) {
	entries, err := s.entryRepo.ListEntries(ctx)
	if err != nil {
		return nil, err
	}
	groups := make([]*dto.EmojiGroupDTO, 0, consts.RankingMax)
	for rank := consts.RankingMin; rank <= consts.RankingMax; rank++ {
		matched := newestFirst(rank, entries)
		groups = append(groups, &dto.EmojiGroupDTO{
			Ranking:  rank,
			Emoji:    consts.RankingEmoji(rank),
			Count:    len(matched),
			EntryIDs: entryIDs(matched),
		})
	}
	return groups, nil
}

// EmojiGroup 单个 ranking 的评分分布与记录，记录按日期倒序
func (s *AnalyticsServiceImpl) EmojiGroup(ctx context.Context, ranking int) (*dto.EmojiGroupDTO, error) {
	if ranking < consts.RankingMin || ranking > consts.RankingMax {
		return nil, ErrRankingInvalid
	}
	entries, err := s.entryRepo.ListEntries(ctx)
	if err != nil {
		return nil, err
	}

	hist, _ := analytics.RankingGroup(ranking, entries)
	matched := newestFirst(ranking, entries)
	return &dto.EmojiGroupDTO{
		Ranking:  ranking,
		Emoji:    consts.RankingEmoji(ranking),
		Count:    len(matched),
		EntryIDs: entryIDs(matched),
		Ratings:  toRatingCounts(hist),
		Entries:  toEntrySummaries(matched),
	}, nil
}

// newestFirst 某个 ranking 的记录，按 日期、创建时间、ID 倒序
func newestFirst(ranking int, entries []*model.JournalEntry) []*model.JournalEntry {
	matched := make([]*model.JournalEntry, 0)
	for _, e := range entries {
		if e.Ranking == ranking {
			matched = append(matched, e)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		di, dj := analytics.EntryDate(matched[i]), analytics.EntryDate(matched[j])
		if di != dj {
			return di.After(dj)
		}
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}
		return matched[i].ID > matched[j].ID
	})
	return matched
}

func entryIDs(entries []*model.JournalEntry) []uint64 {
	ids := make([]uint64, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.ID)
	}
	return ids
}

// MonthCalendar year / month 为 0 时使用当前月份
func (s *AnalyticsServiceImpl) MonthCalendar(ctx context.Context, year, month int) (*dto.CalendarDTO, error) {
	today := s.today()
	if year == 0 {
		year = today.Year
	}
	if month == 0 {
		month = int(today.Month)
	}
	if month < 1 || month > 12 || year < 1 {
		return nil, ErrParamInvalid
	}
	entries, err := s.entryRepo.ListEntries(ctx)
	if err != nil {
		return nil, err
	}

	weekStart := s.cfg.WeekStartDay()
	buckets := analytics.MonthCalendar(year, time.Month(month), weekStart, entries)
	start, end := analytics.MonthBounds(year, time.Month(month), weekStart)
	calendar := toCalendar(start, end, buckets, func(day analytics.Date) bool {
		return day.Year == year && int(day.Month) == month
	})
	calendar.Year = year
	calendar.Month = month
	calendar.WeekStart = weekStart.String()
	return calendar, nil
}

// CalendarDays 任意闭区间，缺省为最近 graph_days 天
func (s *AnalyticsServiceImpl) CalendarDays(ctx context.Context, startRaw, endRaw string) (*dto.CalendarDTO, error) {
	start, end, err := s.resolveRange(startRaw, endRaw)
	if err != nil {
		return nil, err
	}
	entries, err := s.entryRepo.ListEntries(ctx)
	if err != nil {
		return nil, err
	}
	buckets := analytics.GroupByDay(start, end, entries)
	return toCalendar(start, end, buckets, func(analytics.Date) bool { return true }), nil
}

// DayEntries 某一天的记录，按创建时间排序
func (s *AnalyticsServiceImpl) DayEntries(ctx context.Context, date string) ([]*dto.EntrySummaryDTO, error) {
	day, err := analytics.ParseDate(date)
	if err != nil {
		return nil, ErrDateInvalid
	}
	entries, err := s.entryRepo.ListEntries(ctx)
	if err != nil {
		return nil, err
	}
	return toEntrySummaries(analytics.EntriesOn(day, entries)), nil
}

func toCalendar(start, end analytics.Date, buckets *analytics.DayBuckets, inMonth func(analytics.Date) bool) *dto.CalendarDTO {
	calendar := &dto.CalendarDTO{
		Start: start.String(),
		End:   end.String(),
		Days:  make([]*dto.CalendarDayDTO, 0, buckets.Len()),
	}
	buckets.Each(func(day analytics.Date, list []*model.JournalEntry) {
		calendar.Days = append(calendar.Days, &dto.CalendarDayDTO{
			Date:    day.String(),
			InMonth: inMonth(day),
			Entries: toEntrySummaries(list),
		})
	})
	return calendar
}

// resolveRange end 缺省为今天，start 缺省为 end 往前 graph_days-1 天
func (s *AnalyticsServiceImpl) resolveRange(startRaw, endRaw string) (analytics.Date, analytics.Date, error) {
	end, err := parseDateOr(endRaw, s.today())
	if err != nil {
		return analytics.Date{}, analytics.Date{}, err
	}
	start, err := parseDateOr(startRaw, end.AddDays(-(windowOr(s.cfg.GraphDays, consts.DefaultGraphDays) - 1)))
	if err != nil {
		return analytics.Date{}, analytics.Date{}, err
	}
	if err = s.checkRange(start, end); err != nil {
		return analytics.Date{}, analytics.Date{}, err
	}
	return start, end, nil
}

func (s *AnalyticsServiceImpl) MoodGraph(ctx context.Context, query *dto.MoodGraphQueryDTO) (*dto.MoodGraphDTO, error) {
	if query == nil {
		query = &dto.MoodGraphQueryDTO{}
	}
	start, end, err := s.resolveRange(query.Start, query.End)
	if err != nil {
		return nil, err
	}
	entries, err := s.entryRepo.ListEntries(ctx)
	if err != nil {
		return nil, err
	}

	mode := analytics.ParseGraphMode(query.Mode)
	series := analytics.MoodRatingSeries(mode, start, end, entries)
	graph := &dto.MoodGraphDTO{
		Mode:  string(series.Mode),
		Start: start.String(),
		End:   end.String(),
	}
	switch series.Mode {
	case analytics.GraphBar:
		graph.Buckets = toRatingCounts(series.Bar)
	default:
		graph.Points = make([]*dto.LinePointDTO, 0, len(series.Line))
		for _, p := range series.Line {
			graph.Points = append(graph.Points, &dto.LinePointDTO{Date: p.Date.String(), Average: p.Average})
		}
	}
	return graph, nil
}

func (s *AnalyticsServiceImpl) Trends(ctx context.Context) (*analytics.Trends, error) {
	entries, err := s.entryRepo.ListEntries(ctx)
	if err != nil {
		return nil, err
	}
	trends := analytics.MoodTrends(entries)
	return &trends, nil
}

func (s *AnalyticsServiceImpl) Tags(ctx context.Context) (*dto.TagOverviewDTO, error) {
	entries, err := s.entryRepo.ListEntries(ctx)
	if err != nil {
		return nil, err
	}
	summary := analytics.TagSummary(entries)
	overview := &dto.TagOverviewDTO{
		Tags:    analytics.AllTags(entries),
		Summary: make([]*dto.TagCountDTO, 0, len(summary)),
	}
	for _, tc := range summary {
		overview.Summary = append(overview.Summary, &dto.TagCountDTO{Tag: tc.Tag, Count: tc.Count})
	}
	return overview, nil
}

func (s *AnalyticsServiceImpl) EntriesWithTag(ctx context.Context, tag string) ([]*dto.EntrySummaryDTO, error) {
	entries, err := s.entryRepo.ListEntries(ctx)
	if err != nil {
		return nil, err
	}
	return toEntrySummaries(analytics.EntriesWithTag(entries, tag)), nil
}
