package analytics

import (
	"sort"
	"time"

	"github.com/mbonetti/leetsync-engine/internal/core/domain"
)

const (
	TrendImproving    = "Improving - solving harder problems"
	TrendEasier       = "Focusing on easier problems"
	TrendConsistent   = "Consistent difficulty level"
	TrendInsufficient = "Insufficient data"

	trendMinRecords = 10
	trendThreshold  = 0.2
)

// ProgressAnalyzer computes daily/weekly/monthly counts, streaks and
// difficulty-progression trends over normalized records.
type ProgressAnalyzer struct {
	now func() time.Time
}

func NewProgressAnalyzer() *ProgressAnalyzer {
	return &ProgressAnalyzer{now: time.Now}
}

// Analyze is a pure function of its input and the wall clock. Records
// without a solve date count toward TotalProblems but are excluded from all
// time-based metrics.
func (p *ProgressAnalyzer) Analyze(records []domain.ProblemRecord) domain.ProgressMetrics {
	dated := make([]domain.ProblemRecord, 0, len(records))
	for _, r := range records {
		if r.DateSolved != "" {
			dated = append(dated, r)
		}
	}

	sort.SliceStable(dated, func(i, j int) bool {
		return dated[i].DateSolved < dated[j].DateSolved
	})

	current, longest := p.streaks(dated)

	return domain.ProgressMetrics{
		TotalProblems: len(records),
		TotalSolved:   len(dated),
		CurrentStreak: current,
		LongestStreak: longest,
		DailyProgress: dailyProgress(dated),
		Patterns:      solvingPatterns(dated),
		Progression:   difficultyProgression(dated),
	}
}

// dailyProgress groups solves by exact date. Weekly counts are anchored on
// Monday, monthly counts on the first of the month.
func dailyProgress(dated []domain.ProblemRecord) []domain.DailyProgressEntry {
	dailyCounts := make(map[string]int)
	var dates []string
	for _, r := range dated {
		if dailyCounts[r.DateSolved] == 0 {
			dates = append(dates, r.DateSolved)
		}
		dailyCounts[r.DateSolved]++
	}
	sort.Strings(dates)

	weekTotals := make(map[string]int)
	monthTotals := make(map[string]int)
	for date, count := range dailyCounts {
		weekTotals[weekStart(date)] += count
		monthTotals[monthStart(date)] += count
	}

	entries := make([]domain.DailyProgressEntry, 0, len(dates))
	totalSolved := 0
	for _, date := range dates {
		totalSolved += dailyCounts[date]
		entries = append(entries, domain.DailyProgressEntry{
			Date:         date,
			DailyCount:   dailyCounts[date],
			WeeklyCount:  weekTotals[weekStart(date)],
			MonthlyCount: monthTotals[monthStart(date)],
			TotalSolved:  totalSolved,
		})
	}

	return entries
}

// weekStart returns the Monday of the week containing the given date.
// Malformed dates pass through unchanged so they only group with themselves.
func weekStart(date string) string {
	t, err := time.Parse(domain.DateLayout, date)
	if err != nil {
		return date
	}
	sinceMonday := (int(t.Weekday()) + 6) % 7
	return t.AddDate(0, 0, -sinceMonday).Format(domain.DateLayout)
}

func monthStart(date string) string {
	t, err := time.Parse(domain.DateLayout, date)
	if err != nil {
		return date
	}
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC).Format(domain.DateLayout)
}

// streaks scans the distinct solve days in ascending order. A streak extends
// when consecutive days differ by exactly one calendar day; multiple solves
// on one day count once. The run ending at the most recent day is "current"
// only while that day is at most one day behind the wall clock.
func (p *ProgressAnalyzer) streaks(dated []domain.ProblemRecord) (int, int) {
	seen := make(map[string]bool)
	var days []time.Time
	for _, r := range dated {
		if seen[r.DateSolved] {
			continue
		}
		seen[r.DateSolved] = true
		if t, err := time.Parse(domain.DateLayout, r.DateSolved); err == nil {
			days = append(days, t)
		}
	}
	if len(days) == 0 {
		return 0, 0
	}

	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	longest := 1
	run := 1
	for i := 1; i < len(days); i++ {
		if days[i].Sub(days[i-1]) == 24*time.Hour {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}

	today := p.now().UTC().Truncate(24 * time.Hour)
	latest := days[len(days)-1]
	current := 0
	if today.Sub(latest) <= 24*time.Hour {
		current = run
	}

	return current, longest
}

// solvingPatterns builds the weekday distribution. Ties for the most
// productive day break toward the weekday encountered first in date order.
func solvingPatterns(dated []domain.ProblemRecord) domain.SolvingPatterns {
	counts := make(map[string]int)
	var order []string

	for _, r := range dated {
		t, err := time.Parse(domain.DateLayout, r.DateSolved)
		if err != nil {
			continue
		}
		day := t.Weekday().String()
		if counts[day] == 0 {
			order = append(order, day)
		}
		counts[day]++
	}

	best := ""
	bestCount := 0
	for _, day := range order {
		if counts[day] > bestCount {
			best = day
			bestCount = counts[day]
		}
	}

	return domain.SolvingPatterns{
		MostProductiveDay: best,
		DayDistribution:   counts,
	}
}

func difficultyProgression(dated []domain.ProblemRecord) domain.DifficultyProgression {
	monthly := make(map[string]domain.DifficultyBreakdown)
	var easy, medium, hard int

	for _, r := range dated {
		switch r.Difficulty {
		case domain.DifficultyEasy:
			easy++
		case domain.DifficultyMedium:
			medium++
		case domain.DifficultyHard:
			hard++
		}

		t, err := time.Parse(domain.DateLayout, r.DateSolved)
		if err != nil {
			continue
		}
		month := t.Format("2006-01")
		b := monthly[month]
		switch r.Difficulty {
		case domain.DifficultyEasy:
			b.Easy++
		case domain.DifficultyMedium:
			b.Medium++
		case domain.DifficultyHard:
			b.Hard++
		}
		monthly[month] = b
	}

	ratio := domain.DifficultyRatio{}
	if total := len(dated); total > 0 {
		ratio.Easy = float64(easy) / float64(total)
		ratio.Medium = float64(medium) / float64(total)
		ratio.Hard = float64(hard) / float64(total)
	}

	return domain.DifficultyProgression{
		MonthlyBreakdown: monthly,
		Ratio:            ratio,
		ComplexityTrend:  complexityTrend(dated),
	}
}

// complexityTrend compares mean difficulty scores of the first and second
// halves of the date-sorted records. The second half takes the extra record
// on odd counts.
func complexityTrend(dated []domain.ProblemRecord) string {
	if len(dated) < trendMinRecords {
		return TrendInsufficient
	}

	mid := len(dated) / 2
	firstAvg := meanScore(dated[:mid])
	secondAvg := meanScore(dated[mid:])

	switch {
	case secondAvg > firstAvg+trendThreshold:
		return TrendImproving
	case secondAvg < firstAvg-trendThreshold:
		return TrendEasier
	default:
		return TrendConsistent
	}
}

func meanScore(records []domain.ProblemRecord) float64 {
	if len(records) == 0 {
		return 0
	}
	sum := 0
	for _, r := range records {
		sum += domain.DifficultyScore(r.Difficulty)
	}
	return float64(sum) / float64(len(records))
}
