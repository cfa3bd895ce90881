package domain

// TopicStat accumulates per-topic counters. Total always equals Solved:
// only accepted submissions ever enter the pipeline.
type TopicStat struct {
	Total      int    `json:"total"`
	Solved     int    `json:"solved"`
	Easy       int    `json:"easy"`
	Medium     int    `json:"medium"`
	Hard       int    `json:"hard"`
	LastSolved string `json:"last_solved"`
}

// DailyProgressEntry is one row of the Progress sheet. WeeklyCount covers the
// Monday-anchored week containing Date, MonthlyCount the calendar month.
// TotalSolved is the cumulative running sum in date-ascending order.
type DailyProgressEntry struct {
	Date         string `json:"date"`
	DailyCount   int    `json:"daily_count"`
	WeeklyCount  int    `json:"weekly_count"`
	MonthlyCount int    `json:"monthly_count"`
	Streak       int    `json:"streak"`
	TotalSolved  int    `json:"total_solved"`
}

// SolvingPatterns captures when the user tends to solve.
type SolvingPatterns struct {
	MostProductiveDay string         `json:"most_productive_day"`
	DayDistribution   map[string]int `json:"day_distribution"`
}

// DifficultyBreakdown counts solves per difficulty bucket.
type DifficultyBreakdown struct {
	Easy   int `json:"easy"`
	Medium int `json:"medium"`
	Hard   int `json:"hard"`
}

// DifficultyRatio is each difficulty's share of all dated records, 0 when
// there are none.
type DifficultyRatio struct {
	Easy   float64 `json:"easy"`
	Medium float64 `json:"medium"`
	Hard   float64 `json:"hard"`
}

// DifficultyProgression describes how difficulty evolves over time.
type DifficultyProgression struct {
	MonthlyBreakdown map[string]DifficultyBreakdown `json:"monthly_breakdown"`
	Ratio            DifficultyRatio                `json:"difficulty_ratio"`
	ComplexityTrend  string                         `json:"complexity_trend"`
}

// ProgressMetrics is the full output of the progress analyzer. The report
// carries a subset; the HTTP surface exposes the rest.
type ProgressMetrics struct {
	TotalProblems int                   `json:"total_problems"`
	TotalSolved   int                   `json:"total_solved"`
	CurrentStreak int                   `json:"current_streak"`
	LongestStreak int                   `json:"longest_streak"`
	DailyProgress []DailyProgressEntry  `json:"daily_progress"`
	Patterns      SolvingPatterns       `json:"patterns"`
	Progression   DifficultyProgression `json:"difficulty_progression"`
}

// SummaryStats feeds the dashboard-style header of the spreadsheet.
type SummaryStats struct {
	TotalProblems int    `json:"total_problems"`
	TotalSolved   int    `json:"total_solved"`
	CurrentStreak int    `json:"current_streak"`
	LongestStreak int    `json:"longest_streak"`
	LastUpdated   string `json:"last_updated"`
}

// AnalyticsReport is the structure handed to the sheet writer.
type AnalyticsReport struct {
	TopicAnalytics map[string]*TopicStat `json:"topic_analytics"`
	ProgressData   []DailyProgressEntry  `json:"progress_data"`
	SummaryStats   SummaryStats          `json:"summary_stats"`
}
