package analytics

import (
	"log"
	"time"

	"github.com/mbonetti/leetsync-engine/internal/core/domain"
)

// TimestampLayout is the wall-clock format stamped on reports and sheet rows.
const TimestampLayout = "2006-01-02 15:04:05"

// Engine composes the topic aggregator and progress analyzer into one
// report generator. It is stateless apart from its configuration and safe to
// call from independent call sites.
type Engine struct {
	mapper   *TopicMapper
	analyzer *ProgressAnalyzer
}

func NewEngine(rules []TopicRule) *Engine {
	return &Engine{
		mapper:   NewTopicMapper(rules),
		analyzer: NewProgressAnalyzer(),
	}
}

// Generate runs the full analytics pass over an already-normalized record
// set. Empty input yields an empty report, never an error.
func (e *Engine) Generate(records []domain.ProblemRecord) *domain.AnalyticsReport {
	log.Printf("analytics: generating report for %d records", len(records))

	topics := AggregateTopics(records, e.mapper)
	metrics := e.analyzer.Analyze(records)

	return &domain.AnalyticsReport{
		TopicAnalytics: topics,
		ProgressData:   metrics.DailyProgress,
		SummaryStats: domain.SummaryStats{
			TotalProblems: metrics.TotalProblems,
			TotalSolved:   metrics.TotalSolved,
			CurrentStreak: metrics.CurrentStreak,
			LongestStreak: metrics.LongestStreak,
			LastUpdated:   time.Now().Format(TimestampLayout),
		},
	}
}

// Metrics exposes the full progress metrics, beyond what the report carries.
func (e *Engine) Metrics(records []domain.ProblemRecord) domain.ProgressMetrics {
	return e.analyzer.Analyze(records)
}
