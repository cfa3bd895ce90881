package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mbonetti/leetsync-engine/internal/core/domain"
)

func TestEngine_Generate(t *testing.T) {
	t.Parallel()

	rules := []TopicRule{
		{Match: "Array", Category: "Arrays & Strings"},
	}

	t.Run("empty input yields an empty report", func(t *testing.T) {
		t.Parallel()
		report := NewEngine(rules).Generate(nil)

		assert.Empty(t, report.TopicAnalytics)
		assert.Empty(t, report.ProgressData)
		assert.Equal(t, 0, report.SummaryStats.TotalProblems)
		assert.NotEmpty(t, report.SummaryStats.LastUpdated)
	})

	t.Run("wires topics and progress together", func(t *testing.T) {
		t.Parallel()
		records := []domain.ProblemRecord{
			{Title: "Two Sum", Difficulty: domain.DifficultyEasy, Topics: []string{"Array"}, DateSolved: "2024-03-18"},
			{Title: "3Sum", Difficulty: domain.DifficultyMedium, Topics: []string{"Array", "Two Pointers"}, DateSolved: "2024-03-19"},
		}

		report := NewEngine(rules).Generate(records)

		assert.Len(t, report.TopicAnalytics, 2)
		assert.Equal(t, 2, report.TopicAnalytics["Arrays & Strings"].Total)
		assert.Equal(t, "2024-03-19", report.TopicAnalytics["Arrays & Strings"].LastSolved)
		assert.Len(t, report.ProgressData, 2)
		assert.Equal(t, 2, report.SummaryStats.TotalProblems)
		assert.Equal(t, 2, report.SummaryStats.TotalSolved)
	})

	t.Run("idempotent for the same input", func(t *testing.T) {
		t.Parallel()
		records := []domain.ProblemRecord{
			{Title: "Word Ladder", Difficulty: domain.DifficultyHard, Topics: []string{"BFS"}, DateSolved: "2024-01-05"},
		}
		engine := NewEngine(nil)

		first := engine.Generate(records)
		second := engine.Generate(records)

		assert.Equal(t, first.TopicAnalytics, second.TopicAnalytics)
		assert.Equal(t, first.ProgressData, second.ProgressData)
	})
}
