package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mbonetti/leetsync-engine/internal/core/domain"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	t.Run("drops records without a title", func(t *testing.T) {
		t.Parallel()
		raw := []domain.RawProblem{
			{Title: "Two Sum", Difficulty: "Easy"},
			{Title: "", TitleSlug: "mystery"},
			{Title: "   ", TitleSlug: "blank"},
		}

		records := Normalize(raw)

		assert.Len(t, records, 1)
		assert.Equal(t, "Two Sum", records[0].Title)
	})

	t.Run("repairs defects instead of dropping", func(t *testing.T) {
		t.Parallel()
		raw := []domain.RawProblem{
			{
				Title:      "Median of Two Sorted Arrays",
				Difficulty: "impossible",
				DateSolved: "not-a-date",
				Attempts:   0,
				Status:     "",
			},
		}

		records := Normalize(raw)

		assert.Len(t, records, 1)
		rec := records[0]
		assert.Equal(t, domain.DifficultyUnknown, rec.Difficulty)
		assert.Equal(t, "", rec.DateSolved, "invalid dates are cleared")
		assert.Equal(t, 1, rec.Attempts, "attempts floor at 1")
		assert.Equal(t, domain.StatusSolved, rec.Status)
	})

	t.Run("parses suffixed numeric fields", func(t *testing.T) {
		t.Parallel()
		raw := []domain.RawProblem{
			{
				Title:          "LRU Cache",
				Difficulty:     "medium",
				Runtime:        "45ms",
				Memory:         "12.3MB",
				AcceptanceRate: "49.5%",
			},
		}

		records := Normalize(raw)

		assert.Len(t, records, 1)
		assert.InDelta(t, 45.0, records[0].Runtime, 1e-9)
		assert.InDelta(t, 12.3, records[0].Memory, 1e-9)
		assert.InDelta(t, 49.5, records[0].AcceptanceRate, 1e-9)
		assert.Equal(t, domain.DifficultyMedium, records[0].Difficulty)
	})

	t.Run("keeps valid dates and trims list entries", func(t *testing.T) {
		t.Parallel()
		raw := []domain.RawProblem{
			{
				Title:      "Course Schedule",
				Difficulty: "Medium",
				DateSolved: "2024-03-15",
				Topics:     []string{" Graph ", "", "Topological Sort"},
			},
		}

		records := Normalize(raw)

		assert.Len(t, records, 1)
		assert.Equal(t, "2024-03-15", records[0].DateSolved)
		assert.Equal(t, []string{"Graph", "Topological Sort"}, records[0].Topics)
	})

	t.Run("empty input yields empty output", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, Normalize(nil))
	})
}
