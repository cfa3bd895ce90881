package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDifficulty(t *testing.T) {
	t.Parallel()

	cases := []struct {
		input    string
		expected string
	}{
		{"easy", DifficultyEasy},
		{"EASY", DifficultyEasy},
		{"  Medium ", DifficultyMedium},
		{"hArD", DifficultyHard},
		{"", DifficultyUnknown},
		{"impossible", DifficultyUnknown},
		{"easy ", DifficultyEasy},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.expected, NormalizeDifficulty(tc.input), "input %q", tc.input)
	}
}

func TestDifficultyScore(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, DifficultyScore(DifficultyEasy))
	assert.Equal(t, 2, DifficultyScore(DifficultyMedium))
	assert.Equal(t, 3, DifficultyScore(DifficultyHard))
	assert.Equal(t, 0, DifficultyScore(DifficultyUnknown))
	assert.Equal(t, 0, DifficultyScore("easy"), "scores only canonical values")
}

func TestValidDate(t *testing.T) {
	t.Parallel()

	assert.True(t, ValidDate("2024-03-15"))
	assert.False(t, ValidDate("2024-3-15"))
	assert.False(t, ValidDate("15-03-2024"))
	assert.False(t, ValidDate("not-a-date"))
	assert.False(t, ValidDate(""))
	assert.False(t, ValidDate("2024-13-01"))
}

func TestParseNumeric(t *testing.T) {
	t.Parallel()

	cases := []struct {
		input    string
		expected float64
	}{
		{"45ms", 45},
		{"45 ms", 45},
		{"12.3MB", 12.3},
		{"83%", 83},
		{"49.5%", 49.5},
		{"0.5s", 0.5},
		{"128kb", 128},
		{"100", 100},
		{"", 0},
		{"N/A", 0},
		{"ms", 0},
	}

	for _, tc := range cases {
		assert.InDelta(t, tc.expected, ParseNumeric(tc.input), 1e-9, "input %q", tc.input)
	}
}
