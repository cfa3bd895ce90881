package domain

import (
	"strconv"
	"strings"
	"time"
)

const (
	DifficultyEasy    = "Easy"
	DifficultyMedium  = "Medium"
	DifficultyHard    = "Hard"
	DifficultyUnknown = "Unknown"

	StatusSolved = "Solved"

	// DateLayout is the canonical solve-date format. Fixed width, so
	// lexicographic comparison of two dates is chronological comparison.
	DateLayout = "2006-01-02"
)

// RawProblem is the loosely-typed shape produced by the fetch side before
// validation. Runtime, memory and acceptance rate may arrive as suffixed
// strings ("45ms", "12.3MB", "83%"); dates may be malformed or missing.
type RawProblem struct {
	Title          string   `json:"title"`
	ProblemID      string   `json:"problem_id"`
	TitleSlug      string   `json:"title_slug"`
	Difficulty     string   `json:"difficulty"`
	Topics         []string `json:"topics"`
	Companies      []string `json:"companies"`
	DateSolved     string   `json:"date_solved"`
	Language       string   `json:"language"`
	Runtime        string   `json:"runtime"`
	Memory         string   `json:"memory"`
	SubmissionID   string   `json:"submission_id"`
	IsPaidOnly     bool     `json:"is_paid_only"`
	Category       string   `json:"category"`
	AcceptanceRate string   `json:"acceptance_rate"`
	Attempts       int      `json:"attempts"`
	Status         string   `json:"status"`
}

// ProblemRecord is the canonical solved-problem shape every downstream
// component works with. Invariants: Title is never empty, Difficulty is one
// of the four difficulty constants, DateSolved is either empty or a valid
// YYYY-MM-DD string.
type ProblemRecord struct {
	Title          string   `json:"title" db:"title"`
	ProblemID      string   `json:"problem_id" db:"problem_id"`
	TitleSlug      string   `json:"title_slug" db:"title_slug"`
	Difficulty     string   `json:"difficulty" db:"difficulty"`
	Topics         []string `json:"topics"`
	Companies      []string `json:"companies"`
	DateSolved     string   `json:"date_solved" db:"date_solved"`
	Language       string   `json:"language" db:"language"`
	Runtime        float64  `json:"runtime" db:"runtime"`
	Memory         float64  `json:"memory" db:"memory"`
	SubmissionID   string   `json:"submission_id" db:"submission_id"`
	IsPaidOnly     bool     `json:"is_paid_only" db:"is_paid_only"`
	Category       string   `json:"category" db:"category"`
	AcceptanceRate float64  `json:"acceptance_rate" db:"acceptance_rate"`
	Attempts       int      `json:"attempts" db:"attempts"`
	Status         string   `json:"status" db:"status"`
}

// NormalizeDifficulty maps any input to the canonical difficulty enum,
// case-insensitively. Anything outside Easy/Medium/Hard becomes Unknown.
func NormalizeDifficulty(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "easy":
		return DifficultyEasy
	case "medium":
		return DifficultyMedium
	case "hard":
		return DifficultyHard
	default:
		return DifficultyUnknown
	}
}

// DifficultyScore ranks difficulties for trend analysis: easy=1, medium=2,
// hard=3, anything else 0.
func DifficultyScore(difficulty string) int {
	switch difficulty {
	case DifficultyEasy:
		return 1
	case DifficultyMedium:
		return 2
	case DifficultyHard:
		return 3
	default:
		return 0
	}
}

// ValidDate reports whether s is a well-formed YYYY-MM-DD date.
func ValidDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// Known unit suffixes, checked longest first so "ms" wins over a bare "s".
var numericSuffixes = []string{"ms", "MB", "KB", "mb", "kb", "%", "s"}

// ParseNumeric extracts a float from a possibly-suffixed string value.
// It never fails: unparseable input yields 0.
func ParseNumeric(raw string) float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0
	}
	for _, suffix := range numericSuffixes {
		if strings.HasSuffix(s, suffix) {
			s = strings.TrimSpace(strings.TrimSuffix(s, suffix))
			break
		}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
