package analytics

import (
	"log"
	"strings"

	"github.com/mbonetti/leetsync-engine/internal/core/domain"
)

// Normalize validates and coerces raw fetched records into canonical
// ProblemRecords. Records without a title are dropped and logged; every other
// defect is repaired in place (bad difficulty becomes Unknown, bad dates are
// cleared). It never fails.
func Normalize(raw []domain.RawProblem) []domain.ProblemRecord {
	records := make([]domain.ProblemRecord, 0, len(raw))

	for _, p := range raw {
		title := strings.TrimSpace(p.Title)
		if title == "" {
			log.Printf("normalize: skipping record without title (slug=%q)", p.TitleSlug)
			continue
		}

		attempts := p.Attempts
		if attempts < 1 {
			attempts = 1
		}

		status := strings.TrimSpace(p.Status)
		if status == "" {
			status = domain.StatusSolved
		}

		date := strings.TrimSpace(p.DateSolved)
		if date != "" && !domain.ValidDate(date) {
			log.Printf("normalize: invalid date %q for %q, clearing", date, title)
			date = ""
		}

		records = append(records, domain.ProblemRecord{
			Title:          title,
			ProblemID:      strings.TrimSpace(p.ProblemID),
			TitleSlug:      strings.TrimSpace(p.TitleSlug),
			Difficulty:     domain.NormalizeDifficulty(p.Difficulty),
			Topics:         cleanList(p.Topics),
			Companies:      cleanList(p.Companies),
			DateSolved:     date,
			Language:       strings.TrimSpace(p.Language),
			Runtime:        domain.ParseNumeric(p.Runtime),
			Memory:         domain.ParseNumeric(p.Memory),
			SubmissionID:   strings.TrimSpace(p.SubmissionID),
			IsPaidOnly:     p.IsPaidOnly,
			Category:       strings.TrimSpace(p.Category),
			AcceptanceRate: domain.ParseNumeric(p.AcceptanceRate),
			Attempts:       attempts,
			Status:         status,
		})
	}

	log.Printf("normalize: %d of %d records valid", len(records), len(raw))
	return records
}

func cleanList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
