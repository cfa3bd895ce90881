package analytics

import (
	"strings"

	"github.com/mbonetti/leetsync-engine/internal/core/domain"
)

// TopicRule rewrites one raw topic tag to a custom category. Rules are
// applied in declaration order; the first match wins.
type TopicRule struct {
	Match    string
	Category string
}

// TopicMapper resolves raw topic names against an ordered rule list.
// Resolution per topic: exact match first, then a case-insensitive substring
// match in either direction, then passthrough of the original name.
type TopicMapper struct {
	rules []TopicRule
}

func NewTopicMapper(rules []TopicRule) *TopicMapper {
	return &TopicMapper{rules: rules}
}

// MapTopics maps a topic list to category names. Duplicates collapse; the
// result keeps first-seen order so callers stay deterministic.
func (m *TopicMapper) MapTopics(topics []string) []string {
	if len(m.rules) == 0 {
		return topics
	}

	seen := make(map[string]bool, len(topics))
	mapped := make([]string, 0, len(topics))

	add := func(name string) {
		if !seen[name] {
			seen[name] = true
			mapped = append(mapped, name)
		}
	}

	for _, topic := range topics {
		add(m.resolve(topic))
	}

	return mapped
}

func (m *TopicMapper) resolve(topic string) string {
	for _, r := range m.rules {
		if r.Match == topic {
			return r.Category
		}
	}

	lower := strings.ToLower(topic)
	for _, r := range m.rules {
		key := strings.ToLower(r.Match)
		if strings.Contains(lower, key) || strings.Contains(key, lower) {
			return r.Category
		}
	}

	return topic
}

// AggregateTopics groups normalized records by mapped topic. A record with N
// mapped topics contributes once to each of the N stats (fan-out, not
// exclusive bucketing), so topic totals deliberately do not sum to the
// problem count.
func AggregateTopics(records []domain.ProblemRecord, mapper *TopicMapper) map[string]*domain.TopicStat {
	stats := make(map[string]*domain.TopicStat)

	for _, rec := range records {
		for _, topic := range mapper.MapTopics(rec.Topics) {
			st, ok := stats[topic]
			if !ok {
				st = &domain.TopicStat{}
				stats[topic] = st
			}

			st.Total++
			st.Solved++

			switch rec.Difficulty {
			case domain.DifficultyEasy:
				st.Easy++
			case domain.DifficultyMedium:
				st.Medium++
			case domain.DifficultyHard:
				st.Hard++
			}

			// Fixed-width ISO dates compare lexicographically; empty
			// never promotes.
			if rec.DateSolved != "" && rec.DateSolved > st.LastSolved {
				st.LastSolved = rec.DateSolved
			}
		}
	}

	return stats
}
