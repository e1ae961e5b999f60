package analysis

import (
	"context"
	"fmt"
	"sort"

	"github.com/SuperSonicHub1/lyrics-analysis/internal/artifact"
	"github.com/SuperSonicHub1/lyrics-analysis/internal/cohort"
)

// TopWords returns each cohort's most frequent words, most frequent first.
func (a *Aggregator) TopWords(ctx context.Context, cohorts []cohort.Cohort, limit int) ([]CohortWords, error) {
	var out []CohortWords
	for _, c := range cohorts {
		summaries, err := summarize(ctx, a, c.IDs, func(art *artifact.Artifact) map[string]int {
			counts := make(map[string]int)
			for _, freqs := range art.Freqs {
				for w, n := range freqs {
					counts[w] += n
				}
			}
			return counts
		})
		if err != nil {
			return nil, fmt.Errorf("cohort %s: %w", c.Key, err)
		}

		counts := make(map[string]int)
		for _, s := range summaries {
			for w, n := range s {
				counts[w] += n
			}
		}

		stats := make([]WordStat, 0, len(counts))
		for w, n := range counts {
			stats = append(stats, WordStat{Word: w, Count: n})
		}
		sort.Slice(stats, func(i, j int) bool {
			if stats[i].Count != stats[j].Count {
				return stats[i].Count > stats[j].Count
			}
			return stats[i].Word < stats[j].Word
		})
		if limit > 0 && len(stats) > limit {
			stats = stats[:limit]
		}

		out = append(out, CohortWords{Cohort: c.Key, Songs: len(summaries), Words: stats})
	}
	return out, nil
}

// TopRhymes counts rhyme pairs across the given songs. A pair and its
// reverse are the same rhyme.
func (a *Aggregator) TopRhymes(ctx context.Context, ids []string, limit int) ([]RhymeStat, error) {
	summaries, err := summarize(ctx, a, ids, rhymeCounts)
	if err != nil {
		return nil, err
	}
	return rankRhymes(summaries, limit), nil
}

// CohortRhymes returns each cohort's most common rhyme pairs.
func (a *Aggregator) CohortRhymes(ctx context.Context, cohorts []cohort.Cohort, limit int) ([]CohortRhymes, error) {
	var out []CohortRhymes
	for _, c := range cohorts {
		summaries, err := summarize(ctx, a, c.IDs, rhymeCounts)
		if err != nil {
			return nil, fmt.Errorf("cohort %s: %w", c.Key, err)
		}
		out = append(out, CohortRhymes{
			Cohort: c.Key,
			Songs:  len(summaries),
			Rhymes: rankRhymes(summaries, limit),
		})
	}
	return out, nil
}

func rhymeCounts(art *artifact.Artifact) map[[2]string]int {
	counts := make(map[[2]string]int)
	for _, stanza := range art.Rhymes {
		for _, pair := range stanza {
			counts[canonicalPair(pair)]++
		}
	}
	return counts
}

// rankRhymes merges per-song counts, most common first.
func rankRhymes(summaries []map[[2]string]int, limit int) []RhymeStat {
	counts := make(map[[2]string]int)
	for _, s := range summaries {
		for pair, n := range s {
			counts[pair] += n
		}
	}

	stats := make([]RhymeStat, 0, len(counts))
	for pair, n := range counts {
		stats = append(stats, RhymeStat{Pair: pair, Count: n})
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Count != stats[j].Count {
			return stats[i].Count > stats[j].Count
		}
		if stats[i].Pair[0] != stats[j].Pair[0] {
			return stats[i].Pair[0] < stats[j].Pair[0]
		}
		return stats[i].Pair[1] < stats[j].Pair[1]
	})
	if limit > 0 && len(stats) > limit {
		stats = stats[:limit]
	}
	return stats
}

func canonicalPair(pair [2]string) [2]string {
	if pair[1] < pair[0] {
		return [2]string{pair[1], pair[0]}
	}
	return pair
}
