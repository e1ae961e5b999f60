package analysis

import (
	"context"
	"fmt"

	"github.com/SuperSonicHub1/lyrics-analysis/internal/artifact"
	"github.com/SuperSonicHub1/lyrics-analysis/internal/cohort"
	"github.com/SuperSonicHub1/lyrics-analysis/internal/rhyme"
	"github.com/SuperSonicHub1/lyrics-analysis/internal/words"
)

// Emotions maps an emotion category to the sentiment emoji that make it up.
type Emotions map[string][]string

// DefaultEmotions groups the DeepMoji emoji set. The music emoji are left
// out since they mark instrumental breaks rather than a mood.
var DefaultEmotions = Emotions{
	"humor":    {"😏", "😂", "😅", "🙈", "😋", "😉", "💀", "😜", "😈", "💁"},
	"love":     {"😍", "❤", "😳", "💕", "😘", "♥", "💔", "♡", "💜", "💖", "💙"},
	"positive": {"👌", "😊", "😁", "💯", "😌", "☺", "🙌", "🙏", "✌", "😎", "👍", "👏", "👀", "😄", "💪", "👊", "✨"},
	"neutral":  {"😴", "😐", "✋"},
	"negative": {"😩", "😭", "😔", "😑", "😕", "😞", "😫", "😢", "😪", "😷", "🔫", "😣", "😓", "🙊", "😖", "🙅", "😬"},
	"anger":    {"😒", "😡", "😤", "😠"},
}

type categorySummary struct {
	counts map[string]int
	total  int
}

// WordCategories reports, per cohort, the share of counted words that fall in
// each category.
func (a *Aggregator) WordCategories(ctx context.Context, cohorts []cohort.Cohort, categories words.Categories) ([]CohortSeries, error) {
	var series []CohortSeries
	for _, c := range cohorts {
		summaries, err := summarize(ctx, a, c.IDs, func(art *artifact.Artifact) categorySummary {
			s := categorySummary{counts: make(map[string]int)}
			for _, freqs := range art.Freqs {
				for _, n := range freqs {
					s.total += n
				}
				for name, n := range categories.Count(freqs) {
					s.counts[name] += n
				}
			}
			return s
		})
		if err != nil {
			return nil, fmt.Errorf("cohort %s: %w", c.Key, err)
		}

		counts := make(map[string]int)
		for _, name := range categories.Names() {
			counts[name] = 0
		}
		total := 0
		for _, s := range summaries {
			total += s.total
			for name, n := range s.counts {
				counts[name] += n
			}
		}

		a.Logger.Debugw("Counted word categories", "cohort", c.Key, "songs", len(summaries), "words", total)
		series = append(series, CohortSeries{
			Cohort:      c.Key,
			Songs:       len(summaries),
			Total:       total,
			Percentages: percentages(counts, total),
		})
	}
	return series, nil
}

// RhymeSchemes reports, per cohort, the share of stanzas classified under
// each named scheme. Unclassified stanzas count toward the total only.
func (a *Aggregator) RhymeSchemes(ctx context.Context, cohorts []cohort.Cohort) ([]CohortSeries, error) {
	var series []CohortSeries
	for _, c := range cohorts {
		summaries, err := summarize(ctx, a, c.IDs, func(art *artifact.Artifact) map[rhyme.Scheme]int {
			counts := make(map[rhyme.Scheme]int)
			for _, structure := range art.RhymeStructure {
				counts[rhyme.Classify(structure)]++
			}
			return counts
		})
		if err != nil {
			return nil, fmt.Errorf("cohort %s: %w", c.Key, err)
		}

		counts := make(map[string]int)
		for _, scheme := range rhyme.Schemes {
			counts[string(scheme)] = 0
		}
		total := 0
		for _, s := range summaries {
			for scheme, n := range s {
				total += n
				if scheme != rhyme.SchemeNone {
					counts[string(scheme)] += n
				}
			}
		}

		a.Logger.Debugw("Counted rhyme schemes", "cohort", c.Key, "songs", len(summaries), "stanzas", total)
		series = append(series, CohortSeries{
			Cohort:      c.Key,
			Songs:       len(summaries),
			Total:       total,
			Percentages: percentages(counts, total),
		})
	}
	return series, nil
}

type sentimentSummary struct {
	sums  map[string]float64
	lines int
}

// Sentiment reports, per cohort, the mean per-line score of each emotion
// category as a percentage.
func (a *Aggregator) Sentiment(ctx context.Context, cohorts []cohort.Cohort, emotions Emotions) ([]CohortSeries, error) {
	categoryOf := make(map[string]string)
	for category, emoji := range emotions {
		for _, e := range emoji {
			categoryOf[e] = category
		}
	}

	var series []CohortSeries
	for _, c := range cohorts {
		summaries, err := summarize(ctx, a, c.IDs, func(art *artifact.Artifact) sentimentSummary {
			s := sentimentSummary{sums: make(map[string]float64)}
			for _, stanza := range art.Sentiment {
				for _, line := range stanza {
					s.lines++
					for e, score := range line {
						if category, ok := categoryOf[e]; ok {
							s.sums[category] += score
						}
					}
				}
			}
			return s
		})
		if err != nil {
			return nil, fmt.Errorf("cohort %s: %w", c.Key, err)
		}

		sums := make(map[string]float64)
		for category := range emotions {
			sums[category] = 0
		}
		lines := 0
		for _, s := range summaries {
			lines += s.lines
			for category, v := range s.sums {
				sums[category] += v
			}
		}

		series = append(series, CohortSeries{
			Cohort:      c.Key,
			Songs:       len(summaries),
			Total:       lines,
			Percentages: percentages(sums, lines),
		})
	}
	return series, nil
}
