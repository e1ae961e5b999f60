package analysis

import (
	"context"
	"fmt"
	"time"

	"github.com/SuperSonicHub1/lyrics-analysis/internal/cohort"
	"github.com/SuperSonicHub1/lyrics-analysis/internal/words"
)

type ReportConfig struct {
	Categories words.Categories
	Emotions   Emotions
	TopWords   int
	TopRhymes  int
}

// GenerateReport runs every analysis over the cohorts. Cohorts are
// processed in order, one at a time.
func (a *Aggregator) GenerateReport(ctx context.Context, cohorts []cohort.Cohort, cfg ReportConfig) (*Report, error) {
	report := &Report{}

	// 1. Metadata
	var ids []string
	for _, c := range cohorts {
		report.Metadata.Cohorts = append(report.Metadata.Cohorts, c.Key)
		ids = append(ids, c.IDs...)
	}
	report.Metadata.GeneratedDate = time.Now().Format("2006-01-02")
	report.Metadata.TotalSongs = len(ids)

	// 2. Word categories
	categories, err := a.WordCategories(ctx, cohorts, cfg.Categories)
	if err != nil {
		return nil, fmt.Errorf("word categories: %w", err)
	}
	report.WordCategories = categories
	report.CategoryDrift = calculateDrift(categories)

	// 3. Rhyme schemes
	schemes, err := a.RhymeSchemes(ctx, cohorts)
	if err != nil {
		return nil, fmt.Errorf("rhyme schemes: %w", err)
	}
	report.RhymeSchemes = schemes
	for _, s := range schemes {
		report.Metadata.ParsedSongs += s.Songs
	}

	// 4. Sentiment
	emotions := cfg.Emotions
	if len(emotions) == 0 {
		emotions = DefaultEmotions
	}
	report.Sentiment, err = a.Sentiment(ctx, cohorts, emotions)
	if err != nil {
		return nil, fmt.Errorf("sentiment: %w", err)
	}

	// 5. Top words and rhymes
	report.TopWords, err = a.TopWords(ctx, cohorts, cfg.TopWords)
	if err != nil {
		return nil, fmt.Errorf("top words: %w", err)
	}
	report.TopRhymes, err = a.TopRhymes(ctx, ids, cfg.TopRhymes)
	if err != nil {
		return nil, fmt.Errorf("top rhymes: %w", err)
	}
	report.CohortRhymes, err = a.CohortRhymes(ctx, cohorts, cfg.TopRhymes)
	if err != nil {
		return nil, fmt.Errorf("cohort rhymes: %w", err)
	}

	a.Logger.Infow("Generated report", "cohorts", len(cohorts), "songs", len(ids), "parsed", report.Metadata.ParsedSongs)
	return report, nil
}
