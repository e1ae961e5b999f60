// Package analysis folds cached song artifacts into per-decade statistics.
package analysis

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/SuperSonicHub1/lyrics-analysis/internal/artifact"
	"github.com/SuperSonicHub1/lyrics-analysis/internal/workpool"
)

// Loader reads a song's artifact. It returns artifact.ErrMissing for songs
// that were never parsed.
type Loader interface {
	Load(id string) (*artifact.Artifact, error)
}

type Aggregator struct {
	Artifacts Loader
	Workers   int
	Logger    *zap.SugaredLogger
}

// summarize loads every artifact in ids on the worker pool and reduces each
// to a local summary. Songs without an artifact are skipped.
func summarize[S any](ctx context.Context, a *Aggregator, ids []string, fn func(*artifact.Artifact) S) ([]S, error) {
	results, err := workpool.Map(ctx, a.Workers, ids, func(ctx context.Context, id string) (*S, error) {
		art, err := a.Artifacts.Load(id)
		if errors.Is(err, artifact.ErrMissing) {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		s := fn(art)
		return &s, nil
	})
	if err != nil {
		return nil, fmt.Errorf("loading artifacts: %w", err)
	}

	summaries := make([]S, 0, len(results))
	for _, s := range results {
		if s != nil {
			summaries = append(summaries, *s)
		}
	}
	return summaries, nil
}

// percentages divides each count by total. A zero total gives an empty map.
func percentages[N int | float64](counts map[string]N, total int) map[string]float64 {
	out := make(map[string]float64, len(counts))
	if total == 0 {
		return out
	}
	for k, v := range counts {
		out[k] = float64(v) / float64(total) * 100
	}
	return out
}
