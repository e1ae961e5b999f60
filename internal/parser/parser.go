// Package parser turns one song's lyrics into a cached artifact.
package parser

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/SuperSonicHub1/lyrics-analysis/internal/artifact"
	"github.com/SuperSonicHub1/lyrics-analysis/internal/lyrics"
	"github.com/SuperSonicHub1/lyrics-analysis/internal/rhyme"
	"github.com/SuperSonicHub1/lyrics-analysis/internal/sentiment"
)

// Result says what ParseSong did with a song.
type Result string

const (
	ResultParsed Result = "parsed"
	ResultCached Result = "cached"
	ResultFailed Result = "failed"
)

type SentimentScorer interface {
	Score(ctx context.Context, lines []string) ([]sentiment.Scores, error)
}

type FrequencyCounter interface {
	Frequencies(stanza lyrics.Stanza) (map[string]int, error)
}

type Parser struct {
	Detector  *rhyme.Detector
	Sentiment SentimentScorer
	Words     FrequencyCounter
	Cache     *artifact.Cache
	Logger    *zap.SugaredLogger
}

// ParseSong computes and saves the artifact for id. A song that already has
// an artifact is left alone. Nothing is written unless every stanza is
// processed.
func (p *Parser) ParseSong(ctx context.Context, id string, stanzas []lyrics.Stanza) (Result, error) {
	if p.Cache.Exists(id) {
		return ResultCached, nil
	}

	a, err := p.Build(ctx, id, stanzas)
	if err != nil {
		return ResultFailed, err
	}
	if err := p.Cache.Save(a); err != nil {
		return ResultFailed, fmt.Errorf("song %s: %w", id, err)
	}

	p.Logger.Debugw("Parsed song", "id", id, "stanzas", len(stanzas))
	return ResultParsed, nil
}

// Build computes the artifact for a song without touching the cache.
func (p *Parser) Build(ctx context.Context, id string, stanzas []lyrics.Stanza) (*artifact.Artifact, error) {
	a := &artifact.Artifact{
		ID:             id,
		Freqs:          make([]map[string]int, len(stanzas)),
		Rhymes:         make([][][2]string, len(stanzas)),
		RhymeStructure: make([]string, len(stanzas)),
		Sentiment:      make([][]map[string]float64, len(stanzas)),
	}

	for i, stanza := range stanzas {
		freqs, err := p.Words.Frequencies(stanza)
		if err != nil {
			return nil, fmt.Errorf("song %s stanza %d: counting words: %w", id, i, err)
		}
		a.Freqs[i] = freqs

		rhymes, err := rhyme.StanzaRhymes(ctx, p.Detector, stanza)
		if err != nil {
			return nil, fmt.Errorf("song %s stanza %d: finding rhymes: %w", id, i, err)
		}
		pairs := make([][2]string, len(rhymes))
		for j, r := range rhymes {
			pairs[j] = r.Pair()
		}
		a.Rhymes[i] = pairs

		structure, err := rhyme.Structure(rhymes, len(stanza))
		if err != nil {
			return nil, fmt.Errorf("song %s stanza %d: %w", id, i, err)
		}
		a.RhymeStructure[i] = structure

		scores, err := p.Sentiment.Score(ctx, sentiment.StanzaLines(stanza))
		if err != nil {
			return nil, fmt.Errorf("song %s stanza %d: scoring sentiment: %w", id, i, err)
		}
		if scores == nil {
			scores = []sentiment.Scores{}
		}
		a.Sentiment[i] = scores
	}
	return a, nil
}

// ParseFile parses a lyric API file whose name, minus extension, is the song
// id. The file isn't read when the song is already cached.
func (p *Parser) ParseFile(ctx context.Context, path string) (string, Result, error) {
	id := SongID(path)
	if p.Cache.Exists(id) {
		return id, ResultCached, nil
	}

	stanzas, err := lyrics.LoadSpotify(path)
	if err != nil {
		return id, ResultFailed, fmt.Errorf("song %s: %w", id, err)
	}
	result, err := p.ParseSong(ctx, id, stanzas)
	return id, result, err
}

func SongID(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
