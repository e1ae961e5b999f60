// Package phonemizer is a client for the grapheme-to-phoneme service.
package phonemizer

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/SuperSonicHub1/lyrics-analysis/internal/remote"
)

const defaultCacheSize = 50000

// Client posts a JSON array of words and reads back a JSON array of IPA
// transcriptions. Transcriptions are memoized per word.
type Client struct {
	remote *remote.Client
	cache  *lru.Cache[string, string]
}

func New(url string) (*Client, error) {
	return NewWithCacheSize(url, defaultCacheSize)
}

func NewWithCacheSize(url string, size int) (*Client, error) {
	cache, err := lru.New[string, string](size)
	if err != nil {
		return nil, fmt.Errorf("creating phonemizer cache: %w", err)
	}
	return &Client{
		remote: remote.NewClient("phonemizer", url),
		cache:  cache,
	}, nil
}

// Phonemize returns one transcription per word, in order. Only words missing
// from the cache are sent to the service.
func (c *Client) Phonemize(ctx context.Context, words ...string) ([]string, error) {
	out := make([]string, len(words))
	var missing []string
	for i, w := range words {
		if p, ok := c.cache.Get(w); ok {
			out[i] = p
			continue
		}
		missing = append(missing, w)
	}
	if len(missing) == 0 {
		return out, nil
	}

	var phones []string
	if err := c.remote.PostJSON(ctx, missing, &phones); err != nil {
		return nil, err
	}
	if len(phones) != len(missing) {
		return nil, &remote.Error{
			Service: "phonemizer",
			Err:     fmt.Errorf("sent %d words, got %d transcriptions", len(missing), len(phones)),
		}
	}

	fetched := make(map[string]string, len(missing))
	for i, w := range missing {
		fetched[w] = phones[i]
		c.cache.Add(w, phones[i])
	}
	for i, w := range words {
		if p, ok := fetched[w]; ok {
			out[i] = p
		}
	}
	return out, nil
}
