package lyrics

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"
)

// spotifyLyrics is the body returned by the lyric API for a Spotify track.
type spotifyLyrics struct {
	Error    bool   `json:"error"`
	SyncType string `json:"syncType"`
	Lines    []struct {
		StartTimeMs string `json:"startTimeMs"`
		Words       string `json:"words"`
	} `json:"lines"`
}

// ParseSpotify decodes a lyric API body into timed lines. Lines whose start
// time can't be read are dropped.
func ParseSpotify(r io.Reader) ([]TimedLine, error) {
	var body spotifyLyrics
	if err := json.NewDecoder(r).Decode(&body); err != nil {
		return nil, fmt.Errorf("decoding lyrics: %w", err)
	}
	if body.Error {
		return nil, nil
	}

	lines := make([]TimedLine, 0, len(body.Lines))
	for _, l := range body.Lines {
		ms, err := strconv.ParseInt(l.StartTimeMs, 10, 64)
		if err != nil {
			continue
		}
		lines = append(lines, TimedLine{
			Start: time.Duration(ms) * time.Millisecond,
			Text:  l.Words,
		})
	}
	return lines, nil
}

// LoadSpotify reads a lyric API body from disk and segments it into stanzas.
func LoadSpotify(path string) ([]Stanza, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	lines, err := ParseSpotify(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return Segment(lines), nil
}
