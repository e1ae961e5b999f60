// Package sentiment is a client for the emoji sentiment service.
package sentiment

import (
	"context"
	"fmt"

	"github.com/SuperSonicHub1/lyrics-analysis/internal/lyrics"
	"github.com/SuperSonicHub1/lyrics-analysis/internal/remote"
)

// Scores maps an emoji to the model's score for one line.
type Scores = map[string]float64

type Client struct {
	remote *remote.Client
}

func New(url string) *Client {
	return &Client{remote: remote.NewClient("sentiment", url)}
}

// Score returns one score set per line, in order.
func (c *Client) Score(ctx context.Context, lines []string) ([]Scores, error) {
	if len(lines) == 0 {
		return nil, nil
	}

	var scores []Scores
	if err := c.remote.PostJSON(ctx, lines, &scores); err != nil {
		return nil, err
	}
	if len(scores) != len(lines) {
		return nil, &remote.Error{
			Service: "sentiment",
			Err:     fmt.Errorf("sent %d lines, got %d score sets", len(lines), len(scores)),
		}
	}
	return scores, nil
}

// StanzaLines builds the lines sent for a stanza: the clean text with the
// ad-lib appended in parentheses. Lines with neither are left out.
func StanzaLines(stanza lyrics.Stanza) []string {
	var lines []string
	for _, line := range stanza {
		switch {
		case line.Clean == "" && !line.HasAdlib():
			continue
		case !line.HasAdlib():
			lines = append(lines, line.Clean)
		case line.Clean == "":
			lines = append(lines, "("+line.Adlib+")")
		default:
			lines = append(lines, line.Clean+" ("+line.Adlib+")")
		}
	}
	return lines
}
