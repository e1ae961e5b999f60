// Package lyricsapi downloads synced lyrics for Spotify tracks.
package lyricsapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/SuperSonicHub1/lyrics-analysis/internal/remote"
)

const DefaultURL = "https://spotify-lyric-api.herokuapp.com/"

// ErrNotFound means the track has no lyrics on Spotify.
var ErrNotFound = errors.New("track has no lyrics")

type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Fetch returns the raw lyric body for a track. Server errors come back as
// *remote.Error so callers can decide to retry.
func (c *Client) Fetch(ctx context.Context, trackID string) ([]byte, error) {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing lyrics API URL: %w", err)
	}
	q := u.Query()
	q.Set("trackid", trackID)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating lyrics request: %w", err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, &remote.Error{Service: "lyrics", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.StatusCode/100 != 2 {
		return nil, &remote.Error{Service: "lyrics", StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &remote.Error{Service: "lyrics", Err: fmt.Errorf("reading body: %w", err)}
	}
	return body, nil
}

// Retryable reports whether err is a server-side failure worth retrying.
func Retryable(err error) bool {
	var remoteErr *remote.Error
	return errors.As(err, &remoteErr) && remoteErr.StatusCode/100 == 5
}
