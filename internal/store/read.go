package store

import (
	"fmt"
	"time"

	"github.com/SuperSonicHub1/lyrics-analysis/internal/cohort"
)

// Songs returns the whole catalog ordered by release year.
func (s *Store) Songs() ([]cohort.Row, error) {
	rows, err := s.db.Query("SELECT release_year, url, title, artist FROM Song ORDER BY release_year, id")
	if err != nil {
		return nil, fmt.Errorf("querying songs: %w", err)
	}
	defer rows.Close()

	var songs []cohort.Row
	for rows.Next() {
		var r cohort.Row
		if err := rows.Scan(&r.ReleaseYear, &r.URL, &r.Title, &r.Artist); err != nil {
			return nil, fmt.Errorf("scanning song: %w", err)
		}
		songs = append(songs, r)
	}
	return songs, rows.Err()
}

// SongsNeedingLyrics returns songs that were never fetched, plus songs whose
// lyrics were missing at least retryAfter ago.
func (s *Store) SongsNeedingLyrics(retryAfter time.Duration) ([]string, error) {
	query := `
SELECT id FROM Song
WHERE lyrics_status IS NULL
   OR (lyrics_status = ? AND lyrics_checked < ?)
ORDER BY id`
	rows, err := s.db.Query(query, LyricsMissing, time.Now().UTC().Add(-retryAfter))
	if err != nil {
		return nil, fmt.Errorf("querying songs needing lyrics: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning song id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

type ParseFailure struct {
	Song  string
	Error string
}

// RunSummary counts a run's songs by parse result.
func (s *Store) RunSummary(run string) (map[string]int, error) {
	rows, err := s.db.Query("SELECT result, COUNT(*) FROM Parse WHERE run = ? GROUP BY result", run)
	if err != nil {
		return nil, fmt.Errorf("querying run %s: %w", run, err)
	}
	defer rows.Close()

	summary := make(map[string]int)
	for rows.Next() {
		var result string
		var n int
		if err := rows.Scan(&result, &n); err != nil {
			return nil, fmt.Errorf("scanning run summary: %w", err)
		}
		summary[result] = n
	}
	return summary, rows.Err()
}

// Failures lists the songs a run failed on.
func (s *Store) Failures(run string) ([]ParseFailure, error) {
	rows, err := s.db.Query("SELECT song, error FROM Parse WHERE run = ? AND error IS NOT NULL ORDER BY song", run)
	if err != nil {
		return nil, fmt.Errorf("querying failures for run %s: %w", run, err)
	}
	defer rows.Close()

	var failures []ParseFailure
	for rows.Next() {
		var f ParseFailure
		if err := rows.Scan(&f.Song, &f.Error); err != nil {
			return nil, fmt.Errorf("scanning failure: %w", err)
		}
		failures = append(failures, f)
	}
	return failures, rows.Err()
}
