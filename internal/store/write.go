package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/SuperSonicHub1/lyrics-analysis/internal/cohort"
)

// Lyrics statuses recorded by fetch.
const (
	LyricsFetched = "fetched"
	LyricsMissing = "missing"
)

// AddSongs inserts a batch of source rows transactionally. Songs already in
// the catalog are left as they are. It returns the number of new songs.
func (s *Store) AddSongs(source string, rows []cohort.Row) (int, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	added := 0
	for _, row := range rows {
		id := row.ID()
		if id == "" {
			continue
		}
		created, err := createSong(tx, id, source, row)
		if err != nil {
			return 0, err
		}
		if created {
			added++
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing transaction: %w", err)
	}
	return added, nil
}

func createSong(tx *sql.Tx, id, source string, row cohort.Row) (bool, error) {
	var dummy string
	err := tx.QueryRow("SELECT id FROM Song WHERE id = ?", id).Scan(&dummy)
	if err == nil {
		return false, nil
	}
	if err != sql.ErrNoRows {
		return false, fmt.Errorf("checking song %q: %w", id, err)
	}

	_, err = tx.Exec("INSERT INTO Song (id, release_year, title, artist, url, source) VALUES (?, ?, ?, ?, ?, ?)",
		id, row.ReleaseYear, row.Title, row.Artist, row.URL, source)
	if err != nil {
		return false, fmt.Errorf("inserting song %q: %w", id, err)
	}
	return true, nil
}

func (s *Store) SetLyricsStatus(id, status string) error {
	_, err := s.db.Exec("UPDATE Song SET lyrics_status = ?, lyrics_checked = ? WHERE id = ?", status, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("updating lyrics status for %q: %w", id, err)
	}
	return nil
}

// StartRun records the start of a command run and returns its id.
func (s *Store) StartRun(command string) (string, error) {
	id := uuid.NewString()
	_, err := s.db.Exec("INSERT INTO Run (id, command, started) VALUES (?, ?, ?)", id, command, time.Now().UTC())
	if err != nil {
		return "", fmt.Errorf("inserting run: %w", err)
	}
	return id, nil
}

func (s *Store) FinishRun(run string) error {
	_, err := s.db.Exec("UPDATE Run SET finished = ? WHERE id = ?", time.Now().UTC(), run)
	if err != nil {
		return fmt.Errorf("finishing run %s: %w", run, err)
	}
	return nil
}

// RecordParse stores what happened to one song during a run. parseErr may be
// nil.
func (s *Store) RecordParse(run, song, result string, parseErr error) error {
	var msg sql.NullString
	if parseErr != nil {
		msg = sql.NullString{String: parseErr.Error(), Valid: true}
	}

	_, err := s.db.Exec("INSERT OR REPLACE INTO Parse (run, song, result, error, date) VALUES (?, ?, ?, ?, ?)",
		run, song, result, msg, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("recording parse of %q: %w", song, err)
	}
	return nil
}
