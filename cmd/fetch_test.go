package cmd

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/SuperSonicHub1/lyrics-analysis/internal/logging"
	"github.com/SuperSonicHub1/lyrics-analysis/internal/store"
)

const testLyrics = `{"error":false,"syncType":"LINE_SYNCED","lines":[{"startTimeMs":"1000","words":"hello"}]}`

func TestFetchLyrics(t *testing.T) {
	var mu sync.Mutex
	calls := make(map[string]int)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.URL.Query().Get("trackid")
		mu.Lock()
		calls[id]++
		n := calls[id]
		mu.Unlock()

		switch {
		case id == "missing":
			http.NotFound(w, r)
		case id == "flaky" && n == 1:
			w.WriteHeader(http.StatusBadGateway)
		default:
			w.Write([]byte(testLyrics))
		}
	}))
	defer server.Close()

	dir := t.TempDir()
	dbPath := filepath.Join(dir, "lyrics.db")
	seedCatalog(t, dbPath, "good", "missing", "flaky", "present")

	lyricsDir := filepath.Join(dir, "lyrics")
	if err := os.MkdirAll(lyricsDir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(lyricsDir, "present.json"), []byte(testLyrics), 0644); err != nil {
		t.Fatal(err)
	}

	logger, _ := logging.NewTestLogger()
	config := FetchConfig{
		DbPath:     dbPath,
		LyricsDir:  lyricsDir,
		APIURL:     server.URL + "/",
		Interval:   time.Millisecond,
		RetryAfter: time.Hour,
	}
	if err := fetchLyrics(context.Background(), config, logger); err != nil {
		t.Fatalf("fetchLyrics() error: %v", err)
	}

	for _, id := range []string{"good", "flaky", "present"} {
		if _, err := os.Stat(filepath.Join(lyricsDir, id+".json")); err != nil {
			t.Errorf("lyrics for %s not written: %v", id, err)
		}
	}
	if _, err := os.Stat(filepath.Join(lyricsDir, "missing.json")); !os.IsNotExist(err) {
		t.Errorf("lyrics for missing song written, stat error: %v", err)
	}
	if calls["flaky"] != 2 {
		t.Errorf("flaky fetched %d times, want 2", calls["flaky"])
	}
	if calls["present"] != 0 {
		t.Errorf("present fetched %d times, want 0", calls["present"])
	}

	db, err := store.New(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	pending, err := db.SongsNeedingLyrics(time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	if len(pending) != 0 {
		t.Errorf("SongsNeedingLyrics(1h) = %v, want none", pending)
	}
	pending, err = db.SongsNeedingLyrics(0)
	if err != nil {
		t.Fatal(err)
	}
	if len(pending) != 1 || pending[0] != "missing" {
		t.Errorf("SongsNeedingLyrics(0) = %v, want [missing]", pending)
	}
}

func TestFetchLyricsServerDown(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	dir := t.TempDir()
	dbPath := filepath.Join(dir, "lyrics.db")
	seedCatalog(t, dbPath, "song")

	logger, _ := logging.NewTestLogger()
	config := FetchConfig{
		DbPath:    dbPath,
		LyricsDir: filepath.Join(dir, "lyrics"),
		APIURL:    server.URL,
		Interval:  time.Millisecond,
	}
	if err := fetchLyrics(context.Background(), config, logger); err == nil {
		t.Error("fetchLyrics() succeeded, want error on a 400")
	}
}
