package sentiment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SuperSonicHub1/lyrics-analysis/internal/lyrics"
)

func TestStanzaLines(t *testing.T) {
	stanza := lyrics.Stanza{
		lyrics.NewLine(0, "Walking down the road (yeah)"),
		lyrics.NewLine(1, ""),
		lyrics.NewLine(2, "(ooh)"),
		lyrics.NewLine(3, "with you"),
	}

	assert.Equal(t, []string{
		"Walking down the road (yeah)",
		"(ooh)",
		"with you",
	}, StanzaLines(stanza))
}

func TestScore(t *testing.T) {
	var got []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`[{"😂":0.5,"😭":0.1},{"😂":0.05,"😭":0.7}]`))
	}))
	defer srv.Close()

	scores, err := New(srv.URL).Score(context.Background(), []string{"ha ha", "boo hoo"})
	require.NoError(t, err)
	assert.Equal(t, []string{"ha ha", "boo hoo"}, got)
	require.Len(t, scores, 2)
	assert.InDelta(t, 0.7, scores[1]["😭"], 1e-9)
}

func TestScore_noLines(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	scores, err := New(srv.URL).Score(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, scores)
	assert.False(t, called, "no request expected for an empty stanza")
}

func TestScore_mismatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	_, err := New(srv.URL).Score(context.Background(), []string{"one"})
	assert.Error(t, err)
}
