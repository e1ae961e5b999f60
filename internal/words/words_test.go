package words

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SuperSonicHub1/lyrics-analysis/internal/lyrics"
)

// tableTagger tags each whitespace-separated word from a fixed table.
type tableTagger map[string]string

func (t tableTagger) Tag(text string) ([]Token, error) {
	var tokens []Token
	for _, w := range strings.Fields(text) {
		tokens = append(tokens, Token{Text: w, Tag: t[strings.ToLower(w)]})
	}
	return tokens, nil
}

type suffixLemmatizer struct{}

func (suffixLemmatizer) Lemma(word string) string {
	return strings.TrimSuffix(word, "s")
}

func TestFrequencies(t *testing.T) {
	c := &Counter{
		Tagger: tableTagger{
			"dogs":  "NNS",
			"dog":   "NN",
			"run":   "VBP",
			"fast":  "RB",
			"the":   "DT",
			"red":   "JJ",
			"yeah":  "UH",
			"girls": "NNS",
			"``":    "``",
		},
		Lemmatizer: suffixLemmatizer{},
	}

	stanza := lyrics.Stanza{
		lyrics.NewLine(0, "The Dogs run fast"),
		lyrics.NewLine(1, "the red dog (girls yeah)"),
		lyrics.NewLine(2, "``"),
	}

	freqs, err := c.Frequencies(stanza)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{
		"dog":  2,
		"run":  1,
		"fast": 1,
		"girl": 1,
	}, freqs)
}

func TestFrequencies_emptyStanza(t *testing.T) {
	c := &Counter{Tagger: tableTagger{}, Lemmatizer: suffixLemmatizer{}}
	freqs, err := c.Frequencies(nil)
	require.NoError(t, err)
	assert.Empty(t, freqs)
}

func TestContentTag(t *testing.T) {
	for _, tag := range []string{"NN", "NNPS", "VBD", "RB", "RBR"} {
		assert.True(t, contentTag(tag), tag)
	}
	for _, tag := range []string{"", "JJ", "DT", "PRP$", "''", "UH"} {
		assert.False(t, contentTag(tag), tag)
	}
}

func TestProseTagger(t *testing.T) {
	tokens, err := ProseTagger{}.Tag("The dog runs")
	require.NoError(t, err)

	var texts []string
	for _, tok := range tokens {
		texts = append(texts, tok.Text)
		assert.NotEmpty(t, tok.Tag)
	}
	assert.Equal(t, []string{"The", "dog", "runs"}, texts)
}

func TestNewLemmatizer(t *testing.T) {
	l, err := NewLemmatizer()
	require.NoError(t, err)
	assert.Equal(t, "dog", l.Lemma("dogs"))
}

func TestLoadCategories(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "animals.txt"), []byte("dogs\ncat\n\n  birds  \n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "money.txt"), []byte("cash\nbills\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.md"), []byte("ignored\n"), 0644))

	categories, err := LoadCategories(dir, suffixLemmatizer{})
	require.NoError(t, err)

	assert.Equal(t, []string{"animals", "money"}, categories.Names())
	assert.Equal(t, map[string]bool{"dog": true, "cat": true, "bird": true}, categories["animals"])

	counts := categories.Count(map[string]int{"dog": 3, "cash": 2, "bill": 1, "car": 7})
	assert.Equal(t, map[string]int{"animals": 3, "money": 3}, counts)
}

func TestLoadCategories_emptyDir(t *testing.T) {
	categories, err := LoadCategories(t.TempDir(), suffixLemmatizer{})
	require.NoError(t, err)
	assert.Empty(t, categories)
}
