package rhyme

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SuperSonicHub1/lyrics-analysis/internal/lyrics"
)

type fakePhonemizer struct {
	phones map[string]string
	calls  int
	err    error
}

func (f *fakePhonemizer) Phonemize(ctx context.Context, words ...string) ([]string, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	out := make([]string, len(words))
	for i, w := range words {
		p, ok := f.phones[w]
		if !ok {
			return nil, fmt.Errorf("no transcription for %q", w)
		}
		out[i] = p
	}
	return out, nil
}

var testPhones = map[string]string{
	"cat":    "kæt",
	"hat":    "hæt",
	"cats":   "kæts",
	"bits":   "bɪts",
	"down":   "daʊn",
	"town":   "taʊn",
	"attack": "ə ˈtæk",
	"back":   "bæk",
	"button": "bʌtn̩",
	"mutton": "mʌtn̩",
	"eaten":  "itn̩",
	"skewed": "abcdeo",
	"offset": "zabcdo",
}

func TestRhymes(t *testing.T) {
	d := NewDetector(&fakePhonemizer{phones: testPhones})

	tests := []struct {
		a, b string
		want Suffix
	}{
		{"cat", "hat", "æt"},
		{"attack", "back", "æk"},
		{"down", "town", "aʊn"},
		{"button", "mutton", "ʌtn̩"},
		// Only a syllabic consonant is shared.
		{"button", "eaten", "tn̩"},
		// Shared ending holds no vowel.
		{"cats", "bits", ""},
		{"cat", "down", ""},
		// Longest shared run is not at the end of the words.
		{"skewed", "offset", ""},
	}

	for _, tc := range tests {
		got, err := d.Rhymes(context.Background(), tc.a, tc.b)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "Rhymes(%q, %q)", tc.a, tc.b)
	}
}

func TestRhymes_symmetric(t *testing.T) {
	d := NewDetector(&fakePhonemizer{phones: testPhones})
	words := []string{"cat", "hat", "cats", "bits", "attack", "back", "button", "mutton", "eaten", "skewed", "offset"}

	for _, a := range words {
		for _, b := range words {
			ab, err := d.Rhymes(context.Background(), a, b)
			require.NoError(t, err)
			ba, err := d.Rhymes(context.Background(), b, a)
			require.NoError(t, err)
			assert.Equal(t, ab, ba, "Rhymes(%q, %q) vs Rhymes(%q, %q)", a, b, b, a)
		}
	}
}

func TestRhymes_phonemizerError(t *testing.T) {
	boom := errors.New("connection refused")
	d := NewDetector(&fakePhonemizer{err: boom})

	_, err := d.Rhymes(context.Background(), "cat", "hat")
	assert.ErrorIs(t, err, boom)
}

func TestSuffixUnits(t *testing.T) {
	assert.Equal(t, []string{"a", "ʊ", "n"}, Suffix("aʊn").Units())
	assert.Empty(t, Suffix("").Units())
}

func TestLongestMatch(t *testing.T) {
	i, j, size := longestMatch([]rune("xabcyabcd"), []rune("abcdz"))
	assert.Equal(t, [3]int{5, 0, 4}, [3]int{i, j, size})

	// Equal-length runs: earliest in the first sequence wins.
	i, j, size = longestMatch([]rune("abxab"), []rune("zab"))
	assert.Equal(t, [3]int{0, 1, 2}, [3]int{i, j, size})

	_, _, size = longestMatch([]rune("abc"), []rune("xyz"))
	assert.Zero(t, size)
}

func TestLastWord(t *testing.T) {
	tests := map[string]string{
		"I see the cat":           "cat",
		"wearing a hat.":          "hat",
		"to the town !":           "town",
		"rock 'n' roll":           "roll",
		"Hold on, baby!!":         "baby",
		"  ":                      "",
		"...":                     "",
		"where did you go? ... ?": "go",
	}
	for text, want := range tests {
		assert.Equal(t, want, LastWord(text), "LastWord(%q)", text)
	}
}

func stanza(texts ...string) lyrics.Stanza {
	s := make(lyrics.Stanza, len(texts))
	for i, text := range texts {
		s[i] = lyrics.NewLine(i, text)
	}
	return s
}

func TestStanzaRhymes(t *testing.T) {
	fake := &fakePhonemizer{phones: testPhones}
	d := NewDetector(fake)
	s := stanza("I see the cat", "wearing a hat.", "", "we go down", "to the town!")

	rhymes, err := StanzaRhymes(context.Background(), d, s)
	require.NoError(t, err)
	// Four non-empty lines give six pairs.
	assert.Equal(t, 6, fake.calls)

	require.Len(t, rhymes, 2)
	assert.Equal(t, [2]string{"cat", "hat"}, rhymes[0].Pair())
	assert.Equal(t, Suffix("æt"), rhymes[0].Suffix)
	assert.Equal(t, [2]string{"down", "town"}, rhymes[1].Pair())
	for _, r := range rhymes {
		assert.Less(t, r.LineA.Index, r.LineB.Index)
	}

	structure, err := Structure(rhymes, len(s))
	require.NoError(t, err)
	assert.Equal(t, "AA*BB", structure)
}

func TestStanzaRhymes_error(t *testing.T) {
	d := NewDetector(&fakePhonemizer{phones: testPhones})
	_, err := StanzaRhymes(context.Background(), d, stanza("cat", "unknown"))
	assert.Error(t, err)
}

func rhymeBetween(a, b int, suffix Suffix) Rhyme {
	return Rhyme{
		LineA:  lyrics.Line{Index: a},
		LineB:  lyrics.Line{Index: b},
		Suffix: suffix,
	}
}

func TestStructure(t *testing.T) {
	tests := []struct {
		name   string
		rhymes []Rhyme
		n      int
		want   string
	}{
		{"no rhymes", nil, 3, "***"},
		{"empty stanza", nil, 0, ""},
		{"enclosed", []Rhyme{rhymeBetween(0, 3, "ɔɹ"), rhymeBetween(1, 2, "iz")}, 4, "ABBA"},
		{"shared group", []Rhyme{rhymeBetween(0, 1, "æt"), rhymeBetween(0, 2, "æt"), rhymeBetween(1, 2, "æt")}, 4, "AAA*"},
		{"later group wins", []Rhyme{rhymeBetween(0, 1, "æt"), rhymeBetween(1, 2, "t")}, 3, "ABB"},
	}

	for _, tc := range tests {
		got, err := Structure(tc.rhymes, tc.n)
		require.NoError(t, err, tc.name)
		assert.Equal(t, tc.want, got, tc.name)
		assert.Len(t, got, tc.n, tc.name)
	}
}

func TestStructure_tooManyGroups(t *testing.T) {
	var rhymes []Rhyme
	for i := 0; i < 27; i++ {
		rhymes = append(rhymes, rhymeBetween(2*i, 2*i+1, Suffix(fmt.Sprintf("a%d", i))))
	}

	_, err := Structure(rhymes, 54)
	assert.ErrorIs(t, err, ErrTooManyRhymeGroups)

	_, err = Structure(rhymes[:26], 54)
	assert.NoError(t, err)
}

func TestClassify(t *testing.T) {
	tests := map[string]Scheme{
		"":         SchemeNone,
		"****":     SchemeNone,
		"AAAA":     SchemeMonorhyme,
		"A":        SchemeMonorhyme,
		"ABBA":     SchemeEnclosed,
		"ABAB":     SchemeAlternating,
		"AABB":     SchemeClumped,
		"ABCD":     SchemeNone,
		"A*A*":     SchemeNone,
		"AA*A":     SchemeNone,
		"**ABBA**": SchemeEnclosed,
		"CABAB":    SchemeAlternating,
		// Enclosed is checked before clumped.
		"AABBA": SchemeEnclosed,
		"AB*AB": SchemeNone,
		// Four lines on one rhyme next to an unrhymed line.
		"AAAA*":  SchemeAlternating,
		"*AAAA":  SchemeAlternating,
		"AAAAA*": SchemeAlternating,
		"AAAABB": SchemeAlternating,
		"AAB*":   SchemeNone,
	}

	for structure, want := range tests {
		assert.Equal(t, want, Classify(structure), "Classify(%q)", structure)
	}
}

func TestSchemeString(t *testing.T) {
	assert.Equal(t, "none", SchemeNone.String())
	assert.Equal(t, "clumped", SchemeClumped.String())
}
