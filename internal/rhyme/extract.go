package rhyme

import (
	"context"
	"strings"
	"unicode"

	"github.com/SuperSonicHub1/lyrics-analysis/internal/lyrics"
)

// Rhyme is one rhyming pair of line-final words. LineA always comes before
// LineB in the stanza.
type Rhyme struct {
	WordA  string
	LineA  lyrics.Line
	WordB  string
	LineB  lyrics.Line
	Suffix Suffix
}

// Pair returns the two rhyming words.
func (r Rhyme) Pair() [2]string {
	return [2]string{r.WordA, r.WordB}
}

type ending struct {
	line lyrics.Line
	word string
}

// StanzaRhymes compares the last word of every line against the last word of
// every later line. Internal rhymes are not considered.
func StanzaRhymes(ctx context.Context, d *Detector, stanza lyrics.Stanza) ([]Rhyme, error) {
	var endings []ending
	for _, line := range stanza {
		if word := LastWord(line.Clean); word != "" {
			endings = append(endings, ending{line: line, word: word})
		}
	}

	var rhymes []Rhyme
	for x := 0; x < len(endings); x++ {
		for y := x + 1; y < len(endings); y++ {
			a, b := endings[x], endings[y]
			suffix, err := d.Rhymes(ctx, a.word, b.word)
			if err != nil {
				return nil, err
			}
			if suffix == "" {
				continue
			}
			rhymes = append(rhymes, Rhyme{
				WordA:  a.word,
				LineA:  a.line,
				WordB:  b.word,
				LineB:  b.line,
				Suffix: suffix,
			})
		}
	}
	return rhymes, nil
}

// LastWord returns the final word of text, skipping trailing punctuation.
func LastWord(text string) string {
	fields := strings.Fields(text)
	for i := len(fields) - 1; i >= 0; i-- {
		word := strings.TrimFunc(fields[i], func(r rune) bool {
			return unicode.IsPunct(r) || unicode.IsSymbol(r)
		})
		if word != "" {
			return word
		}
	}
	return ""
}
