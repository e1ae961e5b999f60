// Package rhyme finds rhyming line endings within a stanza and labels the
// stanza's rhyme scheme.
package rhyme

import (
	"context"
	"fmt"
	"strings"
	"unicode"
)

// Phonemizer turns words into phonemic transcriptions, one per word, in order.
type Phonemizer interface {
	Phonemize(ctx context.Context, words ...string) ([]string, error)
}

// Suffix is the trailing phonetic material two words share, in forward
// order. The empty Suffix means no rhyme.
type Suffix string

// Units returns the suffix split into phonetic units.
func (s Suffix) Units() []string {
	units := make([]string, 0, len(s))
	for _, r := range s {
		units = append(units, string(r))
	}
	return units
}

// syllabicMark is the IPA combining vertical line below, which marks a
// consonant as syllabic.
const syllabicMark = '\u0329'

var vowels = map[rune]bool{}

func init() {
	for _, r := range "aeiouyæɐɑɒɔəɘɚɛɜɝɞɤɨɪɯɵɶʉʊʌʏøœᵻ" {
		vowels[r] = true
	}
}

// Detector decides whether two words rhyme from their transcriptions.
type Detector struct {
	Phonemizer Phonemizer
}

// NewDetector returns a Detector backed by p.
func NewDetector(p Phonemizer) *Detector {
	return &Detector{Phonemizer: p}
}

// Rhymes reports the suffix a and b share when their transcriptions end in
// the same run of sounds and that run holds at least one syllable.
func (d *Detector) Rhymes(ctx context.Context, a, b string) (Suffix, error) {
	phones, err := d.Phonemizer.Phonemize(ctx, a, b)
	if err != nil {
		return "", fmt.Errorf("phonemizing %q and %q: %w", a, b, err)
	}
	if len(phones) != 2 {
		return "", fmt.Errorf("phonemizing %q and %q: got %d transcriptions", a, b, len(phones))
	}

	first := reversed(units(phones[0]))
	second := reversed(units(phones[1]))

	i, j, size := longestMatch(first, second)
	if size == 0 || i != 0 || j != 0 {
		return "", nil
	}

	suffix := reversed(first[:size])
	if !syllabic(suffix) {
		return "", nil
	}
	return Suffix(suffix), nil
}

// units drops whitespace from a transcription and returns the rest as runes.
func units(transcription string) []rune {
	return []rune(strings.Join(strings.Fields(transcription), ""))
}

func reversed(rs []rune) []rune {
	out := make([]rune, len(rs))
	for i, r := range rs {
		out[len(rs)-1-i] = r
	}
	return out
}

// longestMatch finds the longest common contiguous run of a and b. Ties go to
// the run starting earliest in a, then earliest in b.
func longestMatch(a, b []rune) (i, j, size int) {
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for x := range a {
		for y := range b {
			if a[x] != b[y] {
				cur[y+1] = 0
				continue
			}
			cur[y+1] = prev[y] + 1
			if k := cur[y+1]; k > size {
				i, j, size = x-k+1, y-k+1, k
			}
		}
		prev, cur = cur, prev
	}
	return i, j, size
}

func syllabic(rs []rune) bool {
	for _, r := range rs {
		if r == syllabicMark || vowels[unicode.ToLower(r)] {
			return true
		}
	}
	return false
}
