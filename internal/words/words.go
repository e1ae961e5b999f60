// Package words counts the content words of a stanza and buckets them into
// named categories.
package words

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
	"github.com/jdkato/prose/v2"

	"github.com/SuperSonicHub1/lyrics-analysis/internal/lyrics"
)

// Token is a word with its Penn Treebank part-of-speech tag.
type Token struct {
	Text string
	Tag  string
}

type Tagger interface {
	Tag(text string) ([]Token, error)
}

type Lemmatizer interface {
	Lemma(word string) string
}

// ProseTagger tags text with prose's averaged perceptron model.
type ProseTagger struct{}

func (ProseTagger) Tag(text string) ([]Token, error) {
	doc, err := prose.NewDocument(text,
		prose.WithSegmentation(false),
		prose.WithExtraction(false))
	if err != nil {
		return nil, fmt.Errorf("tagging %q: %w", text, err)
	}

	tokens := make([]Token, 0, len(doc.Tokens()))
	for _, tok := range doc.Tokens() {
		tokens = append(tokens, Token{Text: tok.Text, Tag: tok.Tag})
	}
	return tokens, nil
}

// NewLemmatizer loads the English golem dictionary.
func NewLemmatizer() (*golem.Lemmatizer, error) {
	l, err := golem.New(en.New())
	if err != nil {
		return nil, fmt.Errorf("loading lemmatizer: %w", err)
	}
	return l, nil
}

type Counter struct {
	Tagger     Tagger
	Lemmatizer Lemmatizer
}

// NewCounter returns a Counter backed by prose and golem.
func NewCounter() (*Counter, error) {
	l, err := NewLemmatizer()
	if err != nil {
		return nil, err
	}
	return &Counter{Tagger: ProseTagger{}, Lemmatizer: l}, nil
}

// Frequencies counts the verbs, adverbs and nouns of a stanza, ad-libs
// included, by lower-cased lemma.
func (c *Counter) Frequencies(stanza lyrics.Stanza) (map[string]int, error) {
	freqs := make(map[string]int)
	for _, line := range stanza {
		for _, text := range []string{line.Clean, line.Adlib} {
			if strings.TrimSpace(text) == "" {
				continue
			}
			tokens, err := c.Tagger.Tag(text)
			if err != nil {
				return nil, err
			}
			for _, tok := range tokens {
				if !contentTag(tok.Tag) {
					continue
				}
				freqs[c.Lemmatizer.Lemma(strings.ToLower(tok.Text))]++
			}
		}
	}
	return freqs, nil
}

// contentTag reports whether tag is a verb, adverb or noun tag. Punctuation
// tags like "``" are never content.
func contentTag(tag string) bool {
	if tag == "" {
		return false
	}
	for _, r := range tag {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	switch tag[0] {
	case 'V', 'R', 'N':
		return true
	}
	return false
}
