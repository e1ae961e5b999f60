package lyrics

import (
	"regexp"
	"strings"
	"time"
)

var adlibPattern = regexp.MustCompile(`\((.*)\)`)

// TimedLine is one line of synced lyrics as delivered by the lyric API.
type TimedLine struct {
	Start time.Duration
	Text  string
}

// Line is a lyric line positioned within its stanza.
type Line struct {
	Index int
	// Text is the line as written, ad-lib included.
	Text string
	// Clean is Text without its parenthesized ad-lib.
	Clean string
	Adlib string
}

type Stanza []Line

func NewLine(index int, text string) Line {
	line := Line{Index: index, Text: text}

	match := adlibPattern.FindStringSubmatch(text)
	if match == nil {
		line.Clean = strings.TrimSpace(text)
		return line
	}

	line.Adlib = strings.TrimSpace(match[1])
	if line.Adlib == "" {
		line.Clean = strings.TrimSpace(text)
		return line
	}
	line.Clean = strings.TrimSpace(strings.ReplaceAll(text, "("+match[1]+")", ""))
	return line
}

// HasAdlib reports whether the line carries a non-empty ad-lib.
func (l Line) HasAdlib() bool {
	return l.Adlib != ""
}

// Segment splits a song into stanzas wherever the gap to the next line is
// more than 1.5 times the song's mean gap. A single outlier gap will split an
// otherwise coherent stanza.
func Segment(lines []TimedLine) []Stanza {
	switch len(lines) {
	case 0:
		return nil
	case 1:
		return []Stanza{{NewLine(0, lines[0].Text)}}
	}

	var total time.Duration
	for i := 1; i < len(lines); i++ {
		total += lines[i].Start - lines[i-1].Start
	}
	threshold := float64(total) / float64(len(lines)-1) * 1.5

	var stanzas []Stanza
	var current Stanza
	for i, tl := range lines {
		current = append(current, NewLine(len(current), tl.Text))

		if i == len(lines)-1 {
			break
		}
		if float64(lines[i+1].Start-tl.Start) > threshold {
			stanzas = append(stanzas, current)
			current = nil
		}
	}
	return append(stanzas, current)
}

// Texts returns the clean text of every line in the stanza.
func (s Stanza) Texts() []string {
	texts := make([]string, len(s))
	for i, line := range s {
		texts[i] = line.Clean
	}
	return texts
}
