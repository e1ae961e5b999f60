package rhyme

import (
	"errors"
	"strings"
)

// Unrhymed marks a line that takes part in no rhyme.
const Unrhymed = '*'

var ErrTooManyRhymeGroups = errors.New("stanza has more than 26 rhyme groups")

// Structure encodes which of a stanza's n lines rhyme with which. Rhymes
// sharing a suffix form a group; groups get letters from A in the order they
// are first seen. A line in several groups keeps the later group's letter.
func Structure(rhymes []Rhyme, n int) (string, error) {
	var order []Suffix
	members := make(map[Suffix][]int)
	for _, r := range rhymes {
		if _, ok := members[r.Suffix]; !ok {
			order = append(order, r.Suffix)
		}
		members[r.Suffix] = append(members[r.Suffix], r.LineA.Index, r.LineB.Index)
	}
	if len(order) > 26 {
		return "", ErrTooManyRhymeGroups
	}

	out := []byte(strings.Repeat(string(Unrhymed), n))
	for g, suffix := range order {
		for _, index := range members[suffix] {
			if index >= 0 && index < n {
				out[index] = byte('A' + g)
			}
		}
	}
	return string(out), nil
}
