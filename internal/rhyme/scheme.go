package rhyme

import "strings"

// Scheme names a rhyme pattern. SchemeNone means the structure matched no
// pattern.
type Scheme string

const (
	SchemeNone        Scheme = ""
	SchemeMonorhyme   Scheme = "monorhyme"
	SchemeEnclosed    Scheme = "enclosed"
	SchemeAlternating Scheme = "alternating"
	SchemeClumped     Scheme = "clumped"
)

// Schemes lists the named schemes in classification order.
var Schemes = []Scheme{SchemeMonorhyme, SchemeEnclosed, SchemeAlternating, SchemeClumped}

func (s Scheme) String() string {
	if s == SchemeNone {
		return "none"
	}
	return string(s)
}

type rule struct {
	scheme Scheme
	match  func(structure string) bool
}

// rules are tried in order and the first match decides. Window rules look at
// every run of four lines, so a stanza mixing patterns gets only one label.
// Only enclosed needs two distinct letters; a run like AAAA is alternating.
var rules = []rule{
	{SchemeNone, unrhymed},
	{SchemeMonorhyme, monorhyme},
	{SchemeEnclosed, window(func(w, x, y, z byte) bool { return w == z && x == y && w != x })},
	{SchemeAlternating, window(func(w, x, y, z byte) bool { return w == y && x == z })},
	{SchemeClumped, window(func(w, x, y, z byte) bool { return w == x && y == z })},
}

// Classify names the rhyme scheme of a structure string.
func Classify(structure string) Scheme {
	for _, r := range rules {
		if r.match(structure) {
			return r.scheme
		}
	}
	return SchemeNone
}

func unrhymed(structure string) bool {
	return strings.Trim(structure, string(Unrhymed)) == ""
}

func monorhyme(structure string) bool {
	return structure[0] != Unrhymed && strings.Count(structure, structure[:1]) == len(structure)
}

func window(pattern func(w, x, y, z byte) bool) func(string) bool {
	return func(structure string) bool {
		for i := 0; i+4 <= len(structure); i++ {
			s := structure[i : i+4]
			if strings.IndexByte(s, Unrhymed) >= 0 {
				continue
			}
			if pattern(s[0], s[1], s[2], s[3]) {
				return true
			}
		}
		return false
	}
}
