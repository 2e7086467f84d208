// Package textsearch implements the weighted text index and ranking used to
// search listings: stemmed lexemes with per-field weight classes, plus
// trigram similarity on the listing name.
package textsearch

import (
	"strings"
	"unicode"

	"github.com/kljensen/snowball/english"
)

var stopWords = map[string]struct{}{}

func init() {
	for _, w := range strings.Fields(`a about above after again against all am an and any are as at
		be because been before being below between both but by can could did do does doing down
		during each few for from further had has have having he her here hers herself him himself
		his how i if in into is it its itself just me more most my myself no nor not now of off on
		once only or other our ours ourselves out over own same she should so some such than that
		the their theirs them themselves then there these they this those through to too under
		until up very was we were what when where which while who whom why will with you your
		yours yourself yourselves`) {
		stopWords[w] = struct{}{}
	}
}

// words splits text into lower-cased runs of letters and digits.
func words(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// Lexemes returns the stemmed, stop-word free tokens of text in order of
// appearance. Duplicates are kept.
func Lexemes(text string) []string {
	ws := words(text)
	out := make([]string, 0, len(ws))
	for _, w := range ws {
		if _, stop := stopWords[w]; stop {
			continue
		}
		out = append(out, english.Stem(w, false))
	}
	return out
}
