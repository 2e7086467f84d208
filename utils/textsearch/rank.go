package textsearch

import (
	"math"
	"sort"
	"strings"
)

// Query is a parsed search request.
type Query struct {
	Raw     string
	Lexemes []string
}

// ParseQuery extracts the distinct lexemes of text.
func ParseQuery(text string) Query {
	q := Query{Raw: strings.TrimSpace(text)}
	seen := map[string]struct{}{}
	for _, lx := range Lexemes(q.Raw) {
		if _, dup := seen[lx]; dup {
			continue
		}
		seen[lx] = struct{}{}
		q.Lexemes = append(q.Lexemes, lx)
	}
	return q
}

// Empty reports whether the query has nothing to match on.
func (q Query) Empty() bool {
	return len(q.Lexemes) == 0
}

// Relevance scores v against q. It is zero unless v holds every query
// lexeme. Each lexeme contributes 1 - Π(1 - w) over its occurrences, so a
// name hit outweighs any number of description hits; the result is the
// mean over lexemes, in [0, 1].
func Relevance(v Vector, q Query) float64 {
	if !v.ContainsAll(q.Lexemes) {
		return 0
	}
	var total float64
	for _, lx := range q.Lexemes {
		p := v[lx]
		miss := math.Pow(1-WeightA, float64(p.A)) * math.Pow(1-WeightB, float64(p.B))
		total += 1 - miss
	}
	return total / float64(len(q.Lexemes))
}

// Document is one rankable listing.
type Document struct {
	ID     uint64
	Name   string
	Vector Vector
}

type Result struct {
	ID         uint64
	Relevance  float64
	Similarity float64
	Score      float64
}

// Rank scores docs against q and returns the matching ones ordered by
// score descending, then id ascending. Documents with zero relevance are
// dropped however similar their name is.
func Rank(q Query, docs []Document) []Result {
	if q.Empty() {
		return []Result{}
	}
	results := make([]Result, 0, len(docs))
	for _, d := range docs {
		rel := Relevance(d.Vector, q)
		if rel == 0 {
			continue
		}
		sim := Similarity(q.Raw, d.Name)
		results = append(results, Result{
			ID:         d.ID,
			Relevance:  rel,
			Similarity: sim,
			Score:      rel + sim,
		})
	}
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].ID < results[j].ID
	})
	return results
}
