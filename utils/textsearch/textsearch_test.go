package textsearch_test

import (
	"testing"

	"github.com/prettyirrelevant/ecx-property-hub-hackathon/utils/textsearch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLexemes(t *testing.T) {
	assert.Equal(t, textsearch.Lexemes("two bedroom lagos"), textsearch.Lexemes("The Two Bedrooms, in LAGOS!"))
	assert.Empty(t, textsearch.Lexemes("the and of"))
	assert.Empty(t, textsearch.Lexemes("  ,.;  "))
}

func TestBuild_WeightClasses(t *testing.T) {
	v := textsearch.Build("Two Bedroom Flat", "Spacious flat close to the beach")

	flat := textsearch.Lexemes("flat")[0]
	two := textsearch.Lexemes("two")[0]
	beach := textsearch.Lexemes("beach")[0]

	assert.Equal(t, textsearch.Position{A: 1, B: 1}, v[flat])
	assert.Equal(t, textsearch.Position{A: 1}, v[two])
	assert.Equal(t, textsearch.Position{B: 1}, v[beach])
}

func TestRelevance_NameOutweighsDescription(t *testing.T) {
	q := textsearch.ParseQuery("garden")
	inName := textsearch.Build("Garden Cottage", "Quiet street")
	inDescription := textsearch.Build("Cottage", "Lovely garden and garden shed")
	nowhere := textsearch.Build("Cottage", "Quiet street")

	assert.Greater(t, textsearch.Relevance(inName, q), textsearch.Relevance(inDescription, q))
	assert.Greater(t, textsearch.Relevance(inDescription, q), 0.0)
	assert.Zero(t, textsearch.Relevance(nowhere, q))
}

func TestRelevance_RequiresEveryLexeme(t *testing.T) {
	v := textsearch.Build("Two Bedroom Flat", "")
	assert.Zero(t, textsearch.Relevance(v, textsearch.ParseQuery("two bedroom duplex")))
	assert.Greater(t, textsearch.Relevance(v, textsearch.ParseQuery("two bedroom")), 0.0)
}

func TestSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, textsearch.Similarity("Luxury Studio", "luxury studio"), 1e-9)
	assert.InDelta(t, 4.0/11.0, textsearch.Similarity("word", "two words"), 1e-9)
	assert.Zero(t, textsearch.Similarity("abc", "xyz"))
	assert.Zero(t, textsearch.Similarity("", "xyz"))
}

func TestRank(t *testing.T) {
	docs := []textsearch.Document{
		{ID: 1, Name: "Luxury Studio", Vector: textsearch.Build("Luxury Studio", "A studio apartment in the city centre")},
		{ID: 2, Name: "Two Bedroom Flat", Vector: textsearch.Build("Two Bedroom Flat", "Bright flat with a balcony")},
		{ID: 3, Name: "Two Bedrom Flat", Vector: textsearch.Build("Two Bedrom Flat", "Typo in the name")},
		{ID: 4, Name: "Family House", Vector: textsearch.Build("Family House", "Two bedroom house with garden")},
	}

	got := textsearch.Rank(textsearch.ParseQuery("two bedroom"), docs)

	require.Len(t, got, 2)
	assert.Equal(t, uint64(2), got[0].ID)
	assert.Equal(t, uint64(4), got[1].ID)
	assert.Greater(t, got[0].Score, got[1].Score)
	for _, r := range got {
		assert.InDelta(t, r.Relevance+r.Similarity, r.Score, 1e-9)
	}
}

func TestRank_TieBreaksOnID(t *testing.T) {
	v := textsearch.Build("Garden Flat", "")
	docs := []textsearch.Document{
		{ID: 9, Name: "Garden Flat", Vector: v},
		{ID: 3, Name: "Garden Flat", Vector: v},
		{ID: 5, Name: "Garden Flat", Vector: v},
	}

	got := textsearch.Rank(textsearch.ParseQuery("garden"), docs)

	require.Len(t, got, 3)
	assert.Equal(t, []uint64{3, 5, 9}, []uint64{got[0].ID, got[1].ID, got[2].ID})
}

func TestRank_EmptyQuery(t *testing.T) {
	docs := []textsearch.Document{{ID: 1, Name: "The Flat", Vector: textsearch.Build("The Flat", "")}}

	assert.Empty(t, textsearch.Rank(textsearch.ParseQuery(""), docs))
	assert.Empty(t, textsearch.Rank(textsearch.ParseQuery("   "), docs))
	assert.Empty(t, textsearch.Rank(textsearch.ParseQuery("the"), docs))
}

func TestVector_ValueScan(t *testing.T) {
	v := textsearch.Build("Two Bedroom Flat", "flat")
	raw, err := v.Value()
	require.NoError(t, err)

	var got textsearch.Vector
	require.NoError(t, got.Scan([]byte(raw.(string))))
	assert.Equal(t, v, got)

	require.NoError(t, got.Scan(nil))
	assert.Empty(t, got)
	assert.Error(t, got.Scan(42))
}
