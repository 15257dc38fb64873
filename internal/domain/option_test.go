package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeywordLiteralMatching(t *testing.T) {
	kw := Literal("Banana")

	assert.True(t, kw.Matches("AN"), "substring match should ignore case")
	assert.True(t, kw.Matches("nana"))
	assert.True(t, kw.Matches(""), "empty query is contained in every literal")
	assert.False(t, kw.Matches("xyz"))
	assert.False(t, kw.Matches("bananas"))
}

func TestKeywordEmptyLiteralIsNotUnset(t *testing.T) {
	empty := Literal("")
	var unset Keyword

	assert.True(t, empty.IsSet())
	assert.False(t, unset.IsSet())

	assert.True(t, empty.Matches(""))
	assert.False(t, empty.Matches("a"))
	assert.False(t, unset.Matches(""), "an option without keyword never matches")
	assert.False(t, unset.Matches("a"))
}

func TestKeywordPredicateGetsLowercasedQuery(t *testing.T) {
	var seen []string
	kw := Predicate(func(q string) bool {
		seen = append(seen, q)
		return q == "hello"
	})

	assert.True(t, kw.IsPredicate())
	assert.True(t, kw.Matches("HeLLo"))
	assert.False(t, kw.Matches("world"))
	assert.Equal(t, []string{"hello", "world"}, seen)
}

func TestPredicateNilIsUnset(t *testing.T) {
	kw := Predicate(nil)
	assert.False(t, kw.IsSet())
	assert.False(t, kw.Matches(""))
}

func TestFilterKeepsOrderAndDropsUnkeyed(t *testing.T) {
	options := []Option{
		{Label: "Cherry", Value: 3, Keyword: Literal("cherry")},
		{Label: "No keyword", Value: 0},
		{Label: "Apple", Value: 1, Keyword: Literal("apple")},
		{Label: "Grape", Value: 2, Keyword: Predicate(func(q string) bool { return true })},
	}

	for _, query := range []string{"", "e", "zzz"} {
		got := Filter(options, func(o Option) bool { return o.Keyword.Matches(query) })
		for _, o := range got {
			assert.NotEqual(t, "No keyword", o.Label, "query %q", query)
		}
	}

	got := Filter(options, func(o Option) bool { return o.Keyword.Matches("e") })
	require.Len(t, got, 3)
	assert.Equal(t, "Cherry", got[0].Label)
	assert.Equal(t, "Apple", got[1].Label)
	assert.Equal(t, "Grape", got[2].Label)
}
