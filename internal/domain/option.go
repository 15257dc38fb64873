package domain

import "strings"

// Option is one selectable entry. Options are identified by their position in
// the list they were supplied in; Value is opaque and may repeat
type Option struct {
	Label   string
	Value   any
	Keyword Keyword
}

type keywordKind int

const (
	keywordNone keywordKind = iota
	keywordLiteral
	keywordPredicate
)

// Keyword decides whether an option survives search filtering. The zero
// value has no keyword and never matches, which is not the same thing as
// Literal("")
type Keyword struct {
	kind      keywordKind
	literal   string
	predicate func(query string) bool
}

// Literal returns a keyword matched by case-insensitive substring containment
func Literal(s string) Keyword {
	return Keyword{kind: keywordLiteral, literal: s}
}

// Predicate returns a keyword that delegates matching to fn. fn receives the
// lowercased query and its result is used as is
func Predicate(fn func(query string) bool) Keyword {
	if fn == nil {
		return Keyword{}
	}
	return Keyword{kind: keywordPredicate, predicate: fn}
}

// IsSet reports whether the keyword is a literal or a predicate
func (k Keyword) IsSet() bool {
	return k.kind != keywordNone
}

// IsPredicate reports whether matching is delegated to a function
func (k Keyword) IsPredicate() bool {
	return k.kind == keywordPredicate
}

// Text returns the literal keyword, or "" for predicates and unset keywords
func (k Keyword) Text() string {
	return k.literal
}

// Matches reports whether the keyword accepts query. The query is lowercased
// here so callers can pass raw input
func (k Keyword) Matches(query string) bool {
	q := strings.ToLower(query)
	switch k.kind {
	case keywordLiteral:
		return strings.Contains(strings.ToLower(k.literal), q)
	case keywordPredicate:
		return k.predicate(q)
	default:
		return false
	}
}

// Filter returns the options accepted by match, keeping their original order
func Filter(options []Option, match func(Option) bool) []Option {
	out := make([]Option, 0, len(options))
	for _, opt := range options {
		if match(opt) {
			out = append(out, opt)
		}
	}
	return out
}
