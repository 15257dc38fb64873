package styling

import "strings"

// Classes is a space separated list of class names
type Classes string

// Tokens splits the list into class names
func (c Classes) Tokens() []string {
	return strings.Fields(string(c))
}

// MergeClasses appends the tokens of over to base, dropping repeats. The
// first occurrence of a token keeps its position
func MergeClasses(base, over Classes) Classes {
	seen := make(map[string]bool)
	var out []string
	for _, tok := range append(base.Tokens(), over.Tokens()...) {
		if seen[tok] {
			continue
		}
		seen[tok] = true
		out = append(out, tok)
	}
	return Classes(strings.Join(out, " "))
}

// Sheet maps class names to the properties they apply
type Sheet map[string]Props

// Compose returns the effective properties of a sub-element: the rules of
// each class in token order, then the inline properties on top. Unknown
// classes contribute nothing
func (s Sheet) Compose(classes Value[Classes], inline Value[Props]) Props {
	var out Props
	if classes.OK {
		for _, tok := range classes.V.Tokens() {
			if rule, ok := s[tok]; ok {
				out = MergeProps(out, rule)
			}
		}
	}
	if inline.OK {
		out = MergeProps(out, inline.V)
	}
	return out
}

// Validate checks every rule in the sheet
func (s Sheet) Validate() error {
	for _, name := range sortedKeys(s) {
		if err := s[name].Validate(); err != nil {
			return &RuleError{Class: name, Err: err}
		}
	}
	return nil
}

// RuleError reports an invalid stylesheet rule
type RuleError struct {
	Class string
	Err   error
}

func (e *RuleError) Error() string {
	return "class " + e.Class + ": " + e.Err.Error()
}

func (e *RuleError) Unwrap() error { return e.Err }
