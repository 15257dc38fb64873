// Package styling resolves per-sub-element visual values from built-in
// defaults and caller overrides.
//
// A widget declares the complete set of its sub-elements as a Defaults table.
// Callers pass a Group of overrides: each key may be disabled (no value at
// all for that sub-element), absent (keep the default) or a partial value
// merged over the default. The whole group may also be disabled, which
// leaves every sub-element without a value.
//
// The same algorithm serves property maps (Props) and class tokens
// (Classes); only the merge function differs
package styling

type overrideKind int

const (
	overrideAbsent overrideKind = iota
	overrideDisabled
	overridePartial
)

// Override is the caller's value for a single sub-element
type Override[V any] struct {
	kind  overrideKind
	value V
}

// Disable suppresses every default for a sub-element
func Disable[V any]() Override[V] {
	return Override[V]{kind: overrideDisabled}
}

// Partial merges v over the sub-element's default
func Partial[V any](v V) Override[V] {
	return Override[V]{kind: overridePartial, value: v}
}

// IsDisabled reports whether the override suppresses the default
func (o Override[V]) IsDisabled() bool { return o.kind == overrideDisabled }

// IsAbsent reports whether the default should be used unchanged
func (o Override[V]) IsAbsent() bool { return o.kind == overrideAbsent }

// Value returns the partial value and whether there is one
func (o Override[V]) Value() (V, bool) {
	return o.value, o.kind == overridePartial
}

// Group is a caller override map for one group of sub-elements. The zero
// value overrides nothing
type Group[V any] struct {
	disabled bool
	entries  map[string]Override[V]
}

// DisabledGroup suppresses defaults for every sub-element in the group
func DisabledGroup[V any]() Group[V] {
	return Group[V]{disabled: true}
}

// Overrides builds a group from per-key overrides. Keys the defaults do not
// know about are ignored at resolve time
func Overrides[V any](entries map[string]Override[V]) Group[V] {
	g := Group[V]{entries: make(map[string]Override[V], len(entries))}
	for k, o := range entries {
		g.entries[k] = o
	}
	return g
}

// Disabled reports whether the whole group is disabled
func (g Group[V]) Disabled() bool { return g.disabled }

// Lookup returns the override for key; missing keys are absent
func (g Group[V]) Lookup(key string) Override[V] {
	if g.entries == nil {
		return Override[V]{}
	}
	return g.entries[key]
}

// With returns a copy of g with key set to o. A disabled group stays
// disabled
func (g Group[V]) With(key string, o Override[V]) Group[V] {
	if g.disabled {
		return g
	}
	out := Overrides(g.entries)
	out.entries[key] = o
	return out
}

// Value is a resolved leaf. OK is false when the sub-element ends up with no
// value at all
type Value[V any] struct {
	V  V
	OK bool
}

// Some wraps a defined value
func Some[V any](v V) Value[V] {
	return Value[V]{V: v, OK: true}
}

// None is an undefined value
func None[V any]() Value[V] {
	return Value[V]{}
}

// Defaults enumerates every sub-element of a group with its built-in value
type Defaults[V any] map[string]Value[V]

// Resolved maps every sub-element of a group to its final value
type Resolved[V any] map[string]Value[V]

// Get returns the value for key and whether it is defined
func (r Resolved[V]) Get(key string) (V, bool) {
	v := r[key]
	return v.V, v.OK
}

// Lookup returns the raw resolved leaf for key
func (r Resolved[V]) Lookup(key string) Value[V] {
	return r[key]
}

// AsGroup turns resolved values into overrides for a nested widget: each
// entry of keys maps a nested sub-element name to a key of r. Undefined
// values become absent so the nested widget keeps its own default
func (r Resolved[V]) AsGroup(keys map[string]string) Group[V] {
	entries := make(map[string]Override[V], len(keys))
	for nested, key := range keys {
		if v, ok := r.Get(key); ok {
			entries[nested] = Partial(v)
		}
	}
	return Overrides(entries)
}

// Merger combines a default with a caller value; fields of over win
type Merger[V any] func(base, over V) V

// Resolver applies one merge algorithm to override groups
type Resolver[V any] struct {
	merge Merger[V]
}

// NewResolver creates a resolver using merge for partial overrides
func NewResolver[V any](merge Merger[V]) Resolver[V] {
	return Resolver[V]{merge: merge}
}

// Resolve computes the final value of every sub-element in defaults. It has
// no side effects and must be called again whenever overrides may have
// changed
func (r Resolver[V]) Resolve(overrides Group[V], defaults Defaults[V]) Resolved[V] {
	out := make(Resolved[V], len(defaults))
	for key, def := range defaults {
		if overrides.disabled {
			out[key] = None[V]()
			continue
		}
		o := overrides.Lookup(key)
		if o.IsDisabled() {
			out[key] = None[V]()
			continue
		}
		v, ok := o.Value()
		if !ok {
			out[key] = def
			continue
		}
		// an undefined default merges as the zero value
		out[key] = Some(r.merge(def.V, v))
	}
	return out
}

var (
	styleResolver = NewResolver(MergeProps)
	classResolver = NewResolver(MergeClasses)
)

// StyleGroup is a group of visual property overrides
type StyleGroup = Group[Props]

// ClassGroup is a group of class token overrides
type ClassGroup = Group[Classes]

// ResolveStyles resolves visual property overrides against defaults
func ResolveStyles(overrides StyleGroup, defaults Defaults[Props]) Resolved[Props] {
	return styleResolver.Resolve(overrides, defaults)
}

// ResolveClasses resolves class token overrides against defaults
func ResolveClasses(overrides ClassGroup, defaults Defaults[Classes]) Resolved[Classes] {
	return classResolver.Resolve(overrides, defaults)
}
