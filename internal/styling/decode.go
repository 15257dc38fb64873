package styling

import (
	"fmt"
	"sort"
)

// DecodeStyleGroup builds a style override group from a value decoded from
// TOML (or any map[string]any tree):
//
//	false          whole group disabled
//	true, nil      no overrides
//	table          per key: false disables, true/nil is absent,
//	               a table is a partial property map
func DecodeStyleGroup(raw any) (StyleGroup, error) {
	return decodeGroup(raw, func(key string, v any) (Props, error) {
		table, ok := v.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("styles.%s: expected table or false, got %T", key, v)
		}
		props := make(Props, len(table))
		for name, val := range table {
			s, err := scalarString(val)
			if err != nil {
				return nil, fmt.Errorf("styles.%s.%s: %w", key, name, err)
			}
			props[name] = s
		}
		if err := props.Validate(); err != nil {
			return nil, fmt.Errorf("styles.%s: %w", key, err)
		}
		return props, nil
	})
}

// DecodeClassGroup builds a class override group. Leaf values are class
// strings; false and true behave as in DecodeStyleGroup
func DecodeClassGroup(raw any) (ClassGroup, error) {
	return decodeGroup(raw, func(key string, v any) (Classes, error) {
		s, ok := v.(string)
		if !ok {
			return "", fmt.Errorf("classes.%s: expected string or false, got %T", key, v)
		}
		return Classes(s), nil
	})
}

// DecodeSheet builds a stylesheet from a table of class rules
func DecodeSheet(raw any) (Sheet, error) {
	if raw == nil {
		return Sheet{}, nil
	}
	table, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("sheet: expected table, got %T", raw)
	}
	sheet := make(Sheet, len(table))
	for _, name := range sortedKeys(table) {
		v := table[name]
		rule, ok := v.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("sheet.%s: expected table, got %T", name, v)
		}
		props := make(Props, len(rule))
		for prop, val := range rule {
			s, err := scalarString(val)
			if err != nil {
				return nil, fmt.Errorf("sheet.%s.%s: %w", name, prop, err)
			}
			props[prop] = s
		}
		sheet[name] = props
	}
	if err := sheet.Validate(); err != nil {
		return nil, fmt.Errorf("sheet: %w", err)
	}
	return sheet, nil
}

func decodeGroup[V any](raw any, leaf func(key string, v any) (V, error)) (Group[V], error) {
	switch v := raw.(type) {
	case nil:
		return Group[V]{}, nil
	case bool:
		if !v {
			return DisabledGroup[V](), nil
		}
		return Group[V]{}, nil
	case map[string]any:
		entries := make(map[string]Override[V], len(v))
		for _, key := range sortedKeys(v) {
			switch val := v[key].(type) {
			case nil:
				continue
			case bool:
				if !val {
					entries[key] = Disable[V]()
				}
			default:
				leafValue, err := leaf(key, val)
				if err != nil {
					return Group[V]{}, err
				}
				entries[key] = Partial(leafValue)
			}
		}
		return Overrides(entries), nil
	default:
		return Group[V]{}, fmt.Errorf("expected table or false, got %T", raw)
	}
}

func scalarString(v any) (string, error) {
	switch v := v.(type) {
	case string:
		return v, nil
	case bool, int, int64, float64:
		return fmt.Sprint(v), nil
	default:
		return "", fmt.Errorf("unsupported value type %T", v)
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
