package models

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// ValueKind tags the variant held by a Value.
type ValueKind uint8

const (
	KindNull ValueKind = iota
	KindBool
	KindNumber
	KindString
	KindList
	KindMap
)

// String returns the kind name, used in conflict descriptions.
func (k ValueKind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindList:
		return "list"
	case KindMap:
		return "map"
	}
	return "unknown"
}

// Value is a schemaless JSON-like payload tree:
// null | bool | number | string | list | map. The engine moves and diffs
// these trees but never interprets their contents.
//
// The zero Value is null.
type Value struct {
	Str    string
	List   []Value
	Map    map[string]Value
	Number float64
	Kind   ValueKind
	Bool   bool
}

// Null возвращает null-значение.
func Null() Value { return Value{Kind: KindNull} }

// BoolValue wraps a bool.
func BoolValue(b bool) Value { return Value{Kind: KindBool, Bool: b} }

// NumberValue wraps a number.
func NumberValue(n float64) Value { return Value{Kind: KindNumber, Number: n} }

// StringValue wraps a string.
func StringValue(s string) Value { return Value{Kind: KindString, Str: s} }

// ListValue wraps a list of values.
func ListValue(items ...Value) Value { return Value{Kind: KindList, List: items} }

// MapValue wraps a key-value tree.
func MapValue(m map[string]Value) Value {
	if m == nil {
		m = make(map[string]Value)
	}
	return Value{Kind: KindMap, Map: m}
}

// IsNull reports whether the value is null.
func (v Value) IsNull() bool { return v.Kind == KindNull }

// SortedKeys returns the map keys in lexicographic order.
// Iterating in sorted order keeps tree walks deterministic.
func (v Value) SortedKeys() []string {
	if v.Kind != KindMap {
		return nil
	}
	keys := make([]string, 0, len(v.Map))
	for k := range v.Map {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Equal reports deep equality of two value trees.
func (v Value) Equal(other Value) bool {
	if v.Kind != other.Kind {
		return false
	}
	switch v.Kind {
	case KindNull:
		return true
	case KindBool:
		return v.Bool == other.Bool
	case KindNumber:
		return v.Number == other.Number
	case KindString:
		return v.Str == other.Str
	case KindList:
		if len(v.List) != len(other.List) {
			return false
		}
		for i := range v.List {
			if !v.List[i].Equal(other.List[i]) {
				return false
			}
		}
		return true
	case KindMap:
		if len(v.Map) != len(other.Map) {
			return false
		}
		for k, val := range v.Map {
			otherVal, ok := other.Map[k]
			if !ok || !val.Equal(otherVal) {
				return false
			}
		}
		return true
	}
	return false
}

// Clone создает глубокую копию дерева.
func (v Value) Clone() Value {
	switch v.Kind {
	case KindList:
		list := make([]Value, len(v.List))
		for i := range v.List {
			list[i] = v.List[i].Clone()
		}
		return Value{Kind: KindList, List: list}
	case KindMap:
		m := make(map[string]Value, len(v.Map))
		for k, val := range v.Map {
			m[k] = val.Clone()
		}
		return Value{Kind: KindMap, Map: m}
	default:
		return v
	}
}

// Get resolves a dotted path ("address.city") into the tree.
// An empty path resolves to the value itself.
func (v Value) Get(path string) (Value, bool) {
	if path == "" {
		return v, true
	}
	current := v
	for _, seg := range strings.Split(path, ".") {
		if current.Kind != KindMap {
			return Value{}, false
		}
		next, ok := current.Map[seg]
		if !ok {
			return Value{}, false
		}
		current = next
	}
	return current, true
}

// Set writes val at the dotted path, creating intermediate maps as needed,
// and returns the updated tree. The receiver is not modified.
// An empty path replaces the whole tree.
func (v Value) Set(path string, val Value) Value {
	if path == "" {
		return val.Clone()
	}
	root := v.Clone()
	if root.Kind != KindMap {
		root = MapValue(nil)
	}

	segs := strings.Split(path, ".")
	current := root
	for _, seg := range segs[:len(segs)-1] {
		child, ok := current.Map[seg]
		if !ok || child.Kind != KindMap {
			child = MapValue(nil)
		}
		current.Map[seg] = child
		current = child
	}
	current.Map[segs[len(segs)-1]] = val.Clone()
	return root
}

// MarshalJSON renders the tree as natural JSON.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.toAny())
}

// UnmarshalJSON parses natural JSON into the tagged tree.
func (v *Value) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := fromAny(raw)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

func (v Value) toAny() any {
	switch v.Kind {
	case KindNull:
		return nil
	case KindBool:
		return v.Bool
	case KindNumber:
		return v.Number
	case KindString:
		return v.Str
	case KindList:
		list := make([]any, len(v.List))
		for i := range v.List {
			list[i] = v.List[i].toAny()
		}
		return list
	case KindMap:
		m := make(map[string]any, len(v.Map))
		for k, val := range v.Map {
			m[k] = val.toAny()
		}
		return m
	}
	return nil
}

func fromAny(raw any) (Value, error) {
	switch val := raw.(type) {
	case nil:
		return Null(), nil
	case bool:
		return BoolValue(val), nil
	case float64:
		return NumberValue(val), nil
	case string:
		return StringValue(val), nil
	case []any:
		list := make([]Value, len(val))
		for i, item := range val {
			parsed, err := fromAny(item)
			if err != nil {
				return Value{}, err
			}
			list[i] = parsed
		}
		return Value{Kind: KindList, List: list}, nil
	case map[string]any:
		m := make(map[string]Value, len(val))
		for k, item := range val {
			parsed, err := fromAny(item)
			if err != nil {
				return Value{}, err
			}
			m[k] = parsed
		}
		return Value{Kind: KindMap, Map: m}, nil
	}
	return Value{}, fmt.Errorf("unsupported payload value type %T", raw)
}
