package a2ui

import (
	"encoding/json"
	"sort"
)

// Value is the closed union of JSON value kinds used throughout the
// protocol: [Null], [Bool], [Number], [String], [Array], and [Object].
// A nil Value is treated as Null by every function in this module.
//
// Data-model trees, component properties, and message contents are built
// exclusively from this union; traversal code switches exhaustively on the
// concrete type instead of casting through any.
type Value interface {
	isValue()
}

// Null is the JSON null value.
type Null struct{}

// Bool is a JSON boolean.
type Bool bool

// Number is a JSON number. All numeric protocol values are carried as
// float64, matching encoding/json's default decoding.
type Number float64

// String is a JSON string.
type String string

// Array is an ordered JSON array.
type Array []Value

// Object is a string-keyed JSON object. Insertion order is not preserved.
type Object map[string]Value

func (Null) isValue()   {}
func (Bool) isValue()   {}
func (Number) isValue() {}
func (String) isValue() {}
func (Array) isValue()  {}
func (Object) isValue() {}

// FromAny converts a decoded JSON value (the shapes produced by
// encoding/json into any) to a Value. Unrecognized types become Null.
func FromAny(x any) Value {
	switch v := x.(type) {
	case nil:
		return Null{}
	case Value:
		return v
	case bool:
		return Bool(v)
	case float64:
		return Number(v)
	case float32:
		return Number(v)
	case int:
		return Number(v)
	case int64:
		return Number(v)
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return Null{}
		}
		return Number(f)
	case string:
		return String(v)
	case []any:
		arr := make(Array, len(v))
		for i, item := range v {
			arr[i] = FromAny(item)
		}
		return arr
	case map[string]any:
		obj := make(Object, len(v))
		for k, item := range v {
			obj[k] = FromAny(item)
		}
		return obj
	default:
		return Null{}
	}
}

// ToAny converts a Value back to the any shapes used by encoding/json.
func ToAny(v Value) any {
	switch v := v.(type) {
	case nil, Null:
		return nil
	case Bool:
		return bool(v)
	case Number:
		return float64(v)
	case String:
		return string(v)
	case Array:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = ToAny(item)
		}
		return out
	case Object:
		out := make(map[string]any, len(v))
		for k, item := range v {
			out[k] = ToAny(item)
		}
		return out
	default:
		return nil
	}
}

// AsString returns the string content of v and true when v is a String.
func AsString(v Value) (string, bool) {
	s, ok := v.(String)
	return string(s), ok
}

// AsNumber returns the numeric content of v and true when v is a Number.
func AsNumber(v Value) (float64, bool) {
	n, ok := v.(Number)
	return float64(n), ok
}

// AsBool returns the boolean content of v and true when v is a Bool.
func AsBool(v Value) (bool, bool) {
	b, ok := v.(Bool)
	return bool(b), ok
}

// AsArray returns v as an Array and true when v is an Array.
func AsArray(v Value) (Array, bool) {
	a, ok := v.(Array)
	return a, ok
}

// AsObject returns v as an Object and true when v is an Object.
func AsObject(v Value) (Object, bool) {
	o, ok := v.(Object)
	return o, ok
}

// IsNull reports whether v is nil or Null.
func IsNull(v Value) bool {
	if v == nil {
		return true
	}
	_, ok := v.(Null)
	return ok
}

// Equal reports deep equality of two values. Nil and Null compare equal.
func Equal(a, b Value) bool {
	if IsNull(a) || IsNull(b) {
		return IsNull(a) && IsNull(b)
	}
	switch av := a.(type) {
	case Bool:
		bv, ok := b.(Bool)
		return ok && av == bv
	case Number:
		bv, ok := b.(Number)
		return ok && av == bv
	case String:
		bv, ok := b.(String)
		return ok && av == bv
	case Array:
		bv, ok := b.(Array)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !Equal(av[i], bv[i]) {
				return false
			}
		}
		return true
	case Object:
		bv, ok := b.(Object)
		if !ok || len(av) != len(bv) {
			return false
		}
		for k, v := range av {
			other, present := bv[k]
			if !present || !Equal(v, other) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Clone returns a deep copy of v. Scalars are returned as-is.
func Clone(v Value) Value {
	switch v := v.(type) {
	case Array:
		out := make(Array, len(v))
		for i, item := range v {
			out[i] = Clone(item)
		}
		return out
	case Object:
		out := make(Object, len(v))
		for k, item := range v {
			out[k] = Clone(item)
		}
		return out
	default:
		return v
	}
}

// MarshalValue encodes a Value as JSON.
func MarshalValue(v Value) ([]byte, error) {
	return json.Marshal(ToAny(v))
}

// UnmarshalValue decodes JSON into a Value.
func UnmarshalValue(data []byte) (Value, error) {
	var x any
	if err := json.Unmarshal(data, &x); err != nil {
		return nil, err
	}
	return FromAny(x), nil
}

// sortedKeys returns the keys of an Object in lexical order.
func sortedKeys(o Object) []string {
	keys := make([]string, 0, len(o))
	for k := range o {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
