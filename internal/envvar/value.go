package envvar

import "encoding/json"

// Value is the result of resolving a Var: either a present string, possibly
// empty, or the absence marker. The zero Value is absent.
type Value struct {
	val     string
	present bool
}

// Present wraps a resolved string.
func Present(s string) Value {
	return Value{val: s, present: true}
}

// Absent returns the marker for "no value", distinct from the empty string.
func Absent() Value {
	return Value{}
}

// IsPresent reports whether the value carries a string.
func (v Value) IsPresent() bool {
	return v.present
}

// String returns the carried string, or the empty string when absent.
func (v Value) String() string {
	return v.val
}

// Or returns the carried string, or fallback when the value is absent.
func (v Value) Or(fallback string) string {
	if v.present {
		return v.val
	}
	return fallback
}

// MarshalJSON renders absent values as null so consumers can distinguish an
// unset variable from one set to the empty string.
func (v Value) MarshalJSON() ([]byte, error) {
	if !v.present {
		return []byte("null"), nil
	}
	return json.Marshal(v.val)
}

// MarshalYAML renders absent values as YAML null.
func (v Value) MarshalYAML() (interface{}, error) {
	if !v.present {
		return nil, nil
	}
	return v.val, nil
}
