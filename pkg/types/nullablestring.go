package types

import "encoding/json"

// NullableString is a string that may be JSON null, such as a session's
// expires_at timestamp.
type NullableString struct {
	Value string
	Valid bool
}

// String returns the value, or "" when null.
func (ns NullableString) String() string {
	if ns.Valid {
		return ns.Value
	}
	return ""
}

// IsNil reports whether the value is null.
func (ns NullableString) IsNil() bool {
	return !ns.Valid
}

func (ns NullableString) MarshalJSON() ([]byte, error) {
	if ns.Valid {
		return json.Marshal(ns.Value)
	}
	return []byte("null"), nil
}

func (ns *NullableString) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		*ns = NullableString{}
		return nil
	}
	if err := json.Unmarshal(data, &ns.Value); err != nil {
		return err
	}
	ns.Valid = true
	return nil
}

// NullableStringFrom returns a valid NullableString holding s.
func NullableStringFrom(s string) NullableString {
	return NullableString{Value: s, Valid: true}
}

// NullString returns a null NullableString.
func NullString() NullableString {
	return NullableString{}
}

var _ json.Marshaler = NullableString{}
var _ json.Unmarshaler = &NullableString{}
var _ Nullable = NullableString{}
