package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNullableStringJSON(t *testing.T) {
	var v struct {
		ExpiresAt NullableString `json:"expires_at"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"expires_at":null}`), &v))
	assert.True(t, v.ExpiresAt.IsNil())
	assert.Equal(t, "", v.ExpiresAt.String())

	require.NoError(t, json.Unmarshal([]byte(`{"expires_at":"2025-01-01T00:00:00Z"}`), &v))
	assert.False(t, v.ExpiresAt.IsNil())
	assert.Equal(t, "2025-01-01T00:00:00Z", v.ExpiresAt.String())

	out, err := json.Marshal(v)
	require.NoError(t, err)
	assert.JSONEq(t, `{"expires_at":"2025-01-01T00:00:00Z"}`, string(out))

	v.ExpiresAt = NullString()
	out, err = json.Marshal(v)
	require.NoError(t, err)
	assert.JSONEq(t, `{"expires_at":null}`, string(out))
}

func TestNullableStringEmptyIsValid(t *testing.T) {
	ns := NullableStringFrom("")
	assert.False(t, ns.IsNil())
	out, err := json.Marshal(ns)
	require.NoError(t, err)
	assert.Equal(t, `""`, string(out))
}

func TestNullableStringRejectsNonString(t *testing.T) {
	var ns NullableString
	assert.Error(t, json.Unmarshal([]byte(`42`), &ns))
}
