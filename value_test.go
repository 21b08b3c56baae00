package layeredconfig

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── Kind ──────────────────────────────────────────────────────────────────────

// TestValue_Kind verifies the shape tagging of scalar, mapping and sequence
// nodes.
func TestValue_Kind(t *testing.T) {
	tests := []struct {
		name string
		raw  any
		want Kind
	}{
		{name: "string scalar", raw: "x", want: KindScalar},
		{name: "int scalar", raw: 1, want: KindScalar},
		{name: "null scalar", raw: nil, want: KindScalar},
		{name: "mapping", raw: map[string]any{"a": 1}, want: KindMapping},
		{name: "sequence", raw: []any{1, 2}, want: KindSequence},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Value{raw: tt.raw}.Kind())
		})
	}
}

// ── typed accessors ───────────────────────────────────────────────────────────

// TestValue_String verifies string conversion and the error on non-strings.
func TestValue_String(t *testing.T) {
	s, err := Value{raw: "secret"}.String()
	require.NoError(t, err)
	assert.Equal(t, "secret", s)

	_, err = Value{raw: 42}.String()
	assert.Error(t, err)
}

// TestValue_Int verifies that every integer width the YAML decoder produces
// is accepted.
func TestValue_Int(t *testing.T) {
	for _, raw := range []any{42, int64(42), uint64(42)} {
		n, err := Value{raw: raw}.Int()
		require.NoError(t, err)
		assert.Equal(t, 42, n)
	}

	_, err := Value{raw: "42"}.Int()
	assert.Error(t, err)
}

// TestValue_Int_Overflow verifies that integers outside the platform int
// range are rejected instead of silently wrapping to a negative value.
func TestValue_Int_Overflow(t *testing.T) {
	_, err := Value{raw: uint64(math.MaxUint64)}.Int()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "overflows")

	_, err = Value{raw: uint64(math.MaxInt64) + 1}.Int()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "overflows")
}

// TestValue_Float verifies float conversion including integer widening.
func TestValue_Float(t *testing.T) {
	f, err := Value{raw: 1.5}.Float()
	require.NoError(t, err)
	assert.Equal(t, 1.5, f)

	f, err = Value{raw: 3}.Float()
	require.NoError(t, err)
	assert.Equal(t, 3.0, f)

	_, err = Value{raw: true}.Float()
	assert.Error(t, err)
}

// TestValue_Bool verifies bool conversion and the error on non-bools.
func TestValue_Bool(t *testing.T) {
	b, err := Value{raw: true}.Bool()
	require.NoError(t, err)
	assert.True(t, b)

	_, err = Value{raw: "true"}.Bool()
	assert.Error(t, err)
}

// TestValue_Duration verifies that duration strings parse and numeric values
// are taken as nanoseconds.
func TestValue_Duration(t *testing.T) {
	d, err := Value{raw: "1h30m"}.Duration()
	require.NoError(t, err)
	assert.Equal(t, 90*time.Minute, d)

	d, err = Value{raw: int(time.Second)}.Duration()
	require.NoError(t, err)
	assert.Equal(t, time.Second, d)

	_, err = Value{raw: "not-a-duration"}.Duration()
	assert.Error(t, err)

	_, err = Value{raw: []any{}}.Duration()
	assert.Error(t, err)
}

// TestValue_StringSlice verifies sequence conversion and per-element type
// checking.
func TestValue_StringSlice(t *testing.T) {
	items, err := Value{raw: []any{"a", "b"}}.StringSlice()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, items)

	_, err = Value{raw: []any{"a", 1}}.StringSlice()
	assert.Error(t, err)

	_, err = Value{raw: "a"}.StringSlice()
	assert.Error(t, err)
}

// TestValue_Map verifies mapping conversion.
func TestValue_Map(t *testing.T) {
	m, err := Value{raw: map[string]any{"a": 1}}.Map()
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": 1}, m)

	_, err = Value{raw: 1}.Map()
	assert.Error(t, err)
}

// ── IsZero ────────────────────────────────────────────────────────────────────

// TestValue_IsZero verifies the emptiness rule shared with the merge step.
func TestValue_IsZero(t *testing.T) {
	zero := []any{nil, "", false, 0, int64(0), uint64(0), 0.0, map[string]any{}, []any{}}
	for _, raw := range zero {
		assert.True(t, Value{raw: raw}.IsZero(), "expected zero: %#v", raw)
	}

	nonZero := []any{"x", true, 1, 0.5, map[string]any{"a": 1}, []any{1}}
	for _, raw := range nonZero {
		assert.False(t, Value{raw: raw}.IsZero(), "expected non-zero: %#v", raw)
	}
}
