package common

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecimalMarshalJSON(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"24.00", "24"},
		{"0", "0"},
		{"10.50", "10.5"},
		{"3", "3"},
		{"0.125", "0.125"},
		{"-2.50", "-2.5"},
		{"12345678901234567890.000000001", "12345678901234567890.000000001"},
	}
	for _, tc := range cases {
		b, err := json.Marshal(MustDecimal(tc.in))
		require.NoError(t, err)
		assert.Equal(t, tc.want, string(b), tc.in)
	}
}

func TestDecimalUnmarshalJSON(t *testing.T) {
	var v struct {
		A Decimal  `json:"a"`
		B Decimal  `json:"b"`
		C *Decimal `json:"c"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a": 10.50, "b": "2"}`), &v))
	assert.True(t, v.A.Equal(MustDecimal("10.5")))
	assert.True(t, v.B.Equal(DecimalFromInt(2)))
	assert.Nil(t, v.C)

	assert.Error(t, json.Unmarshal([]byte(`{"a": true}`), &v))
	assert.Error(t, json.Unmarshal([]byte(`{"a": "abc"}`), &v))
}

func TestParseDecimal_RejectsOutOfRange(t *testing.T) {
	for _, in := range []string{
		"1e30000000",
		"1e300000000",
		"-1e31",
		"1234567890123456789012345678901",
		"1e-30000000",
		"0.0000000000000000001",
	} {
		_, err := ParseDecimal(in)
		assert.ErrorIs(t, err, ErrInvalidDecimal, in)
	}

	var v struct {
		A Decimal `json:"a"`
	}
	assert.ErrorIs(t, json.Unmarshal([]byte(`{"a": "1e30000000"}`), &v), ErrInvalidDecimal)
	assert.ErrorIs(t, json.Unmarshal([]byte(`{"a": 1e30000000}`), &v), ErrInvalidDecimal)

	for _, in := range []string{"1e29", "123456789012345678901234567890", "0.000000000000000001", "0e99999", "12345678901234567890.000000001"} {
		_, err := ParseDecimal(in)
		assert.NoError(t, err, in)
	}
}

func TestDecimalArithmeticIsExact(t *testing.T) {
	// 0.1 + 0.2 drifts with float64
	sum := MustDecimal("0.1").Add(MustDecimal("0.2"))
	assert.Equal(t, "0.3", sum.WireString())
	assert.Equal(t, "21", MustDecimal("10.50").Mul(DecimalFromInt(2)).WireString())
}

func TestSaveOptionsVersion(t *testing.T) {
	var nilOpts *SaveOptions
	_, ok := nilOpts.Version()
	assert.False(t, ok)

	v, ok := IfMatch(3).Version()
	assert.True(t, ok)
	assert.Equal(t, int64(3), v)
}
