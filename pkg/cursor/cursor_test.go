package cursor

import (
	"encoding/base64"
	"math"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecode_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, position := range []int64{0, 1, 2, 49, 50, 51, 1000, 123456789, math.MaxInt64} {
		got, err := Decode(Encode(position))
		require.NoError(t, err)
		assert.Equal(t, position, got)
	}
}

func TestDecode_EmptyIsFirstPage(t *testing.T) {
	t.Parallel()

	position, err := Decode("")
	require.NoError(t, err)
	assert.Equal(t, int64(0), position)
}

func TestEncode_IsURLSafe(t *testing.T) {
	t.Parallel()

	token := Encode(math.MaxInt64)
	assert.NotContains(t, token, "+")
	assert.NotContains(t, token, "/")
	assert.Equal(t, "NTA=", Encode(50))
}

func TestDecode_Malformed(t *testing.T) {
	t.Parallel()

	enc := func(s string) string {
		return base64.URLEncoding.EncodeToString([]byte(s))
	}

	cases := map[string]string{
		"not base64": "***",
		"not json":   enc("fifty"),
		"negative":   enc("-1"),
		"fraction":   enc("1.5"),
		"null":       enc("null"),
		"string":     enc(`"2"`),
		"object":     enc(`{"position":2}`),
		"trailing":   enc("2 3"),
		"overflow":   enc("99999999999999999999"),
		"too long":   strings.Repeat("A", 600),
	}

	for name, token := range cases {
		_, err := Decode(token)
		assert.True(t, errors.Is(err, ErrMalformed), name)
	}
}

func TestDecode_MaxPositionFitsLengthLimit(t *testing.T) {
	t.Parallel()

	token := Encode(math.MaxInt64)
	assert.LessOrEqual(t, len(token), MaxTokenLength)

	position, err := Decode(token)
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64), position)
}
