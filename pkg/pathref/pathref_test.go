package pathref

import (
	"encoding/base64"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecode_RoundTrip(t *testing.T) {
	t.Parallel()

	paths := []string{
		"/",
		"/data",
		"/data/sub dir/file name.jpg",
		"/data/ünïcødé/日本語.txt",
		"/data/a+b=c?d&e",
	}

	for _, p := range paths {
		ref := Encode(p)
		assert.NotContains(t, ref, "/")
		assert.NotContains(t, ref, "+")

		decoded, err := Decode(ref)
		require.NoError(t, err, p)
		assert.Equal(t, p, decoded)
	}
}

func TestDecode_CleansPath(t *testing.T) {
	t.Parallel()

	decoded, err := Decode(Encode("/data/../data/./sub/"))
	require.NoError(t, err)
	assert.Equal(t, "/data/sub", decoded)
}

func TestDecode_Invalid(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"empty":        "",
		"not base64":   "%%%not-base64",
		"relative":     Encode("data/sub"),
		"empty path":   base64.URLEncoding.EncodeToString([]byte("")) + "=",
		"nul byte":     Encode("/data/\x00/sub"),
		"std alphabet": "Lz8/Pz8=",
	}

	for name, ref := range cases {
		_, err := Decode(ref)
		assert.True(t, errors.Is(err, ErrInvalid), name)
	}
}
