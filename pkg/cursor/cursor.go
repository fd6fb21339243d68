// Package cursor encodes the resumption offset of a directory listing into
// the opaque token handed back to clients. The token carries nothing but the
// offset, so the server keeps no paging state between requests.
package cursor

import (
	"encoding/base64"

	"github.com/pkg/errors"
	"github.com/segmentio/encoding/json"
)

// ErrMalformed is returned when a token doesn't decode to a non-negative
// offset.
var ErrMalformed = errors.New("malformed cursor")

// MaxTokenLength is longer than the token of any int64 position.
const MaxTokenLength = 64

// Encode returns the token for the given position.
func Encode(position int64) string {
	// Marshalling an int64 can't fail.
	data, _ := json.Marshal(position)
	return base64.URLEncoding.EncodeToString(data)
}

// Decode returns the position stored in token. The empty token is the first
// page.
func Decode(token string) (int64, error) {
	if token == "" {
		return 0, nil
	}
	if len(token) > MaxTokenLength {
		return 0, errors.Wrapf(ErrMalformed, "token is %d characters long", len(token))
	}

	data, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return 0, errors.Wrapf(ErrMalformed, "%s", err.Error())
	}

	var position *int64
	if err := json.Unmarshal(data, &position); err != nil {
		return 0, errors.Wrapf(ErrMalformed, "%s", err.Error())
	}
	if position == nil || *position < 0 {
		return 0, ErrMalformed
	}

	return *position, nil
}
