// Package pathref converts absolute paths to and from the opaque references
// handed to clients. The same encoding is used for the directory request
// parameter and for every listed item, so any item reference can be sent back
// as a directory.
package pathref

import (
	"encoding/base64"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// ErrInvalid is returned when a reference doesn't decode to an absolute path.
var ErrInvalid = errors.New("invalid path reference")

// Encode returns the URL-safe reference for the given path.
func Encode(path string) string {
	return base64.URLEncoding.EncodeToString([]byte(path))
}

// Decode reverses Encode. The decoded path is cleaned and must be absolute.
func Decode(ref string) (string, error) {
	if ref == "" {
		return "", ErrInvalid
	}

	raw, err := base64.URLEncoding.DecodeString(ref)
	if err != nil {
		return "", errors.Wrapf(ErrInvalid, "%s", err.Error())
	}

	path := string(raw)
	if path == "" || strings.ContainsRune(path, 0) || !filepath.IsAbs(path) {
		return "", ErrInvalid
	}

	return filepath.Clean(path), nil
}
