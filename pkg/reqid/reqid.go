// Package reqid provides request identifier generation.
package reqid

import (
	"crypto/rand"
	"encoding/base64"
)

// DefaultLength is the default identifier length in bytes.
const DefaultLength = 12

// New generates a random request identifier with the "req-" prefix.
//
// The random part is Base64 RawURL encoded for safe use in headers
// and log fields.
func New() (string, error) {
	id, err := NewWithLength(DefaultLength)
	if err != nil {
		return "", err
	}
	return "req-" + id, nil
}

// NewWithLength generates an identifier with the specified byte length.
func NewWithLength(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(bytes), nil
}
