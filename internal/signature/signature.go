// Package signature verifies hex-encoded HMAC-SHA256 webhook signatures.
package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
)

var (
	// ErrInvalidFormat means the provided signature is not valid hex.
	ErrInvalidFormat = errors.New("invalid signature format")

	// ErrMismatch means the signature does not match the body.
	ErrMismatch = errors.New("signature mismatch")
)

// Compute returns the hex-encoded HMAC-SHA256 of body under secret.
func Compute(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify checks a hex-encoded HMAC-SHA256 signature over body. The body must
// be the raw bytes captured before JSON parsing: re-serializing can change
// byte layout and invalidate the signature. Comparison is constant-time to
// prevent timing side-channels.
func Verify(secret string, body []byte, provided string) error {
	providedMAC, err := hex.DecodeString(provided)
	if err != nil {
		return ErrInvalidFormat
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	expectedMAC := mac.Sum(nil)

	// hmac.Equal rejects length mismatches and compares in constant time.
	if !hmac.Equal(providedMAC, expectedMAC) {
		return ErrMismatch
	}
	return nil
}
