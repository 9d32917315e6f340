package utils

import (
	"crypto/rand"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// NewUUID generates a new UUID
func NewUUID() uuid.UUID {
	return uuid.New()
}

// AutofillCodeAlphabet is the character set for autofill pairing codes. Upper
// case alphanumerics only, so the code survives being typed, shouted across a
// room, or mangled by a URL bar.
const AutofillCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateAutofillCode returns a cryptographically random code of the given
// length drawn from AutofillCodeAlphabet. At the default length of 8 that is
// about 41 bits, which combined with the short TTL and per-IP rate limiting
// on redemption puts guessing out of reach.
func GenerateAutofillCode(length int) (string, error) {
	if length < 1 {
		return "", fmt.Errorf("invalid code length %d", length)
	}

	// Rejection sampling: 256 is not a multiple of the alphabet size, so
	// reducing a raw byte modulo 36 would favor the first few characters.
	// Bytes at or above the largest usable multiple are discarded and redrawn.
	const limit = 256 - 256%len(AutofillCodeAlphabet)

	var sb strings.Builder
	sb.Grow(length)
	buf := make([]byte, 2*length)
	for {
		if _, err := rand.Read(buf); err != nil {
			return "", fmt.Errorf("read random bytes: %w", err)
		}
		for _, b := range buf {
			if int(b) >= limit {
				continue
			}
			sb.WriteByte(AutofillCodeAlphabet[int(b)%len(AutofillCodeAlphabet)])
			if sb.Len() == length {
				return sb.String(), nil
			}
		}
	}
}

// NormalizeAutofillCode canonicalizes a user-supplied code: surrounding
// whitespace stripped, letters upper-cased. Codes are issued upper-case, so
// redemption is effectively case-insensitive.
func NormalizeAutofillCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// IsValidAutofillCode reports whether a normalized code has the expected
// length and stays within the code alphabet.
func IsValidAutofillCode(code string, length int) bool {
	if len(code) != length {
		return false
	}
	for i := 0; i < len(code); i++ {
		if !strings.ContainsRune(AutofillCodeAlphabet, rune(code[i])) {
			return false
		}
	}
	return true
}
