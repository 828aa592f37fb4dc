// Package cryptox derives key material from operator-supplied secrets.
package cryptox

import (
	"golang.org/x/crypto/argon2"
)

// signingKeySalt is fixed so every replica derives the same key from the same secret.
var signingKeySalt = []byte("grievdesk/session-token/v1")

// DeriveSigningKey stretches the configured secret into a 32-byte HMAC key for
// session tokens.
func DeriveSigningKey(secret string) []byte {
	return argon2.IDKey([]byte(secret), signingKeySalt, 1, 64*1024, 4, 32)
}
