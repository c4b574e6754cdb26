// Package passhash implements salted password hashing and verification.
//
// The scheme is PBKDF2-HMAC-SHA1 with 20000 iterations and a 160-bit
// derived key over a per-user random 8-byte salt. Parameters are part of
// the stored-hash format and must not change without a migration.
package passhash

import (
	"crypto/rand"
	"crypto/sha1"
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// SaltLength is the per-user salt size in bytes.
	SaltLength = 8

	iterations = 20000
	keyLength  = 20 // 160 bits
)

// GenerateSalt returns a new random salt from the OS entropy source.
func GenerateSalt() ([]byte, error) {
	salt := make([]byte, SaltLength)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("reading random salt: %w", err)
	}
	return salt, nil
}

// Derive computes the password hash for the given password and salt.
// Deterministic: the same inputs always produce the same output.
func Derive(password string, salt []byte) []byte {
	return pbkdf2.Key([]byte(password), salt, iterations, keyLength, sha1.New)
}

// Verify re-derives the hash from the attempted password and compares it
// to the stored hash in constant time.
func Verify(attemptedPassword string, storedHash, storedSalt []byte) bool {
	derived := Derive(attemptedPassword, storedSalt)
	return subtle.ConstantTimeCompare(derived, storedHash) == 1
}
