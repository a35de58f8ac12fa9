// Package cryptox implements the password credential scheme: turning a
// plaintext password into a storage-safe salted hash and verifying a
// plaintext password against a stored hash. Plaintext passwords are never
// persisted or logged.
package cryptox

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"

	"golang.org/x/crypto/pbkdf2"
)

// Derivation parameters. Changing any of these invalidates stored hashes.
const (
	// SaltSize is the number of random salt bytes generated per credential.
	SaltSize = 16
	// KeySize is the PBKDF2 output length in bytes.
	KeySize = 32
	// Iterations is the PBKDF2 iteration count. It imposes a per-guess cost
	// against brute force.
	Iterations = 10000
)

// HashPassword derives a storage-safe hash from a plaintext password.
// A fresh salt is generated on every call; salts are never reused across
// users or across re-hashes. The hash is returned base64-encoded alongside
// the raw salt bytes.
func HashPassword(password string) (hash string, salt []byte, err error) {
	salt = make([]byte, SaltSize)
	if _, err := rand.Read(salt); err != nil {
		return "", nil, err
	}
	return base64.StdEncoding.EncodeToString(deriveKey(password, salt)), salt, nil
}

// VerifyPassword recomputes the derivation for password with the supplied
// salt and compares the result to the stored hash in constant time.
// Malformed or empty stored data resolves to false, never an error.
func VerifyPassword(password, hash string, salt []byte) bool {
	if hash == "" || len(salt) == 0 {
		return false
	}
	stored, err := base64.StdEncoding.DecodeString(hash)
	if err != nil || len(stored) != KeySize {
		return false
	}
	return subtle.ConstantTimeCompare(stored, deriveKey(password, salt)) == 1
}

// deriveKey applies PBKDF2-HMAC-SHA256 with the fixed parameters above.
func deriveKey(password string, salt []byte) []byte {
	return pbkdf2.Key([]byte(password), salt, Iterations, KeySize, sha256.New)
}
